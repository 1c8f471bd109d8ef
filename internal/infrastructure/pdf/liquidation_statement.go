// Package pdf genera el estado de cuenta de una liquidación en A4.
//
// Layout:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Agencia + título        │  Estado + fecha           │
//	│  CLIENTE / RESPONSABLE                                       │
//	│  RESUMEN: total, pagado, pendiente, tipo de cambio, plazo    │
//	│  SECCIONES: tours, hoteles, vuelos, adicionales              │
//	│  PAGOS · INCIDENCIAS                                         │
//	│  FOOTER                                                      │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/ptc-travel/backoffice/internal/application/ports"
	"github.com/ptc-travel/backoffice/internal/application/view"
)

var _ ports.LiquidationPDFGenerator = (*StatementGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 94, Blue: 110}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

const gridSize = 12

// StatementGenerator implementa LiquidationPDFGenerator con Maroto v2.
type StatementGenerator struct {
	agency string
	now    func() time.Time
}

// NewStatementGenerator construye el generador. agency es el nombre impreso en la cabecera.
func NewStatementGenerator(agency string) *StatementGenerator {
	return &StatementGenerator{agency: agency, now: time.Now}
}

// Generate genera el PDF del detalle y devuelve sus bytes.
func (g *StatementGenerator) Generate(_ context.Context, d *view.LiquidationDetail) ([]byte, error) {
	if d == nil {
		return nil, fmt.Errorf("pdf: detalle vacío")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(d.Title, true).
		WithAuthor(g.agency, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(g.headerRow(d))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(partiesRow(d))
	m.AddRows(summaryRows(d.Summary)...)

	for _, s := range d.Services {
		m.AddRows(sectionRows(s)...)
	}
	m.AddRows(sectionRows(d.Payments)...)
	m.AddRows(sectionRows(d.Incidencies)...)

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(row.New(8).Add(col.New(gridSize).Add(
		text.New("Documento informativo generado por el back-office. No constituye comprobante de pago.",
			props.Text{Size: 6.5, Color: colorGray, Top: 2}),
	)))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

func (g *StatementGenerator) headerRow(d *view.LiquidationDetail) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.agency, props.Text{Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1}),
			text.New(d.Title, props.Text{Size: 10, Top: 9}),
		),
		col.New(5).Add(
			text.New("ESTADO DE CUENTA", props.Text{Style: fontstyle.Bold, Size: 8, Align: align.Right, Color: colorPrimary, Top: 1}),
			text.New(d.StatusLabel+" · "+d.PaymentStatusLabel, props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Top: 7}),
			text.New("Emitido: "+g.now().Format("02/01/2006 15:04"), props.Text{Size: 8, Align: align.Right, Top: 14, Color: colorGray}),
		),
	)
}

func partiesRow(d *view.LiquidationDetail) core.Row {
	party := func(title string, p view.Party) core.Col {
		c := col.New(6).Add(
			text.New(title, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}),
			text.New(p.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(p.Email, props.Text{Size: 8, Top: 12, Color: colorGray}),
		)
		if p.Document != "" {
			c.Add(text.New(p.Document, props.Text{Size: 8, Top: 16, Color: colorGray}))
		}
		return c
	}
	return row.New(22).Add(party("CLIENTE", d.Customer), party("RESPONSABLE", d.Staff))
}

func summaryRows(s view.Summary) []core.Row {
	label := func(v string) core.Component {
		return text.New(v, props.Text{Style: fontstyle.Bold, Size: 8, Color: colorGray, Top: 1})
	}
	value := func(v string) core.Component {
		return text.New(v, props.Text{Size: 10, Top: 5})
	}
	return []core.Row{
		row.New(12).Add(
			col.New(3).Add(label("Total"), value(s.TotalAmount)),
			col.New(3).Add(label("Pagado"), value(s.PaidAmount)),
			col.New(3).Add(label("Pendiente"), value(s.PendingAmount)),
			col.New(3).Add(label("Tipo de cambio"), value(s.CurrencyRate)),
		),
		row.New(12).Add(
			col.New(3).Add(label("Fecha límite de pago"), value(s.PaymentDeadline)),
			col.New(3).Add(label("Acompañantes"), value(fmt.Sprint(s.Companion))),
			col.New(6).Add(label("Creada"), value(s.CreatedAt)),
		),
	}
}

// sectionRows título, cabecera y filas; si la sección está vacía, su aviso.
func sectionRows(s view.Section) []core.Row {
	rows := []core.Row{
		row.New(3),
		row.New(7).Add(col.New(gridSize).Add(
			text.New(s.Title, props.Text{Style: fontstyle.Bold, Size: 10, Color: colorPrimary, Top: 1}),
		)),
		line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}),
	}
	if s.Empty() {
		return append(rows, row.New(7).Add(col.New(gridSize).Add(
			text.New(s.Placeholder, props.Text{Size: 8, Color: colorGray, Top: 1.5}),
		)))
	}

	widths := columnWidths(len(s.Headers))
	header := row.New(7)
	for i, h := range s.Headers[:len(widths)] {
		header.Add(col.New(widths[i]).Add(text.New(h, props.Text{Style: fontstyle.Bold, Size: 7.5, Top: 1.5, Left: 1})))
	}
	rows = append(rows, header)

	for _, r := range s.Rows {
		cells := row.New(6)
		for i, w := range widths {
			cell := ""
			if i < len(r) {
				cell = r[i]
			}
			cells.Add(col.New(w).Add(text.New(cell, props.Text{Size: 7.5, Top: 1, Left: 1})))
		}
		rows = append(rows, cells)
	}

	if s.Subtotal != "" {
		rows = append(rows, row.New(7).Add(col.New(gridSize).Add(
			text.New("Subtotal: "+s.Subtotal, props.Text{Style: fontstyle.Bold, Size: 8.5, Align: align.Right, Top: 1.5, Right: 1}),
		)))
	}
	return rows
}

// columnWidths reparte las 12 columnas de la grilla; el resto va a las primeras.
func columnWidths(n int) []int {
	if n <= 0 {
		return nil
	}
	if n > gridSize {
		n = gridSize
	}
	w := make([]int, n)
	for i := range w {
		w[i] = gridSize / n
		if i < gridSize%n {
			w[i]++
		}
	}
	return w
}
