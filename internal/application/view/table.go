package view

import "fmt"

const (
	MessageLoading = "Cargando..."
	MessageEmpty   = "No hay resultados."
)

// TableState estado visual de una tabla paginada.
type TableState string

const (
	TableLoading TableState = "loading"
	TableEmpty   TableState = "empty"
	TableRows    TableState = "rows"
)

// Column columna de una tabla: encabezado y cómo obtener la celda de una fila.
type Column[T any] struct {
	Header string
	Cell   func(row T) string
}

// Paging datos de paginación con los que se dibuja la tabla.
type Paging struct {
	PageIndex     int
	PageSize      int
	TotalPages    int
	TotalElements int64
	Loading       bool
}

// TableView tabla lista para serializar. No ordena ni filtra.
type TableView struct {
	State         TableState `json:"state"`
	Headers       []string   `json:"headers"`
	Rows          [][]string `json:"rows"`
	Message       string     `json:"message,omitempty"`
	Summary       string     `json:"summary"`
	PageLabel     string     `json:"pageLabel"`
	PageIndex     int        `json:"pageIndex"`
	PageSize      int        `json:"pageSize"`
	TotalPages    int        `json:"totalPages"`
	TotalElements int64      `json:"totalElements"`
	CanPrev       bool       `json:"canPrev"`
	CanNext       bool       `json:"canNext"`
}

// RenderTable función pura de (columnas, filas, paginación) a la tabla visible:
// el aviso de carga, el mensaje de vacío o las filas.
func RenderTable[T any](cols []Column[T], rows []T, p Paging) TableView {
	headers := make([]string, len(cols))
	for i, c := range cols {
		headers[i] = c.Header
	}
	tv := TableView{
		Headers:       headers,
		Rows:          [][]string{},
		PageIndex:     p.PageIndex,
		PageSize:      p.PageSize,
		TotalPages:    p.TotalPages,
		TotalElements: p.TotalElements,
		Summary:       summary(p),
		PageLabel:     fmt.Sprintf("Página %d de %d", p.PageIndex+1, max(p.TotalPages, 1)),
		CanPrev:       !p.Loading && p.PageIndex > 0,
		CanNext:       !p.Loading && p.PageIndex < p.TotalPages-1,
	}

	switch {
	case p.Loading:
		tv.State = TableLoading
		tv.Message = MessageLoading
	case len(rows) == 0:
		tv.State = TableEmpty
		tv.Message = MessageEmpty
	default:
		tv.State = TableRows
		tv.Rows = make([][]string, len(rows))
		for i, row := range rows {
			cells := make([]string, len(cols))
			for j, c := range cols {
				cells[j] = c.Cell(row)
			}
			tv.Rows[i] = cells
		}
	}
	return tv
}

// "Mostrando a a b de N"
func summary(p Paging) string {
	if p.TotalElements <= 0 || p.PageSize <= 0 {
		return "Mostrando 0 a 0 de 0"
	}
	from := int64(p.PageIndex)*int64(p.PageSize) + 1
	to := min(int64(p.PageIndex+1)*int64(p.PageSize), p.TotalElements)
	return fmt.Sprintf("Mostrando %d a %d de %d", from, to, p.TotalElements)
}

// ClampPage acota un índice de página a [0, totalPages-1]; 0 si no hay páginas.
func ClampPage(index, totalPages int) int {
	if totalPages <= 0 || index < 0 {
		return 0
	}
	if index > totalPages-1 {
		return totalPages - 1
	}
	return index
}
