package view

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/ptc-travel/backoffice/internal/domain/entity"
)

const (
	displayDateLayout     = "02/01/2006"
	displayDateTimeLayout = "02/01/2006 15:04"
	placeholder           = "-"
)

// Amount monto con dos decimales y separador de miles: 1,234.50.
func Amount(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, frac, _ := strings.Cut(s, ".")
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	b.WriteByte('.')
	b.WriteString(frac)
	return b.String()
}

// Money monto con símbolo de la moneda: "S/ 1,234.50", "US$ 80.00".
func Money(d decimal.Decimal, cur entity.Currency) string {
	return cur.Symbol() + " " + Amount(d)
}

// Percent "10.00%".
func Percent(d decimal.Decimal) string {
	return d.StringFixed(2) + "%"
}

// Date dd/mm/yyyy o "-" si no hay fecha.
func Date(d entity.Date) string {
	if d.IsZero() {
		return placeholder
	}
	return d.Format(displayDateLayout)
}

// DateOnly dd/mm/yyyy de un instante.
func DateOnly(d entity.DateTime) string {
	if d.IsZero() {
		return placeholder
	}
	return d.Format(displayDateLayout)
}

// DateTime dd/mm/yyyy hh:mm.
func DateTime(d entity.DateTime) string {
	if d.IsZero() {
		return placeholder
	}
	return d.Format(displayDateTimeLayout)
}

// PersonName "Nombre Apellido" tal como se registró; "-" si ambos están vacíos.
func PersonName(first, last string) string {
	first, last = strings.TrimSpace(first), strings.TrimSpace(last)
	switch {
	case first == "" && last == "":
		return placeholder
	case first == "":
		return last
	case last == "":
		return first
	}
	return first + " " + last
}

// YesNo "Sí" / "No".
func YesNo(b bool) string {
	if b {
		return "Sí"
	}
	return "No"
}

// ActiveLabel estado de una cuenta.
func ActiveLabel(active bool) string {
	if active {
		return "Activo"
	}
	return "Inactivo"
}

// OrPlaceholder devuelve "-" para textos vacíos.
func OrPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return placeholder
	}
	return s
}
