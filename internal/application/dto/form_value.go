package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"

	"github.com/ptc-travel/backoffice/internal/domain"
	"github.com/ptc-travel/backoffice/internal/domain/entity"
)

const (
	msgRequired = "requerido"
	msgInvalid  = "valor inválido"
)

// Value valor de un campo tal como lo escribió el operador. Acepta en JSON un string,
// un número o null; se interpreta recién al validar el formulario.
type Value string

func (v *Value) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*v = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = Value(s)
		return nil
	}
	*v = Value(b)
	return nil
}

// Blank indica que el campo no se completó.
func (v Value) Blank() bool {
	return strings.TrimSpace(string(v)) == ""
}

func (v Value) trimmed() string {
	return strings.TrimSpace(string(v))
}

// checker convierte los campos del formulario a sus tipos acumulando el primer error de
// cada uno. Las reglas declarativas (obligatorios, enumerados, rangos) viven en las
// etiquetas `validate:` de los borradores y se corren después con checkRules.
type checker struct {
	fields domain.Fields
	prefix string
}

func newChecker() *checker {
	return &checker{fields: domain.Fields{}}
}

// nested devuelve un checker que antepone prefix a los nombres de campo (p. ej. "tours[0].").
func (c *checker) nested(prefix string) *checker {
	return &checker{fields: c.fields, prefix: c.prefix + prefix}
}

func (c *checker) fail(field, msg string) {
	c.fields.Add(c.prefix+field, msg)
}

func (c *checker) err() error {
	return c.fields.Err()
}

// upper texto normalizado de un enumerado.
func upper(v Value) string {
	return strings.ToUpper(v.trimmed())
}

func (c *checker) id(field string, v Value) int64 {
	if v.Blank() {
		c.fail(field, msgRequired)
		return 0
	}
	n, err := strconv.ParseInt(v.trimmed(), 10, 64)
	if err != nil {
		c.fail(field, "debe ser un identificador válido")
		return 0
	}
	return n
}

func (c *checker) count(field string, v Value) int {
	if v.Blank() {
		c.fail(field, msgRequired)
		return 0
	}
	n, err := strconv.Atoi(v.trimmed())
	if err != nil {
		c.fail(field, "debe ser un número entero")
		return 0
	}
	return n
}

func (c *checker) decimal(field string, v Value) decimal.Decimal {
	if v.Blank() {
		c.fail(field, msgRequired)
		return decimal.Zero
	}
	d, err := decimal.NewFromString(v.trimmed())
	if err != nil {
		c.fail(field, "debe ser un número")
		return decimal.Zero
	}
	return d
}

func (c *checker) optionalDecimal(field string, v Value) *decimal.Decimal {
	if v.Blank() {
		return nil
	}
	d := c.decimal(field, v)
	return &d
}

func (c *checker) date(field string, v Value) entity.Date {
	t := c.time(field, v)
	if t.IsZero() {
		return entity.Date{}
	}
	return entity.NewDate(t.Year(), t.Month(), t.Day())
}

func (c *checker) dateTime(field string, v Value) entity.DateTime {
	return entity.DateTime{Time: c.time(field, v)}
}

func (c *checker) time(field string, v Value) time.Time {
	if v.Blank() {
		c.fail(field, msgRequired)
		return time.Time{}
	}
	t, err := entity.ParseFlexibleTime(v.trimmed())
	if err != nil {
		c.fail(field, "fecha inválida")
		return time.Time{}
	}
	return t
}

// currency acepta el código ISO 4217 en cualquier capitalización; qué monedas opera el
// backend lo dice la etiqueta oneof del borrador.
func (c *checker) currency(field string, v Value) entity.Currency {
	if v.Blank() {
		c.fail(field, msgRequired)
		return ""
	}
	unit, err := currency.ParseISO(v.trimmed())
	if err != nil {
		c.fail(field, "moneda inválida")
		return ""
	}
	return entity.Currency(unit.String())
}

// bookingStatus sin valor la reserva queda pendiente.
func bookingStatus(v Value) entity.BookingStatus {
	if v.Blank() {
		return entity.BookingPending
	}
	return entity.BookingStatus(upper(v))
}
