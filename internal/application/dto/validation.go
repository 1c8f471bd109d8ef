package dto

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/ptc-travel/backoffice/internal/domain/entity"
)

// validate reglas declarativas (etiquetas `validate:` de los borradores). Es seguro para uso
// concurrente y cachea la estructura de cada tipo.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// fechas y montos se comparan por su valor: time.Time y float64
	v.RegisterCustomTypeFunc(func(f reflect.Value) any {
		return f.Interface().(entity.Date).Time
	}, entity.Date{})
	v.RegisterCustomTypeFunc(func(f reflect.Value) any {
		return f.Interface().(entity.DateTime).Time
	}, entity.DateTime{})
	v.RegisterCustomTypeFunc(func(f reflect.Value) any {
		return f.Interface().(decimal.Decimal).InexactFloat64()
	}, decimal.Decimal{})
	v.RegisterStructValidation(documentNumberRule, entity.CustomerDraft{})
	return v
}

// documentNumberRule DNI: 8 dígitos; RUC: 11 dígitos. El resto de documentos solo se exige no vacío.
func documentNumberRule(sl validator.StructLevel) {
	c := sl.Current().Interface().(entity.CustomerDraft)
	if c.IDDocumentNumber == "" {
		return
	}
	var rule, digits string
	switch c.IDDocumentType {
	case entity.DocumentDNI:
		rule, digits = "len=8,numeric", "8"
	case entity.DocumentRUC:
		rule, digits = "len=11,numeric", "11"
	default:
		return
	}
	if sl.Validator().Var(c.IDDocumentNumber, rule) != nil {
		sl.ReportError(c.IDDocumentNumber, "idDocumentNumber", "IDDocumentNumber", "digits", digits)
	}
}

// checkRules corre las reglas declarativas de draft y suma sus errores a los del checker.
// Un campo que ya falló al convertirse conserva ese primer error.
func (c *checker) checkRules(draft any) {
	err := validate.Struct(draft)
	if err == nil {
		return
	}
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		c.fail("form", msgInvalid)
		return
	}
	for _, fe := range errs {
		c.fail(fieldPath(fe), fieldMessage(fe))
	}
}

// checkVar valida un valor suelto con una regla, p. ej. "required,oneof=A B".
func (c *checker) checkVar(field string, value any, rule string) {
	err := validate.Var(value, rule)
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		for _, fe := range errs {
			c.fail(field, fieldMessage(fe))
		}
	}
}

// fieldPath nombre JSON del campo con su ruta ("tours[1].price"), sin el tipo raíz ni los
// structs embebidos, que no tienen nombre JSON.
func fieldPath(fe validator.FieldError) string {
	ns := strings.Split(fe.Namespace(), ".")
	sns := strings.Split(fe.StructNamespace(), ".")
	parts := make([]string, 0, len(ns))
	for i := 1; i < len(ns) && i < len(sns); i++ {
		if ns[i] == sns[i] {
			continue
		}
		parts = append(parts, ns[i])
	}
	return strings.Join(parts, ".")
}

// etiqueta de la fecha de referencia en las reglas entre campos
var referenceLabels = map[string]string{
	"StartDate":     "al inicio",
	"CheckIn":       "al check-in",
	"DepartureDate": "a la salida",
}

// qué falta cuando una lista obligatoria llega vacía
var listLabels = map[string]string{
	"tours":           "un tour",
	"hotel_bookings":  "una reserva",
	"flight_bookings": "una reserva",
}

var currencyType = reflect.TypeOf(entity.Currency(""))

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return msgRequired
	case "email":
		return "email inválido"
	case "min":
		if fe.Kind() == reflect.Slice {
			return "agregue al menos " + listLabels[fe.Field()]
		}
		return "mínimo " + fe.Param() + " caracteres"
	case "oneof":
		if fe.Type() == currencyType {
			return "moneda no admitida (" + strings.ReplaceAll(fe.Param(), " ", " o ") + ")"
		}
		return msgInvalid
	case "gt":
		return "debe ser mayor a " + fe.Param()
	case "gte":
		if fe.Kind() == reflect.Float64 {
			return "no puede ser negativo"
		}
		return "debe ser un entero mayor o igual a " + fe.Param()
	case "lte":
		return "no puede ser una fecha futura"
	case "gtefield":
		return "no puede ser anterior " + referenceLabels[fe.Param()]
	case "gtfield":
		return "debe ser posterior " + referenceLabels[fe.Param()]
	case "digits":
		return "debe tener " + fe.Param() + " dígitos"
	}
	return msgInvalid
}
