package entity

import "github.com/shopspring/decimal"

func init() {
	// el backend espera números JSON, no strings
	decimal.MarshalJSONWithoutQuotes = true
}

// Currency moneda de montos y salarios.
type Currency string

const (
	CurrencyPEN Currency = "PEN"
	CurrencyUSD Currency = "USD"
)

// Valid indica si la moneda es una de las aceptadas por el backend.
func (c Currency) Valid() bool {
	return c == CurrencyPEN || c == CurrencyUSD
}

// Symbol símbolo usado al mostrar montos.
func (c Currency) Symbol() string {
	switch c {
	case CurrencyUSD:
		return "US$"
	default:
		return "S/"
	}
}
