package entity

import "github.com/shopspring/decimal"

// PaymentMethod medio de pago.
type PaymentMethod string

const (
	PaymentDebit  PaymentMethod = "DEBIT"
	PaymentCredit PaymentMethod = "CREDIT"
	PaymentYape   PaymentMethod = "YAPE"
	PaymentOther  PaymentMethod = "OTHER"
)

// Valid indica si el medio existe.
func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentDebit, PaymentCredit, PaymentYape, PaymentOther:
		return true
	}
	return false
}

// Payment pago registrado contra una liquidación.
type Payment struct {
	ID            int64           `json:"id"`
	PaymentMethod PaymentMethod   `json:"payment_method"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      Currency        `json:"currency,omitempty"`
	PaymentDate   DateTime        `json:"payment_date"`
	Status        string          `json:"status,omitempty"`
}

// PaymentDraft datos validados para registrar un pago.
type PaymentDraft struct {
	PaymentMethod PaymentMethod   `json:"payment_method" validate:"required,oneof=DEBIT CREDIT YAPE OTHER"`
	Amount        decimal.Decimal `json:"amount" validate:"gt=0"`
}
