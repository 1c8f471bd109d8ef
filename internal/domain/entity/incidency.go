package entity

import "github.com/shopspring/decimal"

// Incidency incidencia reportada sobre una liquidación. El monto es opcional.
type Incidency struct {
	ID            int64            `json:"id"`
	Reason        string           `json:"reason"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	IncidencyDate Date             `json:"incidencyDate"`
	Status        string           `json:"status,omitempty"`
}

// IncidencyDraft datos validados para reportar una incidencia.
type IncidencyDraft struct {
	Reason        string           `json:"reason" validate:"required"`
	Amount        *decimal.Decimal `json:"amount,omitempty" validate:"omitempty,gt=0"`
	IncidencyDate Date             `json:"incidencyDate" validate:"required"`
}
