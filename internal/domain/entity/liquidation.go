package entity

import "github.com/shopspring/decimal"

// LiquidationStatus estado del ciclo de vida de una liquidación.
// Solo avanza: IN_QUOTE -> PENDING -> ON_COURSE -> COMPLETED.
type LiquidationStatus string

const (
	StatusInQuote   LiquidationStatus = "IN_QUOTE"
	StatusPending   LiquidationStatus = "PENDING"
	StatusOnCourse  LiquidationStatus = "ON_COURSE"
	StatusCompleted LiquidationStatus = "COMPLETED"
)

var nextStatus = map[LiquidationStatus]LiquidationStatus{
	StatusInQuote:  StatusPending,
	StatusPending:  StatusOnCourse,
	StatusOnCourse: StatusCompleted,
}

// Next devuelve el siguiente estado permitido. ok=false para COMPLETED o un estado desconocido.
func (s LiquidationStatus) Next() (LiquidationStatus, bool) {
	n, ok := nextStatus[s]
	return n, ok
}

// Valid indica si el estado existe.
func (s LiquidationStatus) Valid() bool {
	switch s {
	case StatusInQuote, StatusPending, StatusOnCourse, StatusCompleted:
		return true
	}
	return false
}

// Terminal indica que no hay transición posible.
func (s LiquidationStatus) Terminal() bool {
	return s == StatusCompleted
}

// Label texto visible del estado.
func (s LiquidationStatus) Label() string {
	switch s {
	case StatusInQuote:
		return "En cotización"
	case StatusPending:
		return "Pendiente"
	case StatusOnCourse:
		return "En curso"
	case StatusCompleted:
		return "Completada"
	}
	return string(s)
}

// PaymentStatus estado de cobro de la liquidación. Independiente de LiquidationStatus.
type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "PENDING"
	PaymentOnCourse  PaymentStatus = "ON_COURSE"
	PaymentCompleted PaymentStatus = "COMPLETED"
)

// Label texto visible del estado de pago.
func (s PaymentStatus) Label() string {
	switch s {
	case PaymentPending:
		return "Pago pendiente"
	case PaymentOnCourse:
		return "Pago en curso"
	case PaymentCompleted:
		return "Pagado"
	}
	return string(s)
}

// Liquidation expediente de venta de un viaje con sus servicios, pagos e incidencias.
type Liquidation struct {
	ID                 int64               `json:"id"`
	CustomerID         int64               `json:"customer_id"`
	StaffID            int64               `json:"staff_id"`
	Customer           *Customer           `json:"customer,omitempty"`
	StaffOnCharge      *Staff              `json:"staff_on_charge,omitempty"`
	CurrencyRate       decimal.Decimal     `json:"currency_rate"`
	TotalAmount        decimal.Decimal     `json:"total_amount"`
	PaymentDeadline    DateTime            `json:"payment_deadline"`
	Companion          int                 `json:"companion"`
	Status             LiquidationStatus   `json:"status"`
	PaymentStatus      PaymentStatus       `json:"payment_status"`
	CreatedAt          DateTime            `json:"created_at"`
	UpdatedAt          DateTime            `json:"updated_at"`
	TourServices       []TourService       `json:"tour_services,omitempty"`
	HotelServices      []HotelService      `json:"hotel_services,omitempty"`
	FlightServices     []FlightService     `json:"flight_services,omitempty"`
	AdditionalServices []AdditionalService `json:"additional_services,omitempty"`
	Payments           []Payment           `json:"payments,omitempty"`
	Incidencies        []Incidency         `json:"incidencies,omitempty"`
}

// CustomerName nombre del cliente o "-" si el backend no lo incluyó.
func (l Liquidation) CustomerName() string {
	if l.Customer == nil {
		return "-"
	}
	return l.Customer.FullName()
}

// StaffName nombre de usuario del responsable o "-".
func (l Liquidation) StaffName() string {
	if l.StaffOnCharge == nil || l.StaffOnCharge.User == nil {
		return "-"
	}
	return l.StaffOnCharge.User.UserName
}

// PaidAmount suma de los pagos registrados.
func (l Liquidation) PaidAmount() decimal.Decimal {
	total := decimal.Zero
	for _, p := range l.Payments {
		total = total.Add(p.Amount)
	}
	return total
}

// PendingAmount total menos lo pagado; nunca negativo.
func (l Liquidation) PendingAmount() decimal.Decimal {
	pending := l.TotalAmount.Sub(l.PaidAmount())
	if pending.IsNegative() {
		return decimal.Zero
	}
	return pending
}

// LiquidationDraft datos validados para crear una liquidación.
type LiquidationDraft struct {
	CustomerID      int64           `json:"customer_id" validate:"required,gt=0"`
	StaffID         int64           `json:"staff_id" validate:"required,gt=0"`
	CurrencyRate    decimal.Decimal `json:"currency_rate" validate:"gt=0"`
	PaymentDeadline DateTime        `json:"payment_deadline" validate:"required"`
	Companion       int             `json:"companion" validate:"gte=0"`
}
