package entity

import "github.com/shopspring/decimal"

// BookingStatus estado de una reserva dentro de un servicio.
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingCompleted BookingStatus = "COMPLETED"
	BookingCanceled  BookingStatus = "CANCELED"
)

// Valid indica si el estado existe.
func (s BookingStatus) Valid() bool {
	return s == BookingPending || s == BookingCompleted || s == BookingCanceled
}

// ServiceKind tipo de servicio de una liquidación.
type ServiceKind string

const (
	ServiceTour       ServiceKind = "tour"
	ServiceHotel      ServiceKind = "hotel"
	ServiceFlight     ServiceKind = "flight"
	ServiceAdditional ServiceKind = "additional"
)

// Label nombre visible del tipo de servicio.
func (k ServiceKind) Label() string {
	switch k {
	case ServiceTour:
		return "tour"
	case ServiceHotel:
		return "hotel"
	case ServiceFlight:
		return "vuelo"
	case ServiceAdditional:
		return "servicios adicionales"
	}
	return string(k)
}

// ServiceTerms condiciones comunes a todo servicio: tarifa (%), afecto a IGV y moneda.
type ServiceTerms struct {
	TariffRate decimal.Decimal `json:"tariff_rate" validate:"gte=0"`
	IsTaxed    bool            `json:"is_taxed"`
	Currency   Currency        `json:"currency" validate:"required,oneof=PEN USD"`
}

// Tour reserva de un tour.
type Tour struct {
	ID        int64           `json:"id,omitempty"`
	StartDate Date            `json:"start_date" validate:"required"`
	EndDate   Date            `json:"end_date" validate:"required,gtefield=StartDate"`
	Title     string          `json:"title" validate:"required"`
	Price     decimal.Decimal `json:"price" validate:"gt=0"`
	Place     string          `json:"place" validate:"required"`
	Currency  Currency        `json:"currency" validate:"required,oneof=PEN USD"`
	Status    BookingStatus   `json:"status" validate:"oneof=PENDING COMPLETED CANCELED"`
}

// TourService servicio de tours de una liquidación.
type TourService struct {
	ID int64 `json:"id,omitempty"`
	ServiceTerms
	Tours []Tour `json:"tours"`
}

// Subtotal suma de precios de los tours no cancelados.
func (s TourService) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, t := range s.Tours {
		if t.Status != BookingCanceled {
			total = total.Add(t.Price)
		}
	}
	return total
}

// HotelBooking reserva de hotel.
type HotelBooking struct {
	ID              int64           `json:"id,omitempty"`
	CheckIn         Date            `json:"check_in" validate:"required"`
	CheckOut        Date            `json:"check_out" validate:"required,gtfield=CheckIn"`
	Hotel           string          `json:"hotel" validate:"required"`
	Room            string          `json:"room" validate:"required"`
	RoomDescription string          `json:"room_description"`
	PriceByNight    decimal.Decimal `json:"price_by_night" validate:"gt=0"`
	Currency        Currency        `json:"currency" validate:"required,oneof=PEN USD"`
	Status          BookingStatus   `json:"status" validate:"oneof=PENDING COMPLETED CANCELED"`
}

// Nights noches entre check-in y check-out (mínimo 1).
func (b HotelBooking) Nights() int {
	n := int(b.CheckOut.Sub(b.CheckIn.Time).Hours() / 24)
	if n < 1 {
		return 1
	}
	return n
}

// HotelService servicio de hotelería de una liquidación.
type HotelService struct {
	ID int64 `json:"id,omitempty"`
	ServiceTerms
	HotelBookings []HotelBooking `json:"hotel_bookings"`
}

// Subtotal precio por noche por noches, sin reservas canceladas.
func (s HotelService) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, b := range s.HotelBookings {
		if b.Status != BookingCanceled {
			total = total.Add(b.PriceByNight.Mul(decimal.NewFromInt(int64(b.Nights()))))
		}
	}
	return total
}

// FlightBooking reserva aérea.
type FlightBooking struct {
	ID                  int64           `json:"id,omitempty"`
	Origin              string          `json:"origin" validate:"required"`
	Destiny             string          `json:"destiny" validate:"required"`
	DepartureDate       DateTime        `json:"departure_date" validate:"required"`
	ArrivalDate         DateTime        `json:"arrival_date" validate:"required,gtefield=DepartureDate"`
	Aeroline            string          `json:"aeroline" validate:"required"`
	AerolineBookingCode string          `json:"aeroline_booking_code"`
	CostamarBookingCode string          `json:"costamar_booking_code"`
	TktNumbers          string          `json:"tkt_numbers"`
	Status              BookingStatus   `json:"status" validate:"oneof=PENDING COMPLETED CANCELED"`
	TotalPrice          decimal.Decimal `json:"total_price" validate:"gt=0"`
	Currency            Currency        `json:"currency" validate:"required,oneof=PEN USD"`
}

// FlightService servicio aéreo de una liquidación.
type FlightService struct {
	ID int64 `json:"id,omitempty"`
	ServiceTerms
	FlightBookings []FlightBooking `json:"flight_bookings"`
}

// Subtotal suma de los precios totales de las reservas no canceladas.
func (s FlightService) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, b := range s.FlightBookings {
		if b.Status != BookingCanceled {
			total = total.Add(b.TotalPrice)
		}
	}
	return total
}

// AdditionalService servicio adicional (traslados, seguros, etc.).
type AdditionalService struct {
	ID int64 `json:"id,omitempty"`
	ServiceTerms
	Price  decimal.Decimal `json:"price"`
	Status BookingStatus   `json:"status"`
}

// Subtotal precio del servicio, cero si está cancelado.
func (s AdditionalService) Subtotal() decimal.Decimal {
	if s.Status == BookingCanceled {
		return decimal.Zero
	}
	return s.Price
}

// Drafts validados de servicios. Se envían tal cual al backend.
type (
	TourServiceDraft struct {
		ServiceTerms
		Tours []Tour `json:"tours" validate:"min=1,dive"`
	}
	HotelServiceDraft struct {
		ServiceTerms
		HotelBookings []HotelBooking `json:"hotel_bookings" validate:"min=1,dive"`
	}
	FlightServiceDraft struct {
		ServiceTerms
		FlightBookings []FlightBooking `json:"flight_bookings" validate:"min=1,dive"`
	}
	AdditionalServiceDraft struct {
		ServiceTerms
		Price  decimal.Decimal `json:"price" validate:"gt=0"`
		Status BookingStatus   `json:"status" validate:"oneof=PENDING COMPLETED CANCELED"`
	}
)
