package dto

import (
	"strconv"

	"github.com/ptc-travel/backoffice/internal/domain/entity"
)

// LiquidationForm formulario de alta de liquidación.
type LiquidationForm struct {
	CustomerID      Value `json:"customer_id"`
	StaffID         Value `json:"staff_id"`
	CurrencyRate    Value `json:"currency_rate"`
	PaymentDeadline Value `json:"payment_deadline"`
	Companion       Value `json:"companion"`
}

// Validate convierte el formulario en un borrador válido.
func (f LiquidationForm) Validate() (entity.LiquidationDraft, error) {
	c := newChecker()
	draft := entity.LiquidationDraft{
		CustomerID:      c.id("customer_id", f.CustomerID),
		StaffID:         c.id("staff_id", f.StaffID),
		CurrencyRate:    c.decimal("currency_rate", f.CurrencyRate),
		PaymentDeadline: c.dateTime("payment_deadline", f.PaymentDeadline),
		Companion:       c.count("companion", f.Companion),
	}
	c.checkRules(draft)
	return draft, c.err()
}

// TermsForm condiciones comunes de un servicio.
type TermsForm struct {
	TariffRate Value `json:"tariff_rate"`
	IsTaxed    bool  `json:"is_taxed"`
	Currency   Value `json:"currency"`
}

func (f TermsForm) check(c *checker) entity.ServiceTerms {
	return entity.ServiceTerms{
		TariffRate: c.decimal("tariff_rate", f.TariffRate),
		IsTaxed:    f.IsTaxed,
		Currency:   c.currency("currency", f.Currency),
	}
}

// TourForm un tour dentro del servicio.
type TourForm struct {
	StartDate Value `json:"start_date"`
	EndDate   Value `json:"end_date"`
	Title     Value `json:"title"`
	Price     Value `json:"price"`
	Place     Value `json:"place"`
	Currency  Value `json:"currency"`
	Status    Value `json:"status"`
}

// TourServiceForm formulario de servicio de tours: al menos un tour.
type TourServiceForm struct {
	TermsForm
	Tours []TourForm `json:"tours"`
}

// Validate convierte el formulario en un borrador válido.
func (f TourServiceForm) Validate() (entity.TourServiceDraft, error) {
	c := newChecker()
	draft := entity.TourServiceDraft{ServiceTerms: f.TermsForm.check(c)}
	for i, t := range f.Tours {
		tc := c.nested(itemPrefix("tours", i))
		draft.Tours = append(draft.Tours, entity.Tour{
			StartDate: tc.date("start_date", t.StartDate),
			EndDate:   tc.date("end_date", t.EndDate),
			Title:     t.Title.trimmed(),
			Price:     tc.decimal("price", t.Price),
			Place:     t.Place.trimmed(),
			Currency:  tc.currency("currency", t.Currency),
			Status:    bookingStatus(t.Status),
		})
	}
	c.checkRules(draft)
	return draft, c.err()
}

// HotelBookingForm una reserva de hotel.
type HotelBookingForm struct {
	CheckIn         Value `json:"check_in"`
	CheckOut        Value `json:"check_out"`
	Hotel           Value `json:"hotel"`
	Room            Value `json:"room"`
	RoomDescription Value `json:"room_description"`
	PriceByNight    Value `json:"price_by_night"`
	Currency        Value `json:"currency"`
	Status          Value `json:"status"`
}

// HotelServiceForm formulario de servicio de hotel: al menos una reserva.
type HotelServiceForm struct {
	TermsForm
	HotelBookings []HotelBookingForm `json:"hotel_bookings"`
}

// Validate convierte el formulario en un borrador válido.
func (f HotelServiceForm) Validate() (entity.HotelServiceDraft, error) {
	c := newChecker()
	draft := entity.HotelServiceDraft{ServiceTerms: f.TermsForm.check(c)}
	for i, b := range f.HotelBookings {
		bc := c.nested(itemPrefix("hotel_bookings", i))
		draft.HotelBookings = append(draft.HotelBookings, entity.HotelBooking{
			CheckIn:         bc.date("check_in", b.CheckIn),
			CheckOut:        bc.date("check_out", b.CheckOut),
			Hotel:           b.Hotel.trimmed(),
			Room:            b.Room.trimmed(),
			RoomDescription: b.RoomDescription.trimmed(),
			PriceByNight:    bc.decimal("price_by_night", b.PriceByNight),
			Currency:        bc.currency("currency", b.Currency),
			Status:          bookingStatus(b.Status),
		})
	}
	c.checkRules(draft)
	return draft, c.err()
}

// FlightBookingForm una reserva aérea.
type FlightBookingForm struct {
	Origin              Value `json:"origin"`
	Destiny             Value `json:"destiny"`
	DepartureDate       Value `json:"departure_date"`
	ArrivalDate         Value `json:"arrival_date"`
	Aeroline            Value `json:"aeroline"`
	AerolineBookingCode Value `json:"aeroline_booking_code"`
	CostamarBookingCode Value `json:"costamar_booking_code"`
	TktNumbers          Value `json:"tkt_numbers"`
	Status              Value `json:"status"`
	TotalPrice          Value `json:"total_price"`
	Currency            Value `json:"currency"`
}

// FlightServiceForm formulario de servicio aéreo: al menos una reserva.
type FlightServiceForm struct {
	TermsForm
	FlightBookings []FlightBookingForm `json:"flight_bookings"`
}

// Validate convierte el formulario en un borrador válido.
func (f FlightServiceForm) Validate() (entity.FlightServiceDraft, error) {
	c := newChecker()
	draft := entity.FlightServiceDraft{ServiceTerms: f.TermsForm.check(c)}
	for i, b := range f.FlightBookings {
		bc := c.nested(itemPrefix("flight_bookings", i))
		draft.FlightBookings = append(draft.FlightBookings, entity.FlightBooking{
			Origin:              upper(b.Origin),
			Destiny:             upper(b.Destiny),
			DepartureDate:       bc.dateTime("departure_date", b.DepartureDate),
			ArrivalDate:         bc.dateTime("arrival_date", b.ArrivalDate),
			Aeroline:            b.Aeroline.trimmed(),
			AerolineBookingCode: b.AerolineBookingCode.trimmed(),
			CostamarBookingCode: b.CostamarBookingCode.trimmed(),
			TktNumbers:          b.TktNumbers.trimmed(),
			Status:              bookingStatus(b.Status),
			TotalPrice:          bc.decimal("total_price", b.TotalPrice),
			Currency:            bc.currency("currency", b.Currency),
		})
	}
	c.checkRules(draft)
	return draft, c.err()
}

// AdditionalServiceForm formulario de servicio adicional.
type AdditionalServiceForm struct {
	TermsForm
	Price  Value `json:"price"`
	Status Value `json:"status"`
}

// Validate convierte el formulario en un borrador válido.
func (f AdditionalServiceForm) Validate() (entity.AdditionalServiceDraft, error) {
	c := newChecker()
	draft := entity.AdditionalServiceDraft{
		ServiceTerms: f.TermsForm.check(c),
		Price:        c.decimal("price", f.Price),
		Status:       bookingStatus(f.Status),
	}
	c.checkRules(draft)
	return draft, c.err()
}

// PaymentForm formulario de registro de pago.
type PaymentForm struct {
	PaymentMethod Value `json:"payment_method"`
	Amount        Value `json:"amount"`
}

// Validate convierte el formulario en un borrador válido.
func (f PaymentForm) Validate() (entity.PaymentDraft, error) {
	c := newChecker()
	draft := entity.PaymentDraft{
		PaymentMethod: entity.PaymentMethod(upper(f.PaymentMethod)),
		Amount:        c.decimal("amount", f.Amount),
	}
	c.checkRules(draft)
	return draft, c.err()
}

// IncidencyForm formulario de incidencia. El monto es opcional.
type IncidencyForm struct {
	Reason        Value `json:"reason"`
	Amount        Value `json:"amount"`
	IncidencyDate Value `json:"incidencyDate"`
}

// Validate convierte el formulario en un borrador válido.
func (f IncidencyForm) Validate() (entity.IncidencyDraft, error) {
	c := newChecker()
	draft := entity.IncidencyDraft{
		Reason:        f.Reason.trimmed(),
		Amount:        c.optionalDecimal("amount", f.Amount),
		IncidencyDate: c.date("incidencyDate", f.IncidencyDate),
	}
	c.checkRules(draft)
	return draft, c.err()
}

// AdvanceStatusRequest pedido de avance de estado. ExpectedStatus es el estado que el
// operador tenía en pantalla; si el backend ya tiene otro, el avance se rechaza.
type AdvanceStatusRequest struct {
	ExpectedStatus Value `json:"expectedStatus"`
}

// Validate devuelve el estado esperado.
func (r AdvanceStatusRequest) Validate() (entity.LiquidationStatus, error) {
	c := newChecker()
	s := entity.LiquidationStatus(upper(r.ExpectedStatus))
	c.checkVar("expectedStatus", string(s), "required,oneof=IN_QUOTE PENDING ON_COURSE COMPLETED")
	return s, c.err()
}

func itemPrefix(list string, i int) string {
	return list + "[" + strconv.Itoa(i) + "]."
}
