package view

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ptc-travel/backoffice/internal/domain/entity"
)

const (
	PlaceholderPayments    = "No hay pagos registrados"
	PlaceholderIncidencies = "No hay incidencias registradas"
)

// Section bloque del detalle: una tabla simple o, si está vacía, su aviso.
type Section struct {
	Key         string     `json:"key"`
	Title       string     `json:"title"`
	Headers     []string   `json:"headers"`
	Rows        [][]string `json:"rows"`
	Placeholder string     `json:"placeholder,omitempty"`
	Subtotal    string     `json:"subtotal,omitempty"`
}

// Empty indica que la sección no tiene filas.
func (s Section) Empty() bool { return len(s.Rows) == 0 }

// Party cliente o responsable mostrado en la cabecera.
type Party struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone,omitempty"`
	Document string `json:"document,omitempty"`
}

// Summary totales y datos generales.
type Summary struct {
	TotalAmount     string `json:"totalAmount"`
	PaidAmount      string `json:"paidAmount"`
	PendingAmount   string `json:"pendingAmount"`
	CurrencyRate    string `json:"currencyRate"`
	PaymentDeadline string `json:"paymentDeadline"`
	Companion       int    `json:"companion"`
	CreatedAt       string `json:"createdAt"`
}

// LiquidationDetail vista completa de una liquidación.
type LiquidationDetail struct {
	ID                 int64                    `json:"id"`
	Title              string                   `json:"title"`
	Status             entity.LiquidationStatus `json:"status"`
	StatusLabel        string                   `json:"statusLabel"`
	PaymentStatus      entity.PaymentStatus     `json:"paymentStatus"`
	PaymentStatusLabel string                   `json:"paymentStatusLabel"`
	// NextStatus estado ofrecido para avanzar; vacío si la liquidación está completada.
	NextStatus      entity.LiquidationStatus `json:"nextStatus,omitempty"`
	NextStatusLabel string                   `json:"nextStatusLabel,omitempty"`
	CanAdvance      bool                     `json:"canAdvance"`
	Customer        Party                    `json:"customer"`
	Staff           Party                    `json:"staff"`
	Summary         Summary                  `json:"summary"`
	Services        []Section                `json:"services"`
	Payments        Section                  `json:"payments"`
	Incidencies     Section                  `json:"incidencies"`

	Source *entity.Liquidation `json:"-"`
}

// BuildLiquidationDetail arma la vista a partir del registro completo del backend.
func BuildLiquidationDetail(l *entity.Liquidation) *LiquidationDetail {
	d := &LiquidationDetail{
		ID:                 l.ID,
		Title:              fmt.Sprintf("Liquidación #%d", l.ID),
		Status:             l.Status,
		StatusLabel:        l.Status.Label(),
		PaymentStatus:      l.PaymentStatus,
		PaymentStatusLabel: l.PaymentStatus.Label(),
		Customer:           customerParty(l.Customer),
		Staff:              staffParty(l.StaffOnCharge),
		Summary: Summary{
			TotalAmount:     Amount(l.TotalAmount),
			PaidAmount:      Amount(l.PaidAmount()),
			PendingAmount:   Amount(l.PendingAmount()),
			CurrencyRate:    l.CurrencyRate.StringFixed(3),
			PaymentDeadline: DateOnly(l.PaymentDeadline),
			Companion:       l.Companion,
			CreatedAt:       DateTime(l.CreatedAt),
		},
		Services: []Section{
			tourSection(l.TourServices),
			hotelSection(l.HotelServices),
			flightSection(l.FlightServices),
			additionalSection(l.AdditionalServices),
		},
		Payments:    paymentSection(l.Payments),
		Incidencies: incidencySection(l.Incidencies),
		Source:      l,
	}
	if next, ok := l.Status.Next(); ok {
		d.NextStatus = next
		d.NextStatusLabel = next.Label()
		d.CanAdvance = true
	}
	return d
}

func customerParty(c *entity.Customer) Party {
	if c == nil {
		return Party{Name: placeholder, Email: placeholder}
	}
	doc := placeholder
	if c.IDDocumentNumber != "" {
		doc = string(c.IDDocumentType) + " " + c.IDDocumentNumber
	}
	return Party{
		Name:     PersonName(c.FirstName, c.LastName),
		Email:    OrPlaceholder(c.Email),
		Phone:    OrPlaceholder(c.PhoneNumber),
		Document: doc,
	}
}

func staffParty(s *entity.Staff) Party {
	if s == nil || s.User == nil {
		return Party{Name: placeholder, Email: placeholder}
	}
	return Party{Name: OrPlaceholder(s.User.UserName), Email: OrPlaceholder(s.User.Email), Phone: OrPlaceholder(s.PhoneNumber)}
}

func finish(s Section, empty string, subtotal decimal.Decimal) Section {
	if len(s.Rows) == 0 {
		s.Rows = [][]string{}
		s.Placeholder = empty
		return s
	}
	s.Subtotal = Amount(subtotal)
	return s
}

func terms(t entity.ServiceTerms) (string, string) {
	return Percent(t.TariffRate), YesNo(t.IsTaxed)
}

func tourSection(services []entity.TourService) Section {
	s := Section{
		Key:     string(entity.ServiceTour),
		Title:   "Tours",
		Headers: []string{"Tour", "Lugar", "Inicio", "Fin", "Precio", "Estado", "Tarifa", "IGV"},
	}
	total := decimal.Zero
	for _, svc := range services {
		rate, taxed := terms(svc.ServiceTerms)
		for _, t := range svc.Tours {
			s.Rows = append(s.Rows, []string{
				OrPlaceholder(t.Title), OrPlaceholder(t.Place), Date(t.StartDate), Date(t.EndDate),
				Money(t.Price, t.Currency), string(t.Status), rate, taxed,
			})
		}
		total = total.Add(svc.Subtotal())
	}
	return finish(s, "No hay servicios de tour", total)
}

func hotelSection(services []entity.HotelService) Section {
	s := Section{
		Key:     string(entity.ServiceHotel),
		Title:   "Hoteles",
		Headers: []string{"Hotel", "Habitación", "Check-in", "Check-out", "Noches", "Precio por noche", "Estado", "Tarifa", "IGV"},
	}
	total := decimal.Zero
	for _, svc := range services {
		rate, taxed := terms(svc.ServiceTerms)
		for _, b := range svc.HotelBookings {
			room := OrPlaceholder(b.Room)
			if b.RoomDescription != "" {
				room += " (" + b.RoomDescription + ")"
			}
			s.Rows = append(s.Rows, []string{
				OrPlaceholder(b.Hotel), room, Date(b.CheckIn), Date(b.CheckOut), fmt.Sprint(b.Nights()),
				Money(b.PriceByNight, b.Currency), string(b.Status), rate, taxed,
			})
		}
		total = total.Add(svc.Subtotal())
	}
	return finish(s, "No hay servicios de hotel", total)
}

func flightSection(services []entity.FlightService) Section {
	s := Section{
		Key:     string(entity.ServiceFlight),
		Title:   "Vuelos",
		Headers: []string{"Ruta", "Salida", "Llegada", "Aerolínea", "Código aerolínea", "Código Costamar", "Tickets", "Precio", "Estado"},
	}
	total := decimal.Zero
	for _, svc := range services {
		for _, b := range svc.FlightBookings {
			s.Rows = append(s.Rows, []string{
				OrPlaceholder(b.Origin) + " → " + OrPlaceholder(b.Destiny), DateTime(b.DepartureDate), DateTime(b.ArrivalDate),
				OrPlaceholder(b.Aeroline), OrPlaceholder(b.AerolineBookingCode), OrPlaceholder(b.CostamarBookingCode),
				OrPlaceholder(b.TktNumbers), Money(b.TotalPrice, b.Currency), string(b.Status),
			})
		}
		total = total.Add(svc.Subtotal())
	}
	return finish(s, "No hay servicios de vuelo", total)
}

func additionalSection(services []entity.AdditionalService) Section {
	s := Section{
		Key:     string(entity.ServiceAdditional),
		Title:   "Servicios adicionales",
		Headers: []string{"Precio", "Estado", "Tarifa", "IGV"},
	}
	total := decimal.Zero
	for _, svc := range services {
		rate, taxed := terms(svc.ServiceTerms)
		s.Rows = append(s.Rows, []string{Money(svc.Price, svc.Currency), string(svc.Status), rate, taxed})
		total = total.Add(svc.Subtotal())
	}
	return finish(s, "No hay servicios adicionales", total)
}

func paymentSection(payments []entity.Payment) Section {
	s := Section{
		Key:     "payments",
		Title:   "Pagos",
		Headers: []string{"Fecha", "Medio", "Monto", "Estado"},
	}
	total := decimal.Zero
	for _, p := range payments {
		amount := Amount(p.Amount)
		if p.Currency != "" {
			amount = Money(p.Amount, p.Currency)
		}
		s.Rows = append(s.Rows, []string{DateOnly(p.PaymentDate), string(p.PaymentMethod), amount, OrPlaceholder(p.Status)})
		total = total.Add(p.Amount)
	}
	return finish(s, PlaceholderPayments, total)
}

func incidencySection(incidencies []entity.Incidency) Section {
	s := Section{
		Key:     "incidencies",
		Title:   "Incidencias",
		Headers: []string{"Fecha", "Motivo", "Monto", "Estado"},
	}
	total := decimal.Zero
	for _, inc := range incidencies {
		amount := placeholder
		if inc.Amount != nil {
			amount = Amount(*inc.Amount)
			total = total.Add(*inc.Amount)
		}
		s.Rows = append(s.Rows, []string{Date(inc.IncidencyDate), OrPlaceholder(inc.Reason), amount, OrPlaceholder(inc.Status)})
	}
	return finish(s, PlaceholderIncidencies, total)
}
