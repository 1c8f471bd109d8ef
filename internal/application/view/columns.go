package view

import (
	"strconv"

	"github.com/ptc-travel/backoffice/internal/domain/entity"
)

// Columnas de los listados del back-office.

var UserColumns = []Column[entity.User]{
	{Header: "ID", Cell: func(u entity.User) string { return strconv.FormatInt(u.ID, 10) }},
	{Header: "Usuario", Cell: func(u entity.User) string { return OrPlaceholder(u.UserName) }},
	{Header: "Email", Cell: func(u entity.User) string { return OrPlaceholder(u.Email) }},
	{Header: "Estado", Cell: func(u entity.User) string { return ActiveLabel(u.IsActive) }},
	{Header: "Creado", Cell: func(u entity.User) string { return DateTime(u.CreatedDate) }},
}

var StaffColumns = []Column[entity.Staff]{
	{Header: "ID", Cell: func(s entity.Staff) string { return strconv.FormatInt(s.ID, 10) }},
	{Header: "Usuario", Cell: func(s entity.Staff) string {
		if s.User == nil {
			return placeholder
		}
		return OrPlaceholder(s.User.UserName)
	}},
	{Header: "Rol", Cell: func(s entity.Staff) string { return OrPlaceholder(string(s.Role)) }},
	{Header: "Teléfono", Cell: func(s entity.Staff) string { return OrPlaceholder(s.PhoneNumber) }},
	{Header: "Salario", Cell: func(s entity.Staff) string { return Money(s.Salary, s.Currency) }},
	{Header: "Ingreso", Cell: func(s entity.Staff) string { return Date(s.HireDate) }},
	{Header: "Estado", Cell: func(s entity.Staff) string { return ActiveLabel(s.IsActive) }},
}

var CustomerColumns = []Column[entity.Customer]{
	{Header: "ID", Cell: func(c entity.Customer) string { return strconv.FormatInt(c.ID, 10) }},
	{Header: "Nombre", Cell: func(c entity.Customer) string { return OrPlaceholder(PersonName(c.FirstName, c.LastName)) }},
	{Header: "Documento", Cell: func(c entity.Customer) string {
		if c.IDDocumentNumber == "" {
			return placeholder
		}
		return string(c.IDDocumentType) + " " + c.IDDocumentNumber
	}},
	{Header: "Email", Cell: func(c entity.Customer) string { return OrPlaceholder(c.Email) }},
	{Header: "Teléfono", Cell: func(c entity.Customer) string { return OrPlaceholder(c.PhoneNumber) }},
	{Header: "Estado", Cell: func(c entity.Customer) string { return ActiveLabel(c.IsActive) }},
}

var LiquidationColumns = []Column[entity.Liquidation]{
	{Header: "ID", Cell: func(l entity.Liquidation) string { return strconv.FormatInt(l.ID, 10) }},
	{Header: "Cliente", Cell: func(l entity.Liquidation) string {
		if l.Customer == nil {
			return placeholder
		}
		return OrPlaceholder(PersonName(l.Customer.FirstName, l.Customer.LastName))
	}},
	{Header: "Total", Cell: func(l entity.Liquidation) string { return Amount(l.TotalAmount) }},
	{Header: "Vence", Cell: func(l entity.Liquidation) string { return DateOnly(l.PaymentDeadline) }},
	{Header: "Estado", Cell: func(l entity.Liquidation) string { return l.Status.Label() }},
	{Header: "Pago", Cell: func(l entity.Liquidation) string { return l.PaymentStatus.Label() }},
}
