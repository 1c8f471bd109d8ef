package dto

import "github.com/ptc-travel/backoffice/internal/domain/entity"

// StaffForm formulario de alta de staff sobre un usuario existente.
type StaffForm struct {
	UserID      Value `json:"userId"`
	PhoneNumber Value `json:"phoneNumber"`
	Salary      Value `json:"salary"`
	Currency    Value `json:"currency"`
	Role        Value `json:"role"`
	HireDate    Value `json:"hireDate"`
}

// Validate convierte el formulario en un borrador válido.
func (f StaffForm) Validate() (entity.StaffDraft, error) {
	c := newChecker()
	draft := entity.StaffDraft{
		UserID:      c.id("userId", f.UserID),
		PhoneNumber: f.PhoneNumber.trimmed(),
		Salary:      c.decimal("salary", f.Salary),
		Currency:    c.currency("currency", f.Currency),
		Role:        entity.StaffRole(upper(f.Role)),
		HireDate:    c.date("hireDate", f.HireDate),
	}
	c.checkRules(draft)
	return draft, c.err()
}

// StaffWithUserForm formulario que crea usuario y staff juntos.
type StaffWithUserForm struct {
	UserForm
	PhoneNumber Value `json:"phoneNumber"`
	Salary      Value `json:"salary"`
	Currency    Value `json:"currency"`
	Role        Value `json:"role"`
	HireDate    Value `json:"hireDate"`
}

// Validate convierte el formulario en un borrador válido.
func (f StaffWithUserForm) Validate() (entity.StaffWithUserDraft, error) {
	c := newChecker()
	user := f.UserForm.draft()
	draft := entity.StaffWithUserDraft{
		Email:       user.Email,
		Password:    user.Password,
		UserName:    user.UserName,
		PhoneNumber: f.PhoneNumber.trimmed(),
		Salary:      c.decimal("salary", f.Salary),
		Currency:    c.currency("currency", f.Currency),
		Role:        entity.StaffRole(upper(f.Role)),
		HireDate:    c.date("hireDate", f.HireDate),
	}
	c.checkRules(draft)
	return draft, c.err()
}
