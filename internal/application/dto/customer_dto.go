package dto

import "github.com/ptc-travel/backoffice/internal/domain/entity"

// CustomerForm formulario de alta de cliente. Email, teléfono, dirección y nacionalidad son opcionales.
type CustomerForm struct {
	FirstName        Value `json:"firstName"`
	LastName         Value `json:"lastName"`
	Email            Value `json:"email"`
	PhoneNumber      Value `json:"phoneNumber"`
	BirthDate        Value `json:"birthDate"`
	IDDocumentType   Value `json:"idDocumentType"`
	IDDocumentNumber Value `json:"idDocumentNumber"`
	Address          Value `json:"address"`
	Nationality      Value `json:"nationality"`
}

// Validate convierte el formulario en un borrador válido. La fecha de nacimiento no puede ser futura
// y el número de DNI o RUC debe tener sus dígitos.
func (f CustomerForm) Validate() (entity.CustomerDraft, error) {
	c := newChecker()
	draft := entity.CustomerDraft{
		FirstName:        f.FirstName.trimmed(),
		LastName:         f.LastName.trimmed(),
		Email:            f.Email.trimmed(),
		PhoneNumber:      f.PhoneNumber.trimmed(),
		BirthDate:        c.date("birthDate", f.BirthDate),
		IDDocumentType:   entity.DocumentType(upper(f.IDDocumentType)),
		IDDocumentNumber: f.IDDocumentNumber.trimmed(),
		Address:          f.Address.trimmed(),
		Nationality:      f.Nationality.trimmed(),
	}
	c.checkRules(draft)
	return draft, c.err()
}
