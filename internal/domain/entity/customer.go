package entity

// DocumentType tipo de documento de identidad del cliente.
type DocumentType string

const (
	DocumentDNI           DocumentType = "DNI"
	DocumentPassport      DocumentType = "PASSPORT"
	DocumentCE            DocumentType = "CE"
	DocumentRUC           DocumentType = "RUC"
	DocumentDriverLicense DocumentType = "DRIVER_LICENSE"
)

// DocumentTypes tipos aceptados por el backend.
var DocumentTypes = []DocumentType{DocumentDNI, DocumentPassport, DocumentCE, DocumentRUC, DocumentDriverLicense}

// Valid indica si el tipo existe.
func (d DocumentType) Valid() bool {
	for _, v := range DocumentTypes {
		if v == d {
			return true
		}
	}
	return false
}

// Customer cliente de la agencia.
type Customer struct {
	ID               int64        `json:"id"`
	FirstName        string       `json:"firstName"`
	LastName         string       `json:"lastName"`
	Email            string       `json:"email,omitempty"`
	PhoneNumber      string       `json:"phoneNumber,omitempty"`
	BirthDate        Date         `json:"birthDate"`
	IDDocumentType   DocumentType `json:"idDocumentType"`
	IDDocumentNumber string       `json:"idDocumentNumber"`
	Nationality      string       `json:"nationality,omitempty"`
	Address          string       `json:"address,omitempty"`
	IsActive         bool         `json:"isActive"`
	CreatedDate      DateTime     `json:"createdDate"`
}

// FullName "nombre apellido".
func (c Customer) FullName() string {
	switch {
	case c.FirstName == "":
		return c.LastName
	case c.LastName == "":
		return c.FirstName
	}
	return c.FirstName + " " + c.LastName
}

// CustomerDraft datos validados para crear un cliente. Los opcionales vacíos no se envían.
type CustomerDraft struct {
	FirstName        string       `json:"firstName" validate:"required"`
	LastName         string       `json:"lastName" validate:"required"`
	Email            string       `json:"email,omitempty" validate:"omitempty,email"`
	PhoneNumber      string       `json:"phoneNumber,omitempty"`
	BirthDate        Date         `json:"birthDate" validate:"required,lte"`
	IDDocumentType   DocumentType `json:"idDocumentType" validate:"required,oneof=DNI PASSPORT CE RUC DRIVER_LICENSE"`
	IDDocumentNumber string       `json:"idDocumentNumber" validate:"required"`
	Address          string       `json:"address,omitempty"`
	Nationality      string       `json:"nationality,omitempty"`
}
