package entity

import "github.com/shopspring/decimal"

// StaffRole rol de un miembro del personal. También es el rol de los operadores del back-office.
type StaffRole string

const (
	RoleSales      StaffRole = "SALES"
	RoleCounter    StaffRole = "COUNTER"
	RoleAccounting StaffRole = "ACCOUNTING"
	RoleOperations StaffRole = "OPERATIONS"
	RoleSuperAdmin StaffRole = "SUPERADMIN"
	RoleSupport    StaffRole = "SUPPORT"
)

// StaffRoles todos los roles, en el orden en que se muestran.
var StaffRoles = []StaffRole{RoleSales, RoleCounter, RoleAccounting, RoleOperations, RoleSuperAdmin, RoleSupport}

// Valid indica si el rol existe.
func (r StaffRole) Valid() bool {
	for _, v := range StaffRoles {
		if v == r {
			return true
		}
	}
	return false
}

// Staff miembro del personal de la agencia.
type Staff struct {
	ID          int64           `json:"id"`
	PhoneNumber string          `json:"phoneNumber"`
	Salary      decimal.Decimal `json:"salary"`
	Currency    Currency        `json:"currency"`
	Role        StaffRole       `json:"role"`
	HireDate    Date            `json:"hireDate"`
	IsActive    bool            `json:"isActive"`
	UserID      int64           `json:"userId,omitempty"`
	User        *User           `json:"user,omitempty"`
	CreatedDate DateTime        `json:"createdDate"`
}

// StaffDraft datos validados para crear un staff sobre un usuario existente.
type StaffDraft struct {
	UserID      int64           `json:"userId" validate:"required,gt=0"`
	PhoneNumber string          `json:"phoneNumber" validate:"required"`
	Salary      decimal.Decimal `json:"salary" validate:"gte=0"`
	Currency    Currency        `json:"currency" validate:"required,oneof=PEN USD"`
	Role        StaffRole       `json:"role" validate:"required,oneof=SALES COUNTER ACCOUNTING OPERATIONS SUPERADMIN SUPPORT"`
	HireDate    Date            `json:"hireDate" validate:"required"`
}

// StaffWithUserDraft crea usuario y staff en una sola operación.
type StaffWithUserDraft struct {
	Email       string          `json:"email" validate:"required,email"`
	Password    string          `json:"password" validate:"required,min=8"`
	UserName    string          `json:"userName" validate:"required"`
	PhoneNumber string          `json:"phoneNumber" validate:"required"`
	Salary      decimal.Decimal `json:"salary" validate:"gte=0"`
	Currency    Currency        `json:"currency" validate:"required,oneof=PEN USD"`
	Role        StaffRole       `json:"role" validate:"required,oneof=SALES COUNTER ACCOUNTING OPERATIONS SUPERADMIN SUPPORT"`
	HireDate    Date            `json:"hireDate" validate:"required"`
}
