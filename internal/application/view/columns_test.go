package view_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/ptc-travel/backoffice/internal/application/view"
	"github.com/ptc-travel/backoffice/internal/domain/entity"
)

func page(n int) view.Paging {
	return view.Paging{PageSize: 10, TotalPages: 1, TotalElements: int64(n)}
}

func TestStaffColumns(t *testing.T) {
	rows := []entity.Staff{
		{ID: 4, Role: entity.RoleCounter, Salary: decimal.NewFromInt(2500), Currency: entity.CurrencyPEN, IsActive: true,
			User: &entity.User{UserName: "mrojas"}},
		{ID: 5, Role: entity.RoleSales, Salary: decimal.NewFromInt(900), Currency: entity.CurrencyUSD},
	}
	tv := view.RenderTable(view.StaffColumns, rows, page(2))

	assert.Equal(t, []string{"ID", "Usuario", "Rol", "Teléfono", "Salario", "Ingreso", "Estado"}, tv.Headers)
	assert.Equal(t, []string{"4", "mrojas", "COUNTER", "-", "S/ 2,500.00", "-", "Activo"}, tv.Rows[0])
	assert.Equal(t, "-", tv.Rows[1][1])
	assert.Equal(t, "Inactivo", tv.Rows[1][6])
}

func TestCustomerColumns(t *testing.T) {
	rows := []entity.Customer{{ID: 9, FirstName: "Rosa", LastName: "Quispe", IDDocumentType: entity.DocumentDNI, IDDocumentNumber: "45678912"}}
	tv := view.RenderTable(view.CustomerColumns, rows, page(1))

	assert.Equal(t, "Rosa Quispe", tv.Rows[0][1])
	assert.Equal(t, "DNI 45678912", tv.Rows[0][2])
}

func TestLiquidationColumns(t *testing.T) {
	rows := []entity.Liquidation{{ID: 3, TotalAmount: decimal.RequireFromString("1234.5"), Status: entity.StatusOnCourse, PaymentStatus: entity.PaymentPending}}
	tv := view.RenderTable(view.LiquidationColumns, rows, page(1))

	row := tv.Rows[0]
	assert.Equal(t, "3", row[0])
	assert.Equal(t, "-", row[1])
	assert.Equal(t, "1,234.50", row[2])
	assert.Equal(t, entity.StatusOnCourse.Label(), row[4])
	assert.Equal(t, entity.PaymentPending.Label(), row[5])
}
