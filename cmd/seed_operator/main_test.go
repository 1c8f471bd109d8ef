package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ptc-travel/backoffice/internal/domain/entity"
)

func TestToOperator(t *testing.T) {
	op, err := toOperator(operatorRow{email: " Ops@PTC.pe ", role: "operations", password: "clave-segura"}, true)
	require.NoError(t, err)
	assert.Equal(t, "ops@ptc.pe", op.Email)
	assert.Equal(t, "ops", op.UserName)
	assert.Equal(t, entity.RoleOperations, op.Role)
	assert.True(t, op.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte("clave-segura")))

	_, err = toOperator(operatorRow{email: "x@ptc.pe", role: "PILOTO", password: "clave-segura"}, true)
	assert.Error(t, err)

	_, err = toOperator(operatorRow{email: "x@ptc.pe", role: "SALES", password: "corta"}, true)
	assert.Error(t, err)
}

func TestReadCSV_Latin1(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.csv")
	// "Peña" en ISO-8859-1: ñ = 0xF1
	content := []byte("email,nombre,rol,clave\nmpena@ptc.pe,Pe\xf1a,SALES,clave-segura\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	rows, err := readCSV(path, true)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Peña", rows[0].name)
	assert.Equal(t, "SALES", rows[0].role)
}

func TestReadCSV_Vacio(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.csv")
	require.NoError(t, os.WriteFile(path, []byte("email,nombre,rol,clave\n"), 0o600))

	_, err := readCSV(path, false)
	assert.Error(t, err)
}
