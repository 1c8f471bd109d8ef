package domain_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptc-travel/backoffice/internal/domain"
)

func TestFetchError_MensajeDelSobre(t *testing.T) {
	err := &domain.FetchError{
		Kind:     domain.FetchBackend,
		Status:   409,
		Method:   "POST",
		Path:     "/clientes",
		Envelope: &domain.ErrorEnvelope{StatusCode: 409, Message: "Documento duplicado", Error: "Conflict"},
	}
	assert.Equal(t, "Documento duplicado", err.BackendMessage())
	assert.Equal(t, "backend error POST /clientes: status 409: Documento duplicado", err.Error())
	assert.False(t, err.IsNotFound())
}

func TestFetchError_SinSobreUsaCausa(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("listar usuarios: %w", &domain.FetchError{Kind: domain.FetchNetwork, Err: cause})

	var fe *domain.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, domain.FetchNetwork, fe.Kind)
	assert.ErrorIs(t, err, cause)
	assert.Empty(t, fe.BackendMessage())
	assert.Contains(t, err.Error(), "connection refused")
}

func TestFetchError_MensajeCaeEnError(t *testing.T) {
	err := &domain.FetchError{Kind: domain.FetchBackend, Status: 404, Envelope: &domain.ErrorEnvelope{Error: "Not Found"}}
	assert.Equal(t, "Not Found", err.BackendMessage())
	assert.True(t, err.IsNotFound())
}

func TestFields_AcumulaYConvierte(t *testing.T) {
	f := domain.Fields{}
	assert.NoError(t, f.Err())

	f.Add("email", "requerido")
	f.Add("email", "formato inválido")
	f.Add("amount", "debe ser mayor a 0")

	err := f.Err()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	var ve *domain.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "requerido", ve.Fields["email"])
	assert.Equal(t, "validación: amount: debe ser mayor a 0; email: requerido", err.Error())
}
