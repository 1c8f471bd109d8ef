package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ptc-travel/backoffice/internal/domain"
	"github.com/ptc-travel/backoffice/internal/domain/entity"
	"github.com/ptc-travel/backoffice/internal/infrastructure/backend"
)

type recordedCall struct {
	method, endpoint string
	status           int
}

type metricsSpy struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (m *metricsSpy) ObserveBackendCall(method, endpoint string, status int, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, recordedCall{method, endpoint, status})
}
func (m *metricsSpy) ObserveCacheLookup(bool)      {}
func (m *metricsSpy) ObserveInvalidation(int)      {}
func (m *metricsSpy) ObserveMutation(string, bool) {}

func newServer(t *testing.T, h http.HandlerFunc) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return srv
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

func TestUserGateway_ListEnviaPaginacion(t *testing.T) {
	spy := &metricsSpy{}
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/users/paginados", r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "5", r.URL.Query().Get("size"))
		writeJSON(w, 200, `{"content":[{"id":11,"userName":"ana","email":"ana@ptc.pe","isActive":true}],
			"page":{"size":5,"number":2,"totalElements":11,"totalPages":3}}`)
	})
	c := backend.NewClient(srv.URL+"/v1/", backend.WithMetrics(spy))

	page, err := backend.NewUserGateway(c).List(context.Background(), entity.Pagination{Page: 2, Size: 5})
	require.NoError(t, err)
	require.Len(t, page.Content, 1)
	assert.Equal(t, "ana", page.Content[0].UserName)
	assert.Equal(t, 3, page.Page.TotalPages)

	require.Len(t, spy.calls, 1)
	assert.Equal(t, recordedCall{"GET", "/users/paginados", 200}, spy.calls[0])
}

func TestGetPage_RechazaPaginaIncoherente(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, 200, `{"content":[],"page":{"size":10,"number":0,"totalElements":25,"totalPages":2}}`)
	})
	_, err := backend.NewCustomerGateway(backend.NewClient(srv.URL)).List(context.Background(), entity.DefaultPagination())

	var fe *domain.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, domain.FetchBackend, fe.Kind)
}

func TestGetPage_ContenidoNuloEsVacio(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, 200, `{"content":null,"page":{"size":10,"number":0,"totalElements":0,"totalPages":0}}`)
	})
	page, err := backend.NewStaffGateway(backend.NewClient(srv.URL)).List(context.Background(), entity.DefaultPagination())
	require.NoError(t, err)
	assert.NotNil(t, page.Content)
	assert.True(t, page.Empty())
}

func TestClient_SobreDeError(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		writeJSON(w, 409, `{"statusCode":409,"message":"El documento ya está registrado","error":"Conflict",
			"category":"BUSINESS","path":"/clientes","method":"POST"}`)
	})
	_, err := backend.NewCustomerGateway(backend.NewClient(srv.URL)).Create(context.Background(), entity.CustomerDraft{FirstName: "Rosa"})

	var fe *domain.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, domain.FetchBackend, fe.Kind)
	assert.Equal(t, 409, fe.Status)
	assert.Equal(t, "El documento ya está registrado", fe.BackendMessage())
	assert.Equal(t, "BUSINESS", fe.Envelope.Category)
}

func TestClient_401EsNoAutenticado(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	_, err := backend.NewUserGateway(backend.NewClient(srv.URL)).GetByID(context.Background(), 1)

	var fe *domain.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, domain.FetchUnauthenticated, fe.Kind)
	assert.Nil(t, fe.Envelope)
}

func TestClient_404EsNotFound(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/staff/99", r.URL.Path)
		writeJSON(w, 404, `{"statusCode":404,"message":"Staff no encontrado","error":"Not Found"}`)
	})
	_, err := backend.NewStaffGateway(backend.NewClient(srv.URL)).GetByID(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClient_ErrorDeRed(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	spy := &metricsSpy{}
	_, err := backend.NewUserGateway(backend.NewClient(url, backend.WithMetrics(spy))).List(context.Background(), entity.DefaultPagination())

	var fe *domain.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, domain.FetchNetwork, fe.Kind)
	require.Len(t, spy.calls, 1)
	assert.Equal(t, 0, spy.calls[0].status)
}

func TestClient_Timeout(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	c := backend.NewClient(srv.URL, backend.WithTimeout(50*time.Millisecond))
	_, err := backend.NewUserGateway(c).GetByID(context.Background(), 1)

	var fe *domain.FetchError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, domain.FetchNetwork, fe.Kind)
}

func TestStaffGateway_ListByRole(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/staff/by-role/SALES", r.URL.Path)
		writeJSON(w, 200, `[{"id":1,"role":"SALES","salary":2500,"currency":"PEN"}]`)
	})
	staff, err := backend.NewStaffGateway(backend.NewClient(srv.URL)).ListByRole(context.Background(), entity.RoleSales)
	require.NoError(t, err)
	require.Len(t, staff, 1)
	assert.True(t, staff[0].Salary.Equal(decimal.NewFromInt(2500)))
}

func TestStaffGateway_CreateWithUserEnviaPayloadPlano(t *testing.T) {
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/staff/with-user", r.URL.Path)
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "luis@ptc.pe", body["email"])
		assert.Equal(t, "COUNTER", body["role"])
		writeJSON(w, 201, `{"id":4,"role":"COUNTER"}`)
	})
	s, err := backend.NewStaffGateway(backend.NewClient(srv.URL)).CreateWithUser(context.Background(), entity.StaffWithUserDraft{
		Email: "luis@ptc.pe", Password: "secreto123", UserName: "luis", Role: entity.RoleCounter,
		Currency: entity.CurrencyPEN, Salary: decimal.NewFromInt(1800),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(4), s.ID)
}

func TestLiquidationGateway_SubRecursos(t *testing.T) {
	var paths []string
	var mu sync.Mutex
	srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		paths = append(paths, r.Method+" "+r.URL.Path)
		mu.Unlock()
		writeJSON(w, 201, `{}`)
	})
	g := backend.NewLiquidationGateway(backend.NewClient(srv.URL))
	ctx := context.Background()

	require.NoError(t, g.AddTourService(ctx, 7, entity.TourServiceDraft{}))
	require.NoError(t, g.AddHotelService(ctx, 7, entity.HotelServiceDraft{}))
	require.NoError(t, g.AddFlightService(ctx, 7, entity.FlightServiceDraft{}))
	require.NoError(t, g.AddAdditionalService(ctx, 7, entity.AdditionalServiceDraft{}))
	require.NoError(t, g.AddPayment(ctx, 7, entity.PaymentDraft{PaymentMethod: entity.PaymentYape, Amount: decimal.NewFromInt(50)}))
	require.NoError(t, g.AddIncidency(ctx, 7, entity.IncidencyDraft{Reason: "Retraso"}))

	assert.Equal(t, []string{
		"POST /liquidations/7/tour-services",
		"POST /liquidations/7/hotel-services",
		"POST /liquidations/7/flight-services",
		"POST /liquidations/7/additional-services",
		"POST /liquidations/7/payments",
		"POST /liquidations/7/incidencies",
	}, paths)
}

func TestLiquidationGateway_UpdateStatus(t *testing.T) {
	t.Run("aplicado", func(t *testing.T) {
		srv := newServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPatch, r.Method)
			assert.Equal(t, "/liquidations/3/status", r.URL.Path)
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "ON_COURSE", body["status"])
			w.WriteHeader(http.StatusNoContent)
		})
		err := backend.NewLiquidationGateway(backend.NewClient(srv.URL)).UpdateStatus(context.Background(), 3, entity.StatusOnCourse)
		assert.NoError(t, err)
	})

	for _, status := range []int{404, 405, 501} {
		srv := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		})
		err := backend.NewLiquidationGateway(backend.NewClient(srv.URL)).UpdateStatus(context.Background(), 3, entity.StatusOnCourse)
		assert.ErrorIs(t, err, domain.ErrStatusContractUndefined, "status %d", status)
	}

	t.Run("otros errores pasan tal cual", func(t *testing.T) {
		srv := newServer(t, func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, 422, `{"statusCode":422,"message":"Transición inválida"}`)
		})
		err := backend.NewLiquidationGateway(backend.NewClient(srv.URL)).UpdateStatus(context.Background(), 3, entity.StatusOnCourse)
		assert.False(t, errors.Is(err, domain.ErrStatusContractUndefined))
		var fe *domain.FetchError
		require.ErrorAs(t, err, &fe)
		assert.Equal(t, "Transición inválida", fe.BackendMessage())
	})
}
