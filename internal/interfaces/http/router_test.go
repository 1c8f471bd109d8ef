package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ptc-travel/backoffice/internal/application/auth"
	"github.com/ptc-travel/backoffice/internal/application/dto"
	"github.com/ptc-travel/backoffice/internal/application/query"
	"github.com/ptc-travel/backoffice/internal/application/usecase"
	"github.com/ptc-travel/backoffice/internal/domain/entity"
	"github.com/ptc-travel/backoffice/internal/infrastructure/backend"
	"github.com/ptc-travel/backoffice/internal/infrastructure/cache"
	"github.com/ptc-travel/backoffice/internal/infrastructure/metrics"
	"github.com/ptc-travel/backoffice/internal/infrastructure/pdf"
	apphttp "github.com/ptc-travel/backoffice/internal/interfaces/http"
)

const testPassword = "clave-segura"

type operators struct {
	ops map[string]*entity.Operator
}

func (o *operators) FindByEmail(_ context.Context, email string) (*entity.Operator, error) {
	return o.ops[email], nil
}
func (o *operators) FindByID(_ context.Context, id string) (*entity.Operator, error) {
	for _, op := range o.ops {
		if op.ID == id {
			return op, nil
		}
	}
	return nil, nil
}
func (o *operators) Upsert(context.Context, *entity.Operator) error  { return nil }
func (o *operators) TouchLastLogin(context.Context, string) error    { return nil }

type transitions struct {
	mu   sync.Mutex
	list []*entity.StatusTransition
}

func (t *transitions) Create(_ context.Context, tr *entity.StatusTransition) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	tr.ID = "tr-1"
	t.list = append(t.list, tr)
	return nil
}
func (t *transitions) Complete(context.Context, string, entity.TransitionOutcome, string) error {
	return nil
}
func (t *transitions) ListByLiquidation(_ context.Context, id int64) ([]*entity.StatusTransition, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.list, nil
}

// fakeBackend API de la agencia en memoria.
type fakeBackend struct {
	usersListed atomic.Int32
	statusPatch atomic.Int32
	usersTotal  atomic.Int32

	customersDown atomic.Bool
	mu            sync.Mutex
	customers     []map[string]any
}

func writePage(w http.ResponseWriter, r *http.Request, total int, item func(i int) any) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))
	content := []any{}
	for i := page * size; i < total && i < (page+1)*size; i++ {
		content = append(content, item(i))
	}
	_ = json.NewEncoder(w).Encode(map[string]any{
		"content": content,
		"page": map[string]any{
			"size": size, "number": page, "totalElements": total,
			"totalPages": (total + size - 1) / size,
		},
	})
}

func (b *fakeBackend) handler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/users/paginados":
		b.usersListed.Add(1)
		total := int(b.usersTotal.Load())
		if total == 0 {
			total = 1
		}
		writePage(w, r, total, func(i int) any {
			if i == 0 {
				return map[string]any{"id": 1, "userName": "ana", "email": "ana@ptc.pe", "isActive": true}
			}
			return map[string]any{"id": i + 1, "userName": "user" + strconv.Itoa(i+1), "email": "user" + strconv.Itoa(i+1) + "@ptc.pe", "isActive": true}
		})
	case r.Method == http.MethodPost && r.URL.Path == "/users":
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["email"] == "dup@ptc.pe" {
			w.WriteHeader(http.StatusConflict)
			_, _ = io.WriteString(w, `{"statusCode":409,"message":"El email ya está registrado","error":"Conflict"}`)
			return
		}
		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":2,"userName":"luis","email":"luis@ptc.pe","isActive":true}`)
	case r.Method == http.MethodGet && r.URL.Path == "/clientes/paginados":
		if b.customersDown.Load() {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = io.WriteString(w, `{"statusCode":503,"message":"Servicio en mantenimiento","error":"Service Unavailable"}`)
			return
		}
		b.mu.Lock()
		defer b.mu.Unlock()
		writePage(w, r, len(b.customers), func(i int) any { return b.customers[i] })
	case r.Method == http.MethodPost && r.URL.Path == "/clientes":
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		b.mu.Lock()
		body["id"] = len(b.customers) + 1
		body["isActive"] = true
		b.customers = append(b.customers, body)
		b.mu.Unlock()
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(body)
	case r.Method == http.MethodGet && r.URL.Path == "/liquidations/7":
		_, _ = io.WriteString(w, `{"id":7,"customer_id":3,"staff_id":4,"currency_rate":"3.75","total_amount":"1200.00",
			"companion":1,"status":"IN_QUOTE","payment_status":"PENDING",
			"customer":{"id":3,"firstName":"rosa","lastName":"quispe"}}`)
	case r.Method == http.MethodGet && r.URL.Path == "/liquidations/404":
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"statusCode":404,"message":"Liquidación no encontrada","error":"Not Found"}`)
	case r.Method == http.MethodPatch && r.URL.Path == "/liquidations/7/status":
		b.statusPatch.Add(1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"statusCode":404,"message":"Cannot PATCH /liquidations/7/status","error":"Not Found"}`)
	default:
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"statusCode":404,"message":"Not Found","error":"Not Found"}`)
	}
}

type testEnv struct {
	app     *fiber.App
	backend *fakeBackend
}

func newEnv(t *testing.T) *testEnv {
	t.Helper()
	fb := &fakeBackend{}
	srv := httptest.NewServer(http.HandlerFunc(fb.handler))
	t.Cleanup(srv.Close)

	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	ops := &operators{ops: map[string]*entity.Operator{
		"ops@ptc.pe":   {ID: "op-1", UserName: "ops", Email: "ops@ptc.pe", PasswordHash: string(hash), Role: entity.RoleOperations, IsActive: true},
		"sales@ptc.pe": {ID: "op-2", UserName: "sales", Email: "sales@ptc.pe", PasswordHash: string(hash), Role: entity.RoleSales, IsActive: true},
	}}

	m := metrics.New("test")
	client := backend.NewClient(srv.URL, backend.WithMetrics(m))
	qc := query.NewClient(cache.NewMemoryStore(), query.WithMetrics(m))
	liquidations := usecase.NewLiquidationUseCase(backend.NewLiquidationGateway(client), &transitions{}, qc, nil)

	app := apphttp.NewApp(apphttp.AppConfig{Name: "test"}, apphttp.RouterDeps{
		AuthUC:         auth.NewAuthUseCase(ops, cache.NewMemoryStore(), auth.JWTConfig{Secret: "s3cr3t", ExpMinutes: 10, Issuer: "test"}, nil),
		UserUC:         usecase.NewUserUseCase(backend.NewUserGateway(client), qc),
		StaffUC:        usecase.NewStaffUseCase(backend.NewStaffGateway(client), qc),
		CustomerUC:     usecase.NewCustomerUseCase(backend.NewCustomerGateway(client), qc),
		LiquidationUC:  liquidations,
		LiquidationPDF: usecase.NewLiquidationPDFUseCase(liquidations, pdf.NewStatementGenerator("PTC Travel"), nil, nil),
		Metrics:        m,
	})
	return &testEnv{app: app, backend: fb}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, r)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := e.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func (e *testEnv) login(t *testing.T, email string) string {
	t.Helper()
	resp := e.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": email, "password": testPassword})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out dto.LoginResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out.Token
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestHealth(t *testing.T) {
	env := newEnv(t)
	resp := env.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestLoginLogoutMe(t *testing.T) {
	env := newEnv(t)

	resp := env.do(t, http.MethodPost, "/api/auth/login", "", map[string]string{"email": "ops@ptc.pe", "password": "incorrecta"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "INVALID_CREDENTIALS", decode[dto.ErrorResponse](t, resp).Code)

	token := env.login(t, "ops@ptc.pe")
	resp = env.do(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "op-1", decode[entity.AuthUser](t, resp).ID)

	resp = env.do(t, http.MethodPost, "/api/auth/logout", token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "/login", decode[dto.ErrorResponse](t, resp).Redirect)
}

func TestUsers_ListadoCacheadoEInvalidadoTrasAlta(t *testing.T) {
	env := newEnv(t)
	token := env.login(t, "ops@ptc.pe")

	resp := env.do(t, http.MethodGet, "/api/users?page=0&size=10", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.ListResponse[entity.User]](t, resp)
	assert.Equal(t, "rows", string(list.Table.State))
	assert.Equal(t, []string{"1", "ana", "ana@ptc.pe", "Activo", "-"}, list.Table.Rows[0])
	assert.Equal(t, "Mostrando 1 a 1 de 1", list.Table.Summary)

	env.do(t, http.MethodGet, "/api/users?page=0&size=10", token, nil)
	assert.EqualValues(t, 1, env.backend.usersListed.Load())

	resp = env.do(t, http.MethodPost, "/api/users", token, map[string]string{"email": "luis@ptc.pe", "password": "12345678", "userName": "luis"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	created := decode[dto.MutationResponse](t, resp)
	assert.Equal(t, query.Notification{Level: query.LevelSuccess, Message: "Usuario creado correctamente"}, created.Notification)

	env.do(t, http.MethodGet, "/api/users?page=0&size=10", token, nil)
	assert.EqualValues(t, 2, env.backend.usersListed.Load())
}

func TestUsers_ErroresDeAlta(t *testing.T) {
	env := newEnv(t)
	token := env.login(t, "ops@ptc.pe")

	resp := env.do(t, http.MethodPost, "/api/users", token, map[string]string{"email": "no-es-email", "password": "123"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Contains(t, body.Fields, "email")
	assert.Contains(t, body.Fields, "password")
	assert.Nil(t, body.Notification)

	resp = env.do(t, http.MethodPost, "/api/users", token, map[string]string{"email": "dup@ptc.pe", "password": "12345678", "userName": "dup"})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	body = decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "BACKEND_ERROR", body.Code)
	require.NotNil(t, body.Notification)
	assert.Equal(t, "El email ya está registrado", body.Notification.Message)
}

func TestCustomers_FalloDelBackendReemplazaLaTabla(t *testing.T) {
	env := newEnv(t)
	env.backend.customersDown.Store(true)
	token := env.login(t, "ops@ptc.pe")

	resp := env.do(t, http.MethodGet, "/api/customers", token, nil)
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	list := decode[dto.ListResponse[entity.Customer]](t, resp)
	assert.Equal(t, "Servicio en mantenimiento", list.Error)
	assert.Empty(t, list.Table.Rows)
}

func TestCustomers_AltaApareceEnElListado(t *testing.T) {
	env := newEnv(t)
	token := env.login(t, "ops@ptc.pe")

	resp := env.do(t, http.MethodGet, "/api/customers?page=0&size=10", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, decode[dto.ListResponse[entity.Customer]](t, resp).Items)

	resp = env.do(t, http.MethodPost, "/api/customers", token, map[string]string{
		"firstName": "Juan", "lastName": "Perez", "idDocumentType": "DNI",
		"idDocumentNumber": "12345678", "birthDate": "1990-01-01",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = env.do(t, http.MethodGet, "/api/customers?page=0&size=10", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.ListResponse[entity.Customer]](t, resp)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "Juan Perez", list.Items[0].FullName())
	assert.Equal(t, "1990-01-01", list.Items[0].BirthDate.Format(entity.DateLayout))
	require.Len(t, list.Table.Rows, 1)
	assert.Equal(t, "Juan Perez", list.Table.Rows[0][1])
	assert.Equal(t, "DNI 12345678", list.Table.Rows[0][2])
}

func TestUsers_UltimaPaginaIncompleta(t *testing.T) {
	env := newEnv(t)
	env.backend.usersTotal.Store(25)
	token := env.login(t, "ops@ptc.pe")

	resp := env.do(t, http.MethodGet, "/api/users?page=2&size=10", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.ListResponse[entity.User]](t, resp)
	assert.Equal(t, 3, list.Page.TotalPages)
	assert.EqualValues(t, 25, list.Page.TotalElements)
	require.Len(t, list.Items, 5)
	assert.Equal(t, int64(21), list.Items[0].ID)
	assert.Len(t, list.Table.Rows, 5)
	assert.Equal(t, "Mostrando 21 a 25 de 25", list.Table.Summary)
	assert.Equal(t, "Página 3 de 3", list.Table.PageLabel)
	assert.False(t, list.Table.CanNext)
}

func TestListados_PaginacionInvalida(t *testing.T) {
	env := newEnv(t)
	token := env.login(t, "ops@ptc.pe")

	for _, path := range []string{
		"/api/users?page=0&size=0",
		"/api/users?page=-1&size=10",
		"/api/customers?size=-5",
		"/api/staff?page=abc",
		"/api/liquidations?page=0&size=0",
	} {
		resp := env.do(t, http.MethodGet, path, token, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, path)
		assert.Equal(t, "INVALID_PAGINATION", decode[dto.ErrorResponse](t, resp).Code, path)
	}
	assert.Zero(t, env.backend.usersListed.Load())
}

func TestStaff_RolInvalido(t *testing.T) {
	env := newEnv(t)
	token := env.login(t, "ops@ptc.pe")

	resp := env.do(t, http.MethodGet, "/api/staff/by-role/piloto", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLiquidations_Detalle(t *testing.T) {
	env := newEnv(t)
	token := env.login(t, "ops@ptc.pe")

	resp := env.do(t, http.MethodGet, "/api/liquidations/7", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var d map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&d))
	assert.Equal(t, "Liquidación #7", d["title"])
	assert.Equal(t, "PENDING", d["nextStatus"])

	resp = env.do(t, http.MethodGet, "/api/liquidations/404", token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Liquidación no encontrada", decode[dto.ErrorResponse](t, resp).Message)

	resp = env.do(t, http.MethodGet, "/api/liquidations/abc", token, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestLiquidations_AvanceDeEstado(t *testing.T) {
	env := newEnv(t)

	sales := env.login(t, "sales@ptc.pe")
	resp := env.do(t, http.MethodPost, "/api/liquidations/7/status/advance", sales, map[string]string{"expectedStatus": "IN_QUOTE"})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Zero(t, env.backend.statusPatch.Load())

	ops := env.login(t, "ops@ptc.pe")
	resp = env.do(t, http.MethodPost, "/api/liquidations/7/status/advance", ops, map[string]string{"expectedStatus": "PENDING"})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "STATUS_CHANGED", decode[dto.ErrorResponse](t, resp).Code)

	resp = env.do(t, http.MethodPost, "/api/liquidations/7/status/advance", ops, map[string]string{"expectedStatus": "IN_QUOTE"})
	assert.Equal(t, http.StatusNotImplemented, resp.StatusCode)
	assert.Equal(t, "STATUS_CONTRACT_UNDEFINED", decode[dto.ErrorResponse](t, resp).Code)
	assert.EqualValues(t, 1, env.backend.statusPatch.Load())

	resp = env.do(t, http.MethodGet, "/api/liquidations/7/transitions", ops, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[[]entity.StatusTransition](t, resp)
	require.Len(t, list, 1)
	assert.Equal(t, entity.OutcomeUnsupported, list[0].Outcome)
}

func TestLiquidations_PDF(t *testing.T) {
	env := newEnv(t)
	token := env.login(t, "ops@ptc.pe")

	resp := env.do(t, http.MethodGet, "/api/liquidations/7/pdf", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
	assert.Contains(t, resp.Header.Get("Content-Disposition"), "liquidacion-7.pdf")
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(raw, []byte("%PDF")))
}

func TestMetricsExpuestas(t *testing.T) {
	env := newEnv(t)
	env.do(t, http.MethodGet, "/health", "", nil)

	resp := env.do(t, http.MethodGet, "/metrics", "", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(raw), `test_http_requests_total{method="GET",route="/health",status="200"}`))
}
