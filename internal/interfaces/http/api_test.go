package http_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Roster-api/internal/application/dto"
	"github.com/jhoicas/Roster-api/internal/application/ports"
	approster "github.com/jhoicas/Roster-api/internal/application/roster"
	"github.com/jhoicas/Roster-api/internal/application/session"
	"github.com/jhoicas/Roster-api/internal/application/usecase"
	"github.com/jhoicas/Roster-api/internal/infrastructure/export"
	"github.com/jhoicas/Roster-api/internal/infrastructure/i18n"
	"github.com/jhoicas/Roster-api/internal/infrastructure/navigation"
	apphttp "github.com/jhoicas/Roster-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type testServer struct {
	app      *fiber.App
	store    *approster.Store
	sessions *session.Manager
	cookie   string
}

// buildTestServer arma la app completa sobre un store con seed empleados generados.
func buildTestServer(t *testing.T, seed int) *testServer {
	t.Helper()
	log := zerolog.Nop()
	store := approster.NewStore(nil, seed, log)
	catalog := i18n.MustCatalog("en")
	sessions := session.NewManager(store, session.Options{
		NewTranslator: func(lang string) ports.Translator { return catalog.NewLocalizer(lang) },
		NewNavigator:  func() session.Navigator { return navigation.NewHistory(ports.PathHome) },
	}, log)
	t.Cleanup(func() {
		sessions.Sweep(time.Now().Add(time.Hour))
	})

	app := apphttp.NewApp(apphttp.AppConfig{Name: "roster-api-test"}, apphttp.RouterDeps{
		EmployeeUC:    usecase.NewEmployeeUseCase(store),
		ExportUC:      usecase.NewExportUseCase(store, catalog, log, export.NewXMLExporter(), export.NewXLSXExporter()),
		Sessions:      sessions,
		Languages:     catalog,
		SessionTTL:    time.Hour,
		SessionSecret: "test-secret",
		Issuer:        "roster-api-test",
		Log:           log,
	})
	return &testServer{app: app, store: store, sessions: sessions}
}

// do lanza la petición conservando la cookie de sesión entre llamadas.
func (s *testServer) do(t *testing.T, method, target, body string, headers ...string) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	if s.cookie != "" {
		req.AddCookie(&http.Cookie{Name: apphttp.SessionCookie, Value: s.cookie})
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	for _, c := range resp.Cookies() {
		if c.Name == apphttp.SessionCookie {
			s.cookie = c.Value
		}
	}
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func ids(list []dto.EmployeeResponse) []int {
	out := make([]int, 0, len(list))
	for _, e := range list {
		out = append(out, e.ID)
	}
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Health y REST sin sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestHealth(t *testing.T) {
	srv := buildTestServer(t, 0)

	resp := srv.do(t, http.MethodGet, "/health", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	body := decode[map[string]string](t, resp)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "roster-api-test", body["service"])
}

func TestEmployees_ListPaginaSegunVista(t *testing.T) {
	srv := buildTestServer(t, 10)

	resp := srv.do(t, http.MethodGet, "/api/employees?page=3", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	grid := decode[dto.EmployeeListResponse](t, resp)
	assert.Equal(t, []int{9, 10}, ids(grid.Items))
	assert.Equal(t, 3, grid.Page.TotalPages)

	resp = srv.do(t, http.MethodGet, "/api/employees?view=table&page=2", "")
	table := decode[dto.EmployeeListResponse](t, resp)
	assert.Equal(t, []int{10}, ids(table.Items))
	assert.Equal(t, 9, table.Page.PageSize)

	resp = srv.do(t, http.MethodGet, "/api/employees?view=cards", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestEmployees_CRUD(t *testing.T) {
	srv := buildTestServer(t, 2)

	create := `{"first_name":"Ada","last_name":"Lovelace","date_of_employment":"01/02/2020",
		"date_of_birth":"10/12/1990","phone_number":"+90 536 850 85 24",
		"email_address":"ada@example.com","department":"Tech","position":"Senior"}`
	resp := srv.do(t, http.MethodPost, "/api/employees", create)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	created := decode[dto.EmployeeResponse](t, resp)
	assert.Equal(t, 3, created.ID)

	resp = srv.do(t, http.MethodPut, "/api/employees/3", `{"position":"Medior"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Medior", decode[dto.EmployeeResponse](t, resp).Position)

	resp = srv.do(t, http.MethodDelete, "/api/employees/3", "")
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = srv.do(t, http.MethodGet, "/api/employees/3", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, apphttp.CodeNotFound, decode[dto.ErrorResponse](t, resp).Code)
}

func TestEmployees_CreateInvalidoDevuelveCampos(t *testing.T) {
	srv := buildTestServer(t, 0)

	resp := srv.do(t, http.MethodPost, "/api/employees", `{"first_name":"A","email_address":"x"}`)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	body := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, apphttp.CodeValidation, body.Code)
	assert.Contains(t, body.Fields, "first_name")
	assert.Contains(t, body.Fields, "email_address")
	assert.Empty(t, srv.store.Employees())
}

func TestEmployees_IDInvalido(t *testing.T) {
	srv := buildTestServer(t, 1)

	resp := srv.do(t, http.MethodGet, "/api/employees/abc", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, apphttp.CodeInvalidID, decode[dto.ErrorResponse](t, resp).Code)
}

func TestEmployees_Export(t *testing.T) {
	srv := buildTestServer(t, 3)

	resp := srv.do(t, http.MethodGet, "/api/employees/export?format=xml&lang=tr", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/xml", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), ".xml")
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `lang="tr"`)

	resp = srv.do(t, http.MethodGet, "/api/employees/export?format=csv", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Sesión y vista de lista
// ──────────────────────────────────────────────────────────────────────────────

func TestSession_IdiomaDesdeAcceptLanguageYCambio(t *testing.T) {
	srv := buildTestServer(t, 1)

	resp := srv.do(t, http.MethodGet, "/api/session", "", fiber.HeaderAcceptLanguage, "tr-TR,tr;q=0.9")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	got := decode[dto.SessionResponse](t, resp)
	assert.Equal(t, "tr", got.Language)
	assert.NotEmpty(t, srv.cookie)
	assert.NotEqual(t, srv.cookie, got.ID)

	resp = srv.do(t, http.MethodPut, "/api/session/language", `{"language":"en"}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "en", decode[dto.SessionResponse](t, resp).Language)

	resp = srv.do(t, http.MethodPut, "/api/session/language", `{"language":"de"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 1, srv.sessions.Count())
}

func TestListView_PaginacionYModo(t *testing.T) {
	srv := buildTestServer(t, 10)

	view := decode[dto.ListView](t, srv.do(t, http.MethodGet, "/api/view/list", ""))
	assert.Equal(t, "grid", view.ViewMode)
	assert.Equal(t, []int{1, 2, 3, 4}, ids(view.Employees))
	assert.Equal(t, 3, view.Pagination.TotalPages)

	view = decode[dto.ListView](t, srv.do(t, http.MethodPost, "/api/view/list/page/2", ""))
	assert.Equal(t, []int{5, 6, 7, 8}, ids(view.Employees))

	view = decode[dto.ListView](t, srv.do(t, http.MethodPost, "/api/view/list/next", ""))
	assert.Equal(t, []int{9, 10}, ids(view.Employees))

	view = decode[dto.ListView](t, srv.do(t, http.MethodPost, "/api/view/list/page/7", ""))
	assert.Equal(t, 3, view.Pagination.CurrentPage)

	view = decode[dto.ListView](t, srv.do(t, http.MethodPut, "/api/view/list/mode", `{"mode":"table"}`))
	assert.Equal(t, "table", view.ViewMode)
	assert.Equal(t, 1, view.Pagination.CurrentPage)
	assert.Len(t, view.Employees, 9)

	resp := srv.do(t, http.MethodPut, "/api/view/list/mode", `{"mode":"cards"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListView_BorradoEnDosPasos(t *testing.T) {
	srv := buildTestServer(t, 3)

	view := decode[dto.ListView](t, srv.do(t, http.MethodPost, "/api/view/list/employees/2/delete", ""))
	require.NotNil(t, view.Confirmation)
	assert.Equal(t, 2, view.Confirmation.Employee.ID)
	assert.Len(t, srv.store.Employees(), 3)

	view = decode[dto.ListView](t, srv.do(t, http.MethodPost, "/api/view/list/delete/cancel", ""))
	assert.Nil(t, view.Confirmation)
	assert.Len(t, srv.store.Employees(), 3)

	srv.do(t, http.MethodPost, "/api/view/list/employees/2/delete", "")
	view = decode[dto.ListView](t, srv.do(t, http.MethodPost, "/api/view/list/delete/confirm", ""))
	assert.Nil(t, view.Confirmation)
	assert.Equal(t, []int{1, 3}, ids(view.Employees))

	resp := srv.do(t, http.MethodPost, "/api/view/list/delete/confirm", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	resp = srv.do(t, http.MethodPost, "/api/view/list/employees/99/delete", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestListView_EditNavega(t *testing.T) {
	srv := buildTestServer(t, 3)

	resp := srv.do(t, http.MethodPost, "/api/view/list/employees/3/edit", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "/user/3", decode[dto.LocationResponse](t, resp).Location)
}

// ──────────────────────────────────────────────────────────────────────────────
// Vista de formulario
// ──────────────────────────────────────────────────────────────────────────────

func TestFormView_AltaCompleta(t *testing.T) {
	srv := buildTestServer(t, 2)

	view := decode[dto.FormView](t, srv.do(t, http.MethodGet, "/api/view/user/new", ""))
	assert.Equal(t, "create", view.Mode)
	assert.Equal(t, "/user/new", view.Location)

	resp := srv.do(t, http.MethodPost, "/api/view/user/new/save", "")
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	invalid := decode[dto.FormView](t, resp)
	require.NotNil(t, invalid.Errors.FirstName)
	assert.Len(t, srv.store.Employees(), 2)

	fields := map[string]string{
		"firstName":        "Grace",
		"lastName":         "Hopper",
		"dateOfEmployment": "2021-03-04",
		"dateOfBirth":      "1985-07-08",
		"phoneNumber":      "+90 (536) 850 85 24",
		"emailAddress":     "grace@example.com",
		"department":       "Analytics",
		"position":         "Junior",
	}
	for field, value := range fields {
		body, err := json.Marshal(dto.SetFieldRequest{Field: field, Value: value})
		require.NoError(t, err)
		resp = srv.do(t, http.MethodPatch, "/api/view/user/new", string(body))
		require.Equal(t, fiber.StatusOK, resp.StatusCode, field)
	}

	resp = srv.do(t, http.MethodPost, "/api/view/user/new/save", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "/", decode[dto.LocationResponse](t, resp).Location)

	employees := srv.store.Employees()
	require.Len(t, employees, 3)
	assert.Equal(t, "Grace", employees[2].FirstName)
	assert.Equal(t, "04/03/2021", employees[2].DateOfEmployment)
}

func TestFormView_CampoDesconocido(t *testing.T) {
	srv := buildTestServer(t, 1)

	resp := srv.do(t, http.MethodPatch, "/api/view/user/1", `{"field":"salary","value":"1"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestFormView_NoEncontrado(t *testing.T) {
	srv := buildTestServer(t, 1)

	view := decode[dto.FormView](t, srv.do(t, http.MethodGet, "/api/view/user/42", ""))
	assert.Equal(t, "not-found", view.Mode)

	resp := srv.do(t, http.MethodPatch, "/api/view/user/42", `{"field":"firstName","value":"Bob"}`)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestFormView_BorrarRequiereConfirmacion(t *testing.T) {
	srv := buildTestServer(t, 2)

	srv.do(t, http.MethodGet, "/api/view/user/1", "")
	resp := srv.do(t, http.MethodDelete, "/api/view/user/1", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "edit", decode[dto.FormView](t, resp).Mode)
	assert.Len(t, srv.store.Employees(), 2)

	resp = srv.do(t, http.MethodDelete, "/api/view/user/1?confirm=true", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "/", decode[dto.LocationResponse](t, resp).Location)
	assert.Len(t, srv.store.Employees(), 1)
}

func TestFormView_CancelarVuelveALaLista(t *testing.T) {
	srv := buildTestServer(t, 1)

	srv.do(t, http.MethodGet, "/api/view/user/1", "")
	srv.do(t, http.MethodPatch, "/api/view/user/1", `{"field":"firstName","value":"Changed"}`)
	resp := srv.do(t, http.MethodPost, "/api/view/user/1/cancel", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "/", decode[dto.LocationResponse](t, resp).Location)
	assert.NotEqual(t, "Changed", srv.store.Employees()[0].FirstName)
}

func TestSession_CookieAlteradaAbreSesionNueva(t *testing.T) {
	srv := buildTestServer(t, 1)

	first := decode[dto.SessionResponse](t, srv.do(t, http.MethodGet, "/api/session", ""))
	require.Equal(t, 1, srv.sessions.Count())

	srv.cookie = srv.cookie + "x"
	second := decode[dto.SessionResponse](t, srv.do(t, http.MethodGet, "/api/session", ""))

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, 2, srv.sessions.Count())
}

func TestSession_MismaCookieMismaSesion(t *testing.T) {
	srv := buildTestServer(t, 1)

	first := decode[dto.SessionResponse](t, srv.do(t, http.MethodGet, "/api/session", ""))
	second := decode[dto.SessionResponse](t, srv.do(t, http.MethodGet, "/api/session", ""))

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, srv.sessions.Count())
}
