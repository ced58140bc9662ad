package http

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/giu-hrms/hrms-backend-go/internal/config"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/auth"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/employee"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/shared"
	"github.com/giu-hrms/hrms-backend-go/internal/domain/user"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/jwt"
	"github.com/giu-hrms/hrms-backend-go/internal/pkg/sse"
	"github.com/giu-hrms/hrms-backend-go/internal/service/workforce"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWorkforceService struct {
	workforce.WorkforceService
	created []employee.CreateEmployeeRequest
	updated []employee.UpdateEmployeeRequest
}

func (f *fakeWorkforceService) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) ([]employee.EmployeeResponse, *shared.PageInfo, error) {
	return []employee.EmployeeResponse{{ID: "emp-1"}}, nil, nil
}

func (f *fakeWorkforceService) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	f.created = append(f.created, req)
	return employee.EmployeeResponse{ID: "emp-2"}, nil
}

func (f *fakeWorkforceService) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeResponse, error) {
	f.updated = append(f.updated, req)
	return employee.EmployeeResponse{ID: req.ID}, nil
}

func (f *fakeWorkforceService) DeleteEmployee(ctx context.Context, id string) error {
	switch id {
	case "emp-busy":
		return employee.ErrEmployeeInUse
	case "emp-gone":
		return employee.ErrEmployeeNotFound
	}
	return nil
}

type routerFixture struct {
	router    *chi.Mux
	jwt       jwt.Service
	workforce *fakeWorkforceService
	hub       *sse.Hub
}

func newRouterFixture(t *testing.T) *routerFixture {
	jwtService := newTestJWTService(t)
	workforceSvc := &fakeWorkforceService{}
	hub := sse.NewHub()
	authSvc := &fakeAuthService{me: auth.SessionResponse{UserID: "hr-1", Role: user.RoleHRManager, CanManage: true}}

	router := NewRouter(
		config.AppConfig{Env: "test", AllowedOrigins: []string{"http://localhost:5173"}},
		jwtService,
		NewAuthHandler(jwtService, authSvc, nil, "http://localhost:5173", false),
		NewUserHandler(nil),
		NewEventHandler(jwtService, hub),
		NewDashboardHandler(nil),
		NewOrganizationHandler(nil),
		NewWorkforceHandler(workforceSvc),
		NewTrainingHandler(nil),
		NewPerformanceHandler(nil),
	)
	return &routerFixture{router: router, jwt: jwtService, workforce: workforceSvc, hub: hub}
}

func (f *routerFixture) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, jsonBody(t, body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Healthz(t *testing.T) {
	f := newRouterFixture(t)
	rec := f.do(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRouter_UnknownRouteIsJSON(t *testing.T) {
	f := newRouterFixture(t)
	rec := f.do(t, http.MethodGet, "/api/v1/nowhere", "", nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	env := decodeEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}

func TestRouter_RequiresToken(t *testing.T) {
	f := newRouterFixture(t)
	rec := f.do(t, http.MethodGet, "/api/v1/employees", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_RejectsRefreshTokenAsBearer(t *testing.T) {
	f := newRouterFixture(t)
	refresh, _, err := f.jwt.GenerateRefreshToken("hr-1")
	require.NoError(t, err)

	rec := f.do(t, http.MethodGet, "/api/v1/employees", refresh, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_EmployeeRoleReadsButCannotWrite(t *testing.T) {
	f := newRouterFixture(t)
	token := accessToken(t, f.jwt, "emp-user", user.RoleEmployee)

	rec := f.do(t, http.MethodGet, "/api/v1/employees", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var items []employee.EmployeeResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &items))
	require.Len(t, items, 1)
	assert.Equal(t, "emp-1", items[0].ID)

	rec = f.do(t, http.MethodPost, "/api/v1/employees", token, map[string]string{"first_name": "Ali"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Empty(t, f.workforce.created)
}

func TestRouter_ManagerWritesWithPatchAndPut(t *testing.T) {
	f := newRouterFixture(t)
	token := accessToken(t, f.jwt, "hr-1", user.RoleHRManager)

	rec := f.do(t, http.MethodPost, "/api/v1/employees", token, map[string]string{"first_name": "Ali"})
	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, f.workforce.created, 1)
	assert.Equal(t, "Ali", f.workforce.created[0].FirstName)

	rec = f.do(t, http.MethodPatch, "/api/v1/employees/emp-9", token, map[string]string{"status": "inactive"})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = f.do(t, http.MethodPut, "/api/v1/employees/emp-9", token, map[string]string{"status": "active"})
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, f.workforce.updated, 2)
	assert.Equal(t, "emp-9", f.workforce.updated[1].ID)
}

func TestRouter_UserManagementIsAdminOnly(t *testing.T) {
	f := newRouterFixture(t)
	token := accessToken(t, f.jwt, "hr-1", user.RoleHRManager)

	rec := f.do(t, http.MethodPut, "/api/v1/users/u-2/role", token, map[string]string{"role": "admin"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_Me(t *testing.T) {
	f := newRouterFixture(t)
	token := accessToken(t, f.jwt, "hr-1", user.RoleHRManager)

	rec := f.do(t, http.MethodGet, "/api/v1/auth/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var session auth.SessionResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &session))
	assert.Equal(t, "hr-1", session.UserID)
	assert.True(t, session.CanManage)
}

func TestRouter_StreamTokenAndStream(t *testing.T) {
	f := newRouterFixture(t)
	token := accessToken(t, f.jwt, "hr-1", user.RoleHRManager)

	rec := f.do(t, http.MethodGet, "/api/v1/events/token", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var streamToken StreamTokenResponse
	require.NoError(t, json.Unmarshal(decodeEnvelope(t, rec).Data, &streamToken))
	assert.Equal(t, 300, streamToken.ExpiresIn)

	server := httptest.NewServer(f.router)
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, server.URL+"/api/v1/events?token="+streamToken.Token, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	scanner := bufio.NewScanner(resp.Body)
	require.True(t, scanner.Scan())
	require.Equal(t, "event: connected", scanner.Text())

	f.hub.Publish(sse.Event{Table: "employees", Action: sse.ActionDeleted, ID: "emp-1"})

	var data string
	for scanner.Scan() {
		if line := scanner.Text(); strings.HasPrefix(line, "data: ") && strings.Contains(line, "employees") {
			data = strings.TrimPrefix(line, "data: ")
			break
		}
	}
	assert.JSONEq(t, `{"table":"employees","action":"deleted","id":"emp-1"}`, data)
}

func TestRouter_StreamRejectsAccessToken(t *testing.T) {
	f := newRouterFixture(t)
	token := accessToken(t, f.jwt, "hr-1", user.RoleHRManager)

	rec := f.do(t, http.MethodGet, "/api/v1/events?token="+token, "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRouter_DeleteErrorMapping(t *testing.T) {
	f := newRouterFixture(t)
	token := accessToken(t, f.jwt, "hr-1", user.RoleAdmin)

	rec := f.do(t, http.MethodDelete, "/api/v1/employees/emp-1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Employee deleted successfully", decodeEnvelope(t, rec).Message)

	rec = f.do(t, http.MethodDelete, "/api/v1/employees/emp-busy", token, nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = f.do(t, http.MethodDelete, "/api/v1/employees/emp-gone", token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
