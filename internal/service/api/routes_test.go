package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/product-search-server/internal/pkg/version"
	systemhandler "github.com/darkkaiser/product-search-server/internal/service/api/handler/system"
	"github.com/darkkaiser/product-search-server/internal/service/api/model/system"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// healthyChecker 항상 정상 상태를 보고하는 HealthChecker 구현체입니다.
type healthyChecker struct{}

func (healthyChecker) Health() error { return nil }

// newSystemTestServer 시스템 라우트가 등록된 Echo 인스턴스를 생성합니다.
func newSystemTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	h := systemhandler.NewHandler(healthyChecker{}, version.Info{
		Version:     "test-version",
		BuildDate:   "2025-12-05",
		BuildNumber: "1",
	})

	e := echo.New()
	RegisterRoutes(e, h)
	return e
}

// hasRoute 해당 메서드/경로 조합이 라우터에 등록되어 있는지 확인합니다.
func hasRoute(e *echo.Echo, method, path string) bool {
	for _, r := range e.Routes() {
		if r.Method == method && r.Path == path {
			return true
		}
	}
	return false
}

// doRequest 요청을 수행하고 응답 레코더를 반환합니다.
func doRequest(e *echo.Echo, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestRegisterRoutes_RouteTable(t *testing.T) {
	e := newSystemTestServer(t)

	for _, path := range []string{"/health", "/version", "/swagger/*"} {
		assert.True(t, hasRoute(e, http.MethodGet, path), "GET %s 라우트가 등록되어야 합니다", path)
	}
}

func TestRegisterRoutes_HealthEndpoint(t *testing.T) {
	e := newSystemTestServer(t)

	rec := doRequest(e, http.MethodGet, "/health")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp system.HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.Status)
	assert.GreaterOrEqual(t, resp.Uptime, int64(0))
}

func TestRegisterRoutes_VersionEndpoint(t *testing.T) {
	e := newSystemTestServer(t)

	rec := doRequest(e, http.MethodGet, "/version")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp system.VersionResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "test-version", resp.Version)
	assert.Equal(t, "2025-12-05", resp.BuildDate)
	assert.Equal(t, "1", resp.BuildNumber)
	assert.NotEmpty(t, resp.GoVersion)
}

func TestRegisterRoutes_SwaggerUI(t *testing.T) {
	e := newSystemTestServer(t)

	rec := doRequest(e, http.MethodGet, "/swagger/index.html")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
}

func TestRegisterRoutes_UnsupportedRequests(t *testing.T) {
	e := newSystemTestServer(t)

	t.Run("Fail_허용되지_않은_메서드", func(t *testing.T) {
		rec := doRequest(e, http.MethodPost, "/health")
		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("Fail_존재하지_않는_경로", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/nonexistent")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
