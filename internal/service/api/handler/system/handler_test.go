package system

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"
	"time"

	"github.com/darkkaiser/product-search-server/internal/pkg/version"
	"github.com/darkkaiser/product-search-server/internal/service/api/constants"
	"github.com/darkkaiser/product-search-server/internal/service/api/model/system"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Helpers
// =============================================================================

// mockHealthChecker HealthChecker 인터페이스의 테스트용 Mock입니다.
type mockHealthChecker struct {
	mock.Mock
}

func (m *mockHealthChecker) Health() error {
	args := m.Called()
	return args.Error(0)
}

// setupSystemHandlerTest 테스트에 필요한 Handler와 의존성을 설정합니다.
// 테스트 격리를 위해 매번 새로운 인스턴스를 생성합니다.
func setupSystemHandlerTest(t *testing.T) (*Handler, *mockHealthChecker, *echo.Echo) {
	t.Helper()

	checker := &mockHealthChecker{}
	buildInfo := version.Info{
		Version:     "1.0.0",
		BuildDate:   "2024-01-01",
		BuildNumber: "100",
	}

	h := NewHandler(checker, buildInfo)
	e := echo.New()

	return h, checker, e
}

// =============================================================================
// Constructor Tests
// =============================================================================

func TestNewHandler(t *testing.T) {
	t.Parallel()

	t.Run("성공: 올바른 의존성으로 핸들러 생성", func(t *testing.T) {
		t.Parallel()
		checker := &mockHealthChecker{}
		buildInfo := version.Info{Version: "1.0.0"}

		h := NewHandler(checker, buildInfo)

		assert.NotNil(t, h)
		assert.Equal(t, checker, h.healthChecker)
		assert.Equal(t, buildInfo, h.buildInfo)
		assert.False(t, h.serverStartTime.IsZero(), "서버 시작 시간이 설정되어야 합니다")
		assert.WithinDuration(t, time.Now(), h.serverStartTime, 1*time.Second, "서버 시작 시간은 현재 시간과 비슷해야 합니다")
	})

	t.Run("실패: HealthChecker가 nil인 경우 Panic", func(t *testing.T) {
		t.Parallel()
		buildInfo := version.Info{Version: "1.0.0"}

		assert.PanicsWithValue(t, constants.PanicMsgHealthCheckerRequired, func() {
			NewHandler(nil, buildInfo)
		})
	})
}

// =============================================================================
// Health Check Tests
// =============================================================================

func TestHandler_HealthCheckHandler(t *testing.T) {
	t.Parallel()

	// 공통 검증 로직 Helper
	assertHealthResponse := func(t *testing.T, rec *httptest.ResponseRecorder, expectedStatus string, expectedDeps map[string]system.DependencyStatus) {
		t.Helper()

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, echo.MIMEApplicationJSON, rec.Header().Get(echo.HeaderContentType))

		var resp system.HealthResponse
		err := json.Unmarshal(rec.Body.Bytes(), &resp)
		require.NoError(t, err)

		assert.Equal(t, expectedStatus, resp.Status)
		assert.GreaterOrEqual(t, resp.Uptime, int64(0)) // Uptime은 0 이상
		assert.Equal(t, expectedDeps, resp.Dependencies)
	}

	tests := []struct {
		name      string
		setupMock func(*mockHealthChecker)
		forceNil  bool // handler 생성 시 healthChecker를 nil로 강제 설정
		verify    func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name: "성공: 모든 시스템 정상 (Healthy)",
			setupMock: func(m *mockHealthChecker) {
				m.On("Health").Return(nil)
			},
			verify: func(t *testing.T, rec *httptest.ResponseRecorder) {
				expectedDeps := map[string]system.DependencyStatus{
					constants.DependencyExchangeRateCache: {
						Status:  constants.HealthStatusHealthy,
						Message: constants.MsgDepStatusHealthy,
					},
				}
				assertHealthResponse(t, rec, constants.HealthStatusHealthy, expectedDeps)
			},
		},
		{
			name: "실패: 환율 테이블 캐시 장애 (Unhealthy - Deep Check)",
			setupMock: func(m *mockHealthChecker) {
				m.On("Health").Return(errors.New("환율 테이블이 아직 발행되지 않았습니다"))
			},
			verify: func(t *testing.T, rec *httptest.ResponseRecorder) {
				expectedDeps := map[string]system.DependencyStatus{
					constants.DependencyExchangeRateCache: {
						Status:  constants.HealthStatusUnhealthy,
						Message: "환율 테이블이 아직 발행되지 않았습니다",
					},
				}
				assertHealthResponse(t, rec, constants.HealthStatusUnhealthy, expectedDeps)
			},
		},
		{
			name:     "실패: HealthChecker 미초기화 (Unhealthy - Safety Check)",
			forceNil: true,
			verify: func(t *testing.T, rec *httptest.ResponseRecorder) {
				expectedDeps := map[string]system.DependencyStatus{
					constants.DependencyExchangeRateCache: {
						Status:  constants.HealthStatusUnhealthy,
						Message: constants.MsgDepStatusNotInitialized,
					},
				}
				assertHealthResponse(t, rec, constants.HealthStatusUnhealthy, expectedDeps)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var h *Handler
			var e *echo.Echo
			var checker *mockHealthChecker

			if tt.forceNil {
				// NewHandler를 우회하여 강제로 nil 의존성 주입
				h = &Handler{
					healthChecker:   nil,
					serverStartTime: time.Now(),
				}
				e = echo.New()
			} else {
				h, checker, e = setupSystemHandlerTest(t)
				if tt.setupMock != nil {
					tt.setupMock(checker)
				}
			}

			req := httptest.NewRequest(http.MethodGet, "/health", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := h.HealthCheckHandler(c)
			assert.NoError(t, err)
			tt.verify(t, rec)

			if checker != nil {
				checker.AssertExpectations(t)
			}
		})
	}
}

// =============================================================================
// Version Info Tests
// =============================================================================

func TestHandler_VersionHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		buildInfo version.Info
		verify    func(t *testing.T, resp system.VersionResponse)
	}{
		{
			name: "성공: 정상 버전 정보 반환",
			buildInfo: version.Info{
				Version:     "1.0.0",
				BuildDate:   "2024-01-01",
				BuildNumber: "100",
			},
			verify: func(t *testing.T, resp system.VersionResponse) {
				assert.Equal(t, "1.0.0", resp.Version)
				assert.Equal(t, "2024-01-01", resp.BuildDate)
				assert.Equal(t, "100", resp.BuildNumber)
				assert.Equal(t, runtime.Version(), resp.GoVersion)
			},
		},
		{
			name:      "성공: 빈 버전 정보 반환 (Zero Values)",
			buildInfo: version.Info{}, // Empty
			verify: func(t *testing.T, resp system.VersionResponse) {
				assert.Equal(t, "", resp.Version)
				assert.Equal(t, "", resp.BuildDate)
				assert.Equal(t, "", resp.BuildNumber)
				assert.Equal(t, runtime.Version(), resp.GoVersion)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// VersionHandler는 healthChecker를 사용하지 않으므로 호출 기대를 설정하지 않습니다.
			checker := &mockHealthChecker{}

			h := NewHandler(checker, tt.buildInfo)
			e := echo.New()

			req := httptest.NewRequest(http.MethodGet, "/version", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := h.VersionHandler(c)
			assert.NoError(t, err)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, echo.MIMEApplicationJSON, rec.Header().Get(echo.HeaderContentType))

			var resp system.VersionResponse
			err = json.Unmarshal(rec.Body.Bytes(), &resp)
			require.NoError(t, err)

			tt.verify(t, resp)

			checker.AssertExpectations(t)
		})
	}
}
