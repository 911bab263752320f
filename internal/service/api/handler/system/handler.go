// Package system 시스템 엔드포인트 핸들러를 제공합니다.
//
// 헬스체크, 버전 정보 등 시스템 수준의 API를 처리합니다.
package system

import (
	"net/http"
	"runtime"
	"time"

	"github.com/darkkaiser/product-search-server/internal/pkg/version"
	"github.com/darkkaiser/product-search-server/internal/service/api/constants"
	"github.com/darkkaiser/product-search-server/internal/service/api/model/system"
	applog "github.com/darkkaiser/product-search-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// HealthChecker 외부 의존성의 상태 확인 기능을 정의하는 인터페이스입니다.
//
// 환율 테이블 캐시 등 서버가 의존하는 구성요소가 구현하며,
// 정상 동작이 불가능한 상태이면 그 원인을 에러로 반환합니다.
type HealthChecker interface {
	// Health 의존성의 현재 상태를 반환합니다. 정상이면 nil을 반환합니다.
	Health() error
}

// Handler 시스템 엔드포인트 핸들러 (헬스체크, 버전 정보)
type Handler struct {
	healthChecker HealthChecker

	buildInfo version.Info

	serverStartTime time.Time
}

// NewHandler Handler 인스턴스를 생성합니다.
func NewHandler(healthChecker HealthChecker, buildInfo version.Info) *Handler {
	if healthChecker == nil {
		panic(constants.PanicMsgHealthCheckerRequired)
	}

	return &Handler{
		healthChecker: healthChecker,

		buildInfo: buildInfo,

		serverStartTime: time.Now(),
	}
}

// HealthCheckHandler godoc
// @Summary 서버 헬스체크
// @Description 서버와 외부 의존성의 상태를 확인합니다.
// @Description 모니터링 시스템에서 사용됩니다.
// @Description
// @Description 응답 필드:
// @Description - status: 전체 서버 상태 (healthy, unhealthy)
// @Description - uptime: 서버 가동 시간(초)
// @Description - dependencies: 외부 의존성별 상태 (exchange_rate_cache 등)
// @Tags System
// @Produce json
// @Success 200 {object} system.HealthResponse "헬스체크 결과"
// @Router /health [get]
func (h *Handler) HealthCheckHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/health",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgHealthCheck)

	uptime := int64(time.Since(h.serverStartTime).Seconds())

	// 외부 의존성 상태 수집
	deps := make(map[string]system.DependencyStatus)

	// 환율 테이블 캐시 상태 확인
	if h.healthChecker != nil {
		if err := h.healthChecker.Health(); err != nil {
			deps[constants.DependencyExchangeRateCache] = system.DependencyStatus{
				Status:  constants.HealthStatusUnhealthy,
				Message: err.Error(),
			}
		} else {
			deps[constants.DependencyExchangeRateCache] = system.DependencyStatus{
				Status:  constants.HealthStatusHealthy,
				Message: constants.MsgDepStatusHealthy,
			}
		}
	} else {
		deps[constants.DependencyExchangeRateCache] = system.DependencyStatus{
			Status:  constants.HealthStatusUnhealthy,
			Message: constants.MsgDepStatusNotInitialized,
		}
	}

	// 하나라도 unhealthy면 전체 상태를 unhealthy로 설정
	serverStatus := constants.HealthStatusHealthy
	for _, dep := range deps {
		if dep.Status != constants.HealthStatusHealthy {
			serverStatus = constants.HealthStatusUnhealthy
			break
		}
	}

	return c.JSON(http.StatusOK, system.HealthResponse{
		Status:       serverStatus,
		Uptime:       uptime,
		Dependencies: deps,
	})
}

// VersionHandler godoc
// @Summary 서버 버전 정보
// @Description 서버의 Git 커밋 해시, 빌드 날짜, 빌드 번호, Go 버전을 반환합니다.
// @Description 디버깅 및 배포 버전 확인에 사용됩니다.
// @Tags System
// @Produce json
// @Success 200 {object} system.VersionResponse "버전 정보"
// @Router /version [get]
func (h *Handler) VersionHandler(c echo.Context) error {
	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  "/version",
		"method":    c.Request().Method,
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgVersionInfo)

	return c.JSON(http.StatusOK, system.VersionResponse{
		Version:     h.buildInfo.Version,
		BuildDate:   h.buildInfo.BuildDate,
		BuildNumber: h.buildInfo.BuildNumber,
		GoVersion:   runtime.Version(),
	})
}
