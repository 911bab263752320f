package api

import (
	"net/http"
	"time"

	"github.com/darkkaiser/product-search-server/internal/service/api/constants"
	"github.com/darkkaiser/product-search-server/internal/service/api/httputil"
	appmiddleware "github.com/darkkaiser/product-search-server/internal/service/api/middleware"
	applog "github.com/darkkaiser/product-search-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// HTTPServerConfig HTTP 서버 생성에 필요한 설정입니다.
type HTTPServerConfig struct {
	// Debug Echo 프레임워크의 디버그 모드 활성화 여부
	Debug bool

	// AllowOrigins CORS에서 허용할 Origin 목록 (프로덕션에서는 특정 도메인만 명시 권장)
	AllowOrigins []string

	// RequestTimeout 각 HTTP 요청의 최대 처리 시간 (0이면 기본값 60초)
	RequestTimeout time.Duration
}

// NewHTTPServer 미들웨어가 구성된 Echo 인스턴스를 생성합니다. 라우트는 호출자가 등록합니다.
//
// 미들웨어 적용 순서:
//
//	PanicRecovery → RequestID → Server 헤더 제거 → HTTPLogger → RateLimit
//	→ BodyLimit → Timeout → CORS → Secure
//
// PanicRecovery가 가장 바깥에 있어야 이후 미들웨어의 패닉도 복구되고,
// HTTPLogger는 RateLimit/Timeout보다 앞에 있어야 429/503 응답도 기록됩니다.
// 검색 제공자 API 호출은 요청당 과금되므로 RateLimit이 핸들러 진입 전에
// 과도한 호출을 차단합니다.
func NewHTTPServer(cfg HTTPServerConfig) *echo.Echo {
	e := echo.New()

	e.Debug = cfg.Debug
	e.HideBanner = true

	// 느린 클라이언트와 유휴 연결의 리소스 점유를 제한합니다.
	e.Server.ReadTimeout = constants.DefaultReadTimeout
	e.Server.ReadHeaderTimeout = constants.DefaultReadHeaderTimeout
	e.Server.WriteTimeout = constants.DefaultWriteTimeout
	e.Server.IdleTimeout = constants.DefaultIdleTimeout

	// Echo 내부 로그도 애플리케이션 로거의 형식과 출력 대상을 따르게 합니다.
	e.Logger = appmiddleware.Logger{Logger: applog.StandardLogger()}
	e.HTTPErrorHandler = httputil.ErrorHandler

	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = constants.DefaultRequestTimeout
	}

	e.Use(appmiddleware.PanicRecovery())
	e.Use(middleware.RequestID())
	e.Use(hideServerHeader)
	e.Use(appmiddleware.HTTPLogger())
	e.Use(appmiddleware.RateLimit(constants.DefaultRateLimitPerSecond, constants.DefaultRateLimitBurst))
	e.Use(middleware.BodyLimit(constants.DefaultMaxBodySize))
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		Timeout: timeout,
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodHead, http.MethodOptions},
	}))
	e.Use(middleware.Secure())

	return e
}

// hideServerHeader 응답에서 Server 헤더를 비워 서버 스택 정보 노출을 막습니다.
func hideServerHeader(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderServer, "")
		return next(c)
	}
}
