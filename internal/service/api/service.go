package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	_ "github.com/darkkaiser/product-search-server/docs"
	"github.com/darkkaiser/product-search-server/internal/config"
	"github.com/darkkaiser/product-search-server/internal/pkg/version"
	"github.com/darkkaiser/product-search-server/internal/service/api/constants"
	"github.com/darkkaiser/product-search-server/internal/service/api/handler/system"
	v1 "github.com/darkkaiser/product-search-server/internal/service/api/v1"
	v1handler "github.com/darkkaiser/product-search-server/internal/service/api/v1/handler"
	applog "github.com/darkkaiser/product-search-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// shutdownTimeout Graceful Shutdown 시 진행 중인 요청을 기다리는 최대 시간
const shutdownTimeout = 5 * time.Second

// Service 상품 검색 API 서버의 생명주기를 관리합니다.
//
// Echo 기반 HTTP/HTTPS 서버의 시작과 종료, 라우트 및 미들웨어 구성,
// Graceful Shutdown을 담당합니다. Start()로 기동하며 전달받은 context가
// 취소되면 종료 절차를 밟습니다.
type Service struct {
	appConfig *config.AppConfig

	catalog       v1handler.ProductCatalog
	healthChecker system.HealthChecker
	buildInfo     version.Info

	running   bool
	runningMu sync.Mutex
}

// NewService Service 인스턴스를 생성합니다.
// 필수 의존성이 누락된 경우 기동 시점에 패닉을 발생시킵니다.
func NewService(appConfig *config.AppConfig, catalog v1handler.ProductCatalog, healthChecker system.HealthChecker, buildInfo version.Info) *Service {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}
	if catalog == nil {
		panic(constants.PanicMsgCatalogRequired)
	}
	if healthChecker == nil {
		panic(constants.PanicMsgHealthCheckerRequired)
	}

	return &Service{
		appConfig:     appConfig,
		catalog:       catalog,
		healthChecker: healthChecker,
		buildInfo:     buildInfo,
	}
}

// Start API 서비스를 시작합니다.
//
// 서버는 별도의 고루틴에서 실행되므로 이 함수는 즉시 반환됩니다.
// serviceStopCtx 취소 시 Graceful Shutdown이 수행되고, 종료가 끝나면
// serviceStopWG.Done()이 호출됩니다. 이미 실행 중이면 경고 로그만 남기고
// 무시합니다.
func (s *Service) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarting)

	if s.running {
		defer serviceStopWG.Done()
		applog.WithComponent(constants.ComponentService).Warn(constants.LogMsgServiceAlreadyStarted)
		return nil
	}

	s.running = true

	go s.run(serviceStopCtx, serviceStopWG)

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStarted)

	return nil
}

// run 서버를 기동하고 종료 신호를 기다리는 메인 루프입니다.
func (s *Service) run(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) {
	defer serviceStopWG.Done()

	e := s.buildServer()

	httpServerDone := make(chan struct{})
	go s.serve(e, httpServerDone)

	s.waitForShutdown(serviceStopCtx, e, httpServerDone)
}

// buildServer 핸들러, 미들웨어 체인, 라우트가 모두 구성된 Echo 인스턴스를 반환합니다.
func (s *Service) buildServer() *echo.Echo {
	systemHandler := system.NewHandler(s.healthChecker, s.buildInfo)
	v1Handler := v1handler.NewHandler(s.catalog)

	e := NewHTTPServer(HTTPServerConfig{
		Debug:        s.appConfig.Debug,
		AllowOrigins: s.appConfig.SearchAPI.CORS.AllowOrigins,
	})

	RegisterRoutes(e, systemHandler)
	v1.RegisterRoutes(e, v1Handler)

	return e
}

// serve HTTP 또는 HTTPS 서버를 기동합니다. 서버가 멈추면 done을 닫아
// 대기 중인 고루틴에 알립니다. 서버 종료 시까지 블로킹됩니다.
func (s *Service) serve(e *echo.Echo, done chan struct{}) {
	defer close(done)

	ws := s.appConfig.SearchAPI.WS

	applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
		"port": ws.ListenPort,
	}).Debug(constants.LogMsgServiceHTTPServerStarting)

	addr := fmt.Sprintf(":%d", ws.ListenPort)

	var err error
	if ws.TLSServer {
		err = e.StartTLS(addr, ws.TLSCertFile, ws.TLSKeyFile)
	} else {
		err = e.Start(addr)
	}

	switch {
	case err == nil:
		// 정상 종료
	case errors.Is(err, http.ErrServerClosed):
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceHTTPServerStopped)
	default:
		// 포트 바인딩 실패, 인증서 오류 등
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"port":  ws.ListenPort,
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerFatalError)
	}
}

// waitForShutdown 종료 신호를 기다렸다가 Graceful Shutdown을 수행합니다.
// 서버가 스스로 멈춘 경우(포트 충돌 등)에는 Shutdown 호출 없이 상태만 정리합니다.
func (s *Service) waitForShutdown(serviceStopCtx context.Context, e *echo.Echo, httpServerDone chan struct{}) {
	select {
	case <-serviceStopCtx.Done():
		applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopping)

	case <-httpServerDone:
		applog.WithComponent(constants.ComponentService).Error(constants.LogMsgServiceUnexpectedExit)
		s.cleanup()
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		applog.WithComponentAndFields(constants.ComponentService, applog.Fields{
			"error": err,
		}).Error(constants.LogMsgServiceHTTPServerShutdownError)
	}

	<-httpServerDone

	s.cleanup()
}

// cleanup 서비스 종료 후 실행 상태를 초기화합니다.
func (s *Service) cleanup() {
	s.runningMu.Lock()
	s.running = false
	s.runningMu.Unlock()

	applog.WithComponent(constants.ComponentService).Info(constants.LogMsgServiceStopped)
}
