package api

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/darkkaiser/product-search-server/internal/config"
	"github.com/darkkaiser/product-search-server/internal/pkg/version"
	"github.com/darkkaiser/product-search-server/internal/service/search"
	"github.com/darkkaiser/product-search-server/internal/service/search/location"
	"github.com/darkkaiser/product-search-server/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test Helpers
// =============================================================================

// emptyCatalog 항상 빈 결과를 반환하는 ProductCatalog 구현체입니다.
type emptyCatalog struct{}

func (emptyCatalog) RecommendedProducts(_ context.Context, _ string, _ location.Location) ([]*search.RecommendedProduct, error) {
	return []*search.RecommendedProduct{}, nil
}

func (emptyCatalog) RecommendedProductOffers(_ context.Context, _ string, _ location.Location) (*search.RecommendedProduct, error) {
	return &search.RecommendedProduct{}, nil
}

// setupServiceHelper API 서비스 테스트를 위한 공통 설정을 생성합니다.
func setupServiceHelper(t *testing.T) (*Service, *config.AppConfig, *sync.WaitGroup, context.Context, context.CancelFunc) {
	t.Helper()

	// 충돌 방지를 위한 동적 포트 할당
	port, err := testutil.GetFreePort()
	require.NoError(t, err, "사용 가능한 포트를 가져오는데 실패했습니다")

	appConfig := &config.AppConfig{}
	appConfig.SearchAPI.WS.ListenPort = port
	appConfig.SearchAPI.WS.TLSServer = false
	appConfig.SearchAPI.CORS.AllowOrigins = []string{"*"}
	appConfig.Debug = true

	service := NewService(appConfig, emptyCatalog{}, healthyChecker{}, version.Info{
		Version:     "1.0.0",
		BuildDate:   "2024-01-01",
		BuildNumber: "100",
	})

	ctx, cancel := context.WithCancel(context.Background())
	wg := &sync.WaitGroup{}

	return service, appConfig, wg, ctx, cancel
}

// setupMinimalService 최소한의 설정으로 Service를 생성합니다.
func setupMinimalService(t *testing.T) *Service {
	t.Helper()

	appConfig := &config.AppConfig{
		Debug: true,
	}
	appConfig.SearchAPI.WS.ListenPort = 8080 // 기본값

	buildInfo := version.Info{
		Version: "1.0.0",
	}

	return NewService(appConfig, emptyCatalog{}, healthyChecker{}, buildInfo)
}

// =============================================================================
// Constructor Tests
// =============================================================================

// TestNewService Service 생성자가 올바르게 초기화되는지 검증합니다.
func TestNewService(t *testing.T) {
	appConfig := &config.AppConfig{
		Debug: true,
	}
	appConfig.SearchAPI.WS.ListenPort = 8080
	appConfig.SearchAPI.CORS.AllowOrigins = []string{"http://localhost"}

	catalog := emptyCatalog{}
	checker := healthyChecker{}
	buildInfo := version.Info{
		Version:     "1.2.3",
		BuildDate:   "2024-01-15",
		BuildNumber: "456",
	}

	service := NewService(appConfig, catalog, checker, buildInfo)

	// 필드 검증
	assert.NotNil(t, service)
	assert.Equal(t, appConfig, service.appConfig)
	assert.Equal(t, catalog, service.catalog)
	assert.Equal(t, checker, service.healthChecker)
	assert.Equal(t, buildInfo, service.buildInfo)
	assert.False(t, service.running, "초기 상태는 running=false여야 함")
}

// TestNewService_NilDependencies 필수 의존성이 nil일 때 패닉 발생을 검증합니다.
func TestNewService_NilDependencies(t *testing.T) {
	appConfig := &config.AppConfig{}
	buildInfo := version.Info{}

	assert.Panics(t, func() {
		NewService(nil, emptyCatalog{}, healthyChecker{}, buildInfo)
	}, "AppConfig가 nil이면 패닉이 발생해야 합니다")

	assert.Panics(t, func() {
		NewService(appConfig, nil, healthyChecker{}, buildInfo)
	}, "ProductCatalog가 nil이면 패닉이 발생해야 합니다")

	assert.Panics(t, func() {
		NewService(appConfig, emptyCatalog{}, nil, buildInfo)
	}, "HealthChecker가 nil이면 패닉이 발생해야 합니다")
}

// =============================================================================
// Server Setup Tests
// =============================================================================

// TestService_buildServer Echo 서버 설정을 검증합니다.
func TestService_buildServer(t *testing.T) {
	service := setupMinimalService(t)

	e := service.buildServer()

	// 1. Echo 인스턴스 검증
	assert.NotNil(t, e)
	assert.NotNil(t, e.Router())
	assert.True(t, e.Debug, "Config의 Debug가 true이면 Echo Debug도 true여야 함")

	// 2. 라우트 등록 검증
	routes := e.Routes()
	assert.NotEmpty(t, routes, "라우트가 등록되어야 함")

	// 주요 라우트 존재 확인
	routePaths := make(map[string]bool)
	for _, route := range routes {
		routePaths[route.Path] = true
	}

	assert.True(t, routePaths["/health"], "/health 라우트가 등록되어야 함")
	assert.True(t, routePaths["/version"], "/version 라우트가 등록되어야 함")
	assert.True(t, routePaths["/api/v1/products"], "/api/v1/products 라우트가 등록되어야 함")
	assert.True(t, routePaths["/api/v1/products/:product_id/offers"], "오퍼 조회 라우트가 등록되어야 함")
	assert.True(t, routePaths["/api/products"], "레거시 라우트가 등록되어야 함")
}

// =============================================================================
// TLS Configuration Tests
// =============================================================================

// TestSearchAPIService_StartTLS TLS 설정이 활성화되었을 때 서버 동작을 검증합니다.
func TestSearchAPIService_StartTLS(t *testing.T) {
	service, appConfig, wg, ctx, cancel := setupServiceHelper(t)
	defer cancel()

	// TLS 설정 활성화
	appConfig.SearchAPI.WS.TLSServer = true
	// 존재하지 않거나 유효하지 않은 인증서 경로 설정
	appConfig.SearchAPI.WS.TLSCertFile = filepath.Join("invalid", "cert.pem")
	appConfig.SearchAPI.WS.TLSKeyFile = filepath.Join("invalid", "key.pem")

	wg.Add(1)
	err := service.Start(ctx, wg)
	require.NoError(t, err, "비동기 서버 시작은 에러를 반환하지 않아야 함")

	// TLS 파일 로드 실패 -> 서버 고루틴 종료 -> waitForShutdown의
	// httpServerDone 경로로 상태가 정리될 때까지 대기
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("TLS 파일 로드 실패 시 서비스가 스스로 종료되어야 함")
	}

	// 비정상 종료 후에도 running 플래그는 정리되어야 함
	service.runningMu.Lock()
	assert.False(t, service.running, "비정상 종료 후 running=false")
	service.runningMu.Unlock()
}

// TestSearchAPIService_StartTLS_Success 유효한 인증서로 HTTPS 서버가 기동되는지 검증합니다.
func TestSearchAPIService_StartTLS_Success(t *testing.T) {
	service, appConfig, wg, ctx, cancel := setupServiceHelper(t)
	defer cancel()

	certFile, keyFile := testutil.GenerateSelfSignedCert(t)
	appConfig.SearchAPI.WS.TLSServer = true
	appConfig.SearchAPI.WS.TLSCertFile = certFile
	appConfig.SearchAPI.WS.TLSKeyFile = keyFile

	wg.Add(1)
	require.NoError(t, service.Start(ctx, wg))
	require.NoError(t, testutil.WaitForServer(appConfig.SearchAPI.WS.ListenPort, 5*time.Second))

	// 자체 서명 인증서이므로 서버 인증서 검증은 생략
	client := &http.Client{
		Timeout: 3 * time.Second,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}
	resp, err := client.Get(fmt.Sprintf("https://localhost:%d/health", appConfig.SearchAPI.WS.ListenPort))
	require.NoError(t, err, "HTTPS 요청이 성공해야 함")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	wg.Wait()
}

// =============================================================================
// Service Lifecycle Tests
// =============================================================================

// TestSearchAPIService_Lifecycle API 서비스의 시작 및 종료를 통합 검증합니다.
func TestSearchAPIService_Lifecycle(t *testing.T) {
	service, appConfig, wg, ctx, cancel := setupServiceHelper(t)
	defer cancel()

	wg.Add(1)
	err := service.Start(ctx, wg)
	require.NoError(t, err, "Start 호출 성공해야 함")

	// 서버 시작 대기
	err = testutil.WaitForServer(appConfig.SearchAPI.WS.ListenPort, 2*time.Second)
	require.NoError(t, err, "서버가 타임아웃 내에 시작되어야 함")

	// 1. Running 상태 검증
	service.runningMu.Lock()
	assert.True(t, service.running, "서비스 시작 후 running=true")
	service.runningMu.Unlock()

	// 2. 종료 프로세스 시작
	shutdownStart := time.Now()
	cancel() // Context 취소로 종료 트리거

	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		// 성공
		assert.Less(t, time.Since(shutdownStart), 6*time.Second, "Shutdown은 타임아웃(5초) 내에 완료되어야 함")
	case <-time.After(6 * time.Second):
		t.Fatal("Shutdown 타임아웃 발생 (WaitGroup mismatch 가능성)")
	}

	// 3. 종료 후 상태 검증
	service.runningMu.Lock()
	assert.False(t, service.running, "서비스 종료 후 running=false")
	service.runningMu.Unlock()
}

// TestSearchAPIService_DuplicateStart 중복 시작 호출 시 동작을 검증합니다.
func TestSearchAPIService_DuplicateStart(t *testing.T) {
	service, appConfig, wg, ctx, cancel := setupServiceHelper(t)
	defer cancel()

	// 첫 번째 Start
	wg.Add(1)
	err := service.Start(ctx, wg)
	require.NoError(t, err)

	testutil.WaitForServer(appConfig.SearchAPI.WS.ListenPort, 2*time.Second)

	// 두 번째 Start
	// Start 내부에서 이미 실행 중이면 defer wg.Done()을 호출하므로 WG를 증가시켜야 함
	wg.Add(1)
	err = service.Start(ctx, wg)
	assert.NoError(t, err, "중복 시작은 에러를 반환하지 않고 무시해야 함")

	// running 상태 유지 확인
	service.runningMu.Lock()
	assert.True(t, service.running)
	service.runningMu.Unlock()

	// 종료
	cancel()
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(6 * time.Second):
		t.Fatal("Shutdown 타임아웃")
	}
}

// =============================================================================
// Concurrency Tests
// =============================================================================

// TestService_ConcurrentStart 동시에 여러 Start 호출이 발생해도 안전한지 검증합니다.
func TestService_ConcurrentStart(t *testing.T) {
	service, appConfig, wg, ctx, cancel := setupServiceHelper(t)
	defer cancel()

	const goroutines = 10
	startErrors := make(chan error, goroutines)
	startWg := &sync.WaitGroup{}

	// 동시에 10개의 Start 호출
	for i := 0; i < goroutines; i++ {
		// 각 고루틴마다 서비스의 wg.Add를 호출해야 함 (Start 내부에서 defer wg.Done 호출하므로)
		wg.Add(1)

		startWg.Add(1)
		go func() {
			defer startWg.Done()
			err := service.Start(ctx, wg)
			startErrors <- err
		}()
	}

	// 서버 시작 대기
	err := testutil.WaitForServer(appConfig.SearchAPI.WS.ListenPort, 5*time.Second)
	require.NoError(t, err)

	startWg.Wait()
	close(startErrors)

	// 모든 호출이 에러 없이 반환되어야 함 (첫 번째는 시작, 나머지는 무시)
	for err := range startErrors {
		assert.NoError(t, err)
	}

	cancel()

	// 종료 대기
	done := make(chan struct{})
	go func() {
		wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(10 * time.Second): // 타임아웃 조금 더 여유있게
		t.Fatal("Shutdown 타임아웃 - Race condition 가능성")
	}
}
