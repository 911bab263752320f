package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/darkkaiser/product-search-server/internal/config"
	"github.com/darkkaiser/product-search-server/internal/pkg/version"
	"github.com/darkkaiser/product-search-server/internal/service"
	"github.com/darkkaiser/product-search-server/internal/service/api"
	"github.com/darkkaiser/product-search-server/internal/service/exchange"
	"github.com/darkkaiser/product-search-server/internal/service/scheduler"
	"github.com/darkkaiser/product-search-server/internal/service/search"
	"github.com/darkkaiser/product-search-server/internal/service/search/fetcher"
	"github.com/darkkaiser/product-search-server/internal/service/search/provider/googleshopping"
	applog "github.com/darkkaiser/product-search-server/pkg/log"
	log "github.com/sirupsen/logrus"
)

// @title Product Search Server API
// @version 1.0.0
// @description 해외 쇼핑몰 상품을 검색하고 모든 가격을 기준 통화(UAH)로 환산하여 제공하는 REST API입니다.
// @description
// @description ## 주요 기능
// @description - 시장(미국, 폴란드, 독일, 스페인, 영국)별 상품 검색
// @description - 상품별 전체 판매자 오퍼 조회
// @description - 모든 가격의 기준 통화(UAH) 환산 (원본 금액과 함께 제공)
// @description
// @description 환율은 외부 환율 피드에서 하루 1회 조회하여 캐싱되며, 가격을 해석할 수 없는 상품은
// @description 금액이 0으로 설정된 채 반환됩니다(해당 상품만 0 처리되고 요청 전체는 성공합니다).

// @termsOfService http://swagger.io/terms/

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser
// @contact.email darkkaiser@gmail.com

// @license.name MIT
// @license.url https://github.com/DarkKaiser/product-search-server/blob/master/LICENSE

// @BasePath /

// @externalDocs.description Product Search Server 문서
// @externalDocs.url https://github.com/DarkKaiser/product-search-server#readme

const (
	banner = `
  ____                 _            _    ____                      _
 |  _ \ _ __ ___   __| | _   _  ___| |_ / ___|  ___  __ _ _ __ ___| |__
 | |_) | '__/ _ \ / _' || | | |/ __| __|\___ \ / _ \/ _' | '__/ __| '_ \
 |  __/| | | (_) | (_| || |_| | (__| |_  ___) |  __/ (_| | | | (__| | | |
 |_|   |_|  \___/ \__,_| \__,_|\___|\__||____/ \___|\__,_|_|  \___|_| |_|
                                                             %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`
)

// loadAppConfig 실행 인자로 설정 파일 경로가 주어지면 해당 파일을, 아니면 기본 설정 파일을 로드합니다.
func loadAppConfig(args []string) (*config.AppConfig, error) {
	if len(args) > 1 {
		return config.LoadWithFile(args[1])
	}
	return config.Load()
}

func main() {
	// 1. 환경설정 로드 (로그 설정에 필요하므로 가장 먼저 수행한다)
	appConfig, err := loadAppConfig(os.Args)
	if err != nil {
		// 로거 초기화 전이므로 표준 에러에 출력
		fmt.Fprintf(os.Stderr, "[FATAL] 환경설정 로드 실패: %v\n", err)
		os.Exit(1)
	}

	// 2. 로그 시스템 초기화
	var logOpts applog.Options
	if appConfig.Debug {
		logOpts = applog.NewDevelopmentConfig(config.AppName)
	} else {
		logOpts = applog.NewProductionConfig(config.AppName)
	}

	appLogCloser, err := applog.Setup(logOpts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] 로그 시스템 초기화 실패. 서버 구동을 중단합니다. (Cause: %v)\n", err)
		os.Exit(1)
	}
	defer appLogCloser.Close()

	// 3. 로그 레벨 최종 확정
	applog.SetDebugMode(appConfig.Debug)

	// 빌드 정보 조회 (ldflags로 주입된 값에 런타임 정보가 보강되어 있다)
	buildInfo := version.Get()

	// 아스키아트 출력(https://ko.rakko.tools/tools/68/, 폰트:standard)
	fmt.Printf(banner, buildInfo.Version)

	// 빌드 정보 출력
	applog.WithComponentAndFields("main", log.Fields{
		"version": buildInfo.String(),
		"env":     map[bool]string{true: "development", false: "production"}[appConfig.Debug],
	}).Info("서버 초기화 시작")

	// 권장 설정 미준수 항목을 경고로 출력한다. (구동은 계속한다)
	for _, warning := range appConfig.VerifyRecommendations() {
		applog.WithComponent("main").Warn(warning)
	}

	// 외부 연동용 Fetcher 체인을 구성한다.
	// 검색 제공자 호출은 재시도하지 않는다. 제공자 호출은 과금 대상이며,
	// 실패 시 호출자에게 즉시 에러를 반환하는 것이 정책이다.
	providerTimeout := appConfig.SearchProvider.Timeout()
	providerFetcher, err := fetcher.NewFromConfig(fetcher.Config{
		Timeout:          &providerTimeout,
		MaxRetries:       0,
		AllowedMimeTypes: []string{"application/json"},
	})
	if err != nil {
		applog.WithComponentAndFields("main", log.Fields{
			"error": err,
		}).Error("검색 제공자 Fetcher 초기화 실패")

		log.Fatal("검색 제공자 Fetcher 초기화 실패로 프로그램을 종료합니다")
	}
	defer providerFetcher.Close()

	// 환율 피드 호출 실패는 캐싱되지 않고 다음 요청에서 재조회되므로 여기서도 재시도하지 않는다.
	feedTimeout := appConfig.ExchangeFeed.Timeout()
	feedFetcher, err := fetcher.NewFromConfig(fetcher.Config{
		Timeout:          &feedTimeout,
		MaxRetries:       0,
		AllowedMimeTypes: []string{"application/json"},
	})
	if err != nil {
		applog.WithComponentAndFields("main", log.Fields{
			"error": err,
		}).Error("환율 피드 Fetcher 초기화 실패")

		log.Fatal("환율 피드 Fetcher 초기화 실패로 프로그램을 종료합니다")
	}
	defer feedFetcher.Close()

	// 환율 조회 경로: 환율 피드 클라이언트 -> 달력일 단위 캐시
	monobankClient := exchange.NewMonobankClient(feedFetcher, appConfig.ExchangeFeed.ResolvedFeedURL())
	rateCache := exchange.NewCache(monobankClient)

	// 상품 검색 경로: 검색 제공자 클라이언트 -> 환산 카탈로그
	searchClient, err := googleshopping.NewClient(providerFetcher, appConfig.SearchProvider.ClientConfig())
	if err != nil {
		applog.WithComponentAndFields("main", log.Fields{
			"error": err,
		}).Error("검색 제공자 클라이언트 초기화 실패")

		log.Fatal("검색 제공자 클라이언트 초기화 실패로 프로그램을 종료합니다")
	}
	catalog := search.NewCatalog(searchClient, rateCache)

	// 서비스를 생성하고 초기화한다.
	schedulerService := scheduler.NewService(appConfig.ExchangeFeed, rateCache)
	apiService := api.NewService(appConfig, catalog, rateCache, buildInfo)

	// Set up cancellation context and waitgroup
	serviceStopCtx, cancel := context.WithCancel(context.Background())
	serviceStopWG := &sync.WaitGroup{}

	// 서비스를 시작한다.
	services := []service.Service{schedulerService, apiService}
	for _, s := range services {
		serviceStopWG.Add(1)
		if err := s.Start(serviceStopCtx, serviceStopWG); err != nil {
			applog.WithComponentAndFields("main", log.Fields{
				"error": err,
			}).Error("서비스 초기화 실패")

			cancel() // 다른 서비스들도 종료
			serviceStopWG.Wait()

			log.Fatal("서비스 초기화 실패로 프로그램을 종료합니다")
		}
	}

	// Handle sigterm and await termC signal
	termC := make(chan os.Signal, 1)
	signal.Notify(termC, syscall.SIGINT, syscall.SIGTERM)

	applog.WithComponent("main").Info("서버 가동 완료")

	<-termC // Blocks here until interrupted

	// Handle shutdown
	applog.WithComponent("main").Info("Shutdown signal received")
	cancel()             // Signal cancellation to context.Context
	serviceStopWG.Wait() // Block here until are workers are done
}
