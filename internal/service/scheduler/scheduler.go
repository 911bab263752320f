package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/darkkaiser/product-search-server/internal/config"
	"github.com/darkkaiser/product-search-server/internal/service/search/currency"
	"github.com/darkkaiser/product-search-server/pkg/cronx"
	applog "github.com/darkkaiser/product-search-server/pkg/log"
	"github.com/robfig/cron/v3"
)

// component Scheduler 서비스의 로깅용 컴포넌트 이름
const component = "scheduler.service"

// prewarmTimeout 환율 테이블 사전 적재 1회의 최대 대기 시간 (블로킹 방지)
const prewarmTimeout = 30 * time.Second

// RateWarmer 지정된 날짜의 환율 테이블을 적재하는 인터페이스입니다.
// 일반적으로 환율 캐시(exchange.Cache)가 이 인터페이스를 구현합니다.
type RateWarmer interface {
	Rates(ctx context.Context, forDate time.Time) (currency.RateTable, error)
}

// Scheduler 날짜가 바뀐 직후 환율 테이블을 미리 적재하는 서비스입니다.
//
// 환율 테이블은 달력 날짜 단위로 캐싱되므로, 자정 직후의 첫 상품 검색 요청은
// 환율 피드 호출을 기다려야 합니다. 이 서비스는 설정된 Cron 스케줄에 맞춰
// 당일 환율 테이블을 선제적으로 적재하여 해당 지연을 제거합니다.
type Scheduler struct {
	feedConfig config.ExchangeFeedConfig

	cron *cron.Cron

	// rateWarmer 환율 테이블 적재를 담당하는 인터페이스입니다.
	rateWarmer RateWarmer

	running   bool
	runningMu sync.Mutex
}

// NewService 새로운 Scheduler 서비스 인스턴스를 생성합니다.
func NewService(feedConfig config.ExchangeFeedConfig, warmer RateWarmer) *Scheduler {
	if warmer == nil {
		panic("RateWarmer는 필수입니다")
	}

	return &Scheduler{
		feedConfig: feedConfig,

		rateWarmer: warmer,
	}
}

// Start 스케줄러를 시작하고 환율 테이블 사전 적재 작업을 Cron 엔진에 등록합니다.
//
// 매개변수:
//   - serviceStopCtx: 서비스 종료 신호를 받기 위한 Context
//   - serviceStopWG: 서비스 종료 완료를 알리기 위한 WaitGroup
//
// 반환값:
//   - error: rateWarmer가 nil이거나 Cron 표현식 등록에 실패한 경우
func (s *Scheduler) Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	applog.WithComponent(component).Info("서비스 시작 진입: Scheduler 서비스 초기화 프로세스를 시작합니다")

	if s.rateWarmer == nil {
		serviceStopWG.Done()
		return ErrRateWarmerNotInitialized
	}

	if s.running {
		serviceStopWG.Done()
		applog.WithComponent(component).Warn("Scheduler 서비스가 이미 실행 중입니다 (중복 호출)")
		return nil
	}

	// 1. Cron 엔진 초기화
	// - StandardParser: 초 단위 스케줄링 지원 (6개 필드: 초 분 시 일 월 요일)
	// - Recover: Panic 발생 시 복구하여 다른 작업에 영향을 주지 않음
	// - SkipIfStillRunning: 이전 실행이 끝나지 않았으면 다음 실행을 건너뜀
	s.cron = cron.New(
		cron.WithParser(cronx.StandardParser()),
		cron.WithLogger(cron.VerbosePrintfLogger(applog.StandardLogger())),
		cron.WithChain(
			cron.Recover(cron.VerbosePrintfLogger(applog.StandardLogger())),
			cron.SkipIfStillRunning(cron.VerbosePrintfLogger(applog.StandardLogger())),
		),
	)

	// 2. 사전 적재 작업 등록
	if err := s.registerPrewarmJob(); err != nil {
		s.cron = nil
		serviceStopWG.Done()
		return err
	}

	// 3. 스케줄러 시작
	s.cron.Start()
	s.running = true

	applog.WithComponentAndFields(component, applog.Fields{
		"registered_schedules": len(s.cron.Entries()),
		"prewarm_runnable":     s.feedConfig.Prewarm.Runnable,
	}).Info("서비스 시작 완료: Scheduler 서비스가 정상적으로 초기화되었습니다")

	// 4. 종료 신호 대기 (고루틴)
	// 서비스 생명주기 컨텍스트(serviceStopCtx)의 취소 이벤트를 비동기로 모니터링합니다.
	// 종료 시그널 수신 시 Stop() 메서드를 호출하여 리소스를 안전하게 해제하고 그 결과를 보장합니다.
	go func() {
		defer serviceStopWG.Done()

		<-serviceStopCtx.Done()

		s.Stop()
	}()

	return nil
}

// Stop 실행 중인 스케줄러를 안전하게 중지합니다.
func (s *Scheduler) Stop() {
	s.runningMu.Lock()
	defer s.runningMu.Unlock()

	if !s.running {
		return
	}

	applog.WithComponent(component).Info("종료 절차 진입: Scheduler 서비스 중지 시그널을 수신했습니다")

	// Cron 엔진 중지 및 실행 중인 작업 완료 대기
	if s.cron != nil {
		ctx := s.cron.Stop()
		<-ctx.Done()
	}

	s.cron = nil
	s.running = false

	applog.WithComponent(component).Info("Scheduler 서비스 종료 완료: 모든 리소스가 정리되었습니다")
}

// registerPrewarmJob 환율 테이블 사전 적재 작업을 Cron 스케줄러에 등록합니다.
// 설정에서 사전 적재가 비활성화된 경우 아무 작업도 등록하지 않습니다.
func (s *Scheduler) registerPrewarmJob() error {
	if !s.feedConfig.Prewarm.Runnable {
		applog.WithComponent(component).Info("환율 테이블 사전 적재 스케줄이 비활성화되어 있습니다")
		return nil
	}

	timeSpec := s.feedConfig.Prewarm.TimeSpec

	_, err := s.cron.AddFunc(timeSpec, s.warmRates)
	if err != nil {
		// 설정 로드 시 이미 검증된 표현식이므로 보통 도달하지 않음
		return NewErrInvalidCronSpec(timeSpec, err)
	}

	return nil
}

// warmRates 오늘 날짜의 환율 테이블을 적재합니다.
//
// 작업 실행의 생명주기를 서비스 종료 시그널과 분리하기 위해 context.Background()를
// 사용합니다. Graceful Shutdown 시 cron.Stop()이 실행 중인 작업의 완료를 대기하므로,
// 적재 도중 컨텍스트 취소로 인한 강제 중단을 방지합니다.
func (s *Scheduler) warmRates() {
	ctx, cancel := context.WithTimeout(context.Background(), prewarmTimeout)
	defer cancel()

	start := time.Now()

	rates, err := s.rateWarmer.Rates(ctx, start)
	if err != nil {
		// 사전 적재 실패는 치명적이지 않음: 이후 첫 상품 검색 요청이 다시 적재를 시도함
		applog.WithComponentAndFields(component, applog.Fields{
			"error": err,
		}).Error("환율 테이블 사전 적재 실패: 다음 상품 검색 요청 시 재시도됩니다")
		return
	}

	applog.WithComponentAndFields(component, applog.Fields{
		"rate_count": len(rates),
		"elapsed":    time.Since(start).String(),
	}).Info("환율 테이블 사전 적재 완료")
}
