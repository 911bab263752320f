package exchange

import (
	"context"
	"sync"
	"time"

	apperrors "github.com/darkkaiser/product-search-server/internal/pkg/errors"
	"github.com/darkkaiser/product-search-server/internal/service/search/currency"
	"github.com/darkkaiser/product-search-server/pkg/concurrency"
	applog "github.com/darkkaiser/product-search-server/pkg/log"
)

// Cache 달력 날짜 단위로 환율 테이블을 캐싱하는 RateProvider 구현체입니다.
//
// 동작 규칙:
//   - 같은 날짜에 대한 반복 호출은 캐시된 테이블을 재조회 없이 반환합니다.
//   - 날짜가 바뀐 뒤의 첫 호출만 피드를 새로 조회합니다.
//   - 피드 조회 실패는 호출자에게 전파될 뿐 캐시를 오염시키지 않으므로,
//     다음 호출이 다시 조회를 시도합니다. (부정 캐싱 없음)
//
// 테이블 교체는 완전히 구성된 값의 원자적 대입으로만 이루어지며,
// 동시 독자는 이전 테이블 또는 새 테이블 중 하나만을 관찰합니다.
type Cache struct {
	fetcher RateFetcher

	// buildLocks 같은 날짜의 환율 구성이 동시에 중복 수행되지 않도록
	// 날짜 키 단위로 직렬화합니다. 서로 다른 날짜는 서로를 차단하지 않습니다.
	buildLocks *concurrency.KeyedMutex

	mu    sync.RWMutex
	date  string             // 캐시된 테이블이 유효한 달력 날짜 (dateLayout 형식)
	table currency.RateTable // 완전히 구성된 뒤에만 대입되는 읽기 전용 테이블
}

// 컴파일 타임에 인터페이스 구현 여부를 검증합니다.
var _ RateProvider = (*Cache)(nil)

// NewCache 주어진 RateFetcher를 피드 조회에 사용하는 Cache를 생성합니다.
func NewCache(f RateFetcher) *Cache {
	if f == nil {
		panic("RateFetcher는 nil일 수 없습니다")
	}

	return &Cache{
		fetcher:    f,
		buildLocks: concurrency.NewKeyedMutex(),
	}
}

// Rates 지정된 시점이 속한 달력 날짜의 환율 테이블을 반환합니다.
//
// 해당 날짜의 테이블이 이미 캐시되어 있으면 즉시 반환하고,
// 그렇지 않으면 피드를 1회 조회하여 테이블을 새로 구성한 뒤 캐시합니다.
// 같은 날짜를 요청하는 동시 호출 중 피드 조회는 한 번만 수행됩니다.
func (c *Cache) Rates(ctx context.Context, forDate time.Time) (currency.RateTable, error) {
	day := forDate.Format(dateLayout)

	if table, ok := c.cached(day); ok {
		return table, nil
	}

	c.buildLocks.Lock(day)
	defer c.buildLocks.Unlock(day)

	// 락 대기 중에 다른 고루틴이 같은 날짜의 테이블을 이미 구성했을 수 있습니다.
	if table, ok := c.cached(day); ok {
		return table, nil
	}

	table, err := c.fetcher.FetchRates(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.date = day
	c.table = table
	c.mu.Unlock()

	applog.WithComponent(component).WithFields(applog.Fields{
		"date":       day,
		"currencies": len(table),
	}).Info("환율 테이블 갱신 완료")

	return table, nil
}

// Health 캐시의 현재 상태를 반환합니다.
//
// 환율 테이블이 한 번이라도 정상적으로 발행되었으면 nil을 반환합니다.
// 헬스체크 시점에 피드를 새로 조회하지는 않습니다.
func (c *Cache) Health() error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.table == nil {
		return apperrors.New(apperrors.Unavailable, "환율 테이블이 아직 발행되지 않았습니다")
	}
	return nil
}

// cached 지정된 날짜의 캐시된 테이블을 조회합니다.
func (c *Cache) cached(day string) (currency.RateTable, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.date != day || c.table == nil {
		return nil, false
	}
	return c.table, true
}
