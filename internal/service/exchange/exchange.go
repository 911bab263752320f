// Package exchange 일별 환율 테이블의 조회와 캐싱을 담당하는 패키지입니다.
//
// 외부 환율 피드(모노뱅크 공개 API 형식)로부터 전체 통화쌍 목록을 가져와
// 기준 통화(UAH)를 대상으로 하는 쌍만 선별한 환율 테이블을 구성하며,
// 같은 달력 날짜에 대해서는 프로세스 수명 동안 최대 1회만 피드를 호출합니다.
//
// 환율 테이블은 완전히 구성된 이후에만 공개(Publish)되므로,
// 어떤 독자도 절반만 채워진 테이블을 관찰할 수 없습니다.
// 피드 호출 실패는 호출자에게 그대로 전파되며 캐시에 기록되지 않습니다.
package exchange

import (
	"context"
	"time"

	"github.com/darkkaiser/product-search-server/internal/service/search/currency"
)

const component = "exchange"

// dateLayout 캐시 유효 기간의 단위가 되는 달력 날짜 형식입니다.
const dateLayout = "2006-01-02"

// RateProvider 특정 날짜의 환율 테이블을 제공하는 인터페이스입니다.
//
// 금액 환산이 필요한 컴포넌트는 전역 변수가 아닌 이 인터페이스를 주입받아
// 환율 테이블을 조회해야 하며, 이를 통해 테스트에서 손쉽게 대체할 수 있습니다.
type RateProvider interface {
	// Rates 지정된 시점이 속한 달력 날짜에 유효한 환율 테이블을 반환합니다.
	Rates(ctx context.Context, forDate time.Time) (currency.RateTable, error)
}

// RateFetcher 외부 피드로부터 환율 테이블 전체를 1회 조회하는 인터페이스입니다.
// Cache가 날짜별 최초 접근 시에만 호출합니다.
type RateFetcher interface {
	FetchRates(ctx context.Context) (currency.RateTable, error)
}
