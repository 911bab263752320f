package exchange

import (
	"context"
	"net/http"

	apperrors "github.com/darkkaiser/product-search-server/internal/pkg/errors"
	"github.com/darkkaiser/product-search-server/internal/service/search/currency"
	"github.com/darkkaiser/product-search-server/internal/service/search/fetcher"
	"github.com/darkkaiser/product-search-server/internal/service/search/scraper"
	applog "github.com/darkkaiser/product-search-server/pkg/log"
)

// DefaultFeedURL 모노뱅크 공개 환율 API의 기본 엔드포인트입니다.
//
// 공식 문서: https://api.monobank.ua/docs/
// 인증 없이 호출 가능하며, 전체 통화쌍의 당일 환율 목록을 반환합니다.
const DefaultFeedURL = "https://api.monobank.ua/bank/currency"

// referenceNumericCode 기준 통화(UAH)의 ISO 4217 숫자 코드입니다.
// 피드 응답에서 이 코드를 대상 통화로 갖는 쌍만 환율 테이블에 수집됩니다.
const referenceNumericCode = 980

// numericCodes 피드가 사용하는 ISO 4217 숫자 코드를 정식 통화 코드로 변환하는 테이블입니다.
// 여기에 없는 숫자 코드의 통화쌍은 에러 없이 무시됩니다.
var numericCodes = map[int]currency.Code{
	840: currency.USD,
	978: currency.EUR,
	985: currency.PLN,
	826: currency.GBP,
}

// feedRate 환율 피드 응답에서 통화쌍 1건의 원시(Raw) 데이터를 담는 구조체입니다.
//
// RateSell과 RateCross는 통화쌍에 따라 어느 한쪽만 제공될 수 있으며,
// 값이 없는 필드는 0으로 디코딩됩니다.
type feedRate struct {
	CurrencyCodeA int     `json:"currencyCodeA"` // 원본 통화의 ISO 4217 숫자 코드
	CurrencyCodeB int     `json:"currencyCodeB"` // 대상 통화의 ISO 4217 숫자 코드
	RateSell      float64 `json:"rateSell"`      // 매도 환율 (은행이 A 통화를 파는 가격)
	RateCross     float64 `json:"rateCross"`     // 교차 환율 (매수/매도가 없는 쌍에 제공)
}

// MonobankClient 모노뱅크 형식의 환율 피드를 조회하는 클라이언트입니다.
type MonobankClient struct {
	scraper scraper.JSONScraper
	feedURL string
}

// 컴파일 타임에 인터페이스 구현 여부를 검증합니다.
var _ RateFetcher = (*MonobankClient)(nil)

// NewMonobankClient 주어진 Fetcher 위에서 동작하는 환율 피드 클라이언트를 생성합니다.
//
// feedURL이 빈 문자열이면 DefaultFeedURL이 사용됩니다.
func NewMonobankClient(f fetcher.Fetcher, feedURL string) *MonobankClient {
	if f == nil {
		panic("fetcher는 nil일 수 없습니다")
	}
	if feedURL == "" {
		feedURL = DefaultFeedURL
	}

	return &MonobankClient{
		scraper: scraper.New(f),
		feedURL: feedURL,
	}
}

// FetchRates 환율 피드를 1회 호출하여 기준 통화 환율 테이블을 구성합니다.
//
// 선별 규칙:
//  1. 대상 통화가 기준 통화(숫자 코드 980)가 아닌 쌍은 무시합니다.
//  2. 원본 통화의 숫자 코드가 변환 테이블에 없는 쌍은 무시합니다.
//  3. 환율은 매도 환율(rateSell)을 우선 사용하고, 없으면 교차 환율(rateCross)을
//     사용합니다. 둘 다 없는 통화는 테이블에서 빠지며, 이후 환산 시 0으로 강등됩니다.
//
// 네트워크 오류나 예상하지 못한 응답 형식은 에러로 반환되며, 부분 결과는 만들지 않습니다.
func (c *MonobankClient) FetchRates(ctx context.Context) (currency.RateTable, error) {
	var feed []feedRate
	if err := c.scraper.FetchJSON(ctx, http.MethodGet, c.feedURL, nil, nil, &feed); err != nil {
		return nil, apperrors.Wrap(err, apperrors.Unavailable, "환율 피드 조회에 실패했습니다")
	}

	table := make(currency.RateTable, len(numericCodes))
	for _, item := range feed {
		if item.CurrencyCodeB != referenceNumericCode {
			continue
		}

		code, ok := numericCodes[item.CurrencyCodeA]
		if !ok {
			continue
		}

		rate := item.RateSell
		if rate == 0 {
			rate = item.RateCross
		}
		if rate == 0 {
			continue
		}

		table[code] = rate
	}

	applog.WithComponent(component).WithField("currencies", len(table)).Debug("환율 피드 조회 완료")

	return table, nil
}
