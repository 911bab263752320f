package currency

import (
	"math"

	"github.com/darkkaiser/product-search-server/internal/service/search/location"
)

// ExchangedAmount 기준 통화로 환산이 완료된 정규화 가격입니다.
//
// 네 개의 필드는 어떤 입력에 대해서도 항상 구체적인 값으로 채워집니다.
// (값이 없으면 0, 통화를 식별하지 못하면 시장 기본 통화)
// 따라서 다운스트림 소비자는 필드의 존재 여부를 분기할 필요가 없으며,
// 0원의 가격은 에러 상태가 아닌 표시 가능한 정상 결과입니다.
//
// 이 구조체는 생성 이후 불변이며, 오퍼 레코드에 값으로 포함(Embed)됩니다.
type ExchangedAmount struct {
	// Amount 기준 통화로 환산된 금액입니다. (소수점 둘째 자리 반올림)
	// 원본 금액이 없거나 환율 테이블에 원본 통화가 없으면 0입니다.
	Amount float64 `json:"amount"`

	// Currency 환산 금액의 통화로, 항상 기준 통화(UAH)입니다.
	Currency Code `json:"currency"`

	// OriginalAmount 제공자의 가격 문자열에서 추출한 원본 금액입니다.
	// 금액을 추출하지 못한 경우 0입니다.
	OriginalAmount float64 `json:"original_amount"`

	// OriginalCurrency 원본 가격의 정식 통화 코드입니다.
	// 가격 문자열에서 식별하지 못한 경우 시장 기본 통화로 채워집니다.
	OriginalCurrency Code `json:"original_currency"`
}

// Convert 원시 가격 문자열을 기준 통화로 환산한 ExchangedAmount를 생성합니다.
//
// 처리 절차:
//  1. Parse로 가격 문자열에서 금액과 통화 토큰을 추출합니다.
//  2. 통화를 결정합니다: 파싱 단계에서 식별된 통화 → 마커 테이블 재탐색(Resolve)
//     → 시장 기본 통화 순서의 대체 사슬(Fallback Chain)을 따릅니다.
//  3. 환율 테이블에서 결정된 통화의 환율을 조회합니다. 테이블에 없는 통화는 환율 0입니다.
//  4. 환산 금액을 계산합니다: round(원본 금액 × 환율, 소수점 둘째 자리)
//
// 이 함수는 순수 함수이며, 동일한 입력에 대해 항상 동일한 결과를 반환합니다.
//
// 매개변수:
//   - rawPrice: 제공자가 전달한 원시 가격 문자열 (빈 문자열 허용)
//   - loc: 검색이 수행된 시장 (통화 식별 실패 시의 기본 통화 결정에 사용)
//   - rates: 해당 날짜의 환율 테이블
func Convert(rawPrice string, loc location.Location, rates RateTable) ExchangedAmount {
	parsed := Parse(rawPrice)

	code := parsed.Currency
	if code == "" {
		code = Resolve(rawPrice, loc)
	}

	exchanged := ExchangedAmount{
		Currency:         Reference,
		OriginalCurrency: code,
	}
	if !parsed.HasAmount {
		return exchanged
	}

	exchanged.OriginalAmount = parsed.Amount
	exchanged.Amount = round2(parsed.Amount * rates.Rate(code))
	return exchanged
}

// round2 금액을 소수점 둘째 자리로 반올림합니다.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
