package currency

import (
	"strings"

	"github.com/darkkaiser/product-search-server/internal/service/search/location"
)

// marker 가격 문자열 안에서 통화를 식별하는 데 사용되는 텍스트/기호 단서입니다.
type marker struct {
	token string // 가격 문자열에서 탐색할 문자열 (소문자 기준)
	code  Code   // 해당 마커가 가리키는 정식 통화 코드
}

// markers 통화 마커의 우선순위 테이블입니다.
//
// 주의: 이 테이블의 선언 순서는 동작에 직접적인 영향을 미치는(Load-Bearing) 값입니다.
// Resolve는 선언 순서대로 탐색하여 처음 일치한 마커를 채택하므로,
// 여러 마커가 동시에 포함된 문자열("$12.99 zł" 등)의 판정 결과는 전적으로
// 이 순서에 의해 결정됩니다. 항목을 추가하거나 순서를 변경할 때는
// 기존 판정 결과가 달라지지 않는지 반드시 확인해야 합니다.
//
// 알려진 한계: "us"와 같은 짧은 마커는 무관한 단어의 부분 문자열(예: "Russia")과도
// 일치할 수 있습니다. 구체적인 마커(통화 기호)를 앞쪽에, 모호한 마커를 뒤쪽에
// 배치하는 것으로 오판 가능성을 낮추고 있으나 완전히 제거하지는 못합니다.
var markers = []marker{
	{"zł", PLN},
	{"zl", PLN},
	{"грн", UAH},
	{"₴", UAH},
	{"€", EUR},
	{"$", USD},
	{"£", GBP},
	{"us", USD},
	{"dollar", USD},
	{"dollars", USD},
}

// defaultCurrencies 시장별 기본 통화 테이블입니다.
// 가격 문자열에서 통화를 식별하지 못한 경우의 최종 대체값(Fallback)으로 사용됩니다.
var defaultCurrencies = map[location.Location]Code{
	location.US: USD,
	location.PL: PLN,
	location.DE: EUR,
	location.ES: EUR,
	location.GB: GBP,
}

// Resolve 원시 가격 문자열과 시장 정보로부터 정식 통화 코드를 결정합니다.
//
// 판정 절차:
//  1. 가격 문자열을 소문자로 변환한 뒤, 마커 테이블을 선언 순서대로 탐색하여
//     처음 일치하는 마커의 통화 코드를 반환합니다. (첫 일치 우선)
//  2. 일치하는 마커가 없거나 가격 문자열이 비어 있으면
//     해당 시장의 기본 통화를 반환합니다.
//
// 이 함수는 어떤 입력에 대해서도 실패하지 않으며 항상 통화 코드를 반환합니다.
//
// 매개변수:
//   - rawPrice: 제공자가 전달한 원시 가격 문자열 (예: "$129.99", "129,99 zł", "")
//   - loc: 검색이 수행된 시장
func Resolve(rawPrice string, loc location.Location) Code {
	if code, ok := resolveToken(rawPrice); ok {
		return code
	}
	return DefaultFor(loc)
}

// DefaultFor 해당 시장의 기본 통화를 반환합니다.
// 지원되지 않는 시장이 입력되면 기준 통화를 반환합니다.
func DefaultFor(loc location.Location) Code {
	if code, ok := defaultCurrencies[loc]; ok {
		return code
	}
	return Reference
}

// resolveToken 문자열에서 통화 마커를 탐색하여 정식 통화 코드로 변환합니다.
// 마커 테이블의 선언 순서가 그대로 우선순위가 됩니다.
func resolveToken(s string) (Code, bool) {
	if s == "" {
		return "", false
	}

	lowered := strings.ToLower(s)
	for _, m := range markers {
		if strings.Contains(lowered, m.token) {
			return m.code, true
		}
	}
	return "", false
}
