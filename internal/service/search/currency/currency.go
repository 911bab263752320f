// Package currency 가격 문자열의 통화 식별과 기준 통화 환산을 담당하는 패키지입니다.
//
// 이 패키지는 상품 가격 정규화 파이프라인의 핵심으로, 다음 3단계로 구성됩니다:
//  1. Parse:   비정형 가격 문자열에서 금액과 통화 토큰을 추출합니다. (parse.go)
//  2. Resolve: 통화 마커 테이블과 시장 기본 통화를 이용해 정식 통화 코드를 결정합니다. (resolve.go)
//  3. Convert: 일별 환율 테이블을 적용하여 기준 통화(UAH) 금액으로 환산합니다. (convert.go)
//
// 설계 원칙: 모든 단계는 전역 함수(Total Function)로, 어떤 입력에 대해서도
// 에러를 반환하지 않고 항상 값을 반환합니다. 파싱 불가능한 금액은 0으로,
// 식별 불가능한 통화는 시장 기본 통화로, 환율이 없는 통화는 환산액 0으로
// 단계적으로 강등(Degrade)되며, 호출부는 존재 여부를 분기할 필요가 없습니다.
package currency

// Code 정식(Canonical) 통화 코드입니다. (ISO 4217 알파벳 코드, 예: "USD")
//
// 원본 텍스트가 통화를 어떤 형태("$", "dollars", "zł")로 표기했는지와 무관하게,
// 시스템 내부에서는 항상 이 정규화된 3글자 코드로만 통화를 취급합니다.
type Code string

const (
	USD Code = "USD" // 미국 달러
	EUR Code = "EUR" // 유로
	PLN Code = "PLN" // 폴란드 즈워티
	GBP Code = "GBP" // 영국 파운드
	UAH Code = "UAH" // 우크라이나 흐리우냐
)

// Reference 모든 금액이 비교를 위해 환산되는 기준 통화입니다.
const Reference = UAH

// RateTable 통화 코드별 기준 통화 환율 테이블입니다.
//
// 각 값은 "해당 통화 1단위당 기준 통화 금액"을 의미하는 환율(Multiplier)이며,
// 특정 달력 날짜(Calendar Date)에 대해서만 유효합니다.
// 테이블은 생성 완료 후 읽기 전용으로만 사용되어야 하며,
// 테이블에 존재하지 않는 통화는 환율 0으로 취급됩니다. (Convert 참조)
type RateTable map[Code]float64

// Rate 특정 통화의 기준 통화 환율을 반환합니다.
// 테이블에 해당 통화가 없으면 0을 반환하며, 이는 에러가 아닌 정상적인 강등 경로입니다.
func (t RateTable) Rate(code Code) float64 {
	return t[code]
}
