package currency

import (
	"regexp"
	"strconv"
	"strings"
)

// amountPattern 가격 문자열에서 금액 후보(숫자와 구분자의 연속)를 찾기 위한 정규식입니다.
// 첫 번째로 일치하는 구간만 금액으로 취급합니다.
var amountPattern = regexp.MustCompile(`\d[\d.,]*`)

// ParsedPrice 원시 가격 문자열의 파싱 결과를 담는 중간 구조체입니다.
//
// Parse가 생성하고 Convert가 소비하는 일회성 값이며, 외부로 노출되지 않습니다.
type ParsedPrice struct {
	// Amount 추출된 금액입니다. HasAmount가 false이면 의미 없는 값입니다.
	Amount float64

	// HasAmount 가격 문자열에서 유효한 금액을 추출했는지의 여부입니다.
	// 빈 문자열이나 숫자가 없는 문자열은 false가 되며, 이는 에러가 아닙니다.
	HasAmount bool

	// Currency 가격 문자열 안의 마커로부터 식별된 정식 통화 코드입니다.
	// 마커를 찾지 못한 경우 빈 값("")이며, 호출부는 시장 기본 통화로 대체해야 합니다.
	Currency Code
}

// Parse 비정형 가격 문자열에서 금액과 통화를 추출합니다.
//
// 이 함수는 관용적(Tolerant)으로 설계되어 어떤 입력에 대해서도 에러를 반환하지 않습니다:
//   - 빈 문자열 또는 공백만 있는 입력 → 금액 없음, 통화 없음
//   - 숫자는 있으나 통화 마커가 없는 입력 → 금액만 존재
//   - 숫자가 전혀 없는 입력 → 금액 없음
//
// 금액의 소수점 처리는 시장마다 구분자 관습이 다른 점(미국식 "129.99" vs
// 유럽식 "129,99")을 고려하여 normalizeAmount의 규칙을 따릅니다.
func Parse(rawPrice string) ParsedPrice {
	parsed := ParsedPrice{}

	trimmed := strings.TrimSpace(rawPrice)
	if trimmed == "" {
		return parsed
	}

	if code, ok := resolveToken(trimmed); ok {
		parsed.Currency = code
	}

	matched := amountPattern.FindString(trimmed)
	if matched == "" {
		return parsed
	}

	amount, err := strconv.ParseFloat(normalizeAmount(matched), 64)
	if err != nil {
		return parsed
	}

	parsed.Amount = amount
	parsed.HasAmount = true
	return parsed
}

// normalizeAmount 천 단위 구분자와 소수점 구분자가 혼재하는 금액 문자열을
// strconv.ParseFloat가 해석할 수 있는 표준 형태("1234.99")로 정규화합니다.
//
// 판정 규칙:
//  1. 쉼표와 마침표가 모두 있으면 더 뒤에 있는 문자를 소수점으로,
//     나머지를 천 단위 구분자로 취급합니다. (예: "1,234.99" → "1234.99", "1.234,99" → "1234.99")
//  2. 한 종류의 구분자만 있는 경우:
//     - 2회 이상 등장하면 천 단위 구분자로 보고 모두 제거합니다. (예: "1,234,567" → "1234567")
//     - 1회 등장하고 뒤따르는 숫자가 1~2자리이면 소수점으로 취급합니다. (예: "129,99" → "129.99")
//     - 그 외에는 천 단위 구분자로 보고 제거합니다. (예: "1,234" → "1234")
func normalizeAmount(s string) string {
	s = strings.TrimRight(s, ".,")

	lastComma := strings.LastIndex(s, ",")
	lastDot := strings.LastIndex(s, ".")

	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}

	case lastComma >= 0:
		s = normalizeSingleSeparator(s, ",")

	case lastDot >= 0:
		s = normalizeSingleSeparator(s, ".")
	}

	return s
}

// normalizeSingleSeparator 한 종류의 구분자만 포함하는 금액 문자열을 정규화합니다.
func normalizeSingleSeparator(s, sep string) string {
	if strings.Count(s, sep) > 1 {
		return strings.ReplaceAll(s, sep, "")
	}

	idx := strings.LastIndex(s, sep)
	fractionDigits := len(s) - idx - 1
	if fractionDigits >= 1 && fractionDigits <= 2 {
		return strings.Replace(s, sep, ".", 1)
	}
	return strings.ReplaceAll(s, sep, "")
}
