// Package location 상품 검색 대상 시장(국가/지역)을 정의하는 패키지입니다.
//
// 각 Location은 검색 제공자(Google Shopping)에 전달할 질의 매개변수와
// 1:1로 대응되며, 프로세스 시작 시점에 고정되는 불변 데이터입니다.
package location

import (
	"strings"

	apperrors "github.com/darkkaiser/product-search-server/internal/pkg/errors"
)

// Location 검색 대상 시장을 식별하는 코드입니다. (예: "us", "pl")
//
// 지원되는 시장은 이 패키지에 상수로 선언된 값으로 한정되며,
// 외부 입력으로부터 Location을 생성할 때는 반드시 Parse를 거쳐야 합니다.
type Location string

const (
	US Location = "us" // 미국
	PL Location = "pl" // 폴란드
	DE Location = "de" // 독일
	ES Location = "es" // 스페인
	GB Location = "gb" // 영국
)

// ProviderParams 검색 제공자(Google Shopping) API 호출 시
// 시장별로 달라지는 질의 매개변수의 묶음입니다.
type ProviderParams struct {
	GoogleDomain  string // 검색에 사용할 구글 도메인 (예: "google.com", "google.pl")
	CountryCode   string // gl 매개변수: 검색 결과의 국가 필터
	LanguageCode  string // hl 매개변수: 검색 결과의 언어
	CanonicalName string // location 매개변수: 제공자가 요구하는 지역 표기 문자열
}

// providerParams 시장별 검색 제공자 매개변수 테이블입니다.
// 프로세스 시작 이후 변경되지 않습니다.
var providerParams = map[Location]ProviderParams{
	US: {GoogleDomain: "google.com", CountryCode: "us", LanguageCode: "en", CanonicalName: "United States"},
	PL: {GoogleDomain: "google.pl", CountryCode: "pl", LanguageCode: "pl", CanonicalName: "Poland"},
	DE: {GoogleDomain: "google.de", CountryCode: "de", LanguageCode: "de", CanonicalName: "Germany"},
	ES: {GoogleDomain: "google.es", CountryCode: "es", LanguageCode: "es", CanonicalName: "Spain"},
	GB: {GoogleDomain: "google.co.uk", CountryCode: "uk", LanguageCode: "en", CanonicalName: "United Kingdom"},
}

// All 지원되는 모든 시장을 반환합니다.
// 반환 순서는 고정되어 있으므로 문서 출력이나 검증 메시지에 그대로 사용할 수 있습니다.
func All() []Location {
	return []Location{US, PL, DE, ES, GB}
}

// Parse 외부 입력 문자열을 Location으로 변환합니다.
//
// 입력값의 앞뒤 공백은 제거되고 대소문자는 무시됩니다.
// 지원되지 않는 시장 코드가 입력되면 InvalidInput 에러를 반환합니다.
func Parse(s string) (Location, error) {
	loc := Location(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := providerParams[loc]; !ok {
		return "", apperrors.Newf(apperrors.InvalidInput, "지원되지 않는 시장 코드입니다 (입력값: %q)", s)
	}
	return loc, nil
}

// IsValid 이 Location이 지원되는 시장인지의 여부를 반환합니다.
func (l Location) IsValid() bool {
	_, ok := providerParams[l]
	return ok
}

// ProviderParams 이 시장에 대응되는 검색 제공자 질의 매개변수를 반환합니다.
//
// 지원되지 않는 Location에 대해서는 빈 구조체가 반환되므로,
// 호출 전에 Parse 또는 IsValid를 통해 유효성이 보장되어야 합니다.
func (l Location) ProviderParams() ProviderParams {
	return providerParams[l]
}

// String Location의 문자열 표현을 반환합니다.
func (l Location) String() string {
	return string(l)
}
