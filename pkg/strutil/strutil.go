// Package strutil 로깅과 응답 정제에 사용하는 문자열 유틸리티를 제공합니다.
package strutil

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// StripHTMLTags 문자열에서 HTML 태그를 제거하고 HTML 엔티티를 디코딩하여
// 순수한 텍스트를 반환합니다. 검색 제공자 응답의 상품명에 섞인 하이라이트
// 태그(<b> 등)를 걷어낼 때 사용합니다.
//
// 예: "<b>Hello</b> &amp; World" -> "Hello & World"
func StripHTMLTags(s string) string {
	if s == "" {
		return ""
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		// html 파서는 손상된 입력도 수용하므로 실제로는 도달하지 않는다.
		return s
	}
	return doc.Text()
}

// MaskSensitiveData API 키, 토큰 등의 민감한 값을 로깅 가능한 형태로 마스킹합니다.
func MaskSensitiveData(data string) string {
	if data == "" {
		return ""
	}

	// 3자 이하는 전체 마스킹
	if len(data) <= 3 {
		return "***"
	}

	// 앞 4자만 표시하고 나머지는 마스킹
	if len(data) <= 12 {
		return data[:4] + "***"
	}

	// 긴 토큰은 앞 4자 + 마스킹 + 뒤 4자
	return data[:4] + "***" + data[len(data)-4:]
}
