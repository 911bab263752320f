// Package scraper JSON API 응답을 가져와 구조체로 변환하는 기능을 제공합니다.
//
// Fetcher를 통해 HTTP 요청을 수행하고, 응답 크기 제한과 Content-Type 검증,
// 문자 인코딩 변환을 거쳐 JSON 디코딩까지를 하나의 호출로 처리합니다.
package scraper

import (
	"context"
	"net/http"

	"github.com/darkkaiser/product-search-server/internal/service/search/fetcher"
)

// defaultMaxBodySize HTTP 요청/응답 본문의 기본 최대 크기입니다.
// 악의적이거나 예상보다 큰 데이터로부터 메모리를 보호하기 위한 상한입니다.
const defaultMaxBodySize = 10 * 1024 * 1024 // 10MB

// JSONScraper JSON API 스크래핑을 위한 인터페이스입니다.
type JSONScraper interface {
	// FetchJSON 지정된 URL로 HTTP 요청을 보내 JSON 응답을 가져오고, 지정된 구조체로 디코딩합니다.
	//
	// body에 io.Reader, string, []byte 외의 값을 전달하면 JSON으로 마샬링하여 전송합니다.
	// v는 반드시 nil이 아닌 포인터여야 합니다.
	FetchJSON(ctx context.Context, method, urlStr string, body any, header http.Header, v any) error
}

// scraper JSONScraper 인터페이스의 구현체입니다.
type scraper struct {
	fetcher fetcher.Fetcher

	// maxRequestBodySize 이 크기를 초과하는 요청 본문은 에러를 반환합니다.
	maxRequestBodySize int64

	// maxResponseBodySize 이 크기를 초과하는 응답 본문은 잘린 것으로 간주하여 에러를 반환합니다.
	maxResponseBodySize int64
}

// Option Scraper 구성을 위한 옵션 함수 타입입니다.
type Option func(*scraper)

// WithMaxRequestBodySize HTTP 요청 본문의 최대 크기를 바이트 단위로 설정합니다.
func WithMaxRequestBodySize(size int64) Option {
	return func(s *scraper) {
		if size > 0 {
			s.maxRequestBodySize = size
		}
	}
}

// WithMaxResponseBodySize HTTP 응답 본문의 최대 읽기 크기를 바이트 단위로 설정합니다.
func WithMaxResponseBodySize(size int64) Option {
	return func(s *scraper) {
		if size > 0 {
			s.maxResponseBodySize = size
		}
	}
}

// New 새로운 JSONScraper를 생성합니다. f가 nil이면 패닉이 발생합니다.
func New(f fetcher.Fetcher, opts ...Option) JSONScraper {
	if f == nil {
		panic("Fetcher는 필수입니다")
	}

	s := &scraper{
		fetcher: f,

		maxRequestBodySize:  defaultMaxBodySize,
		maxResponseBodySize: defaultMaxBodySize,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}
