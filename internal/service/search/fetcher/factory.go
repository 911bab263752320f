package fetcher

import "time"

// Config Fetcher 체인 구성에 필요한 설정입니다.
// 포인터 필드가 nil이면 각 구현체의 기본값이 적용됩니다.
type Config struct {
	// Timeout 요청 전체에 적용되는 타임아웃입니다.
	Timeout *time.Duration

	// ProxyURL 모든 요청에 사용할 프록시 서버 URL입니다.
	ProxyURL string

	// UserAgent 고정 User-Agent입니다. 비어있으면 요청마다 무작위 브라우저 User-Agent가 사용됩니다.
	UserAgent string

	// MaxRetries 일시적인 실패에 대한 최대 재시도 횟수입니다. 0이면 재시도하지 않습니다.
	MaxRetries int

	// MinRetryDelay, MaxRetryDelay 재시도 간격의 하한과 상한입니다.
	MinRetryDelay *time.Duration
	MaxRetryDelay *time.Duration

	// AllowedStatusCodes 허용할 HTTP 상태 코드 목록입니다. 비어있으면 2xx만 허용합니다.
	AllowedStatusCodes []int

	// AllowedMimeTypes 허용할 응답 미디어 타입 목록입니다. 비어있으면 검증하지 않습니다.
	AllowedMimeTypes []string

	// MaxResponseBytes 응답 본문 크기 제한입니다.
	// nil이면 DefaultMaxResponseBytes가, NoResponseBytesLimit이면 무제한이 적용됩니다.
	MaxResponseBytes *int64

	// DisableLogging true이면 요청/응답 로그를 기록하지 않습니다.
	DisableLogging bool
}

// NewFromConfig 설정에 따라 조합된 Fetcher 체인을 생성합니다.
//
// 체인은 바깥쪽부터 로깅, User-Agent, 재시도, 미디어 타입 검증,
// 상태 코드 검증, 응답 크기 제한, HTTP 실행 순서로 구성됩니다.
func NewFromConfig(cfg Config) (Fetcher, error) {
	var opts []Option
	if cfg.Timeout != nil {
		opts = append(opts, WithTimeout(*cfg.Timeout))
	}
	if cfg.ProxyURL != "" {
		opts = append(opts, WithProxy(cfg.ProxyURL))
	}
	if cfg.UserAgent != "" {
		opts = append(opts, WithUserAgent(cfg.UserAgent))
	}

	base, err := NewHTTPFetcher(opts...)
	if err != nil {
		return nil, err
	}

	f := Fetcher(NewMaxBytesFetcher(base, derefOr(cfg.MaxResponseBytes, DefaultMaxResponseBytes)))
	f = NewStatusCodeFetcher(f, cfg.AllowedStatusCodes...)
	if len(cfg.AllowedMimeTypes) > 0 {
		f = NewMimeTypeFetcher(f, cfg.AllowedMimeTypes)
	}
	if cfg.MaxRetries > 0 {
		f = NewRetryFetcher(f, cfg.MaxRetries, derefOr(cfg.MinRetryDelay, 0), derefOr(cfg.MaxRetryDelay, 0))
	}
	if cfg.UserAgent == "" {
		f = NewUserAgentFetcher(f)
	}
	if !cfg.DisableLogging {
		f = NewLoggingFetcher(f)
	}
	return f, nil
}

// derefOr 포인터가 nil이면 기본값을 반환합니다.
func derefOr[T any](p *T, fallback T) T {
	if p == nil {
		return fallback
	}
	return *p
}
