package fetcher

import (
	"context"
	"errors"
	"math/rand/v2"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"

	apperrors "github.com/darkkaiser/product-search-server/internal/pkg/errors"
	applog "github.com/darkkaiser/product-search-server/pkg/log"
)

const (
	maxRetryLimit        = 10
	minRetryDelayFloor   = 1 * time.Second
	defaultMaxRetryDelay = 30 * time.Second
)

// idempotentMethods 재시도해도 안전한 HTTP 메서드 목록입니다.
var idempotentMethods = map[string]struct{}{
	http.MethodGet:     {},
	http.MethodHead:    {},
	http.MethodOptions: {},
	http.MethodTrace:   {},
	http.MethodPut:     {},
	http.MethodDelete:  {},
}

// RetryFetcher 일시적인 실패에 대해 요청을 재시도하는 Fetcher입니다.
//
// 지수 백오프와 전체 지터(full jitter)를 적용하여 재시도 간격을 계산하며,
// 서버가 Retry-After 헤더를 보낸 경우 해당 값을 우선 사용합니다.
// 멱등하지 않은 메서드(POST, PATCH)는 재시도하지 않습니다.
type RetryFetcher struct {
	next          Fetcher
	maxRetries    int
	minRetryDelay time.Duration
	maxRetryDelay time.Duration
}

// NewRetryFetcher 새로운 RetryFetcher를 생성합니다.
//
// maxRetries는 0~10 범위로 보정되고, minDelay는 최소 1초,
// maxDelay는 0 이하이면 30초가 적용됩니다.
func NewRetryFetcher(next Fetcher, maxRetries int, minDelay, maxDelay time.Duration) *RetryFetcher {
	maxRetries = min(max(maxRetries, 0), maxRetryLimit)
	minDelay = max(minDelay, minRetryDelayFloor)
	if maxDelay <= 0 {
		maxDelay = defaultMaxRetryDelay
	}
	maxDelay = max(maxDelay, minDelay)

	return &RetryFetcher{
		next:          next,
		maxRetries:    maxRetries,
		minRetryDelay: minDelay,
		maxRetryDelay: maxDelay,
	}
}

func (f *RetryFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.next.Do(req)
	if err == nil || f.maxRetries == 0 || !f.canRetryRequest(req) {
		return resp, err
	}

	logger := applog.WithComponentAndFields(component, applog.Fields{
		"method": req.Method,
		"url":    redactURL(req.URL),
	})

	for attempt := 1; attempt <= f.maxRetries; attempt++ {
		retryAfter, retriable := f.isRetriable(err)
		if !retriable {
			return nil, err
		}

		delay := f.backoffDelay(attempt, retryAfter)
		logger.WithFields(applog.Fields{
			"attempt": attempt,
			"delay":   delay.String(),
		}).Warnf("HTTP 요청이 실패하여 재시도합니다. (에러:%s)", err)

		select {
		case <-time.After(delay):
		case <-req.Context().Done():
			return nil, req.Context().Err()
		}

		retryReq, reqErr := f.rewindRequest(req)
		if reqErr != nil {
			return nil, reqErr
		}

		resp, err = f.next.Do(retryReq)
		if err == nil {
			return resp, nil
		}
	}
	return nil, err
}

func (f *RetryFetcher) Close() error {
	return f.next.Close()
}

// canRetryRequest 요청 자체가 재시도 가능한지 판단합니다.
// 멱등한 메서드이면서, 본문이 있다면 GetBody로 재생성할 수 있어야 합니다.
func (f *RetryFetcher) canRetryRequest(req *http.Request) bool {
	if _, ok := idempotentMethods[req.Method]; !ok {
		return false
	}
	if req.Body != nil && req.GetBody == nil {
		return false
	}
	return true
}

// rewindRequest 재시도를 위해 요청을 복제하고 본문을 재생성합니다.
func (f *RetryFetcher) rewindRequest(req *http.Request) (*http.Request, error) {
	retryReq := req.Clone(req.Context())
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, apperrors.Wrap(err, apperrors.ExecutionFailed, "재시도를 위한 요청 본문 재생성에 실패하였습니다.")
		}
		retryReq.Body = body
	}
	return retryReq, nil
}

// isRetriable 에러가 재시도 가능한지 판단하고, 서버가 지정한 대기 시간을 함께 반환합니다.
func (f *RetryFetcher) isRetriable(err error) (retryAfter time.Duration, retriable bool) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return 0, false
	}

	var statusErr *HTTPStatusError
	if errors.As(err, &statusErr) {
		switch {
		case statusErr.StatusCode == http.StatusTooManyRequests,
			statusErr.StatusCode == http.StatusRequestTimeout,
			statusErr.StatusCode >= 500:
			return f.parseRetryAfter(statusErr.Header.Get("Retry-After")), true
		default:
			return 0, false
		}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return 0, true
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return 0, true
	}

	return 0, apperrors.Is(err, apperrors.Unavailable) || apperrors.Is(err, apperrors.Timeout)
}

// parseRetryAfter Retry-After 헤더를 대기 시간으로 변환합니다.
// 초 단위 숫자와 HTTP 날짜 형식을 지원하며, 최대 재시도 간격을 초과하는 값은 무시합니다.
func (f *RetryFetcher) parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}

	var delay time.Duration
	if seconds, err := strconv.Atoi(value); err == nil {
		delay = time.Duration(seconds) * time.Second
	} else if at, err := http.ParseTime(value); err == nil {
		delay = time.Until(at)
	}

	if delay <= 0 || delay > f.maxRetryDelay {
		return 0
	}
	return delay
}

// backoffDelay 재시도 간격을 계산합니다.
// 서버가 지정한 대기 시간이 있으면 그 값을, 없으면 지수 백오프에 전체 지터를 적용합니다.
func (f *RetryFetcher) backoffDelay(attempt int, retryAfter time.Duration) time.Duration {
	if retryAfter > 0 {
		return retryAfter
	}

	delay := f.minRetryDelay << (attempt - 1)
	if delay <= 0 || delay > f.maxRetryDelay {
		delay = f.maxRetryDelay
	}
	return time.Duration(rand.Int64N(int64(delay) + 1))
}
