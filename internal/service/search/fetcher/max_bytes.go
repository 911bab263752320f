package fetcher

import (
	"errors"
	"io"
	"net/http"

	apperrors "github.com/darkkaiser/product-search-server/internal/pkg/errors"
)

const (
	// DefaultMaxResponseBytes 응답 본문 크기의 기본 제한값입니다.
	DefaultMaxResponseBytes int64 = 10 * 1024 * 1024

	// NoResponseBytesLimit 응답 본문 크기를 제한하지 않음을 나타냅니다.
	NoResponseBytesLimit int64 = -1
)

// MaxBytesFetcher 응답 본문 크기를 제한하는 Fetcher입니다.
//
// Content-Length 헤더가 제한을 초과하면 본문을 읽지 않고 즉시 에러를 반환하고,
// 헤더가 없거나 거짓인 경우에는 본문을 읽는 도중 제한 초과 시 에러가 발생합니다.
type MaxBytesFetcher struct {
	next     Fetcher
	maxBytes int64
}

// NewMaxBytesFetcher 새로운 MaxBytesFetcher를 생성합니다.
// maxBytes가 0이면 DefaultMaxResponseBytes가 적용되고, NoResponseBytesLimit이면 제한하지 않습니다.
func NewMaxBytesFetcher(next Fetcher, maxBytes int64) *MaxBytesFetcher {
	if maxBytes == 0 {
		maxBytes = DefaultMaxResponseBytes
	}
	return &MaxBytesFetcher{
		next:     next,
		maxBytes: maxBytes,
	}
}

func (f *MaxBytesFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.next.Do(req)
	if err != nil {
		return nil, err
	}
	if f.maxBytes == NoResponseBytesLimit {
		return resp, nil
	}

	if resp.ContentLength > f.maxBytes {
		_ = resp.Body.Close()
		return nil, newErrResponseBodyTooLarge(resp.ContentLength, f.maxBytes)
	}

	resp.Body = &limitedBody{
		body:     http.MaxBytesReader(nil, resp.Body, f.maxBytes),
		maxBytes: f.maxBytes,
	}
	return resp, nil
}

func (f *MaxBytesFetcher) Close() error {
	return f.next.Close()
}

// limitedBody http.MaxBytesReader의 에러를 애플리케이션 에러로 변환하는 io.ReadCloser입니다.
type limitedBody struct {
	body     io.ReadCloser
	maxBytes int64
}

func (b *limitedBody) Read(p []byte) (int, error) {
	n, err := b.body.Read(p)
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return n, newErrResponseBodyTooLarge(-1, b.maxBytes)
	}
	return n, err
}

func (b *limitedBody) Close() error {
	return b.body.Close()
}

// newErrResponseBodyTooLarge 응답 본문 크기 초과 에러를 생성합니다.
// contentLength가 음수이면 크기를 알 수 없는 상태에서 제한을 초과한 경우입니다.
func newErrResponseBodyTooLarge(contentLength, maxBytes int64) error {
	if contentLength >= 0 {
		return apperrors.Newf(apperrors.ExecutionFailed, "응답 본문이 허용된 최대 크기를 초과하였습니다. (Content-Length:%d, 최대:%d바이트)", contentLength, maxBytes)
	}
	return apperrors.Newf(apperrors.ExecutionFailed, "응답 본문이 허용된 최대 크기를 초과하였습니다. (최대:%d바이트)", maxBytes)
}
