package fetcher

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	apperrors "github.com/darkkaiser/product-search-server/internal/pkg/errors"
)

// statusErrorBodySnippetSize 에러 메시지에 포함되는 응답 본문의 최대 크기입니다.
const statusErrorBodySnippetSize = 1024

// HTTPStatusError 허용되지 않은 HTTP 상태 코드를 수신했을 때 반환되는 에러입니다.
// URL과 헤더는 민감한 값이 가려진 상태로 보관됩니다.
type HTTPStatusError struct {
	StatusCode  int
	Status      string
	URL         string
	Header      http.Header
	BodySnippet string
	Cause       error
}

func (e *HTTPStatusError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "허용되지 않은 HTTP 상태 코드를 수신하였습니다. (URL:%s, Status:%s)", e.URL, e.Status)
	if e.BodySnippet != "" {
		fmt.Fprintf(&sb, " Body:%s", e.BodySnippet)
	}
	return sb.String()
}

func (e *HTTPStatusError) Unwrap() error {
	return e.Cause
}

// CheckResponseStatus 응답의 상태 코드가 허용 목록에 포함되는지 검증합니다.
// allowedStatusCodes가 비어있으면 2xx 상태 코드만 허용합니다.
//
// 응답 본문은 읽지 않으므로 호출자가 검증 후에도 본문을 읽을 수 있습니다.
func CheckResponseStatus(resp *http.Response, allowedStatusCodes ...int) error {
	if resp == nil {
		return apperrors.New(apperrors.Internal, "응답이 nil입니다.")
	}

	if len(allowedStatusCodes) == 0 {
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return nil
		}
	} else {
		for _, code := range allowedStatusCodes {
			if resp.StatusCode == code {
				return nil
			}
		}
	}

	var requestURL string
	if resp.Request != nil {
		requestURL = redactURL(resp.Request.URL)
	}

	status := resp.Status
	if status == "" {
		status = fmt.Sprintf("%d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	return &HTTPStatusError{
		StatusCode: resp.StatusCode,
		Status:     status,
		URL:        requestURL,
		Header:     redactHeaders(resp.Header),
		Cause:      statusCodeError(resp.StatusCode),
	}
}

// statusCodeError 상태 코드를 에러 유형으로 변환합니다.
func statusCodeError(statusCode int) error {
	var errType apperrors.ErrorType
	switch {
	case statusCode == http.StatusNotFound:
		errType = apperrors.NotFound
	case statusCode == http.StatusForbidden || statusCode == http.StatusUnauthorized:
		errType = apperrors.Forbidden
	case statusCode == http.StatusBadRequest:
		errType = apperrors.InvalidInput
	case statusCode == http.StatusTooManyRequests || statusCode == http.StatusRequestTimeout:
		errType = apperrors.Unavailable
	case statusCode >= 500:
		errType = apperrors.Unavailable
	default:
		errType = apperrors.ExecutionFailed
	}
	return apperrors.Newf(errType, "HTTP %d", statusCode)
}

// StatusCodeFetcher 허용되지 않은 상태 코드의 응답을 에러로 변환하는 Fetcher입니다.
type StatusCodeFetcher struct {
	next               Fetcher
	allowedStatusCodes []int
}

// NewStatusCodeFetcher 새로운 StatusCodeFetcher를 생성합니다.
// allowedStatusCodes가 비어있으면 2xx 상태 코드만 허용합니다.
func NewStatusCodeFetcher(next Fetcher, allowedStatusCodes ...int) *StatusCodeFetcher {
	return &StatusCodeFetcher{
		next:               next,
		allowedStatusCodes: allowedStatusCodes,
	}
}

func (f *StatusCodeFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.next.Do(req)
	if err != nil {
		return nil, err
	}

	if err := CheckResponseStatus(resp, f.allowedStatusCodes...); err != nil {
		var statusErr *HTTPStatusError
		if errors.As(err, &statusErr) {
			snippet, _ := io.ReadAll(io.LimitReader(resp.Body, statusErrorBodySnippetSize))
			statusErr.BodySnippet = strings.ToValidUTF8(string(snippet), "")
		}
		drainAndCloseBody(resp)
		return nil, err
	}
	return resp, nil
}

func (f *StatusCodeFetcher) Close() error {
	return f.next.Close()
}
