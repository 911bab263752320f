package fetcher

import (
	"net/http"
	"time"

	applog "github.com/darkkaiser/product-search-server/pkg/log"
)

// LoggingFetcher HTTP 요청의 실행 결과를 로그로 기록하는 Fetcher입니다.
// URL의 민감한 쿼리 파라미터는 가려진 상태로 기록됩니다.
type LoggingFetcher struct {
	next Fetcher
}

// NewLoggingFetcher 새로운 LoggingFetcher를 생성합니다.
func NewLoggingFetcher(next Fetcher) *LoggingFetcher {
	return &LoggingFetcher{next: next}
}

func (f *LoggingFetcher) Do(req *http.Request) (*http.Response, error) {
	logger := applog.WithComponentAndFields(component, applog.Fields{
		"method": req.Method,
		"url":    redactURL(req.URL),
	})

	start := time.Now()
	resp, err := f.next.Do(req)
	duration := time.Since(start)

	if err != nil {
		logger.WithField("duration_ms", duration.Milliseconds()).Errorf("HTTP 요청에 실패하였습니다. (에러:%s)", err)
		return nil, err
	}

	logger.WithFields(applog.Fields{
		"status_code": resp.StatusCode,
		"duration_ms": duration.Milliseconds(),
	}).Debug("HTTP 요청 완료")
	return resp, nil
}

func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
