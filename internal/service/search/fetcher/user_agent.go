package fetcher

import (
	"math/rand/v2"
	"net/http"
)

// defaultUserAgents User-Agent 미지정 시 무작위로 선택되는 브라우저 User-Agent 목록입니다.
var defaultUserAgents = []string{
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
	"Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36",
	"Mozilla/5.0 (Windows NT 10.0; Win64; x64; rv:133.0) Gecko/20100101 Firefox/133.0",
	"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/18.1 Safari/605.1.15",
}

// UserAgentFetcher User-Agent 헤더가 없는 요청에 무작위 브라우저 User-Agent를 설정하는 Fetcher입니다.
// 호출자가 이미 User-Agent를 지정한 요청은 변경하지 않습니다.
type UserAgentFetcher struct {
	next       Fetcher
	userAgents []string
}

// NewUserAgentFetcher 새로운 UserAgentFetcher를 생성합니다.
func NewUserAgentFetcher(next Fetcher) *UserAgentFetcher {
	return &UserAgentFetcher{
		next:       next,
		userAgents: defaultUserAgents,
	}
}

func (f *UserAgentFetcher) Do(req *http.Request) (*http.Response, error) {
	if req.Header.Get("User-Agent") == "" {
		req = req.Clone(req.Context())
		req.Header.Set("User-Agent", f.userAgents[rand.IntN(len(f.userAgents))])
	}
	return f.next.Do(req)
}

func (f *UserAgentFetcher) Close() error {
	return f.next.Close()
}
