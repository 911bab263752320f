package fetcher

import (
	"net/http"
	"net/url"
	"time"

	apperrors "github.com/darkkaiser/product-search-server/internal/pkg/errors"
)

const (
	defaultTimeout      = 30 * time.Second
	defaultMaxRedirects = 10

	defaultAcceptHeader         = "application/json, text/html, */*;q=0.8"
	defaultAcceptLanguageHeader = "ko-KR,ko;q=0.9,en-US;q=0.8,en;q=0.7"
)

// HTTPFetcher http.Client 기반의 기본 Fetcher 구현체입니다.
type HTTPFetcher struct {
	client    *http.Client
	transport *http.Transport
	userAgent string
}

// Option HTTPFetcher의 동작을 설정합니다.
type Option func(*httpFetcherOptions)

type httpFetcherOptions struct {
	timeout      time.Duration
	proxyURL     string
	maxRedirects int
	userAgent    string
}

// WithTimeout 요청 전체에 적용되는 타임아웃을 설정합니다.
func WithTimeout(timeout time.Duration) Option {
	return func(o *httpFetcherOptions) {
		if timeout > 0 {
			o.timeout = timeout
		}
	}
}

// WithProxy 모든 요청에 사용할 프록시 서버 URL을 설정합니다.
func WithProxy(proxyURL string) Option {
	return func(o *httpFetcherOptions) {
		o.proxyURL = proxyURL
	}
}

// WithMaxRedirects 리다이렉트 추적 횟수의 상한을 설정합니다.
func WithMaxRedirects(maxRedirects int) Option {
	return func(o *httpFetcherOptions) {
		if maxRedirects >= 0 {
			o.maxRedirects = maxRedirects
		}
	}
}

// WithUserAgent User-Agent 미지정 요청에 사용할 고정 User-Agent를 설정합니다.
func WithUserAgent(userAgent string) Option {
	return func(o *httpFetcherOptions) {
		o.userAgent = userAgent
	}
}

// NewHTTPFetcher 새로운 HTTPFetcher를 생성합니다.
func NewHTTPFetcher(opts ...Option) (*HTTPFetcher, error) {
	options := &httpFetcherOptions{
		timeout:      defaultTimeout,
		maxRedirects: defaultMaxRedirects,
	}
	for _, opt := range opts {
		opt(options)
	}

	transport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return nil, apperrors.New(apperrors.Internal, "기본 HTTP Transport를 사용할 수 없습니다.")
	}
	transport = transport.Clone()

	if options.proxyURL != "" {
		proxyURL, err := url.Parse(options.proxyURL)
		if err != nil {
			return nil, apperrors.Wrapf(err, apperrors.InvalidInput, "프록시 URL이 유효하지 않습니다. (URL:%s)", options.proxyURL)
		}
		transport.Proxy = http.ProxyURL(proxyURL)
	}

	return &HTTPFetcher{
		client: &http.Client{
			Transport:     transport,
			Timeout:       options.timeout,
			CheckRedirect: newCheckRedirectPolicy(options.maxRedirects),
		},
		transport: transport,
		userAgent: options.userAgent,
	}, nil
}

func (f *HTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	return f.client.Do(f.withDefaultHeaders(req))
}

func (f *HTTPFetcher) Close() error {
	f.transport.CloseIdleConnections()
	return nil
}

// withDefaultHeaders 기본 요청 헤더가 빠져있으면 채워넣은 복제 요청을 반환합니다.
func (f *HTTPFetcher) withDefaultHeaders(req *http.Request) *http.Request {
	needUserAgent := f.userAgent != "" && req.Header.Get("User-Agent") == ""
	needAccept := req.Header.Get("Accept") == ""
	needLanguage := req.Header.Get("Accept-Language") == ""
	if !needUserAgent && !needAccept && !needLanguage {
		return req
	}

	req = req.Clone(req.Context())
	if needUserAgent {
		req.Header.Set("User-Agent", f.userAgent)
	}
	if needAccept {
		req.Header.Set("Accept", defaultAcceptHeader)
	}
	if needLanguage {
		req.Header.Set("Accept-Language", defaultAcceptLanguageHeader)
	}
	return req
}

// newCheckRedirectPolicy 리다이렉트 횟수를 제한하고 Referer 헤더를 설정하는 정책을 생성합니다.
// HTTPS에서 HTTP로 내려가는 리다이렉트에는 Referer를 설정하지 않습니다.
func newCheckRedirectPolicy(maxRedirects int) func(req *http.Request, via []*http.Request) error {
	return func(req *http.Request, via []*http.Request) error {
		if len(via) >= maxRedirects {
			return apperrors.Newf(apperrors.ExecutionFailed, "최대 리다이렉트 횟수를 초과하였습니다. (최대:%d회)", maxRedirects)
		}

		prev := via[len(via)-1]
		if !(prev.URL.Scheme == "https" && req.URL.Scheme == "http") {
			req.Header.Set("Referer", prev.URL.String())
		}
		return nil
	}
}
