// Package mocks fetcher.Fetcher의 테스트용 Mock 구현체들을 제공합니다.
//
// MockFetcher는 testify/mock 기반으로 메서드 호출 검증이 필요한 단위 테스트에,
// MockHTTPFetcher는 URL별 응답/에러/지연을 설정하는 시나리오 테스트에 사용합니다.
package mocks

import (
	"bytes"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/darkkaiser/product-search-server/internal/service/search/fetcher"
	"github.com/stretchr/testify/mock"
)

var (
	_ fetcher.Fetcher = (*MockFetcher)(nil)
	_ fetcher.Fetcher = (*MockHTTPFetcher)(nil)
)

// MockFetcher testify/mock 기반의 Fetcher Mock 구현체입니다.
type MockFetcher struct {
	mock.Mock
}

// NewMockFetcher 새로운 MockFetcher를 생성합니다.
func NewMockFetcher() *MockFetcher {
	return &MockFetcher{}
}

func (m *MockFetcher) Do(req *http.Request) (*http.Response, error) {
	args := m.Called(req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*http.Response), args.Error(1)
}

func (m *MockFetcher) Close() error {
	args := m.Called()
	return args.Error(0)
}

// NewMockResponse 주어진 본문과 상태 코드를 가진 http.Response를 생성합니다.
func NewMockResponse(body string, statusCode int) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     make(http.Header),
	}
}

// NewMockResponseWithJSON Content-Type이 application/json으로 설정된 http.Response를 생성합니다.
func NewMockResponseWithJSON(jsonBody string, statusCode int) *http.Response {
	resp := NewMockResponse(jsonBody, statusCode)
	resp.Header.Set("Content-Type", "application/json")
	return resp
}

type mockResponse struct {
	body       []byte
	statusCode int
	header     http.Header
}

// RequestRecord MockHTTPFetcher가 수신한 요청의 상세 정보입니다.
type RequestRecord struct {
	Method string
	URL    string
	Header http.Header
	Body   []byte
}

// MockHTTPFetcher URL별로 응답, 에러, 지연을 설정할 수 있는 Thread-Safe Mock Fetcher입니다.
// 수신한 모든 요청을 기록하여 테스트에서 검증할 수 있습니다.
type MockHTTPFetcher struct {
	mu        sync.Mutex
	responses map[string]mockResponse
	errors    map[string]error
	delays    map[string]time.Duration
	requests  []RequestRecord
}

// NewMockHTTPFetcher 새로운 MockHTTPFetcher를 생성합니다.
func NewMockHTTPFetcher() *MockHTTPFetcher {
	m := &MockHTTPFetcher{}
	m.Reset()
	return m
}

// SetResponse 특정 URL에 대한 성공 응답(200 OK)을 설정합니다.
func (m *MockHTTPFetcher) SetResponse(url string, body []byte) {
	m.SetResponseWithStatus(url, body, http.StatusOK)
}

// SetResponseWithStatus 특정 URL에 대한 응답 본문과 상태 코드를 설정합니다.
func (m *MockHTTPFetcher) SetResponseWithStatus(url string, body []byte, statusCode int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	resp := m.responses[url]
	resp.body = body
	resp.statusCode = statusCode
	if resp.header == nil {
		resp.header = make(http.Header)
	}
	m.responses[url] = resp
}

// SetHeader 특정 URL 응답에 헤더를 설정합니다.
// 응답이 설정되어 있지 않으면 빈 본문의 200 OK 응답으로 초기화됩니다.
func (m *MockHTTPFetcher) SetHeader(url string, key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	resp, exists := m.responses[url]
	if !exists {
		resp = mockResponse{statusCode: http.StatusOK}
	}
	if resp.header == nil {
		resp.header = make(http.Header)
	}
	resp.header.Set(key, value)
	m.responses[url] = resp
}

// SetError 특정 URL에 대한 에러를 설정합니다.
func (m *MockHTTPFetcher) SetError(url string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errors[url] = err
}

// SetDelay 특정 URL 요청 시 응답 지연 시간을 설정합니다.
func (m *MockHTTPFetcher) SetDelay(url string, d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.delays[url] = d
}

func (m *MockHTTPFetcher) Do(req *http.Request) (*http.Response, error) {
	if err := req.Context().Err(); err != nil {
		return nil, err
	}

	url := req.URL.String()

	var bodyBytes []byte
	if req.Body != nil {
		var err error
		bodyBytes, err = io.ReadAll(req.Body)
		if err != nil {
			return nil, err
		}
		req.Body = io.NopCloser(bytes.NewReader(bodyBytes))
	}

	m.mu.Lock()
	m.requests = append(m.requests, RequestRecord{
		Method: req.Method,
		URL:    url,
		Header: cloneHeader(req.Header),
		Body:   bodyBytes,
	})
	errVal := m.errors[url]
	respVal, hasResponse := m.responses[url]
	delayVal, hasDelay := m.delays[url]
	m.mu.Unlock()

	if hasDelay {
		select {
		case <-time.After(delayVal):
		case <-req.Context().Done():
			return nil, req.Context().Err()
		}
	}

	if errVal != nil {
		return nil, errVal
	}

	if hasResponse {
		return &http.Response{
			StatusCode: respVal.statusCode,
			Body:       io.NopCloser(bytes.NewReader(respVal.body)),
			Header:     cloneHeader(respVal.header),
		}, nil
	}

	// 설정되지 않은 URL은 404 Not Found로 응답합니다.
	return &http.Response{
		StatusCode: http.StatusNotFound,
		Body:       io.NopCloser(bytes.NewReader(nil)),
		Header:     make(http.Header),
	}, nil
}

func (m *MockHTTPFetcher) Close() error {
	return nil
}

// GetRequestedURLs 요청된 URL 목록을 요청 순서대로 반환합니다.
func (m *MockHTTPFetcher) GetRequestedURLs() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	urls := make([]string, len(m.requests))
	for i, req := range m.requests {
		urls[i] = req.URL
	}
	return urls
}

// GetRequests 기록된 모든 요청 상세 정보를 반환합니다.
func (m *MockHTTPFetcher) GetRequests() []RequestRecord {
	m.mu.Lock()
	defer m.mu.Unlock()

	records := make([]RequestRecord, len(m.requests))
	copy(records, m.requests)
	return records
}

// GetCallCount 특정 URL이 호출된 횟수를 반환합니다.
func (m *MockHTTPFetcher) GetCallCount(url string) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, req := range m.requests {
		if req.URL == url {
			count++
		}
	}
	return count
}

// Reset 모든 설정과 요청 기록을 초기화합니다.
func (m *MockHTTPFetcher) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.responses = make(map[string]mockResponse)
	m.errors = make(map[string]error)
	m.delays = make(map[string]time.Duration)
	m.requests = nil
}

func cloneHeader(h http.Header) http.Header {
	if h == nil {
		return make(http.Header)
	}
	return h.Clone()
}
