package googleshopping

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/darkkaiser/product-search-server/internal/pkg/errors"
	"github.com/darkkaiser/product-search-server/internal/service/search/fetcher/mocks"
	"github.com/darkkaiser/product-search-server/internal/service/search/location"
)

const testAPIKey = "test-api-key"

// newTestClient 지정된 JSON 본문을 응답하는 클라이언트와, 전송된 요청을 들여다볼 수 있는
// 캡처 변수를 생성하는 헬퍼입니다.
func newTestClient(t *testing.T, responseBody string) (*Client, *http.Request) {
	t.Helper()

	captured := &http.Request{}

	mockFetcher := mocks.NewMockFetcher()
	mockFetcher.On("Do", mock.Anything).Run(func(args mock.Arguments) {
		*captured = *(args.Get(0).(*http.Request))
	}).Return(mocks.NewMockResponseWithJSON(responseBody, http.StatusOK), nil)

	client, err := NewClient(mockFetcher, Config{APIKey: testAPIKey})
	require.NoError(t, err)

	return client, captured
}

// =============================================================================
// SearchProducts
// =============================================================================

// TestSearchProducts 검색 요청의 매개변수 구성과 응답 변환을 검증합니다.
func TestSearchProducts(t *testing.T) {
	t.Parallel()

	client, captured := newTestClient(t, `{
		"shopping_results": [
			{"product_id": "p-1", "title": "First", "price": "$10.00", "extracted_price": 10},
			{"product_id": "p-2", "title": "Second", "price": "$20.00", "extracted_price": 20}
		]
	}`)

	products, err := client.SearchProducts(context.Background(), "headphones", location.PL)
	require.NoError(t, err)

	// 응답 순서가 그대로 유지되어야 합니다.
	require.Len(t, products, 2)
	assert.Equal(t, "p-1", products[0].ID)
	assert.Equal(t, "p-2", products[1].ID)

	// 시장별 제공자 매개변수와 인증 키가 요청에 포함되어야 합니다.
	query := captured.URL.Query()
	assert.Equal(t, "google_shopping", query.Get("engine"))
	assert.Equal(t, "headphones", query.Get("q"))
	assert.Equal(t, "google.pl", query.Get("google_domain"))
	assert.Equal(t, "pl", query.Get("gl"))
	assert.Equal(t, "pl", query.Get("hl"))
	assert.Equal(t, "Poland", query.Get("location"))
	assert.Equal(t, testAPIKey, query.Get("api_key"))
}

// TestSearchProducts_MissingResults shopping_results가 없는 응답이
// 스키마 위반으로 거부되는지 검증합니다.
func TestSearchProducts_MissingResults(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, `{"search_metadata": {"status": "Success"}}`)

	products, err := client.SearchProducts(context.Background(), "headphones", location.US)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ParsingFailed))
	assert.Nil(t, products)
}

// TestSearchProducts_ProviderError 제공자가 본문에 담아 반환한 에러 메시지가
// 에러로 전파되는지 검증합니다.
func TestSearchProducts_ProviderError(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, `{"error": "Google Shopping hasn't returned any results for this query."}`)

	products, err := client.SearchProducts(context.Background(), "zzzzzz", location.US)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ExecutionFailed))
	assert.Nil(t, products)
}

// =============================================================================
// ProductOffers
// =============================================================================

// TestProductOffers 상품 상세 요청의 매개변수 구성과 응답 변환을 검증합니다.
func TestProductOffers(t *testing.T) {
	t.Parallel()

	client, captured := newTestClient(t, `{
		"product_results": {"product_id": "p-100", "title": "Wireless Headphones"},
		"sellers_results": {
			"online_sellers": [
				{"name": "Best Store", "base_price": "$129.99", "total_price": "$146.03"}
			]
		}
	}`)

	detail, err := client.ProductOffers(context.Background(), "p-100", location.GB)
	require.NoError(t, err)

	assert.Equal(t, "p-100", detail.ID)
	require.Len(t, detail.Sellers, 1)
	assert.Equal(t, "Best Store", detail.Sellers[0].Name)

	query := captured.URL.Query()
	assert.Equal(t, "google_product", query.Get("engine"))
	assert.Equal(t, "p-100", query.Get("product_id"))
	assert.Equal(t, "1", query.Get("offers"))
	assert.Equal(t, "google.co.uk", query.Get("google_domain"))
	assert.Equal(t, "uk", query.Get("gl"))
}

// TestProductOffers_EmptyProductID 빈 상품 식별자가 제공자 호출 없이 거부되는지 검증합니다.
func TestProductOffers_EmptyProductID(t *testing.T) {
	t.Parallel()

	mockFetcher := mocks.NewMockFetcher()
	client, err := NewClient(mockFetcher, Config{APIKey: testAPIKey})
	require.NoError(t, err)

	detail, err := client.ProductOffers(context.Background(), "   ", location.US)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
	assert.Nil(t, detail)
	mockFetcher.AssertNotCalled(t, "Do", mock.Anything)
}

// =============================================================================
// NewClient — 설정 검증
// =============================================================================

// TestNewClient_ConfigValidation 클라이언트 설정값의 검증 규칙을 확인합니다.
func TestNewClient_ConfigValidation(t *testing.T) {
	t.Parallel()

	t.Run("api_key 누락", func(t *testing.T) {
		t.Parallel()

		client, err := NewClient(mocks.NewMockFetcher(), Config{})
		require.ErrorIs(t, err, ErrAPIKeyMissing)
		assert.Nil(t, client)
	})

	t.Run("base_url 기본값 적용", func(t *testing.T) {
		t.Parallel()

		client, err := NewClient(mocks.NewMockFetcher(), Config{APIKey: testAPIKey})
		require.NoError(t, err)
		assert.Equal(t, DefaultBaseURL, client.baseURL)
	})

	t.Run("nil fetcher는 패닉", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			_, _ = NewClient(nil, Config{APIKey: testAPIKey})
		})
	})
}
