package googleshopping

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	apperrors "github.com/darkkaiser/product-search-server/internal/pkg/errors"
)

// =============================================================================
// adaptProduct — 응답 세대 판별 및 필드 변환 검증
// =============================================================================

// TestAdaptProduct_Generations 세 가지 응답 세대의 상품 레코드가
// 모두 동일한 정식 레코드 구조로 변환되는지 검증합니다.
func TestAdaptProduct_Generations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		item     string
		expected Product
	}{
		{
			name: "현재 형식: price 문자열 + extracted_price 병행",
			item: `{
				"product_id": "p-100",
				"title": "Wireless <b>Headphones</b>",
				"link": "https://store.example/p-100",
				"product_link": "https://shopping.example/product/p-100",
				"source": "Example Store",
				"price": "$129.99",
				"extracted_price": 129.99,
				"thumbnail": "https://img.example/p-100.jpg",
				"rating": 4.5,
				"reviews": 1280,
				"number_of_comparisons": "5+"
			}`,
			expected: Product{
				ID:            "p-100",
				Title:         "Wireless Headphones",
				Link:          "https://store.example/p-100",
				ProductLink:   "https://shopping.example/product/p-100",
				Source:        "Example Store",
				Thumbnail:     "https://img.example/p-100.jpg",
				Rating:        4.5,
				Reviews:       1280,
				RawPrice:      "$129.99",
				HasMoreOffers: true,
			},
		},
		{
			name: "중간 형식: price가 객체로 제공",
			item: `{
				"product_id": "p-200",
				"title": "Running Shoes",
				"link": "https://store.example/p-200",
				"price": {"value": "129,99 zł", "extracted_value": 129.99, "currency": "zł"}
			}`,
			expected: Product{
				ID:       "p-200",
				Title:    "Running Shoes",
				Link:     "https://store.example/p-200",
				RawPrice: "129,99 zł",
			},
		},
		{
			name: "초기 형식: price 문자열만 제공",
			item: `{
				"product_id": "p-300",
				"title": "Coffee Maker",
				"link": "https://store.example/p-300",
				"price": "€49.90"
			}`,
			expected: Product{
				ID:       "p-300",
				Title:    "Coffee Maker",
				Link:     "https://store.example/p-300",
				RawPrice: "€49.90",
			},
		},
		{
			name: "가격 비교 카운트가 없으면 추가 오퍼 없음",
			item: `{
				"product_id": "p-400",
				"title": "USB Cable",
				"price": "$5.99",
				"extracted_price": 5.99
			}`,
			expected: Product{
				ID:       "p-400",
				Title:    "USB Cable",
				RawPrice: "$5.99",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			product, err := adaptProduct(gjson.Parse(tt.item))
			require.NoError(t, err)
			assert.Equal(t, &tt.expected, product)
		})
	}
}

// TestAdaptProduct_SchemaViolation 세대를 판별할 수 없거나 필수 필드가 없는
// 레코드가 스키마 위반으로 거부되는지 검증합니다.
func TestAdaptProduct_SchemaViolation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		item string
	}{
		{
			name: "가격 필드가 전혀 없는 레코드",
			item: `{"product_id": "p-1", "title": "Item"}`,
		},
		{
			name: "price가 숫자인 알 수 없는 형식",
			item: `{"product_id": "p-1", "title": "Item", "price": 129.99}`,
		},
		{
			name: "product_id가 없는 레코드",
			item: `{"title": "Item", "price": "$1.00"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			product, err := adaptProduct(gjson.Parse(tt.item))
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.ParsingFailed))
			assert.Nil(t, product)
		})
	}
}

// TestAdaptProducts_FailFast 목록 중 한 건이라도 스키마 위반이면
// 부분 결과 없이 전체가 실패하는지 검증합니다.
func TestAdaptProducts_FailFast(t *testing.T) {
	t.Parallel()

	payload := gjson.Parse(`[
		{"product_id": "p-1", "title": "OK", "price": "$1.00"},
		{"product_id": "p-2", "title": "Broken"}
	]`)

	products, err := adaptProducts(payload.Array())
	require.Error(t, err)
	assert.Nil(t, products)
}

// =============================================================================
// adaptProductDetail — 판매자 목록 세대 판별 검증
// =============================================================================

// TestAdaptProductDetail_CurrentGeneration 현재 형식(sellers_results.online_sellers)의
// 상세 응답이 올바르게 변환되는지 검증합니다.
func TestAdaptProductDetail_CurrentGeneration(t *testing.T) {
	t.Parallel()

	payload := gjson.Parse(`{
		"product_results": {
			"product_id": "p-100",
			"title": "Wireless Headphones",
			"media": [
				{"type": "image", "link": "https://img.example/1.jpg"},
				{"type": "image", "link": "https://img.example/2.jpg"}
			],
			"sizes": [{"name": "S"}, {"name": "M"}]
		},
		"sellers_results": {
			"online_sellers": [
				{
					"name": "Best Store",
					"top_quality_store": true,
					"link": "https://best.example/p-100",
					"base_price": "$129.99",
					"additional_price": {"shipping": "$4.99", "tax": "$11.05"},
					"total_price": "$146.03",
					"delivery_by": "Tue, Sep 8"
				},
				{
					"name": "Budget Store",
					"link": "https://budget.example/p-100",
					"base_price": "$119.99",
					"total_price": "$119.99"
				}
			]
		}
	}`)

	detail, err := adaptProductDetail(payload)
	require.NoError(t, err)

	assert.Equal(t, "p-100", detail.ID)
	assert.Equal(t, "Wireless Headphones", detail.Title)
	assert.Equal(t, []string{"https://img.example/1.jpg", "https://img.example/2.jpg"}, detail.Media)
	assert.Equal(t, []string{"S", "M"}, detail.Sizes)

	require.Len(t, detail.Sellers, 2)
	assert.Equal(t, Seller{
		Name:             "Best Store",
		Link:             "https://best.example/p-100",
		TopQuality:       true,
		RawBasePrice:     "$129.99",
		RawShippingPrice: "$4.99",
		RawTaxPrice:      "$11.05",
		RawTotalPrice:    "$146.03",
		DeliveryBy:       "Tue, Sep 8",
	}, detail.Sellers[0])

	// 두 번째 판매자: additional_price가 없는 레코드도 빈 값으로 안전하게 변환됩니다.
	assert.Equal(t, "Budget Store", detail.Sellers[1].Name)
	assert.Empty(t, detail.Sellers[1].RawShippingPrice)
	assert.False(t, detail.Sellers[1].TopQuality)
}

// TestAdaptProductDetail_LegacyGeneration 초기 형식(product_results.offers)의
// 상세 응답이 올바르게 변환되는지 검증합니다.
func TestAdaptProductDetail_LegacyGeneration(t *testing.T) {
	t.Parallel()

	payload := gjson.Parse(`{
		"product_results": {
			"product_id": "p-300",
			"title": "Coffee Maker",
			"offers": [
				{"seller": "Old Shop", "link": "https://old.example/p-300", "price": "€49.90"}
			]
		}
	}`)

	detail, err := adaptProductDetail(payload)
	require.NoError(t, err)

	require.Len(t, detail.Sellers, 1)
	assert.Equal(t, Seller{
		Name:         "Old Shop",
		Link:         "https://old.example/p-300",
		RawBasePrice: "€49.90",
	}, detail.Sellers[0])
}

// TestAdaptProductDetail_SchemaViolation 판매자 목록 위치를 판별할 수 없는
// 상세 응답이 거부되는지 검증합니다.
func TestAdaptProductDetail_SchemaViolation(t *testing.T) {
	t.Parallel()

	payload := gjson.Parse(`{"product_results": {"product_id": "p-1", "title": "Item"}}`)

	detail, err := adaptProductDetail(payload)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.ParsingFailed))
	assert.Nil(t, detail)
}
