package search

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkkaiser/product-search-server/internal/service/search/currency"
	"github.com/darkkaiser/product-search-server/internal/service/search/location"
	"github.com/darkkaiser/product-search-server/internal/service/search/provider/googleshopping"
)

var testRates = currency.RateTable{
	currency.USD: 37.5,
	currency.PLN: 9.8,
	currency.EUR: 40.2,
	currency.GBP: 47.1,
}

var testNow = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC)

// =============================================================================
// normalizeProduct
// =============================================================================

// TestNormalizeProduct 상품 레코드의 필드 복사와 가격 환산을 검증합니다.
func TestNormalizeProduct(t *testing.T) {
	t.Parallel()

	raw := &googleshopping.Product{
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
	}

	normalized := normalizeProduct(raw, location.US, testRates)

	assert.Equal(t, "p-100", normalized.ID)
	assert.Equal(t, "Wireless Headphones", normalized.Title)
	assert.Equal(t, []string{"https://img.example/p-100.jpg"}, normalized.Images)
	assert.True(t, normalized.HasMoreOffers)
	assert.Empty(t, normalized.Offers)

	assert.Equal(t, currency.ExchangedAmount{
		Amount:           4874.63,
		Currency:         currency.UAH,
		OriginalAmount:   129.99,
		OriginalCurrency: currency.USD,
	}, normalized.Price)
}

// TestNormalizeProduct_Deterministic 동일한 입력에 대해 항상 동일한 레코드가
// 생성되는지(숨겨진 상태가 없는지) 검증합니다.
func TestNormalizeProduct_Deterministic(t *testing.T) {
	t.Parallel()

	raw := &googleshopping.Product{ID: "p-1", Title: "Item", RawPrice: "129,99 zł"}

	first := normalizeProduct(raw, location.PL, testRates)
	second := normalizeProduct(raw, location.PL, testRates)

	assert.Equal(t, first, second)
}

// =============================================================================
// normalizeProductDetail
// =============================================================================

// TestNormalizeProductDetail 판매자 목록의 순서 유지와 가격 필드별 환산을 검증합니다.
func TestNormalizeProductDetail(t *testing.T) {
	t.Parallel()

	detail := &googleshopping.ProductDetail{
		ID:    "p-100",
		Title: "Wireless Headphones",
		Media: []string{"https://img.example/1.jpg"},
		Sellers: []googleshopping.Seller{
			{
				Name:             "Best Store",
				Link:             "https://best.example/p-100",
				TopQuality:       true,
				RawBasePrice:     "$129.99",
				RawShippingPrice: "$4.99",
				RawTaxPrice:      "$11.05",
				RawTotalPrice:    "$146.03",
				DeliveryBy:       "Tue, Sep 8",
			},
			{
				Name:          "Budget Store",
				RawBasePrice:  "$119.99",
				RawTotalPrice: "$119.99",
			},
		},
	}

	normalized := normalizeProductDetail(detail, location.US, testRates, testNow)

	require.Len(t, normalized.Offers, 2)
	assert.True(t, normalized.HasMoreOffers)

	first := normalized.Offers[0]
	assert.Equal(t, "Best Store", first.Supplier)
	assert.True(t, first.TopQuality)
	assert.Equal(t, location.US, first.Location)
	assert.Equal(t, 4874.63, first.Price.Amount)
	assert.Equal(t, 187.13, first.Shipping.Amount)
	assert.Equal(t, 414.38, first.Tax.Amount)
	assert.Equal(t, 5476.13, first.Total.Amount)
	assert.Equal(t, time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC), first.EstimatedDelivery)

	// 배송비가 제공되지 않은 오퍼도 완전한 ExchangedAmount로 채워집니다.
	second := normalized.Offers[1]
	assert.Equal(t, currency.ExchangedAmount{
		Currency:         currency.UAH,
		OriginalCurrency: currency.USD,
	}, second.Shipping)
	assert.True(t, second.EstimatedDelivery.IsZero())

	// 대표 가격은 첫 번째 오퍼의 상품 가격을 따릅니다.
	assert.Equal(t, first.Price, normalized.Price)
}

// TestNormalizeProductDetail_NoSellers 판매자가 없는 상품도
// 대표 가격이 완전한 ExchangedAmount로 채워지는지 검증합니다.
func TestNormalizeProductDetail_NoSellers(t *testing.T) {
	t.Parallel()

	detail := &googleshopping.ProductDetail{ID: "p-1", Title: "Item"}

	normalized := normalizeProductDetail(detail, location.GB, testRates, testNow)

	assert.Empty(t, normalized.Offers)
	assert.False(t, normalized.HasMoreOffers)
	assert.Equal(t, currency.ExchangedAmount{
		Currency:         currency.UAH,
		OriginalCurrency: currency.GBP,
	}, normalized.Price)
}

// =============================================================================
// parseDeliveryDate
// =============================================================================

// TestParseDeliveryDate 배송 안내 텍스트의 시점 해석 규칙을 검증합니다.
func TestParseDeliveryDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		deliveryBy string
		expected   time.Time
	}{
		{
			name:       "요일 포함 형식",
			deliveryBy: "Tue, Sep 8",
			expected:   time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "월 일 형식",
			deliveryBy: "Sep 8",
			expected:   time.Date(2026, 9, 8, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "이미 지난 날짜는 다음 해로 보정",
			deliveryBy: "Jan 5",
			expected:   time.Date(2027, 1, 5, 0, 0, 0, 0, time.UTC),
		},
		{
			name:       "해석할 수 없는 텍스트는 제로 값",
			deliveryBy: "in 3-5 business days",
			expected:   time.Time{},
		},
		{
			name:       "빈 문자열은 제로 값",
			deliveryBy: "",
			expected:   time.Time{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, parseDeliveryDate(tt.deliveryBy, testNow))
		})
	}
}
