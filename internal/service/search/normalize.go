package search

import (
	"strings"
	"time"

	"github.com/darkkaiser/product-search-server/internal/service/search/currency"
	"github.com/darkkaiser/product-search-server/internal/service/search/location"
	"github.com/darkkaiser/product-search-server/internal/service/search/provider/googleshopping"
)

// deliveryLayouts 판매자의 예상 배송 안내 텍스트 해석에 시도하는 날짜 형식 목록입니다.
// 제공자는 연도 없이 "Tue, Sep 8" 형태의 텍스트를 내려줍니다.
var deliveryLayouts = []string{
	"Mon, Jan 2",
	"Jan 2",
	"January 2",
}

// normalizeProduct 검색 목록의 정식 상품 레코드를 추천 상품 레코드로 정규화합니다.
//
// 식별/표시 필드는 그대로 복사되고, 가격 필드만 환산 파이프라인(currency.Convert)을
// 거칩니다. 동일한 입력 레코드와 환율 테이블에 대해 항상 동일한 결과를 생성합니다.
func normalizeProduct(p *googleshopping.Product, loc location.Location, rates currency.RateTable) *RecommendedProduct {
	normalized := &RecommendedProduct{
		ID:            p.ID,
		Title:         p.Title,
		Link:          p.Link,
		ProductLink:   p.ProductLink,
		Source:        p.Source,
		Rating:        p.Rating,
		Reviews:       p.Reviews,
		Price:         currency.Convert(p.RawPrice, loc, rates),
		HasMoreOffers: p.HasMoreOffers,
	}
	if p.Thumbnail != "" {
		normalized.Images = []string{p.Thumbnail}
	}
	return normalized
}

// normalizeProductDetail 상품 상세의 정식 레코드를 오퍼 목록이 포함된
// 추천 상품 레코드로 정규화합니다. 오퍼는 제공자 응답 순서 그대로 변환됩니다.
func normalizeProductDetail(d *googleshopping.ProductDetail, loc location.Location, rates currency.RateTable, now time.Time) *RecommendedProduct {
	normalized := &RecommendedProduct{
		ID:            d.ID,
		Title:         d.Title,
		Images:        d.Media,
		Sizes:         d.Sizes,
		HasMoreOffers: len(d.Sellers) > 1,
	}

	for _, seller := range d.Sellers {
		normalized.Offers = append(normalized.Offers, normalizeSeller(seller, loc, rates, now))
	}

	// 대표 가격은 첫 번째 오퍼의 상품 가격을 따릅니다.
	if len(normalized.Offers) > 0 {
		normalized.Price = normalized.Offers[0].Price
	} else {
		normalized.Price = currency.Convert("", loc, rates)
	}

	return normalized
}

// normalizeSeller 판매자 1건의 정식 레코드를 오퍼 레코드로 정규화합니다.
// 가격이 제공되지 않은 필드(배송비, 세금 등)도 항상 완전한 ExchangedAmount로 채워집니다.
func normalizeSeller(s googleshopping.Seller, loc location.Location, rates currency.RateTable, now time.Time) RecommendedProductOffer {
	return RecommendedProductOffer{
		Supplier:          s.Name,
		Link:              s.Link,
		TopQuality:        s.TopQuality,
		Price:             currency.Convert(s.RawBasePrice, loc, rates),
		Shipping:          currency.Convert(s.RawShippingPrice, loc, rates),
		Tax:               currency.Convert(s.RawTaxPrice, loc, rates),
		Total:             currency.Convert(s.RawTotalPrice, loc, rates),
		Location:          loc,
		EstimatedDelivery: parseDeliveryDate(s.DeliveryBy, now),
	}
}

// parseDeliveryDate 판매자의 예상 배송 안내 텍스트를 시점으로 해석합니다.
//
// 제공자의 텍스트에는 연도가 없으므로 현재 연도를 기준으로 보정하며,
// 해석된 날짜가 이미 지난 경우 다음 해로 간주합니다. (연말 주문의 연초 배송)
// 해석할 수 없는 텍스트는 제로 값을 반환하며, 이는 에러가 아닙니다.
func parseDeliveryDate(deliveryBy string, now time.Time) time.Time {
	deliveryBy = strings.TrimSpace(deliveryBy)
	if deliveryBy == "" {
		return time.Time{}
	}

	for _, layout := range deliveryLayouts {
		parsed, err := time.Parse(layout, deliveryBy)
		if err != nil {
			continue
		}

		delivery := time.Date(now.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, now.Location())
		if delivery.Before(now.Truncate(24 * time.Hour)) {
			delivery = delivery.AddDate(1, 0, 0)
		}
		return delivery
	}

	return time.Time{}
}
