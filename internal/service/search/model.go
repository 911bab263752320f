package search

import (
	"time"

	"github.com/darkkaiser/product-search-server/internal/service/search/currency"
	"github.com/darkkaiser/product-search-server/internal/service/search/location"
)

// RecommendedProductOffer 한 판매자의 상품 오퍼를 표현하는 정규화 레코드입니다.
//
// 모든 가격 필드는 기준 통화로 환산이 완료된 ExchangedAmount이며,
// 생성 이후 불변입니다. 0원의 가격은 에러가 아닌 표시 가능한 정상 값입니다.
type RecommendedProductOffer struct {
	// Supplier 판매자(쇼핑몰)의 이름입니다.
	Supplier string `json:"supplier"`

	// Link 해당 판매자의 상품 구매 페이지 링크 주소(URL)입니다.
	Link string `json:"link"`

	// TopQuality 검색 제공자가 우수 판매처로 표시한 판매자인지의 여부입니다.
	TopQuality bool `json:"top_quality"`

	// Price 상품 자체의 환산 가격입니다.
	Price currency.ExchangedAmount `json:"price"`

	// Shipping 배송비의 환산 가격입니다. (무료 배송이면 0)
	Shipping currency.ExchangedAmount `json:"shipping"`

	// Tax 세금의 환산 가격입니다.
	Tax currency.ExchangedAmount `json:"tax"`

	// Total 배송비와 세금을 포함한 총액의 환산 가격입니다.
	Total currency.ExchangedAmount `json:"total"`

	// Location 이 오퍼가 조회된 시장입니다.
	Location location.Location `json:"location"`

	// EstimatedDelivery 판매자가 안내한 예상 배송 시점입니다.
	// 배송 안내 텍스트를 해석할 수 없으면 제로 값입니다.
	EstimatedDelivery time.Time `json:"estimated_delivery"`
}

// RecommendedProduct 하나 이상의 오퍼를 집계한 추천 상품 레코드입니다.
//
// 검색 목록 조회 시에는 Offers가 비어 있고 Price에 대표 가격이 채워지며,
// 상품 상세 조회 시에는 전체 판매자의 오퍼가 응답 순서 그대로 포함됩니다.
type RecommendedProduct struct {
	// ID 검색 제공자가 부여한 상품 고유 식별자입니다.
	ID string `json:"id"`

	// Title 상품의 표시용 이름입니다.
	Title string `json:"title"`

	// Link 상품을 판매하는 페이지로 연결되는 링크 주소(URL)입니다.
	Link string `json:"link"`

	// ProductLink 검색 제공자의 상품 비교 페이지 링크 주소(URL)입니다.
	ProductLink string `json:"product_link"`

	// Source 검색 결과에 노출된 판매처(쇼핑몰)의 이름입니다.
	Source string `json:"source"`

	// Images 상품 이미지 URL 목록입니다.
	Images []string `json:"images"`

	// Sizes 상품이 제공하는 크기 옵션 목록입니다.
	Sizes []string `json:"sizes,omitempty"`

	// Rating 구매자 평점입니다. (0~5)
	Rating float64 `json:"rating"`

	// Reviews 구매 후기 개수입니다.
	Reviews int `json:"reviews"`

	// Price 검색 목록에 노출된 대표 가격의 환산 결과입니다.
	Price currency.ExchangedAmount `json:"price"`

	// HasMoreOffers 첫 번째 판매자 외에 추가 판매자가 존재하는지의 여부입니다.
	// 이 값이 true이면 소비 측은 상품 오퍼 조회로 전체 판매자 목록을 가져올 수 있습니다.
	HasMoreOffers bool `json:"has_more_offers"`

	// Offers 판매자별 오퍼 목록입니다. 제공자 응답 순서가 그대로 유지됩니다.
	Offers []RecommendedProductOffer `json:"offers,omitempty"`
}
