package response

import (
	"github.com/darkkaiser/product-search-server/internal/service/search"
)

// ProductsResponse 추천 상품 목록 조회 응답입니다.
type ProductsResponse struct {
	// Query 요청에 사용된 검색 키워드
	Query string `json:"query" example:"nike shoes"`

	// Location 검색이 수행된 시장 코드
	Location string `json:"location" example:"us"`

	// Count 반환된 상품 개수
	Count int `json:"count" example:"20"`

	// Products 추천 상품 목록 (검색 제공자 응답 순서 유지)
	Products []*search.RecommendedProduct `json:"products"`
}

// ProductOffersResponse 상품 오퍼 목록 조회 응답입니다.
type ProductOffersResponse struct {
	// Location 검색이 수행된 시장 코드
	Location string `json:"location" example:"us"`

	// Product 전체 판매자 오퍼가 포함된 추천 상품
	Product *search.RecommendedProduct `json:"product"`
}
