// Package handler v1 API의 HTTP 요청 핸들러를 제공합니다.
//
// 이 패키지는 HTTP 요청을 받아 검증하고, 비즈니스 로직을 호출한 후,
// 적절한 HTTP 응답을 반환하는 핸들러 함수들을 포함합니다.
package handler

import (
	"context"

	"github.com/darkkaiser/product-search-server/internal/service/api/constants"
	"github.com/darkkaiser/product-search-server/internal/service/search"
	"github.com/darkkaiser/product-search-server/internal/service/search/location"
)

// ProductCatalog 추천 상품 조회 연산을 정의하는 인터페이스입니다.
//
// search.Catalog가 구현하며, 테스트에서는 Mock으로 대체됩니다.
type ProductCatalog interface {
	// RecommendedProducts 검색어에 대한 추천 상품 목록을 조회합니다.
	RecommendedProducts(ctx context.Context, query string, loc location.Location) ([]*search.RecommendedProduct, error)

	// RecommendedProductOffers 상품 1건의 전체 판매자 오퍼 목록을 조회합니다.
	RecommendedProductOffers(ctx context.Context, productID string, loc location.Location) (*search.RecommendedProduct, error)
}

// Handler v1 API 요청을 처리하고 비즈니스 로직을 연결하는 핸들러입니다.
//
// 이 구조체는 다음 역할을 수행합니다:
//   - HTTP 요청 바인딩 및 검증
//   - 비즈니스 로직(추천 상품 조회) 호출
//   - HTTP 응답 생성
//
// Handler는 의존성 주입을 통해 생성되며, 상품 카탈로그 서비스를 주입받습니다.
type Handler struct {
	// catalog 추천 상품 조회를 담당하는 인터페이스
	// 검색 제공자 조회와 환율 환산이 완료된 레코드를 반환합니다.
	catalog ProductCatalog
}

// NewHandler Handler 인스턴스를 생성합니다.
//
// 매개변수:
//   - catalog: 추천 상품 조회를 담당하는 ProductCatalog 구현체
//
// 반환값:
//   - 초기화된 Handler 인스턴스
func NewHandler(catalog ProductCatalog) *Handler {
	if catalog == nil {
		panic(constants.PanicMsgCatalogRequired)
	}

	return &Handler{
		catalog: catalog,
	}
}
