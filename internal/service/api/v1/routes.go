// Package v1 상품 검색 API의 v1 버전 라우트를 정의하고 설정합니다.
//
// 이 패키지는 /api/v1 경로 하위의 모든 엔드포인트를 관리하며,
// 추천 상품 조회를 위한 RESTful API를 제공합니다.
//
// 주요 엔드포인트:
//   - GET /api/v1/products                     - 추천 상품 목록 조회 (권장)
//   - GET /api/v1/products/:product_id/offers  - 상품 오퍼 목록 조회
//   - GET /api/products                        - 추천 상품 목록 조회 (레거시, deprecated)
package v1

import (
	"github.com/darkkaiser/product-search-server/internal/service/api/middleware"
	"github.com/darkkaiser/product-search-server/internal/service/api/v1/handler"
	"github.com/labstack/echo/v4"
)

// RegisterRoutes Echo 인스턴스에 v1 API 라우트를 설정합니다.
//
// 이 함수는 /api/v1 그룹을 생성하고 추천 상품 조회 엔드포인트를 등록합니다.
//
// Parameters:
//   - e: Echo 서버 인스턴스
//   - h: 상품 조회 요청을 처리하는 핸들러
//
// 등록되는 엔드포인트:
//   - GET /api/v1/products                     - 추천 상품 목록 조회 (권장)
//   - GET /api/v1/products/:product_id/offers  - 상품 오퍼 목록 조회
//   - GET /api/products                        - 추천 상품 목록 조회 (레거시, deprecated)
//
// 레거시 엔드포인트 응답 헤더:
//   - Warning: 299 - "더 이상 사용되지 않는 API..."
//   - X-API-Deprecated: true
//   - X-API-Deprecated-Replacement: /api/v1/products
func RegisterRoutes(e *echo.Echo, h *handler.Handler) {
	// 1. API v1 그룹 생성 (/api/v1 prefix)
	v1Group := e.Group("/api/v1")

	// 2. 권장 엔드포인트 등록
	v1Group.GET("/products", h.SearchProductsHandler)
	v1Group.GET("/products/:product_id/offers", h.ProductOffersHandler)

	// 3. 레거시 엔드포인트 등록 (deprecated 경고 미들웨어 적용)
	// 버전 경로 도입 이전의 소비 측을 위해 유지됩니다.
	e.GET("/api/products", h.SearchProductsHandler,
		middleware.DeprecatedEndpoint("/api/v1/products"),
	)
}
