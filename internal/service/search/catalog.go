// Package search 상품 검색 결과를 추천 상품 모델로 정규화하여 제공하는 패키지입니다.
//
// 검색 제공자(provider 패키지)가 전달하는 정식 레코드에 환율 테이블(exchange 패키지)을
// 적용하여, 모든 가격이 기준 통화로 환산된 추천 상품/오퍼 레코드를 생성합니다.
// 하나의 조회 요청은 내부 병렬화 없이 순차적으로 끝까지 수행되며,
// 요청 간에 공유되는 자원은 환율 테이블뿐입니다.
package search

import (
	"context"
	"strings"
	"time"

	apperrors "github.com/darkkaiser/product-search-server/internal/pkg/errors"
	"github.com/darkkaiser/product-search-server/internal/service/exchange"
	"github.com/darkkaiser/product-search-server/internal/service/search/location"
	"github.com/darkkaiser/product-search-server/internal/service/search/provider/googleshopping"
	applog "github.com/darkkaiser/product-search-server/pkg/log"
)

const component = "search.catalog"

// Provider 검색 제공자로부터 정식 레코드를 조회하는 인터페이스입니다.
type Provider interface {
	// SearchProducts 검색어와 시장으로 상품 목록을 조회합니다.
	SearchProducts(ctx context.Context, query string, loc location.Location) ([]*googleshopping.Product, error)

	// ProductOffers 상품 식별자로 상품 상세와 전체 판매자 목록을 조회합니다.
	ProductOffers(ctx context.Context, productID string, loc location.Location) (*googleshopping.ProductDetail, error)
}

// Catalog 추천 상품 조회 연산을 제공하는 서비스입니다.
//
// 환율 테이블은 전역 변수가 아닌 주입된 RateProvider를 통해서만 조회하므로,
// 테스트에서 환율과 제공자를 자유롭게 대체할 수 있습니다.
type Catalog struct {
	provider Provider
	rates    exchange.RateProvider

	// now 현재 시각을 반환하는 함수로, 환율 테이블의 유효 날짜 결정에 사용됩니다.
	// 테스트에서의 시간 고정을 위해 함수로 주입합니다.
	now func() time.Time
}

// NewCatalog 추천 상품 조회 서비스를 생성합니다.
// 필수 의존성이 nil이면 프로그래밍 오류이므로 즉시 패닉합니다.
func NewCatalog(provider Provider, rates exchange.RateProvider) *Catalog {
	if provider == nil {
		panic("Provider는 nil일 수 없습니다")
	}
	if rates == nil {
		panic("RateProvider는 nil일 수 없습니다")
	}

	return &Catalog{
		provider: provider,
		rates:    rates,
		now:      time.Now,
	}
}

// RecommendedProducts 검색어에 대한 추천 상품 목록을 조회합니다.
//
// 처리 절차:
//  1. 오늘 날짜의 환율 테이블을 확보합니다. 환율 피드 실패는 이 요청 전체의 실패입니다.
//  2. 검색 제공자에서 상품 목록을 조회합니다.
//  3. 각 상품을 응답 순서 그대로 정규화합니다. 레코드는 완전히 정규화되거나
//     요청 전체가 실패하며, 부분적으로만 채워진 레코드는 만들어지지 않습니다.
//
// 매개변수:
//   - ctx: 타임아웃 및 외부 취소 신호를 전파하기 위한 컨텍스트
//   - query: 검색할 상품 키워드
//   - loc: 검색 대상 시장
func (c *Catalog) RecommendedProducts(ctx context.Context, query string, loc location.Location) ([]*RecommendedProduct, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperrors.New(apperrors.InvalidInput, "query가 입력되지 않았거나 공백입니다")
	}
	if !loc.IsValid() {
		return nil, apperrors.Newf(apperrors.InvalidInput, "지원되지 않는 시장 코드입니다 (입력값: %q)", loc)
	}

	rates, err := c.rates.Rates(ctx, c.now())
	if err != nil {
		return nil, err
	}

	products, err := c.provider.SearchProducts(ctx, query, loc)
	if err != nil {
		return nil, err
	}

	recommended := make([]*RecommendedProduct, 0, len(products))
	for _, p := range products {
		recommended = append(recommended, normalizeProduct(p, loc, rates))
	}

	applog.WithComponent(component).WithContext(ctx).WithFields(applog.Fields{
		"query":    query,
		"location": loc.String(),
		"products": len(recommended),
	}).Info("추천 상품 목록 조회 완료")

	return recommended, nil
}

// RecommendedProductOffers 상품 1건의 전체 판매자 오퍼 목록을 조회합니다.
//
// 검색 목록에서 추가 오퍼 존재가 표시된 상품에 대해 소비 측이 재진입하는 연산으로,
// 환율 확보와 정규화 규칙은 RecommendedProducts와 동일합니다.
//
// 매개변수:
//   - ctx: 타임아웃 및 외부 취소 신호를 전파하기 위한 컨텍스트
//   - productID: 검색 제공자가 부여한 상품 고유 식별자
//   - loc: 검색 대상 시장
func (c *Catalog) RecommendedProductOffers(ctx context.Context, productID string, loc location.Location) (*RecommendedProduct, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, apperrors.New(apperrors.InvalidInput, "product_id가 입력되지 않았거나 공백입니다")
	}
	if !loc.IsValid() {
		return nil, apperrors.Newf(apperrors.InvalidInput, "지원되지 않는 시장 코드입니다 (입력값: %q)", loc)
	}

	rates, err := c.rates.Rates(ctx, c.now())
	if err != nil {
		return nil, err
	}

	detail, err := c.provider.ProductOffers(ctx, productID, loc)
	if err != nil {
		return nil, err
	}

	recommended := normalizeProductDetail(detail, loc, rates, c.now())

	applog.WithComponent(component).WithContext(ctx).WithFields(applog.Fields{
		"product_id": productID,
		"location":   loc.String(),
		"offers":     len(recommended.Offers),
	}).Info("추천 상품 오퍼 조회 완료")

	return recommended, nil
}
