package googleshopping

import (
	"github.com/tidwall/gjson"

	apperrors "github.com/darkkaiser/product-search-server/internal/pkg/errors"
	"github.com/darkkaiser/product-search-server/pkg/strutil"
)

// generation 검색 제공자 응답 형식의 세대를 나타냅니다.
//
// 세대 판별은 응답 레코드에 실제로 존재하는 필드를 근거로 하며(Sniffing),
// 제공자가 버전 정보를 명시적으로 내려주지 않기 때문에 이 방법이 유일합니다.
type generation int

const (
	generationUnknown generation = iota

	// generationLegacy 가격이 "price" 문자열 하나로만 제공되고
	// 판매자 목록이 상품 레코드 안의 "offers" 배열에 중첩되어 있던 초기 형식입니다.
	generationLegacy

	// generationStructured 가격이 {"value", "extracted_value", "currency"} 객체로
	// 제공되던 중간 형식입니다.
	generationStructured

	// generationCurrent 가격 문자열("price")과 추출된 숫자("extracted_price")가
	// 병행 제공되고, 판매자 목록이 "sellers_results.online_sellers"로 분리된 현재 형식입니다.
	generationCurrent
)

// detectProductGeneration 상품 레코드의 응답 세대를 판별합니다.
func detectProductGeneration(item gjson.Result) generation {
	price := item.Get("price")

	switch {
	case price.IsObject():
		return generationStructured
	case item.Get("extracted_price").Exists():
		return generationCurrent
	case price.Type == gjson.String:
		return generationLegacy
	default:
		return generationUnknown
	}
}

// adaptProduct 상품 레코드 1건을 응답 세대와 무관한 정식 레코드로 변환합니다.
//
// 세대를 판별할 수 없는 레코드는 제공자 스키마 위반으로 간주하여 에러를 반환하며,
// 세대 분기는 이 함수에서 단 한 번만 수행됩니다. 변환 이후의 어떤 로직도
// 응답 세대를 다시 질의하지 않습니다.
func adaptProduct(item gjson.Result) (*Product, error) {
	gen := detectProductGeneration(item)
	if gen == generationUnknown {
		return nil, apperrors.Newf(apperrors.ParsingFailed,
			"상품 레코드의 응답 형식을 판별할 수 없습니다 (product_id: %s)", item.Get("product_id").String())
	}

	product := &Product{
		ID:          item.Get("product_id").String(),
		Title:       strutil.StripHTMLTags(item.Get("title").String()),
		Link:        item.Get("link").String(),
		ProductLink: item.Get("product_link").String(),
		Source:      item.Get("source").String(),
		Thumbnail:   item.Get("thumbnail").String(),
		Rating:      item.Get("rating").Float(),
		Reviews:     int(item.Get("reviews").Int()),
	}

	switch gen {
	case generationStructured:
		product.RawPrice = item.Get("price.value").String()
	default:
		product.RawPrice = item.Get("price").String()
	}

	// 가격 비교 카운트("5+")가 존재하면 첫 판매자 외의 추가 오퍼가 있다는 의미입니다.
	product.HasMoreOffers = item.Get("number_of_comparisons").String() != ""

	if product.ID == "" {
		return nil, apperrors.New(apperrors.ParsingFailed, "상품 레코드에 product_id가 없습니다")
	}

	return product, nil
}

// adaptProducts 검색 응답의 상품 목록 전체를 정식 레코드 목록으로 변환합니다.
// 한 건이라도 스키마 위반이면 전체 요청을 실패로 처리합니다. (부분 결과 없음)
func adaptProducts(items []gjson.Result) ([]*Product, error) {
	products := make([]*Product, 0, len(items))
	for _, item := range items {
		product, err := adaptProduct(item)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, nil
}

// detectDetailGeneration 상품 상세 레코드의 응답 세대를 판별합니다.
func detectDetailGeneration(detail gjson.Result) generation {
	switch {
	case detail.Get("sellers_results.online_sellers").IsArray():
		return generationCurrent
	case detail.Get("product_results.offers").IsArray():
		return generationLegacy
	default:
		return generationUnknown
	}
}

// adaptProductDetail 상품 상세 응답 전체를 정식 레코드로 변환합니다.
//
// 판매자 목록의 위치와 필드 구조가 세대마다 다르므로 세대별 변환 함수에 위임하며,
// 판매자 순서는 응답 순서 그대로 유지됩니다.
func adaptProductDetail(detail gjson.Result) (*ProductDetail, error) {
	gen := detectDetailGeneration(detail)
	if gen == generationUnknown {
		return nil, apperrors.New(apperrors.ParsingFailed, "상품 상세 레코드의 응답 형식을 판별할 수 없습니다")
	}

	result := &ProductDetail{
		ID:    detail.Get("product_results.product_id").String(),
		Title: strutil.StripHTMLTags(detail.Get("product_results.title").String()),
	}

	for _, media := range detail.Get("product_results.media.#.link").Array() {
		result.Media = append(result.Media, media.String())
	}
	for _, size := range detail.Get("product_results.sizes.#.name").Array() {
		result.Sizes = append(result.Sizes, size.String())
	}

	switch gen {
	case generationCurrent:
		for _, item := range detail.Get("sellers_results.online_sellers").Array() {
			result.Sellers = append(result.Sellers, adaptOnlineSeller(item))
		}
	case generationLegacy:
		for _, item := range detail.Get("product_results.offers").Array() {
			result.Sellers = append(result.Sellers, adaptLegacyOffer(item))
		}
	}

	return result, nil
}

// adaptOnlineSeller 현재 형식(sellers_results.online_sellers)의 판매자 레코드를 변환합니다.
func adaptOnlineSeller(item gjson.Result) Seller {
	return Seller{
		Name:             item.Get("name").String(),
		Link:             item.Get("link").String(),
		TopQuality:       item.Get("top_quality_store").Bool(),
		RawBasePrice:     item.Get("base_price").String(),
		RawShippingPrice: item.Get("additional_price.shipping").String(),
		RawTaxPrice:      item.Get("additional_price.tax").String(),
		RawTotalPrice:    item.Get("total_price").String(),
		DeliveryBy:       item.Get("delivery_by").String(),
	}
}

// adaptLegacyOffer 초기 형식(product_results.offers)의 판매자 레코드를 변환합니다.
// 초기 형식은 총액 구분 없이 단일 가격만 제공했으므로 기본 가격에만 값이 채워집니다.
func adaptLegacyOffer(item gjson.Result) Seller {
	return Seller{
		Name:         item.Get("seller").String(),
		Link:         item.Get("link").String(),
		RawBasePrice: item.Get("price").String(),
	}
}
