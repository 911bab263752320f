// Package googleshopping 구글 쇼핑 검색 제공자(SerpAPI)와의 연동을 담당하는 패키지입니다.
//
// 검색 제공자의 응답 형식은 여러 세대(Generation)에 걸쳐 변경되어 왔으며,
// 같은 개념(상품, 판매자)이 세대마다 다른 필드 구조로 표현됩니다.
// 이 패키지는 세대 판별과 변환을 어댑터 경계(adapt.go)에서 한 번만 수행하고,
// 이후의 모든 비즈니스 로직에는 단일한 정식(Canonical) 레코드만 전달합니다.
//
// 가격 필드는 의도적으로 원시 문자열 그대로 보존됩니다.
// 금액과 통화의 해석은 가격 정규화 파이프라인(currency 패키지)의 책임이며,
// 이 패키지는 어떤 가격 해석도 수행하지 않습니다.
package googleshopping

const component = "search.provider.googleshopping"

// Product 검색 결과 목록에 포함된 상품 1건의 정식 레코드입니다.
//
// 응답 세대와 무관하게 어댑터를 통과한 뒤에는 항상 이 구조체로 표현됩니다.
type Product struct {
	// ID 검색 제공자가 부여한 상품 고유 식별자입니다.
	// 상품 상세(판매자 목록) 조회 시 이 값을 그대로 사용합니다.
	ID string

	// Title 상품의 표시용 이름입니다. HTML 태그가 제거된 상태로 보관됩니다.
	Title string

	// Link 상품을 판매하는 페이지로 연결되는 링크 주소(URL)입니다.
	Link string

	// ProductLink 검색 제공자의 상품 비교 페이지 링크 주소(URL)입니다.
	ProductLink string

	// Source 검색 결과에 노출된 판매처(쇼핑몰)의 이름입니다.
	Source string

	// Thumbnail 상품 대표 이미지의 URL입니다.
	Thumbnail string

	// Rating 구매자 평점입니다. (0~5, 평점이 없으면 0)
	Rating float64

	// Reviews 구매 후기 개수입니다.
	Reviews int

	// RawPrice 제공자가 전달한 가공되지 않은 가격 문자열입니다. (예: "$129.99")
	// 금액과 통화의 해석은 가격 정규화 파이프라인에서 수행됩니다.
	RawPrice string

	// HasMoreOffers 첫 번째 판매자 외에 추가 판매자가 존재하는지의 여부입니다.
	// 제공자의 가격 비교 카운트 문자열로부터 판별됩니다.
	HasMoreOffers bool
}

// Seller 상품 상세 응답에 포함된 개별 판매자(오퍼) 1건의 정식 레코드입니다.
type Seller struct {
	// Name 판매자(쇼핑몰)의 이름입니다.
	Name string

	// Link 해당 판매자의 상품 구매 페이지 링크 주소(URL)입니다.
	Link string

	// TopQuality 검색 제공자가 우수 판매처로 표시한 판매자인지의 여부입니다.
	TopQuality bool

	// RawBasePrice 상품 자체의 원시 가격 문자열입니다.
	RawBasePrice string

	// RawShippingPrice 배송비의 원시 가격 문자열입니다. (무료 배송 등은 빈 문자열)
	RawShippingPrice string

	// RawTaxPrice 세금의 원시 가격 문자열입니다.
	RawTaxPrice string

	// RawTotalPrice 배송비와 세금을 포함한 총액의 원시 가격 문자열입니다.
	RawTotalPrice string

	// DeliveryBy 판매자가 안내하는 예상 배송 시점의 원문 텍스트입니다.
	// 형식이 제공자마다 달라 해석은 소비 측의 책임입니다.
	DeliveryBy string
}

// ProductDetail 상품 상세 조회 응답의 정식 레코드입니다.
// 상품 식별 정보와 함께 전체 판매자 목록을 포함합니다.
type ProductDetail struct {
	// ID 검색 제공자가 부여한 상품 고유 식별자입니다.
	ID string

	// Title 상품의 표시용 이름입니다.
	Title string

	// Media 상품 이미지/동영상 URL 목록입니다.
	Media []string

	// Sizes 상품이 제공하는 크기 옵션 목록입니다. (의류 등 일부 카테고리에만 존재)
	Sizes []string

	// Sellers 이 상품을 판매하는 판매자 목록입니다. 응답 순서가 그대로 유지됩니다.
	Sellers []Seller
}
