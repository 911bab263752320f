package request

// ProductOffersRequest 상품 오퍼 목록 조회 요청의 매개변수입니다.
type ProductOffersRequest struct {
	// ProductID 검색 제공자가 부여한 상품 고유 식별자
	ProductID string `param:"product_id" json:"product_id" validate:"required,max=128" korean:"상품 식별자" example:"1234567890"`

	// Location 검색 대상 시장 코드 (us, pl, de, es, gb)
	Location string `query:"location" json:"location" validate:"required" korean:"시장 코드" example:"us"`
}
