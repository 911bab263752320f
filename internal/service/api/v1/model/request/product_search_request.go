// Package request v1 API의 요청 바인딩 모델을 정의합니다.
package request

// ProductSearchRequest 추천 상품 목록 조회 요청의 질의 매개변수입니다.
type ProductSearchRequest struct {
	// Query 검색할 상품 키워드
	Query string `query:"query" json:"query" validate:"required,min=1,max=200" korean:"검색어" example:"nike shoes"`

	// Location 검색 대상 시장 코드 (us, pl, de, es, gb)
	Location string `query:"location" json:"location" validate:"required" korean:"시장 코드" example:"us"`
}
