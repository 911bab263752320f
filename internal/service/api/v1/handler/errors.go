package handler

import (
	"fmt"

	"github.com/darkkaiser/product-search-server/internal/service/api/httputil"
)

// NewErrInvalidRequest 요청 매개변수의 데이터 형식이 올바르지 않거나 바인딩에 실패했을 때 발생하는 에러를 생성합니다.
func NewErrInvalidRequest() error {
	return httputil.NewBadRequestError("요청 매개변수를 해석할 수 없습니다. 요청 형식을 확인해주세요")
}

// NewErrValidationFailed 요청 데이터의 필수 값 누락, 형식 위반 등 유효성 검증(Validation)에 실패했을 때 발생하는 에러를 생성합니다.
func NewErrValidationFailed(msg string) error {
	return httputil.NewBadRequestError(msg)
}

// NewErrUnsupportedLocation 지원되지 않는 시장 코드가 입력되었을 때 발생하는 에러를 생성합니다.
func NewErrUnsupportedLocation(input string) error {
	return httputil.NewBadRequestError(fmt.Sprintf("지원되지 않는 시장 코드입니다 (입력값: %q)", input))
}

// NewErrProductNotFound 지정된 상품을 검색 제공자에서 찾을 수 없을 때 발생하는 에러를 생성합니다.
func NewErrProductNotFound() error {
	return httputil.NewNotFoundError("요청한 상품을 찾을 수 없습니다. 상품 식별자를 확인해 주세요")
}

// NewErrSearchUnavailable 검색 제공자 또는 환율 피드 장애로 요청을 처리할 수 없을 때 발생하는 에러를 생성합니다.
func NewErrSearchUnavailable() error {
	return httputil.NewServiceUnavailableError("상품 검색 서비스를 일시적으로 사용할 수 없습니다. 잠시 후 다시 시도해주세요")
}

// NewErrSearchFailed 요청 처리 중 예기치 않은 내부 오류가 발생했을 때 발생하는 에러를 생성합니다.
func NewErrSearchFailed() error {
	return httputil.NewInternalServerError("상품 검색 처리 중 오류가 발생했습니다. 잠시 후 다시 시도해주세요")
}
