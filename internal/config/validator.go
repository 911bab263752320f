package config

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/darkkaiser/product-search-server/pkg/validation"
)

// validate 설정 구조체 검증에 사용되는 패키지 전역 Validator 인스턴스입니다.
var validate = newValidator()

// newValidator 새로운 Validator 인스턴스를 생성하고 커스텀 유효성 검사 함수를 등록합니다.
func newValidator() *validator.Validate {
	v := validator.New()

	// 검증 에러가 났을 때, 에러 메시지에 Go 구조체 필드명(예: CORSOrigin) 대신 JSON 이름(예: cors_origin)을 보여주도록 설정합니다.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// 커스텀 유효성 검사 함수 등록
	if err := v.RegisterValidation("cors_origin", validateCORSOrigin); err != nil {
		panic(fmt.Sprintf("초기화 치명적 오류: 'cors_origin' 커스텀 유효성 검사 함수 등록에 실패했습니다: %v", err))
	}

	return v
}

// validateCORSOrigin `validator` 라이브러리의 검증 인터페이스를 도메인 로직과 연결하는 어댑터(Adapter)입니다.
//
// 설정 파일에 정의된 CORS Origin 문자열을 추출한 뒤, 실제 검증은 `validation.ValidateCORSOrigin` 함수로 위임합니다.
// 이를 통해 외부 라이브러리(`validator`)와 내부 비즈니스 로직(`pkg/validation`) 간의 결합도를 낮춥니다.
func validateCORSOrigin(fl validator.FieldLevel) bool {
	return validation.ValidateCORSOrigin(fl.Field().String()) == nil
}
