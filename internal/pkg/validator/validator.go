// Package validator API 요청 구조체의 유효성 검증과 한국어 에러 메시지 변환을 제공합니다.
//
// go-playground/validator를 기반으로 하며, 구조체 필드의 `korean` 태그를
// 에러 메시지의 필드명으로 사용합니다. 태그가 없는 필드는 Go 필드명을 그대로 사용합니다.
package validator

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// Get 전역 validator 인스턴스를 반환합니다. 초기화는 정확히 한 번만 수행됩니다.
func Get() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()

		// 에러 메시지의 필드명으로 korean 태그 값을 사용합니다.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if koreanName := fld.Tag.Get("korean"); koreanName != "" {
				return koreanName
			}
			return fld.Name
		})
	})

	return validate
}

// Struct 구조체의 validate 태그를 기반으로 유효성 검증을 수행합니다.
func Struct(s any) error {
	return Get().Struct(s)
}

// FormatValidationError 검증 에러를 사용자에게 노출할 한국어 메시지로 변환합니다.
// 검증 에러가 여러 개인 경우 첫 번째 에러만 사용합니다.
func FormatValidationError(err error) string {
	if err == nil {
		return ""
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return err.Error()
	}
	return formatFieldError(validationErrors[0])
}

// formatFieldError 개별 필드 에러를 한국어 메시지로 변환합니다.
// min/max는 문자열 필드이면 "N자" 단위로 표현합니다.
func formatFieldError(fieldErr validator.FieldError) string {
	fieldName := fieldErr.Field()
	param := fieldErr.Param()
	isString := fieldErr.Kind() == reflect.String

	switch fieldErr.Tag() {
	case "required":
		return fmt.Sprintf("%s는 필수입니다", fieldName)
	case "min":
		if isString {
			return fmt.Sprintf("%s는 최소 %s자 이상이어야 합니다", fieldName, param)
		}
		return fmt.Sprintf("%s는 최소 %s 이상이어야 합니다", fieldName, param)
	case "max":
		if isString {
			return fmt.Sprintf("%s는 최대 %s자까지 입력 가능합니다", fieldName, param)
		}
		return fmt.Sprintf("%s는 최대 %s까지 입력 가능합니다", fieldName, param)
	case "oneof":
		return fmt.Sprintf("%s는 허용된 값 중 하나여야 합니다 [%s]", fieldName, param)
	default:
		return fmt.Sprintf("%s 값 검증 실패 (%s)", fieldName, fieldErr.Tag())
	}
}
