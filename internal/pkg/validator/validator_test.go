package validator_test

import (
	"errors"
	"sync"
	"testing"

	govalidator "github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/darkkaiser/product-search-server/internal/pkg/validator"
)

// searchRequest 상품 검색 요청과 동일한 형태의 검증 대상 구조체입니다.
type searchRequest struct {
	Query    string `validate:"required,min=1,max=200" korean:"검색어"`
	Location string `validate:"required" korean:"시장 코드"`
	Sort     string `validate:"omitempty,oneof=price relevance" korean:"정렬 기준"`
	PageSize int    `validate:"omitempty,max=100" korean:"페이지 크기"`
	Fallback string `validate:"omitempty,min=2"`
}

func TestGet_ReturnsSameInstanceConcurrently(t *testing.T) {
	const goroutines = 50

	instances := make([]*govalidator.Validate, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(idx int) {
			defer wg.Done()
			instances[idx] = validator.Get()
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, instances[0], instances[i])
	}
}

func TestStruct(t *testing.T) {
	t.Run("Success_ValidRequest", func(t *testing.T) {
		err := validator.Struct(&searchRequest{Query: "nike shoes", Location: "us"})
		assert.NoError(t, err)
	})

	t.Run("Fail_MissingRequiredField", func(t *testing.T) {
		err := validator.Struct(&searchRequest{Location: "us"})
		require.Error(t, err)

		var validationErrors govalidator.ValidationErrors
		require.ErrorAs(t, err, &validationErrors)
		assert.Equal(t, "검색어", validationErrors[0].Field(), "korean 태그가 필드명으로 사용되어야 함")
	})
}

func TestFormatValidationError(t *testing.T) {
	newError := func(t *testing.T, req searchRequest) error {
		t.Helper()
		err := validator.Struct(&req)
		require.Error(t, err)
		return err
	}

	t.Run("Required_KoreanMessage", func(t *testing.T) {
		err := newError(t, searchRequest{Location: "us"})
		assert.Equal(t, "검색어는 필수입니다", validator.FormatValidationError(err))
	})

	t.Run("MaxString_CharacterUnit", func(t *testing.T) {
		longQuery := make([]byte, 201)
		for i := range longQuery {
			longQuery[i] = 'a'
		}
		err := newError(t, searchRequest{Query: string(longQuery), Location: "us"})
		assert.Equal(t, "검색어는 최대 200자까지 입력 가능합니다", validator.FormatValidationError(err))
	})

	t.Run("MaxNumber_NoCharacterUnit", func(t *testing.T) {
		err := newError(t, searchRequest{Query: "nike", Location: "us", PageSize: 500})
		assert.Equal(t, "페이지 크기는 최대 100까지 입력 가능합니다", validator.FormatValidationError(err))
	})

	t.Run("MinString_CharacterUnit", func(t *testing.T) {
		err := newError(t, searchRequest{Query: "nike", Location: "us", Fallback: "a"})
		assert.Equal(t, "Fallback는 최소 2자 이상이어야 합니다", validator.FormatValidationError(err),
			"korean 태그가 없는 필드는 Go 필드명이 사용되어야 함")
	})

	t.Run("OneOf_ListsAllowedValues", func(t *testing.T) {
		err := newError(t, searchRequest{Query: "nike", Location: "us", Sort: "newest"})
		assert.Equal(t, "정렬 기준는 허용된 값 중 하나여야 합니다 [price relevance]", validator.FormatValidationError(err))
	})

	t.Run("UnhandledTag_FallbackMessage", func(t *testing.T) {
		type ipRequest struct {
			ClientIP string `validate:"ip" korean:"클라이언트 IP"`
		}
		err := validator.Struct(&ipRequest{ClientIP: "잘못된 값"})
		require.Error(t, err)
		assert.Equal(t, "클라이언트 IP 값 검증 실패 (ip)", validator.FormatValidationError(err))
	})

	t.Run("NilError_EmptyString", func(t *testing.T) {
		assert.Empty(t, validator.FormatValidationError(nil))
	})

	t.Run("NonValidationError_OriginalMessage", func(t *testing.T) {
		err := errors.New("데이터베이스 연결 실패")
		assert.Equal(t, "데이터베이스 연결 실패", validator.FormatValidationError(err))
	})
}
