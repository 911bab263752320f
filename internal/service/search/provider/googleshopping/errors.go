package googleshopping

import (
	apperrors "github.com/darkkaiser/product-search-server/internal/pkg/errors"
)

var (
	// ErrAPIKeyMissing 클라이언트 설정 검증 시 검색 제공자의 api_key가 누락되었거나 공백일 때 반환됩니다.
	// 검색 제공자 인증에 필수적인 설정값이므로 반드시 유효한 값이 설정되어야 합니다.
	ErrAPIKeyMissing = apperrors.New(apperrors.InvalidInput, "api_key는 필수 설정값입니다")
)
