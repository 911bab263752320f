package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errStd = errors.New("standard error")

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		errType ErrorType
		message string
	}{
		{"NotFound", NotFound, "상품을 찾을 수 없습니다"},
		{"InvalidInput", InvalidInput, "잘못된 location 값입니다"},
		{"Unavailable", Unavailable, "환율 피드에 연결할 수 없습니다"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := New(tt.errType, tt.message)
			require.Error(t, err)

			var appErr *AppError
			require.ErrorAs(t, err, &appErr)
			assert.Equal(t, tt.errType, appErr.Type())
			assert.Equal(t, tt.message, appErr.Message())
			assert.Nil(t, appErr.Unwrap())
		})
	}
}

func TestNewf(t *testing.T) {
	t.Parallel()

	err := Newf(InvalidInput, "지원하지 않는 location 입니다: %s", "zz")

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "지원하지 않는 location 입니다: zz", appErr.Message())
}

func TestWrap(t *testing.T) {
	t.Parallel()

	t.Run("Success_WrapStandardError", func(t *testing.T) {
		t.Parallel()

		err := Wrap(errStd, ExecutionFailed, "검색 제공자 호출 실패")
		require.Error(t, err)

		assert.True(t, Is(err, ExecutionFailed))
		assert.ErrorIs(t, err, errStd)
		assert.Contains(t, err.Error(), "standard error")
	})

	t.Run("Success_NilReturnsNil", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, Wrap(nil, Internal, "무시됨"))
		assert.NoError(t, Wrapf(nil, Internal, "무시됨: %d", 1))
	})

	t.Run("Success_ChainPreservesAllTypes", func(t *testing.T) {
		t.Parallel()

		err := New(NotFound, "상품 없음")
		err = Wrap(err, ExecutionFailed, "오퍼 조회 실패")

		assert.True(t, Is(err, NotFound))
		assert.True(t, Is(err, ExecutionFailed))
		assert.False(t, Is(err, Timeout))
	})
}

func TestIs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		errType  ErrorType
		expected bool
	}{
		{"Match_Direct", New(Timeout, "시간 초과"), Timeout, true},
		{"Match_InChain", Wrap(New(NotFound, "없음"), Internal, "조회 실패"), NotFound, true},
		{"NoMatch_DifferentType", New(System, "시스템 오류"), NotFound, false},
		{"NoMatch_StandardError", errStd, Internal, false},
		{"NoMatch_Nil", nil, Internal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, Is(tt.err, tt.errType))
		})
	}
}

func TestErrorTypeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "NotFound", NotFound.String())
	assert.Equal(t, "ExecutionFailed", ExecutionFailed.String())
	assert.Equal(t, "ErrorType(999)", ErrorType(999).String())

	// Error 메시지에 타입 이름이 포함되는지 확인
	err := New(Unavailable, "일시적 장애")
	assert.Equal(t, "[Unavailable] 일시적 장애", err.Error())
}

func TestFormat(t *testing.T) {
	t.Parallel()

	err := Wrap(errStd, ParsingFailed, "응답 본문 파싱 실패")

	t.Run("PlusV_PrintsChain", func(t *testing.T) {
		t.Parallel()

		out := fmt.Sprintf("%+v", err)
		assert.Contains(t, out, "[ParsingFailed] 응답 본문 파싱 실패")
		assert.Contains(t, out, "Caused by:")
		assert.Contains(t, out, "standard error")
	})

	t.Run("SAndQ", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, err.Error(), fmt.Sprintf("%s", err))
		assert.Equal(t, fmt.Sprintf("%q", err.Error()), fmt.Sprintf("%q", err))
	})
}

func TestMessage_ExcludesCause(t *testing.T) {
	t.Parallel()

	// 원인 에러의 내부 정보가 사용자 노출용 메시지에 섞이면 안 된다.
	err := Wrap(errors.New("dial tcp 10.0.0.1:443: i/o timeout"), Unavailable, "환율 피드에 연결할 수 없습니다")

	var appErr *AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "환율 피드에 연결할 수 없습니다", appErr.Message())
	assert.NotContains(t, appErr.Message(), "dial tcp")
}
