// Package errors 타입 기반 에러 분류와 에러 체이닝을 제공합니다.
//
// 모든 에러는 ErrorType으로 분류되며, Wrap으로 원인 에러를 보존한 채
// 컨텍스트를 누적합니다. HTTP 핸들러는 Is로 타입을 검사하여 응답 코드를
// 결정합니다.
//
//	err := errors.New(errors.NotFound, "상품을 찾을 수 없습니다")
//	err = errors.Wrap(cause, errors.ExecutionFailed, "검색 제공자 호출 실패")
//	if errors.Is(err, errors.NotFound) { ... }
package errors

import (
	"errors"
	"fmt"
	"io"
)

// ErrorType 에러의 종류를 나타내는 타입입니다.
type ErrorType int

const (
	// Unknown 분류되지 않은 에러 (기본값, 사용 지양)
	Unknown ErrorType = iota

	// Internal 내부 로직 오류 (버그 등)
	Internal

	// System 시스템 또는 인프라 오류 (디스크, 네트워크 등)
	System

	// Forbidden 접근이 차단됨 (원격 서버의 4xx 거부 등)
	Forbidden

	// InvalidInput 잘못된 입력값 (유효성 검사 실패)
	InvalidInput

	// NotFound 리소스를 찾을 수 없음
	NotFound

	// ExecutionFailed 외부 호출 또는 비즈니스 로직 수행 실패
	ExecutionFailed

	// ParsingFailed 데이터 파싱 또는 형식 변환 실패
	ParsingFailed

	// Timeout 작업 시간 초과
	Timeout

	// Unavailable 서비스 일시적 사용 불가
	Unavailable
)

var errorTypeNames = map[ErrorType]string{
	Unknown:         "Unknown",
	Internal:        "Internal",
	System:          "System",
	Forbidden:       "Forbidden",
	InvalidInput:    "InvalidInput",
	NotFound:        "NotFound",
	ExecutionFailed: "ExecutionFailed",
	ParsingFailed:   "ParsingFailed",
	Timeout:         "Timeout",
	Unavailable:     "Unavailable",
}

func (t ErrorType) String() string {
	if name, ok := errorTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("ErrorType(%d)", int(t))
}

// AppError 애플리케이션에서 발생하는 모든 에러를 표준화하여 표현합니다.
type AppError struct {
	errType ErrorType
	message string // 사용자에게 노출 가능한 메시지
	cause   error
}

// Type 에러의 타입을 반환합니다.
func (e *AppError) Type() ErrorType {
	return e.errType
}

// Message 에러 메시지를 반환합니다. 원인 에러의 내용은 포함하지 않습니다.
func (e *AppError) Message() string {
	return e.message
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.errType, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.errType, e.message)
}

func (e *AppError) Unwrap() error {
	return e.cause
}

// Format %+v 사용 시 에러 체인을 단계별로 출력합니다.
func (e *AppError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			fmt.Fprintf(s, "[%s] %s", e.errType, e.message)
			if e.cause != nil {
				fmt.Fprint(s, "\nCaused by:\n")
				if formatter, ok := e.cause.(fmt.Formatter); ok {
					formatter.Format(s, verb)
				} else {
					fmt.Fprintf(s, "\t%v", e.cause)
				}
			}
			return
		}
		fallthrough
	case 's':
		io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// New 새로운 에러를 생성합니다.
func New(errType ErrorType, message string) error {
	return &AppError{errType: errType, message: message}
}

// Newf 포맷 문자열을 사용하여 새로운 에러를 생성합니다.
func Newf(errType ErrorType, format string, args ...any) error {
	return &AppError{errType: errType, message: fmt.Sprintf(format, args...)}
}

// Wrap 기존 에러를 감싸서 새로운 에러를 생성합니다. err이 nil이면 nil을 반환합니다.
func Wrap(err error, errType ErrorType, message string) error {
	if err == nil {
		return nil
	}
	return &AppError{errType: errType, message: message, cause: err}
}

// Wrapf 포맷 문자열을 사용하여 기존 에러를 감쌉니다.
func Wrapf(err error, errType ErrorType, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &AppError{errType: errType, message: fmt.Sprintf(format, args...), cause: err}
}

// Is 에러 체인에 특정 ErrorType이 포함되어 있는지 확인합니다.
func Is(err error, errType ErrorType) bool {
	for err != nil {
		if appErr, ok := err.(*AppError); ok && appErr.errType == errType {
			return true
		}
		err = errors.Unwrap(err)
	}
	return false
}
