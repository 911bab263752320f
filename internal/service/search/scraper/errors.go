package scraper

import (
	"fmt"
	"net/http"

	apperrors "github.com/darkkaiser/product-search-server/internal/pkg/errors"
)

// ErrDecodeTargetNil JSON 디코딩 결과를 저장할 변수로 nil이 전달되었을 때 반환하는 에러입니다.
var ErrDecodeTargetNil = apperrors.New(apperrors.Internal, "JSON 디코딩 실패: 결과를 저장할 변수(v)가 nil입니다. 유효한 포인터를 전달해 주세요")

// newErrDecodeTargetInvalidType 디코딩 대상이 포인터가 아니거나 nil 포인터일 때 반환하는 에러를 생성합니다.
func newErrDecodeTargetInvalidType(v any) error {
	return apperrors.New(apperrors.Internal, fmt.Sprintf("JSON 디코딩 실패: 결과를 저장할 변수(v)는 반드시 nil이 아닌 포인터여야 합니다 (입력된 타입: %T)", v))
}

// newErrReadRequestBody 요청 본문 스트림을 읽는 중 I/O 오류가 발생했을 때 반환하는 에러를 생성합니다.
func newErrReadRequestBody(err error) error {
	return apperrors.Wrap(err, apperrors.Internal, "요청 본문 처리 실패: 데이터 스트림을 읽는 중 알 수 없는 입출력 오류가 발생했습니다")
}

// newErrEncodeJSONBody 요청 본문을 JSON으로 직렬화하지 못했을 때 반환하는 에러를 생성합니다.
func newErrEncodeJSONBody(err error) error {
	return apperrors.Wrap(err, apperrors.Internal, "데이터 변환 실패: 요청 본문을 JSON 형식으로 인코딩할 수 없습니다. 데이터 구조를 확인해 주세요")
}

// newErrRequestBodyTooLarge 요청 본문 크기가 제한을 초과했을 때 반환하는 에러를 생성합니다.
func newErrRequestBodyTooLarge(maxSize int64) error {
	return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("요청 본문 크기 초과: 전송하려는 데이터가 허용된 제한(%d 바이트)을 초과하여 처리를 진행할 수 없습니다", maxSize))
}

// newErrCreateHTTPRequest HTTP 요청 객체 생성에 실패했을 때 반환하는 에러를 생성합니다.
func newErrCreateHTTPRequest(url string, err error) error {
	return apperrors.Wrap(err, apperrors.ExecutionFailed, fmt.Sprintf("HTTP 요청 생성 실패: 요청을 초기화하는 도중 오류가 발생했습니다 (대상 URL: %s)", url))
}

// newErrHTTPRequestCanceled HTTP 요청이 컨텍스트 취소 또는 타임아웃으로 중단되었을 때 반환하는 에러를 생성합니다.
func newErrHTTPRequestCanceled(url string, err error) error {
	return apperrors.Wrap(err, apperrors.Unavailable, fmt.Sprintf("요청 중단: 작업 시간이 초과되었거나 사용자에 의해 취소되었습니다 (대상 URL: %s)", url))
}

// newErrNetworkError HTTP 요청 전송이 네트워크 오류로 실패했을 때 반환하는 에러를 생성합니다.
func newErrNetworkError(url string, err error) error {
	return apperrors.Wrap(err, apperrors.Unavailable, fmt.Sprintf("네트워크 오류: 페이지(%s)에 접속할 수 없습니다. 서버 상태나 네트워크 연결을 확인해 주세요", url))
}

// newErrHTTPRequestFailed HTTP 상태 코드 검증 실패 에러를 생성합니다.
//
// 4xx 클라이언트 에러는 재시도해도 결과가 같으므로 ExecutionFailed로 분류하되,
// 408(Request Timeout)과 429(Too Many Requests)는 일시적일 수 있으므로
// 5xx 서버 에러와 함께 Unavailable로 분류합니다.
func newErrHTTPRequestFailed(url string, statusCode int, bodySnippet string, cause error) error {
	errType := apperrors.Unavailable
	if statusCode >= 400 && statusCode < 500 &&
		statusCode != http.StatusRequestTimeout && statusCode != http.StatusTooManyRequests {
		errType = apperrors.ExecutionFailed
	}

	msg := fmt.Sprintf("HTTP 요청 실패 (URL: %s, Status: %d)", url, statusCode)
	if bodySnippet != "" {
		msg += fmt.Sprintf(", Body: %s", bodySnippet)
	}

	return apperrors.Wrap(cause, errType, msg)
}

// newErrUnexpectedHTMLResponse JSON 응답을 기대했으나 HTML 응답이 수신되었을 때 반환하는 에러를 생성합니다.
func newErrUnexpectedHTMLResponse(url, contentType string) error {
	return apperrors.New(apperrors.ParsingFailed, fmt.Sprintf("유효하지 않은 응답 형식: JSON을 기대했으나 HTML 응답이 수신되었습니다. API 엔드포인트 또는 인증 상태를 점검하십시오 (대상 URL: %s, Content-Type: %s)", url, contentType))
}

// newErrReadResponseBody 응답 본문 스트림을 읽는 중 I/O 오류가 발생했을 때 반환하는 에러를 생성합니다.
func newErrReadResponseBody(err error) error {
	return apperrors.Wrap(err, apperrors.ExecutionFailed, "응답 본문 데이터 수신 실패: 데이터 스트림을 읽는 중 I/O 오류가 발생했습니다")
}

// newErrJSONTruncated 응답 본문이 크기 제한을 초과하여 잘렸을 때 반환하는 에러를 생성합니다.
// JSON은 부분 파싱이 불가능하므로 잘린 데이터는 사용할 수 없습니다.
func newErrJSONTruncated(limit int64, url string) error {
	return apperrors.New(apperrors.ParsingFailed, fmt.Sprintf("JSON 파싱 불가: 응답 본문 크기가 설정된 제한(%d bytes)을 초과하여 데이터 무결성을 보장할 수 없습니다 (대상 URL: %s)", limit, url))
}

// newErrJSONParseFailed JSON 디코딩 실패 에러를 생성합니다.
func newErrJSONParseFailed(url string, err error) error {
	return apperrors.Wrap(err, apperrors.ParsingFailed, fmt.Sprintf("JSON 데이터 변환 실패: 불러온 페이지(%s) 데이터가 유효하지 않은 형식입니다", url))
}

// newErrJSONUnexpectedToken JSON 데이터 뒤에 잔여 데이터가 감지되었을 때 반환하는 에러를 생성합니다.
func newErrJSONUnexpectedToken(url string) error {
	return apperrors.New(apperrors.ParsingFailed, fmt.Sprintf("불러온 페이지(%s) 데이터에 불필요한 데이터가 포함되어 있습니다. (Unexpected Token)", url))
}
