// Package httputil API 핸들러에서 공통으로 사용하는 HTTP 에러 생성과 전역 에러 처리를 제공합니다.
package httputil

import (
	"errors"
	"net/http"

	"github.com/darkkaiser/product-search-server/internal/service/api/constants"
	"github.com/darkkaiser/product-search-server/internal/service/api/model/response"
	applog "github.com/darkkaiser/product-search-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// newHTTPError 표준 ErrorResponse를 본문으로 갖는 echo.HTTPError를 생성합니다.
func newHTTPError(statusCode int, message string) error {
	return echo.NewHTTPError(statusCode, response.ErrorResponse{
		ResultCode: statusCode,
		Message:    message,
	})
}

// NewBadRequestError 400 Bad Request 에러를 생성합니다.
func NewBadRequestError(message string) error {
	return newHTTPError(http.StatusBadRequest, message)
}

// NewNotFoundError 404 Not Found 에러를 생성합니다.
func NewNotFoundError(message string) error {
	return newHTTPError(http.StatusNotFound, message)
}

// NewTooManyRequestsError 429 Too Many Requests 에러를 생성합니다.
func NewTooManyRequestsError(message string) error {
	return newHTTPError(http.StatusTooManyRequests, message)
}

// NewInternalServerError 500 Internal Server Error 에러를 생성합니다.
func NewInternalServerError(message string) error {
	return newHTTPError(http.StatusInternalServerError, message)
}

// NewServiceUnavailableError 503 Service Unavailable 에러를 생성합니다.
func NewServiceUnavailableError(message string) error {
	return newHTTPError(http.StatusServiceUnavailable, message)
}

// ErrorHandler Echo의 전역 에러 핸들러입니다.
//
// 모든 HTTP 에러를 표준 ErrorResponse JSON 형식으로 변환하여 반환하고,
// 상태 코드에 따라 Warn(4xx) 또는 Error(5xx) 레벨로 기록합니다.
func ErrorHandler(err error, c echo.Context) {
	code, message := resolveError(err)

	logError(err, c, code)

	// 이미 응답이 전송된 경우 이중 응답을 시도하지 않습니다.
	if c.Response().Committed {
		return
	}

	// HEAD 요청은 HTTP 명세에 따라 본문 없이 상태 코드만 반환합니다.
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}

	_ = c.JSON(code, response.ErrorResponse{
		ResultCode: code,
		Message:    message,
	})
}

// resolveError 에러에서 응답 상태 코드와 사용자에게 노출할 메시지를 추출합니다.
func resolveError(err error) (code int, message string) {
	code = http.StatusInternalServerError
	message = constants.ErrMsgInternalServer

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		switch msg := httpErr.Message.(type) {
		case string:
			message = msg
		case response.ErrorResponse:
			message = msg.Message
		}
	}

	// Echo가 생성하는 기본 404 메시지는 한국어 안내 메시지로 교체합니다.
	if code == http.StatusNotFound && message == "Not Found" {
		message = constants.ErrMsgNotFound
	}
	return code, message
}

func logError(err error, c echo.Context, code int) {
	if code < http.StatusBadRequest {
		return
	}

	logger := applog.WithComponentAndFields(constants.ComponentErrorHandler, applog.Fields{
		"path":        c.Request().URL.Path,
		"method":      c.Request().Method,
		"status_code": code,
		"error":       err,
		"remote_ip":   c.RealIP(),
		"request_id":  c.Response().Header().Get(echo.HeaderXRequestID),
	})

	if code >= http.StatusInternalServerError {
		logger.Error(constants.LogMsgHTTP5xxServerError)
	} else {
		logger.Warn(constants.LogMsgHTTP4xxClientError)
	}
}
