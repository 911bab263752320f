package middleware

import (
	"fmt"
	"runtime"

	apperrors "github.com/darkkaiser/product-search-server/internal/pkg/errors"
	applog "github.com/darkkaiser/product-search-server/pkg/log"
	"github.com/labstack/echo/v4"
)

const componentPanicRecovery = "api.middleware.panic_recovery"

// stackBufferSize 패닉 발생 시 수집할 스택 트레이스 버퍼 크기 (4KB)
const stackBufferSize = 4 << 10

// PanicRecovery 핸들러의 패닉을 복구하여 서버 다운을 방지하고,
// 스택 트레이스와 함께 에러를 로깅하는 미들웨어를 반환합니다.
func PanicRecovery() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer func() {
				if r := recover(); r != nil {
					err, ok := r.(error)
					if !ok {
						err = apperrors.New(apperrors.Internal, fmt.Sprintf("%v", r))
					}

					stack := make([]byte, stackBufferSize)
					length := runtime.Stack(stack, false)

					fields := applog.Fields{
						"error": err,
						"stack": string(stack[:length]),
					}
					if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
						fields["request_id"] = requestID
					}

					applog.WithComponentAndFields(componentPanicRecovery, fields).
						Error("패닉 복구: 예기치 못한 오류가 발생하여 안전하게 복구했습니다")

					c.Error(err)
				}
			}()
			return next(c)
		}
	}
}
