package middleware

import (
	"fmt"
	"strings"

	"github.com/darkkaiser/product-search-server/internal/service/api/constants"
	applog "github.com/darkkaiser/product-search-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// DeprecatedEndpoint 레거시 엔드포인트 응답에 폐기 예정 경고 헤더를 추가하는
// 미들웨어를 반환합니다. RFC 7234 Warning 헤더(299 코드)와 함께
// X-API-Deprecated, X-API-Deprecated-Replacement 헤더를 설정하여 클라이언트가
// newEndpoint로 마이그레이션하도록 안내하고, 호출 시마다 Warn 레벨 로그를
// 남깁니다.
//
// newEndpoint는 '/'로 시작하는 대체 경로여야 하며, 그렇지 않으면 서버 기동
// 시점에 패닉이 발생합니다.
func DeprecatedEndpoint(newEndpoint string) echo.MiddlewareFunc {
	if newEndpoint == "" {
		panic(constants.PanicMsgDeprecatedEndpointEmpty)
	}
	if !strings.HasPrefix(newEndpoint, "/") {
		panic(fmt.Sprintf(constants.PanicMsgDeprecatedEndpointInvalidPrefix, newEndpoint))
	}

	// 경고 메시지는 요청마다 동일하므로 미들웨어 생성 시점에 만들어 둔다.
	warning := fmt.Sprintf("299 - %q", "Deprecated API endpoint. Use "+newEndpoint+" instead.")

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Response().Header()
			header.Set(constants.HeaderWarning, warning)
			header.Set(constants.HeaderXAPIDeprecated, "true")
			header.Set(constants.HeaderXAPIDeprecatedReplacement, newEndpoint)

			applog.WithComponentAndFields(constants.ComponentMiddleware, applog.Fields{
				"deprecated_endpoint": c.Path(),
				"replacement":         newEndpoint,
				"method":              c.Request().Method,
				"remote_ip":           c.RealIP(),
				"user_agent":          c.Request().UserAgent(),
			}).Warn(constants.LogMsgDeprecatedEndpointUsed)

			return next(c)
		}
	}
}
