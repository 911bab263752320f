package middleware

import (
	"net/url"
	"strconv"
	"time"

	"github.com/darkkaiser/product-search-server/internal/service/api/constants"
	applog "github.com/darkkaiser/product-search-server/pkg/log"
	"github.com/darkkaiser/product-search-server/pkg/strutil"
	"github.com/labstack/echo/v4"
)

// HTTPLogger HTTP 요청/응답을 구조화된 로그로 기록하는 미들웨어를 반환합니다.
// api_key 등 민감한 쿼리 파라미터의 값은 마스킹하여 기록합니다.
func HTTPLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			start := time.Now()

			// 패닉이 발생해도 로그는 남도록 defer로 기록한다.
			defer func() {
				latency := time.Since(start)

				path := req.URL.Path
				if path == "" {
					path = "/"
				}

				// Chunked 전송 등으로 Content-Length가 없으면 "0"으로 기록한다.
				// (숫자형 값을 기대하는 로그 수집기의 파싱 오류 방지)
				bytesIn := req.Header.Get(echo.HeaderContentLength)
				if bytesIn == "" {
					bytesIn = "0"
				}

				applog.WithFields(applog.Fields{
					"time_rfc3339": time.Now().Format(time.RFC3339),

					"method":   req.Method,
					"path":     path,
					"uri":      maskSensitiveQueryParams(req.RequestURI),
					"host":     req.Host,
					"protocol": req.Proto,

					"remote_ip":  c.RealIP(),
					"user_agent": req.UserAgent(),
					"referer":    req.Referer(),

					"status":    res.Status,
					"bytes_in":  bytesIn,
					"bytes_out": strconv.FormatInt(res.Size, 10),

					"latency":       strconv.FormatInt(latency.Microseconds(), 10),
					"latency_human": latency.String(),

					"request_id": res.Header().Get(echo.HeaderXRequestID),
				}).Info("HTTP 요청")
			}()

			if err := next(c); err != nil {
				c.Error(err)
			}
			return nil
		}
	}
}

// maskSensitiveQueryParams URI에 포함된 민감한 쿼리 파라미터 값을 마스킹합니다.
// 파싱에 실패하면 로깅이 중단되지 않도록 원본을 그대로 반환합니다.
//
// 예: "/api/v1/products?api_key=secret123" -> "/api/v1/products?api_key=secr***"
func maskSensitiveQueryParams(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return uri
	}

	q := u.Query()
	masked := false
	for _, param := range constants.SensitiveQueryParams {
		if q.Has(param) {
			q.Set(param, strutil.MaskSensitiveData(q.Get(param)))
			masked = true
		}
	}

	if !masked {
		return uri
	}
	u.RawQuery = q.Encode()
	return u.String()
}
