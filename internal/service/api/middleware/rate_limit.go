package middleware

import (
	"fmt"
	"sync"

	"github.com/darkkaiser/product-search-server/internal/service/api/constants"
	"github.com/darkkaiser/product-search-server/internal/service/api/httputil"
	applog "github.com/darkkaiser/product-search-server/pkg/log"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const componentRateLimit = "api.middleware.rate_limit"

// maxIPRateLimiters 메모리에 유지할 최대 고유 IP 수. 임계값 도달 시
// 기존 항목 하나를 축출한다. (Go 맵의 무작위 순회 특성을 이용한 간이 축출)
const maxIPRateLimiters = 10000

// ErrRateLimitExceeded 속도 제한 초과 시 반환하는 HTTP 429 에러입니다.
var ErrRateLimitExceeded = httputil.NewTooManyRequestsError(constants.ErrMsgTooManyRequests)

// ipRateLimiter IP 주소별로 독립적인 Token Bucket 제한기를 관리합니다.
type ipRateLimiter struct {
	mu       sync.RWMutex
	limiters map[string]*rate.Limiter
	rate     rate.Limit
	burst    int
}

func newIPRateLimiter(requestsPerSecond, burst int) *ipRateLimiter {
	return &ipRateLimiter{
		limiters: make(map[string]*rate.Limiter),
		rate:     rate.Limit(requestsPerSecond),
		burst:    burst,
	}
}

func (i *ipRateLimiter) getLimiter(ip string) *rate.Limiter {
	i.mu.RLock()
	limiter, exists := i.limiters[ip]
	i.mu.RUnlock()
	if exists {
		return limiter
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	// 락 대기 중 다른 고루틴이 생성했을 수 있다.
	if limiter, exists = i.limiters[ip]; exists {
		return limiter
	}

	if len(i.limiters) >= maxIPRateLimiters {
		for oldIP := range i.limiters {
			delete(i.limiters, oldIP)
			break
		}
	}

	limiter = rate.NewLimiter(i.rate, i.burst)
	i.limiters[ip] = limiter
	return limiter
}

// RateLimit IP 기반 요청 속도 제한 미들웨어를 반환합니다.
// 제한 초과 시 HTTP 429와 Retry-After 헤더를 반환합니다.
// requestsPerSecond 또는 burst가 0 이하이면 패닉이 발생합니다.
func RateLimit(requestsPerSecond, burst int) echo.MiddlewareFunc {
	if requestsPerSecond <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitRequestsPerSecondInvalid, requestsPerSecond))
	}
	if burst <= 0 {
		panic(fmt.Sprintf(constants.PanicMsgRateLimitBurstInvalid, burst))
	}

	limiter := newIPRateLimiter(requestsPerSecond, burst)

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if !limiter.getLimiter(ip).Allow() {
				applog.WithComponentAndFields(componentRateLimit, applog.Fields{
					"remote_ip": ip,
					"path":      c.Request().URL.Path,
					"method":    c.Request().Method,
				}).Warn("요청 차단: 속도 제한(Rate Limit)을 초과하였습니다")

				c.Response().Header().Set("Retry-After", "1")
				return ErrRateLimitExceeded
			}
			return next(c)
		}
	}
}
