package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	applog "github.com/darkkaiser/product-search-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureLogOutput 테스트 동안 애플리케이션 로그 출력을 버퍼로 돌립니다.
func captureLogOutput(t *testing.T) *bytes.Buffer {
	t.Helper()

	prev := applog.StandardLogger().Out
	buf := &bytes.Buffer{}
	applog.SetOutput(buf)
	t.Cleanup(func() { applog.SetOutput(prev) })

	return buf
}

func TestPanicRecovery(t *testing.T) {
	t.Run("Success_NoPanicPassesThrough", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		called := false
		handler := PanicRecovery()(func(c echo.Context) error {
			called = true
			return c.NoContent(http.StatusOK)
		})

		require.NoError(t, handler(c))
		assert.True(t, called)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("Success_RecoversFromErrorPanic", func(t *testing.T) {
		buf := captureLogOutput(t)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := PanicRecovery()(func(c echo.Context) error {
			panic(errors.New("데이터베이스 연결 실패"))
		})

		require.NotPanics(t, func() {
			require.NoError(t, handler(c))
		})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, buf.String(), "패닉 복구")
		assert.Contains(t, buf.String(), "데이터베이스 연결 실패")
	})

	t.Run("Success_WrapsNonErrorPanicValue", func(t *testing.T) {
		buf := captureLogOutput(t)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		handler := PanicRecovery()(func(c echo.Context) error {
			panic("인덱스 범위 초과")
		})

		require.NotPanics(t, func() {
			require.NoError(t, handler(c))
		})

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, buf.String(), "인덱스 범위 초과")
	})

	t.Run("Success_LogsStackTraceAndRequestID", func(t *testing.T) {
		buf := captureLogOutput(t)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.Response().Header().Set(echo.HeaderXRequestID, "req-12345")

		handler := PanicRecovery()(func(c echo.Context) error {
			panic(errors.New("처리 실패"))
		})

		require.NoError(t, handler(c))

		assert.Contains(t, buf.String(), "goroutine")
		assert.Contains(t, buf.String(), "req-12345")
	})
}
