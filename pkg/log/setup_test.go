package log

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupInternal은 전역 logrus 상태를 변경하므로 테스트 후 원복한다.
func resetLogrusState(t *testing.T) {
	t.Helper()

	std := logrus.StandardLogger()
	prevOut := std.Out
	prevFormatter := std.Formatter
	prevLevel := std.Level
	prevHooks := std.Hooks

	t.Cleanup(func() {
		std.SetOutput(prevOut)
		std.SetFormatter(prevFormatter)
		std.SetLevel(prevLevel)
		std.ReplaceHooks(prevHooks)
	})
}

func TestSetupInternal(t *testing.T) {
	t.Run("Success_CreatesLogDirAndCloser", func(t *testing.T) {
		resetLogrusState(t)

		logDir := filepath.Join(t.TempDir(), "logs")
		c, err := setupInternal(Options{
			Name:             "product-search-test",
			Dir:              logDir,
			EnableConsoleLog: false,
		})
		require.NoError(t, err)
		require.NotNil(t, c)
		defer c.Close()

		info, err := os.Stat(logDir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())

		// 로그를 기록하면 메인 로그 파일이 생성된다.
		logrus.Info("설정 검증용 로그")
		_, err = os.Stat(filepath.Join(logDir, "product-search-test.log"))
		assert.NoError(t, err)
	})

	t.Run("Success_CriticalAndVerboseFiles", func(t *testing.T) {
		resetLogrusState(t)

		logDir := filepath.Join(t.TempDir(), "logs")
		c, err := setupInternal(Options{
			Name:              "product-search-test",
			Dir:               logDir,
			Level:             TraceLevel,
			EnableCriticalLog: true,
			EnableVerboseLog:  true,
		})
		require.NoError(t, err)
		defer c.Close()

		logrus.Error("심각 로그")
		logrus.Debug("상세 로그")

		_, err = os.Stat(filepath.Join(logDir, "product-search-test.critical.log"))
		assert.NoError(t, err, "critical 파일이 분리 생성되어야 합니다")
		_, err = os.Stat(filepath.Join(logDir, "product-search-test.verbose.log"))
		assert.NoError(t, err, "verbose 파일이 분리 생성되어야 합니다")
	})

	t.Run("Error_InvalidOptions", func(t *testing.T) {
		resetLogrusState(t)

		_, err := setupInternal(Options{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "유효하지 않은 로그 설정")
	})

	t.Run("DefaultLevel_IsInfo", func(t *testing.T) {
		resetLogrusState(t)

		c, err := setupInternal(Options{
			Name: "product-search-test",
			Dir:  filepath.Join(t.TempDir(), "logs"),
		})
		require.NoError(t, err)
		defer c.Close()

		assert.Equal(t, InfoLevel, logrus.GetLevel())
	})
}

func TestSetDebugMode(t *testing.T) {
	resetLogrusState(t)

	SetDebugMode(true)
	assert.Equal(t, TraceLevel, logrus.GetLevel())

	SetDebugMode(false)
	assert.Equal(t, InfoLevel, logrus.GetLevel())
}

func TestWithComponent(t *testing.T) {
	entry := WithComponent("scheduler")
	assert.Equal(t, "scheduler", entry.Data["component"])

	entry = WithComponentAndFields("api", Fields{"port": 8080})
	assert.Equal(t, "api", entry.Data["component"])
	assert.Equal(t, 8080, entry.Data["port"])
}
