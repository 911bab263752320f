package log

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	fileExt = "log"

	// 기본 로그 로테이션 정책
	defaultMaxSizeMB  = 100
	defaultMaxBackups = 20
)

var (
	// Setup이 프로세스 생명주기 동안 단 한 번만 실행되도록 보장합니다.
	// 초기화에 실패한 경우 재호출되더라도 최초의 에러를 그대로 반환합니다.
	setupOnce      sync.Once
	globalCloser   io.Closer
	globalSetupErr error
)

// silentFormatter logrus는 출력 대상이 io.Discard여도 포맷팅을 수행하므로,
// 표준 출력 경로의 불필요한 연산을 막기 위해 사용합니다. 실제 포맷팅은 hook에서 수행합니다.
type silentFormatter struct{}

func (f *silentFormatter) Format(_ *logrus.Entry) ([]byte, error) {
	return nil, nil
}

// Setup 전역 로깅 시스템을 초기화하고 옵션에 따라 파일 출력을 구성합니다.
// main 함수 도입부에서 호출하며, 반환된 Closer는 defer로 해제해야 합니다.
func Setup(opts Options) (io.Closer, error) {
	setupOnce.Do(func() {
		globalCloser, globalSetupErr = setupInternal(opts)
	})
	return globalCloser, globalSetupErr
}

func setupInternal(opts Options) (io.Closer, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("유효하지 않은 로그 설정: %w", err)
	}

	level := opts.Level
	if level == 0 {
		level = InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetReportCaller(opts.ReportCaller)
	logrus.SetFormatter(&silentFormatter{})

	// 파일/콘솔 출력에 사용할 실제 포맷터 (hook에서 사용)
	textFormatter := &logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
		CallerPrettyfier: func(frame *runtime.Frame) (function string, file string) {
			function = frame.Function + "(line:" + strconv.Itoa(frame.Line) + ")"
			if opts.CallerPathPrefix != "" {
				if cut, found := strings.CutPrefix(function, opts.CallerPathPrefix); found {
					function = "..." + cut
				}
			}
			return
		},
	}

	logDir := opts.Dir
	if logDir == "" {
		logDir = "logs"
	}
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, fmt.Errorf("로그 디렉토리 생성 실패: %w", err)
	}

	maxSize := opts.MaxSizeMB
	if maxSize == 0 {
		maxSize = defaultMaxSizeMB
	}
	maxBackups := opts.MaxBackups
	if maxBackups == 0 {
		maxBackups = defaultMaxBackups
	}

	newRotatingLogger := func(name string) *lumberjack.Logger {
		return &lumberjack.Logger{
			Filename:   filepath.Join(logDir, name+"."+fileExt),
			MaxSize:    maxSize,
			MaxBackups: maxBackups,
			MaxAge:     opts.MaxAge,
			LocalTime:  true,
		}
	}

	// 기본 출력은 비활성화하고 모든 로그 처리를 hook에 위임한다. (중복 출력 방지)
	logrus.SetOutput(io.Discard)

	h := &hook{formatter: textFormatter}

	var closers []io.Closer

	mainLogger := newRotatingLogger(opts.Name)
	closers = append(closers, mainLogger)
	h.mainWriter = mainLogger

	if opts.EnableCriticalLog {
		criticalLogger := newRotatingLogger(opts.Name + ".critical")
		closers = append(closers, criticalLogger)
		h.criticalWriter = criticalLogger
	}
	if opts.EnableVerboseLog {
		verboseLogger := newRotatingLogger(opts.Name + ".verbose")
		closers = append(closers, verboseLogger)
		h.verboseWriter = verboseLogger
	}
	if opts.EnableConsoleLog {
		h.consoleWriter = os.Stdout
	}

	logrus.AddHook(h)

	c := &closer{closers: closers, hook: h}

	// Fatal 발생 시(os.Exit 직전) 잔류 로그를 디스크에 쓰고 리소스를 해제한다.
	logrus.RegisterExitHandler(func() {
		_ = c.Close()
	})

	return c, nil
}
