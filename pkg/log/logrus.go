// Package log logrus 기반의 전역 로깅 시스템을 제공합니다.
//
// 애플리케이션 코드는 logrus를 직접 임포트하지 않고 이 패키지의 별칭과
// 위임 함수만 사용합니다. 파일 출력 구성은 Setup을 통해 이루어집니다.
package log

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"
)

// Level logrus.Level의 별칭입니다.
type Level = logrus.Level

const (
	// PanicLevel 로그 기록 후 panic()을 호출합니다. 복구 불가능한 내부 오류에 사용합니다.
	PanicLevel Level = logrus.PanicLevel

	// FatalLevel 로그 기록 후 os.Exit(1)로 프로세스를 종료합니다.
	FatalLevel Level = logrus.FatalLevel

	// ErrorLevel 관리자의 개입이나 버그 수정이 필요한 오류입니다.
	ErrorLevel Level = logrus.ErrorLevel

	// WarnLevel 잠재적인 문제가 있어 주의가 필요한 상태입니다.
	WarnLevel Level = logrus.WarnLevel

	// InfoLevel 시스템의 정상적인 작동 흐름을 기록합니다.
	InfoLevel Level = logrus.InfoLevel

	// DebugLevel 개발 및 테스트 단계의 상세 정보입니다.
	DebugLevel Level = logrus.DebugLevel

	// TraceLevel 가장 세밀한 데이터 흐름 추적용 정보입니다.
	TraceLevel Level = logrus.TraceLevel
)

// AllLevels logrus.AllLevels의 별칭입니다.
var AllLevels = logrus.AllLevels

// Fields logrus.Fields의 별칭입니다.
type Fields = logrus.Fields

// Entry logrus.Entry의 별칭입니다.
type Entry = logrus.Entry

// Logger logrus.Logger의 별칭입니다.
type Logger = logrus.Logger

// Formatter logrus.Formatter의 별칭입니다.
type Formatter = logrus.Formatter

// JSONFormatter logrus.JSONFormatter의 별칭입니다.
type JSONFormatter = logrus.JSONFormatter

// StandardLogger 표준 로거 인스턴스를 반환합니다.
// New 전역 로거와 분리된 새 로거 인스턴스를 생성합니다.
func New() *Logger {
	return logrus.New()
}

func StandardLogger() *Logger {
	return logrus.StandardLogger()
}

// SetOutput 표준 로거의 출력 대상을 설정합니다.
func SetOutput(out io.Writer) {
	logrus.SetOutput(out)
}

// SetFormatter 표준 로거의 로그 포맷터를 설정합니다.
func SetFormatter(formatter Formatter) {
	logrus.SetFormatter(formatter)
}

// SetLevel 표준 로거의 로그 레벨을 설정합니다.
func SetLevel(level Level) {
	logrus.SetLevel(level)
}

// WithFields 주어진 필드가 설정된 로그 엔트리를 반환합니다.
func WithFields(fields Fields) *Entry {
	return logrus.WithFields(fields)
}

// WithContext 주어진 Context가 설정된 로그 엔트리를 반환합니다.
func WithContext(ctx context.Context) *Entry {
	return logrus.WithContext(ctx)
}
