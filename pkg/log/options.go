package log

import (
	"fmt"
	"os"
)

// Options 로거 설정입니다. Setup에 전달합니다.
type Options struct {
	Name  string // 로그 파일명 생성에 사용될 애플리케이션 식별자
	Dir   string // 로그 파일이 저장될 디렉토리 경로 (빈 문자열: "logs")
	Level Level  // 로그 레벨 (0: Info)

	MaxAge     int // 오래된 로그 삭제 기준일 (일 단위, 0: 삭제 안 함)
	MaxSizeMB  int // 로그 파일 최대 크기 (MB, 0: 기본값 100MB)
	MaxBackups int // 최대 백업 파일 수 (0: 기본값 20개)

	EnableCriticalLog bool // ERROR 이상을 별도 파일로 분리 저장할지 여부
	EnableVerboseLog  bool // DEBUG 이하를 별도 파일로 분리 저장할지 여부
	EnableConsoleLog  bool // 표준 출력에도 로그를 출력할지 여부 (개발 환경 권장)

	// ReportCaller 로그를 호출한 소스 위치(파일명:라인번호)를 함께 기록할지 여부
	ReportCaller bool

	// CallerPathPrefix 호출자 경로에서 잘라낼 접두어
	// 예: "github.com/darkkaiser/product-search-server/internal/server/server.go" -> prefix가 "github.com/darkkaiser/product-search-server"라면 ".../internal/server/server.go"로 출력
	CallerPathPrefix string
}

// Validate Options의 필드 값이 유효한지 검증합니다.
func (opts *Options) Validate() error {
	if opts.Name == "" {
		return fmt.Errorf("애플리케이션 식별자(Name)가 설정되지 않았습니다")
	}

	if opts.Dir != "" {
		if info, err := os.Stat(opts.Dir); err == nil && !info.IsDir() {
			return fmt.Errorf("로그 디렉토리 경로(%s)가 이미 파일로 존재합니다", opts.Dir)
		}
	}

	if opts.MaxAge < 0 {
		return fmt.Errorf("MaxAge는 0 이상이어야 합니다: %d", opts.MaxAge)
	}
	if opts.MaxSizeMB < 0 {
		return fmt.Errorf("MaxSizeMB는 0 이상이어야 합니다: %d", opts.MaxSizeMB)
	}
	if opts.MaxBackups < 0 {
		return fmt.Errorf("MaxBackups는 0 이상이어야 합니다: %d", opts.MaxBackups)
	}

	return nil
}

// NewProductionConfig 운영 환경에 최적화된 로그 설정을 반환합니다.
// 콘솔 출력 없이 파일 중심으로 기록하며, 심각도별 파일 분리를 활성화합니다.
func NewProductionConfig(appName string) Options {
	return Options{
		Name:              appName,
		MaxAge:            30, // 30일 보관
		EnableCriticalLog: true,
		EnableVerboseLog:  true,
		EnableConsoleLog:  false,
		ReportCaller:      true,
		CallerPathPrefix:  "github.com/darkkaiser",
	}
}

// NewDevelopmentConfig 개발 환경에 최적화된 로그 설정을 반환합니다.
// 터미널 출력을 켜고 파일 분리 없이 하나의 로그 파일만 사용합니다.
func NewDevelopmentConfig(appName string) Options {
	return Options{
		Name:              appName,
		MaxAge:            1,
		EnableCriticalLog: false,
		EnableVerboseLog:  false,
		EnableConsoleLog:  true,
		ReportCaller:      true,
		CallerPathPrefix:  "github.com/darkkaiser",
	}
}
