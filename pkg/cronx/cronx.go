// Package cronx 애플리케이션 표준 Cron 표현식 파서와 검증 헬퍼를 제공합니다.
package cronx

import (
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
)

// StandardParser 초 단위를 포함하는 6필드 확장 형식의 Cron 파서를 반환합니다.
// 표준 5필드 형식은 지원하지 않습니다.
//
// 필드 순서: [초] [분] [시] [일] [월] [요일]. @daily, @every <duration> 등의
// Descriptor도 지원합니다.
//
// 예: "5 0 0 * * *"는 매일 자정 5초에 실행됩니다. (환율 테이블 사전 갱신 기본값)
func StandardParser() cron.Parser {
	return cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
}

// Validate 주어진 Cron 표현식이 StandardParser로 해석 가능한지 검증합니다.
// 표현식 앞뒤의 공백은 무시됩니다.
func Validate(spec string) error {
	if _, err := StandardParser().Parse(strings.TrimSpace(spec)); err != nil {
		return fmt.Errorf("Cron 표현식 파싱 실패: %w", err)
	}
	return nil
}
