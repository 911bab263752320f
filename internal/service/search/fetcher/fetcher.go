// Package fetcher HTTP 요청 실행을 담당하는 Fetcher 인터페이스와 구현체들을 제공합니다.
//
// 기본 구현체인 HTTPFetcher 위에 재시도, 상태 코드 검증, Content-Type 검증,
// 응답 크기 제한, 로깅 등의 기능을 데코레이터 패턴으로 조합하여 사용합니다.
// 일반적으로는 NewFromConfig를 통해 조합된 체인을 생성합니다.
package fetcher

import (
	"io"
	"net/http"
)

const component = "search.fetcher"

// Fetcher HTTP 요청을 실행하는 인터페이스입니다.
type Fetcher interface {
	// Do HTTP 요청을 실행하고 응답을 반환합니다.
	// 취소 및 타임아웃은 요청에 포함된 Context로 제어합니다.
	Do(req *http.Request) (*http.Response, error)

	// Close 내부 리소스(유휴 커넥션 등)를 정리합니다.
	Close() error
}

// maxDrainBytes 커넥션 재사용을 위해 버리는 응답 본문의 최대 크기입니다.
// 이 크기를 초과하는 본문은 커넥션을 닫는 비용이 더 싸므로 그대로 버려집니다.
const maxDrainBytes = 64 * 1024

// drainAndCloseBody 응답 본문을 비우고 닫습니다.
// 본문을 끝까지 읽어야 커넥션이 재사용될 수 있습니다.
func drainAndCloseBody(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))
	_ = resp.Body.Close()
}
