package service

import (
	"context"
	"sync"
)

// Service 애플리케이션을 구성하는 장기 실행 서비스들의 공통 생명주기 인터페이스입니다.
//
// Start는 서비스 시작에 실패하면 에러를 반환하며, 정상적으로 시작된 서비스는
// serviceStopCtx가 취소될 때까지 동작한 후 serviceStopWG.Done()을 호출해야 합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
