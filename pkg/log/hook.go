package log

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
)

// hook 로그 레벨에 따라 이벤트를 여러 Writer로 분배합니다.
//
// 라우팅 정책:
//   - Console: 설정된 경우 모든 레벨을 그대로 출력
//   - Critical: ERROR 이상을 별도 기록 (장애 격리)
//   - Verbose: DEBUG 이하를 별도 기록하고 Main으로는 보내지 않음
//   - Main: INFO 이상을 기록 (운영 이력)
type hook struct {
	mainWriter     io.Writer
	criticalWriter io.Writer
	verboseWriter  io.Writer
	consoleWriter  io.Writer

	formatter Formatter

	// 로그 기록(Read Lock)과 종료 처리(Write Lock) 간의 동시성 제어
	mu     sync.RWMutex
	closed bool
}

func (h *hook) Levels() []Level {
	return AllLevels
}

// Fire 발생한 로그 이벤트를 라우팅 정책에 따라 분배합니다.
// 개별 Writer의 쓰기 실패는 나머지 Writer의 기록을 막지 않습니다.
func (h *hook) Fire(entry *Entry) error {
	h.mu.RLock()
	defer h.mu.RUnlock()

	if h.closed {
		return nil
	}

	msg, err := h.formatter.Format(entry)
	if err != nil {
		return err
	}

	var firstErr error

	if h.consoleWriter != nil {
		// 콘솔 쓰기 실패는 파일 기록에 영향을 주지 않도록 에러를 전파하지 않는다.
		if _, err := h.consoleWriter.Write(msg); err != nil {
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-WARN] 표준 출력 쓰기 실패: %v\n", err)
		}
	}

	if entry.Level <= ErrorLevel && h.criticalWriter != nil {
		if _, err := h.criticalWriter.Write(msg); err != nil {
			firstErr = err
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-FAILURE] Critical 로그 파일 쓰기 실패: %v\n", err)
		}
	}

	if entry.Level >= DebugLevel {
		if h.verboseWriter != nil {
			if _, err := h.verboseWriter.Write(msg); err != nil {
				if firstErr == nil {
					firstErr = err
				}
				fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-WARN] Verbose 로그 파일 쓰기 실패: %v\n", err)
			}
		}
		// 상세 로그(Debug/Trace)는 메인 로그에 남기지 않는다.
		return firstErr
	}

	if h.mainWriter != nil {
		if _, err := h.mainWriter.Write(msg); err != nil {
			if firstErr == nil {
				firstErr = err
			}
			fmt.Fprintf(os.Stderr, "[LOG-SYSTEM-FAILURE] Main 로그 파일 쓰기 실패: %v\n", err)
		}
	}

	return firstErr
}

// Close 이후의 모든 로그 기록 요청을 거부합니다.
// 진행 중인 Fire가 끝날 때까지 대기하므로, 파일을 닫기 전에 호출하면 안전합니다.
func (h *hook) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	return nil
}

// closer 로그 파일(Main, Critical, Verbose)의 리소스 해제를 통합 관리합니다.
// Close는 멱등하며, Hook을 먼저 비활성화한 뒤 파일을 닫아 닫힌 파일에 대한
// 쓰기 시도를 방지합니다.
type closer struct {
	closers []io.Closer
	hook    *hook
	closed  int32
}

func (c *closer) Close() error {
	if !atomic.CompareAndSwapInt32(&c.closed, 0, 1) {
		return nil
	}

	if c.hook != nil {
		_ = c.hook.Close()
	}

	var errs error
	for _, cl := range c.closers {
		if cl == nil {
			continue
		}
		// 닫기 전 잔류 버퍼를 디스크에 기록
		if s, ok := cl.(interface{ Sync() error }); ok {
			_ = s.Sync()
		}
		if err := cl.Close(); err != nil {
			errs = errors.Join(errs, err)
		}
	}

	return errs
}
