// Package concurrency 키 단위 동기화 프리미티브를 제공합니다.
package concurrency

import "sync"

// KeyedMutex 키별로 독립적인 뮤텍스를 제공합니다. 서로 다른 키에 대한
// 작업은 병렬로 진행되며, 같은 키에 대한 작업만 직렬화됩니다.
// 대기자가 없어진 키의 뮤텍스는 맵에서 제거되므로 키 공간이 계속 늘어나도
// 메모리가 누적되지 않습니다.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	mu      sync.Mutex
	waiters int
}

// NewKeyedMutex 새로운 KeyedMutex를 생성합니다.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*keyLock)}
}

// Lock 지정된 키에 대한 락을 획득합니다.
func (km *KeyedMutex) Lock(key string) {
	km.mu.Lock()
	l, ok := km.locks[key]
	if !ok {
		l = &keyLock{}
		km.locks[key] = l
	}
	l.waiters++
	km.mu.Unlock()

	l.mu.Lock()
}

// Unlock 지정된 키에 대한 락을 해제합니다.
// Lock 없이 호출하면 패닉이 발생합니다.
func (km *KeyedMutex) Unlock(key string) {
	km.mu.Lock()
	defer km.mu.Unlock()

	l, ok := km.locks[key]
	if !ok {
		panic("잠기지 않은 KeyedMutex의 잠금 해제 시도")
	}

	l.mu.Unlock()

	l.waiters--
	if l.waiters <= 0 {
		delete(km.locks, key)
	}
}

// Len 현재 활성화된(락이 잡혀있거나 대기 중인) 키의 개수를 반환합니다.
func (km *KeyedMutex) Len() int {
	km.mu.Lock()
	defer km.mu.Unlock()
	return len(km.locks)
}
