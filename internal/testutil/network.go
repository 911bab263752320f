package testutil

import (
	"fmt"
	"net"
	"time"
)

// GetFreePort 테스트 서버 기동에 사용할 수 있는 임의의 빈 포트를 반환합니다.
// 포트를 확보한 리스너는 즉시 닫으므로 반환 직후 다른 프로세스가 선점할 가능성은 있습니다.
func GetFreePort() (int, error) {
	l, err := net.Listen("tcp", "localhost:0")
	if err != nil {
		return 0, err
	}
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port, nil
}

// WaitForServer 서버가 해당 포트에서 연결을 수락할 때까지 폴링하며 대기합니다.
func WaitForServer(port int, timeout time.Duration) error {
	address := fmt.Sprintf("localhost:%d", port)

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		conn, err := net.DialTimeout("tcp", address, 100*time.Millisecond)
		if err == nil {
			conn.Close()
			return nil
		}
		time.Sleep(10 * time.Millisecond)
	}
	return fmt.Errorf("%v 내에 서버가 %s에서 기동되지 않았습니다", timeout, address)
}
