// Package system 헬스체크와 버전 조회 엔드포인트의 응답 모델을 정의합니다.
package system

// HealthResponse 서버 헬스체크 응답
type HealthResponse struct {
	// 전체 헬스체크 상태: healthy, unhealthy
	Status string `json:"status" example:"healthy"`
	// 서버 가동 시간(초)
	Uptime int64 `json:"uptime" example:"3600"`
	// 외부 의존성별 헬스체크 결과 (키: 의존성 이름, 예: exchange_rate_feed)
	Dependencies map[string]DependencyStatus `json:"dependencies,omitempty"`
}

// DependencyStatus 외부 의존성 헬스체크 결과
type DependencyStatus struct {
	// 헬스체크 상태: healthy, unhealthy, unknown
	Status string `json:"status" example:"healthy"`
	// 응답 지연시간(ms)
	LatencyMs int64 `json:"latency_ms,omitempty" example:"5"`
	// 상태 상세 정보 또는 에러 메시지 (예: 환율 테이블 기준일)
	Message string `json:"message,omitempty" example:"2026-09-01 환율 테이블 적용 중"`
}

// VersionResponse 서버 버전 정보 응답
type VersionResponse struct {
	// Git 커밋 해시 (short)
	Version string `json:"version" example:"abc1234"`
	// 빌드 시간(UTC, RFC3339)
	BuildDate string `json:"build_date" example:"2026-09-01T14:00:00Z"`
	// CI/CD 빌드 번호
	BuildNumber string `json:"build_number" example:"100"`
	// 컴파일러 버전
	GoVersion string `json:"go_version" example:"go1.24.0"`
}
