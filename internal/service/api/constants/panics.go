package constants

// 시스템 시작/구동 시 발생할 수 있는 크리티컬한 패닉 메시지 상수입니다.
const (
	// PanicMsgAppConfigRequired 패닉 메시지: AppConfig 필수
	PanicMsgAppConfigRequired = "AppConfig는 필수입니다"

	// PanicMsgCatalogRequired 패닉 메시지: 상품 카탈로그 필수
	PanicMsgCatalogRequired = "ProductCatalog는 필수입니다"

	// PanicMsgHealthCheckerRequired 패닉 메시지: HealthChecker 필수
	PanicMsgHealthCheckerRequired = "HealthChecker는 필수입니다"

	// PanicMsgRateLimitRequestsPerSecondInvalid 패닉 메시지: requestsPerSecond 설정 오류
	PanicMsgRateLimitRequestsPerSecondInvalid = "RateLimit: requestsPerSecond는 양수여야 합니다 (현재값: %d)"

	// PanicMsgRateLimitBurstInvalid 패닉 메시지: burst 설정 오류
	PanicMsgRateLimitBurstInvalid = "RateLimit: burst는 양수여야 합니다 (현재값: %d)"

	// PanicMsgDeprecatedEndpointEmpty 패닉 메시지: 대체 엔드포인트 비어있음
	PanicMsgDeprecatedEndpointEmpty = "DeprecatedEndpoint: 대체 엔드포인트 경로가 비어있습니다"

	// PanicMsgDeprecatedEndpointInvalidPrefix 패닉 메시지: 대체 엔드포인트 접두사 오류
	PanicMsgDeprecatedEndpointInvalidPrefix = "DeprecatedEndpoint: 대체 엔드포인트 경로는 '/'로 시작해야 합니다 (현재값: %s)"
)
