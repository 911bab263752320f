package constants

// HTTP 헤더 키 상수입니다.
const (
	// HeaderWarning RFC 7234 표준 Warning 헤더 (deprecated 엔드포인트 경고용)
	HeaderWarning = "Warning"

	// HeaderXAPIDeprecated deprecated 상태 표시용 커스텀 헤더
	HeaderXAPIDeprecated = "X-API-Deprecated"

	// HeaderXAPIDeprecatedReplacement 대체 엔드포인트 표시용 커스텀 헤더
	HeaderXAPIDeprecatedReplacement = "X-API-Deprecated-Replacement"
)

// SensitiveQueryParams 로그 기록 시 마스킹 처리해야 할 쿼리 파라미터 목록입니다.
var SensitiveQueryParams = []string{
	"api_key",
	"app_key",
	"password",
	"token",
	"secret",
}
