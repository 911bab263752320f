package fetcher

import (
	"net/http"
	"net/url"
	"strings"
)

// redactedValue 민감한 값 대신 기록되는 문자열입니다.
const redactedValue = "xxxxx"

// sensitiveQueryKeys 로그와 에러 메시지에서 값을 가려야 하는 쿼리 파라미터 목록입니다.
var sensitiveQueryKeys = []string{
	"api_key",
	"app_key",
	"password",
	"token",
	"secret",
}

// sensitiveHeaderKeys 값을 가려야 하는 요청/응답 헤더 목록입니다.
var sensitiveHeaderKeys = map[string]struct{}{
	"authorization":       {},
	"proxy-authorization": {},
	"cookie":              {},
	"set-cookie":          {},
	"x-api-key":           {},
}

// isSensitiveKey 쿼리 파라미터 키가 민감한 정보인지 판단합니다.
func isSensitiveKey(key string) bool {
	lower := strings.ToLower(key)
	for _, sensitive := range sensitiveQueryKeys {
		if lower == sensitive || strings.HasSuffix(lower, "_"+sensitive) {
			return true
		}
	}
	return false
}

// redactURL URL의 민감한 쿼리 파라미터 값을 가립니다.
func redactURL(u *url.URL) string {
	if u == nil {
		return ""
	}

	query := u.Query()
	changed := false
	for key := range query {
		if isSensitiveKey(key) {
			query.Set(key, redactedValue)
			changed = true
		}
	}
	if !changed {
		return u.String()
	}

	redacted := *u
	redacted.RawQuery = query.Encode()
	return redacted.String()
}

// redactRawURL URL 문자열의 민감한 쿼리 파라미터 값을 가립니다.
// 파싱할 수 없는 URL은 원본 그대로 반환합니다.
func redactRawURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	return redactURL(u)
}

// redactHeaders 민감한 헤더 값을 가린 복사본을 반환합니다.
func redactHeaders(header http.Header) http.Header {
	if header == nil {
		return nil
	}

	redacted := header.Clone()
	for key := range redacted {
		if _, ok := sensitiveHeaderKeys[strings.ToLower(key)]; ok {
			redacted[key] = []string{redactedValue}
		}
	}
	return redacted
}
