// Package validation 설정값 검증에 사용하는 형식 검사 함수를 제공합니다.
package validation

import (
	"fmt"
	"net"
	"strconv"
	"strings"
)

// ValidateCORSOrigin 문자열이 유효한 CORS Origin('Scheme://Host[:Port]' 또는 '*')인지 검증합니다.
//
// 규칙:
//   - '*'(모든 출처 허용)는 유효합니다.
//   - 스키마는 http 또는 https만 허용됩니다.
//   - 경로, 쿼리, 프래그먼트, 사용자 자격 증명은 포함할 수 없습니다.
//   - 호스트는 localhost, IP 주소, 또는 RFC 1123 도메인명이어야 합니다.
func ValidateCORSOrigin(origin string) error {
	trimmed := strings.TrimSpace(origin)
	if trimmed == "*" {
		return nil
	}
	if trimmed == "" {
		return fmt.Errorf("CORS Origin은 비어있을 수 없습니다")
	}
	if strings.HasSuffix(trimmed, "/") {
		return fmt.Errorf("CORS Origin은 경로 구분자('/')로 끝날 수 없습니다 (input=%q)", trimmed)
	}

	scheme, rest, found := strings.Cut(trimmed, "://")
	if !found {
		return fmt.Errorf("CORS Origin은 'Scheme://Host[:Port]' 형식이어야 합니다 (input=%q)", trimmed)
	}
	if scheme != "http" && scheme != "https" {
		return fmt.Errorf("CORS Origin 스키마는 'http' 또는 'https'만 허용됩니다 (input=%q)", trimmed)
	}
	if strings.ContainsAny(rest, "/?#") {
		return fmt.Errorf("CORS Origin은 경로, 쿼리, 프래그먼트를 포함할 수 없습니다 (input=%q)", trimmed)
	}
	if strings.Contains(rest, "@") {
		return fmt.Errorf("CORS Origin은 사용자 자격 증명을 포함할 수 없습니다 (input=%q)", trimmed)
	}

	host, portStr := splitHostPort(rest)
	if portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return fmt.Errorf("CORS Origin 포트 번호가 유효하지 않습니다 (input=%q, port=%s)", trimmed, portStr)
		}
		if err := ValidatePort(port); err != nil {
			return fmt.Errorf("CORS Origin 포트 오류: %w (input=%q)", err, trimmed)
		}
	}

	if host == "" {
		return fmt.Errorf("CORS Origin에 호스트 정보가 누락되었습니다 (input=%q)", trimmed)
	}
	if err := ValidateHostname(host); err != nil {
		return fmt.Errorf("CORS Origin 호스트 유효성 검증 실패: %w", err)
	}

	return nil
}

// splitHostPort "host[:port]"를 분리합니다. IPv6 리터럴([::1]:8080)도 처리합니다.
func splitHostPort(s string) (host, port string) {
	if strings.HasPrefix(s, "[") {
		// IPv6: 닫는 대괄호까지가 호스트
		end := strings.Index(s, "]")
		if end == -1 {
			return s, ""
		}
		host = s[1:end]
		if rest := s[end+1:]; strings.HasPrefix(rest, ":") {
			port = rest[1:]
		}
		return host, port
	}

	if idx := strings.LastIndex(s, ":"); idx != -1 {
		return s[:idx], s[idx+1:]
	}
	return s, ""
}

// ValidatePort 포트 번호가 유효한 범위(1-65535) 내에 있는지 검증합니다.
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("유효한 포트 범위(1-65535)가 아닙니다 (port=%d)", port)
	}
	return nil
}

// ValidateHostname 호스트명이 localhost, IP 주소, 또는 RFC 1123 도메인명인지 검증합니다.
//
// 도메인명 규칙: 전체 최대 253자, 점으로 구분된 각 레이블은 1~63자의
// 영문/숫자/하이픈이며 하이픈으로 시작하거나 끝날 수 없고, TLD는 숫자로만
// 구성될 수 없습니다.
func ValidateHostname(host string) error {
	if host == "localhost" {
		return nil
	}
	if ip := net.ParseIP(host); ip != nil {
		return nil
	}

	if len(host) > 253 {
		return fmt.Errorf("호스트명 전체 길이는 253자를 초과할 수 없습니다 (len=%d)", len(host))
	}

	labels := strings.Split(host, ".")
	for _, label := range labels {
		if len(label) == 0 {
			return fmt.Errorf("호스트명에 빈 레이블(연속된 점 등)이 포함되어 있습니다 (host=%q)", host)
		}
		if len(label) > 63 {
			return fmt.Errorf("각 레이블은 63자를 초과할 수 없습니다 (label=%q)", label)
		}
		if label[0] == '-' || label[len(label)-1] == '-' {
			return fmt.Errorf("레이블은 하이픈(-)으로 시작하거나 끝날 수 없습니다 (label=%q)", label)
		}
		for _, r := range label {
			valid := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '-'
			if !valid {
				return fmt.Errorf("호스트명은 영문, 숫자, 하이픈(-)으로만 구성되어야 합니다 (invalid_char=%q, host=%q)", r, host)
			}
		}
	}

	// RFC 1123: TLD는 숫자로만 구성될 수 없다.
	lastLabel := labels[len(labels)-1]
	allNumeric := true
	for _, r := range lastLabel {
		if r < '0' || r > '9' {
			allNumeric = false
			break
		}
	}
	if allNumeric {
		return fmt.Errorf("최상위 도메인(TLD)은 숫자로만 구성될 수 없습니다 (tld=%q)", lastLabel)
	}

	return nil
}
