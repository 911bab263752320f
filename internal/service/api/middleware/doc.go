// Package middleware 상품 검색 API 서버의 Echo 미들웨어를 제공합니다.
//
//   - HTTPLogger: 요청/응답 로깅 (민감한 쿼리 파라미터 마스킹)
//   - RateLimit: IP 단위 요청 속도 제한
//   - PanicRecovery: 패닉 복구 및 에러 로깅
//   - DeprecatedEndpoint: 레거시 검색 엔드포인트 경고 헤더
//   - Logger: Echo 로거를 애플리케이션 로거로 연결하는 어댑터
package middleware
