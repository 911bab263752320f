package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/darkkaiser/product-search-server/internal/service/search/fetcher"
	applog "github.com/darkkaiser/product-search-server/pkg/log"
	"golang.org/x/net/html/charset"
)

const componentScraper = "search.scraper"

// FetchJSON 지정된 URL로 HTTP 요청을 보내 JSON 응답을 가져오고, 지정된 구조체로 디코딩합니다.
func (s *scraper) FetchJSON(ctx context.Context, method, urlStr string, body any, header http.Header, v any) error {
	if v == nil {
		return ErrDecodeTargetNil
	}
	if rv := reflect.ValueOf(v); rv.Kind() != reflect.Ptr || rv.IsNil() {
		return newErrDecodeTargetInvalidType(v)
	}

	logger := applog.WithComponentAndFields(componentScraper, applog.Fields{
		"method": method,
		"url":    urlStr,
	})

	// 요청 본문을 메모리 버퍼로 변환한다. Fetcher가 재시도 시
	// GetBody를 통해 동일한 본문으로 요청을 재구성할 수 있게 하기 위함이다.
	reqBody, err := s.prepareBody(ctx, body)
	if err != nil {
		return err
	}

	if reqBody != nil {
		if header == nil {
			header = make(http.Header)
		} else {
			header = header.Clone() // 호출자의 원본 헤더 보호
		}
		if header.Get("Content-Type") == "" {
			header.Set("Content-Type", "application/json")
		}
	}

	start := time.Now()

	resp, err := s.send(ctx, method, urlStr, reqBody, header)
	if err != nil {
		logger.WithError(err).
			WithField("duration_ms", time.Since(start).Milliseconds()).
			Error("JSON 요청 실패")
		return err
	}
	defer func() {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
	}()

	if err := s.checkResponse(resp, urlStr, logger); err != nil {
		logger.WithError(err).
			WithField("duration_ms", time.Since(start).Milliseconds()).
			Error("JSON 응답 검증 실패")
		return err
	}

	// 204 No Content는 본문이 없는 정상 응답이므로 디코딩을 생략한다.
	if resp.StatusCode == http.StatusNoContent {
		logger.Debug("204 No Content 수신, JSON 파싱 생략")
		return nil
	}

	bodyBytes, truncated, err := s.readLimitedBody(resp.Body)
	if err != nil {
		return newErrReadResponseBody(err)
	}
	if truncated {
		logger.WithField("limit_bytes", s.maxResponseBodySize).
			Error("응답 본문 크기 초과로 JSON 파싱을 중단합니다")
		return newErrJSONTruncated(s.maxResponseBodySize, urlStr)
	}

	if err := s.decodeJSON(bodyBytes, resp.Header.Get("Content-Type"), v, urlStr, logger); err != nil {
		return err
	}

	logger.WithFields(applog.Fields{
		"status_code": resp.StatusCode,
		"body_size":   len(bodyBytes),
		"duration_ms": time.Since(start).Milliseconds(),
	}).Debug("JSON 파싱 완료")

	return nil
}

// prepareBody 요청 본문을 재사용 가능한 io.Reader로 변환합니다.
// io.Reader/string/[]byte 외의 값은 JSON으로 마샬링하며,
// maxRequestBodySize를 초과하는 본문은 거부됩니다.
func (s *scraper) prepareBody(ctx context.Context, body any) (io.Reader, error) {
	if body == nil {
		return nil, nil
	}

	// Typed Nil 방지: 인터페이스에 nil 포인터가 담겨 들어오는 경우
	if val := reflect.ValueOf(body); val.Kind() == reflect.Ptr && val.IsNil() {
		return nil, nil
	}

	switch b := body.(type) {
	case io.Reader:
		if sized, ok := b.(interface{ Len() int }); ok && int64(sized.Len()) > s.maxRequestBodySize {
			return nil, newErrRequestBodyTooLarge(s.maxRequestBodySize)
		}

		// 크기를 알면서 재탐색 가능한 타입은 복사 없이 그대로 전송한다.
		switch b.(type) {
		case *bytes.Buffer, *bytes.Reader, *strings.Reader:
			return b, nil
		}

		if err := ctx.Err(); err != nil {
			return nil, err
		}

		data, err := io.ReadAll(io.LimitReader(b, s.maxRequestBodySize+1))
		if err != nil {
			return nil, newErrReadRequestBody(err)
		}
		if int64(len(data)) > s.maxRequestBodySize {
			return nil, newErrRequestBodyTooLarge(s.maxRequestBodySize)
		}
		return bytes.NewReader(data), nil

	case string:
		if int64(len(b)) > s.maxRequestBodySize {
			return nil, newErrRequestBodyTooLarge(s.maxRequestBodySize)
		}
		return strings.NewReader(b), nil

	case []byte:
		if int64(len(b)) > s.maxRequestBodySize {
			return nil, newErrRequestBodyTooLarge(s.maxRequestBodySize)
		}
		return bytes.NewReader(b), nil

	default:
		jsonBytes, err := json.Marshal(body)
		if err != nil {
			return nil, newErrEncodeJSONBody(err)
		}
		if int64(len(jsonBytes)) > s.maxRequestBodySize {
			return nil, newErrRequestBodyTooLarge(s.maxRequestBodySize)
		}
		return bytes.NewReader(jsonBytes), nil
	}
}

// send HTTP 요청을 생성하여 Fetcher로 전송합니다.
func (s *scraper) send(ctx context.Context, method, urlStr string, body io.Reader, header http.Header) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, urlStr, body)
	if err != nil {
		return nil, newErrCreateHTTPRequest(urlStr, err)
	}

	if header != nil {
		req.Header = header.Clone()
	}
	if req.Header.Get("Accept") == "" {
		req.Header.Set("Accept", "application/json")
	}

	resp, err := s.fetcher.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, newErrHTTPRequestCanceled(urlStr, ctx.Err())
		}
		return nil, newErrNetworkError(urlStr, err)
	}

	return resp, nil
}

// checkResponse 응답의 상태 코드와 Content-Type을 검증합니다.
func (s *scraper) checkResponse(resp *http.Response, urlStr string, logger *applog.Entry) error {
	if resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := fetcher.CheckResponseStatus(resp); err != nil {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return newErrHTTPRequestFailed(urlStr, resp.StatusCode, s.previewBody(snippet, resp.Header.Get("Content-Type")), err)
	}

	contentType := resp.Header.Get("Content-Type")

	// HTML 응답은 잘못된 엔드포인트 호출이나 인증 실패로 에러 페이지가
	// 반환된 경우이므로 디코딩을 시도하지 않고 즉시 실패 처리한다.
	if isHTMLContentType(contentType) {
		return newErrUnexpectedHTMLResponse(urlStr, contentType)
	}

	// 올바른 JSON을 반환하면서 Content-Type 헤더만 잘못 설정하는 API가
	// 실무에 흔하므로, 비표준 Content-Type은 경고만 남기고 파싱을 계속한다.
	if contentType != "" && !strings.Contains(strings.ToLower(contentType), "json") {
		logger.WithFields(applog.Fields{
			"status_code":  resp.StatusCode,
			"content_type": contentType,
		}).Warn("비표준 Content-Type 헤더가 감지되었지만 JSON 파싱을 계속합니다")
	}

	return nil
}

// readLimitedBody 응답 본문을 최대 maxResponseBodySize까지 읽고 초과 여부를 함께 반환합니다.
func (s *scraper) readLimitedBody(r io.Reader) ([]byte, bool, error) {
	data, err := io.ReadAll(io.LimitReader(r, s.maxResponseBodySize+1))
	if err != nil {
		return nil, false, err
	}

	if int64(len(data)) > s.maxResponseBodySize {
		return data[:s.maxResponseBodySize], true, nil
	}
	return data, false, nil
}

// decodeJSON 본문 바이트를 UTF-8로 변환한 후 v로 디코딩합니다.
// 디코딩 성공 후 스트림에 잔여 데이터가 남아있으면 데이터 무결성 오류로 처리합니다.
func (s *scraper) decodeJSON(body []byte, contentType string, v any, urlStr string, logger *applog.Entry) error {
	var reader io.Reader = bytes.NewReader(body)

	// Content-Type의 charset 파라미터를 기반으로 UTF-8 변환 리더를 구성한다.
	if utf8Reader, err := charset.NewReader(bytes.NewReader(body), contentType); err == nil {
		reader = utf8Reader
	} else {
		logger.WithError(err).WithField("content_type", contentType).
			Warn("문자 인코딩 변환 실패, 인코딩 변환 없이 JSON 파싱을 계속합니다")
	}

	decoder := json.NewDecoder(reader)
	if err := decoder.Decode(v); err != nil {
		logger.WithError(err).WithFields(applog.Fields{
			"body_size":    len(body),
			"body_preview": s.previewBody(body, contentType),
			"target_type":  fmt.Sprintf("%T", v),
		}).Error("JSON 데이터 변환 실패, 유효하지 않은 형식")

		return newErrJSONParseFailed(urlStr, err)
	}

	// 첫 번째 JSON 값 뒤에 데이터가 더 있으면(에러 페이지 꼬리, 연속된 JSON 객체 등)
	// 서버측 데이터 무결성 문제이므로 명시적으로 실패 처리한다.
	if _, err := decoder.Token(); err != io.EOF {
		offset := int(decoder.InputOffset())
		contextEnd := min(offset+30, len(body))

		logger.WithFields(applog.Fields{
			"offset":          offset,
			"context_snippet": string(body[max(offset-30, 0):contextEnd]),
		}).Error("JSON 데이터 뒤에 불필요한 잔여 데이터가 감지되었습니다")

		return newErrJSONUnexpectedToken(urlStr)
	}

	return nil
}

// previewBody 로깅을 위해 본문 앞부분을 UTF-8로 정제하여 반환합니다.
func (s *scraper) previewBody(body []byte, contentType string) string {
	const maxPeekSize = 1024

	if len(body) == 0 {
		return ""
	}

	data := body
	if len(data) > maxPeekSize {
		data = data[:maxPeekSize]
	}

	if r, err := charset.NewReader(bytes.NewReader(data), contentType); err == nil {
		if decoded, err := io.ReadAll(r); err == nil || len(decoded) > 0 {
			data = decoded
		}
	}
	if len(data) > maxPeekSize {
		data = data[:maxPeekSize]
	}

	// 잘린 멀티바이트 문자로 끝부분이 깨질 수 있으므로 유효하지 않은 시퀀스는 제거한다.
	preview := strings.ToValidUTF8(string(data), "")

	for _, r := range preview {
		if r < 32 && r != '\t' && r != '\n' && r != '\r' {
			return fmt.Sprintf("[Binary Data] (%d bytes)", len(body))
		}
	}

	if len(body) > len(preview) {
		return preview + "...(truncated)"
	}
	return preview
}

// isHTMLContentType 주어진 Content-Type이 HTML 형식인지 판단합니다.
// 표준 파싱에 실패하는 비표준 헤더는 접두사 매칭으로 관대하게 처리합니다.
func isHTMLContentType(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err == nil {
		return mediaType == "text/html" || mediaType == "application/xhtml+xml"
	}

	lowerType := strings.ToLower(strings.TrimSpace(contentType))
	return strings.HasPrefix(lowerType, "text/html") || strings.HasPrefix(lowerType, "application/xhtml+xml")
}
