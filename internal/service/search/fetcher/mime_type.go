package fetcher

import (
	"mime"
	"net/http"
	"strings"

	apperrors "github.com/darkkaiser/product-search-server/internal/pkg/errors"
)

// ErrMissingResponseContentType 응답에 Content-Type 헤더가 없을 때 반환되는 에러입니다.
var ErrMissingResponseContentType = apperrors.New(apperrors.ParsingFailed, "응답에 Content-Type 헤더가 없습니다.")

// MimeTypeFetcher 응답의 Content-Type이 허용 목록에 포함되는지 검증하는 Fetcher입니다.
// 허용되지 않은 미디어 타입의 응답은 본문을 버리고 에러를 반환합니다.
type MimeTypeFetcher struct {
	next             Fetcher
	allowedMimeTypes map[string]struct{}
}

// NewMimeTypeFetcher 새로운 MimeTypeFetcher를 생성합니다.
// allowedMimeTypes는 "application/json"과 같은 미디어 타입 목록이며, 비어있으면 panic이 발생합니다.
func NewMimeTypeFetcher(next Fetcher, allowedMimeTypes []string) *MimeTypeFetcher {
	if len(allowedMimeTypes) == 0 {
		panic("허용 미디어 타입 목록은 필수입니다")
	}

	allowed := make(map[string]struct{}, len(allowedMimeTypes))
	for _, mimeType := range allowedMimeTypes {
		allowed[strings.ToLower(strings.TrimSpace(mimeType))] = struct{}{}
	}
	return &MimeTypeFetcher{
		next:             next,
		allowedMimeTypes: allowed,
	}
}

func (f *MimeTypeFetcher) Do(req *http.Request) (*http.Response, error) {
	resp, err := f.next.Do(req)
	if err != nil {
		return nil, err
	}

	// 본문이 없는 응답은 미디어 타입을 검증하지 않습니다.
	if resp.StatusCode == http.StatusNoContent {
		return resp, nil
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		drainAndCloseBody(resp)
		return nil, ErrMissingResponseContentType
	}

	if _, ok := f.allowedMimeTypes[parseMediaType(contentType)]; !ok {
		drainAndCloseBody(resp)
		return nil, apperrors.Newf(apperrors.ParsingFailed, "허용되지 않은 Content-Type입니다. (Content-Type:%s)", contentType)
	}
	return resp, nil
}

func (f *MimeTypeFetcher) Close() error {
	return f.next.Close()
}

// parseMediaType Content-Type 헤더에서 미디어 타입만 추출합니다.
// 파싱에 실패하면 파라미터 구분자 앞부분을 소문자로 변환하여 반환합니다.
func parseMediaType(contentType string) string {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType, _, _ = strings.Cut(contentType, ";")
		return strings.ToLower(strings.TrimSpace(mediaType))
	}
	return mediaType
}
