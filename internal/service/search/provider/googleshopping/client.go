package googleshopping

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/time/rate"

	apperrors "github.com/darkkaiser/product-search-server/internal/pkg/errors"
	"github.com/darkkaiser/product-search-server/internal/service/search/fetcher"
	"github.com/darkkaiser/product-search-server/internal/service/search/location"
	"github.com/darkkaiser/product-search-server/internal/service/search/scraper"
	applog "github.com/darkkaiser/product-search-server/pkg/log"
)

const (
	// DefaultBaseURL 검색 제공자(SerpAPI)의 기본 엔드포인트입니다.
	//
	// 공식 문서: https://serpapi.com/search-api
	// 인증 방식: 쿼리 매개변수 api_key에 발급받은 키를 포함해야 합니다.
	DefaultBaseURL = "https://serpapi.com/search.json"

	// searchEngine 상품 목록 검색에 사용하는 제공자 엔진 이름입니다.
	searchEngine = "google_shopping"

	// productEngine 상품 상세(판매자 목록) 조회에 사용하는 제공자 엔진 이름입니다.
	productEngine = "google_product"
)

// Config 검색 제공자 클라이언트의 설정값입니다.
type Config struct {
	// BaseURL 검색 제공자 엔드포인트입니다. 빈 문자열이면 DefaultBaseURL이 사용됩니다.
	BaseURL string

	// APIKey 검색 제공자가 발급한 인증 키입니다.
	APIKey string

	// RequestsPerSecond 제공자 호출의 초당 최대 요청 수입니다.
	// 0 이하이면 호출 속도를 제한하지 않습니다.
	RequestsPerSecond float64
}

// validate 설정값의 유효성을 검증하고 기본값을 채웁니다.
func (c *Config) validate() error {
	c.BaseURL = strings.TrimSpace(c.BaseURL)
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if _, err := url.Parse(c.BaseURL); err != nil {
		return apperrors.Wrapf(err, apperrors.InvalidInput, "base_url이 유효한 URL이 아닙니다 (입력값: %q)", c.BaseURL)
	}

	c.APIKey = strings.TrimSpace(c.APIKey)
	if c.APIKey == "" {
		return ErrAPIKeyMissing
	}

	return nil
}

// Client 검색 제공자 API 클라이언트입니다.
//
// 모든 메서드는 요청 1건당 제공자 호출 1회를 수행하며, 내부에서 재시도하지 않습니다.
// 응답 형식의 세대 판별과 정식 레코드로의 변환까지 이 클라이언트의 책임입니다.
type Client struct {
	scraper scraper.JSONScraper
	baseURL string
	apiKey  string

	// limiter 제공자 호출 속도를 제한합니다. nil이면 제한하지 않습니다.
	limiter *rate.Limiter
}

// NewClient 주어진 Fetcher 위에서 동작하는 검색 제공자 클라이언트를 생성합니다.
func NewClient(f fetcher.Fetcher, cfg Config) (*Client, error) {
	if f == nil {
		panic("fetcher는 nil일 수 없습니다")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	client := &Client{
		scraper: scraper.New(f),
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
	}
	if cfg.RequestsPerSecond > 0 {
		client.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	return client, nil
}

// SearchProducts 검색어와 시장으로 상품 목록을 조회합니다.
//
// 응답의 상품 목록은 제공자가 반환한 순서 그대로 정식 레코드로 변환됩니다.
// 한 건이라도 응답 형식을 판별할 수 없으면 전체 요청이 실패합니다.
//
// 매개변수:
//   - ctx: 타임아웃 및 외부 취소 신호를 전파하기 위한 컨텍스트
//   - query: 검색할 상품 키워드
//   - loc: 검색 대상 시장 (시장별 제공자 매개변수 결정에 사용)
func (c *Client) SearchProducts(ctx context.Context, query string, loc location.Location) ([]*Product, error) {
	params := url.Values{
		"engine": []string{searchEngine},
		"q":      []string{query},
	}

	payload, err := c.fetch(ctx, params, loc)
	if err != nil {
		return nil, err
	}

	results := payload.Get("shopping_results")
	if !results.IsArray() {
		return nil, apperrors.New(apperrors.ParsingFailed, "검색 응답에 shopping_results 목록이 없습니다")
	}

	products, err := adaptProducts(results.Array())
	if err != nil {
		return nil, err
	}

	applog.WithComponent(component).WithContext(ctx).WithFields(applog.Fields{
		"query":    query,
		"location": loc.String(),
		"products": len(products),
	}).Debug("상품 검색 완료")

	return products, nil
}

// ProductOffers 상품 식별자로 상품 상세와 전체 판매자 목록을 조회합니다.
//
// 매개변수:
//   - ctx: 타임아웃 및 외부 취소 신호를 전파하기 위한 컨텍스트
//   - productID: 검색 제공자가 부여한 상품 고유 식별자
//   - loc: 검색 대상 시장
func (c *Client) ProductOffers(ctx context.Context, productID string, loc location.Location) (*ProductDetail, error) {
	if strings.TrimSpace(productID) == "" {
		return nil, apperrors.New(apperrors.InvalidInput, "product_id가 입력되지 않았거나 공백입니다")
	}

	params := url.Values{
		"engine":     []string{productEngine},
		"product_id": []string{productID},
		"offers":     []string{"1"},
	}

	payload, err := c.fetch(ctx, params, loc)
	if err != nil {
		return nil, err
	}

	detail, err := adaptProductDetail(payload)
	if err != nil {
		return nil, err
	}
	if detail.ID == "" {
		detail.ID = productID
	}

	applog.WithComponent(component).WithContext(ctx).WithFields(applog.Fields{
		"product_id": productID,
		"location":   loc.String(),
		"sellers":    len(detail.Sellers),
	}).Debug("상품 판매자 목록 조회 완료")

	return detail, nil
}

// fetch 공통 매개변수(시장별 매개변수, 인증 키)를 결합하여 제공자 API를 1회 호출하고,
// 응답 본문을 세대 판별이 가능한 형태(gjson.Result)로 반환합니다.
//
// 제공자가 응답 본문에 에러 메시지를 담아 반환하는 경우(HTTP 200이더라도)
// 해당 메시지를 에러로 변환하여 호출자에게 전파합니다.
func (c *Client) fetch(ctx context.Context, params url.Values, loc location.Location) (gjson.Result, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return gjson.Result{}, apperrors.Wrap(err, apperrors.Timeout, "제공자 호출 속도 제한 대기 중 요청이 취소되었습니다")
		}
	}

	providerParams := loc.ProviderParams()
	params.Set("google_domain", providerParams.GoogleDomain)
	params.Set("gl", providerParams.CountryCode)
	params.Set("hl", providerParams.LanguageCode)
	params.Set("location", providerParams.CanonicalName)
	params.Set("api_key", c.apiKey)

	var raw json.RawMessage
	if err := c.scraper.FetchJSON(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil, nil, &raw); err != nil {
		return gjson.Result{}, apperrors.Wrap(err, apperrors.Unavailable, "검색 제공자 호출에 실패했습니다")
	}

	payload := gjson.ParseBytes(raw)
	if errMsg := payload.Get("error"); errMsg.Exists() {
		return gjson.Result{}, apperrors.Newf(apperrors.ExecutionFailed, "검색 제공자가 에러를 반환했습니다: %s", errMsg.String())
	}

	return payload, nil
}
