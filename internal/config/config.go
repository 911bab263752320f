package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	apperrors "github.com/darkkaiser/product-search-server/internal/pkg/errors"
	"github.com/darkkaiser/product-search-server/internal/service/exchange"
	"github.com/darkkaiser/product-search-server/internal/service/search/provider/googleshopping"
	"github.com/darkkaiser/product-search-server/pkg/cronx"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "product-search-server"

	// DefaultFilename 애플리케이션 초기화 시 참조하는 기본 설정 파일명입니다.
	// 실행 인자를 통해 명시적인 경로가 제공되지 않을 경우, 시스템은 이 파일을 탐색하여 구성을 로드합니다.
	DefaultFilename = AppName + ".json"

	// envPrefix 설정을 덮어쓰는 환경 변수의 접두사입니다.
	envPrefix = "PSEARCH_"

	// ------------------------------------------------------------------------------------------------
	// 외부 연동 기본값
	// ------------------------------------------------------------------------------------------------

	// DefaultFetchTimeout 외부 API(검색 제공자, 환율 피드) 호출의 기본 타임아웃입니다.
	DefaultFetchTimeout = "10s"

	// DefaultPrewarmTimeSpec 환율 테이블 사전 적재 스케줄의 기본값입니다. (매일 00:00:05)
	// 날짜가 바뀐 직후 첫 요청이 환율 피드 호출을 기다리지 않도록 자정 직후로 설정합니다.
	DefaultPrewarmTimeSpec = "5 0 0 * * *"
)

// AppConfig 애플리케이션의 모든 설정을 관장하는 최상위 루트 구조체
type AppConfig struct {
	Debug          bool                 `json:"debug"`
	SearchProvider SearchProviderConfig `json:"search_provider"`
	ExchangeFeed   ExchangeFeedConfig   `json:"exchange_feed"`
	SearchAPI      SearchAPIConfig      `json:"search_api"`
}

// validate 설정 파일 로드 직후, 각 설정 항목의 정합성과 필수 값의 유효성을 검증합니다.
func (c *AppConfig) validate() error {
	if err := c.SearchProvider.validate(); err != nil {
		return err
	}

	if err := c.ExchangeFeed.validate(); err != nil {
		return err
	}

	if err := c.SearchAPI.validate(); err != nil {
		return err
	}

	return nil
}

// VerifyRecommendations 서비스 운영의 안정성과 보안을 위해 권장되는 설정 준수 여부를 진단합니다.
// 강제적인 에러를 발생시키지는 않으나, 잠재적 위험 요소(예: Well-known Port 사용)에 대한 경고 메시지를 반환합니다.
func (c *AppConfig) VerifyRecommendations() []string {
	return c.SearchAPI.VerifyRecommendations()
}

// SearchProviderConfig 검색 제공자(SerpAPI) 연동 설정 구조체
type SearchProviderConfig struct {
	// BaseURL 검색 제공자 엔드포인트입니다. 비어 있으면 제공자 기본 엔드포인트가 사용됩니다.
	BaseURL string `json:"base_url"`

	// APIKey 검색 제공자가 발급한 인증 키입니다.
	APIKey string `json:"api_key"`

	// FetchTimeout 제공자 호출 1회의 타임아웃입니다. (예: "10s")
	FetchTimeout string `json:"fetch_timeout"`

	// RequestsPerSecond 제공자 호출의 초당 최대 요청 수입니다. 0 이하이면 제한하지 않습니다.
	RequestsPerSecond float64 `json:"requests_per_second"`
}

func (c *SearchProviderConfig) validate() error {
	if strings.TrimSpace(c.APIKey) == "" {
		return apperrors.New(apperrors.InvalidInput, "검색 제공자의 API 키(api_key)가 설정되지 않았습니다")
	}

	if _, err := time.ParseDuration(c.FetchTimeout); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("검색 제공자 호출 타임아웃(fetch_timeout) 설정이 올바르지 않습니다: '%s' (예: 10s, 500ms)", c.FetchTimeout))
	}

	return nil
}

// Timeout 제공자 호출 타임아웃을 time.Duration으로 반환합니다.
// validate를 통과한 설정에서만 호출되어야 합니다.
func (c *SearchProviderConfig) Timeout() time.Duration {
	d, _ := time.ParseDuration(c.FetchTimeout)
	return d
}

// ClientConfig 검색 제공자 클라이언트가 요구하는 설정 형태로 변환합니다.
func (c *SearchProviderConfig) ClientConfig() googleshopping.Config {
	return googleshopping.Config{
		BaseURL:           c.BaseURL,
		APIKey:            c.APIKey,
		RequestsPerSecond: c.RequestsPerSecond,
	}
}

// ExchangeFeedConfig 환율 피드 연동 및 환율 테이블 사전 적재 설정 구조체
type ExchangeFeedConfig struct {
	// FeedURL 환율 피드 엔드포인트입니다. 비어 있으면 피드 기본 엔드포인트가 사용됩니다.
	FeedURL string `json:"feed_url"`

	// FetchTimeout 피드 호출 1회의 타임아웃입니다. (예: "10s")
	FetchTimeout string `json:"fetch_timeout"`

	// Prewarm 날짜가 바뀐 직후 환율 테이블을 미리 적재하는 스케줄 설정입니다.
	Prewarm struct {
		Runnable bool   `json:"runnable"`
		TimeSpec string `json:"time_spec"`
	} `json:"prewarm"`
}

func (c *ExchangeFeedConfig) validate() error {
	if _, err := time.ParseDuration(c.FetchTimeout); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("환율 피드 호출 타임아웃(fetch_timeout) 설정이 올바르지 않습니다: '%s' (예: 10s, 500ms)", c.FetchTimeout))
	}

	if c.Prewarm.Runnable {
		if err := cronx.Validate(c.Prewarm.TimeSpec); err != nil {
			return apperrors.Wrap(err, apperrors.InvalidInput, "환율 테이블 사전 적재 스케줄(prewarm.time_spec) 설정이 유효하지 않습니다")
		}
	}

	return nil
}

// Timeout 피드 호출 타임아웃을 time.Duration으로 반환합니다.
// validate를 통과한 설정에서만 호출되어야 합니다.
func (c *ExchangeFeedConfig) Timeout() time.Duration {
	d, _ := time.ParseDuration(c.FetchTimeout)
	return d
}

// ResolvedFeedURL 환율 피드 엔드포인트를 반환합니다. 설정이 비어 있으면 기본값을 사용합니다.
func (c *ExchangeFeedConfig) ResolvedFeedURL() string {
	if strings.TrimSpace(c.FeedURL) == "" {
		return exchange.DefaultFeedURL
	}
	return c.FeedURL
}

// SearchAPIConfig 추천 상품 조회를 위한 REST API 서버 설정 구조체
type SearchAPIConfig struct {
	WS   WSConfig   `json:"ws"`
	CORS CORSConfig `json:"cors"`
}

func (c *SearchAPIConfig) validate() error {
	if err := c.WS.validate(); err != nil {
		return err
	}

	if err := c.CORS.validate(); err != nil {
		return err
	}

	return nil
}

func (c *SearchAPIConfig) VerifyRecommendations() []string {
	return c.WS.VerifyRecommendations()
}

// WSConfig 웹서버의 포트 및 TLS(HTTPS) 보안 설정을 정의하는 구조체
type WSConfig struct {
	TLSServer   bool   `json:"tls_server"`
	TLSCertFile string `json:"tls_cert_file" validate:"required_if=TLSServer true,omitempty,file"`
	TLSKeyFile  string `json:"tls_key_file" validate:"required_if=TLSServer true,omitempty,file"`
	ListenPort  int    `json:"listen_port" validate:"min=1,max=65535"`
}

func (c *WSConfig) validate() error {
	if err := validate.Struct(c); err != nil {
		// Validator 에러를 사용자 친화적인 메시지로 변환한다.
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range validationErrors {
				switch fieldErr.StructField() {
				case "ListenPort":
					return apperrors.New(apperrors.InvalidInput, "웹 서버 포트(listen_port)는 1에서 65535 사이의 값이어야 합니다")
				case "TLSCertFile":
					switch fieldErr.Tag() {
					case "required_if":
						return apperrors.New(apperrors.InvalidInput, "TLS 서버 활성화 시 인증서 파일 경로(tls_cert_file)는 필수입니다")
					case "file":
						return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("지정된 TLS 인증서 파일(tls_cert_file)을 찾을 수 없습니다: '%v'", fieldErr.Value()))
					default:
						return apperrors.New(apperrors.InvalidInput, "TLS 인증서 파일 경로(tls_cert_file) 설정이 올바르지 않습니다")
					}
				case "TLSKeyFile":
					switch fieldErr.Tag() {
					case "required_if":
						return apperrors.New(apperrors.InvalidInput, "TLS 서버 활성화 시 키 파일 경로(tls_key_file)는 필수입니다")
					case "file":
						return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("지정된 TLS 키 파일(tls_key_file)을 찾을 수 없습니다: '%v'", fieldErr.Value()))
					default:
						return apperrors.New(apperrors.InvalidInput, "TLS 키 파일 경로(tls_key_file) 설정이 올바르지 않습니다")
					}
				}
			}
		}
		return apperrors.Wrap(err, apperrors.InvalidInput, "웹 서버 설정 검증 중 알 수 없는 오류가 발생했습니다")
	}

	return nil
}

func (c *WSConfig) VerifyRecommendations() []string {
	var warnings []string

	// 시스템 예약 포트(1024 미만) 사용 경고
	if c.ListenPort < 1024 {
		warnings = append(warnings, fmt.Sprintf("시스템 예약 포트(1-1023)를 사용하도록 설정되었습니다(port: %d). 이 경우 서버 구동 시 관리자 권한이 필요할 수 있습니다", c.ListenPort))
	}

	return warnings
}

// CORSConfig 웹 브라우저의 교차 출처 리소스 공유(CORS) 정책을 설정하는 구조체
type CORSConfig struct {
	AllowOrigins []string `json:"allow_origins" validate:"dive,cors_origin"`
}

func (c *CORSConfig) validate() error {
	if len(c.AllowOrigins) == 0 {
		return apperrors.New(apperrors.InvalidInput, "CORS 허용 도메인(allow_origins) 목록이 비어있습니다")
	}

	for _, origin := range c.AllowOrigins {
		if origin == "*" {
			if len(c.AllowOrigins) > 1 {
				return apperrors.New(apperrors.InvalidInput, "와일드카드(*)는 다른 도메인과 함께 사용할 수 없습니다. 모든 도메인을 허용하려면 와일드카드만 설정하세요")
			}

			// 와일드카드만 있는 경우는 유효함 (validator skip)
			continue
		}
	}

	// 각 Origin 유효성 검사
	if err := validate.Struct(c); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok {
			for _, fieldErr := range validationErrors {
				if fieldErr.Tag() == "cors_origin" {
					return apperrors.New(apperrors.InvalidInput, fmt.Sprintf("CORS Origin 형식이 올바르지 않습니다: '%v' (형식: Scheme://Host[:Port], 예: https://example.com)", fieldErr.Value()))
				}
			}
		}
		return apperrors.Wrap(err, apperrors.InvalidInput, "CORS 설정 검증 중 알 수 없는 오류가 발생했습니다")
	}
	return nil
}

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 경로의 설정 파일을 읽어 AppConfig 객체를 생성합니다.
func LoadWithFile(filename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값 로드 (가장 낮은 우선순위)
	var defaults AppConfig
	defaults.SearchProvider.FetchTimeout = DefaultFetchTimeout
	defaults.ExchangeFeed.FetchTimeout = DefaultFetchTimeout
	defaults.ExchangeFeed.Prewarm.TimeSpec = DefaultPrewarmTimeSpec

	err := k.Load(structs.Provider(defaults, "json"), nil)
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일 로드 (기본값 덮어쓰기)
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		}
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
	}

	// 3. 환경 변수 로드 (최우선 순위, JSON 설정 덮어쓰기)
	// 접두사: PSEARCH_
	// 구분자: 이중 언더스코어(__)를 점(.)으로 변환 (계층 구조 표현)
	// 예: PSEARCH_SEARCH_PROVIDER__API_KEY -> search_provider.api_key
	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		s = strings.TrimPrefix(s, envPrefix)
		s = strings.ToLower(s)
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	// 4. 구조체 언마샬링 (Strict Validation 적용)
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true, // 파일에 존재하지만 구조체에 없는 필드가 있을 경우 에러를 발생시킴
			WeaklyTypedInput: true,
		},
	}
	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, unmarshalConf); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	// 5. 유효성 검사 수행 (정합성 체크)
	if err := appConfig.validate(); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}
