package handler

import (
	"errors"
	"net/http"

	apperrors "github.com/darkkaiser/product-search-server/internal/pkg/errors"
	appvalidator "github.com/darkkaiser/product-search-server/internal/pkg/validator"
	"github.com/darkkaiser/product-search-server/internal/service/api/constants"
	"github.com/darkkaiser/product-search-server/internal/service/api/model/response"
	"github.com/darkkaiser/product-search-server/internal/service/api/v1/model/request"
	"github.com/darkkaiser/product-search-server/internal/service/search/location"
	applog "github.com/darkkaiser/product-search-server/pkg/log"
	"github.com/labstack/echo/v4"
)

// SearchProductsHandler godoc
// @Summary 추천 상품 목록 조회
// @Description 검색어와 시장 코드로 상품을 검색하여 추천 상품 목록을 반환합니다.
// @Description 모든 가격은 기준 통화(UAH)로 환산된 금액과 원본 금액을 함께 포함합니다.
// @Description
// @Description 가격을 해석할 수 없는 상품은 금액이 0으로 설정된 채 반환되며, 에러로 처리되지 않습니다.
// @Tags Products
// @Produce json
// @Param query query string true "검색할 상품 키워드" example("nike shoes")
// @Param location query string true "검색 대상 시장 코드 (us, pl, de, es, gb)" example("us")
// @Success 200 {object} response.ProductsResponse "추천 상품 목록"
// @Failure 400 {object} response.ErrorResponse "요청 매개변수 오류"
// @Failure 429 {object} response.ErrorResponse "요청 한도 초과"
// @Failure 500 {object} response.ErrorResponse "서버 내부 오류"
// @Failure 503 {object} response.ErrorResponse "검색 제공자 또는 환율 피드 장애"
// @Router /api/v1/products [get]
func (h *Handler) SearchProductsHandler(c echo.Context) error {
	var req request.ProductSearchRequest
	if err := c.Bind(&req); err != nil {
		return NewErrInvalidRequest()
	}

	if err := appvalidator.Struct(&req); err != nil {
		return NewErrValidationFailed(appvalidator.FormatValidationError(err))
	}

	loc, err := location.Parse(req.Location)
	if err != nil {
		return NewErrUnsupportedLocation(req.Location)
	}

	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":  c.Path(),
		"query":     req.Query,
		"location":  loc.String(),
		"remote_ip": c.RealIP(),
	}).Debug(constants.LogMsgProductSearch)

	products, err := h.catalog.RecommendedProducts(c.Request().Context(), req.Query, loc)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, response.ProductsResponse{
		Query:    req.Query,
		Location: loc.String(),
		Count:    len(products),
		Products: products,
	})
}

// ProductOffersHandler godoc
// @Summary 상품 오퍼 목록 조회
// @Description 상품 식별자로 전체 판매자의 오퍼 목록을 조회합니다.
// @Description 검색 목록 조회에서 has_more_offers가 true인 상품에 대해 호출합니다.
// @Tags Products
// @Produce json
// @Param product_id path string true "검색 제공자가 부여한 상품 고유 식별자" example("1234567890")
// @Param location query string true "검색 대상 시장 코드 (us, pl, de, es, gb)" example("us")
// @Success 200 {object} response.ProductOffersResponse "상품 오퍼 목록"
// @Failure 400 {object} response.ErrorResponse "요청 매개변수 오류"
// @Failure 404 {object} response.ErrorResponse "상품을 찾을 수 없음"
// @Failure 429 {object} response.ErrorResponse "요청 한도 초과"
// @Failure 500 {object} response.ErrorResponse "서버 내부 오류"
// @Failure 503 {object} response.ErrorResponse "검색 제공자 또는 환율 피드 장애"
// @Router /api/v1/products/{product_id}/offers [get]
func (h *Handler) ProductOffersHandler(c echo.Context) error {
	var req request.ProductOffersRequest
	if err := c.Bind(&req); err != nil {
		return NewErrInvalidRequest()
	}

	if err := appvalidator.Struct(&req); err != nil {
		return NewErrValidationFailed(appvalidator.FormatValidationError(err))
	}

	loc, err := location.Parse(req.Location)
	if err != nil {
		return NewErrUnsupportedLocation(req.Location)
	}

	applog.WithComponentAndFields(constants.ComponentHandler, applog.Fields{
		"endpoint":   c.Path(),
		"product_id": req.ProductID,
		"location":   loc.String(),
		"remote_ip":  c.RealIP(),
	}).Debug(constants.LogMsgProductOffers)

	product, err := h.catalog.RecommendedProductOffers(c.Request().Context(), req.ProductID, loc)
	if err != nil {
		return toHTTPError(err)
	}

	return c.JSON(http.StatusOK, response.ProductOffersResponse{
		Location: loc.String(),
		Product:  product,
	})
}

// toHTTPError 비즈니스 로직의 에러를 HTTP 응답 에러로 변환합니다.
//
// 에러 타입별 매핑:
//   - InvalidInput: 400 Bad Request (원본 검증 메시지 유지)
//   - NotFound: 404 Not Found
//   - Unavailable, Timeout, System: 503 Service Unavailable
//   - 그 외: 500 Internal Server Error
func toHTTPError(err error) error {
	switch {
	case apperrors.Is(err, apperrors.InvalidInput):
		return NewErrValidationFailed(messageOf(err))
	case apperrors.Is(err, apperrors.NotFound):
		return NewErrProductNotFound()
	case apperrors.Is(err, apperrors.Unavailable),
		apperrors.Is(err, apperrors.Timeout),
		apperrors.Is(err, apperrors.System):
		return NewErrSearchUnavailable()
	default:
		return NewErrSearchFailed()
	}
}

// messageOf 에러 체인에서 사용자에게 노출 가능한 메시지를 추출합니다.
// AppError가 아닌 경우 내부 정보 노출을 막기 위해 일반 메시지를 반환합니다.
func messageOf(err error) string {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Message()
	}
	return constants.ErrMsgBadRequest
}
