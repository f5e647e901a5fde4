package delivery

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lotmarket/goapi/domain"
	"github.com/lotmarket/goapi/service/query"
)

type JsonResponseStatus string

const (
	JsonResponseStatusSuccess JsonResponseStatus = "success"
	JsonResponseStatusFail    JsonResponseStatus = "fail"
)

type JsonResponse struct {
	Data   interface{}        `json:"data"`
	Status JsonResponseStatus `json:"status"`
}

// StatusOf maps domain errors to response codes. Unknown errors are internal.
func StatusOf(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, query.ErrNotFound),
		errors.Is(err, domain.ErrNoActiveOffer):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrAccessDenied),
		errors.Is(err, domain.ErrNotOfferOwner):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrOfferAlreadyActive):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidDeadline),
		errors.Is(err, domain.ErrInvalidFeeDenominator),
		errors.Is(err, domain.ErrBadParamInput),
		errors.Is(err, domain.ErrInvalidNumberFormat),
		errors.Is(err, domain.ErrInvalidChainId),
		errors.Is(err, domain.ErrInvalidAddress),
		errors.Is(err, domain.ErrUnsupportedPayToken):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrInsufficientFunds),
		errors.Is(err, domain.ErrInsufficientAssetBalance),
		errors.Is(err, domain.ErrOfferExpired):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrOracleUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func MakeJsonResp(c echo.Context, status int, data interface{}) error {
	if err, ok := data.(error); ok {
		if errors.Is(err, domain.ErrNotFound) || errors.Is(err, query.ErrNotFound) {
			status = http.StatusNotFound
		}
		data = err.Error()
	}

	if status >= 400 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusFail})
	}

	if status >= 200 && status < 300 {
		return c.JSON(status, JsonResponse{data, JsonResponseStatusSuccess})
	}

	return c.JSON(status, data)
}
