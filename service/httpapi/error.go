package httpapi

import (
	"errors"
	"github.com/QuangTung97/booth-ads/service/adpolicy"
	"github.com/QuangTung97/booth-ads/service/management"
	"net/http"
)

const (
	codeBadRequest = "BAD_REQUEST"
	codeValidation = "VALIDATION_FAILED"
	codeDateRange  = "INVALID_DATE_RANGE"
	codeConflict   = "ACTIVE_CONFLICT"
	codeNotFound   = "NOT_FOUND"
	codeInternal   = "INTERNAL"
)

var errBadRequestBody = errors.New("malformed request body")

func errorStatus(err error) (int, ErrorResponse) {
	switch {
	case errors.Is(err, errBadRequestBody):
		return http.StatusBadRequest, ErrorResponse{Code: codeBadRequest, Message: err.Error()}
	case errors.Is(err, management.ErrValidation):
		return http.StatusBadRequest, ErrorResponse{Code: codeValidation, Message: err.Error()}
	case errors.Is(err, management.ErrInvalidDateRange):
		return http.StatusBadRequest, ErrorResponse{Code: codeDateRange, Message: err.Error()}
	case errors.Is(err, adpolicy.ErrActiveConflict):
		return http.StatusConflict, ErrorResponse{Code: codeConflict, Message: err.Error()}
	case errors.Is(err, management.ErrNotFound):
		return http.StatusNotFound, ErrorResponse{Code: codeNotFound, Message: err.Error()}
	default:
		return http.StatusInternalServerError, ErrorResponse{Code: codeInternal, Message: "internal error"}
	}
}
