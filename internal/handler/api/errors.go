package api

import (
	"net/http"

	"tickettock/internal/handler/httperr"
	"tickettock/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithUsecaseError translates use-case sentinels into HTTP statuses.
// The more specific validation marks are checked before ErrValidation.
func abortWithUsecaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", nil)
	case errs.Is(err, errs.ErrSequenceRequired):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "X-FCFS-Sequence header is required", nil)
	case errs.Is(err, errs.ErrInvalidSeatCount):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid seat count", nil)
	case errs.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
	case errs.Is(err, errs.ErrSeatNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Seat not found", nil)
	case errs.Is(err, errs.ErrSeatAlreadyReserved):
		httperr.AbortWithError(c, http.StatusConflict, err, "Seat already reserved", nil)
	case errs.Is(err, errs.ErrInfraUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service temporarily unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
