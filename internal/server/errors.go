package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	featuredomain "github.com/paylift/srbooster/internal/feature/domain"
	merchantdomain "github.com/paylift/srbooster/internal/merchant/domain"
	requestdomain "github.com/paylift/srbooster/internal/request/domain"
	"gorm.io/gorm"
)

// errorResponse is the flat error envelope every endpoint uses.
type errorResponse struct {
	Error string `json:"error"`
}

var ErrInvalidRequest = errors.New("invalid_request")

// transitionConflictError carries the verb-specific message for an
// approve/reject attempt on a non-pending request. errors.Is still
// matches requestdomain.ErrNotPending so mapping stays uniform.
type transitionConflictError struct {
	verb string
}

func (e *transitionConflictError) Error() string {
	return "Request cannot be " + e.verb + "; it is not pending"
}

func (e *transitionConflictError) Is(target error) bool {
	return target == requestdomain.ErrNotPending
}

func notPendingError(verb string) error {
	return &transitionConflictError{verb: verb}
}

func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, message := mapError(lastErr.Err)
		c.AbortWithStatusJSON(status, errorResponse{Error: message})
	}
}

func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, string) {
	switch {
	case err == nil:
		return http.StatusInternalServerError, "internal server error"
	case errors.Is(err, requestdomain.ErrMissingFields):
		return http.StatusBadRequest, "Missing required fields: feature_id, mid"
	case errors.Is(err, requestdomain.ErrNotPending):
		var conflict *transitionConflictError
		if errors.As(err, &conflict) {
			return http.StatusBadRequest, conflict.Error()
		}
		return http.StatusBadRequest, "Request is not pending"
	case errors.Is(err, requestdomain.ErrInvalidTargetStatus):
		return http.StatusBadRequest, "Invalid target status"
	case errors.Is(err, ErrInvalidRequest):
		return http.StatusBadRequest, "Invalid request body"
	case errors.Is(err, featuredomain.ErrNotFound):
		return http.StatusNotFound, "Feature not found"
	case errors.Is(err, merchantdomain.ErrNotFound):
		return http.StatusNotFound, "Merchant not found"
	case errors.Is(err, requestdomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return http.StatusNotFound, "Request not found"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// classifyErrorForLog buckets API errors for the request log without
// leaking internals into log cardinality.
func classifyErrorForLog(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, requestdomain.ErrMissingFields),
		errors.Is(err, requestdomain.ErrInvalidTargetStatus),
		errors.Is(err, ErrInvalidRequest):
		return "validation"
	case errors.Is(err, requestdomain.ErrNotPending):
		return "conflict"
	case errors.Is(err, featuredomain.ErrNotFound),
		errors.Is(err, merchantdomain.ErrNotFound),
		errors.Is(err, requestdomain.ErrNotFound),
		errors.Is(err, gorm.ErrRecordNotFound):
		return "not_found"
	default:
		return "internal"
	}
}
