package httperr

import (
	"net/http"

	"stayhub/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// FieldError describes a single rejected request field.
type FieldError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
	Param string `json:"param,omitempty"`
}

const internalMessage = "Internal server error"

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// Abort picks the status from the error category. Uncategorized errors are
// reported as 500 without leaking their message.
func Abort(c *gin.Context, err error) {
	status, msg := Classify(err)
	AbortWithError(c, status, err, msg, nil)
}

// AbortBinding reports a request that failed JSON binding or validation.
func AbortBinding(c *gin.Context, err error) {
	AbortWithError(c, http.StatusBadRequest, err, "Invalid request", fieldErrors(err))
}

func Classify(err error) (int, string) {
	switch {
	case errs.Is(err, errs.ErrIdempotencyInProgress):
		return http.StatusConflict, "A request with this Idempotency-Key is already being processed"
	case errs.Is(err, errs.ErrIdempotencyCheckFailed):
		return http.StatusServiceUnavailable, "Idempotency check is temporarily unavailable"
	case errs.IsUnauthenticated(err):
		return http.StatusUnauthorized, err.Error()
	case errs.IsValidation(err):
		return http.StatusBadRequest, err.Error()
	case errs.IsNotFound(err):
		return http.StatusNotFound, err.Error()
	case errs.IsConflict(err):
		// Conflicts keep the documented 400 of the public API
		return http.StatusBadRequest, err.Error()
	case errs.IsForbidden(err):
		return http.StatusForbidden, err.Error()
	default:
		return http.StatusInternalServerError, internalMessage
	}
}

func fieldErrors(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errs.As(err, &verrs) {
		return nil
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field: fe.Field(),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}
