package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/person-api/internal/platform/apierr"
)

const (
	CodeInternal = "internal_error"

	// Context key under which the translated reason code is stored for middleware.
	ReasonCodeKey = "reason_code"
)

// Failure answers a service error. Domain failures become {reasonCode, errors};
// anything else is recorded on the context and answered with a generic 500 that
// does not leak the cause.
func Failure(c *gin.Context, err error) {
	if ae, ok := apierr.Translate(err); ok {
		c.Set(ReasonCodeKey, ae.ReasonCode)
		c.AbortWithStatusJSON(ae.Status, ae)
		return
	}
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorEnvelope{
		Error: APIError{
			Message: "internal server error",
			Code:    CodeInternal,
		},
	})
}

// BadRequest answers a transport-level 400 in the generic envelope.
func BadRequest(c *gin.Context, code string, err error) {
	if err == nil {
		err = errors.New("bad request")
	}
	_ = c.Error(err).SetType(gin.ErrorTypeBind)
	RespondError(c, http.StatusBadRequest, code, err)
	c.Abort()
}
