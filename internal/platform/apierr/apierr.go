package apierr

import (
	"fmt"
	"net/http"

	"github.com/yungbote/person-api/internal/domain/failure"
)

const (
	ReasonNotFound   = "NOT_FOUND"
	ReasonBadRequest = "BAD_REQUEST"
)

// Error is the uniform API error: an HTTP status plus the wire body.
type Error struct {
	Status     int      `json:"-"`
	ReasonCode string   `json:"reasonCode"`
	Errors     []string `json:"errors"`
	Err        error    `json:"-"`
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.ReasonCode != "" {
		return e.ReasonCode
	}
	return fmt.Sprintf("api error (%d)", e.Status)
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, reasonCode string, err error, messages ...string) *Error {
	if messages == nil {
		messages = []string{}
	}
	return &Error{Status: status, ReasonCode: reasonCode, Errors: messages, Err: err}
}

// Translate maps a domain failure onto the uniform error shape. ok is false for
// every other error; those are unexpected and must not be reported in this shape.
func Translate(err error) (apiErr *Error, ok bool) {
	if err == nil {
		return nil, false
	}
	if nf, found := failure.AsNotFound(err); found {
		msg := fmt.Sprintf("Resource %s with id %d does not exist", nf.Collection, nf.ID)
		return New(http.StatusNotFound, ReasonNotFound, err, msg), true
	}
	if vf, found := failure.AsValidation(err); found {
		return New(http.StatusBadRequest, ReasonBadRequest, err, vf.Messages()...), true
	}
	return nil, false
}
