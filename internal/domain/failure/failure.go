// Package failure holds the caller-recoverable outcomes of the person and address
// services. Any error that is not one of these is an unexpected failure.
package failure

import (
	"errors"
	"fmt"
	"strings"
)

const (
	CollectionPerson  = "person"
	CollectionAddress = "address"
)

// NotFound reports that the caller referenced a record that does not exist.
type NotFound struct {
	Collection string
	ID         uint
}

func (e *NotFound) Error() string {
	return fmt.Sprintf("%s %d not found", e.Collection, e.ID)
}

func PersonNotFound(id uint) error  { return &NotFound{Collection: CollectionPerson, ID: id} }
func AddressNotFound(id uint) error { return &NotFound{Collection: CollectionAddress, ID: id} }

// FieldError is one violated constraint on one payload field.
type FieldError struct {
	Field   string
	Message string
}

func (f FieldError) String() string {
	return f.Field + ": " + f.Message
}

// ValidationFailed aggregates every field violation of a payload, in declared field order.
type ValidationFailed struct {
	Fields []FieldError
}

func (e *ValidationFailed) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.String())
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Messages renders the field errors as "{field}: {message}".
func (e *ValidationFailed) Messages() []string {
	out := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		out = append(out, f.String())
	}
	return out
}

// AsNotFound unwraps err into a *NotFound when it carries one.
func AsNotFound(err error) (*NotFound, bool) {
	var nf *NotFound
	if errors.As(err, &nf) {
		return nf, true
	}
	return nil, false
}

// AsValidation unwraps err into a *ValidationFailed when it carries one.
func AsValidation(err error) (*ValidationFailed, bool) {
	var vf *ValidationFailed
	if errors.As(err, &vf) {
		return vf, true
	}
	return nil, false
}
