package failure

import (
	"fmt"
	"testing"
)

func TestAsNotFoundThroughWrap(t *testing.T) {
	err := fmt.Errorf("load: %w", PersonNotFound(12))
	nf, ok := AsNotFound(err)
	if !ok {
		t.Fatalf("expected NotFound in chain")
	}
	if nf.Collection != CollectionPerson || nf.ID != 12 {
		t.Fatalf("unexpected NotFound: %+v", nf)
	}
}

func TestValidationMessagesKeepOrder(t *testing.T) {
	vf := &ValidationFailed{Fields: []FieldError{
		{Field: "firstName", Message: "is mandatory"},
		{Field: "lastName", Message: "is mandatory"},
	}}
	got := vf.Messages()
	if len(got) != 2 || got[0] != "firstName: is mandatory" || got[1] != "lastName: is mandatory" {
		t.Fatalf("unexpected messages: %v", got)
	}
	if _, ok := AsValidation(fmt.Errorf("wrap: %w", vf)); !ok {
		t.Fatalf("expected ValidationFailed in chain")
	}
}
