package person

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/yungbote/person-api/internal/domain/failure"
)

const (
	msgMandatory = "is mandatory"
	msgSizeFmt   = "size must be between 0 and %d"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// rule is one (field, predicate, message) constraint. Predicates are validator
// tag expressions evaluated against the extracted value.
type rule[T any] struct {
	field   string
	value   func(*T) string
	tag     string
	message string
}

func notBlank[T any](field string, value func(*T) string) rule[T] {
	return rule[T]{field: field, value: value, tag: "notblank", message: msgMandatory}
}

func maxLen[T any](field string, value func(*T) string, n int) rule[T] {
	return rule[T]{field: field, value: value, tag: fmt.Sprintf("max=%d", n), message: fmt.Sprintf(msgSizeFmt, n)}
}

// Declaration order matters: messages are reported in this order.
var personRules = []rule[Person]{
	notBlank("firstName", func(p *Person) string { return p.FirstName }),
	maxLen("firstName", func(p *Person) string { return p.FirstName }, 250),
	notBlank("lastName", func(p *Person) string { return p.LastName }),
	maxLen("lastName", func(p *Person) string { return p.LastName }, 250),
}

var addressRules = []rule[Address]{
	notBlank("street", func(a *Address) string { return a.Street }),
	maxLen("street", func(a *Address) string { return a.Street }, 250),
	notBlank("city", func(a *Address) string { return a.City }),
	maxLen("city", func(a *Address) string { return a.City }, 100),
	notBlank("state", func(a *Address) string { return a.State }),
	maxLen("state", func(a *Address) string { return a.State }, 50),
	notBlank("postalCode", func(a *Address) string { return a.PostalCode }),
	maxLen("postalCode", func(a *Address) string { return a.PostalCode }, 20),
}

// evaluate runs every rule and keeps at most one message per field: the first
// rule that fails for a field wins.
func evaluate[T any](rules []rule[T], v *T, prefix string) []failure.FieldError {
	var out []failure.FieldError
	failed := map[string]bool{}
	for _, r := range rules {
		if failed[r.field] {
			continue
		}
		if err := validate.Var(r.value(v), r.tag); err != nil {
			failed[r.field] = true
			out = append(out, failure.FieldError{Field: prefix + r.field, Message: r.message})
		}
	}
	return out
}

// ValidatePerson checks the person fields and then each supplied address,
// reported as address[i].field.
func ValidatePerson(p *Person) error {
	if p == nil {
		return &failure.ValidationFailed{Fields: []failure.FieldError{{Field: "person", Message: msgMandatory}}}
	}
	fields := evaluate(personRules, p, "")
	for i := range p.Addresses {
		fields = append(fields, evaluate(addressRules, &p.Addresses[i], fmt.Sprintf("address[%d].", i))...)
	}
	if len(fields) > 0 {
		return &failure.ValidationFailed{Fields: fields}
	}
	return nil
}

func ValidateAddress(a *Address) error {
	if a == nil {
		return &failure.ValidationFailed{Fields: []failure.FieldError{{Field: "address", Message: msgMandatory}}}
	}
	if fields := evaluate(addressRules, a, ""); len(fields) > 0 {
		return &failure.ValidationFailed{Fields: fields}
	}
	return nil
}
