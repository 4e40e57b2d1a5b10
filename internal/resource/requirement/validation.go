package requirement

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/imamik/ymir/internal/console"
	"github.com/imamik/ymir/internal/resource"
)

var validate = validator.New()

// notEmpty returns a validator rejecting blank values.
func notEmpty(thing string) console.Validator {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return resource.NewValidationError("You must enter a %s", thing)
		}
		return nil
	}
}

// isDomainName reports whether name is a fully qualified domain name. A
// leading wildcard label is accepted.
func isDomainName(name string) bool {
	return validate.Var(strings.TrimPrefix(name, "*."), "required,fqdn") == nil
}

// isEmailOrDomain reports whether value is an email address or a domain.
func isEmailOrDomain(value string) bool {
	return validate.Var(value, "required,email|fqdn") == nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
