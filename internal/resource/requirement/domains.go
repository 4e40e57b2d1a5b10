package requirement

import (
	"github.com/imamik/ymir/internal/resource"
)

// DomainNames reads the "domains" argument or asks for a comma separated
// list. Every entry must be a domain name; "*." wildcards are allowed.
type DomainNames struct {
	Question string
}

// Fulfill implements resource.Requirement.
func (r DomainNames) Fulfill(ctx *resource.Context, _ resource.Fulfilled) (any, error) {
	domains := ctx.Input().ArrayArgument("domains")

	if len(domains) == 0 {
		answer, err := ctx.Console().Ask(ctx, r.Question, "", notEmpty("domain name"))
		if err != nil {
			return nil, err
		}
		domains = splitList(answer)
	}

	if len(domains) == 0 {
		return nil, resource.NewValidationError("You must enter at least one domain name")
	}
	for _, domain := range domains {
		if !isDomainName(domain) {
			return nil, resource.NewValidationError("The domain name %q isn't valid", domain)
		}
	}
	return domains, nil
}

// EmailIdentityName reads the "name" argument or asks for the email address
// or domain to verify.
type EmailIdentityName struct {
	Question string
}

// Fulfill implements resource.Requirement.
func (r EmailIdentityName) Fulfill(ctx *resource.Context, fulfilled resource.Fulfilled) (any, error) {
	text := Text{
		Argument: "name",
		Question: r.Question,
		Thing:    "email address or domain name",
		Validate: func(s string) error {
			if !isEmailOrDomain(s) {
				return resource.NewValidationError("%q isn't a valid email address or domain name", s)
			}
			return nil
		},
	}
	return text.Fulfill(ctx, fulfilled)
}

// DomainName reads the "name" argument or asks for a single domain name.
func DomainName(question string) Text {
	return Text{
		Argument: "name",
		Question: question,
		Thing:    "domain name",
		Validate: func(s string) error {
			if !isDomainName(s) {
				return resource.NewValidationError("The domain name %q isn't valid", s)
			}
			return nil
		},
	}
}
