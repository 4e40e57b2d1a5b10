package requirement

import (
	"github.com/imamik/ymir/internal/resource"
	"github.com/imamik/ymir/internal/util/naming"
)

// DefaultEnvironments are created with every new project.
var DefaultEnvironments = []string{"staging", "production"}

// Environments returns the initial environments of a project: the
// "environment" option values, or DefaultEnvironments.
type Environments struct{}

// Fulfill implements resource.Requirement.
func (Environments) Fulfill(ctx *resource.Context, _ resource.Fulfilled) (any, error) {
	environments := ctx.Input().ArrayOption("environment")
	if len(environments) == 0 {
		return append([]string(nil), DefaultEnvironments...), nil
	}
	for _, env := range environments {
		if !naming.IsSlug(env) {
			return nil, resource.NewValidationError("The environment name %q can only contain lowercase alphanumeric characters and hyphens", env)
		}
	}
	return environments, nil
}

// ProjectDirectoryName defaults a name to the slug of the project directory.
func ProjectDirectoryName(ctx *resource.Context, _ resource.Fulfilled) string {
	return naming.FromDirectory(ctx.ProjectDir())
}
