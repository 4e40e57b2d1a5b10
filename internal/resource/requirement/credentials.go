package requirement

import (
	"context"
	"errors"

	"github.com/imamik/ymir/internal/api"
	"github.com/imamik/ymir/internal/cloud/aws"
	"github.com/imamik/ymir/internal/resource"
)

// CredentialsSource loads and verifies AWS credentials.
type CredentialsSource interface {
	LoadProfile(ctx context.Context, profile string) (api.AwsCredentials, error)
	aws.Verifier
}

// AwsCredentials obtains the AWS credentials of a new cloud provider. The
// "profile" option or prompt selects a shared config profile; leaving it
// blank asks for the access key and secret instead. The credentials are
// verified before being returned.
type AwsCredentials struct {
	Source CredentialsSource
}

// Fulfill implements resource.Requirement.
func (r AwsCredentials) Fulfill(ctx *resource.Context, _ resource.Fulfilled) (any, error) {
	console := ctx.Console()

	profile := ctx.Input().StringOption("profile")
	if profile == "" && !ctx.Input().HasOption("key") {
		var err error
		profile, err = console.Ask(ctx, "Enter the name of the AWS credentials profile to use (leave empty to enter an access key instead)", "", nil)
		if err != nil {
			return nil, err
		}
	}

	var creds api.AwsCredentials
	if profile != "" {
		loaded, err := r.Source.LoadProfile(ctx, profile)
		if err != nil {
			return nil, resource.NewValidationError("Unable to load the %q AWS profile: %v", profile, err)
		}
		creds = loaded
	} else {
		key := ctx.Input().StringOption("key")
		if key == "" {
			var err error
			key, err = console.Ask(ctx, "Enter your AWS access key ID", "", notEmpty("AWS access key ID"))
			if err != nil {
				return nil, err
			}
		}
		secret, err := console.AskHidden(ctx, "Enter your AWS secret access key")
		if err != nil {
			return nil, err
		}
		if err := notEmpty("AWS secret access key")(secret); err != nil {
			return nil, err
		}
		creds = api.AwsCredentials{Key: key, Secret: secret}
	}

	if err := r.Source.Verify(ctx, creds); err != nil {
		if errors.Is(err, aws.ErrInvalidCredentials) || errors.Is(err, aws.ErrAccessDenied) {
			return nil, resource.NewValidationError("%v", err)
		}
		return nil, err
	}
	return creds, nil
}
