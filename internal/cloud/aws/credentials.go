package aws

import (
	"context"
	"errors"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/smithy-go"

	"github.com/imamik/ymir/internal/api"
)

// verificationRegion is used for the ListBuckets call, which is global.
const verificationRegion = "us-east-1"

var (
	// ErrInvalidCredentials means AWS rejected the access key or secret.
	ErrInvalidCredentials = errors.New("the AWS credentials are invalid")
	// ErrAccessDenied means the credentials are valid but lack permissions.
	ErrAccessDenied = errors.New("the AWS credentials do not have the required permissions")
)

// Verifier checks AWS credentials.
type Verifier interface {
	Verify(ctx context.Context, creds api.AwsCredentials) error
}

// Client loads credentials from shared configuration and verifies them
// against S3.
type Client struct {
	endpoint string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithEndpoint overrides the S3 endpoint used for verification.
func WithEndpoint(endpoint string) ClientOption {
	return func(c *Client) {
		c.endpoint = endpoint
	}
}

// NewClient creates a new credentials client.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LoadProfile retrieves the static credentials of a shared config profile.
func (c *Client) LoadProfile(ctx context.Context, profile string) (api.AwsCredentials, error) {
	cfg, err := config.LoadDefaultConfig(ctx,
		config.WithSharedConfigProfile(profile),
		config.WithRegion(verificationRegion),
	)
	if err != nil {
		return api.AwsCredentials{}, fmt.Errorf("failed to load AWS profile %q: %w", profile, err)
	}

	creds, err := cfg.Credentials.Retrieve(ctx)
	if err != nil {
		return api.AwsCredentials{}, fmt.Errorf("failed to retrieve credentials of AWS profile %q: %w", profile, err)
	}

	return api.AwsCredentials{Key: creds.AccessKeyID, Secret: creds.SecretAccessKey}, nil
}

// Verify checks that the credentials are accepted by AWS.
func (c *Client) Verify(ctx context.Context, creds api.AwsCredentials) error {
	client := s3.New(s3.Options{
		Region:      verificationRegion,
		Credentials: credentials.NewStaticCredentialsProvider(creds.Key, creds.Secret, ""),
	}, func(o *s3.Options) {
		if c.endpoint != "" {
			o.BaseEndpoint = aws.String(c.endpoint)
			o.UsePathStyle = true
		}
	})

	if _, err := client.ListBuckets(ctx, &s3.ListBucketsInput{}); err != nil {
		return classify(err)
	}
	return nil
}

// classify maps S3 error codes onto the package errors.
func classify(err error) error {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.ErrorCode() {
		case "InvalidAccessKeyId", "SignatureDoesNotMatch", "InvalidToken":
			return fmt.Errorf("%w: %s", ErrInvalidCredentials, apiErr.ErrorMessage())
		case "AccessDenied":
			return fmt.Errorf("%w: %s", ErrAccessDenied, apiErr.ErrorMessage())
		}
	}
	return fmt.Errorf("failed to verify AWS credentials: %w", err)
}
