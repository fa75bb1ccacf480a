package config

import (
	"context"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/rs/zerolog/log"
)

// ParameterGetter is the subset of the SSM client used to resolve secrets
type ParameterGetter interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

// NewSSMClient builds an SSM client from the default AWS credential chain
func NewSSMClient(ctx context.Context) (*ssm.Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("load AWS config: %w", err)
	}
	return ssm.NewFromConfig(cfg), nil
}

// ResolveSecrets fills StrapiAPIToken from Parameter Store when a parameter
// name is configured and no token was given directly
func ResolveSecrets(ctx context.Context, s *Settings, getter ParameterGetter) error {
	if s.TokenSSMParameter == "" || s.StrapiAPIToken != "" {
		return nil
	}
	if getter == nil {
		return fmt.Errorf("STRAPI_API_TOKEN_SSM_PARAMETER is set but no SSM client is available")
	}

	out, err := getter.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(s.TokenSSMParameter),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return fmt.Errorf("get SSM parameter %s: %w", s.TokenSSMParameter, err)
	}
	if out == nil || out.Parameter == nil || out.Parameter.Value == nil {
		return fmt.Errorf("SSM parameter %s has no value", s.TokenSSMParameter)
	}

	s.StrapiAPIToken = strings.TrimSpace(aws.ToString(out.Parameter.Value))
	log.Info().Str("parameter", s.TokenSSMParameter).Msg("Resolved Strapi API token from SSM")
	return nil
}
