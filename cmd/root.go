package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rpupo63/omie-site-backend/config"
	"github.com/rpupo63/omie-site-backend/services"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var envFiles []string
var settings config.Settings

var rootCmd = &cobra.Command{
	Use:   "omie-site",
	Short: "Content backend for the OMIE marketing site",
	Long: `omie-site serves blog posts, institutional pages, menus and site
configuration from Strapi, normalized and enriched with SEO metadata.
Without STRAPI_API_URL (or with STRAPI_MOCK=true) it serves bundled mock content.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig()
	},
	SilenceUsage: true,
	// Running the binary with no subcommand serves
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "env files to load (default is ./.env when present)")
}

func initializeConfig() error {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return fmt.Errorf("load env files %v: %w", envFiles, err)
		}
	} else if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}

	settings = config.Load(config.New())
	if err := setupLogging(settings.LogLevel, settings.LogFormat, os.Stderr); err != nil {
		return err
	}
	return nil
}

// newStrapiClient resolves the API token when it lives in Parameter Store and builds the client
func newStrapiClient(ctx context.Context) (*services.StrapiClient, error) {
	if settings.TokenSSMParameter != "" && settings.StrapiAPIToken == "" {
		ssmClient, err := config.NewSSMClient(ctx)
		if err != nil {
			return nil, err
		}
		if err := config.ResolveSecrets(ctx, &settings, ssmClient); err != nil {
			return nil, err
		}
	}

	log.Debug().
		Str("url", settings.StrapiAPIURL).
		Int("version", settings.StrapiVersion).
		Dur("timeout", settings.RequestTimeout).
		Bool("tokenSet", settings.StrapiAPIToken != "").
		Msg("Strapi client configured")
	return services.NewStrapiClientFromSettings(settings), nil
}
