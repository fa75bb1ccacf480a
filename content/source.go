// Package content is the read facade the site renders from. Every method
// returns a usable value: failures against the CMS are logged and replaced
// with empty results or defaults.
package content

import (
	"context"

	"github.com/rpupo63/omie-site-backend/config"
	"github.com/rpupo63/omie-site-backend/models"
	"github.com/rpupo63/omie-site-backend/services"
	"github.com/rpupo63/omie-site-backend/transform"
	"github.com/rs/zerolog/log"
)

// Source serves normalized site content
type Source interface {
	GetPosts(ctx context.Context, opts models.PostListOptions) []models.Post
	GetPost(ctx context.Context, slug string) *models.Post
	GetPostSlugs(ctx context.Context) []string
	GetPage(ctx context.Context, slug string) *models.Page
	GetMenus(ctx context.Context) models.Menus
	GetSiteConfig(ctx context.Context) models.SiteConfig
}

// Gateway is the raw CMS access a live Source is built on
type Gateway interface {
	FetchPosts(ctx context.Context, opts models.PostListOptions) ([]services.RawEntity, error)
	FetchPostBySlug(ctx context.Context, slug string) (services.RawEntity, error)
	FetchPostSlugs(ctx context.Context) ([]services.RawEntity, error)
	FetchPageBySlug(ctx context.Context, slug string) (services.RawEntity, error)
	FetchMenus(ctx context.Context, depth int) ([]services.RawEntity, error)
	FetchSiteConfig(ctx context.Context) (services.RawEntity, error)
}

var _ Gateway = (*services.StrapiClient)(nil)

// NewSource selects the content source once, at startup: the bundled mock
// data when mock mode is on or no API url is configured, Strapi otherwise.
func NewSource(s config.Settings, gateway Gateway, normalizer *transform.Normalizer, reporter DegradedReporter) (Source, error) {
	if s.UseMock || gateway == nil {
		log.Info().Msg("Serving bundled mock content")
		return NewMockSource(normalizer)
	}
	log.Info().Str("url", s.StrapiAPIURL).Int("version", s.StrapiVersion).Msg("Serving content from Strapi")
	return NewStrapiSource(gateway, normalizer, StrapiSourceOptions{Reporter: reporter}), nil
}
