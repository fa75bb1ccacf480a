package content

import (
	"context"
	"strings"

	"github.com/rpupo63/omie-site-backend/models"
	"github.com/rpupo63/omie-site-backend/services"
	"github.com/rpupo63/omie-site-backend/transform"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	headerMenuSlug = "header"
	footerMenuSlug = "footer"
)

// StrapiSource reads live content through a Gateway. Each failure is logged
// once here and reported to the DegradedReporter; callers only ever see the
// fallback value.
type StrapiSource struct {
	gateway    Gateway
	normalizer *transform.Normalizer
	reporter   DegradedReporter
	menuDepth  int
	logger     zerolog.Logger
}

type StrapiSourceOptions struct {
	Reporter DegradedReporter
	// MenuDepth is how many levels of menu items are populated
	MenuDepth int
	Logger    *zerolog.Logger
}

func NewStrapiSource(gateway Gateway, normalizer *transform.Normalizer, opts StrapiSourceOptions) *StrapiSource {
	s := &StrapiSource{
		gateway:    gateway,
		normalizer: normalizer,
		reporter:   opts.Reporter,
		menuDepth:  opts.MenuDepth,
		logger:     log.With().Str("component", "content").Logger(),
	}
	if s.reporter == nil {
		s.reporter = discardReporter{}
	}
	if s.menuDepth <= 0 {
		s.menuDepth = services.DefaultMenuDepth
	}
	if opts.Logger != nil {
		s.logger = *opts.Logger
	}
	return s
}

func (s *StrapiSource) degrade(operation string, err error) {
	s.logger.Error().Err(err).Str("operation", operation).Msg("Strapi request failed, serving fallback")
	s.reporter.Degraded(operation, err)
}

func (s *StrapiSource) GetPosts(ctx context.Context, opts models.PostListOptions) []models.Post {
	raws, err := s.gateway.FetchPosts(ctx, opts)
	if err != nil {
		s.degrade("posts", err)
		return []models.Post{}
	}
	return s.normalizer.Posts(raws)
}

func (s *StrapiSource) GetPost(ctx context.Context, slug string) *models.Post {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil
	}
	raw, err := s.gateway.FetchPostBySlug(ctx, slug)
	if err != nil {
		s.degrade("postBySlug", err)
		return nil
	}
	return s.normalizer.Post(raw)
}

func (s *StrapiSource) GetPostSlugs(ctx context.Context) []string {
	raws, err := s.gateway.FetchPostSlugs(ctx)
	if err != nil {
		s.degrade("postSlugs", err)
		return []string{}
	}
	return transform.PostSlugs(raws)
}

func (s *StrapiSource) GetPage(ctx context.Context, slug string) *models.Page {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil
	}
	raw, err := s.gateway.FetchPageBySlug(ctx, slug)
	if err != nil {
		s.degrade("pageBySlug", err)
		return nil
	}
	return s.normalizer.Page(raw)
}

// GetMenus returns the header and footer menus, matched by slug ignoring case.
// The first menu per slot wins and a missing slot is empty.
func (s *StrapiSource) GetMenus(ctx context.Context) models.Menus {
	raws, err := s.gateway.FetchMenus(ctx, s.menuDepth)
	if err != nil {
		s.degrade("menus", err)
		return models.EmptyMenus()
	}
	return menusFromRaw(s.normalizer, raws)
}

func (s *StrapiSource) GetSiteConfig(ctx context.Context) models.SiteConfig {
	raw, err := s.gateway.FetchSiteConfig(ctx)
	if err != nil {
		s.degrade("siteConfig", err)
		return models.DefaultSiteConfig()
	}
	return s.normalizer.SiteConfig(raw)
}

func menusFromRaw(n *transform.Normalizer, raws []map[string]any) models.Menus {
	menus := models.EmptyMenus()
	var header, footer bool
	for _, raw := range raws {
		switch transform.MenuSlug(raw) {
		case headerMenuSlug:
			if !header {
				menus.Header, header = n.Menu(raw), true
			}
		case footerMenuSlug:
			if !footer {
				menus.Footer, footer = n.Menu(raw), true
			}
		}
	}
	return menus
}
