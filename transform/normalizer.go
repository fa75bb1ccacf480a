// Package transform converts raw CMS entities into the site's domain types.
// Every conversion tolerates both the v4 attribute envelope and the v5 flat
// shape, and fills missing fields with defaults instead of failing.
package transform

import (
	"time"

	"github.com/rpupo63/omie-site-backend/config"
	"github.com/rpupo63/omie-site-backend/models"
	"github.com/rs/zerolog/log"
	"github.com/yuin/goldmark"
)

// Normalizer holds the settings every conversion depends on
type Normalizer struct {
	apiBase       string
	defaultAuthor string
	location      *time.Location
	markdown      goldmark.Markdown
	now           func() time.Time
}

// Options configures a Normalizer
type Options struct {
	// APIBase is the CMS origin used to absolutize relative media urls
	APIBase       string
	DefaultAuthor string
	// Location is the zone display dates are rendered in; nil means UTC
	Location *time.Location
	// Markdown renders post and page bodies from markdown to HTML
	Markdown bool
	// Now overrides the clock used for entities with no timestamp
	Now func() time.Time
}

func New(opts Options) *Normalizer {
	n := &Normalizer{
		apiBase:       opts.APIBase,
		defaultAuthor: opts.DefaultAuthor,
		location:      opts.Location,
		now:           opts.Now,
	}
	if n.defaultAuthor == "" {
		n.defaultAuthor = models.DefaultAuthor
	}
	if n.location == nil {
		n.location = time.UTC
	}
	if n.now == nil {
		n.now = time.Now
	}
	if opts.Markdown {
		n.markdown = goldmark.New()
	}
	return n
}

// NewFromSettings builds a Normalizer from process settings. An unknown
// timezone falls back to UTC.
func NewFromSettings(s config.Settings) *Normalizer {
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		log.Warn().Err(err).Str("timezone", s.Timezone).Msg("Unknown SITE_TIMEZONE, using UTC")
		loc = time.UTC
	}
	return New(Options{
		APIBase:       s.StrapiAPIURL,
		DefaultAuthor: s.DefaultAuthor,
		Location:      loc,
		Markdown:      s.ContentFormat == "markdown",
	})
}

// APIBase returns the origin relative media urls are resolved against
func (n *Normalizer) APIBase() string {
	return n.apiBase
}
