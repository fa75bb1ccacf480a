// Package seo derives page metadata and JSON-LD structured data from
// normalized content and the site configuration.
package seo

import (
	"strings"

	"github.com/rpupo63/omie-site-backend/models"
)

const ogLocale = "pt_BR"

// Metadata is the head metadata of a rendered page. Empty optional fields
// are omitted from the JSON form, never emitted blank.
type Metadata struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Canonical   string    `json:"canonical,omitempty"`
	Robots      *Robots   `json:"robots,omitempty"`
	OpenGraph   OpenGraph `json:"openGraph"`
}

type Robots struct {
	Index  bool `json:"index"`
	Follow bool `json:"follow"`
}

type OpenGraph struct {
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	URL         string    `json:"url,omitempty"`
	Images      []OGImage `json:"images,omitempty"`
	Locale      string    `json:"locale"`
}

type OGImage struct {
	URL string `json:"url"`
}

// Fallbacks are the caller-side values used when an entity has no override
type Fallbacks struct {
	PageTitle string
	URL       string
	Image     string
}

// BuildMetadataFromSeo resolves each field through its fallback chain:
//
//	title:       override, then "{pageTitle} | {site title}"
//	description: override, then site description
//	canonical:   override, then fallbacks.URL
//
// Robots is only set when the override asks for noindex.
func BuildMetadataFromSeo(seo *models.SeoData, site models.SiteConfig, fb Fallbacks) Metadata {
	var override models.SeoData
	if seo != nil {
		override = *seo
	}

	title := strings.TrimSpace(override.MetaTitle)
	if title == "" {
		title = fb.PageTitle + " | " + siteName(site)
	}
	description := firstNonEmpty(override.MetaDescription, site.SiteDescription)
	canonical := firstNonEmpty(override.CanonicalURL, fb.URL)

	md := Metadata{
		Title:       title,
		Description: description,
		Canonical:   canonical,
		OpenGraph: OpenGraph{
			Title:       title,
			Description: description,
			URL:         canonical,
			Locale:      ogLocale,
		},
	}
	if override.NoIndex {
		md.Robots = &Robots{Index: false, Follow: true}
	}
	if image := strings.TrimSpace(fb.Image); image != "" {
		md.OpenGraph.Images = []OGImage{{URL: image}}
	}
	return md
}

// SiteBaseURL trims whitespace and a trailing slash from the public site url
func SiteBaseURL(raw string) string {
	return strings.TrimRight(strings.TrimSpace(raw), "/")
}

func siteName(site models.SiteConfig) string {
	if name := strings.TrimSpace(site.SiteTitle); name != "" {
		return name
	}
	return models.DefaultSiteTitle
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
