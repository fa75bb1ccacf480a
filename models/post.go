package models

import validation "github.com/go-ozzo/ozzo-validation/v4"

// Post represents a normalized blog post as consumed by the render layer
type Post struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Slug           string   `json:"slug"`
	Excerpt        string   `json:"excerpt"`
	Content        string   `json:"content"`
	Date           string   `json:"date"`
	PublishedAtISO string   `json:"publishedAtIso"`
	FeaturedImage  string   `json:"featuredImage"`
	Category       string   `json:"category"`
	CategorySlug   string   `json:"categorySlug"`
	Author         string   `json:"author"`
	SEO            *SeoData `json:"seo,omitempty"`
}

// PostListOptions holds pagination and filtering for post listings.
// Zero values mean "use the default" (limit 10, start 0, no filter).
type PostListOptions struct {
	Limit    int    `json:"limit,omitempty"`
	Start    int    `json:"start,omitempty"`
	Category string `json:"category,omitempty"`
	Search   string `json:"search,omitempty"`
}

const (
	DefaultPostLimit = 10
	MaxPostLimit     = 100
)

// Validate rejects negative offsets and limits above MaxPostLimit.
// A zero limit is valid and selects DefaultPostLimit.
func (o PostListOptions) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.Limit, validation.Min(0), validation.Max(MaxPostLimit)),
		validation.Field(&o.Start, validation.Min(0)),
	)
}

// EffectiveLimit returns the requested limit or the default one
func (o PostListOptions) EffectiveLimit() int {
	if o.Limit <= 0 {
		return DefaultPostLimit
	}
	return o.Limit
}

// EffectiveStart never returns a negative offset
func (o PostListOptions) EffectiveStart() int {
	if o.Start < 0 {
		return 0
	}
	return o.Start
}
