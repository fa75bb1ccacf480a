package models

// Page represents an institutional page
type Page struct {
	ID            string   `json:"id"`
	Title         string   `json:"title"`
	Slug          string   `json:"slug"`
	Content       string   `json:"content"`
	FeaturedImage string   `json:"featuredImage,omitempty"`
	SEO           *SeoData `json:"seo,omitempty"`
}

// SeoData is an optional per-entity override of the generated metadata.
// A nil *SeoData means no override was provided.
type SeoData struct {
	MetaTitle       string `json:"metaTitle,omitempty"`
	MetaDescription string `json:"metaDescription,omitempty"`
	CanonicalURL    string `json:"canonicalUrl,omitempty"`
	NoIndex         bool   `json:"noindex,omitempty"`
}

// IsEmpty reports whether no field carries content
func (s *SeoData) IsEmpty() bool {
	if s == nil {
		return true
	}
	return s.MetaTitle == "" && s.MetaDescription == "" && s.CanonicalURL == "" && !s.NoIndex
}
