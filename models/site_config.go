package models

// Site-wide defaults used whenever the CMS omits a field
const (
	DefaultSiteTitle       = "OMIE"
	DefaultSiteDescription = "Sistema de gestão online (ERP) para pequenas e médias empresas."
	DefaultAuthor          = "OMIE"
)

// SiteConfig is the singleton site configuration. Every field is always set
// (possibly to its default) so callers never deal with partial records.
type SiteConfig struct {
	SiteTitle              string         `json:"siteTitle"`
	SiteDescription        string         `json:"siteDescription"`
	LogoAlt                string         `json:"logoAlt"`
	Logo                   string         `json:"logo"`
	Favicon                string         `json:"favicon"`
	SocialImage            string         `json:"socialImage"`
	GoogleAnalyticsID      string         `json:"googleAnalyticsId"`
	GoogleTagManagerID     string         `json:"googleTagManagerId"`
	GoogleSiteVerification string         `json:"googleSiteVerification"`
	OrganizationJSON       map[string]any `json:"organizationJson"`
}

// DefaultSiteConfig returns the hard-coded configuration used when the CMS
// singleton is missing or unreachable
func DefaultSiteConfig() SiteConfig {
	return SiteConfig{
		SiteTitle:       DefaultSiteTitle,
		SiteDescription: DefaultSiteDescription,
		LogoAlt:         DefaultSiteTitle,
		OrganizationJSON: map[string]any{
			"name":   DefaultSiteTitle,
			"url":    "",
			"sameAs": []string{},
		},
	}
}
