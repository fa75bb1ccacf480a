package transform

import (
	"encoding/json"
	"strings"

	"github.com/rpupo63/omie-site-backend/models"
)

// SiteConfig normalizes the site configuration singleton. Missing fields are
// filled from the defaults, and a nil entity yields the defaults unchanged.
func (n *Normalizer) SiteConfig(raw map[string]any) models.SiteConfig {
	cfg := models.DefaultSiteConfig()
	if raw == nil {
		return cfg
	}

	if title := strings.TrimSpace(stringField(raw, "titulo", "siteTitle")); title != "" {
		cfg.SiteTitle = title
	}
	if desc := strings.TrimSpace(stringField(raw, "descricao", "siteDescription")); desc != "" {
		cfg.SiteDescription = desc
	}
	cfg.LogoAlt = cfg.SiteTitle
	if alt := strings.TrimSpace(stringField(raw, "textoAlternativoLogo", "logoAlt")); alt != "" {
		cfg.LogoAlt = alt
	}

	cfg.Logo = n.mediaField(raw, "logo")
	cfg.Favicon = n.mediaField(raw, "favicon")
	cfg.SocialImage = n.mediaField(raw, "imagemRedesSociais")
	cfg.GoogleAnalyticsID = strings.TrimSpace(stringField(raw, "codigoGoogleAnalytics"))
	cfg.GoogleTagManagerID = strings.TrimSpace(stringField(raw, "codigoGoogleTagManager"))
	cfg.GoogleSiteVerification = strings.TrimSpace(stringField(raw, "codigoVerificacaoGoogle"))

	var org any
	if component := objectField(raw, "organizationStructuredData"); component != nil {
		org, _ = lookup(component, "organizationJson")
	}
	cfg.OrganizationJSON = OrganizationJSON(org, cfg.SiteTitle)
	return cfg
}

// OrganizationJSON returns a complete JSON-LD document unchanged, or coerces
// anything else to a {name, url, sameAs} record. A JSON string is decoded
// first. fallbackName is used when no name is given.
func OrganizationJSON(v any, fallbackName string) map[string]any {
	if s, ok := v.(string); ok {
		var decoded map[string]any
		if err := json.Unmarshal([]byte(s), &decoded); err == nil {
			v = decoded
		}
	}

	m, _ := v.(map[string]any)
	if IsJSONLD(m) {
		return m
	}

	name, _ := m["name"].(string)
	if strings.TrimSpace(name) == "" {
		name = fallbackName
	}
	url, _ := m["url"].(string)

	sameAs := []string{}
	if list, ok := m["sameAs"].([]any); ok {
		for _, item := range list {
			if s, ok := item.(string); ok && strings.TrimSpace(s) != "" {
				sameAs = append(sameAs, s)
			}
		}
	}
	return map[string]any{
		"name":   strings.TrimSpace(name),
		"url":    strings.TrimSpace(url),
		"sameAs": sameAs,
	}
}

// IsJSONLD reports whether m is already a JSON-LD document: it declares a
// @context and either a @graph list or a @type
func IsJSONLD(m map[string]any) bool {
	if m == nil {
		return false
	}
	if ctx, ok := m["@context"]; !ok || ctx == nil {
		return false
	}
	if _, ok := m["@graph"].([]any); ok {
		return true
	}
	_, ok := m["@type"].(string)
	return ok
}
