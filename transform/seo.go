package transform

import (
	"strings"

	"github.com/rpupo63/omie-site-backend/models"
)

// Seo extracts per-entity metadata overrides. It returns nil when the
// component is absent or carries nothing usable.
func Seo(raw map[string]any) *models.SeoData {
	if raw == nil {
		return nil
	}
	seo := &models.SeoData{
		MetaTitle:       strings.TrimSpace(stringField(raw, "metaTitle")),
		MetaDescription: strings.TrimSpace(stringField(raw, "metaDescription")),
		CanonicalURL:    strings.TrimSpace(stringField(raw, "canonicalURL", "canonicalUrl")),
		NoIndex:         boolField(raw, "noindex", "noIndex"),
	}
	if robots := strings.ToLower(stringField(raw, "metaRobots")); strings.Contains(robots, "noindex") {
		seo.NoIndex = true
	}
	if seo.IsEmpty() {
		return nil
	}
	return seo
}
