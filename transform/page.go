package transform

import "github.com/rpupo63/omie-site-backend/models"

// Page normalizes a raw institutional page. A nil entity yields nil.
func (n *Normalizer) Page(raw map[string]any) *models.Page {
	if raw == nil {
		return nil
	}
	return &models.Page{
		ID:            entityID(raw, "id", "documentId"),
		Title:         stringField(raw, "title"),
		Slug:          stringField(raw, "slug"),
		Content:       n.body(stringField(raw, "content")),
		FeaturedImage: n.mediaField(raw, "featuredImage"),
		SEO:           Seo(objectField(raw, "seo")),
	}
}
