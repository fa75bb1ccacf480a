package transform

import (
	"strings"

	"github.com/rpupo63/omie-site-backend/models"
)

// Post normalizes a raw article. A nil entity yields nil.
func (n *Normalizer) Post(raw map[string]any) *models.Post {
	if raw == nil {
		return nil
	}

	published, iso := n.timestamp(raw)
	post := &models.Post{
		ID:             entityID(raw, "id", "documentId"),
		Title:          stringField(raw, "title"),
		Slug:           stringField(raw, "slug"),
		Excerpt:        StripHTML(stringField(raw, "excerpt")),
		Content:        n.body(stringField(raw, "content")),
		Date:           FormatDate(published, n.location),
		PublishedAtISO: iso,
		FeaturedImage:  n.mediaField(raw, "featuredImage"),
		Author:         n.author(raw),
		SEO:            Seo(objectField(raw, "seo")),
	}

	if v, ok := lookup(raw, "category"); ok {
		if category := relation(v); category != nil {
			post.Category = stringField(category, "name")
			post.CategorySlug = stringField(category, "slug")
		}
	}
	return post
}

// Posts normalizes a list, skipping nil entries
func (n *Normalizer) Posts(raws []map[string]any) []models.Post {
	posts := make([]models.Post, 0, len(raws))
	for _, raw := range raws {
		if p := n.Post(raw); p != nil {
			posts = append(posts, *p)
		}
	}
	return posts
}

// PostSlugs extracts the non-empty slugs of a slug listing
func PostSlugs(raws []map[string]any) []string {
	slugs := make([]string, 0, len(raws))
	for _, raw := range raws {
		if slug := strings.TrimSpace(stringField(raw, "slug")); slug != "" {
			slugs = append(slugs, slug)
		}
	}
	return slugs
}

// author accepts a plain string, a populated relation with a name, or
// falls back to the configured default
func (n *Normalizer) author(raw map[string]any) string {
	if name := strings.TrimSpace(stringField(raw, "authorName")); name != "" {
		return name
	}
	if v, ok := lookup(raw, "author"); ok {
		switch t := v.(type) {
		case string:
			if s := strings.TrimSpace(t); s != "" {
				return s
			}
		default:
			if rel := relation(t); rel != nil {
				if name := strings.TrimSpace(stringField(rel, "name", "username")); name != "" {
					return name
				}
			}
		}
	}
	return n.defaultAuthor
}

func (n *Normalizer) mediaField(raw map[string]any, key string) string {
	v, ok := lookup(raw, key)
	if !ok {
		return ""
	}
	return n.ResolveMediaURL(v)
}
