package services

import (
	"context"
	"strings"

	"github.com/rpupo63/omie-site-backend/models"
)

const (
	postsPath    = "/api/posts"
	maxPostSlugs = 100
)

// PostListQuery builds the listing query. Category and search are separate
// top-level filters, so Strapi ANDs them; search itself is an OR over
// title and excerpt.
func PostListQuery(opts models.PostListOptions, dialect PopulateDialect, populate ...string) Query {
	var q Query
	q.SetInt("pagination[limit]", opts.EffectiveLimit())
	q.SetInt("pagination[start]", opts.EffectiveStart())
	q.Populate(dialect, populate...)

	if category := strings.TrimSpace(opts.Category); category != "" {
		q.Set("filters[category][slug][$eq]", category)
	}
	if search := strings.TrimSpace(opts.Search); search != "" {
		q.Set("filters[$or][0][title][$containsi]", search)
		q.Set("filters[$or][1][excerpt][$containsi]", search)
	}
	return q
}

// FetchPosts lists posts matching opts
func (c *StrapiClient) FetchPosts(ctx context.Context, opts models.PostListOptions) ([]RawEntity, error) {
	return c.getCollection(ctx, postsPath, PostListQuery(opts, c.dialect, c.postPopulate...))
}

// FetchPostBySlug returns the post with the given slug, or nil when none matches
func (c *StrapiClient) FetchPostBySlug(ctx context.Context, slug string) (RawEntity, error) {
	var q Query
	q.Set("filters[slug][$eq]", slug)
	q.Populate(c.dialect, c.postPopulate...)
	return c.getFirst(ctx, postsPath, q)
}

// FetchPostSlugs lists up to 100 posts with only their slug field selected
func (c *StrapiClient) FetchPostSlugs(ctx context.Context) ([]RawEntity, error) {
	var q Query
	q.SetInt("pagination[limit]", maxPostSlugs)
	q.Fields(c.dialect, "slug")
	return c.getCollection(ctx, postsPath, q)
}
