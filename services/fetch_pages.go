package services

import "context"

const pagesPath = "/api/pages"

var pagePopulate = []string{"featuredImage"}

// FetchPageBySlug returns the page with the given slug, or nil when none matches
func (c *StrapiClient) FetchPageBySlug(ctx context.Context, slug string) (RawEntity, error) {
	var q Query
	q.Set("filters[slug][$eq]", slug)
	q.Populate(c.dialect, pagePopulate...)
	return c.getFirst(ctx, pagesPath, q)
}
