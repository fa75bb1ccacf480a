package services

import (
	"context"
	"strings"
)

const (
	menusPath = "/api/menus"
	// DefaultMenuDepth populates items and one level of children
	DefaultMenuDepth = 2
	menusPageSize    = 10
)

// MenuPopulate returns the populate paths for a menu tree of the given depth:
// 1 → items, 2 → items, items.children, and so on
func MenuPopulate(depth int) []string {
	if depth < 1 {
		depth = 1
	}
	paths := make([]string, 0, depth)
	segments := []string{"items"}
	for i := 0; i < depth; i++ {
		paths = append(paths, strings.Join(segments, "."))
		segments = append(segments, "children")
	}
	return paths
}

// FetchMenus lists every menu with its items populated to depth levels.
// Menus are matched by slug on our side; filtering by slug server-side is
// not reliable across Strapi Cloud versions.
func (c *StrapiClient) FetchMenus(ctx context.Context, depth int) ([]RawEntity, error) {
	var q Query
	q.SetInt("pagination[pageSize]", menusPageSize)
	q.Populate(c.dialect, MenuPopulate(depth)...)
	return c.getCollection(ctx, menusPath, q)
}
