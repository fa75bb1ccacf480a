package transform

import (
	"strings"

	"github.com/rpupo63/omie-site-backend/models"
)

const defaultMenuURL = "#"

// Menu normalizes the items of a raw menu entity into a tree. A missing or
// empty item list yields an empty, non-nil slice.
func (n *Normalizer) Menu(raw map[string]any) []models.MenuItem {
	items := menuItems(listField(raw, "items"))
	if items == nil {
		return []models.MenuItem{}
	}
	return items
}

// MenuSlug returns the lowercased slug identifying a menu slot
func MenuSlug(raw map[string]any) string {
	return strings.ToLower(strings.TrimSpace(stringField(raw, "slug")))
}

func menuItems(list []any) []models.MenuItem {
	if len(list) == 0 {
		return nil
	}
	items := make([]models.MenuItem, 0, len(list))
	for _, v := range list {
		raw, ok := v.(map[string]any)
		if !ok {
			continue
		}
		url := stringField(raw, "url")
		if url == "" {
			url = defaultMenuURL
		}
		items = append(items, models.MenuItem{
			ID:       entityID(raw, "documentId", "id"),
			Label:    stringField(raw, "label"),
			URL:      url,
			Children: menuItems(listField(raw, "children")),
		})
	}
	if len(items) == 0 {
		return nil
	}
	return items
}
