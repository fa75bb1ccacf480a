package models

// MenuItem is a navigation entry. Children is nil when the item has no subitems.
type MenuItem struct {
	ID       string     `json:"id"`
	Label    string     `json:"label"`
	URL      string     `json:"url"`
	Children []MenuItem `json:"children,omitempty"`
}

// Menus groups the two navigation slots rendered by the site
type Menus struct {
	Header []MenuItem `json:"header"`
	Footer []MenuItem `json:"footer"`
}

// EmptyMenus returns menus with non-nil empty slots so they encode as []
func EmptyMenus() Menus {
	return Menus{Header: []MenuItem{}, Footer: []MenuItem{}}
}
