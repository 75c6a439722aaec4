// Package nav builds the header's slide-out menu.
package nav

import "github.com/Zachkp/bento-portfolio/internal/catalog"

// Item is a menu entry. An item with Children is a collapsible group.
type Item struct {
	Label    string
	Path     string
	Icon     string
	Divider  bool
	Active   bool
	Expanded bool
	Children []Item
}

// Menu returns the menu for the given catalog.
func Menu(c *catalog.Catalog) []Item {
	projects := make([]Item, 0, c.Len())
	for _, p := range c.All() {
		projects = append(projects, Item{
			Label: p.Title,
			Path:  "/project/" + p.ID,
			Icon:  p.Icon,
		})
	}
	return []Item{
		{Label: "Home", Path: "/", Icon: "home"},
		{Divider: true},
		{Label: "Projects", Path: "/#projects", Icon: "flask", Children: projects},
		{Label: "JSON API", Path: "/api/projects", Icon: "network"},
	}
}

// Mark returns a copy of items with the entry for current flagged active
// and any group holding it expanded.
func Mark(items []Item, current string) []Item {
	out := make([]Item, len(items))
	for i, it := range items {
		it.Active = !it.Divider && it.Path == current
		if len(it.Children) > 0 {
			it.Children = Mark(it.Children, current)
			it.Expanded = false
			for _, ch := range it.Children {
				if ch.Active || ch.Expanded {
					it.Expanded = true
					break
				}
			}
		}
		out[i] = it
	}
	return out
}
