package web

import (
	"strings"

	"github.com/heartmarshall/judgment-web/internal/domain"
)

// NavItem is an entry of the top navigation.
type NavItem struct {
	Label  string
	Href   string
	Active bool
}

type navEntry struct {
	label     string
	href      string
	adminOnly bool
}

var navEntries = []navEntry{
	{label: "Judgments", href: "/judgments"},
	{label: "New judgment", href: "/judgments/new"},
	{label: "Users", href: "/users", adminOnly: true},
}

// navFor returns the navigation for user at path. Admin entries are hidden
// from everyone else.
func navFor(user *domain.User, path string) []NavItem {
	if user == nil {
		return nil
	}
	items := make([]NavItem, 0, len(navEntries))
	for _, e := range navEntries {
		if e.adminOnly && !user.IsAdmin() {
			continue
		}
		items = append(items, NavItem{Label: e.label, Href: e.href, Active: isActive(path, e.href)})
	}
	return items
}

// isActive reports whether path equals href or lies below it.
func isActive(path, href string) bool {
	return path == href || strings.HasPrefix(path, href+"/")
}
