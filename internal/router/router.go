// Package router maps navigation paths to pages.
package router

import "strings"

type Page string

const (
	PageLanding   Page = "landing"
	PageWorkspace Page = "workspace"
	PagePricing   Page = "pricing"
	PageLogin     Page = "login"
	PageNotFound  Page = "not_found"
)

const (
	PathHome      = "/"
	PathWorkspace = "/workspace"
	PathPricing   = "/pricing"
	PathLogin     = "/login"
	PathSignup    = "/signup"
)

type Route struct {
	Path string
	Page Page
}

type NavItem struct {
	Label string
	Path  string
	Key   string
}

var routes = map[string]Page{
	PathHome:      PageLanding,
	PathWorkspace: PageWorkspace,
	PathPricing:   PagePricing,
	PathLogin:     PageLogin,
}

// Normalize adds a leading slash, drops a trailing one and lowercases.
func Normalize(path string) string {
	p := strings.ToLower(strings.TrimSpace(path))
	if p == "" {
		return PathHome
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if len(p) > 1 {
		p = strings.TrimRight(p, "/")
		if p == "" {
			p = PathHome
		}
	}
	return p
}

// Resolve never fails; unknown paths resolve to PageNotFound with the path
// kept for display.
func Resolve(path string) Route {
	p := Normalize(path)
	if page, ok := routes[p]; ok {
		return Route{Path: p, Page: page}
	}
	return Route{Path: p, Page: PageNotFound}
}

func NavItems() []NavItem {
	return []NavItem{
		{Label: "Home", Path: PathHome, Key: "1"},
		{Label: "Workspace", Path: PathWorkspace, Key: "2"},
		{Label: "Pricing", Path: PathPricing, Key: "3"},
	}
}

// PathForKey resolves the numeric navigation shortcuts. Key 4 opens login.
func PathForKey(key string) (string, bool) {
	for _, item := range NavItems() {
		if item.Key == key {
			return item.Path, true
		}
	}
	if key == "4" {
		return PathLogin, true
	}
	return "", false
}

func ShowAuthActions(path string) bool {
	p := Normalize(path)
	return p != PathLogin && p != PathSignup
}

// Active reports whether a nav item should be highlighted for path.
func (n NavItem) Active(path string) bool {
	return Normalize(path) == n.Path
}
