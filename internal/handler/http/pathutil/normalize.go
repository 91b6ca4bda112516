// Package pathutil normalizes dynamic URL paths for metrics labels.
package pathutil

import (
	"regexp"
	"strings"
)

// pathPattern pairs a route regex with its normalized template.
type pathPattern struct {
	pattern  *regexp.Regexp
	template string
}

// Patterns are evaluated in order from most specific to least specific.
// Store identifiers are 24-character hex strings; author and user lookups
// key on email addresses.
var pathPatterns = []*pathPattern{
	{pattern: regexp.MustCompile(`^/news/my-articles/[^/]+$`), template: "/news/my-articles/{email}"},
	{pattern: regexp.MustCompile(`^/news/[0-9a-fA-F]{24}$`), template: "/news/{id}"},

	{pattern: regexp.MustCompile(`^/users/admin/[0-9a-fA-F]{24}$`), template: "/users/admin/{id}"},
	{pattern: regexp.MustCompile(`^/users/block/[0-9a-fA-F]{24}$`), template: "/users/block/{id}"},
	{pattern: regexp.MustCompile(`^/users/active/[0-9a-fA-F]{24}$`), template: "/users/active/{id}"},
	{pattern: regexp.MustCompile(`^/users/[0-9a-fA-F]{24}$`), template: "/users/{id}"},
	{pattern: regexp.MustCompile(`^/users/admin/[^/]+$`), template: "/users/admin/{email}"},

	{pattern: regexp.MustCompile(`^/user/[^/]+$`), template: "/user/{email}"},

	{pattern: regexp.MustCompile(`^/bookmarks/[^/]+$`), template: "/bookmarks/{email}"},
	{pattern: regexp.MustCompile(`^/favorites/[^/]+$`), template: "/favorites/{email}"},
}

// NormalizePath collapses path parameters (store IDs, emails) into templates
// so that metrics labelled by path keep a bounded cardinality. Static paths
// pass through unchanged.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}
