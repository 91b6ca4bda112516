package pathutil

import "testing"

func TestNormalizePath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/news/65f1a2b3c4d5e6f708192a3b", "/news/{id}"},
		{"/news/65F1A2B3C4D5E6F708192A3B", "/news/{id}"},
		{"/news/my-articles/reporter@example.com", "/news/my-articles/{email}"},
		{"/users/65f1a2b3c4d5e6f708192a3b", "/users/{id}"},
		{"/users/admin/65f1a2b3c4d5e6f708192a3b", "/users/admin/{id}"},
		{"/users/admin/admin@example.com", "/users/admin/{email}"},
		{"/users/block/65f1a2b3c4d5e6f708192a3b", "/users/block/{id}"},
		{"/users/active/65f1a2b3c4d5e6f708192a3b", "/users/active/{id}"},
		{"/user/someone@example.com", "/user/{email}"},
		{"/bookmarks/someone@example.com", "/bookmarks/{email}"},
		{"/favorites/someone@example.com", "/favorites/{email}"},

		// Static paths pass through.
		{"/news", "/news"},
		{"/newss/latestNews", "/newss/latestNews"},
		{"/health", "/health"},
		{"/metrics", "/metrics"},
		{"/", "/"},

		// Short or non-hex segments are not store IDs.
		{"/news/123", "/news/123"},
		{"/news/zzzzzzzzzzzzzzzzzzzzzzzz", "/news/zzzzzzzzzzzzzzzzzzzzzzzz"},

		// Query strings and trailing slashes are stripped first.
		{"/news/65f1a2b3c4d5e6f708192a3b?full=1", "/news/{id}"},
		{"/news/65f1a2b3c4d5e6f708192a3b/", "/news/{id}"},
		{"/news?category=Sports", "/news"},
	}

	for _, tt := range tests {
		if got := NormalizePath(tt.path); got != tt.want {
			t.Errorf("NormalizePath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}
