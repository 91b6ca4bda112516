// Package entity defines the core domain entities and validation logic for the application.
// It contains the fundamental business objects such as Article and User, along with
// their validation rules and domain-specific errors.
package entity

import "time"

// Article represents a news article in the system.
// The ID and Timestamp are assigned by the store on publish; Timestamp is
// the sole ordering key for feeds.
type Article struct {
	ID           string
	Title        string
	Description  string
	Image        string
	Category     string
	Region       string
	Author       string
	IsLive       bool
	BreakingNews bool
	PopularNews  bool
	Timestamp    time.Time
}

// ArticlePatch describes a partial update of an article's editable fields.
// Nil fields are left untouched. The timestamp is never part of a patch.
type ArticlePatch struct {
	Title        *string
	Description  *string
	Image        *string
	Category     *string
	Region       *string
	IsLive       *bool
	BreakingNews *bool
	PopularNews  *bool
}

// IsEmpty reports whether the patch would change nothing.
func (p ArticlePatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.Image == nil &&
		p.Category == nil && p.Region == nil && p.IsLive == nil &&
		p.BreakingNews == nil && p.PopularNews == nil
}
