// Package news provides HTTP handlers for publishing articles and serving
// the filtered feed.
package news

import (
	"time"

	"globalnews/internal/domain/entity"
)

// DTO is the wire representation of an article. Field names follow the
// stored document shape, which the frontend consumes directly.
type DTO struct {
	ID           string    `json:"_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Image        string    `json:"image"`
	Category     string    `json:"category"`
	Region       string    `json:"region"`
	Author       string    `json:"author"`
	IsLive       bool      `json:"isLive"`
	BreakingNews bool      `json:"breaking_news"`
	PopularNews  bool      `json:"popular_news"`
	Timestamp    time.Time `json:"timestamp"`
}

func toDTO(a *entity.Article) DTO {
	return DTO{
		ID:           a.ID,
		Title:        a.Title,
		Description:  a.Description,
		Image:        a.Image,
		Category:     a.Category,
		Region:       a.Region,
		Author:       a.Author,
		IsLive:       a.IsLive,
		BreakingNews: a.BreakingNews,
		PopularNews:  a.PopularNews,
		Timestamp:    a.Timestamp,
	}
}

func toDTOs(articles []*entity.Article) []DTO {
	out := make([]DTO, 0, len(articles))
	for _, a := range articles {
		out = append(out, toDTO(a))
	}
	return out
}

// CreateResponse mirrors the store acknowledgement returned on publish.
type CreateResponse struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}
