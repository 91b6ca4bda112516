package news

import (
	"encoding/json"
	"errors"
	"net/http"

	"globalnews/internal/handler/http/respond"
	newsUC "globalnews/internal/usecase/news"
)

type CreateHandler struct{ Svc *newsUC.Service }

// ServeHTTP publishes a new article: persist, then fan out to live viewers.
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title        string `json:"title"`
		Description  string `json:"description"`
		Image        string `json:"image"`
		Category     string `json:"category"`
		Region       string `json:"region"`
		Author       string `json:"author"`
		IsLive       bool   `json:"isLive"`
		BreakingNews bool   `json:"breaking_news"`
		PopularNews  bool   `json:"popular_news"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}
	if req.Title == "" {
		respond.SafeError(w, http.StatusBadRequest, errors.New("title is required"))
		return
	}

	art, err := h.Svc.Publish(r.Context(), newsUC.PublishInput{
		Title:        req.Title,
		Description:  req.Description,
		Image:        req.Image,
		Category:     req.Category,
		Region:       req.Region,
		Author:       req.Author,
		IsLive:       req.IsLive,
		BreakingNews: req.BreakingNews,
		PopularNews:  req.PopularNews,
	})
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusCreated, CreateResponse{
		Acknowledged: true,
		InsertedID:   art.ID,
	})
}
