package news

import (
	"context"
	"fmt"
	"time"

	"globalnews/internal/domain/entity"
	"globalnews/internal/repository"
)

// Date bucket values accepted by the feed query.
const (
	DateToday     = "today"
	DateThisWeek  = "this_week"
	DateThisMonth = "this_month"
)

// filterAll is the sentinel meaning "no filter" for category and region.
const filterAll = "All"

// latestCount is the fixed size of the latest-news feed.
const latestCount = 7

// Broadcaster receives a successfully persisted article for fan-out to
// connected viewers. Delivery is best-effort and never returns an error
// to the publisher.
type Broadcaster interface {
	PublishArticle(article *entity.Article)
}

// Service provides news management use cases. It handles feed query
// translation and the publish flow, delegating persistence to the
// repository and fan-out to the broadcaster.
type Service struct {
	Repo repository.NewsRepository

	// Broadcaster is invoked after a successful insert. Optional; nil
	// disables fan-out (useful in tests and offline tools).
	Broadcaster Broadcaster

	// Location pins the date-bucket boundaries to a specific time zone.
	// Nil means UTC.
	Location *time.Location

	// Now allows tests to control the clock. Nil means time.Now.
	Now func() time.Time
}

// PublishInput represents the payload of a publish request: an article
// without identifier and timestamp.
type PublishInput struct {
	Title        string
	Description  string
	Image        string
	Category     string
	Region       string
	Author       string
	IsLive       bool
	BreakingNews bool
	PopularNews  bool
}

// FeedQuery represents the filter parameters of a feed request.
// Pages/Size are both required to paginate; when either is nil the full
// filtered result set is returned.
type FeedQuery struct {
	Category string
	Region   string
	Date     string
	Pages    *int64
	Size     *int64
}

// Publish persists a new article with a store-assigned timestamp and, on
// success, hands the stored article (ID included) to the broadcaster.
// A persistence failure aborts the broadcast entirely.
func (s *Service) Publish(ctx context.Context, in PublishInput) (*entity.Article, error) {
	art := &entity.Article{
		Title:        in.Title,
		Description:  in.Description,
		Image:        in.Image,
		Category:     in.Category,
		Region:       in.Region,
		Author:       in.Author,
		IsLive:       in.IsLive,
		BreakingNews: in.BreakingNews,
		PopularNews:  in.PopularNews,
		Timestamp:    s.now(),
	}

	id, err := s.Repo.Insert(ctx, art)
	if err != nil {
		return nil, fmt.Errorf("publish news: %w", err)
	}
	art.ID = id
	newsPublishedTotal.WithLabelValues(art.Category).Inc()

	if s.Broadcaster != nil {
		s.Broadcaster.PublishArticle(art)
	}
	return art, nil
}

// Feed executes a filtered feed query ordered by timestamp descending.
func (s *Service) Feed(ctx context.Context, q FeedQuery) ([]*entity.Article, error) {
	filter := repository.NewsFilter{}

	if q.Category != "" && q.Category != filterAll {
		filter.Category = &q.Category
	}
	if q.Region != "" && q.Region != filterAll {
		filter.Region = &q.Region
	}
	if q.Date != "" {
		filter.Time = s.dateWindow(q.Date)
	}
	if q.Pages != nil && q.Size != nil {
		skip := *q.Pages * *q.Size
		filter.Skip = &skip
		filter.Limit = q.Size
	}

	articles, err := s.Repo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("query feed: %w", err)
	}
	return articles, nil
}

// Get retrieves a single article by its ID.
// Returns ErrInvalidNewsID if the ID is malformed, before touching the store.
// Returns ErrNewsNotFound if no article matches.
func (s *Service) Get(ctx context.Context, id string) (*entity.Article, error) {
	if !entity.IsValidID(id) {
		return nil, ErrInvalidNewsID
	}

	art, err := s.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get news: %w", err)
	}
	if art == nil {
		return nil, ErrNewsNotFound
	}
	return art, nil
}

// Latest returns the 7 most recent articles irrespective of filters.
func (s *Service) Latest(ctx context.Context) ([]*entity.Article, error) {
	articles, err := s.Repo.Latest(ctx, latestCount)
	if err != nil {
		return nil, fmt.Errorf("latest news: %w", err)
	}
	return articles, nil
}

// ByAuthor returns the articles whose author matches the given email,
// most recent first.
func (s *Service) ByAuthor(ctx context.Context, email string) ([]*entity.Article, error) {
	articles, err := s.Repo.Find(ctx, repository.NewsFilter{Author: &email})
	if err != nil {
		return nil, fmt.Errorf("news by author: %w", err)
	}
	return articles, nil
}

// LiveSnapshot returns the most recent article flagged live, or (nil, nil)
// when the live set is empty. This is the point-in-time snapshot pushed to
// newly connected viewers.
func (s *Service) LiveSnapshot(ctx context.Context) (*entity.Article, error) {
	one := int64(1)
	articles, err := s.Repo.Find(ctx, repository.NewsFilter{LiveOnly: true, Limit: &one})
	if err != nil {
		return nil, fmt.Errorf("live snapshot: %w", err)
	}
	if len(articles) == 0 {
		return nil, nil
	}
	return articles[0], nil
}

// Edit applies a partial update to an article's editable fields. The
// timestamp is never modified.
// Returns ErrInvalidNewsID if the ID is malformed.
// Returns ErrEmptyPatch if the patch sets no fields.
// Returns ErrNewsNotFound if no article matched.
func (s *Service) Edit(ctx context.Context, id string, patch entity.ArticlePatch) error {
	if !entity.IsValidID(id) {
		return ErrInvalidNewsID
	}
	if patch.IsEmpty() {
		return ErrEmptyPatch
	}

	res, err := s.Repo.Update(ctx, id, patch)
	if err != nil {
		return fmt.Errorf("edit news: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNewsNotFound
	}
	return nil
}

// Delete physically removes an article.
// Returns ErrInvalidNewsID if the ID is malformed.
// Returns ErrNewsNotFound if nothing was deleted.
func (s *Service) Delete(ctx context.Context, id string) error {
	if !entity.IsValidID(id) {
		return ErrInvalidNewsID
	}

	res, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete news: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNewsNotFound
	}
	return nil
}

// dateWindow translates a date bucket into a timestamp range anchored at
// the current time in the configured location. Unknown bucket values apply
// no time filter, matching the original request surface.
func (s *Service) dateWindow(date string) *repository.TimeRange {
	now := s.now().In(s.location())

	switch date {
	case DateToday:
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.location())
		return &repository.TimeRange{From: start, To: start.AddDate(0, 0, 1), ExclusiveEnd: true}
	case DateThisWeek:
		// Week starts on the most recent Sunday at 00:00.
		day := now.AddDate(0, 0, -int(now.Weekday()))
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, s.location())
		return &repository.TimeRange{From: start, To: now}
	case DateThisMonth:
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.location())
		return &repository.TimeRange{From: start, To: now}
	default:
		return nil
	}
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *Service) location() *time.Location {
	if s.Location != nil {
		return s.Location
	}
	return time.UTC
}
