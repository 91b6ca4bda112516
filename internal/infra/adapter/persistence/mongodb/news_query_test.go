package mongodb

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"go.mongodb.org/mongo-driver/bson"

	"globalnews/internal/repository"
)

func strPtr(s string) *string { return &s }

func TestBuildNewsQuery_Empty(t *testing.T) {
	got := buildNewsQuery(repository.NewsFilter{})
	if diff := cmp.Diff(bson.M{}, got); diff != "" {
		t.Errorf("empty filter mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildNewsQuery_CategoryRegionAuthor(t *testing.T) {
	got := buildNewsQuery(repository.NewsFilter{
		Category: strPtr("Sports"),
		Region:   strPtr("Asia"),
		Author:   strPtr("reporter@example.com"),
	})
	want := bson.M{
		"category": "Sports",
		"region":   "Asia",
		"author":   "reporter@example.com",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildNewsQuery_LiveOnly(t *testing.T) {
	got := buildNewsQuery(repository.NewsFilter{LiveOnly: true})
	want := bson.M{"isLive": true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildNewsQuery_TimeRangeExclusiveEnd(t *testing.T) {
	from := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	got := buildNewsQuery(repository.NewsFilter{
		Time: &repository.TimeRange{From: from, To: to, ExclusiveEnd: true},
	})
	want := bson.M{"timestamp": bson.M{"$gte": from, "$lt": to}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildNewsQuery_TimeRangeInclusiveEnd(t *testing.T) {
	from := time.Date(2026, 8, 23, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 8, 28, 15, 4, 5, 0, time.UTC)

	got := buildNewsQuery(repository.NewsFilter{
		Time: &repository.TimeRange{From: from, To: to},
	})
	want := bson.M{"timestamp": bson.M{"$gte": from, "$lte": to}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildNewsFindOptions(t *testing.T) {
	skip := int64(20)
	limit := int64(10)
	opts := buildNewsFindOptions(repository.NewsFilter{Skip: &skip, Limit: &limit})

	if opts.Skip == nil || *opts.Skip != 20 {
		t.Errorf("skip = %v, want 20", opts.Skip)
	}
	if opts.Limit == nil || *opts.Limit != 10 {
		t.Errorf("limit = %v, want 10", opts.Limit)
	}

	sort, ok := opts.Sort.(bson.D)
	if !ok || len(sort) != 1 || sort[0].Key != "timestamp" || sort[0].Value != -1 {
		t.Errorf("sort = %v, want timestamp descending", opts.Sort)
	}
}

func TestBuildNewsFindOptions_NoPagination(t *testing.T) {
	opts := buildNewsFindOptions(repository.NewsFilter{})
	if opts.Skip != nil || opts.Limit != nil {
		t.Errorf("expected unpaginated options, got skip=%v limit=%v", opts.Skip, opts.Limit)
	}
}
