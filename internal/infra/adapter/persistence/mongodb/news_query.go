package mongodb

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"globalnews/internal/repository"
)

// buildNewsQuery translates a NewsFilter into a store filter document.
// Nil filter fields contribute nothing, so an empty filter matches the
// whole collection.
func buildNewsQuery(f repository.NewsFilter) bson.M {
	query := bson.M{}

	if f.Category != nil {
		query["category"] = *f.Category
	}
	if f.Region != nil {
		query["region"] = *f.Region
	}
	if f.Author != nil {
		query["author"] = *f.Author
	}
	if f.LiveOnly {
		query["isLive"] = true
	}
	if f.Time != nil {
		ts := bson.M{"$gte": f.Time.From}
		if f.Time.ExclusiveEnd {
			ts["$lt"] = f.Time.To
		} else {
			ts["$lte"] = f.Time.To
		}
		query["timestamp"] = ts
	}

	return query
}

// buildNewsFindOptions produces the sort/skip/limit options for a feed query.
// Ordering is always timestamp descending; skip and limit are applied only
// when the filter carries them.
func buildNewsFindOptions(f repository.NewsFilter) *options.FindOptions {
	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})
	if f.Skip != nil {
		opts.SetSkip(*f.Skip)
	}
	if f.Limit != nil {
		opts.SetLimit(*f.Limit)
	}
	return opts
}
