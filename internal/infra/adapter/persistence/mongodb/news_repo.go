// Package mongodb implements the repository interfaces on top of a MongoDB
// database. Each repository wraps one collection and maps between domain
// entities and the stored document shape.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"globalnews/internal/domain/entity"
	"globalnews/internal/repository"
)

// newsDoc is the stored shape of an article. Field names match the wire
// format the clients already depend on.
type newsDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Title        string             `bson:"title"`
	Description  string             `bson:"description"`
	Image        string             `bson:"image"`
	Category     string             `bson:"category"`
	Region       string             `bson:"region"`
	Author       string             `bson:"author"`
	IsLive       bool               `bson:"isLive"`
	BreakingNews bool               `bson:"breaking_news"`
	PopularNews  bool               `bson:"popular_news"`
	Timestamp    time.Time          `bson:"timestamp"`
}

func (d *newsDoc) toEntity() *entity.Article {
	return &entity.Article{
		ID:           d.ID.Hex(),
		Title:        d.Title,
		Description:  d.Description,
		Image:        d.Image,
		Category:     d.Category,
		Region:       d.Region,
		Author:       d.Author,
		IsLive:       d.IsLive,
		BreakingNews: d.BreakingNews,
		PopularNews:  d.PopularNews,
		Timestamp:    d.Timestamp,
	}
}

// NewsRepo implements repository.NewsRepository over the news collection.
type NewsRepo struct {
	coll *mongo.Collection
}

// NewNewsRepo creates a NewsRepo bound to the "news" collection of db.
func NewNewsRepo(db *mongo.Database) *NewsRepo {
	return &NewsRepo{coll: db.Collection("news")}
}

// Insert persists a new article and returns the store-assigned ID.
func (r *NewsRepo) Insert(ctx context.Context, a *entity.Article) (string, error) {
	doc := newsDoc{
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

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert news: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert news: unexpected inserted ID type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// FindByID retrieves a single article, or (nil, nil) if absent.
func (r *NewsRepo) FindByID(ctx context.Context, id string) (*entity.Article, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("parse news ID: %w", err)
	}

	var doc newsDoc
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find news by ID: %w", err)
	}
	return doc.toEntity(), nil
}

// Find executes a filtered feed query ordered by timestamp descending.
func (r *NewsRepo) Find(ctx context.Context, filter repository.NewsFilter) ([]*entity.Article, error) {
	cur, err := r.coll.Find(ctx, buildNewsQuery(filter), buildNewsFindOptions(filter))
	if err != nil {
		return nil, fmt.Errorf("find news: %w", err)
	}
	return decodeAll(ctx, cur)
}

// Latest returns the limit most recent articles irrespective of filters.
func (r *NewsRepo) Latest(ctx context.Context, limit int64) ([]*entity.Article, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(limit)
	cur, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find latest news: %w", err)
	}
	return decodeAll(ctx, cur)
}

// Update applies a $set patch to the article with the given ID.
func (r *NewsRepo) Update(ctx context.Context, id string, patch entity.ArticlePatch) (repository.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.UpdateResult{}, fmt.Errorf("parse news ID: %w", err)
	}

	set := bson.M{}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Image != nil {
		set["image"] = *patch.Image
	}
	if patch.Category != nil {
		set["category"] = *patch.Category
	}
	if patch.Region != nil {
		set["region"] = *patch.Region
	}
	if patch.IsLive != nil {
		set["isLive"] = *patch.IsLive
	}
	if patch.BreakingNews != nil {
		set["breaking_news"] = *patch.BreakingNews
	}
	if patch.PopularNews != nil {
		set["popular_news"] = *patch.PopularNews
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return repository.UpdateResult{}, fmt.Errorf("update news: %w", err)
	}
	return repository.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

// Delete physically removes the article with the given ID.
func (r *NewsRepo) Delete(ctx context.Context, id string) (repository.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.DeleteResult{}, fmt.Errorf("parse news ID: %w", err)
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return repository.DeleteResult{}, fmt.Errorf("delete news: %w", err)
	}
	return repository.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

// decodeAll drains a cursor into article entities.
func decodeAll(ctx context.Context, cur *mongo.Cursor) ([]*entity.Article, error) {
	defer func() { _ = cur.Close(ctx) }()

	var out []*entity.Article
	for cur.Next(ctx) {
		var doc newsDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode news document: %w", err)
		}
		out = append(out, doc.toEntity())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate news cursor: %w", err)
	}
	return out, nil
}
