package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"globalnews/internal/domain/entity"
	"globalnews/internal/repository"
)

type userDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Role      string             `bson:"role"`
	Status    string             `bson:"status"`
	Bookmarks []string           `bson:"bookmarks,omitempty"`
	Favorites []string           `bson:"favorites,omitempty"`
}

func (d *userDoc) toEntity() *entity.User {
	return &entity.User{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		Role:      d.Role,
		Status:    d.Status,
		Bookmarks: d.Bookmarks,
		Favorites: d.Favorites,
	}
}

// UserRepo implements repository.UserRepository over the users collection.
type UserRepo struct {
	coll *mongo.Collection
}

// NewUserRepo creates a UserRepo bound to the "users" collection of db.
func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{coll: db.Collection("users")}
}

// Insert persists a new user and returns the store-assigned ID.
func (r *UserRepo) Insert(ctx context.Context, u *entity.User) (string, error) {
	doc := userDoc{
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Status:    u.Status,
		Bookmarks: u.Bookmarks,
		Favorites: u.Favorites,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("insert user: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("insert user: unexpected inserted ID type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// FindByEmail retrieves a single user by email, or (nil, nil) if absent.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var doc userDoc
	err := r.coll.FindOne(ctx, bson.M{"email": email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return doc.toEntity(), nil
}

// Find lists users matching the optional role/status filter.
func (r *UserRepo) Find(ctx context.Context, filter repository.UserFilter) ([]*entity.User, error) {
	query := bson.M{}
	if filter.Role != nil {
		query["role"] = *filter.Role
	}
	if filter.Status != nil {
		query["status"] = *filter.Status
	}

	cur, err := r.coll.Find(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}
	defer func() { _ = cur.Close(ctx) }()

	var out []*entity.User
	for cur.Next(ctx) {
		var doc userDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode user document: %w", err)
		}
		out = append(out, doc.toEntity())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate user cursor: %w", err)
	}
	return out, nil
}

// UpdateByEmail applies a $set patch keyed by email.
func (r *UserRepo) UpdateByEmail(ctx context.Context, email string, patch entity.UserPatch) (repository.UpdateResult, error) {
	return r.update(ctx, bson.M{"email": email}, patch)
}

// UpdateByID applies a $set patch keyed by store ID.
func (r *UserRepo) UpdateByID(ctx context.Context, id string, patch entity.UserPatch) (repository.UpdateResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.UpdateResult{}, fmt.Errorf("parse user ID: %w", err)
	}
	return r.update(ctx, bson.M{"_id": oid}, patch)
}

func (r *UserRepo) update(ctx context.Context, filter bson.M, patch entity.UserPatch) (repository.UpdateResult, error) {
	set := bson.M{}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Role != nil {
		set["role"] = *patch.Role
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}

	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$set": set})
	if err != nil {
		return repository.UpdateResult{}, fmt.Errorf("update user: %w", err)
	}
	return repository.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

// DeleteByEmail removes the user with the given email.
func (r *UserRepo) DeleteByEmail(ctx context.Context, email string) (repository.DeleteResult, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"email": email})
	if err != nil {
		return repository.DeleteResult{}, fmt.Errorf("delete user: %w", err)
	}
	return repository.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

// DeleteByID removes the user with the given store ID.
func (r *UserRepo) DeleteByID(ctx context.Context, id string) (repository.DeleteResult, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return repository.DeleteResult{}, fmt.Errorf("parse user ID: %w", err)
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return repository.DeleteResult{}, fmt.Errorf("delete user: %w", err)
	}
	return repository.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

// AddListItem adds newsID to the named list field without duplicates.
func (r *UserRepo) AddListItem(ctx context.Context, email string, field repository.ListField, newsID string) (repository.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email},
		bson.M{"$addToSet": bson.M{string(field): newsID}})
	if err != nil {
		return repository.UpdateResult{}, fmt.Errorf("add %s item: %w", field, err)
	}
	return repository.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}

// RemoveListItem removes newsID from the named list field.
func (r *UserRepo) RemoveListItem(ctx context.Context, email string, field repository.ListField, newsID string) (repository.UpdateResult, error) {
	res, err := r.coll.UpdateOne(ctx, bson.M{"email": email},
		bson.M{"$pull": bson.M{string(field): newsID}})
	if err != nil {
		return repository.UpdateResult{}, fmt.Errorf("remove %s item: %w", field, err)
	}
	return repository.UpdateResult{MatchedCount: res.MatchedCount, ModifiedCount: res.ModifiedCount}, nil
}
