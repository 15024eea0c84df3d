package repository

import (
	"context"
	"errors"
	"time"

	"github.com/ksugita/tenrankai/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type UserRepository struct {
	mongoClient  *mongo.Client
	databaseName string
}

func NewUserRepository(mongoClient *mongo.Client, databaseName string) *UserRepository {
	return &UserRepository{
		mongoClient:  mongoClient,
		databaseName: databaseName,
	}
}

func (r *UserRepository) collection() *mongo.Collection {
	return r.mongoClient.Database(r.databaseName).Collection("users")
}

func (r *UserRepository) FindOneByUID(ctx context.Context, uid string) (*entity.User, error) {
	var user entity.User
	err := r.collection().FindOne(ctx, bson.M{"_id": uid}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.NewUserNotFoundError()
	}
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// UpsertOne creates the user document on first sign-in and refreshes the
// identity fields on subsequent calls.
func (r *UserRepository) UpsertOne(ctx context.Context, user entity.User) (*entity.User, error) {
	now := time.Now()

	update := bson.M{
		"$set": bson.M{
			"email":     user.Email,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{
			"subscriptionTier": entity.TierFree,
			"createdAt":        now,
		},
	}
	if user.DisplayName != "" {
		update["$set"].(bson.M)["displayName"] = user.DisplayName
	}

	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var updated entity.User
	err := r.collection().FindOneAndUpdate(ctx, bson.M{"_id": user.UID}, update, opts).Decode(&updated)
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

func (r *UserRepository) UpdateDisplayName(ctx context.Context, uid, displayName string) (*entity.User, error) {
	update := bson.M{
		"$set": bson.M{
			"displayName": displayName,
			"updatedAt":   time.Now(),
		},
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated entity.User
	err := r.collection().FindOneAndUpdate(ctx, bson.M{"_id": uid}, update, opts).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.NewUserNotFoundError()
	}
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// IncrementFavoriteCount adjusts the favorite counter on the user document.
// Called inside the favorite toggle transaction; the write makes concurrent
// toggles by the same user conflict and retry.
func (r *UserRepository) IncrementFavoriteCount(ctx context.Context, uid string, delta int) error {
	_, err := r.collection().UpdateOne(ctx, bson.M{"_id": uid}, bson.M{
		"$inc": bson.M{"favoriteCount": delta},
		"$set": bson.M{"updatedAt": time.Now()},
	})
	return err
}

// FindManyWithLegacyPreferences returns users whose documents still embed
// membership arrays in preferences. Used by the side-table migration.
func (r *UserRepository) FindManyWithLegacyPreferences(ctx context.Context) ([]*entity.User, error) {
	cur, err := r.collection().Find(ctx, bson.M{
		"$or": []bson.M{
			{"preferences.favoriteVenues.0": bson.M{"$exists": true}},
			{"preferences.bookmarkedExhibitions.0": bson.M{"$exists": true}},
		},
	})
	if err != nil {
		return nil, err
	}

	var users []*entity.User
	err = cur.All(ctx, &users)
	return users, err
}

// UnsetLegacyPreferences clears the embedded membership arrays after they
// have been copied to the side tables.
func (r *UserRepository) UnsetLegacyPreferences(ctx context.Context, uid string) error {
	_, err := r.collection().UpdateOne(ctx, bson.M{"_id": uid}, bson.M{
		"$unset": bson.M{
			"preferences.favoriteVenues":        "",
			"preferences.bookmarkedExhibitions": "",
		},
	})
	return err
}
