package repository

import (
	"context"
	"errors"

	"github.com/ksugita/tenrankai/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type FavoriteRepository struct {
	mongoClient  *mongo.Client
	databaseName string
}

func NewFavoriteRepository(mongoClient *mongo.Client, databaseName string) *FavoriteRepository {
	return &FavoriteRepository{
		mongoClient:  mongoClient,
		databaseName: databaseName,
	}
}

func (r *FavoriteRepository) collection() *mongo.Collection {
	return r.mongoClient.Database(r.databaseName).Collection("favorites")
}

// FindOneByID looks up a membership record by its composite id. A nil
// favorite with a nil error means the record does not exist.
func (r *FavoriteRepository) FindOneByID(ctx context.Context, id string) (*entity.Favorite, error) {
	var favorite entity.Favorite
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&favorite)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &favorite, nil
}

func (r *FavoriteRepository) FindManyByUserID(ctx context.Context, uid string) ([]*entity.Favorite, error) {
	cur, err := r.collection().Find(
		ctx,
		bson.M{"userId": uid},
		options.Find().SetSort(bson.M{"createdAt": -1}),
	)
	if err != nil {
		return nil, err
	}

	var favorites []*entity.Favorite
	err = cur.All(ctx, &favorites)
	return favorites, err
}

func (r *FavoriteRepository) CountByUserID(ctx context.Context, uid string) (int64, error) {
	return r.collection().CountDocuments(ctx, bson.M{"userId": uid})
}

func (r *FavoriteRepository) InsertOne(ctx context.Context, favorite *entity.Favorite) error {
	_, err := r.collection().InsertOne(ctx, favorite)
	return err
}

func (r *FavoriteRepository) DeleteOneByID(ctx context.Context, id string) error {
	_, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	return err
}
