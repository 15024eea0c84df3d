package repository

import (
	"context"
	"errors"

	"github.com/ksugita/tenrankai/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type BookmarkRepository struct {
	mongoClient  *mongo.Client
	databaseName string
}

func NewBookmarkRepository(mongoClient *mongo.Client, databaseName string) *BookmarkRepository {
	return &BookmarkRepository{
		mongoClient:  mongoClient,
		databaseName: databaseName,
	}
}

func (r *BookmarkRepository) collection() *mongo.Collection {
	return r.mongoClient.Database(r.databaseName).Collection("bookmarks")
}

// FindOneByID looks up a membership record by its composite id. A nil
// bookmark with a nil error means the record does not exist.
func (r *BookmarkRepository) FindOneByID(ctx context.Context, id string) (*entity.Bookmark, error) {
	var bookmark entity.Bookmark
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&bookmark)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &bookmark, nil
}

func (r *BookmarkRepository) FindManyByUserID(ctx context.Context, uid string) ([]*entity.Bookmark, error) {
	cur, err := r.collection().Find(
		ctx,
		bson.M{"userId": uid},
		options.Find().SetSort(bson.M{"createdAt": -1}),
	)
	if err != nil {
		return nil, err
	}

	var bookmarks []*entity.Bookmark
	err = cur.All(ctx, &bookmarks)
	return bookmarks, err
}

func (r *BookmarkRepository) InsertOne(ctx context.Context, bookmark *entity.Bookmark) error {
	_, err := r.collection().InsertOne(ctx, bookmark)
	return err
}

func (r *BookmarkRepository) DeleteOneByID(ctx context.Context, id string) error {
	_, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	return err
}
