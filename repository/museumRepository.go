package repository

import (
	"context"
	"errors"

	"github.com/ksugita/tenrankai/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

type MuseumRepository struct {
	mongoClient  *mongo.Client
	databaseName string
}

func NewMuseumRepository(mongoClient *mongo.Client, databaseName string) *MuseumRepository {
	return &MuseumRepository{
		mongoClient:  mongoClient,
		databaseName: databaseName,
	}
}

func (r *MuseumRepository) collection() *mongo.Collection {
	return r.mongoClient.Database(r.databaseName).Collection("museum")
}

func (r *MuseumRepository) FindAll(ctx context.Context) ([]*entity.Museum, error) {
	cur, err := r.collection().Find(ctx, bson.M{}, options.Find().SetSort(bson.M{"name": 1}))
	if err != nil {
		return nil, err
	}

	var museums []*entity.Museum
	err = cur.All(ctx, &museums)
	return museums, err
}

func (r *MuseumRepository) FindOneByID(ctx context.Context, id string) (*entity.Museum, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, entity.NewMuseumNotFoundError()
	}

	var museum entity.Museum
	err = r.collection().FindOne(ctx, bson.M{"_id": objectID}).Decode(&museum)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.NewMuseumNotFoundError()
	}
	if err != nil {
		return nil, err
	}

	return &museum, nil
}
