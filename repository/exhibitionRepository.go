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

type ExhibitionRepository struct {
	mongoClient  *mongo.Client
	databaseName string
}

func NewExhibitionRepository(mongoClient *mongo.Client, databaseName string) *ExhibitionRepository {
	return &ExhibitionRepository{
		mongoClient:  mongoClient,
		databaseName: databaseName,
	}
}

func (r *ExhibitionRepository) collection() *mongo.Collection {
	return r.mongoClient.Database(r.databaseName).Collection("exhibition")
}

// FindManyActiveEndingAfter returns published exhibitions that have not yet
// ended as of the given instant. Open-ended exhibitions (no endDate) are
// always included.
func (r *ExhibitionRepository) FindManyActiveEndingAfter(ctx context.Context, t time.Time) ([]*entity.Exhibition, error) {
	cur, err := r.collection().Find(
		ctx,
		bson.M{
			"status": entity.StatusActive,
			"$or": []bson.M{
				{"endDate": bson.M{"$gte": t}},
				{"endDate": bson.M{"$exists": false}},
			},
		},
		options.Find().SetSort(bson.M{"endDate": 1}),
	)
	if err != nil {
		return nil, err
	}

	var exhibitions []*entity.Exhibition
	err = cur.All(ctx, &exhibitions)
	return exhibitions, err
}

func (r *ExhibitionRepository) FindOneByID(ctx context.Context, id string) (*entity.Exhibition, error) {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return nil, entity.NewExhibitionNotFoundError()
	}

	var exhibition entity.Exhibition
	err = r.collection().FindOne(ctx, bson.M{"_id": objectID}).Decode(&exhibition)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, entity.NewExhibitionNotFoundError()
	}
	if err != nil {
		return nil, err
	}

	return &exhibition, nil
}
