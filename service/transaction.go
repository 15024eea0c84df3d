package service

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// TransactionRunner executes a function inside one multi-document
// transaction. All reads and writes made through the callback's context
// belong to that transaction.
type TransactionRunner interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) (interface{}, error)) (interface{}, error)
}

type mongoTransactionRunner struct {
	client *mongo.Client
}

func NewMongoTransactionRunner(client *mongo.Client) TransactionRunner {
	return &mongoTransactionRunner{client: client}
}

func (r *mongoTransactionRunner) WithTransaction(ctx context.Context, fn func(ctx context.Context) (interface{}, error)) (interface{}, error) {
	session, err := r.client.StartSession()
	if err != nil {
		return nil, err
	}
	defer session.EndSession(ctx)

	return session.WithTransaction(ctx, fn)
}
