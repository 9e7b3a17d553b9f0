package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/rihla/customer-queries/internal/model"
)

const customerQueriesCollection = "customerQueries"

// CustomerQueryRepository provides access to customer query records.
// FindAll is the only read path for listings - there are deliberately
// no query predicates, the whole collection is fetched and the view is
// shaped in memory
type CustomerQueryRepository interface {
	FindAll(ctx context.Context) ([]model.CustomerQuery, error)
	FindByID(ctx context.Context, id string) (*model.CustomerQuery, error)
	Create(ctx context.Context, q *model.CustomerQuery) error
	Update(ctx context.Context, q *model.CustomerQuery) error
	DeleteByID(ctx context.Context, id string) error
}

type mongoCustomerQueryRepository struct {
	client   *mongo.Client
	database string
}

// NewMongoCustomerQueryRepository builds mongodb-backed CustomerQueryRepository
func NewMongoCustomerQueryRepository(client *mongo.Client, database string) CustomerQueryRepository {
	return &mongoCustomerQueryRepository{client: client, database: database}
}

func (r *mongoCustomerQueryRepository) collection() *mongo.Collection {
	return r.client.Database(r.database).Collection(customerQueriesCollection)
}

func (r *mongoCustomerQueryRepository) FindAll(ctx context.Context) ([]model.CustomerQuery, error) {
	cursor, err := r.collection().Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	queries := make([]model.CustomerQuery, 0)
	if err := cursor.All(ctx, &queries); err != nil {
		return nil, err
	}
	return queries, nil
}

func (r *mongoCustomerQueryRepository) FindByID(ctx context.Context, id string) (*model.CustomerQuery, error) {
	var q model.CustomerQuery
	if err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&q); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &q, nil
}

func (r *mongoCustomerQueryRepository) Create(ctx context.Context, q *model.CustomerQuery) error {
	if _, err := r.collection().InsertOne(ctx, q); err != nil {
		return err
	}
	return nil
}

// Update overwrites the editable fields of the record in one $set.
// createdBy and createdAt are write-once and excluded from the update
func (r *mongoCustomerQueryRepository) Update(ctx context.Context, q *model.CustomerQuery) error {
	update := bson.M{
		"$set": bson.M{
			"name":          q.Name,
			"number":        q.Number,
			"email":         q.Email,
			"city":          q.City,
			"queryStatus":   q.QueryStatus,
			"quotationSend": q.QuotationSend,
			"query":         q.Query,
			"remarks":       q.Remarks,
		},
	}

	if _, err := r.collection().UpdateByID(ctx, q.ID, update); err != nil {
		return err
	}
	return nil
}

func (r *mongoCustomerQueryRepository) DeleteByID(ctx context.Context, id string) error {
	if _, err := r.collection().DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return err
	}
	return nil
}
