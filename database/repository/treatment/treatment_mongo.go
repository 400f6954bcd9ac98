package treatmentRepo

import (
	"context"
	"time"

	"docport/database"
	"docport/database/repository"
	"docport/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoTreatmentRepo implements TreatmentRepository using MongoDB.
type MongoTreatmentRepo struct {
	coll *mongo.Collection
}

// NewMongoTreatmentRepo creates a new instance of TreatmentRepository using MongoDB.
func NewMongoTreatmentRepo() TreatmentRepository {
	return &MongoTreatmentRepo{coll: database.Collection("appointmentOptions")}
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// GetAll retrieves all treatment options (full documents).
func (r *MongoTreatmentRepo) GetAll() ([]models.TreatmentOption, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, repository.Unavailable("failed to retrieve treatment options", err)
	}
	defer cursor.Close(ctx)

	var opts []models.TreatmentOption
	for cursor.Next(ctx) {
		var o models.TreatmentOption
		if err := cursor.Decode(&o); err != nil {
			return nil, repository.Unavailable("failed to decode treatment option", err)
		}
		opts = append(opts, o)
	}
	return opts, nil
}

// GetAllNames retrieves the name-only projection of the catalog.
func (r *MongoTreatmentRepo) GetAllNames() ([]models.SpecialtyName, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	findOpts := options.Find().SetProjection(bson.M{"name": 1})
	cursor, err := r.coll.Find(ctx, bson.M{}, findOpts)
	if err != nil {
		return nil, repository.Unavailable("failed to retrieve specialties", err)
	}
	defer cursor.Close(ctx)

	var names []models.SpecialtyName
	for cursor.Next(ctx) {
		var n models.SpecialtyName
		if err := cursor.Decode(&n); err != nil {
			return nil, repository.Unavailable("failed to decode specialty", err)
		}
		names = append(names, n)
	}
	return names, nil
}

// Create inserts a new treatment option document.
func (r *MongoTreatmentRepo) Create(option *models.TreatmentOption) (*models.TreatmentOption, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, option)
	if err != nil {
		return nil, repository.Unavailable("failed to create treatment option", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		option.ID = oid
	}
	return option, nil
}

// UpdateAllPrices sets the price field on every catalog entry.
func (r *MongoTreatmentRepo) UpdateAllPrices(price float64) (int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"price": price}}
	res, err := r.coll.UpdateMany(ctx, bson.M{}, update)
	if err != nil {
		return 0, repository.Unavailable("failed to update treatment prices", err)
	}
	return res.ModifiedCount, nil
}
