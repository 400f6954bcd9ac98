package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"docport/database"
	"docport/database/repository"
	"docport/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

// NewMongoBookingRepo creates a new instance of BookingRepository using MongoDB.
func NewMongoBookingRepo() BookingRepository {
	repo := &MongoBookingRepo{coll: database.Collection("bookings")}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

// newContext creates a context with the given timeout.
func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

// Create inserts a new booking document. A duplicate-key rejection from the
// unique owner index is reported as ErrDuplicate.
func (r *MongoBookingRepo) Create(booking *models.Booking) (*models.Booking, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrDuplicate
		}
		return nil, repository.Unavailable("failed to create booking", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		booking.ID = oid
	}
	return booking, nil
}

// GetByID retrieves a booking by its ID. An unknown or malformed ID yields
// (nil, nil), matching the empty response the API contract expects.
func (r *MongoBookingRepo) GetByID(id string) (*models.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&booking); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, repository.Unavailable(fmt.Sprintf("failed to fetch booking with id %s", id), err)
	}
	return &booking, nil
}

// GetByEmail retrieves all bookings held by the given email.
func (r *MongoBookingRepo) GetByEmail(email string) ([]models.Booking, error) {
	return r.find(bson.M{"email": email})
}

// GetByDate retrieves all bookings for the given appointment date. The date
// is an opaque equality key; no normalization is applied.
func (r *MongoBookingRepo) GetByDate(date string) ([]models.Booking, error) {
	return r.find(bson.M{"appointmentDate": date})
}

// FindByOwner retrieves bookings matching all of (date, email, treatment).
func (r *MongoBookingRepo) FindByOwner(date, email, treatment string) ([]models.Booking, error) {
	return r.find(bson.M{
		"appointmentDate": date,
		"email":           email,
		"treatment":       treatment,
	})
}

func (r *MongoBookingRepo) find(filter bson.M) ([]models.Booking, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, repository.Unavailable("failed to retrieve bookings", err)
	}
	defer cursor.Close(ctx)

	var bookings []models.Booking
	for cursor.Next(ctx) {
		var b models.Booking
		if err := cursor.Decode(&b); err != nil {
			return nil, repository.Unavailable("failed to decode booking", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, nil
}
