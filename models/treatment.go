package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// TreatmentOption is a catalog entry for a bookable treatment.
// Slots is the canonical list of time windows the treatment can occupy on
// any day; it is not scoped to a date. Availability for a concrete date is
// derived by subtracting booked slots (see services/availability).
type TreatmentOption struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name"`
	Price float64            `bson:"price" json:"price"`
	Slots []string           `bson:"slots" json:"slots"`
}

// SpecialtyName is the name-only projection of a TreatmentOption.
type SpecialtyName struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name string             `bson:"name" json:"name"`
}
