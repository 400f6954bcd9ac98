package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Booking is a patient's reservation of one treatment slot on one date.
// Bookings are immutable once created. AppointmentDate is an opaque string
// equality key; no calendar normalization or timezone handling is applied.
type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	AppointmentDate string             `bson:"appointmentDate" json:"appointmentDate"`
	Email           string             `bson:"email" json:"email"`
	Treatment       string             `bson:"treatment" json:"treatment"`
	Slot            string             `bson:"slot" json:"slot"`
	PatientName     string             `bson:"patientName,omitempty" json:"patientName,omitempty"`
	Phone           string             `bson:"phone,omitempty" json:"phone,omitempty"`
}
