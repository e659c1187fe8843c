// models/service.go
package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service is a treatment offered by the clinic. Name is unique and is what
// bookings reference as their treatment; Slots are opaque labels such as
// "9:00 AM" in display order.
type Service struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name  string             `bson:"name" json:"name" binding:"required"`
	Price float64            `bson:"price,omitempty" json:"price,omitempty"`
	Slots []string           `bson:"slots,omitempty" json:"slots,omitempty"`
}

// ServiceAvailability is a service with only the slots still open on a date.
// Slots is always present in the JSON output, empty when fully booked.
type ServiceAvailability struct {
	ID    primitive.ObjectID `json:"_id,omitempty"`
	Name  string             `json:"name"`
	Price float64            `json:"price,omitempty"`
	Slots []string           `json:"slots"`
}
