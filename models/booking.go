package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking represents a patient's appointment for one slot of a service.
// Treatment holds the Service name and Patient the patient's email.
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	TreatmentID   string             `bson:"treatmentId,omitempty" json:"treatmentId,omitempty"`
	Treatment     string             `bson:"treatment" json:"treatment" binding:"required"`
	Date          string             `bson:"date" json:"date" binding:"required"`
	Slot          string             `bson:"slot" json:"slot" binding:"required"`
	Patient       string             `bson:"patient" json:"patient" binding:"required,email"`
	PatientName   string             `bson:"patientName,omitempty" json:"patientName,omitempty"`
	Phone         string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Price         float64            `bson:"price,omitempty" json:"price,omitempty"`
	Paid          bool               `bson:"paid" json:"paid"`
	TransactionID string             `bson:"transactionId,omitempty" json:"transactionId,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

// AdmissionResult is the outcome of a booking request. A duplicate
// (treatment, date, patient) is reported with Success=false and the
// booking that already holds the place.
type AdmissionResult struct {
	Success bool     `json:"success"`
	Booking *Booking `json:"booking"`
}
