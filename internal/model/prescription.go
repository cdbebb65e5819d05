package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PrescriptionStatus string

const (
	PrescriptionStatusActive    PrescriptionStatus = "active"
	PrescriptionStatusCompleted PrescriptionStatus = "completed"
)

type Prescription struct {
	ID             primitive.ObjectID `bson:"_id" json:"id"`
	PatientID      primitive.ObjectID `bson:"patientID" json:"patient_id"`
	PhysicianID    primitive.ObjectID `bson:"physicianID" json:"physician_id"`
	MedicationName string             `bson:"medicationName" json:"medication_name"`
	MedicationCode string             `bson:"medicationCode" json:"medication_code"`
	Dosage         string             `bson:"dosage" json:"dosage"`
	Type           string             `bson:"type" json:"type"`
	Instructions   string             `bson:"instructions" json:"instructions"`
	Frequency      string             `bson:"frequency" json:"frequency"`
	StartDate      time.Time          `bson:"startDate" json:"start_date"`
	EndDate        time.Time          `bson:"endDate" json:"end_date"`
	Status         PrescriptionStatus `bson:"status" json:"status"`
	CreatedAt      time.Time          `bson:"createdAt" json:"created_at"`
}

// StatusFor derives the prescription status from the end date. Fixed
// at generation time, never re-evaluated afterwards.
func StatusFor(endDate, now time.Time) PrescriptionStatus {
	if endDate.Before(now) {
		return PrescriptionStatusCompleted
	}
	return PrescriptionStatusActive
}
