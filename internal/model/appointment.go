package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DiagnosisEntry is a structured diagnosis embedded in an appointment.
type DiagnosisEntry struct {
	Code        string    `bson:"code" json:"code"`
	Description string    `bson:"description" json:"description"`
	Chronic     bool      `bson:"chronic" json:"chronic"`
	RecordedAt  time.Time `bson:"recordedAt" json:"recorded_at"`
}

type Appointment struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	PatientID   primitive.ObjectID `bson:"patientID" json:"patient_id"`
	PhysicianID primitive.ObjectID `bson:"physicianID" json:"physician_id"`
	Date        time.Time          `bson:"date" json:"date"`
	Notes       string             `bson:"notes" json:"notes"`
	Summary     string             `bson:"summary" json:"summary"`
	Diagnoses   []DiagnosisEntry   `bson:"diagnoses" json:"diagnoses"`
	CreatedAt   time.Time          `bson:"createdAt" json:"created_at"`
}
