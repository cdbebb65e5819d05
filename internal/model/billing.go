package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BillingStatus string

const (
	BillingStatusPaid    BillingStatus = "Paid"
	BillingStatusPending BillingStatus = "Pending"
	BillingStatusDue     BillingStatus = "Due"
)

type Billing struct {
	ID                primitive.ObjectID `bson:"_id" json:"id"`
	AppointmentID     primitive.ObjectID `bson:"appointmentID" json:"appointment_id"`
	PatientID         primitive.ObjectID `bson:"patientID" json:"patient_id"`
	Amount            int                `bson:"amount" json:"amount"`
	Status            BillingStatus      `bson:"status" json:"status"`
	PaymentDate       *time.Time         `bson:"paymentDate,omitempty" json:"payment_date,omitempty"`
	InsuranceProvider *string            `bson:"insuranceProvider,omitempty" json:"insurance_provider,omitempty"`
	PolicyNumber      *string            `bson:"policyNumber,omitempty" json:"policy_number,omitempty"`
	CoverageAmount    int                `bson:"coverageAmount" json:"coverage_amount"`
	// CreatedAt is forced to the owning appointment's date, not the
	// physical insertion time.
	CreatedAt time.Time `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updated_at"`
}
