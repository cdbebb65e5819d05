package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/Pr0fessionalBum/MedicalMDB/internal/model"
)

// All repository interfaces in one file
type (
	// PhysicianRepository handles physician persistence
	PhysicianRepository interface {
		Create(ctx context.Context, physician *model.Physician) error
		AppendSchedule(ctx context.Context, id primitive.ObjectID, entries []string) error
		DeleteAll(ctx context.Context) error
	}

	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) error
		DeleteAll(ctx context.Context) error
	}

	PrescriptionRepository interface {
		Create(ctx context.Context, prescription *model.Prescription) error
		DeleteAll(ctx context.Context) error
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) error
		DeleteAll(ctx context.Context) error
	}

	BillingRepository interface {
		Create(ctx context.Context, billing *model.Billing) error
		DeleteAll(ctx context.Context) error
	}
)
