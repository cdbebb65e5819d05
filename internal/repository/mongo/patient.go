package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Pr0fessionalBum/MedicalMDB/internal/model"
	"github.com/Pr0fessionalBum/MedicalMDB/internal/repository"
)

type patientRepository struct {
	coll *mongo.Collection
}

func NewPatientRepository(db *mongo.Database) repository.PatientRepository {
	return &patientRepository{coll: db.Collection(collPatients)}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	now := time.Now()
	patient.RefreshAge(now)
	patient.CreatedAt = now
	patient.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, patient); err != nil {
		return fmt.Errorf("failed to create patient: %w", err)
	}
	return nil
}

func (r *patientRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear patients: %w", err)
	}
	return nil
}
