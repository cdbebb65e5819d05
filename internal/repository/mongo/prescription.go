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

type prescriptionRepository struct {
	coll *mongo.Collection
}

func NewPrescriptionRepository(db *mongo.Database) repository.PrescriptionRepository {
	return &prescriptionRepository{coll: db.Collection(collPrescriptions)}
}

func (r *prescriptionRepository) Create(ctx context.Context, prescription *model.Prescription) error {
	if prescription.CreatedAt.IsZero() {
		prescription.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, prescription); err != nil {
		return fmt.Errorf("failed to create prescription: %w", err)
	}
	return nil
}

func (r *prescriptionRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear prescriptions: %w", err)
	}
	return nil
}
