package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Pr0fessionalBum/MedicalMDB/internal/model"
	"github.com/Pr0fessionalBum/MedicalMDB/internal/repository"
)

type physicianRepository struct {
	coll *mongo.Collection
}

func NewPhysicianRepository(db *mongo.Database) repository.PhysicianRepository {
	return &physicianRepository{coll: db.Collection(collPhysicians)}
}

func (r *physicianRepository) Create(ctx context.Context, physician *model.Physician) error {
	if physician.CreatedAt.IsZero() {
		physician.CreatedAt = time.Now()
	}
	if _, err := r.coll.InsertOne(ctx, physician); err != nil {
		return fmt.Errorf("failed to create physician: %w", err)
	}
	return nil
}

// AppendSchedule pushes booked-slot entries onto a physician's
// schedule without rewriting the rest of the document.
func (r *physicianRepository) AppendSchedule(ctx context.Context, id primitive.ObjectID, entries []string) error {
	if len(entries) == 0 {
		return nil
	}
	update := bson.M{"$push": bson.M{"schedule": bson.M{"$each": entries}}}
	if _, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update); err != nil {
		return fmt.Errorf("failed to append schedule entries: %w", err)
	}
	return nil
}

func (r *physicianRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear physicians: %w", err)
	}
	return nil
}
