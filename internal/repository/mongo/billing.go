package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Pr0fessionalBum/MedicalMDB/internal/model"
	"github.com/Pr0fessionalBum/MedicalMDB/internal/repository"
)

type billingRepository struct {
	coll *mongo.Collection
}

func NewBillingRepository(db *mongo.Database) repository.BillingRepository {
	return &billingRepository{coll: db.Collection(collBillings)}
}

// Create inserts the billing record as-is. CreatedAt/UpdatedAt are set
// by the generator (CreatedAt mirrors the appointment date) and must
// not be overwritten here.
func (r *billingRepository) Create(ctx context.Context, billing *model.Billing) error {
	if _, err := r.coll.InsertOne(ctx, billing); err != nil {
		return fmt.Errorf("failed to create billing record: %w", err)
	}
	return nil
}

func (r *billingRepository) DeleteAll(ctx context.Context) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return fmt.Errorf("failed to clear billing records: %w", err)
	}
	return nil
}
