package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/internal/domain/repository"
)

var _ repository.WorkOrderRepository = (*WorkOrderRepository)(nil)

// WorkOrderRepository órdenes de trabajo en la colección "workorder".
type WorkOrderRepository struct {
	collection *mongo.Collection
}

// NewWorkOrderRepository construye el repositorio.
func NewWorkOrderRepository(db *mongo.Database) *WorkOrderRepository {
	return &WorkOrderRepository{collection: db.Collection(repository.CollectionWorkOrder)}
}

// MarkCompleted upsert por order_id.
func (r *WorkOrderRepository) MarkCompleted(ctx context.Context, orderID, technicianEmail, completedAt string) error {
	set := bson.M{
		"status":       entity.WorkOrderCompleted,
		"completed_at": completedAt,
		"updated_at":   time.Now().UTC(),
	}
	if technicianEmail != "" {
		set["technician_email"] = technicianEmail
	}
	update := bson.M{
		"$set":         set,
		"$setOnInsert": bson.M{"_id": uuid.New().String()},
	}
	_, err := r.collection.UpdateOne(ctx, bson.M{"order_id": orderID}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert workorder: %w", err)
	}
	return nil
}

// GetByOrderID obtiene una orden por order_id.
func (r *WorkOrderRepository) GetByOrderID(ctx context.Context, orderID string) (*entity.WorkOrder, error) {
	var doc workOrderDoc
	err := r.collection.FindOne(ctx, bson.M{"order_id": orderID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find workorder: %w", err)
	}
	return doc.toEntity()
}
