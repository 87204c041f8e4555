package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepository)(nil)

// StockRepository stock por técnico en la colección "technicianstock".
type StockRepository struct {
	collection *mongo.Collection
}

// NewStockRepository construye el repositorio.
func NewStockRepository(db *mongo.Database) *StockRepository {
	return &StockRepository{collection: db.Collection(repository.CollectionTechnicianStock)}
}

// Upsert fija quantity para (user_id, sku) y devuelve en s.ID el _id del documento.
func (r *StockRepository) Upsert(ctx context.Context, s *entity.TechnicianStock) error {
	updatedAt := s.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	filter := bson.M{"user_id": s.UserID, "sku": s.SKU}
	update := bson.M{
		"$set":         bson.M{"quantity": entity.ClampQuantity(s.Quantity), "updated_at": updatedAt},
		"$setOnInsert": bson.M{"_id": uuid.New().String()},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var doc stockDoc
	if err := r.collection.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		return fmt.Errorf("upsert technicianstock: %w", err)
	}
	saved, err := doc.toEntity()
	if err != nil {
		return err
	}
	s.ID = saved.ID
	s.Quantity = saved.Quantity
	return nil
}

// ListByUser filas de un técnico ordenadas por SKU.
func (r *StockRepository) ListByUser(ctx context.Context, userID string) ([]*entity.TechnicianStock, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

// ListAll todas las filas.
func (r *StockRepository) ListAll(ctx context.Context) ([]*entity.TechnicianStock, error) {
	return r.find(ctx, bson.M{})
}

func (r *StockRepository) find(ctx context.Context, filter bson.M) ([]*entity.TechnicianStock, error) {
	opts := options.Find().SetSort(bson.D{{Key: "user_id", Value: 1}, {Key: "sku", Value: 1}})
	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find technicianstock: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []stockDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode technicianstock: %w", err)
	}
	rows := make([]*entity.TechnicianStock, 0, len(docs))
	for i := range docs {
		row, err := docs[i].toEntity()
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
