package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/internal/domain/repository"
)

var _ repository.InventoryItemRepository = (*InventoryItemRepository)(nil)

// InventoryItemRepository catálogo en la colección "inventoryitem".
type InventoryItemRepository struct {
	collection *mongo.Collection
}

// NewInventoryItemRepository construye el repositorio.
func NewInventoryItemRepository(db *mongo.Database) *InventoryItemRepository {
	return &InventoryItemRepository{collection: db.Collection(repository.CollectionInventoryItem)}
}

// UpsertBySKU actualiza name, supplier, active y updated_at; el resto solo se escribe al insertar.
func (r *InventoryItemRepository) UpsertBySKU(ctx context.Context, it *entity.InventoryItem) error {
	updatedAt := it.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	set := bson.M{
		"sku":        it.SKU,
		"name":       it.Name,
		"supplier":   it.Supplier,
		"active":     it.Active,
		"updated_at": updatedAt,
	}
	onInsert := bson.M{}
	if it.Description != "" {
		onInsert["description"] = it.Description
	}
	if it.Unit != "" {
		onInsert["unit"] = it.Unit
	}
	price, err := decimalToBSON(it.Price)
	if err != nil {
		return fmt.Errorf("price %s: %w", it.SKU, err)
	}
	if price != nil {
		onInsert["price"] = price
	}
	update := bson.M{"$set": set}
	if len(onInsert) > 0 {
		update["$setOnInsert"] = onInsert
	}
	_, err = r.collection.UpdateOne(ctx, bson.M{"sku": it.SKU}, update, options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("upsert inventoryitem: %w", err)
	}
	return nil
}

// GetBySKU obtiene un artículo por SKU.
func (r *InventoryItemRepository) GetBySKU(ctx context.Context, sku string) (*entity.InventoryItem, error) {
	var doc itemDoc
	err := r.collection.FindOne(ctx, bson.M{"sku": sku}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find inventoryitem: %w", err)
	}
	return doc.toEntity()
}

// List devuelve el catálogo ordenado por SKU.
func (r *InventoryItemRepository) List(ctx context.Context) ([]*entity.InventoryItem, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "sku", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("list inventoryitem: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []itemDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode inventoryitem: %w", err)
	}
	list := make([]*entity.InventoryItem, 0, len(docs))
	for i := range docs {
		it, err := docs[i].toEntity()
		if err != nil {
			return nil, err
		}
		list = append(list, it)
	}
	return list, nil
}

// Count número de artículos.
func (r *InventoryItemRepository) Count(ctx context.Context) (int64, error) {
	return r.collection.CountDocuments(ctx, bson.M{})
}
