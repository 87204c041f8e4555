// Package mongo implementa los puertos de persistencia sobre MongoDB.
package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/jhoicas/fieldstock-api/internal/domain/repository"
)

var _ repository.StoreInspector = (*Store)(nil)

// Store cliente y base de datos compartidos por los repositorios.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect abre el cliente, hace ping y asegura los índices únicos.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	timeoutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(timeoutCtx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(timeoutCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	s := &Store{client: client, db: client.Database(dbName)}
	if err := s.EnsureIndexes(timeoutCtx); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return s, nil
}

// EnsureIndexes crea los índices únicos que sostienen los upserts.
// CreateMany es idempotente si el índice ya existe con la misma definición.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	unique := options.Index().SetUnique(true)
	indexes := map[string]mongo.IndexModel{
		repository.CollectionUser:            {Keys: bson.D{{Key: "email", Value: 1}}, Options: unique},
		repository.CollectionInventoryItem:   {Keys: bson.D{{Key: "sku", Value: 1}}, Options: unique},
		repository.CollectionTechnicianStock: {Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "sku", Value: 1}}, Options: unique},
		repository.CollectionWorkOrder:       {Keys: bson.D{{Key: "order_id", Value: 1}}, Options: unique},
	}
	for coll, idx := range indexes {
		if _, err := s.db.Collection(coll).Indexes().CreateOne(ctx, idx); err != nil {
			return fmt.Errorf("mongo índice %s: %w", coll, err)
		}
	}
	return nil
}

// Close desconecta el cliente.
func (s *Store) Close(ctx context.Context) error {
	disconnectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := s.client.Disconnect(disconnectCtx); err != nil {
		return fmt.Errorf("mongo disconnect: %w", err)
	}
	return nil
}

// Ping comprueba la conexión.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// CollectionNames lista las colecciones de la base de datos.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	return s.db.ListCollectionNames(ctx, bson.D{})
}

// Users, Items, Stock y WorkOrders construyen los repositorios sobre la misma base.
func (s *Store) Users() *UserRepository           { return NewUserRepository(s.db) }
func (s *Store) Items() *InventoryItemRepository  { return NewInventoryItemRepository(s.db) }
func (s *Store) Stock() *StockRepository          { return NewStockRepository(s.db) }
func (s *Store) WorkOrders() *WorkOrderRepository { return NewWorkOrderRepository(s.db) }
