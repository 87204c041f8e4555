package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jhoicas/fieldstock-api/internal/domain/repository"
	"github.com/jhoicas/fieldstock-api/pkg/config"
)

var _ repository.StoreInspector = (*Store)(nil)

// Store pool compartido por los repositorios PostgreSQL.
type Store struct {
	pool *pgxpool.Pool
}

// Open crea el pool y aplica el esquema.
func Open(ctx context.Context, cfg config.DBConfig) (*Store, error) {
	pool, err := NewPool(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := Migrate(ctx, NewTxRunner(pool)); err != nil {
		pool.Close()
		return nil, err
	}
	return &Store{pool: pool}, nil
}

// Close cierra el pool.
func (s *Store) Close(_ context.Context) error {
	s.pool.Close()
	return nil
}

// Ping comprueba la conexión.
func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// CollectionNames lista las tablas del esquema actual.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT table_name FROM information_schema.tables
		WHERE table_schema = current_schema() ORDER BY table_name`)
	if err != nil {
		return nil, fmt.Errorf("list tables: %w", err)
	}
	defer rows.Close()
	var names []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan table: %w", err)
		}
		names = append(names, n)
	}
	return names, rows.Err()
}

// Users, Items, Stock y WorkOrders construyen los repositorios sobre el pool.
func (s *Store) Users() *UserRepo           { return NewUserRepository(s.pool) }
func (s *Store) Items() *InventoryItemRepo  { return NewInventoryItemRepository(s.pool) }
func (s *Store) Stock() *StockRepo          { return NewStockRepository(s.pool) }
func (s *Store) WorkOrders() *WorkOrderRepo { return NewWorkOrderRepository(s.pool) }
