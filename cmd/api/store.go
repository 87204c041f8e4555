package main

import (
	"context"
	"fmt"

	"github.com/jhoicas/fieldstock-api/internal/domain/repository"
	"github.com/jhoicas/fieldstock-api/internal/infrastructure/memory"
	"github.com/jhoicas/fieldstock-api/internal/infrastructure/mongo"
	"github.com/jhoicas/fieldstock-api/internal/infrastructure/postgres"
	"github.com/jhoicas/fieldstock-api/pkg/config"
)

// backend agrupa los repositorios del driver elegido en DB_DRIVER.
type backend struct {
	users      repository.UserRepository
	items      repository.InventoryItemRepository
	stock      repository.StockRepository
	workOrders repository.WorkOrderRepository
	inspector  repository.StoreInspector
	close      func(ctx context.Context) error
}

func openBackend(ctx context.Context, cfg config.DBConfig) (*backend, error) {
	switch cfg.Driver {
	case config.DriverMongo:
		s, err := mongo.Connect(ctx, cfg.ConnectionString(), cfg.DBName)
		if err != nil {
			return nil, err
		}
		return &backend{
			users: s.Users(), items: s.Items(), stock: s.Stock(), workOrders: s.WorkOrders(),
			inspector: s, close: s.Close,
		}, nil
	case config.DriverPostgres:
		s, err := postgres.Open(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &backend{
			users: s.Users(), items: s.Items(), stock: s.Stock(), workOrders: s.WorkOrders(),
			inspector: s, close: s.Close,
		}, nil
	case config.DriverMemory:
		s := memory.NewStore()
		return &backend{
			users: s.Users(), items: s.Items(), stock: s.Stock(), workOrders: s.WorkOrders(),
			inspector: s, close: func(context.Context) error { return nil },
		}, nil
	default:
		return nil, fmt.Errorf("driver desconocido %q", cfg.Driver)
	}
}
