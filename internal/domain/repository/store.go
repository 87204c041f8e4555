package repository

import "context"

// StoreInspector expone el estado del document store para el endpoint de diagnóstico.
type StoreInspector interface {
	Ping(ctx context.Context) error
	CollectionNames(ctx context.Context) ([]string, error)
}
