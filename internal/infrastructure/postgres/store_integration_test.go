package postgres

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fieldstock-api/internal/domain"
	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/pkg/config"
)

// openTestStore abre POSTGRES_TEST_URL y vacía las tablas antes y después del test.
// Sin la variable el test se omite.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	url := os.Getenv("POSTGRES_TEST_URL")
	if url == "" {
		t.Skip("POSTGRES_TEST_URL no configurado")
	}
	ctx := context.Background()
	s, err := Open(ctx, config.DBConfig{Driver: "postgres", DatabaseURL: url})
	require.NoError(t, err)

	truncate := func() {
		_, err := s.pool.Exec(ctx, `TRUNCATE "user", inventoryitem, technicianstock, workorder`)
		require.NoError(t, err)
	}
	truncate()
	t.Cleanup(func() {
		truncate()
		_ = s.Close(ctx)
	})
	return s
}

func TestIntegration_UserEmailUnico(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first := &entity.User{ID: uuid.New().String(), Name: "Jan", Email: "jan@example.com", Role: entity.RoleTechnician, PasswordHash: "$2a$10$hash", IsActive: true}
	require.NoError(t, s.Users().Create(ctx, first))
	err := s.Users().Create(ctx, &entity.User{ID: uuid.New().String(), Name: "Jan 2", Email: "jan@example.com", Role: entity.RoleOffice, PasswordHash: "$2a$10$hash"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)

	got, err := s.Users().GetByEmail(ctx, "jan@example.com")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, first.ID, got.ID)

	missing, err := s.Users().GetByEmail(ctx, "nadie@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestIntegration_StockUnaFilaPorUsuarioYSKU(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Stock()

	a := &entity.TechnicianStock{UserID: "u-1", SKU: "X", Quantity: -5}
	require.NoError(t, repo.Upsert(ctx, a))
	b := &entity.TechnicianStock{UserID: "u-1", SKU: "X", Quantity: 7}
	require.NoError(t, repo.Upsert(ctx, b))
	require.NoError(t, repo.Upsert(ctx, &entity.TechnicianStock{UserID: "u-2", SKU: "X", Quantity: 1}))

	rows, err := repo.ListByUser(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 7, rows[0].Quantity)
	assert.Equal(t, a.ID, b.ID, "ON CONFLICT conserva la fila original")
	assert.Equal(t, a.ID, rows[0].ID)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestIntegration_CatalogoSinSKUDuplicados(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.Items()

	for i := 0; i < 2; i++ {
		require.NoError(t, repo.UpsertBySKU(ctx, &entity.InventoryItem{SKU: "1001", Name: "Kabel", Supplier: entity.DefaultSupplier, Active: true}))
		require.NoError(t, repo.UpsertBySKU(ctx, &entity.InventoryItem{SKU: "2002", Name: "Schakelaar", Supplier: entity.DefaultSupplier, Active: true}))
	}
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "1001", list[0].SKU)
}

func TestIntegration_WebhookActualizaMismaOrden(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	repo := s.WorkOrders()

	require.NoError(t, repo.MarkCompleted(ctx, "OR-1", "tech@example.com", "2024-05-01T10:00:00Z"))
	require.NoError(t, repo.MarkCompleted(ctx, "OR-1", "", "2024-05-02T08:30:00Z"))

	wo, err := repo.GetByOrderID(ctx, "OR-1")
	require.NoError(t, err)
	require.NotNil(t, wo)
	assert.Equal(t, entity.WorkOrderCompleted, wo.Status)
	assert.Equal(t, "2024-05-02T08:30:00Z", wo.CompletedAt)
	assert.Equal(t, "tech@example.com", wo.TechnicianEmail)

	names, err := s.CollectionNames(ctx)
	require.NoError(t, err)
	assert.Contains(t, names, "workorder")
}
