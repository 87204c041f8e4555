// Package memory implementa los puertos de persistencia en memoria del proceso.
// Se usa en tests y con DB_DRIVER=memory para desarrollo local; no es un caché.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/fieldstock-api/internal/domain"
	"github.com/jhoicas/fieldstock-api/internal/domain/entity"
	"github.com/jhoicas/fieldstock-api/internal/domain/repository"
)

var (
	_ repository.UserRepository          = (*UserRepo)(nil)
	_ repository.InventoryItemRepository = (*InventoryItemRepo)(nil)
	_ repository.StockRepository         = (*StockRepo)(nil)
	_ repository.WorkOrderRepository     = (*WorkOrderRepo)(nil)
	_ repository.StoreInspector          = (*Store)(nil)
)

type stockKey struct {
	userID string
	sku    string
}

// Store contiene las cuatro colecciones protegidas por un único mutex;
// cada operación es atómica respecto de las demás.
type Store struct {
	mu         sync.RWMutex
	users      map[string]entity.User
	items      map[string]entity.InventoryItem
	stock      map[stockKey]entity.TechnicianStock
	workOrders map[string]entity.WorkOrder
	now        func() time.Time
}

// NewStore crea un store vacío.
func NewStore() *Store {
	return &Store{
		users:      make(map[string]entity.User),
		items:      make(map[string]entity.InventoryItem),
		stock:      make(map[stockKey]entity.TechnicianStock),
		workOrders: make(map[string]entity.WorkOrder),
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Ping siempre responde.
func (s *Store) Ping(_ context.Context) error { return nil }

// CollectionNames devuelve las colecciones que tienen al menos un documento.
func (s *Store) CollectionNames(_ context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var names []string
	if len(s.users) > 0 {
		names = append(names, repository.CollectionUser)
	}
	if len(s.items) > 0 {
		names = append(names, repository.CollectionInventoryItem)
	}
	if len(s.stock) > 0 {
		names = append(names, repository.CollectionTechnicianStock)
	}
	if len(s.workOrders) > 0 {
		names = append(names, repository.CollectionWorkOrder)
	}
	return names, nil
}

// Users, Items, Stock y WorkOrders devuelven los adaptadores de cada puerto.
func (s *Store) Users() *UserRepo           { return &UserRepo{s: s} }
func (s *Store) Items() *InventoryItemRepo  { return &InventoryItemRepo{s: s} }
func (s *Store) Stock() *StockRepo          { return &StockRepo{s: s} }
func (s *Store) WorkOrders() *WorkOrderRepo { return &WorkOrderRepo{s: s} }

// UserRepo implementación en memoria de UserRepository.
type UserRepo struct{ s *Store }

// Create inserta el usuario; el email es único.
func (r *UserRepo) Create(_ context.Context, user *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == user.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	r.s.users[user.ID] = *user
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

// GetByEmail obtiene un usuario por email.
func (r *UserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

// InventoryItemRepo implementación en memoria del catálogo.
type InventoryItemRepo struct{ s *Store }

// UpsertBySKU inserta o refresca name, supplier, active y updated_at.
// Description, unit y price existentes se conservan.
func (r *InventoryItemRepo) UpsertBySKU(_ context.Context, item *entity.InventoryItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.items[item.SKU]
	if !ok {
		cur = entity.InventoryItem{SKU: item.SKU, Description: item.Description, Unit: item.Unit, Price: item.Price}
	}
	cur.Name = item.Name
	cur.Supplier = item.Supplier
	cur.Active = item.Active
	cur.UpdatedAt = item.UpdatedAt
	if cur.UpdatedAt.IsZero() {
		cur.UpdatedAt = r.s.now()
	}
	r.s.items[item.SKU] = cur
	return nil
}

// GetBySKU obtiene un artículo por SKU.
func (r *InventoryItemRepo) GetBySKU(_ context.Context, sku string) (*entity.InventoryItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	it, ok := r.s.items[sku]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

// List devuelve el catálogo ordenado por SKU.
func (r *InventoryItemRepo) List(_ context.Context) ([]*entity.InventoryItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.InventoryItem, 0, len(r.s.items))
	for _, it := range r.s.items {
		it := it
		list = append(list, &it)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].SKU < list[j].SKU })
	return list, nil
}

// Count número de artículos.
func (r *InventoryItemRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.items)), nil
}

// StockRepo implementación en memoria del stock por técnico.
type StockRepo struct{ s *Store }

// Upsert por (UserID, SKU); conserva el ID del registro existente.
func (r *StockRepo) Upsert(_ context.Context, stock *entity.TechnicianStock) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	key := stockKey{userID: stock.UserID, sku: stock.SKU}
	cur, ok := r.s.stock[key]
	if !ok {
		cur = entity.TechnicianStock{ID: uuid.New().String(), UserID: stock.UserID, SKU: stock.SKU}
	}
	cur.Quantity = entity.ClampQuantity(stock.Quantity)
	cur.UpdatedAt = stock.UpdatedAt
	if cur.UpdatedAt.IsZero() {
		cur.UpdatedAt = r.s.now()
	}
	r.s.stock[key] = cur
	stock.ID = cur.ID
	return nil
}

// ListByUser filas de un técnico ordenadas por SKU.
func (r *StockRepo) ListByUser(_ context.Context, userID string) ([]*entity.TechnicianStock, error) {
	return r.list(func(s entity.TechnicianStock) bool { return s.UserID == userID }), nil
}

// ListAll todas las filas, ordenadas por técnico y SKU.
func (r *StockRepo) ListAll(_ context.Context) ([]*entity.TechnicianStock, error) {
	return r.list(func(entity.TechnicianStock) bool { return true }), nil
}

func (r *StockRepo) list(keep func(entity.TechnicianStock) bool) []*entity.TechnicianStock {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	list := make([]*entity.TechnicianStock, 0)
	for _, st := range r.s.stock {
		if keep(st) {
			st := st
			list = append(list, &st)
		}
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].UserID != list[j].UserID {
			return list[i].UserID < list[j].UserID
		}
		return list[i].SKU < list[j].SKU
	})
	return list
}

// WorkOrderRepo implementación en memoria de órdenes de trabajo.
type WorkOrderRepo struct{ s *Store }

// MarkCompleted upsert por OrderID.
func (r *WorkOrderRepo) MarkCompleted(_ context.Context, orderID, technicianEmail, completedAt string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.workOrders[orderID]
	if !ok {
		cur = entity.WorkOrder{OrderID: orderID}
	}
	cur.Status = entity.WorkOrderCompleted
	cur.CompletedAt = completedAt
	if technicianEmail != "" {
		cur.TechnicianEmail = technicianEmail
	}
	cur.UpdatedAt = r.s.now()
	r.s.workOrders[orderID] = cur
	return nil
}

// GetByOrderID obtiene una orden por su clave externa.
func (r *WorkOrderRepo) GetByOrderID(_ context.Context, orderID string) (*entity.WorkOrder, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	wo, ok := r.s.workOrders[orderID]
	if !ok {
		return nil, nil
	}
	return &wo, nil
}

// WorkOrderCount número de órdenes (tests).
func (r *WorkOrderRepo) WorkOrderCount() int {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return len(r.s.workOrders)
}
