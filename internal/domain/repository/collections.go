package repository

// Nombres fijos de las colecciones (tablas en el adaptador Postgres).
const (
	CollectionUser            = "user"
	CollectionInventoryItem   = "inventoryitem"
	CollectionTechnicianStock = "technicianstock"
	CollectionWorkOrder       = "workorder"
)

// Collections devuelve todas las colecciones que usa el servicio.
func Collections() []string {
	return []string{CollectionUser, CollectionInventoryItem, CollectionTechnicianStock, CollectionWorkOrder}
}
