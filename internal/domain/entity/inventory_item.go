package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultSupplier proveedor del catálogo cuando no se indica otro.
const DefaultSupplier = "mijninstallatiepartner"

// InventoryItem artículo del catálogo maestro del proveedor.
// Solo se crea/actualiza por el upsert de la sincronización (clave: SKU).
type InventoryItem struct {
	SKU         string // referencia/artículo del proveedor, único por proveedor
	Name        string
	Description string
	Unit        string // unidad de medida, ej. "st"
	Supplier    string
	Price       *decimal.Decimal // opcional, >= 0
	Active      bool
	UpdatedAt   time.Time
}
