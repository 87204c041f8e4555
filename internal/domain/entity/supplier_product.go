package entity

// SupplierProduct par (SKU, nombre) extraído de la página de un proveedor.
type SupplierProduct struct {
	SKU  string `json:"sku"`
	Name string `json:"name"`
}
