package domain

import "context"

// CustomerSalesSummary agrega las ventas de un cliente.
// Count/Total en cero es un resultado válido ("sin ventas"),
// distinto de un cliente inexistente (NotFound).
type CustomerSalesSummary struct {
	Customer Customer `json:"customer"`
	Count    int      `json:"count"`
	Total    float64  `json:"total"`
}

// ProductSalesSummary agrega las ventas de un producto:
// unidades vendidas e ingresos acumulados.
type ProductSalesSummary struct {
	Product Product `json:"product"`
	Units   int     `json:"units"`
	Revenue float64 `json:"revenue"`
}

// InventoryLine es el renglón del inventario valorizado de un producto.
type InventoryLine struct {
	Product  Product `json:"product"`
	Subtotal float64 `json:"subtotal"` // precio unitario × stock actual
}

// InventoryReport es el inventario valorizado completo.
type InventoryReport struct {
	Lines []InventoryLine `json:"lines"`
	Total float64         `json:"total"`
}

// --- Interfaces de Contrato ---

// ReportService define las consultas de solo lectura sobre el almacén.
type ReportService interface {
	ListCustomers(ctx context.Context) ([]Customer, error)
	ListProducts(ctx context.Context) ([]Product, error)
	ListSales(ctx context.Context) ([]Sale, error)
	TotalRevenue(ctx context.Context) (float64, error)
	SalesByCustomer(ctx context.Context, customerID int) (CustomerSalesSummary, error)
	SalesByProduct(ctx context.Context, productID int) (ProductSalesSummary, error)
	ValuedInventory(ctx context.Context) (InventoryReport, error)
}
