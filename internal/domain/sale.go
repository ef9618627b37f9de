package domain

import "context"

// Sale representa una venta registrada.
// CustomerID y ProductID referencian entidades existentes al momento del alta;
// como no hay bajas, las referencias siguen siendo válidas toda la vida de la venta.
// Total se calcula una sola vez (precio unitario × cantidad) y es inmutable:
// cambios posteriores de precio no lo afectan.
type Sale struct {
	ID         int     `json:"id"`
	CustomerID int     `json:"customer_id"`
	ProductID  int     `json:"product_id"`
	Quantity   int     `json:"quantity"`
	Total      float64 `json:"total"`
}

// --- Interfaces de Contrato ---

// SaleService es la interfaz que la capa de Servicio DEBE implementar.
// No existe operación de anulación ni devolución: el stock descontado
// no se restaura por ninguna operación del sistema.
type SaleService interface {
	CreateSale(ctx context.Context, customerID, productID, quantity int) (Sale, error)
	ListSales(ctx context.Context) ([]Sale, error)
	SaleCount(ctx context.Context) int
}
