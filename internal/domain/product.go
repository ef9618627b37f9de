package domain

import "context"

// Product representa un producto del catálogo (la Entidad).
// El stock se descuenta únicamente al registrar una venta y nunca queda negativo.
type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Stock int     `json:"stock"`
}

// ProductUpdate es el payload de modificación de un producto.
// Nombre vacío significa "conservar". Precio y stock viajan como texto crudo:
// vacío conserva, y un valor no parseable o negativo se descarta con un aviso
// (nunca aborta la modificación completa). El alta, en cambio, valida duro:
// las dos políticas son distintas a propósito y no deben unificarse.
type ProductUpdate struct {
	Name      string `json:"name"`
	PriceText string `json:"price_text"`
	StockText string `json:"stock_text"`
}

// --- Interfaces de Contrato ---

// ProductService es la interfaz que la capa de Servicio DEBE implementar.
type ProductService interface {
	CreateProduct(ctx context.Context, name string, price float64, stock int) (Product, error)
	// UpdateProduct retorna, además del producto resultante, los avisos de
	// campos descartados por no ser parseables.
	UpdateProduct(ctx context.Context, id int, update ProductUpdate) (Product, []string, error)
	GetProductByID(ctx context.Context, id int) (Product, error)
	ListProducts(ctx context.Context) ([]Product, error)
	ProductCount(ctx context.Context) int
}
