package saleservice

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"sisventas/internal/domain"
	apperror "sisventas/internal/errors"
	"sisventas/internal/pkg/logger"
)

// SaleRepository define el contrato que este Servicio espera del almacén.
// El registro de una venta toca dos colecciones: descuenta stock del producto
// y agrega la venta, siempre en ese orden y solo tras validar todo.
type SaleRepository interface {
	SalesFull(ctx context.Context) bool
	AppendSale(ctx context.Context, v domain.Sale) (domain.Sale, error)
	Sales(ctx context.Context) []domain.Sale
	SaleCount(ctx context.Context) int
	FindCustomerByID(ctx context.Context, id int) (domain.Customer, error)
	FindProductByID(ctx context.Context, id int) (domain.Product, error)
	UpdateProduct(ctx context.Context, p domain.Product) (domain.Product, error)
	CustomerCount(ctx context.Context) int
	ProductCount(ctx context.Context) int
}

// Service es la estructura que implementa la interfaz domain.SaleService.
type Service struct {
	repo   SaleRepository
	logger logger.Logger
}

// NewService crea y retorna una nueva instancia del Servicio de Ventas.
func NewService(repo SaleRepository, log logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// CreateSale registra una venta. La cadena de validación es estricta y en orden:
//
//  1. capacidad de ventas (antes de cualquier otra cosa),
//  2. existencia de al menos un cliente y un producto,
//  3. el cliente referenciado existe,
//  4. el producto referenciado existe,
//  5. el producto tiene stock disponible,
//  6. la cantidad está en [1, stock actual].
//
// Recién entonces se congela el total (precio × cantidad), se descuenta el
// stock una única vez y se agrega la venta. Ninguna validación fallida deja
// mutación parcial.
func (s *Service) CreateSale(ctx context.Context, customerID, productID, quantity int) (domain.Sale, error) {
	opID := uuid.NewString()
	s.logger.Debug("Iniciando registro de venta en el servicio.", map[string]interface{}{
		"op_id":       opID,
		"customer_id": customerID,
		"product_id":  productID,
		"quantity":    quantity,
	})

	if s.repo.SalesFull(ctx) {
		return domain.Sale{}, apperror.NewCapacityError("Capacidad de ventas llena.")
	}
	if s.repo.CustomerCount(ctx) == 0 {
		return domain.Sale{}, apperror.NewPreconditionError("No hay clientes registrados.")
	}
	if s.repo.ProductCount(ctx) == 0 {
		return domain.Sale{}, apperror.NewPreconditionError("No hay productos registrados.")
	}

	if _, err := s.repo.FindCustomerByID(ctx, customerID); err != nil {
		s.logger.Warn("Venta rechazada: cliente inexistente.", map[string]interface{}{"op_id": opID, "customer_id": customerID})
		return domain.Sale{}, err
	}

	product, err := s.repo.FindProductByID(ctx, productID)
	if err != nil {
		s.logger.Warn("Venta rechazada: producto inexistente.", map[string]interface{}{"op_id": opID, "product_id": productID})
		return domain.Sale{}, err
	}

	if product.Stock <= 0 {
		s.logger.Warn("Venta rechazada: sin stock.", map[string]interface{}{"op_id": opID, "product_id": productID})
		return domain.Sale{}, apperror.NewOutOfStockError("Sin stock disponible.")
	}

	if quantity < 1 || quantity > product.Stock {
		return domain.Sale{}, apperror.NewValidationError(fmt.Sprintf("La cantidad debe estar en [1..%d].", product.Stock))
	}

	// Total congelado al momento de la venta: cambios posteriores de precio
	// no afectan ventas ya registradas.
	sale := domain.Sale{
		CustomerID: customerID,
		ProductID:  productID,
		Quantity:   quantity,
		Total:      product.Price * float64(quantity),
	}

	// Descuento de inventario tras confirmar la venta.
	product.Stock -= quantity
	if _, err := s.repo.UpdateProduct(ctx, product); err != nil {
		s.logger.Error("Falla al descontar stock del producto.", err)
		return domain.Sale{}, err
	}

	created, err := s.repo.AppendSale(ctx, sale)
	if err != nil {
		s.logger.Error("Falla al agregar venta al almacén.", err)
		return domain.Sale{}, err
	}

	s.logger.Info("Venta registrada.", map[string]interface{}{
		"op_id":       opID,
		"id":          created.ID,
		"customer_id": created.CustomerID,
		"product_id":  created.ProductID,
		"quantity":    created.Quantity,
		"total":       created.Total,
		"stock_left":  product.Stock,
	})
	return created, nil
}

// ListSales retorna todas las ventas en orden de registro.
func (s *Service) ListSales(ctx context.Context) ([]domain.Sale, error) {
	return s.repo.Sales(ctx), nil
}

// SaleCount retorna la cantidad de ventas registradas.
func (s *Service) SaleCount(ctx context.Context) int {
	return s.repo.SaleCount(ctx)
}
