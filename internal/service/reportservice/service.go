package reportservice

import (
	"context"

	"sisventas/internal/domain"
	"sisventas/internal/pkg/logger"
)

// ReportRepository define el contrato de solo lectura que este Servicio
// espera del almacén. Ningún reporte muta estado.
type ReportRepository interface {
	Customers(ctx context.Context) []domain.Customer
	Products(ctx context.Context) []domain.Product
	Sales(ctx context.Context) []domain.Sale
	FindCustomerByID(ctx context.Context, id int) (domain.Customer, error)
	FindProductByID(ctx context.Context, id int) (domain.Product, error)
}

// Service es la estructura que implementa la interfaz domain.ReportService.
type Service struct {
	repo   ReportRepository
	logger logger.Logger
}

// NewService crea y retorna una nueva instancia del Servicio de Reportes.
func NewService(repo ReportRepository, log logger.Logger) *Service {
	return &Service{repo: repo, logger: log}
}

// ListCustomers retorna todos los clientes en orden de alta.
func (s *Service) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.Customers(ctx), nil
}

// ListProducts retorna todos los productos en orden de alta.
func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.Products(ctx), nil
}

// ListSales retorna todas las ventas en orden de registro.
func (s *Service) ListSales(ctx context.Context) ([]domain.Sale, error) {
	return s.repo.Sales(ctx), nil
}

// TotalRevenue suma los totales de todas las ventas registradas.
func (s *Service) TotalRevenue(ctx context.Context) (float64, error) {
	var total float64
	for _, v := range s.repo.Sales(ctx) {
		total += v.Total
	}
	return total, nil
}

// SalesByCustomer agrega las ventas de un cliente: cuenta y suma importes.
// Un cliente existente sin ventas retorna 0/0.0, que es un resultado válido;
// un ID inexistente falla con NotFound.
func (s *Service) SalesByCustomer(ctx context.Context, customerID int) (domain.CustomerSalesSummary, error) {
	customer, err := s.repo.FindCustomerByID(ctx, customerID)
	if err != nil {
		s.logger.Warn("Reporte rechazado: cliente inexistente.", map[string]interface{}{"customer_id": customerID})
		return domain.CustomerSalesSummary{}, err
	}

	summary := domain.CustomerSalesSummary{Customer: customer}
	for _, v := range s.repo.Sales(ctx) {
		if v.CustomerID == customerID {
			summary.Count++
			summary.Total += v.Total
		}
	}

	s.logger.Debug("Ventas por cliente calculadas.", map[string]interface{}{"customer_id": customerID, "count": summary.Count})
	return summary, nil
}

// SalesByProduct agrega las ventas de un producto: unidades vendidas e ingresos.
func (s *Service) SalesByProduct(ctx context.Context, productID int) (domain.ProductSalesSummary, error) {
	product, err := s.repo.FindProductByID(ctx, productID)
	if err != nil {
		s.logger.Warn("Reporte rechazado: producto inexistente.", map[string]interface{}{"product_id": productID})
		return domain.ProductSalesSummary{}, err
	}

	summary := domain.ProductSalesSummary{Product: product}
	for _, v := range s.repo.Sales(ctx) {
		if v.ProductID == productID {
			summary.Units += v.Quantity
			summary.Revenue += v.Total
		}
	}
	return summary, nil
}

// ValuedInventory calcula el inventario valorizado:
// subtotal = precio unitario × stock por producto, más la suma de subtotales.
func (s *Service) ValuedInventory(ctx context.Context) (domain.InventoryReport, error) {
	products := s.repo.Products(ctx)

	report := domain.InventoryReport{Lines: make([]domain.InventoryLine, 0, len(products))}
	for _, p := range products {
		sub := p.Price * float64(p.Stock)
		report.Lines = append(report.Lines, domain.InventoryLine{Product: p, Subtotal: sub})
		report.Total += sub
	}
	return report, nil
}
