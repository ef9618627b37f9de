package productservice

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"sisventas/internal/domain"
	apperror "sisventas/internal/errors"
	"sisventas/internal/pkg/logger"
)

// ProductRepository define el contrato que este Servicio espera del almacén.
type ProductRepository interface {
	AppendProduct(ctx context.Context, p domain.Product) (domain.Product, error)
	FindProductByID(ctx context.Context, id int) (domain.Product, error)
	UpdateProduct(ctx context.Context, p domain.Product) (domain.Product, error)
	Products(ctx context.Context) []domain.Product
	ProductCount(ctx context.Context) int
}

// Service es la estructura que implementa la interfaz domain.ProductService.
type Service struct {
	repo       ProductRepository
	maxNameLen int
	maxStock   int
	logger     logger.Logger
}

// NewService crea y retorna una nueva instancia del Servicio de Productos.
func NewService(repo ProductRepository, maxNameLen, maxStock int, log logger.Logger) *Service {
	return &Service{repo: repo, maxNameLen: maxNameLen, maxStock: maxStock, logger: log}
}

// CreateProduct da de alta un producto con ID autoincremental.
// Valida nombre no vacío, precio >= 0 y stock en [0, maxStock].
func (s *Service) CreateProduct(ctx context.Context, name string, price float64, stock int) (domain.Product, error) {
	opID := uuid.NewString()
	s.logger.Debug("Iniciando alta de producto en el servicio.", map[string]interface{}{"op_id": opID})

	if name == "" {
		return domain.Product{}, apperror.NewValidationError("El nombre no puede estar vacío.")
	}
	if len(name) > s.maxNameLen {
		return domain.Product{}, apperror.NewValidationError("El nombre supera la longitud máxima permitida.")
	}
	if price < 0 {
		return domain.Product{}, apperror.NewValidationError("El precio no puede ser negativo.")
	}
	if stock < 0 || stock > s.maxStock {
		return domain.Product{}, apperror.NewValidationError(fmt.Sprintf("El stock debe estar en [0..%d].", s.maxStock))
	}

	created, err := s.repo.AppendProduct(ctx, domain.Product{Name: name, Price: price, Stock: stock})
	if err != nil {
		s.logger.Error("Falla al agregar producto al almacén.", err)
		return domain.Product{}, err // CapacityError del almacén, ya tipado
	}

	s.logger.Info("Producto creado.", map[string]interface{}{"op_id": opID, "id": created.ID, "name": created.Name, "price": created.Price, "stock": created.Stock})
	return created, nil
}

// UpdateProduct modifica nombre, precio y/o stock de un producto existente.
// Campo vacío conserva el valor actual. Precio y stock llegan como texto crudo:
// si el texto no parsea (o es negativo) ese campo se descarta con un aviso y el
// valor anterior se conserva; la modificación del resto sigue adelante. Esta
// política difiere a propósito de la validación dura del alta.
func (s *Service) UpdateProduct(ctx context.Context, id int, update domain.ProductUpdate) (domain.Product, []string, error) {
	opID := uuid.NewString()
	s.logger.Debug("Iniciando modificación de producto en el servicio.", map[string]interface{}{"op_id": opID, "id": id})

	current, err := s.repo.FindProductByID(ctx, id)
	if err != nil {
		s.logger.Warn("Producto a modificar no encontrado.", map[string]interface{}{"op_id": opID, "id": id})
		return domain.Product{}, nil, err
	}

	var warnings []string

	if update.Name != "" {
		current.Name = update.Name
	}

	if update.PriceText != "" {
		price, perr := strconv.ParseFloat(update.PriceText, 64)
		if perr != nil || price < 0 {
			warnings = append(warnings, "Precio no válido. Se conserva valor.")
		} else {
			current.Price = price
		}
	}

	if update.StockText != "" {
		stock, serr := strconv.Atoi(update.StockText)
		if serr != nil || stock < 0 {
			warnings = append(warnings, "Stock no válido. Se conserva valor.")
		} else {
			current.Stock = stock
		}
	}

	updated, err := s.repo.UpdateProduct(ctx, current)
	if err != nil {
		s.logger.Error("Falla al actualizar producto en el almacén.", err)
		return domain.Product{}, nil, err
	}

	s.logger.Info("Producto actualizado.", map[string]interface{}{"op_id": opID, "id": updated.ID, "warnings": len(warnings)})
	return updated, warnings, nil
}

// GetProductByID busca un producto por su ID.
func (s *Service) GetProductByID(ctx context.Context, id int) (domain.Product, error) {
	return s.repo.FindProductByID(ctx, id)
}

// ListProducts retorna todos los productos en orden de alta.
func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.Products(ctx), nil
}

// ProductCount retorna la cantidad de productos cargados.
func (s *Service) ProductCount(ctx context.Context) int {
	return s.repo.ProductCount(ctx)
}
