package memoria

import (
	"context"
	"fmt"

	"sisventas/internal/domain"
	apperror "sisventas/internal/errors"
	"sisventas/internal/pkg/logger"
)

// Capacities define los tamaños máximos de cada colección.
// Superar un límite es una falla recuperable del alta, nunca un crash.
type Capacities struct {
	Customers int
	Products  int
	Sales     int
}

// Store es el almacén en memoria del sistema: es el único dueño de las tres
// colecciones y de los tres contadores de ID. Las colecciones conservan el
// orden de inserción y las altas son append-only (no existen bajas).
//
// El proceso es monohilo por diseño: no hay más de una operación en vuelo,
// por lo que no se necesita sincronización.
type Store struct {
	customers []domain.Customer
	products  []domain.Product
	sales     []domain.Sale

	// Contadores autoincrementales. Nunca se reinician ni decrementan,
	// por lo que un ID jamás se reutiliza.
	nextCustomerID int
	nextProductID  int
	nextSaleID     int

	caps   Capacities
	logger logger.Logger
}

// NewStore crea y retorna un almacén vacío con las capacidades configuradas.
// Se llama una sola vez en main.go; el contenido se descarta al salir del proceso.
func NewStore(caps Capacities, log logger.Logger) *Store {
	return &Store{
		customers:      make([]domain.Customer, 0, caps.Customers),
		products:       make([]domain.Product, 0, caps.Products),
		sales:          make([]domain.Sale, 0, caps.Sales),
		nextCustomerID: 1,
		nextProductID:  1,
		nextSaleID:     1,
		caps:           caps,
		logger:         log,
	}
}

// --- Clientes ---

// AppendCustomer asigna el siguiente ID secuencial y agrega el cliente.
// Falla con CapacityError si la colección está llena, dejándola intacta.
func (s *Store) AppendCustomer(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	if len(s.customers) >= s.caps.Customers {
		return domain.Customer{}, apperror.NewCapacityError("Capacidad de clientes llena.")
	}
	c.ID = s.nextCustomerID
	s.nextCustomerID++
	s.customers = append(s.customers, c)
	s.logger.Debug("Cliente agregado al almacén.", map[string]interface{}{"id": c.ID, "count": len(s.customers)})
	return c, nil
}

// FindCustomerByID recorre la colección en orden de inserción y busca por ID.
// O(n) por diseño: las capacidades acotadas no justifican un índice.
func (s *Store) FindCustomerByID(ctx context.Context, id int) (domain.Customer, error) {
	for _, c := range s.customers {
		if c.ID == id {
			return c, nil
		}
	}
	return domain.Customer{}, apperror.NewNotFoundError(fmt.Sprintf("Cliente con ID %d no existe.", id))
}

// UpdateCustomer reemplaza en su posición al cliente con el mismo ID.
func (s *Store) UpdateCustomer(ctx context.Context, c domain.Customer) (domain.Customer, error) {
	for i := range s.customers {
		if s.customers[i].ID == c.ID {
			s.customers[i] = c
			return c, nil
		}
	}
	return domain.Customer{}, apperror.NewNotFoundError(fmt.Sprintf("Cliente con ID %d no existe.", c.ID))
}

// Customers retorna una copia de la colección en orden de inserción.
func (s *Store) Customers(ctx context.Context) []domain.Customer {
	out := make([]domain.Customer, len(s.customers))
	copy(out, s.customers)
	return out
}

// CustomerCount retorna la cantidad de clientes cargados.
func (s *Store) CustomerCount(ctx context.Context) int {
	return len(s.customers)
}

// --- Productos ---

// AppendProduct asigna el siguiente ID secuencial y agrega el producto.
func (s *Store) AppendProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	if len(s.products) >= s.caps.Products {
		return domain.Product{}, apperror.NewCapacityError("Capacidad de productos llena.")
	}
	p.ID = s.nextProductID
	s.nextProductID++
	s.products = append(s.products, p)
	s.logger.Debug("Producto agregado al almacén.", map[string]interface{}{"id": p.ID, "count": len(s.products)})
	return p, nil
}

// FindProductByID recorre la colección en orden de inserción y busca por ID.
func (s *Store) FindProductByID(ctx context.Context, id int) (domain.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, apperror.NewNotFoundError(fmt.Sprintf("Producto con ID %d no existe.", id))
}

// UpdateProduct reemplaza en su posición al producto con el mismo ID.
// También lo usa el registro de ventas para descontar stock.
func (s *Store) UpdateProduct(ctx context.Context, p domain.Product) (domain.Product, error) {
	for i := range s.products {
		if s.products[i].ID == p.ID {
			s.products[i] = p
			return p, nil
		}
	}
	return domain.Product{}, apperror.NewNotFoundError(fmt.Sprintf("Producto con ID %d no existe.", p.ID))
}

// Products retorna una copia de la colección en orden de inserción.
func (s *Store) Products(ctx context.Context) []domain.Product {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ProductCount retorna la cantidad de productos cargados.
func (s *Store) ProductCount(ctx context.Context) int {
	return len(s.products)
}

// --- Ventas ---

// AppendSale asigna el siguiente ID secuencial y agrega la venta.
// Las ventas no se modifican ni se eliminan después del alta.
func (s *Store) AppendSale(ctx context.Context, v domain.Sale) (domain.Sale, error) {
	if len(s.sales) >= s.caps.Sales {
		return domain.Sale{}, apperror.NewCapacityError("Capacidad de ventas llena.")
	}
	v.ID = s.nextSaleID
	s.nextSaleID++
	s.sales = append(s.sales, v)
	s.logger.Debug("Venta agregada al almacén.", map[string]interface{}{"id": v.ID, "count": len(s.sales)})
	return v, nil
}

// SalesFull indica si la colección de ventas llegó a su capacidad.
// El registro de ventas lo consulta antes de tocar el stock, para que una
// falla de capacidad nunca deje una mutación parcial.
func (s *Store) SalesFull(ctx context.Context) bool {
	return len(s.sales) >= s.caps.Sales
}

// FindSaleByID recorre la colección en orden de inserción y busca por ID.
func (s *Store) FindSaleByID(ctx context.Context, id int) (domain.Sale, error) {
	for _, v := range s.sales {
		if v.ID == id {
			return v, nil
		}
	}
	return domain.Sale{}, apperror.NewNotFoundError(fmt.Sprintf("Venta con ID %d no existe.", id))
}

// Sales retorna una copia de la colección en orden de inserción.
func (s *Store) Sales(ctx context.Context) []domain.Sale {
	out := make([]domain.Sale, len(s.sales))
	copy(out, s.sales)
	return out
}

// SaleCount retorna la cantidad de ventas registradas.
func (s *Store) SaleCount(ctx context.Context) int {
	return len(s.sales)
}
