package domain

import "context"

// Customer representa un cliente del sistema comercial (la Entidad).
// El ID es un entero positivo asignado secuencialmente desde 1 y nunca se reutiliza.
type Customer struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CustomerUpdate es el payload de modificación de un cliente.
// Un campo vacío significa "conservar el valor actual" (convención Enter-para-conservar).
type CustomerUpdate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// --- Interfaces de Contrato ---

// CustomerService es la interfaz que la capa de Servicio DEBE implementar.
// Define lo que el shell de menús puede pedirle a la lógica de negocio.
type CustomerService interface {
	CreateCustomer(ctx context.Context, name, email string) (Customer, error)
	UpdateCustomer(ctx context.Context, id int, update CustomerUpdate) (Customer, error)
	GetCustomerByID(ctx context.Context, id int) (Customer, error)
	ListCustomers(ctx context.Context) ([]Customer, error)
	CustomerCount(ctx context.Context) int
}
