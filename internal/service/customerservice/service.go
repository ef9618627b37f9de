package customerservice

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"sisventas/internal/domain"
	apperror "sisventas/internal/errors"
	"sisventas/internal/pkg/logger"
)

// CustomerRepository define el contrato que este Servicio espera del almacén.
type CustomerRepository interface {
	AppendCustomer(ctx context.Context, c domain.Customer) (domain.Customer, error)
	FindCustomerByID(ctx context.Context, id int) (domain.Customer, error)
	UpdateCustomer(ctx context.Context, c domain.Customer) (domain.Customer, error)
	Customers(ctx context.Context) []domain.Customer
	CustomerCount(ctx context.Context) int
}

// Service es la estructura que implementa la interfaz domain.CustomerService.
type Service struct {
	repo       CustomerRepository
	maxNameLen int
	logger     logger.Logger
}

// NewService crea y retorna una nueva instancia del Servicio de Clientes.
func NewService(repo CustomerRepository, maxNameLen int, log logger.Logger) *Service {
	return &Service{repo: repo, maxNameLen: maxNameLen, logger: log}
}

// CreateCustomer da de alta un cliente con ID autoincremental.
// Nombre y email deben ser no vacíos tras recortar el salto de línea final.
// El email no se valida en formato: se conserva la permisividad del sistema.
func (s *Service) CreateCustomer(ctx context.Context, name, email string) (domain.Customer, error) {
	opID := uuid.NewString()
	s.logger.Debug("Iniciando alta de cliente en el servicio.", map[string]interface{}{"op_id": opID})

	name = strings.TrimRight(name, "\r\n")
	email = strings.TrimRight(email, "\r\n")

	if err := s.validateField(name, "nombre"); err != nil {
		s.logger.Warn("Falla de validación en alta de cliente.", map[string]interface{}{"op_id": opID, "error": err.Error()})
		return domain.Customer{}, err
	}
	if err := s.validateField(email, "email"); err != nil {
		s.logger.Warn("Falla de validación en alta de cliente.", map[string]interface{}{"op_id": opID, "error": err.Error()})
		return domain.Customer{}, err
	}

	created, err := s.repo.AppendCustomer(ctx, domain.Customer{Name: name, Email: email})
	if err != nil {
		s.logger.Error("Falla al agregar cliente al almacén.", err)
		return domain.Customer{}, err // CapacityError del almacén, ya tipado
	}

	s.logger.Info("Cliente creado.", map[string]interface{}{"op_id": opID, "id": created.ID, "name": created.Name})
	return created, nil
}

// UpdateCustomer modifica nombre y/o email de un cliente existente.
// Un campo vacío en el payload conserva el valor actual; un campo no vacío
// lo reemplaza tal cual, sin validación adicional (tampoco de formato de email).
func (s *Service) UpdateCustomer(ctx context.Context, id int, update domain.CustomerUpdate) (domain.Customer, error) {
	opID := uuid.NewString()
	s.logger.Debug("Iniciando modificación de cliente en el servicio.", map[string]interface{}{"op_id": opID, "id": id})

	current, err := s.repo.FindCustomerByID(ctx, id)
	if err != nil {
		s.logger.Warn("Cliente a modificar no encontrado.", map[string]interface{}{"op_id": opID, "id": id})
		return domain.Customer{}, err
	}

	if update.Name != "" {
		current.Name = update.Name
	}
	if update.Email != "" {
		current.Email = update.Email
	}

	updated, err := s.repo.UpdateCustomer(ctx, current)
	if err != nil {
		s.logger.Error("Falla al actualizar cliente en el almacén.", err)
		return domain.Customer{}, err
	}

	s.logger.Info("Cliente actualizado.", map[string]interface{}{"op_id": opID, "id": updated.ID})
	return updated, nil
}

// GetCustomerByID busca un cliente por su ID.
func (s *Service) GetCustomerByID(ctx context.Context, id int) (domain.Customer, error) {
	return s.repo.FindCustomerByID(ctx, id)
}

// ListCustomers retorna todos los clientes en orden de alta.
func (s *Service) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.Customers(ctx), nil
}

// CustomerCount retorna la cantidad de clientes cargados.
func (s *Service) CustomerCount(ctx context.Context) int {
	return s.repo.CustomerCount(ctx)
}

// validateField es la función auxiliar de validación de campos de texto del alta.
func (s *Service) validateField(value, label string) error {
	if value == "" {
		return apperror.NewValidationError("El " + label + " no puede estar vacío.")
	}
	if len(value) > s.maxNameLen {
		return apperror.NewValidationError("El " + label + " supera la longitud máxima permitida.")
	}
	return nil
}
