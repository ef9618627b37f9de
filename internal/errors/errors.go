package errors

import "fmt"

// AppError es la interfaz central para todos los errores del sistema comercial.
// Permite que el shell de menús acceda a la Categoría y al Mensaje del error
// para imprimirlo y devolver el control al menú; ningún error de esta familia
// es fatal para el proceso.
type AppError interface {
	Error() string    // Implementa la interfaz error estándar de Go
	Category() string // Categoría del error (e.g. "VALIDATION_ERROR", "NOT_FOUND")
	Unwrap() error    // Permite encapsular errores subyacentes
}

// --- Tipos de Error Específicos (Errores de Dominio) ---

// ValidationError representa fallas de validación de datos de entrada.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string    { return e.Msg }
func (e *ValidationError) Category() string { return "VALIDATION_ERROR" }
func (e *ValidationError) Unwrap() error    { return nil }

// NewValidationError crea un nuevo error de validación.
func NewValidationError(msg string) AppError {
	return &ValidationError{Msg: msg}
}

// NotFoundError representa la ausencia de una entidad buscada por ID.
type NotFoundError struct {
	Msg string
}

func (e *NotFoundError) Error() string    { return e.Msg }
func (e *NotFoundError) Category() string { return "NOT_FOUND" }
func (e *NotFoundError) Unwrap() error    { return nil }

// NewNotFoundError crea un nuevo error de entidad no encontrada.
func NewNotFoundError(msg string) AppError {
	return &NotFoundError{Msg: msg}
}

// CapacityError indica que una colección llegó a su capacidad máxima.
// El alta falla pero la colección queda intacta.
type CapacityError struct {
	Msg string
}

func (e *CapacityError) Error() string    { return e.Msg }
func (e *CapacityError) Category() string { return "CAPACITY_EXCEEDED" }
func (e *CapacityError) Unwrap() error    { return nil }

// NewCapacityError crea un nuevo error de capacidad llena.
func NewCapacityError(msg string) AppError {
	return &CapacityError{Msg: msg}
}

// OutOfStockError indica que el producto no tiene stock disponible.
type OutOfStockError struct {
	Msg string
}

func (e *OutOfStockError) Error() string    { return e.Msg }
func (e *OutOfStockError) Category() string { return "OUT_OF_STOCK" }
func (e *OutOfStockError) Unwrap() error    { return nil }

// NewOutOfStockError crea un nuevo error de falta de stock.
func NewOutOfStockError(msg string) AppError {
	return &OutOfStockError{Msg: msg}
}

// PreconditionError indica que falta una precondición de la operación
// (e.g. registrar una venta sin clientes o sin productos cargados).
type PreconditionError struct {
	Msg string
}

func (e *PreconditionError) Error() string    { return e.Msg }
func (e *PreconditionError) Category() string { return "PRECONDITION_FAILED" }
func (e *PreconditionError) Unwrap() error    { return nil }

// NewPreconditionError crea un nuevo error de precondición.
func NewPreconditionError(msg string) AppError {
	return &PreconditionError{Msg: msg}
}

// --- Helper para el shell (Traducción Final) ---

// CategoryOf recibe un error y retorna su categoría y mensaje.
// Un error no tipado se trata como error interno genérico.
func CategoryOf(err error) (string, string) {
	if appErr, ok := err.(AppError); ok {
		return appErr.Category(), appErr.Error()
	}
	return "UNKNOWN_ERROR", fmt.Sprintf("Ocurrió un error inesperado: %v", err)
}
