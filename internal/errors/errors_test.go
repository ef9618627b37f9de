package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategoryOf_TypedErrors(t *testing.T) {
	cases := []struct {
		err      error
		category string
	}{
		{NewValidationError("El nombre no puede estar vacío."), "VALIDATION_ERROR"},
		{NewNotFoundError("Cliente con ID 7 no existe."), "NOT_FOUND"},
		{NewCapacityError("Capacidad de ventas llena."), "CAPACITY_EXCEEDED"},
		{NewOutOfStockError("Sin stock disponible."), "OUT_OF_STOCK"},
		{NewPreconditionError("No hay clientes registrados."), "PRECONDITION_FAILED"},
	}

	for _, tc := range cases {
		category, msg := CategoryOf(tc.err)
		assert.Equal(t, tc.category, category)
		assert.Equal(t, tc.err.Error(), msg)
	}
}

func TestCategoryOf_UntypedError(t *testing.T) {
	category, msg := CategoryOf(stderrors.New("algo salió mal"))

	assert.Equal(t, "UNKNOWN_ERROR", category)
	assert.Contains(t, msg, "algo salió mal")
}
