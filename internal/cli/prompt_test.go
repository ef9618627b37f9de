package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	// Salida sin códigos ANSI para poder asertar sobre el texto.
	color.NoColor = true
}

// --- Tests para IntInRange ---

func TestIntInRange_RetriesUntilValid(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPrompter(strings.NewReader("abc\n99\n7\n"), out)

	value := p.IntInRange("Opcion: ", 0, 9)

	assert.Equal(t, 7, value)
	assert.Equal(t, 2, strings.Count(out.String(), "[Error] Ingrese un entero en rango [0..9]."))
}

// Una línea vacía vuelve a preguntar sin imprimir error.
func TestIntInRange_EmptyLineReprompts(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPrompter(strings.NewReader("\n5\n"), out)

	value := p.IntInRange("Opcion: ", 0, 9)

	assert.Equal(t, 5, value)
	assert.NotContains(t, out.String(), "[Error]")
}

func TestIntInRange_EOFReturnsMin(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPrompter(strings.NewReader(""), out)

	assert.Equal(t, 0, p.IntInRange("Opcion: ", 0, 9))
}

// --- Tests para FloatMin ---

func TestFloatMin_RetriesUntilValid(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPrompter(strings.NewReader("x\n-1\n2.5\n"), out)

	value := p.FloatMin("Precio unitario: ", 0.0)

	assert.Equal(t, 2.5, value)
	assert.Equal(t, 2, strings.Count(out.String(), "[Error] Ingrese un numero valido (>= 0.00)."))
}

// --- Tests para NonEmpty ---

func TestNonEmpty_RetriesOnEmpty(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPrompter(strings.NewReader("\nAna\n"), out)

	value := p.NonEmpty("Nombre del cliente: ", 50)

	assert.Equal(t, "Ana", value)
	assert.Contains(t, out.String(), "[Error] No puede estar vacio.")
}

func TestNonEmpty_TruncatesToMaxLen(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPrompter(strings.NewReader("abcdefgh\n"), out)

	assert.Equal(t, "abcde", p.NonEmpty("Nombre: ", 5))
}

// --- Tests para Optional ---

func TestOptional_EmptyMeansKeep(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPrompter(strings.NewReader("\n"), out)

	value, empty := p.Optional("Nuevo nombre (Enter para conservar): ", 50)

	assert.True(t, empty)
	assert.Equal(t, "", value)
}

func TestOptional_SingleAttemptReturnsValue(t *testing.T) {
	out := &bytes.Buffer{}
	p := NewPrompter(strings.NewReader("hola\n"), out)

	value, empty := p.Optional("Nuevo nombre (Enter para conservar): ", 50)

	assert.False(t, empty)
	assert.Equal(t, "hola", value)
}
