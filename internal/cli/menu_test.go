package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"sisventas/internal/pkg/logger"
	"sisventas/internal/repository/memoria"
	"sisventas/internal/service/customerservice"
	"sisventas/internal/service/productservice"
	"sisventas/internal/service/reportservice"
	"sisventas/internal/service/saleservice"
)

// runMenu arma el sistema completo sobre un almacén real y ejecuta el shell
// con un guion de teclado, retornando todo lo impreso.
func runMenu(t *testing.T, script string) string {
	t.Helper()

	log := logger.NewLogger("error")
	store := memoria.NewStore(memoria.Capacities{Customers: 200, Products: 200, Sales: 2000}, log)

	customers := customerservice.NewService(store, 50, log)
	products := productservice.NewService(store, 50, 1000000, log)
	sales := saleservice.NewService(store, log)
	reports := reportservice.NewService(store, log)

	out := &bytes.Buffer{}
	prompter := NewPrompter(strings.NewReader(script), out)
	menu := NewMenu(customers, products, sales, reports, prompter, out, "Q", 50, 1000000, log)

	menu.Run(context.Background())
	return out.String()
}

// Sesión completa: alta de cliente, producto y venta, y todos los reportes.
func TestMenu_FullSession(t *testing.T) {
	script := strings.Join([]string{
		"1",         // Ingresar Datos
		"1",         // Nuevo Cliente
		"Ana",       //   nombre
		"ana@x.com", //   email
		"2",         // Nuevo Producto
		"Widget",    //   nombre
		"10.00",     //   precio
		"5",         //   stock
		"3",         // Nueva Venta
		"1",         //   ID cliente
		"1",         //   ID producto
		"3",         //   cantidad
		"0",         // Volver
		"3",         // Consultar Reportes
		"1",         // Listado de Clientes
		"2",         // Listado de Productos
		"3",         // Listado de Ventas
		"4",         // Total de ventas
		"5",         // Ventas por Cliente
		"1",
		"6", // Ventas por Producto
		"1",
		"7", // Inventario valorizado
		"0", // Volver
		"0", // Salir
	}, "\n") + "\n"

	out := runMenu(t, script)

	assert.Contains(t, out, "[OK] Cliente creado con ID 1.")
	assert.Contains(t, out, "[OK] Producto creado con ID 1.")
	assert.Contains(t, out, "[OK] Venta registrada (ID 1). Total: Q30.00")
	assert.Contains(t, out, "# Clientes (1)")
	assert.Contains(t, out, "# Productos (1)")
	assert.Contains(t, out, "# Ventas (1)")
	assert.Contains(t, out, "Total vendido: Q30.00")
	assert.Contains(t, out, "Cliente #1 (Ana): 1 venta(s), Total Q30.00")
	assert.Contains(t, out, "Producto #1 (Widget): 3 unidad(es) vendidas, Ingresos Q30.00")
	assert.Contains(t, out, "Total inventario: Q20.00") // stock 2 × Q10.00
	assert.Contains(t, out, "Saliendo...")
}

func TestMenu_SaleWithoutCustomersOrProducts(t *testing.T) {
	script := "1\n3\n0\n0\n"

	out := runMenu(t, script)

	assert.Contains(t, out, "[Error] Debe existir al menos 1 cliente y 1 producto.")
}

// Un producto sin stock rechaza la venta antes de pedir la cantidad.
func TestMenu_SaleOutOfStock(t *testing.T) {
	script := strings.Join([]string{
		"1", "1", "Beto", "b@x.com", // cliente
		"2", "Clavo", "1.00", "0", // producto con stock 0
		"3", "1", "1", // venta: IDs válidos, sin stock
		"0", "0",
	}, "\n") + "\n"

	out := runMenu(t, script)

	assert.Contains(t, out, "[Error] Sin stock disponible.")
	assert.NotContains(t, out, "Cantidad: ")
}

// Modificación con precio no parseable: aviso, valor conservado, y la
// operación termina en OK de todos modos.
func TestMenu_UpdateProductInvalidPriceWarns(t *testing.T) {
	script := strings.Join([]string{
		"1", "2", "Widget", "10", "5", "0", // alta de producto
		"2", "2", "1", // modificar producto ID 1
		"",    // nombre: conservar
		"abc", // precio inválido
		"",    // stock: conservar
		"0", "0",
	}, "\n") + "\n"

	out := runMenu(t, script)

	assert.Contains(t, out, "Editando Producto #1 (Nombre: Widget, Precio: Q10.00, Stock: 5)")
	assert.Contains(t, out, "[Aviso] Precio no válido. Se conserva valor.")
	assert.Contains(t, out, "[OK] Producto actualizado.")
}

func TestMenu_UpdateCustomerKeepsOnEnter(t *testing.T) {
	script := strings.Join([]string{
		"1", "1", "Ana", "ana@x.com", "0", // alta de cliente
		"2", "1", "1", // modificar cliente ID 1
		"",            // nombre: conservar
		"nueva@x.com", // email nuevo
		"0",
		"3", "1", // reportes: listado de clientes
		"0", "0",
	}, "\n") + "\n"

	out := runMenu(t, script)

	assert.Contains(t, out, "[OK] Cliente actualizado.")
	assert.Contains(t, out, "nueva@x.com")
	assert.Contains(t, out, "Ana") // el nombre se conservó
}

func TestMenu_UpdateNonexistentCustomer(t *testing.T) {
	script := strings.Join([]string{
		"1", "1", "Ana", "ana@x.com", "0",
		"2", "1", "42", // ID inexistente
		"0", "0",
	}, "\n") + "\n"

	out := runMenu(t, script)

	assert.Contains(t, out, "[Error] Cliente con ID 42 no existe.")
}

func TestMenu_InfoWhenNothingToModify(t *testing.T) {
	script := "2\n1\n2\n0\n0\n"

	out := runMenu(t, script)

	assert.Contains(t, out, "[Info] No hay clientes.")
	assert.Contains(t, out, "[Info] No hay productos.")
}
