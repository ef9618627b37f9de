package cli

import (
	"fmt"
	"io"
	"strings"

	"sisventas/internal/domain"
)

// Table es una tabla lista para imprimir: título, encabezado y filas ya
// vienen con sus columnas formateadas. El renderizado es pura presentación,
// sin lógica de negocio.
type Table struct {
	Title  string
	Header string
	Rows   []string
	Footer string
}

// RenderTable imprime la tabla con su encabezado y línea separadora.
func RenderTable(w io.Writer, t Table) {
	fmt.Fprintf(w, "\n%s\n", t.Title)
	fmt.Fprintln(w, t.Header)
	fmt.Fprintln(w, strings.Repeat("-", len(t.Header)))
	for _, row := range t.Rows {
		fmt.Fprintln(w, row)
	}
	if t.Footer != "" {
		fmt.Fprintln(w, t.Footer)
	}
}

// RenderCustomers imprime el listado de clientes: ID, Nombre, Email.
func RenderCustomers(w io.Writer, customers []domain.Customer) {
	t := Table{
		Title:  fmt.Sprintf("# Clientes (%d)", len(customers)),
		Header: fmt.Sprintf("ID | %-20s | %-25s", "Nombre", "Email"),
	}
	for _, c := range customers {
		t.Rows = append(t.Rows, fmt.Sprintf("%2d | %-20s | %-25s", c.ID, c.Name, c.Email))
	}
	RenderTable(w, t)
}

// RenderProducts imprime el listado de productos: ID, Nombre, Precio, Stock.
func RenderProducts(w io.Writer, currency string, products []domain.Product) {
	t := Table{
		Title:  fmt.Sprintf("# Productos (%d)", len(products)),
		Header: fmt.Sprintf("ID | %-20s | Precio  | Stock", "Nombre"),
	}
	for _, p := range products {
		t.Rows = append(t.Rows, fmt.Sprintf("%2d | %-20s | %s%6.2f | %5d", p.ID, p.Name, currency, p.Price, p.Stock))
	}
	RenderTable(w, t)
}

// RenderSales imprime el listado de ventas: ID, ClienteID, ProductoID, Cantidad, Total.
func RenderSales(w io.Writer, currency string, sales []domain.Sale) {
	t := Table{
		Title:  fmt.Sprintf("# Ventas (%d)", len(sales)),
		Header: "ID | Cliente | Producto | Cant | Total",
	}
	for _, v := range sales {
		t.Rows = append(t.Rows, fmt.Sprintf("%2d | %7d | %8d | %4d | %s%7.2f", v.ID, v.CustomerID, v.ProductID, v.Quantity, currency, v.Total))
	}
	RenderTable(w, t)
}

// RenderInventory imprime el inventario valorizado con su total al pie.
func RenderInventory(w io.Writer, currency string, report domain.InventoryReport) {
	t := Table{
		Title:  "# Inventario valorizado",
		Header: fmt.Sprintf("ID | %-20s | Stock | Precio | Subtotal", "Nombre"),
		Footer: fmt.Sprintf("Total inventario: %s%.2f", currency, report.Total),
	}
	for _, line := range report.Lines {
		p := line.Product
		t.Rows = append(t.Rows, fmt.Sprintf("%2d | %-20s | %5d | %s%6.2f | %s%8.2f",
			p.ID, p.Name, p.Stock, currency, p.Price, currency, line.Subtotal))
	}
	RenderTable(w, t)
}
