package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/fatih/color"

	"sisventas/internal/domain"
	apperror "sisventas/internal/errors"
	"sisventas/internal/pkg/logger"
)

// Cota superior para los IDs pedidos por teclado.
const maxIDInput = 1000000000

// Menu es el shell interactivo: presenta los menús y enruta cada opción
// hacia los servicios. No contiene lógica de negocio; imprime el mensaje
// asociado a cada resultado y devuelve el control al menú correspondiente.
// Ningún error recuperable termina el proceso.
type Menu struct {
	customers  domain.CustomerService
	products   domain.ProductService
	sales      domain.SaleService
	reports    domain.ReportService
	prompter   *Prompter
	out        io.Writer
	currency   string
	maxNameLen int
	maxStock   int
	logger     logger.Logger
}

var (
	okLine   = color.New(color.FgGreen)
	failLine = color.New(color.FgRed)
	warnLine = color.New(color.FgYellow)
	infoLine = color.New(color.FgCyan)
)

// NewMenu crea el shell con los servicios ya inicializados por inyección
// de dependencias en main.go.
func NewMenu(
	customers domain.CustomerService,
	products domain.ProductService,
	sales domain.SaleService,
	reports domain.ReportService,
	prompter *Prompter,
	out io.Writer,
	currency string,
	maxNameLen, maxStock int,
	log logger.Logger,
) *Menu {
	return &Menu{
		customers:  customers,
		products:   products,
		sales:      sales,
		reports:    reports,
		prompter:   prompter,
		out:        out,
		currency:   currency,
		maxNameLen: maxNameLen,
		maxStock:   maxStock,
		logger:     log,
	}
}

// Run muestra el menú principal y procesa opciones hasta que el usuario salga.
func (m *Menu) Run(ctx context.Context) {
	m.logger.Info("Shell de menús iniciado.", nil)

	fmt.Fprintln(m.out, "===============================================")
	fmt.Fprintln(m.out, "  Sistema Comercial de Gestion de Formularios")
	fmt.Fprintln(m.out, "  (Clientes, Productos, Ventas)")
	fmt.Fprintln(m.out, "===============================================")

	for {
		fmt.Fprintln(m.out, "\nMenu Principal")
		fmt.Fprintln(m.out, "1) Ingresar Datos")
		fmt.Fprintln(m.out, "2) Modificar Datos")
		fmt.Fprintln(m.out, "3) Consultar Reportes")
		fmt.Fprintln(m.out, "0) Salir")
		switch m.prompter.IntInRange("Opcion: ", 0, 3) {
		case 0:
			fmt.Fprintln(m.out, "Saliendo...")
			m.logger.Info("Shell de menús finalizado.", nil)
			return
		case 1:
			m.menuIngresar(ctx)
		case 2:
			m.menuModificar(ctx)
		case 3:
			m.menuReportes(ctx)
		}
	}
}

// fail imprime el mensaje de un error recuperable con su prefijo.
func (m *Menu) fail(err error) {
	_, msg := apperror.CategoryOf(err)
	failLine.Fprintf(m.out, "[Error] %s\n", msg)
}

// --- Ingresar datos ---

func (m *Menu) menuIngresar(ctx context.Context) {
	for {
		fmt.Fprintln(m.out, "\n--- Ingresar Datos ---")
		fmt.Fprintln(m.out, "1) Nuevo Cliente")
		fmt.Fprintln(m.out, "2) Nuevo Producto")
		fmt.Fprintln(m.out, "3) Nueva Venta")
		fmt.Fprintln(m.out, "0) Volver")
		switch m.prompter.IntInRange("Opcion: ", 0, 3) {
		case 0:
			return
		case 1:
			m.altaCliente(ctx)
		case 2:
			m.altaProducto(ctx)
		case 3:
			m.altaVenta(ctx)
		}
	}
}

func (m *Menu) altaCliente(ctx context.Context) {
	name := m.prompter.NonEmpty("Nombre del cliente: ", m.maxNameLen)
	email := m.prompter.NonEmpty("Email del cliente: ", m.maxNameLen)

	created, err := m.customers.CreateCustomer(ctx, name, email)
	if err != nil {
		m.fail(err)
		return
	}
	okLine.Fprintf(m.out, "[OK] Cliente creado con ID %d.\n", created.ID)
}

func (m *Menu) altaProducto(ctx context.Context) {
	name := m.prompter.NonEmpty("Nombre del producto: ", m.maxNameLen)
	price := m.prompter.FloatMin("Precio unitario: ", 0.0)
	stock := m.prompter.IntInRange("Stock inicial: ", 0, m.maxStock)

	created, err := m.products.CreateProduct(ctx, name, price, stock)
	if err != nil {
		m.fail(err)
		return
	}
	okLine.Fprintf(m.out, "[OK] Producto creado con ID %d.\n", created.ID)
}

func (m *Menu) altaVenta(ctx context.Context) {
	// Prechequeo para no pedir IDs de más: sin clientes o sin productos
	// no hay venta posible. El servicio revalida todo de todos modos.
	if m.customers.CustomerCount(ctx) == 0 || m.products.ProductCount(ctx) == 0 {
		failLine.Fprintln(m.out, "[Error] Debe existir al menos 1 cliente y 1 producto.")
		return
	}

	customerID := m.prompter.IntInRange("ID Cliente: ", 1, maxIDInput)
	if _, err := m.customers.GetCustomerByID(ctx, customerID); err != nil {
		m.fail(err)
		return
	}

	productID := m.prompter.IntInRange("ID Producto: ", 1, maxIDInput)
	product, err := m.products.GetProductByID(ctx, productID)
	if err != nil {
		m.fail(err)
		return
	}

	if product.Stock <= 0 {
		failLine.Fprintln(m.out, "[Error] Sin stock disponible.")
		return
	}

	// La cota superior de la cantidad depende del stock vigente del producto.
	quantity := m.prompter.IntInRange("Cantidad: ", 1, product.Stock)

	created, err := m.sales.CreateSale(ctx, customerID, productID, quantity)
	if err != nil {
		m.fail(err)
		return
	}
	okLine.Fprintf(m.out, "[OK] Venta registrada (ID %d). Total: %s%.2f\n", created.ID, m.currency, created.Total)
}

// --- Modificar datos ---

func (m *Menu) menuModificar(ctx context.Context) {
	for {
		fmt.Fprintln(m.out, "\n--- Modificar Datos ---")
		fmt.Fprintln(m.out, "1) Cliente")
		fmt.Fprintln(m.out, "2) Producto")
		fmt.Fprintln(m.out, "0) Volver")
		switch m.prompter.IntInRange("Opcion: ", 0, 2) {
		case 0:
			return
		case 1:
			m.modificarCliente(ctx)
		case 2:
			m.modificarProducto(ctx)
		}
	}
}

func (m *Menu) modificarCliente(ctx context.Context) {
	if m.customers.CustomerCount(ctx) == 0 {
		infoLine.Fprintln(m.out, "[Info] No hay clientes.")
		return
	}

	id := m.prompter.IntInRange("ID de cliente a modificar: ", 1, maxIDInput)
	current, err := m.customers.GetCustomerByID(ctx, id)
	if err != nil {
		m.fail(err)
		return
	}

	fmt.Fprintf(m.out, "Editando Cliente #%d (Nombre: %s, Email: %s)\n", current.ID, current.Name, current.Email)

	var update domain.CustomerUpdate
	if value, empty := m.prompter.Optional("Nuevo nombre (Enter para conservar): ", m.maxNameLen); !empty {
		update.Name = value
	}
	if value, empty := m.prompter.Optional("Nuevo email (Enter para conservar): ", m.maxNameLen); !empty {
		update.Email = value
	}

	if _, err := m.customers.UpdateCustomer(ctx, id, update); err != nil {
		m.fail(err)
		return
	}
	okLine.Fprintln(m.out, "[OK] Cliente actualizado.")
}

func (m *Menu) modificarProducto(ctx context.Context) {
	if m.products.ProductCount(ctx) == 0 {
		infoLine.Fprintln(m.out, "[Info] No hay productos.")
		return
	}

	id := m.prompter.IntInRange("ID de producto a modificar: ", 1, maxIDInput)
	current, err := m.products.GetProductByID(ctx, id)
	if err != nil {
		m.fail(err)
		return
	}

	fmt.Fprintf(m.out, "Editando Producto #%d (Nombre: %s, Precio: %s%.2f, Stock: %d)\n",
		current.ID, current.Name, m.currency, current.Price, current.Stock)

	var update domain.ProductUpdate
	if value, empty := m.prompter.Optional("Nuevo nombre (Enter para conservar): ", m.maxNameLen); !empty {
		update.Name = value
	}
	// Precio y stock viajan como texto crudo: el servicio decide si parsea,
	// y si no parsea conserva el valor con un aviso (no es un error).
	update.PriceText, _ = m.prompter.Optional("Nuevo precio (Enter para conservar): ", m.maxNameLen)
	update.StockText, _ = m.prompter.Optional("Nuevo stock (Enter para conservar): ", m.maxNameLen)

	_, warnings, err := m.products.UpdateProduct(ctx, id, update)
	if err != nil {
		m.fail(err)
		return
	}
	for _, w := range warnings {
		warnLine.Fprintf(m.out, "[Aviso] %s\n", w)
	}
	okLine.Fprintln(m.out, "[OK] Producto actualizado.")
}

// --- Reportes ---

func (m *Menu) menuReportes(ctx context.Context) {
	for {
		fmt.Fprintln(m.out, "\n--- Consultar Reportes ---")
		fmt.Fprintln(m.out, "1) Listado de Clientes")
		fmt.Fprintln(m.out, "2) Listado de Productos")
		fmt.Fprintln(m.out, "3) Listado de Ventas")
		fmt.Fprintln(m.out, "4) Total de ventas")
		fmt.Fprintln(m.out, "5) Ventas por Cliente")
		fmt.Fprintln(m.out, "6) Ventas por Producto")
		fmt.Fprintln(m.out, "7) Inventario valorizado")
		fmt.Fprintln(m.out, "0) Volver")
		switch m.prompter.IntInRange("Opcion: ", 0, 7) {
		case 0:
			return
		case 1:
			customers, _ := m.reports.ListCustomers(ctx)
			RenderCustomers(m.out, customers)
		case 2:
			products, _ := m.reports.ListProducts(ctx)
			RenderProducts(m.out, m.currency, products)
		case 3:
			sales, _ := m.reports.ListSales(ctx)
			RenderSales(m.out, m.currency, sales)
		case 4:
			total, _ := m.reports.TotalRevenue(ctx)
			fmt.Fprintf(m.out, "Total vendido: %s%.2f\n", m.currency, total)
		case 5:
			m.ventasPorCliente(ctx)
		case 6:
			m.ventasPorProducto(ctx)
		case 7:
			report, _ := m.reports.ValuedInventory(ctx)
			RenderInventory(m.out, m.currency, report)
		}
	}
}

func (m *Menu) ventasPorCliente(ctx context.Context) {
	if m.customers.CustomerCount(ctx) == 0 {
		infoLine.Fprintln(m.out, "[Info] No hay clientes.")
		return
	}

	id := m.prompter.IntInRange("ID Cliente: ", 1, maxIDInput)
	summary, err := m.reports.SalesByCustomer(ctx, id)
	if err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintf(m.out, "Cliente #%d (%s): %d venta(s), Total %s%.2f\n",
		summary.Customer.ID, summary.Customer.Name, summary.Count, m.currency, summary.Total)
}

func (m *Menu) ventasPorProducto(ctx context.Context) {
	if m.products.ProductCount(ctx) == 0 {
		infoLine.Fprintln(m.out, "[Info] No hay productos.")
		return
	}

	id := m.prompter.IntInRange("ID Producto: ", 1, maxIDInput)
	summary, err := m.reports.SalesByProduct(ctx, id)
	if err != nil {
		m.fail(err)
		return
	}
	fmt.Fprintf(m.out, "Producto #%d (%s): %d unidad(es) vendidas, Ingresos %s%.2f\n",
		summary.Product.ID, summary.Product.Name, summary.Units, m.currency, summary.Revenue)
}
