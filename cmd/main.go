package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	// Paquetes de infraestructura y utilitarios
	"sisventas/config"
	"sisventas/internal/pkg/logger"

	// Capas del sistema para Inyección de Dependencias
	"sisventas/internal/cli"
	"sisventas/internal/repository/memoria"
	"sisventas/internal/service/customerservice"
	"sisventas/internal/service/productservice"
	"sisventas/internal/service/reportservice"
	"sisventas/internal/service/saleservice"
)

func main() {
	// 0. CARGAR VARIABLES DE ENTORNO (.env)
	// godotenv.Load() busca un archivo .env en la raíz. Si no existe,
	// avisamos y seguimos: todos los valores tienen default.
	if err := godotenv.Load(); err != nil {
		log.Println("Aviso: archivo .env no encontrado. Se usan los valores del entorno del sistema.")
	}

	// 1. Configuración e Inicialización
	cfg := config.LoadConfig()
	appLog := logger.NewLogger(cfg.LogLevel)
	appLog.Info("Configuración cargada.", map[string]interface{}{
		"max_clientes":  cfg.MaxCustomers,
		"max_productos": cfg.MaxProducts,
		"max_ventas":    cfg.MaxSales,
	})

	// 2. Almacén en memoria (único dueño de las colecciones y contadores).
	// Nace vacío y se descarta al salir: no hay persistencia entre corridas.
	store := memoria.NewStore(memoria.Capacities{
		Customers: cfg.MaxCustomers,
		Products:  cfg.MaxProducts,
		Sales:     cfg.MaxSales,
	}, appLog)
	appLog.Debug("Almacén en memoria inicializado.", nil)

	// 3. INYECCIÓN DE DEPENDENCIAS (Repositorio -> Servicios -> Shell)
	customerSvc := customerservice.NewService(store, cfg.MaxNameLen, appLog)
	productSvc := productservice.NewService(store, cfg.MaxNameLen, cfg.MaxStock, appLog)
	saleSvc := saleservice.NewService(store, appLog)
	reportSvc := reportservice.NewService(store, appLog)
	appLog.Debug("Servicios inicializados.", nil)

	// 4. Shell de menús sobre la terminal
	prompter := cli.NewPrompter(os.Stdin, os.Stdout)
	menu := cli.NewMenu(
		customerSvc, productSvc, saleSvc, reportSvc,
		prompter, os.Stdout,
		cfg.CurrencyPrefix, cfg.MaxNameLen, cfg.MaxStock,
		appLog,
	)

	// 5. Ejecución: un solo bucle interactivo, estrictamente secuencial.
	menu.Run(context.Background())
	appLog.Info("Sesión finalizada.", nil)
}
