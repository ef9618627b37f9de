package config

import (
	"log"
	"os"
	"strconv"
)

// Config almacena toda la configuración del sistema comercial.
// Los límites de capacidad y de campos son configurables por entorno.
type Config struct {
	// General
	Environment string
	LogLevel    string

	// Capacidades de las colecciones en memoria.
	// Al llegar al límite, la operación de alta falla de forma recuperable.
	MaxCustomers int
	MaxProducts  int
	MaxSales     int

	// Límites de campos
	MaxNameLen int // longitud máxima de nombre/email
	MaxStock   int // techo de stock aceptado en el alta de producto

	// Presentación
	CurrencyPrefix string // prefijo de moneda en los reportes (e.g. "Q")
}

// LoadConfig carga la configuración a partir de variables de entorno.
func LoadConfig() *Config {
	cfg := &Config{
		// 1. General
		Environment: getEnv("SISVENTAS_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),

		// 2. Capacidades
		MaxCustomers: getIntEnv("MAX_CLIENTES", 200),
		MaxProducts:  getIntEnv("MAX_PRODUCTOS", 200),
		MaxSales:     getIntEnv("MAX_VENTAS", 2000),

		// 3. Límites de campos
		MaxNameLen: getIntEnv("MAX_NOMBRE", 50),
		MaxStock:   getIntEnv("MAX_STOCK", 1000000),

		// 4. Presentación
		CurrencyPrefix: getEnv("MONEDA", "Q"),
	}

	return cfg
}

// Funciones auxiliares

// getEnv lee la variable de entorno o retorna un valor por defecto.
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getIntEnv lee una variable de entorno numérica y la retorna como int.
func getIntEnv(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Aviso: el valor de %s ('%s') no es un entero válido. Se usa el default (%d).", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}
