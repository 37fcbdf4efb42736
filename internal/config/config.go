// Package config reads the terminal's settings from the environment with
// sensible defaults, so a bare binary starts up as a working demo store.
package config

import (
	"os"
	"strconv"
)

const (
	defaultPort     = "8080"
	defaultDriver   = "sqlite"
	defaultDSN      = "pos.db"
	defaultTaxRate  = 0.05
	defaultLanguage = "en"
)

// Config holds everything the terminal needs at startup.
type Config struct {
	Port        string
	DBDriver    string
	DatabaseDSN string

	TaxRate     float64
	StoreNameEN string
	StoreNameAR string
	TaxNumber   string
	CurrencyEN  string
	CurrencyAR  string

	DefaultLanguage string

	JWTSecret  string
	CashierPIN string
}

// Load reads the environment. Call godotenv.Load first if a .env file
// should be honoured.
func Load() Config {
	return Config{
		Port:        get("APP_PORT", defaultPort),
		DBDriver:    get("DB_DRIVER", defaultDriver),
		DatabaseDSN: get("DATABASE_DSN", defaultDSN),

		TaxRate:     getFloat("TAX_RATE", defaultTaxRate),
		StoreNameEN: get("STORE_NAME_EN", "Al-Nujoom Supermarket"),
		StoreNameAR: get("STORE_NAME_AR", "سوبر ماركت النجوم"),
		TaxNumber:   get("TAX_NUMBER", "123456789012345"),
		CurrencyEN:  get("CURRENCY_EN", "AED"),
		CurrencyAR:  get("CURRENCY_AR", "درهم"),

		DefaultLanguage: get("DEFAULT_LANG", defaultLanguage),

		JWTSecret:  get("JWT_SECRET", "change-me-in-production"),
		CashierPIN: get("CASHIER_PIN", "1234"),
	}
}

func get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}
