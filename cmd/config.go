package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config carries the settings for all three binaries: the Temporal worker,
// the MegaBurger backend and the demo order starter. Unset Temporal fields
// fall through to the SDK defaults (localhost, default namespace).
type Config struct {
	HTTPPort          string
	TemporalHostPort  string
	TemporalNamespace string
	MegaBurgerAPIURL  string
	KitchenSimulator  string
	DBHost            string
	DBPort            string
	DBUser            string
	DBPassword        string
	DBName            string
	DBSslMode         string
}

// LoadConfig reads configuration from the environment, first loading a .env
// file when one is present next to the binary.
func LoadConfig() Config {
	_ = godotenv.Load(".env")

	return Config{
		HTTPPort:          envOr("HTTP_PORT", "8080"),
		TemporalHostPort:  os.Getenv("TEMPORAL_HOST_PORT"),
		TemporalNamespace: os.Getenv("TEMPORAL_NAMESPACE"),
		MegaBurgerAPIURL:  envOr("MEGABURGER_API_URL", "http://localhost:8080"),
		KitchenSimulator:  os.Getenv("KITCHEN_SIMULATOR"),
		DBHost:            os.Getenv("DB_HOST"),
		DBPort:            os.Getenv("DB_PORT"),
		DBUser:            os.Getenv("DB_USER"),
		DBPassword:        os.Getenv("DB_PASSWORD"),
		DBName:            os.Getenv("DB_NAME"),
		DBSslMode:         os.Getenv("DB_SSLMODE"),
	}
}

// UsePostgres reports whether a postgres order store is configured; without
// DB settings the backend falls back to the in-memory store.
func (c Config) UsePostgres() bool {
	return c.DBHost != ""
}

// SimulateKitchen reports whether the backend should run the kitchen
// simulator instead of waiting for staff to update orders.
func (c Config) SimulateKitchen() bool {
	return c.KitchenSimulator == "true"
}

// PostgresDSN builds the gorm connection string from the DB settings.
func (c Config) PostgresDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
