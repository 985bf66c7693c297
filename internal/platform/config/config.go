package config

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL   string
	Port          string
	IsProduction  bool
	EnableDBCheck bool

	// Store selection: "postgres" or "mongo"
	DBType      string
	MongoURL    string `mapstructure:"MONGO_URL"`
	MongoDBName string `mapstructure:"MONGO_DB_NAME"`

	APIBasePath       string
	DefaultFiscalYear string `mapstructure:"DEFAULT_FISCAL_YEAR"`
	RateLimit         string `mapstructure:"RATE_LIMIT"`
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("ENABLE_DB_CHECK", false)
	viper.SetDefault("DB_TYPE", "postgres")
	viper.SetDefault("MONGO_URL", "")
	viper.SetDefault("MONGO_DB_NAME", "impex_backoffice")
	viper.SetDefault("API_BASE_PATH", "/api/v1")
	viper.SetDefault("DEFAULT_FISCAL_YEAR", "")
	viper.SetDefault("RATE_LIMIT", "100-M")

	// Read .env file if it exists
	// This allows overriding defaults with .env file values, which can then be overridden by actual environment variables.
	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DBType = viper.GetString("DB_TYPE")
	if cfg.DBType != "postgres" && cfg.DBType != "mongo" {
		log.Printf("Warning: Unknown DB_TYPE ('%s'). Defaulting to postgres.\n", cfg.DBType)
		cfg.DBType = "postgres"
	}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" && cfg.DBType == "postgres" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.MongoURL = viper.GetString("MONGO_URL")
	if cfg.MongoURL == "" && cfg.DBType == "mongo" {
		log.Println("Warning: MONGO_URL environment variable not set.")
	}
	cfg.MongoDBName = viper.GetString("MONGO_DB_NAME")

	cfg.Port = viper.GetString("PORT")
	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	cfg.APIBasePath = viper.GetString("API_BASE_PATH")
	if cfg.APIBasePath == "" {
		cfg.APIBasePath = "/api/v1"
		log.Printf("Warning: API_BASE_PATH not set. Defaulting to %s.\n", cfg.APIBasePath)
	}

	cfg.DefaultFiscalYear = viper.GetString("DEFAULT_FISCAL_YEAR")

	cfg.RateLimit = viper.GetString("RATE_LIMIT")
	if cfg.RateLimit == "" {
		cfg.RateLimit = "100-M" // 100 requests per minute
		log.Printf("Warning: RATE_LIMIT not set. Defaulting to %s.\n", cfg.RateLimit)
	}

	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.EnableDBCheck = viper.GetBool("ENABLE_DB_CHECK")

	return cfg, nil
}
