package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Environment constants
const (
	Development = "development"
	Production  = "production"
	Test        = "test"
)

// EnvPrefix prefixes every environment override, e.g. SR_SERVER_PORT
const EnvPrefix = "SR"

// ConfigPaths defines the paths to look for config files
var ConfigPaths = []string{
	"./configs",
	"../configs",
	"../../configs",
}

// DotEnvPaths defines the paths to look for .env files
var DotEnvPaths = []string{
	".env",
	"../.env",
	"../../.env",
	"./configs/.env",
}

// envAliases are short environment names kept alongside the automatic SR_<SECTION>_<KEY> ones
var envAliases = map[string]string{
	"SR_DB_HOST":      "database.host",
	"SR_DB_PORT":      "database.port",
	"SR_DB_USERNAME":  "database.username",
	"SR_DB_PASSWORD":  "database.password",
	"SR_DB_NAME":      "database.name",
	"SR_DB_SSL_MODE":  "database.sslMode",
	"SR_PORT":         "server.port",
	"SR_STATIC_DIR":   "server.staticDir",
	"SR_SESSION_SIZE": "pool.sessionSize",
	"SR_POOL_SEED":    "pool.seed",
}

// LoadConfig loads configuration from file based on the environment.
// A missing config file is not an error; defaults and environment apply.
func LoadConfig() (*Config, error) {
	if err := loadDotEnvFile(); err != nil {
		fmt.Println("Warning: Could not load .env file:", err)
	}

	env := getEnvironment()

	v := viper.New()
	v.SetConfigName(env)
	v.SetConfigType("yaml")
	for _, path := range ConfigPaths {
		v.AddConfigPath(path)
	}

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	processEnvOverrides(v)

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.Environment = env
	return &config, nil
}

// loadDotEnvFile loads the first .env file found; existing variables win
func loadDotEnvFile() error {
	var lastError error

	for _, path := range DotEnvPaths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			lastError = err
			continue
		}
		return nil
	}

	if lastError != nil {
		return fmt.Errorf("could not load any .env file: %w", lastError)
	}
	return errors.New("no .env file found in search paths")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 3000)
	v.SetDefault("server.readTimeout", "15s")
	v.SetDefault("server.writeTimeout", "15s")
	v.SetDefault("server.idleTimeout", "60s")
	v.SetDefault("server.readHeaderTimeout", "10s")
	v.SetDefault("server.shutdownTimeout", "10s")
	v.SetDefault("server.staticDir", "")

	v.SetDefault("store.driver", StoreDriverJSONFile)
	v.SetDefault("store.path", "./data/db.json")

	v.SetDefault("database.host", "")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.username", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 25)
	v.SetDefault("database.connMaxLifetime", "5m")
	v.SetDefault("database.connMaxIdleTime", "5m")
	v.SetDefault("database.queryTimeout", "10s")
	v.SetDefault("database.logLevel", "warn")
	v.SetDefault("database.retryAttempts", 3)
	v.SetDefault("database.retryDelay", "2s")
	v.SetDefault("database.monitorInterval", "30s")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")

	v.SetDefault("pool.sessionSize", 100)
	v.SetDefault("pool.seed", 0)

	v.SetDefault("auth.passwordHashing", "plaintext")
	v.SetDefault("auth.bcryptCost", 0)
}

// getEnvironment determines the environment to use based on SR_ENV
func getEnvironment() string {
	env := strings.ToLower(strings.TrimSpace(os.Getenv(EnvPrefix + "_ENV")))
	if env == "" {
		return Development
	}
	return env
}

// processEnvOverrides applies the short aliases; they take precedence over the file
func processEnvOverrides(v *viper.Viper) {
	for name, key := range envAliases {
		if value := os.Getenv(name); value != "" {
			v.Set(key, value)
		}
	}
}
