package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver   string // postgres or sqlite
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	SQLitePath string
	JWTSecret  string
	ServerPort string
	RedisAddr  string // empty disables the redis mirror

	// IdentityURL points at the external session adapter. When set, the local
	// demo login/signup paths are disabled and identity comes from the adapter.
	IdentityURL string

	// DemoMode keeps the platform fully local: seeded defaults, in-memory
	// mirror, no identity adapter.
	DemoMode bool
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, using environment variables")
	}

	return &Config{
		DBDriver:    getEnv("DB_DRIVER", "postgres"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBName:      getEnv("DB_NAME", "learning_platform"),
		SQLitePath:  getEnv("SQLITE_PATH", "platform.db"),
		JWTSecret:   getEnv("JWT_SECRET", "secret"),
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		RedisAddr:   getEnv("REDIS_ADDR", ""),
		IdentityURL: getEnv("IDENTITY_URL", ""),
		DemoMode:    getEnv("DEMO_MODE", "false") == "true",
	}, nil
}

// Mode reports the label used by the health check.
func (c *Config) Mode() string {
	if c.DemoMode {
		return "demo"
	}
	return "production"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
