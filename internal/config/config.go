package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

type Config struct {
	AppEnv        string
	AppPort       string
	StorageDriver string
	DBHost        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBPort        string
	RedisAddr     string
	KafkaBroker   string
	KafkaTopic    string
	JWTSecret     string
	CORSOrigin    string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:        os.Getenv("APP_ENV"),
		AppPort:       os.Getenv("APP_PORT"),
		StorageDriver: os.Getenv("STORAGE_DRIVER"),
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBPort:        os.Getenv("DB_PORT"),
		RedisAddr:     os.Getenv("REDIS_ADDR"),
		KafkaBroker:   os.Getenv("KAFKA_BROKER"),
		KafkaTopic:    os.Getenv("KAFKA_TOPIC"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		CORSOrigin:    os.Getenv("CORS_ORIGIN"),
	}

	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}
	if cfg.StorageDriver == "" {
		cfg.StorageDriver = StorageMemory
	}
	if cfg.KafkaTopic == "" {
		cfg.KafkaTopic = "orders"
	}
	if cfg.CORSOrigin == "" {
		cfg.CORSOrigin = "http://localhost:3000"
	}

	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	return cfg
}

// Validate checks that the selected storage backend has its settings.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return ErrMissingJWTSecret
	}

	switch c.StorageDriver {
	case StorageMemory:
		return nil
	case StoragePostgres:
		if c.DBHost == "" {
			return ErrMissingDatabase
		}
		return nil
	case StorageRedis:
		if c.RedisAddr == "" {
			return ErrMissingRedis
		}
		return nil
	default:
		return ErrUnknownStorage
	}
}
