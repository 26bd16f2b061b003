package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		// t.Setenv restores the variables when the test ends.
		t.Setenv("APP_ENV", "test")
		t.Setenv("APP_PORT", "9090")
		t.Setenv("STORAGE_DRIVER", "postgres")
		t.Setenv("DB_HOST", "localhost")
		t.Setenv("DB_USER", "testuser")
		t.Setenv("DB_PASSWORD", "testpass")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("DB_PORT", "5432")
		t.Setenv("REDIS_ADDR", "localhost:6379")
		t.Setenv("KAFKA_BROKER", "localhost:9092")
		t.Setenv("KAFKA_TOPIC", "store-orders")
		t.Setenv("JWT_SECRET", "secret")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "9090", cfg.AppPort)
		assert.Equal(t, StoragePostgres, cfg.StorageDriver)
		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "testuser", cfg.DBUser)
		assert.Equal(t, "testpass", cfg.DBPassword)
		assert.Equal(t, "testdb", cfg.DBName)
		assert.Equal(t, "5432", cfg.DBPort)
		assert.Equal(t, "localhost:6379", cfg.RedisAddr)
		assert.Equal(t, "localhost:9092", cfg.KafkaBroker)
		assert.Equal(t, "store-orders", cfg.KafkaTopic)
		assert.Equal(t, "secret", cfg.JWTSecret)
	})

	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("APP_PORT", "")
		t.Setenv("STORAGE_DRIVER", "")
		t.Setenv("KAFKA_TOPIC", "")
		t.Setenv("CORS_ORIGIN", "")
		t.Setenv("JWT_SECRET", "secret")

		cfg := LoadConfig()

		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, StorageMemory, cfg.StorageDriver)
		assert.Equal(t, "orders", cfg.KafkaTopic)
		assert.Equal(t, "http://localhost:3000", cfg.CORSOrigin)
	})
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
		want error
	}{
		{"memory", Config{JWTSecret: "s", StorageDriver: StorageMemory}, nil},
		{"missing secret", Config{StorageDriver: StorageMemory}, ErrMissingJWTSecret},
		{"postgres without host", Config{JWTSecret: "s", StorageDriver: StoragePostgres}, ErrMissingDatabase},
		{"postgres", Config{JWTSecret: "s", StorageDriver: StoragePostgres, DBHost: "db"}, nil},
		{"redis without addr", Config{JWTSecret: "s", StorageDriver: StorageRedis}, ErrMissingRedis},
		{"redis", Config{JWTSecret: "s", StorageDriver: StorageRedis, RedisAddr: "r:6379"}, nil},
		{"unknown", Config{JWTSecret: "s", StorageDriver: "sqlite"}, ErrUnknownStorage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cfg.Validate())
		})
	}
}
