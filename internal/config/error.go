package config

import "errors"

var (
	ErrMissingJWTSecret = errors.New("JWT_SECRET is not set")
	ErrMissingDatabase  = errors.New("postgres storage selected but DB_HOST is not set")
	ErrMissingRedis     = errors.New("redis storage selected but REDIS_ADDR is not set")
	ErrUnknownStorage   = errors.New("unknown STORAGE_DRIVER (use memory, postgres or redis)")
)
