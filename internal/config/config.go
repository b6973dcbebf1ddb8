package config

import (
	"os"

	"github.com/sirupsen/logrus"
)

type Config struct {
	HTTPPort    string
	DatabaseDSN string
	JWTSecret   string
	CORSOrigins string
	// Passkey is the shared secret checked on login. PasskeyHash (bcrypt)
	// takes precedence when both are set.
	Passkey     string
	PasskeyHash string
	// AuthRequired gates the bearer middleware on resource routes. The
	// deployed frontend handles its own gating, so this defaults to off.
	AuthRequired bool
	GormLogMode  bool
}

func Load() *Config {
	cfg := &Config{
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:  getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=rentledger port=5432 sslmode=disable"),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		CORSOrigins:  getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		Passkey:      getEnv("PASSKEY", ""),
		PasskeyHash:  getEnv("PASSKEY_HASH", ""),
		AuthRequired: getEnv("AUTH_REQUIRED", "false") == "true",
		GormLogMode:  getEnv("GORM_LOG_MODE", "false") == "true",
	}

	if cfg.JWTSecret == "" {
		logrus.Fatal("JWT_SECRET is not set; it is required to sign login tokens")
	}
	if len(cfg.JWTSecret) < 32 {
		logrus.Fatal("JWT_SECRET must be at least 32 characters")
	}
	if cfg.Passkey == "" && cfg.PasskeyHash == "" {
		logrus.Warn("neither PASSKEY nor PASSKEY_HASH is set, /auth/login will always fail")
	}
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=rentledger port=5432 sslmode=disable" {
		logrus.Warn("DATABASE_DSN is using the default value, set your own Postgres connection for production")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
