// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/danielhkuo/star-wars-characters/endpoint"
)

const (
	DefaultPort        = 3318
	DefaultDatabaseURL = "file:swchars.db"
	DefaultEnvFile     = ".env"

	DatabaseSQLite   = "sqlite"
	DatabasePostgres = "postgres"
)

type Config struct {
	Port         int
	Endpoint     string
	DatabaseURL  string
	DatabaseType string
	EnvFile      string
}

// ParseFlags reads flags, then fills the gaps from the environment
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("swchars", flag.ContinueOnError)

	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.Endpoint, "e", "", "Character API base address")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")
	fs.StringVar(&cfg.DatabaseType, "t", "", "Database type (sqlite or postgres)")
	fs.StringVar(&cfg.EnvFile, "env-file", "", "Dotenv file to load")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if cfg.EnvFile == "" {
		cfg.EnvFile = os.Getenv("ENV_FILE")
	}
	if cfg.EnvFile == "" {
		cfg.EnvFile = DefaultEnvFile
	}
	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return Config{}, err
	}

	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = DefaultPort
		}
	}
	if cfg.Port < 0 || cfg.Port > 65535 {
		return Config{}, fmt.Errorf("port %d out of range", cfg.Port)
	}

	if cfg.Endpoint == "" {
		cfg.Endpoint = os.Getenv("API_ENDPOINT")
	}
	cfg.Endpoint = endpoint.Resolve(cfg.Endpoint)

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = DefaultDatabaseURL
	}

	if cfg.DatabaseType == "" {
		cfg.DatabaseType = os.Getenv("DATABASE_TYPE")
		if cfg.DatabaseType == "" {
			cfg.DatabaseType = DatabaseSQLite
		}
	}
	if cfg.DatabaseType != DatabaseSQLite && cfg.DatabaseType != DatabasePostgres {
		return Config{}, fmt.Errorf("unsupported database type %q", cfg.DatabaseType)
	}

	return cfg, nil
}

// loadEnvFile loads path without overriding variables already set
func loadEnvFile(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	return nil
}
