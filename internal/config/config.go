package config

import "time"

// Config is the root configuration for the SharedBid server.
type Config struct {
	Server   ServerConfig  `yaml:"server"`
	Storage  StorageConfig `yaml:"storage"`
	Database DBConfig      `yaml:"database"`
	Auth     AuthConfig    `yaml:"auth"`
	Log      LogConfig     `yaml:"log"`
	Seed     SeedConfig    `yaml:"seed"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"` // debug, release or test
}

// StorageConfig selects the ledger's backing store.
type StorageConfig struct {
	Driver string `yaml:"driver"` // memory or postgres
}

// DBConfig holds a single database connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// AuthConfig holds session token and password hashing settings.
type AuthConfig struct {
	TokenSecret string        `yaml:"token_secret"`
	TokenTTL    time.Duration `yaml:"token_ttl"`
	Issuer      string        `yaml:"issuer"`
	BcryptCost  int           `yaml:"bcrypt_cost"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `yaml:"level"`
}

// SeedConfig controls loading of demo data at start-up.
type SeedConfig struct {
	Enabled  bool   `yaml:"enabled"`
	Password string `yaml:"password"` // shared by every demo account
}
