// Package config handles configuration for the server component: defaults,
// an optional JSON file, environment variables and command-line flags,
// applied in that order.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/contactkeeper/internal/logging"
	"github.com/dmitrijs2005/contactkeeper/internal/server/auth"
	"github.com/dmitrijs2005/contactkeeper/internal/server/repositories/repomanager"
	"golang.org/x/crypto/bcrypt"
)

// Config holds runtime settings for the contacts server.
//
// Fields:
//   - Env: logging profile, one of local, dev, prod.
//   - HTTPAddress: bind address for the HTTP API.
//   - DatabaseDriver / DatabaseDSN: postgres (pgx DSN) or sqlite (file path or ":memory:").
//   - SecretKey: HMAC secret for signing session tokens (HS256). Required.
//   - TokenValidityDuration: session token lifetime.
//   - BcryptCost: password hashing cost.
//   - ShutdownTimeout: grace period for in-flight requests on shutdown.
//   - AllowedOrigins: CORS origins; empty or "*" allows any.
type Config struct {
	Env                   string        `env:"ENV"`
	HTTPAddress           string        `env:"HTTP_ADDRESS"`
	DatabaseDriver        string        `env:"DATABASE_DRIVER"`
	DatabaseDSN           string        `env:"DATABASE_DSN"`
	SecretKey             string        `env:"SECRET_KEY"`
	TokenValidityDuration time.Duration `env:"TOKEN_VALIDITY_DURATION"`
	BcryptCost            int           `env:"BCRYPT_COST"`
	ShutdownTimeout       time.Duration `env:"SHUTDOWN_TIMEOUT"`
	AllowedOrigins        []string      `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// LoadDefaults populates Config with development defaults. SecretKey has no
// default and must be supplied.
func (c *Config) LoadDefaults() {
	c.Env = logging.EnvLocal
	c.HTTPAddress = ":5001"
	c.DatabaseDriver = repomanager.DriverSQLite
	c.DatabaseDSN = "contacts.db"
	c.TokenValidityDuration = auth.DefaultTokenValidity
	c.BcryptCost = auth.DefaultBcryptCost
	c.ShutdownTimeout = 5 * time.Second
	c.AllowedOrigins = []string{"*"}
}

// LoadConfig builds a Config from args (without the program name) and the
// process environment given as KEY=VALUE pairs.
func LoadConfig(args []string, environ []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseJson(cfg, args); err != nil {
		return nil, fmt.Errorf("json config: %w", err)
	}
	if err := parseEnv(cfg, environ); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, fmt.Errorf("flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every invalid setting at once.
func (c *Config) Validate() error {
	var errs []error

	switch c.Env {
	case logging.EnvLocal, logging.EnvDev, logging.EnvProd:
	default:
		errs = append(errs, fmt.Errorf("unknown env %q", c.Env))
	}
	if c.HTTPAddress == "" {
		errs = append(errs, errors.New("http address is required"))
	}
	switch c.DatabaseDriver {
	case repomanager.DriverPostgres, repomanager.DriverSQLite:
	default:
		errs = append(errs, fmt.Errorf("unsupported database driver %q", c.DatabaseDriver))
	}
	if c.DatabaseDSN == "" {
		errs = append(errs, errors.New("database dsn is required"))
	}
	if c.SecretKey == "" {
		errs = append(errs, errors.New("secret key is required"))
	}
	if c.TokenValidityDuration <= 0 {
		errs = append(errs, errors.New("token validity duration must be positive"))
	}
	if c.BcryptCost < bcrypt.MinCost || c.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("bcrypt cost must be within [%d, %d]", bcrypt.MinCost, bcrypt.MaxCost))
	}
	if c.ShutdownTimeout < 0 {
		errs = append(errs, errors.New("shutdown timeout must not be negative"))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
