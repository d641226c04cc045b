package config

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Validate checks cross-field constraints that tags cannot express.
// All problems are collected and returned as a single error.
func (c *Config) Validate() error {
	var errs []error

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port %d out of range", c.Server.Port))
	}
	if c.Server.RateLimitRPS <= 0 {
		errs = append(errs, errors.New("server.rate_limit_rps must be positive"))
	}

	if c.Database.MaxConns < c.Database.MinConns {
		errs = append(errs, fmt.Errorf("database.max_conns %d < min_conns %d",
			c.Database.MaxConns, c.Database.MinConns))
	}

	if len(c.Auth.JWTSecret) < 32 {
		errs = append(errs, errors.New("auth.jwt_secret must be at least 32 characters"))
	}
	if c.Auth.AccessTokenTTL <= 0 {
		errs = append(errs, errors.New("auth.access_token_ttl must be positive"))
	}
	if c.Auth.RefreshTokenTTL <= c.Auth.AccessTokenTTL {
		errs = append(errs, errors.New("auth.refresh_token_ttl must exceed access_token_ttl"))
	}
	if c.Auth.PasswordHashCost < bcrypt.MinCost || c.Auth.PasswordHashCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("auth.password_hash_cost %d out of bcrypt range", c.Auth.PasswordHashCost))
	}

	if !strings.HasPrefix(c.Dictionary.BaseURL, "http") {
		errs = append(errs, fmt.Errorf("dictionary.base_url %q is not an http(s) URL", c.Dictionary.BaseURL))
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format %q must be json or text", c.Log.Format))
	}

	return errors.Join(errs...)
}
