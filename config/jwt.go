package config

import (
	"errors"
	"time"
)

const (
	DefaultAccessTokenTTL  = 20 * time.Hour
	DefaultRefreshTokenTTL = 48 * time.Hour
	DefaultResetTokenTTL   = time.Hour

	devJWTSecret = "dev-secret-change-me"
)

// JWTConfig holds the signing key and lifetimes of every token the API
// issues.
type JWTConfig struct {
	Secret     []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	ResetTTL   time.Duration
}

func loadJWT(env string) (JWTConfig, error) {
	secret := getEnvString("JWT_SECRET", "")
	if secret == "" {
		if env == EnvProduction {
			return JWTConfig{}, errors.New("JWT_SECRET must be set in production")
		}
		secret = devJWTSecret
	}

	return JWTConfig{
		Secret:     []byte(secret),
		AccessTTL:  getEnvDuration("ACCESS_TOKEN_TTL", DefaultAccessTokenTTL),
		RefreshTTL: getEnvDuration("REFRESH_TOKEN_TTL", DefaultRefreshTokenTTL),
		ResetTTL:   getEnvDuration("RESET_TOKEN_TTL", DefaultResetTokenTTL),
	}, nil
}
