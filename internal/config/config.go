package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Stevekaplanai/venturevault-backend/internal/logger"
	"github.com/Stevekaplanai/venturevault-backend/internal/utils"
)

type HTTPConfig struct {
	Addr                   string   `yaml:"addr"`
	ShutdownTimeoutSeconds int      `yaml:"shutdown_timeout_seconds"`
	CORSAllowOrigins       []string `yaml:"cors_allow_origins"`
}

type AuthConfig struct {
	JWTSecretKey           string `yaml:"jwt_secret_key"`
	AccessTokenTTLSeconds  int    `yaml:"access_token_ttl_seconds"`
	RefreshTokenTTLSeconds int    `yaml:"refresh_token_ttl_seconds"`
}

type UpstreamConfig struct {
	// BaseURL of the hosted idea service. Empty disables live fetching and
	// the catalog serves the static dataset only.
	BaseURL string `yaml:"base_url"`
}

type Config struct {
	Env      string         `yaml:"env"`
	HTTP     HTTPConfig     `yaml:"http"`
	Auth     AuthConfig     `yaml:"auth"`
	Upstream UpstreamConfig `yaml:"upstream"`
}

// Load reads the optional YAML file at CONFIG_PATH, then applies env-var
// overrides. Env always wins so deployments can keep one file and tweak per
// environment.
func Load(log *logger.Logger) (*Config, error) {
	cfg := &Config{
		Env: "development",
		HTTP: HTTPConfig{
			Addr:                   ":8080",
			ShutdownTimeoutSeconds: 10,
			CORSAllowOrigins: []string{
				"http://localhost:3000",
				"http://localhost:5173",
				"http://127.0.0.1:3000",
				"http://127.0.0.1:5173",
			},
		},
		Auth: AuthConfig{
			JWTSecretKey:           "defaultsecret",
			AccessTokenTTLSeconds:  3600,
			RefreshTokenTTLSeconds: 86400,
		},
	}

	path := strings.TrimSpace(os.Getenv("CONFIG_PATH"))
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
		if log != nil {
			log.Info("Loaded config file", "path", path)
		}
	}

	cfg.Env = utils.GetEnv("APP_ENV", cfg.Env, log)
	if port := utils.GetEnv("PORT", "", log); port != "" {
		cfg.HTTP.Addr = ":" + port
	}
	cfg.Auth.JWTSecretKey = utils.GetEnv("JWT_SECRET_KEY", cfg.Auth.JWTSecretKey, log)
	cfg.Auth.AccessTokenTTLSeconds = utils.GetEnvAsInt("ACCESS_TOKEN_TTL", cfg.Auth.AccessTokenTTLSeconds, log)
	cfg.Auth.RefreshTokenTTLSeconds = utils.GetEnvAsInt("REFRESH_TOKEN_TTL", cfg.Auth.RefreshTokenTTLSeconds, log)
	cfg.Upstream.BaseURL = utils.GetEnv("UPSTREAM_IDEAS_URL", cfg.Upstream.BaseURL, log)

	if origins := utils.GetEnv("CORS_ALLOW_ORIGINS", "", log); origins != "" {
		parts := strings.Split(origins, ",")
		cleaned := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				cleaned = append(cleaned, p)
			}
		}
		if len(cleaned) > 0 {
			cfg.HTTP.CORSAllowOrigins = cleaned
		}
	}

	return cfg, nil
}
