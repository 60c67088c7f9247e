package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Redis    *RedisConfig    `mapstructure:"redis"`
	Upload   *UploadConfig   `mapstructure:"upload"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	BaseURL            string   `mapstructure:"base_url"`
	Port               string   `mapstructure:"port"`
	JWTSigningKey      string   `mapstructure:"jwt_signing_key"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

type RedisConfig struct {
	Addr       string `mapstructure:"addr"`
	Password   string `mapstructure:"password"`
	DB         int    `mapstructure:"db"`
	TTLSeconds int    `mapstructure:"ttl_seconds"`
}

type UploadConfig struct {
	Dir       string `mapstructure:"dir"`
	BaseURL   string `mapstructure:"base_url"`
	MaxSizeMB int64  `mapstructure:"max_size_mb"`
}

// Load reads the YAML config at path. Any key can be overridden with an
// environment variable, e.g. API_JWT_SIGNING_KEY or POSTGRES_PASSWORD.
func Load(path string) (*AppConfig, error) {
	viper.SetConfigFile(path)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := viper.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	return conf, nil
}
