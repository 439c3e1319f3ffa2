package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Mode    string `mapstructure:"mode"`
	// CORS origins, space separated. Empty disables CORS handling.
	CORSAllowOrigins string `mapstructure:"cors_allow_origins"`
	EnablePprof      bool   `mapstructure:"enable_pprof"`
}

type DatabaseConfig struct {
	// Path of the sqlite database file. Ignored when Host is set.
	Path string `mapstructure:"path"`

	// When Host is set, postgres is used instead of sqlite.
	Host     string `mapstructure:"host"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

type AIConfig struct {
	// Gemini model used for assessment scoring. Empty disables the
	// AI scorer, the local formula is used for all assessments.
	Model string `mapstructure:"model"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	AI       AIConfig       `mapstructure:"ai"`
}

var ErrJWTSecretMissing = errors.New("the JWT secret must be configured, set SMARTRISK_JWT_SECRET")

// Load reads the configuration from the environment and, if path is not
// empty, from a YAML configuration file. Environment variables take
// precedence over the file, e.g. SMARTRISK_SERVER_ADDRESS overrides
// server.address.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.cors_allow_origins", "")
	v.SetDefault("server.enable_pprof", false)
	v.SetDefault("database.path", "data/smartrisk.db")
	v.SetDefault("database.host", "")
	v.SetDefault("database.user", "")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expire_hours", 24)
	v.SetDefault("ai.model", "")

	v.SetEnvPrefix("SMARTRISK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if c.JWT.Secret == "" {
		return nil, ErrJWTSecretMissing
	}

	return &c, nil
}
