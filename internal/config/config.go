// Package config loads the service configuration from a YAML file with
// environment-variable overrides, so containerized deployments can inject
// credentials without a config file on disk.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go.yaml.in/yaml/v3"

	"github.com/aerosys-mx/bookings-admin/internal/errs"
)

// Config is the root configuration for the service.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Archive  ArchiveConfig  `yaml:"archive"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig holds the HTTP listener settings.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// Credentials is one database role's login pair.
type Credentials struct {
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

// RoleCredentials binds each privilege tier to its database login.
// The keys mirror the database role names.
type RoleCredentials struct {
	Viewer   Credentials `yaml:"rol_consulta"`
	Operator Credentials `yaml:"rol_operaciones"`
	Admin    Credentials `yaml:"rol_administracion"`
}

// PoolConfig tunes every per-role connection pool.
type PoolConfig struct {
	MaxConns        int32         `yaml:"max_conns"`
	MinConns        int32         `yaml:"min_conns"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time"`
	ConnectTimeout  time.Duration `yaml:"connect_timeout"`
}

// DatabaseConfig holds the shared connection settings plus the three
// role-scoped credential sets.
type DatabaseConfig struct {
	Host     string          `yaml:"host"`
	Port     int             `yaml:"port"`
	Database string          `yaml:"database"`
	SSLMode  string          `yaml:"sslmode"`
	Roles    RoleCredentials `yaml:"roles"`
	Pool     PoolConfig      `yaml:"pool"`
}

// ArchiveConfig holds the optional report-archive object storage settings.
type ArchiveConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Default returns the local-development configuration: the pgAdmin demo
// database on localhost and the listener on :3001.
func Default() *Config {
	return &Config{
		Server: ServerConfig{Addr: ":3001"},
		Database: DatabaseConfig{
			Host:     "localhost",
			Port:     5432,
			Database: "demo",
			SSLMode:  "disable",
			Pool: PoolConfig{
				MaxConns:        10,
				MinConns:        2,
				MaxConnLifetime: 30 * time.Minute,
				MaxConnIdleTime: 5 * time.Minute,
				ConnectTimeout:  5 * time.Second,
			},
		},
		Log: LogConfig{Level: "info", Format: "json"},
	}
}

// Load reads the YAML file at path, applies environment overrides, and
// validates the result. A missing file is not an error: the defaults plus
// environment variables are used instead.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errs.Wrap(errs.ErrKindInvalidInput,
				fmt.Sprintf("failed to parse config file %s", path), err)
		}
	} else if !os.IsNotExist(err) {
		return nil, errs.Wrap(errs.ErrKindInvalidInput,
			fmt.Sprintf("failed to read config file %s", path), err)
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overrides config fields from the environment when present.
func applyEnv(cfg *Config) {
	if v := os.Getenv("SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("DB_HOST"); v != "" {
		cfg.Database.Host = v
	}
	if v := os.Getenv("DB_PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Database.Port = p
		}
	}
	if v := os.Getenv("DB_NAME"); v != "" {
		cfg.Database.Database = v
	}
	if v := os.Getenv("DB_SSLMODE"); v != "" {
		cfg.Database.SSLMode = v
	}
	if v := os.Getenv("DB_VIEWER_USER"); v != "" {
		cfg.Database.Roles.Viewer.User = v
	}
	if v := os.Getenv("DB_VIEWER_PASSWORD"); v != "" {
		cfg.Database.Roles.Viewer.Password = v
	}
	if v := os.Getenv("DB_OPERATOR_USER"); v != "" {
		cfg.Database.Roles.Operator.User = v
	}
	if v := os.Getenv("DB_OPERATOR_PASSWORD"); v != "" {
		cfg.Database.Roles.Operator.Password = v
	}
	if v := os.Getenv("DB_ADMIN_USER"); v != "" {
		cfg.Database.Roles.Admin.User = v
	}
	if v := os.Getenv("DB_ADMIN_PASSWORD"); v != "" {
		cfg.Database.Roles.Admin.Password = v
	}
	if v := os.Getenv("ARCHIVE_ENDPOINT"); v != "" {
		cfg.Archive.Enabled = true
		cfg.Archive.Endpoint = v
	}
	if v := os.Getenv("ARCHIVE_ACCESS_KEY"); v != "" {
		cfg.Archive.AccessKey = v
	}
	if v := os.Getenv("ARCHIVE_SECRET_KEY"); v != "" {
		cfg.Archive.SecretKey = v
	}
	if v := os.Getenv("ARCHIVE_BUCKET"); v != "" {
		cfg.Archive.Bucket = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

// validate rejects configurations that cannot produce three working pools.
func (c *Config) validate() error {
	creds := map[string]Credentials{
		"rol_consulta":       c.Database.Roles.Viewer,
		"rol_operaciones":    c.Database.Roles.Operator,
		"rol_administracion": c.Database.Roles.Admin,
	}
	for role, cr := range creds {
		if cr.User == "" || cr.Password == "" {
			return errs.New(errs.ErrKindInvalidInput,
				fmt.Sprintf("missing database credentials for %s", role))
		}
	}
	if c.Archive.Enabled {
		if c.Archive.Endpoint == "" || c.Archive.Bucket == "" {
			return errs.New(errs.ErrKindInvalidInput,
				"archive requires endpoint and bucket")
		}
	}
	return nil
}
