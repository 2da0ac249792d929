package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type HTTP struct {
	Host string
	Port int
}

type DB struct {
	Host    string
	Port    int
	User    string
	Pass    string
	Name    string
	SSLMode string
}

type JWT struct {
	Secret string
	Issuer string
	ExpMin int
}

type Config struct {
	HTTP HTTP
	DB   DB
	JWT  JWT
}

// Load reads an optional YAML file and lets every key be overridden from the
// environment with a GADGET_ prefix (e.g. GADGET_DB_HOST, GADGET_JWT_SECRET).
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("http.host", "0.0.0.0")
	v.SetDefault("http.port", 5000)
	v.SetDefault("db.host", "127.0.0.1")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "postgres")
	v.SetDefault("db.pass", "postgres")
	v.SetDefault("db.name", "imf_gadget_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.issuer", "imf-gadgets")
	v.SetDefault("jwt.exp_min", 60)

	v.SetEnvPrefix("GADGET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{
		HTTP: HTTP{Host: v.GetString("http.host"), Port: v.GetInt("http.port")},
		DB: DB{
			Host:    v.GetString("db.host"),
			Port:    v.GetInt("db.port"),
			User:    v.GetString("db.user"),
			Pass:    v.GetString("db.pass"),
			Name:    v.GetString("db.name"),
			SSLMode: v.GetString("db.sslmode"),
		},
		JWT: JWT{Secret: v.GetString("jwt.secret"), Issuer: v.GetString("jwt.issuer"), ExpMin: v.GetInt("jwt.exp_min")},
	}
	if cfg.JWT.Secret == "" {
		cfg.JWT.Secret = "dev-secret"
	}
	if cfg.JWT.ExpMin <= 0 {
		cfg.JWT.ExpMin = 60
	}
	return cfg, nil
}
