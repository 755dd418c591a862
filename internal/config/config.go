package config

import (
	"net"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/pkg/errors"
	// Loads a .env file into the process environment, if present.
	_ "github.com/joho/godotenv/autoload"
)

const (
	BackendSupabase = "supabase"
	BackendMySQL    = "mysql"
	BackendMemory   = "memory"
)

type Config struct {
	Port            string        `env:"PORT" env-default:"3000" env-description:"HTTP listening port"`
	RoomsBackend    string        `env:"ROOMS_BACKEND" env-default:"supabase" env-description:"Rooms store: supabase, mysql or memory"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`

	Supabase Supabase
	DB       Database
	Log      Log
}

// Supabase holds the hosted data service credentials.
type Supabase struct {
	URL     string        `env:"SUPABASE_URL"`
	Key     string        `env:"SUPABASE_KEY"`
	Timeout time.Duration `env:"SUPABASE_TIMEOUT" env-default:"10s"`
}

type Database struct {
	Host           string        `env:"DB_HOST" env-default:"db"`
	Port           string        `env:"DB_PORT" env-default:"3306"`
	Name           string        `env:"DB_NAME" env-default:"hotel"`
	User           string        `env:"DB_USER" env-default:"appuser"`
	Password       string        `env:"DB_PASSWORD" env-default:"apppass"`
	ConnectTimeout time.Duration `env:"DB_CONNECT_TIMEOUT" env-default:"30s"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"json"`
}

// Load reads the configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, errors.Wrap(err, "read env")
	}
	cfg.RoomsBackend = strings.ToLower(strings.TrimSpace(cfg.RoomsBackend))
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.RoomsBackend {
	case BackendSupabase:
		if c.Supabase.URL == "" || c.Supabase.Key == "" {
			return errors.Errorf("SUPABASE_URL and SUPABASE_KEY are required for rooms backend %q", c.RoomsBackend)
		}
	case BackendMySQL, BackendMemory:
	default:
		return errors.Errorf("unknown rooms backend %q", c.RoomsBackend)
	}
	if strings.TrimSpace(c.Port) == "" {
		return errors.New("PORT must not be empty")
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string { return net.JoinHostPort("", c.Port) }

func (c Config) DSN() string {
	cfg := mysql.NewConfig()
	cfg.User = c.DB.User
	cfg.Passwd = c.DB.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(c.DB.Host, c.DB.Port)
	cfg.DBName = c.DB.Name
	cfg.ParseTime = true
	cfg.Loc = time.UTC
	if cfg.Params == nil {
		cfg.Params = map[string]string{}
	}
	cfg.Params["charset"] = "utf8mb4"
	return cfg.FormatDSN()
}

// Usage describes the supported environment variables.
func Usage() string {
	var cfg Config
	s, _ := cleanenv.GetDescription(&cfg, nil)
	return s
}
