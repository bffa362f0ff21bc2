package config

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

const (
	EnvProduction  = "production"
	EnvDevelopment = "development"

	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	Port      string   `env:"PORT,           default=3000"`
	Env       string   `env:"NODE_ENV,       default=development"`
	LogLevel  string   `env:"LOG_LEVEL,      default=info"`
	JWTSecret string   `env:"JWT_SECRET,     required"`
	TokenTTL  TokenTTL `env:"JWT_EXPIRATION, default=1h"`

	// ExposeInactivePasswordHash restores the password column on the
	// administrator-only inactive user listings.
	ExposeInactivePasswordHash bool `env:"EXPOSE_INACTIVE_PASSWORD_HASH, default=false"`

	DB DBConfig
}

type DBConfig struct {
	Driver          string        `env:"DB_DRIVER,            default=mysql"`
	Host            string        `env:"DB_HOST,              default=localhost"`
	Port            string        `env:"DB_PORT,              default=3306"`
	User            string        `env:"DB_USER,              default=root"`
	Password        string        `env:"DB_PASSWORD"`
	Name            string        `env:"DB_NAME,              default=latihan_backend_uts"`
	Path            string        `env:"DB_PATH,              default=latihan.db"`
	MaxOpenConns    int           `env:"DB_MAX_OPEN_CONNS,    default=10"`
	MaxIdleConns    int           `env:"DB_MAX_IDLE_CONNS,    default=10"`
	ConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME, default=30m"`
}

// TokenTTL is the session token lifetime. It accepts Go durations ("90m"),
// a day suffix ("7d") or a bare number of seconds ("3600").
type TokenTTL time.Duration

// EnvDecode implements envconfig.Decoder.
func (t *TokenTTL) EnvDecode(val string) error {
	d, err := ParseTTL(val)
	if err != nil {
		return err
	}
	*t = TokenTTL(d)
	return nil
}

func (t TokenTTL) Duration() time.Duration {
	return time.Duration(t)
}

// ParseTTL parses the JWT_EXPIRATION formats.
func ParseTTL(val string) (time.Duration, error) {
	s := strings.TrimSpace(val)
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}
	if secs, err := strconv.ParseInt(s, 10, 64); err == nil {
		if secs < 0 {
			return 0, fmt.Errorf("negative duration %q", val)
		}
		return time.Duration(secs) * time.Second, nil
	}
	if days, ok := strings.CutSuffix(s, "d"); ok {
		n, err := strconv.ParseFloat(days, 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid duration %q", val)
		}
		return time.Duration(n * float64(24*time.Hour)), nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", val, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("negative duration %q", val)
	}
	return d, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

func (c *Config) Addr() string {
	return ":" + c.Port
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DriverMySQL, DriverSQLite:
	default:
		return fmt.Errorf("config: unsupported DB_DRIVER %q", c.DB.Driver)
	}
	return nil
}

// Load reads an optional .env file and then the process environment.
func Load(ctx context.Context) (*Config, error) {
	// A missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith reads configuration from l.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
