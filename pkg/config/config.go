package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

const (
	EnvPrefix = ""

	AppEnvDev  = "dev"
	AppEnvProd = "prod"
)

type Config struct {
	App         AppConfig
	DB          DBConfig
	Redis       RedisConfig
	JWT         JWTConfig
	Password    PasswordConfig
	Permissions PermissionsConfig
	Client      ClientConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"IMMOGEST_APP_ENV" required:"true"`
	Port         string `envconfig:"IMMOGEST_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"IMMOGEST_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"IMMOGEST_LOG_WARN_STACK" default:"false"`
	AutoMigrate  bool   `envconfig:"IMMOGEST_AUTO_MIGRATE" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"IMMOGEST_DB_DSN"`
	Driver string `envconfig:"IMMOGEST_DB_DRIVER" default:"postgres"`

	Host     string `envconfig:"IMMOGEST_DB_HOST"`
	Port     int    `envconfig:"IMMOGEST_DB_PORT" default:"5432"`
	User     string `envconfig:"IMMOGEST_DB_USER"`
	Password string `envconfig:"IMMOGEST_DB_PASSWORD"`
	Name     string `envconfig:"IMMOGEST_DB_NAME"`
	SSLMode  string `envconfig:"IMMOGEST_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"IMMOGEST_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"IMMOGEST_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"IMMOGEST_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"IMMOGEST_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

// ensureDSN assembles a DSN from the discrete fields when one is not provided.
func (d *DBConfig) ensureDSN() error {
	if d.DSN != "" {
		return nil
	}
	if d.Host == "" || d.User == "" || d.Name == "" {
		return fmt.Errorf("either IMMOGEST_DB_DSN or host/user/name must be set")
	}
	d.DSN = fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
	return nil
}

type RedisConfig struct {
	URL          string        `envconfig:"IMMOGEST_REDIS_URL"`
	Address      string        `envconfig:"IMMOGEST_REDIS_ADDR"`
	Password     string        `envconfig:"IMMOGEST_REDIS_PASSWORD"`
	DB           int           `envconfig:"IMMOGEST_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"IMMOGEST_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"IMMOGEST_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"IMMOGEST_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"IMMOGEST_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"IMMOGEST_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"IMMOGEST_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"IMMOGEST_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"IMMOGEST_JWT_EXPIRATION_MINUTES" default:"60"`
	SessionTTLMinutes int    `envconfig:"IMMOGEST_SESSION_TTL_MINUTES" default:"1440"`
}

// SessionTTL returns the redis session lifetime configured in minutes.
func (j JWTConfig) SessionTTL() time.Duration {
	if j.SessionTTLMinutes <= 0 {
		return 0
	}
	return time.Duration(j.SessionTTLMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"IMMOGEST_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"IMMOGEST_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"IMMOGEST_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"IMMOGEST_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"IMMOGEST_ARGON_KEY_LEN" default:"32"`
}

type PermissionsConfig struct {
	CacheTTL time.Duration `envconfig:"IMMOGEST_PERMISSIONS_CACHE_TTL" default:"5m"`
}

// ClientConfig drives the state SDK's HTTP client.
type ClientConfig struct {
	BaseURL string        `envconfig:"IMMOGEST_CLIENT_BASE_URL"`
	Timeout time.Duration `envconfig:"IMMOGEST_CLIENT_TIMEOUT" default:"15s"`
}
