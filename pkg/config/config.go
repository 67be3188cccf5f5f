package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Fuentes de catálogo soportadas (CATALOG_SOURCE).
const (
	CatalogSourceMemory   = "memory"
	CatalogSourceCSV      = "csv"
	CatalogSourceS3       = "s3"
	CatalogSourcePostgres = "postgres"
)

// Drivers de caché de consultas (CACHE_DRIVER).
const (
	CacheDriverMemory = "memory"
	CacheDriverRedis  = "redis"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Catalog CatalogConfig
	DB      DBConfig
	Cache   CacheConfig
	Chat    ChatConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// CatalogConfig origen del snapshot del catálogo y límites del filtro de precio.
type CatalogConfig struct {
	Source          string // memory, csv, s3, postgres
	CSVPath         string
	S3Bucket        string
	S3Key           string
	S3Region        string
	DefaultMaxPrice decimal.Decimal // tope por defecto del filtro (8 000 000)
	PriceCeiling    decimal.Decimal // máximo del slider (15 000 000)
	Currency        string
}

// DBConfig configuración de PostgreSQL (solo para CATALOG_SOURCE=postgres).
// Si DatabaseURL no está vacío, se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// CacheConfig caché de vistas filtradas.
type CacheConfig struct {
	Driver        string
	TTL           time.Duration
	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// ChatConfig widget de chat simulado.
type ChatConfig struct {
	ReplyDelay  time.Duration
	SessionIdle time.Duration // sesiones sin actividad más tiempo se cierran
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, HTTP_PORT, CATALOG_SOURCE, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	defaultMax, err := getDecimal(v, "CATALOG_DEFAULT_MAX_PRICE", "8000000")
	if err != nil {
		return nil, err
	}
	ceiling, err := getDecimal(v, "CATALOG_PRICE_CEILING", "15000000")
	if err != nil {
		return nil, err
	}
	if defaultMax.GreaterThan(ceiling) {
		return nil, fmt.Errorf("config: CATALOG_DEFAULT_MAX_PRICE (%s) supera CATALOG_PRICE_CEILING (%s)", defaultMax, ceiling)
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "neocommerce-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			Port: getInt(v, "HTTP_PORT", 8080),
		},
		Catalog: CatalogConfig{
			Source:          strings.ToLower(getString(v, "CATALOG_SOURCE", CatalogSourceMemory)),
			CSVPath:         getString(v, "CATALOG_CSV_PATH", "./catalog.csv"),
			S3Bucket:        getString(v, "CATALOG_S3_BUCKET", ""),
			S3Key:           getString(v, "CATALOG_S3_KEY", "catalog.csv"),
			S3Region:        getString(v, "CATALOG_S3_REGION", "us-west-2"),
			DefaultMaxPrice: defaultMax,
			PriceCeiling:    ceiling,
			Currency:        getString(v, "CATALOG_CURRENCY", "MGA"),
		},
		DB: DBConfig{
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "neocommerce"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
		},
		Cache: CacheConfig{
			Driver:        strings.ToLower(getString(v, "CACHE_DRIVER", CacheDriverMemory)),
			TTL:           time.Duration(getInt(v, "CACHE_TTL_SECONDS", 300)) * time.Second,
			RedisAddr:     getString(v, "REDIS_ADDR", "localhost:6379"),
			RedisPassword: getString(v, "REDIS_PASSWORD", ""),
			RedisDB:       getInt(v, "REDIS_DB", 0),
		},
		Chat: ChatConfig{
			ReplyDelay:  time.Duration(getInt(v, "CHAT_REPLY_DELAY_MS", 1000)) * time.Millisecond,
			SessionIdle: time.Duration(getInt(v, "CHAT_SESSION_IDLE_MINUTES", 30)) * time.Minute,
		},
	}

	switch cfg.Catalog.Source {
	case CatalogSourceMemory, CatalogSourceCSV, CatalogSourceS3, CatalogSourcePostgres:
	default:
		return nil, fmt.Errorf("config: CATALOG_SOURCE desconocido %q", cfg.Catalog.Source)
	}
	if cfg.Catalog.Source == CatalogSourceS3 && cfg.Catalog.S3Bucket == "" {
		return nil, fmt.Errorf("config: CATALOG_S3_BUCKET requerido con CATALOG_SOURCE=s3")
	}
	switch cfg.Cache.Driver {
	case CacheDriverMemory, CacheDriverRedis:
	default:
		return nil, fmt.Errorf("config: CACHE_DRIVER desconocido %q", cfg.Cache.Driver)
	}

	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getDecimal(v *viper.Viper, key, def string) (decimal.Decimal, error) {
	raw := getString(v, key, def)
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, fmt.Errorf("config: %s inválido: %w", key, err)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("config: %s no puede ser negativo", key)
	}
	return d, nil
}
