package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// DefaultJWTSecret secreto de desarrollo; el arranque lo advierte en el log si sigue activo.
const DefaultJWTSecret = "dev-secret-change"

// Drivers de almacenamiento soportados (DB_DRIVER).
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	DB      DBConfig
	JWT     JWTConfig
	HTTP    HTTPConfig
	Scraper ScraperConfig
	Webhook WebhookConfig
	Login   LoginConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// DBConfig configuración del document store.
// DatabaseURL es el connection string (mongodb://... o postgres://...) según Driver.
type DBConfig struct {
	Driver      string
	DatabaseURL string
	DBName      string
}

// ConnectionString devuelve el DSN a usar.
func (c DBConfig) ConnectionString() string {
	return c.DatabaseURL
}

// JWTConfig configuración de JWT.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// TTL devuelve la vigencia del token como duración.
func (c JWTConfig) TTL() time.Duration {
	return time.Duration(c.Expiration) * time.Minute
}

// UsingDefaultSecret indica si se sigue usando el secreto de desarrollo.
func (c JWTConfig) UsingDefaultSecret() bool {
	return c.Secret == DefaultJWTSecret
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

// ScraperConfig parámetros de la descarga de la página del proveedor.
type ScraperConfig struct {
	Timeout    time.Duration
	UserAgent  string
	SupplierID string
}

// WebhookConfig secreto compartido opcional del webhook de OptimoRoute.
// Vacío = webhook abierto (contrato original).
type WebhookConfig struct {
	Secret string
}

// LoginConfig límites de intentos de login por IP.
type LoginConfig struct {
	RatePerMinute int
	Burst         int
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DB_DRIVER, DATABASE_URL, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
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
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "field-stock-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		DB: DBConfig{
			Driver:      strings.ToLower(getString(v, "DB_DRIVER", DriverMongo)),
			DatabaseURL: getString(v, "DATABASE_URL", ""),
			DBName:      getString(v, "DATABASE_NAME", "fieldstock"),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", DefaultJWTSecret),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60*24),
			Issuer:     getString(v, "JWT_ISSUER", "field-stock-api"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			// PORT lo inyectan la mayoría de PaaS; HTTP_PORT tiene prioridad.
			Port: getInt(v, "HTTP_PORT", getInt(v, "PORT", 8000)),
		},
		Scraper: ScraperConfig{
			Timeout:    time.Duration(getInt(v, "SCRAPER_TIMEOUT_SECONDS", 25)) * time.Second,
			UserAgent:  getString(v, "SCRAPER_USER_AGENT", "Mozilla/5.0"),
			SupplierID: getString(v, "SUPPLIER_ID", "mijninstallatiepartner"),
		},
		Webhook: WebhookConfig{
			Secret: getString(v, "WEBHOOK_SECRET", ""),
		},
		Login: LoginConfig{
			RatePerMinute: getInt(v, "LOGIN_RATE_PER_MINUTE", 30),
			Burst:         getInt(v, "LOGIN_BURST", 10),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.DB.Driver {
	case DriverMongo, DriverPostgres:
		if c.DB.DatabaseURL == "" {
			return fmt.Errorf("config: DATABASE_URL requerido para DB_DRIVER=%s", c.DB.Driver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("config: DB_DRIVER desconocido %q", c.DB.Driver)
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("config: JWT_SECRET vacío")
	}
	if c.JWT.Expiration <= 0 {
		return fmt.Errorf("config: JWT_EXPIRATION_MINUTES debe ser positivo")
	}
	if c.Scraper.Timeout <= 0 {
		return fmt.Errorf("config: SCRAPER_TIMEOUT_SECONDS debe ser positivo")
	}
	return nil
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
