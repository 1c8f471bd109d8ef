package config

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrMissingBackendURL se devuelve cuando BACKEND_URL no está definido. Es fatal al arrancar.
var ErrMissingBackendURL = errors.New("config: BACKEND_URL no está definido")

// ErrMissingJWTSecret se devuelve cuando JWT_SECRET no está definido.
var ErrMissingJWTSecret = errors.New("config: JWT_SECRET no está definido")

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	Backend BackendConfig
	DB      DBConfig
	JWT     JWTConfig
	Redis   RedisConfig
	Cache   CacheConfig
	S3      S3Config
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
}

// HTTPConfig configuración del servidor HTTP del BFF.
type HTTPConfig struct {
	Host        string
	Port        int
	CORSOrigins string // lista separada por comas; vacío = mismo origen
	SwaggerPath string
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// BackendConfig apunta a la API REST de la agencia (colaborador externo).
type BackendConfig struct {
	URL     string        // obligatorio
	Version string        // segmento opcional, ej. "v1"
	Timeout time.Duration // timeout por llamada
}

// BaseURL normaliza URL + versión: sin "/" final ni "/" duplicados.
func (c BackendConfig) BaseURL() string {
	base := strings.TrimSuffix(c.URL, "/")
	version := strings.TrimPrefix(c.Version, "/")
	if version == "" {
		return base
	}
	return base + "/" + version
}

// DBConfig configuración de PostgreSQL (operadores y auditoría de transiciones).
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

// JWTConfig configuración de JWT de sesión.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// RedisConfig conexión opcional a Redis. Vacío = stores en memoria.
type RedisConfig struct {
	URL string // redis://:password@host:6379/0
}

// CacheConfig parámetros del cache de consultas.
type CacheConfig struct {
	TTL time.Duration
}

// S3Config archivo opcional de PDFs exportados. Bucket vacío = deshabilitado.
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // para R2/MinIO; vacío = AWS
	AccessKey string
	SecretKey string
}

// Enabled indica si el archivo en S3 está configurado.
func (c S3Config) Enabled() bool {
	return c.Bucket != ""
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: BACKEND_URL, DB_HOST, JWT_SECRET, etc.
func Load() (*Config, error) {
	v := newViper()
	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "ptc-backoffice"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host:        getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:        getInt(v, "HTTP_PORT", 8080),
			CORSOrigins: getString(v, "HTTP_CORS_ORIGINS", ""),
			SwaggerPath: getString(v, "SWAGGER_FILE", "./docs/swagger.json"),
		},
		Backend: BackendConfig{
			URL:     getString(v, "BACKEND_URL", ""),
			Version: getString(v, "BACKEND_VERSION", ""),
			Timeout: getDuration(v, "BACKEND_TIMEOUT", 15*time.Second),
		},
		DB: dbConfig(v),
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 480),
			Issuer:     getString(v, "JWT_ISSUER", "ptc-backoffice"),
		},
		Redis: RedisConfig{
			URL: getString(v, "REDIS_URL", ""),
		},
		Cache: CacheConfig{
			TTL: getDuration(v, "QUERY_CACHE_TTL", 60*time.Second),
		},
		S3: S3Config{
			Bucket:    getString(v, "S3_BUCKET", ""),
			Region:    getString(v, "S3_REGION", "us-east-1"),
			Endpoint:  getString(v, "S3_ENDPOINT", ""),
			AccessKey: getString(v, "S3_ACCESS_KEY", ""),
			SecretKey: getString(v, "S3_SECRET_KEY", ""),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDB lee solo la sección de PostgreSQL; la usan las herramientas de cmd/ que no hablan con el backend.
func LoadDB() DBConfig {
	return dbConfig(newViper())
}

func newViper() *viper.Viper {
	// .env al entorno del proceso; se ignora si no existe
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	return v
}

func dbConfig(v *viper.Viper) DBConfig {
	return DBConfig{
		DatabaseURL: getString(v, "DATABASE_URL", ""),
		Host:        getString(v, "DB_HOST", "localhost"),
		Port:        getInt(v, "DB_PORT", 5432),
		User:        getString(v, "DB_USER", "postgres"),
		Password:    getString(v, "DB_PASSWORD", ""),
		DBName:      getString(v, "DB_NAME", "ptc_backoffice"),
		SSLMode:     getString(v, "DB_SSLMODE", "disable"),
	}
}

// Validate comprueba las claves obligatorias.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Backend.URL) == "" {
		return ErrMissingBackendURL
	}
	if _, err := url.ParseRequestURI(c.Backend.URL); err != nil {
		return fmt.Errorf("config: BACKEND_URL inválido: %w", err)
	}
	if c.JWT.Secret == "" {
		return ErrMissingJWTSecret
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

// getDuration acepta "30s"/"2m" o un número entero de segundos.
func getDuration(v *viper.Viper, key string, def time.Duration) time.Duration {
	if !v.IsSet(key) {
		return def
	}
	raw := strings.TrimSpace(v.GetString(key))
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return time.Duration(n) * time.Second
	}
	return def
}
