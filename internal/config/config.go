package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/riskibarqy/gaming-league/internal/platform/logging"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv         string        `env:"APP_ENV" envDefault:"dev"`
	ServiceName    string        `env:"APP_SERVICE_NAME" envDefault:"gaming-league-api"`
	ServiceVersion string        `env:"APP_SERVICE_VERSION" envDefault:"dev"`
	HTTPAddr       string        `env:"APP_HTTP_ADDR" envDefault:":8080"`
	ReadTimeout    time.Duration `env:"APP_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout   time.Duration `env:"APP_WRITE_TIMEOUT" envDefault:"15s"`
	LogLevelName   string        `env:"APP_LOG_LEVEL" envDefault:"info"`
	LogLevel       logging.Level `env:"-"`

	StorageDriver           string `env:"STORAGE_DRIVER" envDefault:"memory"`
	DBURL                   string `env:"DB_URL"`
	DBDisablePreparedBinary bool   `env:"DB_DISABLE_PREPARED_BINARY_RESULT" envDefault:"true"`
	DBBootstrapSeed         bool   `env:"DB_BOOTSTRAP_SEED" envDefault:"false"`

	DBCircuitEnabled        bool          `env:"DB_CIRCUIT_ENABLED" envDefault:"true"`
	DBCircuitFailureCount   int           `env:"DB_CIRCUIT_FAILURE_COUNT" envDefault:"5"`
	DBCircuitOpenTimeout    time.Duration `env:"DB_CIRCUIT_OPEN_TIMEOUT" envDefault:"15s"`
	DBCircuitHalfOpenMaxReq int           `env:"DB_CIRCUIT_HALF_OPEN_MAX_REQ" envDefault:"2"`

	CacheEnabled       bool          `env:"CACHE_ENABLED" envDefault:"true"`
	CacheTTL           time.Duration `env:"CACHE_TTL" envDefault:"60s"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	SwaggerFlag        *bool         `env:"SWAGGER_ENABLED"`
	SwaggerEnabled     bool          `env:"-"`

	AdminToken                  string        `env:"ADMIN_TOKEN"`
	PlayerPhoneRegion           string        `env:"PLAYER_PHONE_REGION" envDefault:"ID"`
	StandingsRebuildWorkers     int           `env:"STANDINGS_REBUILD_WORKERS" envDefault:"4"`
	JobStandingsRebuildInterval time.Duration `env:"JOB_STANDINGS_REBUILD_INTERVAL" envDefault:"30m"`

	UptraceEnabled bool   `env:"UPTRACE_ENABLED" envDefault:"false"`
	UptraceDSN     string `env:"UPTRACE_DSN"`
	OTLPHeaders    string `env:"OTEL_EXPORTER_OTLP_HEADERS"`

	PprofEnabled bool   `env:"PPROF_ENABLED" envDefault:"false"`
	PprofAddr    string `env:"PPROF_ADDR" envDefault:":6060"`

	PyroscopeEnabled           bool          `env:"PYROSCOPE_ENABLED" envDefault:"false"`
	PyroscopeServerAddress     string        `env:"PYROSCOPE_SERVER_ADDRESS"`
	PyroscopeAppName           string        `env:"PYROSCOPE_APP_NAME"`
	PyroscopeAuthToken         string        `env:"PYROSCOPE_AUTH_TOKEN"`
	PyroscopeBasicAuthUser     string        `env:"PYROSCOPE_BASIC_AUTH_USER"`
	PyroscopeBasicAuthPassword string        `env:"PYROSCOPE_BASIC_AUTH_PASSWORD"`
	PyroscopeUploadRate        time.Duration `env:"PYROSCOPE_UPLOAD_RATE" envDefault:"15s"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	appEnv, err := parseAppEnv(cfg.AppEnv)
	if err != nil {
		return Config{}, err
	}
	cfg.AppEnv = appEnv
	cfg.LogLevel = logging.ParseLevel(cfg.LogLevelName)

	cfg.SwaggerEnabled = appEnv != EnvProd
	if cfg.SwaggerFlag != nil {
		cfg.SwaggerEnabled = *cfg.SwaggerFlag
	}

	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return Config{}, fmt.Errorf("APP_HTTP_ADDR cannot be empty")
	}
	if err := requirePositive("APP_READ_TIMEOUT", cfg.ReadTimeout); err != nil {
		return Config{}, err
	}
	if err := requirePositive("APP_WRITE_TIMEOUT", cfg.WriteTimeout); err != nil {
		return Config{}, err
	}

	cfg.StorageDriver = strings.ToLower(strings.TrimSpace(cfg.StorageDriver))
	cfg.DBURL = strings.TrimSpace(cfg.DBURL)
	switch cfg.StorageDriver {
	case StorageMemory:
	case StoragePostgres:
		if cfg.DBURL == "" {
			return Config{}, fmt.Errorf("DB_URL is required when STORAGE_DRIVER=postgres")
		}
	default:
		return Config{}, fmt.Errorf("invalid STORAGE_DRIVER %q: valid values are %s, %s", cfg.StorageDriver, StorageMemory, StoragePostgres)
	}

	if cfg.DBCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("DB_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	if err := requirePositive("DB_CIRCUIT_OPEN_TIMEOUT", cfg.DBCircuitOpenTimeout); err != nil {
		return Config{}, err
	}
	if cfg.DBCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("DB_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	if err := requirePositive("CACHE_TTL", cfg.CacheTTL); err != nil {
		return Config{}, err
	}
	cfg.CORSAllowedOrigins = compactCSV(cfg.CORSAllowedOrigins)
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	cfg.AdminToken = strings.TrimSpace(cfg.AdminToken)
	if appEnv == EnvProd && cfg.AdminToken == "" {
		return Config{}, fmt.Errorf("ADMIN_TOKEN is required when APP_ENV=%s", EnvProd)
	}
	cfg.PlayerPhoneRegion = strings.ToUpper(strings.TrimSpace(cfg.PlayerPhoneRegion))
	if cfg.StandingsRebuildWorkers < 1 {
		return Config{}, fmt.Errorf("STANDINGS_REBUILD_WORKERS must be >= 1")
	}
	if cfg.JobStandingsRebuildInterval < 0 {
		return Config{}, fmt.Errorf("JOB_STANDINGS_REBUILD_INTERVAL must be >= 0")
	}

	cfg.UptraceDSN = strings.TrimSpace(cfg.UptraceDSN)
	if cfg.UptraceDSN == "" {
		cfg.UptraceDSN = parseUptraceDSNFromOTLPHeaders(cfg.OTLPHeaders)
	}
	if cfg.UptraceEnabled && cfg.UptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	cfg.PprofAddr = strings.TrimSpace(cfg.PprofAddr)
	if cfg.PprofAddr == "" {
		cfg.PprofAddr = ":6060"
	}

	cfg.PyroscopeServerAddress = strings.TrimSpace(cfg.PyroscopeServerAddress)
	if cfg.PyroscopeEnabled && cfg.PyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	cfg.PyroscopeAppName = strings.TrimSpace(cfg.PyroscopeAppName)
	if cfg.PyroscopeAppName == "" {
		cfg.PyroscopeAppName = cfg.ServiceName
	}
	if err := requirePositive("PYROSCOPE_UPLOAD_RATE", cfg.PyroscopeUploadRate); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func requirePositive(key string, value time.Duration) error {
	if value <= 0 {
		return fmt.Errorf("%s must be > 0", key)
	}
	return nil
}

func compactCSV(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	for _, item := range strings.Split(raw, ",") {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			return strings.Trim(strings.TrimSpace(parts[1]), "\"'")
		}
	}

	return ""
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

// String renders the effective configuration without secrets.
func (c Config) String() string {
	return "env=" + c.AppEnv +
		" service=" + c.ServiceName +
		" storage=" + c.StorageDriver +
		" cache=" + strconv.FormatBool(c.CacheEnabled) +
		" swagger=" + strconv.FormatBool(c.SwaggerEnabled) +
		" standings_rebuild=" + c.JobStandingsRebuildInterval.String()
}
