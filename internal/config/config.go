package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ilhamrdh/scorebase/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                        string
	ServiceName                   string
	ServiceVersion                string
	HTTPAddr                      string
	ReadTimeout                   time.Duration
	WriteTimeout                  time.Duration
	LogLevel                      logging.Level
	CORSAllowedOrigins            []string
	MongoURI                      string
	MongoDatabase                 string
	ResponseCacheTTL              time.Duration
	PriorityCacheTTL              time.Duration
	PprofEnabled                  bool
	PprofAddr                     string
	UptraceEnabled                bool
	UptraceDSN                    string
	PyroscopeEnabled              bool
	PyroscopeServerAddress        string
	PyroscopeAppName              string
	PyroscopeAuthToken            string
	PyroscopeBasicAuthUser        string
	PyroscopeBasicAuthPassword    string
	PyroscopeUploadRate           time.Duration
	ProviderEnabled               bool
	ProviderBaseURL               string
	ProviderToken                 string
	ProviderTimeout               time.Duration
	ProviderMaxRetries            int
	ProviderRatePerSecond         float64
	ProviderCircuitEnabled        bool
	ProviderCircuitFailureCount   int
	ProviderCircuitOpenTimeout    time.Duration
	ProviderCircuitHalfOpenMaxReq int
	InternalJobToken              string
	SyncWorkers                   int
	SyncWindowBack                time.Duration
	SyncWindowAhead               time.Duration
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	responseCacheTTL, err := time.ParseDuration(getEnv("RESPONSE_CACHE_TTL", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse RESPONSE_CACHE_TTL: %w", err)
	}
	if responseCacheTTL <= 0 {
		return Config{}, fmt.Errorf("RESPONSE_CACHE_TTL must be > 0")
	}
	priorityCacheTTL, err := time.ParseDuration(getEnv("PRIORITY_CACHE_TTL", "5m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PRIORITY_CACHE_TTL: %w", err)
	}
	if priorityCacheTTL <= 0 {
		return Config{}, fmt.Errorf("PRIORITY_CACHE_TTL must be > 0")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := time.ParseDuration(getEnv("PYROSCOPE_UPLOAD_RATE", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_UPLOAD_RATE: %w", err)
	}
	if pyroscopeUploadRate <= 0 {
		return Config{}, fmt.Errorf("PYROSCOPE_UPLOAD_RATE must be > 0")
	}

	providerEnabled, err := strconv.ParseBool(getEnv("SPORTSDATA_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDATA_ENABLED: %w", err)
	}
	providerToken := strings.TrimSpace(getEnv("SPORTSDATA_TOKEN", ""))
	if providerEnabled && providerToken == "" {
		return Config{}, fmt.Errorf("SPORTSDATA_TOKEN is required when SPORTSDATA_ENABLED=true")
	}
	providerTimeout, err := time.ParseDuration(getEnv("SPORTSDATA_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDATA_TIMEOUT: %w", err)
	}
	if providerTimeout <= 0 {
		return Config{}, fmt.Errorf("SPORTSDATA_TIMEOUT must be > 0")
	}
	providerMaxRetries, err := getEnvAsInt("SPORTSDATA_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDATA_MAX_RETRIES: %w", err)
	}
	if providerMaxRetries < 0 {
		return Config{}, fmt.Errorf("SPORTSDATA_MAX_RETRIES must be >= 0")
	}
	providerRate, err := getEnvAsFloat("SPORTSDATA_RATE_PER_SECOND", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDATA_RATE_PER_SECOND: %w", err)
	}
	if providerRate <= 0 {
		return Config{}, fmt.Errorf("SPORTSDATA_RATE_PER_SECOND must be > 0")
	}
	providerCircuitEnabled, err := strconv.ParseBool(getEnv("SPORTSDATA_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDATA_CIRCUIT_ENABLED: %w", err)
	}
	providerCircuitFailureCount, err := getEnvAsInt("SPORTSDATA_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDATA_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if providerCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("SPORTSDATA_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	providerCircuitOpenTimeout, err := time.ParseDuration(getEnv("SPORTSDATA_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDATA_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if providerCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("SPORTSDATA_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	providerCircuitHalfOpenMaxReq, err := getEnvAsInt("SPORTSDATA_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTSDATA_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if providerCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("SPORTSDATA_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	syncWorkers, err := getEnvAsInt("SYNC_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse SYNC_WORKERS: %w", err)
	}
	if syncWorkers < 1 {
		return Config{}, fmt.Errorf("SYNC_WORKERS must be >= 1")
	}
	syncWindowBack, err := time.ParseDuration(getEnv("SYNC_WINDOW_BACK", "168h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SYNC_WINDOW_BACK: %w", err)
	}
	if syncWindowBack <= 0 {
		return Config{}, fmt.Errorf("SYNC_WINDOW_BACK must be > 0")
	}
	syncWindowAhead, err := time.ParseDuration(getEnv("SYNC_WINDOW_AHEAD", "336h"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SYNC_WINDOW_AHEAD: %w", err)
	}
	if syncWindowAhead <= 0 {
		return Config{}, fmt.Errorf("SYNC_WINDOW_AHEAD must be > 0")
	}

	cfg := Config{
		AppEnv:                        appEnv,
		ServiceName:                   getEnv("APP_SERVICE_NAME", "scorebase-api"),
		ServiceVersion:                getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                      getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:                   readTimeout,
		WriteTimeout:                  writeTimeout,
		LogLevel:                      parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		CORSAllowedOrigins:            splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		MongoURI:                      getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:                 getEnv("MONGO_DATABASE", "scorebase"),
		ResponseCacheTTL:              responseCacheTTL,
		PriorityCacheTTL:              priorityCacheTTL,
		PprofEnabled:                  pprofEnabled,
		PprofAddr:                     pprofAddr,
		UptraceEnabled:                uptraceEnabled,
		UptraceDSN:                    uptraceDSN,
		PyroscopeEnabled:              pyroscopeEnabled,
		PyroscopeServerAddress:        pyroscopeServerAddress,
		PyroscopeAuthToken:            strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:        strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:    strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:           pyroscopeUploadRate,
		ProviderEnabled:               providerEnabled,
		ProviderBaseURL:               strings.TrimSpace(getEnv("SPORTSDATA_BASE_URL", "https://api.sportmonks.com/v3/football")),
		ProviderToken:                 providerToken,
		ProviderTimeout:               providerTimeout,
		ProviderMaxRetries:            providerMaxRetries,
		ProviderRatePerSecond:         providerRate,
		ProviderCircuitEnabled:        providerCircuitEnabled,
		ProviderCircuitFailureCount:   providerCircuitFailureCount,
		ProviderCircuitOpenTimeout:    providerCircuitOpenTimeout,
		ProviderCircuitHalfOpenMaxReq: providerCircuitHalfOpenMaxReq,
		InternalJobToken:              strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),
		SyncWorkers:                   syncWorkers,
		SyncWindowBack:                syncWindowBack,
		SyncWindowAhead:               syncWindowAhead,
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func getEnvAsFloat(key string, fallback float64) (float64, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
