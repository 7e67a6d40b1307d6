package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pickemlab/daily-pickem/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                  string
	ServiceName             string
	ServiceVersion          string
	HTTPAddr                string
	ReadTimeout             time.Duration
	WriteTimeout            time.Duration
	CORSAllowedOrigins      []string
	DBURL                   string
	DBDisablePreparedBinary bool
	ContestTimezone         string
	ContestBoundaryHour     int
	SubmissionLockBuffer    time.Duration
	ContestResetOffset      time.Duration
	EntryFeeCents           int64
	FinalizePollInterval    time.Duration
	FinalizeMaxWorkers      int
	InternalJobToken        string
	NHLBaseURL              string
	NHLTimeout              time.Duration
	NHLMaxRetries           int
	NHLCircuitEnabled       bool
	NHLCircuitFailureCount  int
	NHLCircuitOpenTimeout   time.Duration
	NHLCircuitHalfOpenMax   int
	PprofEnabled            bool
	PprofAddr               string
	PyroscopeEnabled        bool
	PyroscopeServerAddress  string
	PyroscopeAppName        string
	PyroscopeAuthToken      string
	PyroscopeUploadRate     time.Duration
	UptraceEnabled          bool
	UptraceDSN              string
	LogLevel                logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	contestBoundaryHour, err := getEnvAsInt("CONTEST_BOUNDARY_HOUR", 7)
	if err != nil {
		return Config{}, fmt.Errorf("parse CONTEST_BOUNDARY_HOUR: %w", err)
	}
	if contestBoundaryHour < 1 || contestBoundaryHour > 23 {
		return Config{}, fmt.Errorf("CONTEST_BOUNDARY_HOUR must be between 1 and 23")
	}

	submissionLockBuffer, err := time.ParseDuration(getEnv("SUBMISSION_LOCK_BUFFER", "30m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SUBMISSION_LOCK_BUFFER: %w", err)
	}
	if submissionLockBuffer <= 0 {
		return Config{}, fmt.Errorf("SUBMISSION_LOCK_BUFFER must be > 0")
	}

	contestResetOffset, err := time.ParseDuration(getEnv("CONTEST_RESET_OFFSET", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse CONTEST_RESET_OFFSET: %w", err)
	}
	if contestResetOffset < 0 {
		return Config{}, fmt.Errorf("CONTEST_RESET_OFFSET must be >= 0")
	}

	entryFeeCents, err := getEnvAsInt("ENTRY_FEE_CENTS", 500)
	if err != nil {
		return Config{}, fmt.Errorf("parse ENTRY_FEE_CENTS: %w", err)
	}
	if entryFeeCents < 0 {
		return Config{}, fmt.Errorf("ENTRY_FEE_CENTS must be >= 0")
	}

	finalizePollInterval, err := time.ParseDuration(getEnv("FINALIZE_POLL_INTERVAL", "3m"))
	if err != nil {
		return Config{}, fmt.Errorf("parse FINALIZE_POLL_INTERVAL: %w", err)
	}
	if finalizePollInterval <= 0 {
		return Config{}, fmt.Errorf("FINALIZE_POLL_INTERVAL must be > 0")
	}

	finalizeMaxWorkers, err := getEnvAsInt("FINALIZE_MAX_WORKERS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse FINALIZE_MAX_WORKERS: %w", err)
	}
	if finalizeMaxWorkers < 1 {
		return Config{}, fmt.Errorf("FINALIZE_MAX_WORKERS must be >= 1")
	}

	nhlTimeout, err := time.ParseDuration(getEnv("NHL_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NHL_TIMEOUT: %w", err)
	}
	if nhlTimeout <= 0 {
		return Config{}, fmt.Errorf("NHL_TIMEOUT must be > 0")
	}
	nhlMaxRetries, err := getEnvAsInt("NHL_MAX_RETRIES", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse NHL_MAX_RETRIES: %w", err)
	}
	if nhlMaxRetries < 0 {
		return Config{}, fmt.Errorf("NHL_MAX_RETRIES must be >= 0")
	}
	nhlCircuitEnabled, err := strconv.ParseBool(getEnv("NHL_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NHL_CIRCUIT_ENABLED: %w", err)
	}
	nhlCircuitFailureCount, err := getEnvAsInt("NHL_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse NHL_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if nhlCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("NHL_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	nhlCircuitOpenTimeout, err := time.ParseDuration(getEnv("NHL_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NHL_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	if nhlCircuitOpenTimeout <= 0 {
		return Config{}, fmt.Errorf("NHL_CIRCUIT_OPEN_TIMEOUT must be > 0")
	}
	nhlCircuitHalfOpenMax, err := getEnvAsInt("NHL_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse NHL_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if nhlCircuitHalfOpenMax < 1 {
		return Config{}, fmt.Errorf("NHL_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
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

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	dbDisablePreparedBinary, err := strconv.ParseBool(getEnv("DB_DISABLE_PREPARED_BINARY_RESULT", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_DISABLE_PREPARED_BINARY_RESULT: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	cfg := Config{
		AppEnv:                  appEnv,
		ServiceName:             getEnv("APP_SERVICE_NAME", "daily-pickem-api"),
		ServiceVersion:          getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                getEnv("APP_HTTP_ADDR", ":8080"),
		ReadTimeout:             readTimeout,
		WriteTimeout:            writeTimeout,
		CORSAllowedOrigins:      splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		DBURL:                   strings.TrimSpace(getEnv("DB_URL", "")),
		DBDisablePreparedBinary: dbDisablePreparedBinary,
		ContestTimezone:         strings.TrimSpace(getEnv("CONTEST_TIMEZONE", "America/New_York")),
		ContestBoundaryHour:     contestBoundaryHour,
		SubmissionLockBuffer:    submissionLockBuffer,
		ContestResetOffset:      contestResetOffset,
		EntryFeeCents:           int64(entryFeeCents),
		FinalizePollInterval:    finalizePollInterval,
		FinalizeMaxWorkers:      finalizeMaxWorkers,
		InternalJobToken:        strings.TrimSpace(getEnv("INTERNAL_JOB_TOKEN", "")),
		NHLBaseURL:              strings.TrimSpace(getEnv("NHL_BASE_URL", "https://api-web.nhle.com/v1")),
		NHLTimeout:              nhlTimeout,
		NHLMaxRetries:           nhlMaxRetries,
		NHLCircuitEnabled:       nhlCircuitEnabled,
		NHLCircuitFailureCount:  nhlCircuitFailureCount,
		NHLCircuitOpenTimeout:   nhlCircuitOpenTimeout,
		NHLCircuitHalfOpenMax:   nhlCircuitHalfOpenMax,
		PprofEnabled:            pprofEnabled,
		PprofAddr:               pprofAddr,
		PyroscopeEnabled:        pyroscopeEnabled,
		PyroscopeServerAddress:  pyroscopeServerAddress,
		PyroscopeAuthToken:      strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeUploadRate:     pyroscopeUploadRate,
		UptraceEnabled:          uptraceEnabled,
		UptraceDSN:              uptraceDSN,
		LogLevel:                parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}
	cfg.PyroscopeAppName = strings.TrimSpace(getEnv("PYROSCOPE_APP_NAME", cfg.ServiceName))
	if cfg.PyroscopeEnabled && cfg.PyroscopeAppName == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_APP_NAME cannot be empty when PYROSCOPE_ENABLED=true")
	}
	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if cfg.ContestTimezone == "" {
		return Config{}, fmt.Errorf("CONTEST_TIMEZONE cannot be empty")
	}
	if _, err := time.LoadLocation(cfg.ContestTimezone); err != nil {
		return Config{}, fmt.Errorf("invalid CONTEST_TIMEZONE %q: %w", cfg.ContestTimezone, err)
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
