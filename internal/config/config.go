package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/season-leaders/internal/platform/logging"
)

const (
	defaultAllowedCountries    = "England,Germany,Italy,Spain,USA,Austria"
	defaultAllowedCompetitions = "Premier League,Bundesliga,Serie A,LaLiga,UEFA Champions League,MLS"
)

// Config stores runtime configuration for the CLI.
type Config struct {
	AppEnv         string `validate:"oneof=dev stage prod"`
	ServiceName    string `validate:"required"`
	ServiceVersion string `validate:"required"`
	LogLevel       logging.Level

	SportradarBaseURL               string        `validate:"required,url"`
	SportradarAPIKey                string        `validate:"required"`
	SportradarAccessLevel           string        `validate:"required"`
	SportradarVersion               string        `validate:"required"`
	SportradarLanguageCode          string        `validate:"required"`
	SportradarFormat                string        `validate:"oneof=json"`
	SportradarTimeout               time.Duration `validate:"gt=0"`
	SportradarMaxRetries            int           `validate:"gte=0"`
	SportradarRateLimitRPS          float64       `validate:"gt=0"`
	SportradarRateLimitBurst        int           `validate:"gt=0"`
	SportradarCircuitEnabled        bool
	SportradarCircuitFailureCount   int           `validate:"gte=1"`
	SportradarCircuitOpenTimeout    time.Duration `validate:"gt=0"`
	SportradarCircuitHalfOpenMaxReq int           `validate:"gte=1"`

	AllowedCountries    []string
	AllowedCompetitions []string
	DisplayLimit        int `validate:"gt=0"`
	PromptPageSize      int `validate:"gt=0"`

	UptraceEnabled bool
	UptraceDSN     string `validate:"required_if=UptraceEnabled true"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	timeout, err := time.ParseDuration(getEnv("SPORTRADAR_TIMEOUT", "20s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTRADAR_TIMEOUT: %w", err)
	}
	maxRetries, err := getEnvAsInt("SPORTRADAR_MAX_RETRIES", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTRADAR_MAX_RETRIES: %w", err)
	}
	rateLimitRPS, err := strconv.ParseFloat(strings.TrimSpace(getEnv("SPORTRADAR_RATE_LIMIT_RPS", "1")), 64)
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTRADAR_RATE_LIMIT_RPS: %w", err)
	}
	rateLimitBurst, err := getEnvAsInt("SPORTRADAR_RATE_LIMIT_BURST", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTRADAR_RATE_LIMIT_BURST: %w", err)
	}

	circuitEnabled, err := strconv.ParseBool(getEnv("SPORTRADAR_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTRADAR_CIRCUIT_ENABLED: %w", err)
	}
	circuitFailureCount, err := getEnvAsInt("SPORTRADAR_CIRCUIT_FAILURE_COUNT", 5)
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTRADAR_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	circuitOpenTimeout, err := time.ParseDuration(getEnv("SPORTRADAR_CIRCUIT_OPEN_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTRADAR_CIRCUIT_OPEN_TIMEOUT: %w", err)
	}
	circuitHalfOpenMaxReq, err := getEnvAsInt("SPORTRADAR_CIRCUIT_HALF_OPEN_MAX_REQ", 2)
	if err != nil {
		return Config{}, fmt.Errorf("parse SPORTRADAR_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}

	displayLimit, err := getEnvAsInt("DISPLAY_LIMIT", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse DISPLAY_LIMIT: %w", err)
	}
	promptPageSize, err := getEnvAsInt("PROMPT_PAGE_SIZE", 15)
	if err != nil {
		return Config{}, fmt.Errorf("parse PROMPT_PAGE_SIZE: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}

	cfg := Config{
		AppEnv:                          appEnv,
		ServiceName:                     getEnv("APP_SERVICE_NAME", "season-leaders"),
		ServiceVersion:                  getEnv("APP_SERVICE_VERSION", "dev"),
		LogLevel:                        parseLogLevel(getEnv("APP_LOG_LEVEL", "warn")),
		SportradarBaseURL:               strings.TrimRight(strings.TrimSpace(getEnv("SPORTRADAR_API_BASE_URL", "https://api.sportradar.com")), "/"),
		SportradarAPIKey:                strings.TrimSpace(getEnv("SPORTRADAR_API_KEY", "")),
		SportradarAccessLevel:           strings.TrimSpace(getEnv("SPORTRADAR_API_ACCESS_LEVEL", "trial")),
		SportradarVersion:               strings.TrimSpace(getEnv("SPORTRADAR_API_VERSION", "v4")),
		SportradarLanguageCode:          strings.TrimSpace(getEnv("SPORTRADAR_API_LANGUAGE_CODE", "en")),
		SportradarFormat:                strings.ToLower(strings.TrimSpace(getEnv("SPORTRADAR_API_FORMAT", "json"))),
		SportradarTimeout:               timeout,
		SportradarMaxRetries:            maxRetries,
		SportradarRateLimitRPS:          rateLimitRPS,
		SportradarRateLimitBurst:        rateLimitBurst,
		SportradarCircuitEnabled:        circuitEnabled,
		SportradarCircuitFailureCount:   circuitFailureCount,
		SportradarCircuitOpenTimeout:    circuitOpenTimeout,
		SportradarCircuitHalfOpenMaxReq: circuitHalfOpenMaxReq,
		AllowedCountries:                splitCSV(getEnv("ALLOWED_COUNTRIES", defaultAllowedCountries)),
		AllowedCompetitions:             splitCSV(getEnv("ALLOWED_COMPETITIONS", defaultAllowedCompetitions)),
		DisplayLimit:                    displayLimit,
		PromptPageSize:                  promptPageSize,
		UptraceEnabled:                  uptraceEnabled,
		UptraceDSN:                      strings.TrimSpace(getEnv("UPTRACE_DSN", "")),
	}

	if err := validate.Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", describeValidation(err))
	}

	return cfg, nil
}

// envNames maps struct fields to the variable that sets them so validation
// failures point at something the user can change.
var envNames = map[string]string{
	"AppEnv":                          "APP_ENV",
	"ServiceName":                     "APP_SERVICE_NAME",
	"ServiceVersion":                  "APP_SERVICE_VERSION",
	"SportradarBaseURL":               "SPORTRADAR_API_BASE_URL",
	"SportradarAPIKey":                "SPORTRADAR_API_KEY",
	"SportradarAccessLevel":           "SPORTRADAR_API_ACCESS_LEVEL",
	"SportradarVersion":               "SPORTRADAR_API_VERSION",
	"SportradarLanguageCode":          "SPORTRADAR_API_LANGUAGE_CODE",
	"SportradarFormat":                "SPORTRADAR_API_FORMAT",
	"SportradarTimeout":               "SPORTRADAR_TIMEOUT",
	"SportradarMaxRetries":            "SPORTRADAR_MAX_RETRIES",
	"SportradarRateLimitRPS":          "SPORTRADAR_RATE_LIMIT_RPS",
	"SportradarRateLimitBurst":        "SPORTRADAR_RATE_LIMIT_BURST",
	"SportradarCircuitFailureCount":   "SPORTRADAR_CIRCUIT_FAILURE_COUNT",
	"SportradarCircuitOpenTimeout":    "SPORTRADAR_CIRCUIT_OPEN_TIMEOUT",
	"SportradarCircuitHalfOpenMaxReq": "SPORTRADAR_CIRCUIT_HALF_OPEN_MAX_REQ",
	"DisplayLimit":                    "DISPLAY_LIMIT",
	"PromptPageSize":                  "PROMPT_PAGE_SIZE",
	"UptraceDSN":                      "UPTRACE_DSN",
}

func describeValidation(err error) error {
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrs) == 0 {
		return err
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		name := envNames[fe.Field()]
		if name == "" {
			name = fe.Field()
		}
		if fe.Param() != "" {
			parts = append(parts, fmt.Sprintf("%s failed %s=%s", name, fe.Tag(), fe.Param()))
			continue
		}
		parts = append(parts, fmt.Sprintf("%s failed %s", name, fe.Tag()))
	}
	return fmt.Errorf("%s: %w", strings.Join(parts, "; "), err)
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "info":
		return logging.LevelInfo
	case "error":
		return logging.LevelError
	default:
		return logging.LevelWarn
	}
}

// ParseLogLevel exposes the APP_LOG_LEVEL parsing for the --log-level flag.
func ParseLogLevel(v string) logging.Level {
	return parseLogLevel(v)
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

// splitCSV trims each entry once. Matching against the result stays exact
// and case-sensitive.
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
