package app

import (
	"io"

	"github.com/riskibarqy/season-leaders/external/sportradar"
	"github.com/riskibarqy/season-leaders/internal/config"
	"github.com/riskibarqy/season-leaders/internal/interfaces/terminal"
	idgen "github.com/riskibarqy/season-leaders/internal/platform/id"
	"github.com/riskibarqy/season-leaders/internal/platform/logging"
	"github.com/riskibarqy/season-leaders/internal/platform/resilience"
	"github.com/riskibarqy/season-leaders/internal/usecase"
)

// Streams overrides the terminal streams. Nil fields use the process stdio.
type Streams struct {
	Stdin  io.ReadCloser
	Stdout io.WriteCloser
}

// NewLogger writes to w: console lines in dev, JSON elsewhere.
func NewLogger(cfg config.Config, w io.Writer) *logging.Logger {
	if cfg.AppEnv == config.EnvDev {
		return logging.NewConsole(cfg.LogLevel, w)
	}
	return logging.NewJSON(cfg.LogLevel, w)
}

func NewSportradarClient(cfg config.Config, logger *logging.Logger) *sportradar.Client {
	return sportradar.NewClient(sportradar.ClientConfig{
		BaseURL:        cfg.SportradarBaseURL,
		APIKey:         cfg.SportradarAPIKey,
		AccessLevel:    cfg.SportradarAccessLevel,
		Version:        cfg.SportradarVersion,
		LanguageCode:   cfg.SportradarLanguageCode,
		Format:         cfg.SportradarFormat,
		Timeout:        cfg.SportradarTimeout,
		MaxRetries:     cfg.SportradarMaxRetries,
		RateLimitRPS:   cfg.SportradarRateLimitRPS,
		RateLimitBurst: cfg.SportradarRateLimitBurst,
		Backoff:        resilience.DefaultBackoffConfig(),
		Logger:         logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.SportradarCircuitEnabled,
			FailureThreshold: cfg.SportradarCircuitFailureCount,
			OpenTimeout:      cfg.SportradarCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.SportradarCircuitHalfOpenMaxReq,
		},
	})
}

func NewSelectionService(cfg config.Config, logger *logging.Logger, streams Streams) *usecase.SelectionService {
	var out io.Writer
	if streams.Stdout != nil {
		out = streams.Stdout
	}

	return usecase.NewSelectionService(
		NewSportradarClient(cfg, logger),
		terminal.NewPrompter(terminal.PrompterConfig{
			PageSize: cfg.PromptPageSize,
			Stdin:    streams.Stdin,
			Stdout:   streams.Stdout,
		}),
		terminal.NewRenderer(out),
		usecase.SelectionConfig{
			AllowedCompetitions: cfg.AllowedCompetitions,
			AllowedCountries:    cfg.AllowedCountries,
			DisplayLimit:        cfg.DisplayLimit,
		},
		idgen.NewUUIDGenerator(),
		logger,
	)
}
