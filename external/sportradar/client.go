package sportradar

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"

	"github.com/riskibarqy/season-leaders/internal/domain/competition"
	"github.com/riskibarqy/season-leaders/internal/domain/player"
	"github.com/riskibarqy/season-leaders/internal/domain/season"
	"github.com/riskibarqy/season-leaders/internal/domain/sport"
	"github.com/riskibarqy/season-leaders/internal/domain/sportevent"
	"github.com/riskibarqy/season-leaders/internal/platform/logging"
	"github.com/riskibarqy/season-leaders/internal/platform/resilience"
	"github.com/riskibarqy/season-leaders/internal/usecase"
)

const (
	defaultBaseURL      = "https://api.sportradar.com"
	defaultAccessLevel  = "trial"
	defaultVersion      = "v4"
	defaultLanguageCode = "en"
	defaultFormat       = "json"
	maxResponseBytes    = 6 << 20
)

var apiKeyParamRegex = regexp.MustCompile(`api_key=[^&\s"']+`)
var errSportradarTransient = crerr.New("sportradar transient failure")

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	APIKey         string
	AccessLevel    string
	Version        string
	LanguageCode   string
	Format         string
	Timeout        time.Duration
	MaxRetries     int
	RateLimitRPS   float64
	RateLimitBurst int
	Backoff        resilience.BackoffConfig
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads competitions, seasons, schedules and competitor statistics
// from the Sportradar API. It is safe for concurrent use.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	apiKey       string
	accessLevel  string
	version      string
	languageCode string
	format       string
	maxRetries   int
	limiter      *rate.Limiter
	backoff      resilience.Backoff
	logger       *logging.Logger
	breaker      *resilience.CircuitBreaker
	flight       resilience.Flight[[]byte]
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	limit := rate.Inf
	if cfg.RateLimitRPS > 0 {
		limit = rate.Limit(cfg.RateLimitRPS)
	}

	return &Client{
		httpClient:   httpClient,
		baseURL:      defaultString(strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"), defaultBaseURL),
		apiKey:       strings.TrimSpace(cfg.APIKey),
		accessLevel:  defaultString(cfg.AccessLevel, defaultAccessLevel),
		version:      defaultString(cfg.Version, defaultVersion),
		languageCode: defaultString(cfg.LanguageCode, defaultLanguageCode),
		format:       defaultString(cfg.Format, defaultFormat),
		maxRetries:   max(cfg.MaxRetries, 0),
		limiter:      rate.NewLimiter(limit, max(cfg.RateLimitBurst, 1)),
		backoff:      resilience.NewBackoff(cfg.Backoff),
		logger:       logger,
		breaker:      resilience.NewCircuitBreaker(cfg.CircuitBreaker),
	}
}

// BuildURL returns the address of endpoint for s, e.g.
// https://api.sportradar.com/soccer/trial/v4/en/competitions.json?api_key=KEY.
func (c *Client) BuildURL(s sport.Sport, endpoint string) string {
	segments := []string{c.baseURL, s.CanonicalName(), c.accessLevel, c.version, c.languageCode, strings.Trim(endpoint, "/")}
	return strings.Join(segments, "/") + "." + c.format + "?api_key=" + url.QueryEscape(c.apiKey)
}

func (c *Client) FetchCompetitions(ctx context.Context, s sport.Sport) ([]competition.Competition, error) {
	var envelope competitionsEnvelope
	if err := c.doJSON(ctx, s, "competitions", &envelope); err != nil {
		return nil, err
	}
	if envelope.Competitions == nil {
		return nil, missingKeyError("competitions", "competitions")
	}

	out := make([]competition.Competition, 0, len(envelope.Competitions))
	for _, item := range envelope.Competitions {
		if err := item.Validate(); err != nil {
			c.logger.DebugContext(ctx, "skipping invalid competition", "id", item.ID, "error", err)
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (c *Client) FetchSeasons(ctx context.Context, s sport.Sport, competitionID string) ([]season.Season, error) {
	competitionID = strings.TrimSpace(competitionID)
	if competitionID == "" {
		return nil, crerr.Mark(crerr.New("competition id is required"), usecase.ErrInvalidInput)
	}

	endpoint := "competitions/" + url.PathEscape(competitionID) + "/seasons"
	var envelope seasonsEnvelope
	if err := c.doJSON(ctx, s, endpoint, &envelope); err != nil {
		return nil, err
	}
	if envelope.Seasons == nil {
		return nil, missingKeyError(endpoint, "seasons")
	}

	out := make([]season.Season, 0, len(envelope.Seasons))
	for _, item := range envelope.Seasons {
		if err := item.Validate(); err != nil {
			c.logger.DebugContext(ctx, "skipping invalid season", "competition_id", competitionID, "error", err)
			continue
		}
		out = append(out, item)
	}
	return out, nil
}

func (c *Client) FetchSchedules(ctx context.Context, s sport.Sport, seasonID string) ([]sportevent.SportEvent, error) {
	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return nil, crerr.Mark(crerr.New("season id is required"), usecase.ErrInvalidInput)
	}

	endpoint := "seasons/" + url.PathEscape(seasonID) + "/schedules"
	var envelope schedulesEnvelope
	if err := c.doJSON(ctx, s, endpoint, &envelope); err != nil {
		return nil, err
	}
	if envelope.Schedules == nil {
		return nil, missingKeyError(endpoint, "schedules")
	}

	out := make([]sportevent.SportEvent, 0, len(envelope.Schedules))
	for _, item := range envelope.Schedules {
		event := item.SportEvent.toDomain()
		if event.ID == "" {
			continue
		}
		out = append(out, event)
	}
	return out, nil
}

func (c *Client) FetchCompetitorStatistics(ctx context.Context, s sport.Sport, seasonID, competitorID string) (player.CompetitorStatistics, error) {
	seasonID = strings.TrimSpace(seasonID)
	competitorID = strings.TrimSpace(competitorID)
	if seasonID == "" || competitorID == "" {
		return player.CompetitorStatistics{}, crerr.Mark(crerr.New("season id and competitor id are required"), usecase.ErrInvalidInput)
	}

	endpoint := "seasons/" + url.PathEscape(seasonID) + "/competitors/" + url.PathEscape(competitorID) + "/statistics"
	var envelope competitorStatisticsEnvelope
	if err := c.doJSON(ctx, s, endpoint, &envelope); err != nil {
		return player.CompetitorStatistics{}, err
	}
	if envelope.Competitor == nil {
		return player.CompetitorStatistics{}, missingKeyError(endpoint, "competitor")
	}

	return envelope.Competitor.toDomain(), nil
}

func (c *Client) doJSON(ctx context.Context, s sport.Sport, endpoint string, target any) error {
	if err := s.Validate(); err != nil {
		return crerr.Mark(crerr.Wrap(err, "build provider url"), usecase.ErrInvalidInput)
	}

	fullURL := c.BuildURL(s, endpoint)
	key := s.CanonicalName() + "/" + endpoint
	raw, err, _ := c.flight.Do(key, func() ([]byte, error) {
		var body []byte
		execErr := c.breaker.Execute(func() error {
			var reqErr error
			body, reqErr = c.executeRequest(ctx, fullURL)
			return reqErr
		}, isSportradarCircuitFailure)
		return body, execErr
	})
	if err != nil {
		if stderrors.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "sportradar circuit breaker rejected request", "endpoint", endpoint, "state", string(c.breaker.State()))
			return fmt.Errorf("%w: sport data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
		return err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrapf(err, "decode %s payload", endpoint)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, crerr.Wrap(err, "wait for rate limit")
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %s", sanitizeSensitiveText(err.Error(), c.apiKey))
		}
		req.Header.Set("accept", "application/json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			lastErr = fmt.Errorf("%w: send request: %s", errSportradarTransient, sanitizeSensitiveText(err.Error(), c.apiKey))
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = fmt.Errorf("%w: read response body: %v", errSportradarTransient, readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case isRetryableStatus(resp.StatusCode):
				lastErr = fmt.Errorf("%w: provider status=%d body=%s", errSportradarTransient, resp.StatusCode, abbreviateBody(raw, c.apiKey))
			default:
				return nil, fmt.Errorf("provider status=%d body=%s", resp.StatusCode, abbreviateBody(raw, c.apiKey))
			}
		}

		if attempt == c.maxRetries {
			break
		}
		c.logger.DebugContext(ctx, "retrying sportradar request", "url", redactAPIURL(fullURL), "attempt", attempt+1, "error", lastErr)
		if err := c.backoff.Wait(ctx, attempt); err != nil {
			return nil, err
		}
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("provider request failed")
	}
	c.logger.WarnContext(ctx, "sportradar request failed", "url", redactAPIURL(fullURL), "error", lastErr)
	return nil, lastErr
}

// IsTransient reports whether err came from a failure worth retrying later,
// such as a network error, a 429 or a 5xx.
func IsTransient(err error) bool {
	return err != nil && stderrors.Is(err, errSportradarTransient)
}

func isSportradarCircuitFailure(err error) bool {
	return IsTransient(err)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func missingKeyError(endpoint, key string) error {
	return fmt.Errorf("decode %s payload: response has no %q field", endpoint, key)
}

func sanitizeSensitiveText(value, apiKey string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	if apiKey != "" {
		value = strings.ReplaceAll(value, apiKey, "REDACTED")
	}
	value = apiKeyParamRegex.ReplaceAllString(value, "api_key=REDACTED")
	return value
}

func redactAPIURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return sanitizeSensitiveText(rawURL, "")
	}
	query := parsed.Query()
	if query.Has("api_key") {
		query.Set("api_key", "REDACTED")
		parsed.RawQuery = query.Encode()
	}
	return parsed.String()
}

func abbreviateBody(body []byte, apiKey string) string {
	text := sanitizeSensitiveText(string(body), apiKey)
	if len(text) <= 240 {
		return text
	}
	return text[:240] + "..."
}

func defaultString(value, fallback string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return fallback
	}
	return value
}
