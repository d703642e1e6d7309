package sportradar

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/season-leaders/internal/domain/sport"
	"github.com/riskibarqy/season-leaders/internal/domain/team"
	"github.com/riskibarqy/season-leaders/internal/platform/logging"
	"github.com/riskibarqy/season-leaders/internal/platform/resilience"
	"github.com/riskibarqy/season-leaders/internal/usecase"
)

const testAPIKey = "secret-trial-key"

func newTestClient(t *testing.T, handler http.HandlerFunc, mutate ...func(*ClientConfig)) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg := ClientConfig{
		HTTPClient: server.Client(),
		BaseURL:    server.URL,
		APIKey:     testAPIKey,
		MaxRetries: 3,
		Backoff:    resilience.BackoffConfig{Base: time.Millisecond, Multiplier: 2, Max: 4 * time.Millisecond},
		Logger:     logging.NewNop(),
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          true,
			FailureThreshold: 5,
			OpenTimeout:      time.Minute,
			HalfOpenMaxReq:   1,
		},
	}
	for _, fn := range mutate {
		fn(&cfg)
	}
	return NewClient(cfg)
}

func TestBuildURL(t *testing.T) {
	t.Parallel()

	client := NewClient(ClientConfig{BaseURL: "https://api.sportradar.com/", APIKey: "abc 123"})

	got := client.BuildURL(sport.Soccer, "seasons/sr:season:105353/schedules")
	want := "https://api.sportradar.com/soccer/trial/v4/en/seasons/sr:season:105353/schedules.json?api_key=abc+123"
	require.Equal(t, want, got)
}

func TestClient_FetchCompetitionsDecodesCategoryAsCountry(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/soccer/trial/v4/en/competitions.json", r.URL.Path)
		require.Equal(t, testAPIKey, r.URL.Query().Get("api_key"))
		_, _ = w.Write([]byte(`{"generated_at":"2024-05-01T10:00:00+00:00","competitions":[
			{"id":"sr:competition:17","name":"Premier League","gender":"men","category":{"id":"sr:category:1","name":"England","country_code":"ENG"}},
			{"id":"","name":"broken"}
		]}`))
	})

	got, err := client.FetchCompetitions(context.Background(), sport.Soccer)
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Premier League", got[0].Name)
	require.Equal(t, "England", got[0].CountryName())
}

func TestClient_FetchSeasonsDefaultsDisabledToFalse(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/soccer/trial/v4/en/competitions/sr:competition:17/seasons.json", r.URL.Path)
		_, _ = w.Write([]byte(`{"seasons":[
			{"id":"sr:season:105353","name":"Premier League 23/24","year":"23/24"},
			{"id":"sr:season:118689","name":"Premier League 24/25","disabled":true}
		]}`))
	})

	got, err := client.FetchSeasons(context.Background(), sport.Soccer, "sr:competition:17")
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.False(t, got[0].Disabled)
	require.True(t, got[1].Disabled)
}

func TestClient_FetchSchedulesExtractsCompetitors(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"schedules":[
			{"sport_event":{"id":"sr:sport_event:1","start_time":"2023-08-11T19:00:00+00:00","competitors":[
				{"id":"sr:competitor:42","name":"Arsenal FC","qualifier":"home"},
				{"id":"sr:competitor:38","name":"Chelsea FC","qualifier":"away"}
			]}}
		]}`))
	})

	got, err := client.FetchSchedules(context.Background(), sport.Soccer, "sr:season:105353")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, []team.Team{team.New("sr:competitor:42", "Arsenal FC"), team.New("sr:competitor:38", "Chelsea FC")}, got[0].CompetitorList())
}

func TestClient_FetchCompetitorStatistics(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/soccer/trial/v4/en/seasons/sr:season:105353/competitors/sr:competitor:42/statistics.json", r.URL.Path)
		_, _ = w.Write([]byte(`{"competitor":{"id":"sr:competitor:42","name":"Arsenal FC","players":[
			{"id":"sr:player:1","name":"Saka, Bukayo","statistics":{"goals_scored":14,"assists":9,"yellow_cards":3}},
			{"id":"sr:player:2","name":"Raya, David","statistics":{}}
		]}}`))
	})

	got, err := client.FetchCompetitorStatistics(context.Background(), sport.Soccer, "sr:season:105353", "sr:competitor:42")
	require.NoError(t, err)
	require.Equal(t, team.New("sr:competitor:42", "Arsenal FC"), got.Competitor)
	require.Len(t, got.Players, 2)
	require.EqualValues(t, 14, got.Players[0].Statistics.Goals)
	require.EqualValues(t, 9, got.Players[0].Statistics.Assists)
	require.Zero(t, got.Players[0].SeasonStatistics)
	require.Zero(t, got.Players[1].Statistics)
}

func TestClient_MissingEnvelopeKeyIsDecodeError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"unexpected shape"}`))
	})

	_, err := client.FetchCompetitorStatistics(context.Background(), sport.Soccer, "sr:season:1", "sr:competitor:1")
	require.Error(t, err)
	require.Contains(t, err.Error(), "competitor")
}

func TestClient_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"competitions":[]}`))
	})

	got, err := client.FetchCompetitions(context.Background(), sport.Soccer)
	require.NoError(t, err)
	require.Empty(t, got)
	require.EqualValues(t, 3, hits.Load())
}

func TestClient_PermanentStatusFailsFast(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"Not Authorized"}`))
	})

	_, err := client.FetchCompetitions(context.Background(), sport.Soccer)
	require.Error(t, err)
	require.Contains(t, err.Error(), "status=403")
	require.False(t, IsTransient(err))
	require.EqualValues(t, 1, hits.Load())
}

func TestClient_ErrorsNeverLeakAPIKey(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream failed for " + r.URL.String()))
	}, func(cfg *ClientConfig) { cfg.MaxRetries = 0 })

	_, err := client.FetchCompetitions(context.Background(), sport.Soccer)
	require.Error(t, err)
	require.True(t, IsTransient(err))
	require.NotContains(t, err.Error(), testAPIKey)
	require.NotContains(t, redactAPIURL(client.BuildURL(sport.Soccer, "competitions")), testAPIKey)
}

func TestClient_CircuitOpensAfterRepeatedFailures(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}, func(cfg *ClientConfig) {
		cfg.MaxRetries = 0
		cfg.CircuitBreaker.FailureThreshold = 2
	})

	for i := 0; i < 2; i++ {
		_, err := client.FetchCompetitions(context.Background(), sport.Soccer)
		require.Error(t, err)
	}

	_, err := client.FetchCompetitions(context.Background(), sport.Soccer)
	require.True(t, errors.Is(err, usecase.ErrDependencyUnavailable), "got %v", err)
	require.EqualValues(t, 2, hits.Load())
}

func TestClient_CancelledContextStopsRetrying(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}, func(cfg *ClientConfig) {
		cfg.Backoff = resilience.BackoffConfig{Base: time.Hour}
	})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.FetchCompetitions(ctx, sport.Soccer)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.EqualValues(t, 1, hits.Load())
}

func TestSanitizeSensitiveText(t *testing.T) {
	t.Parallel()

	got := sanitizeSensitiveText(`GET "https://x/y.json?api_key=abc&x=1": key abc`, "abc")
	require.False(t, strings.Contains(got, "abc"), "got %q", got)
	require.Contains(t, got, "api_key=REDACTED")
}
