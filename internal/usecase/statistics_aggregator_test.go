package usecase

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/riskibarqy/season-leaders/internal/domain/catalog"
	"github.com/riskibarqy/season-leaders/internal/domain/player"
	"github.com/riskibarqy/season-leaders/internal/domain/playerstats"
	"github.com/riskibarqy/season-leaders/internal/domain/sport"
	"github.com/riskibarqy/season-leaders/internal/domain/team"
	usecasemock "github.com/riskibarqy/season-leaders/internal/mocks/usecase"
	"github.com/riskibarqy/season-leaders/internal/platform/logging"
)

type fetcherFunc func(ctx context.Context, s sport.Sport, seasonID, competitorID string) (player.CompetitorStatistics, error)

func (f fetcherFunc) FetchCompetitorStatistics(ctx context.Context, s sport.Sport, seasonID, competitorID string) (player.CompetitorStatistics, error) {
	return f(ctx, s, seasonID, competitorID)
}

func observedLogger() (*logging.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logging.FromZap(zap.New(core)), logs
}

var (
	teamA = team.New("sr:competitor:42", "Arsenal FC")
	teamB = team.New("sr:competitor:38", "Chelsea FC")
)

func response(competitor team.Team, players ...player.Player) player.CompetitorStatistics {
	return player.CompetitorStatistics{Competitor: competitor, Players: players}
}

func snapshot(id, name string, goals, assists uint8) player.Player {
	return player.Player{ID: id, Name: name, Statistics: playerstats.Statistics{Goals: goals, Assists: assists}}
}

func TestBuildStatisticsRequests_OnePerCompetitor(t *testing.T) {
	t.Parallel()

	got := BuildStatisticsRequests(sport.Soccer, "sr:season:1", catalog.NewSet(teamA, teamB))

	require.Len(t, got, 2)
	require.Equal(t, StatisticsRequest{Sport: sport.Soccer, SeasonID: "sr:season:1", CompetitorID: teamB.ID}, got[0])
	require.Equal(t, teamA.ID, got[1].CompetitorID)
	require.Empty(t, BuildStatisticsRequests[team.Team](sport.Soccer, "sr:season:1", nil))
}

func TestMergeCompetitorStatistics_OrderDoesNotChangeTotals(t *testing.T) {
	t.Parallel()

	first := response(teamA, snapshot("P", "Player P", 2, 0))
	second := response(teamB, snapshot("P", "Player P", 3, 0))

	forward := make(map[string]player.Player)
	MergeCompetitorStatistics(forward, first)
	MergeCompetitorStatistics(forward, second)

	backward := make(map[string]player.Player)
	MergeCompetitorStatistics(backward, second)
	MergeCompetitorStatistics(backward, first)

	require.EqualValues(t, 5, forward["P"].SeasonStatistics.Goals)
	require.EqualValues(t, 5, backward["P"].SeasonStatistics.Goals)
	require.Equal(t, teamB, forward["P"].Team, "latest record owns the team")
}

func TestMergeCompetitorStatistics_NewPlayerRecordsFirstContributionOnce(t *testing.T) {
	t.Parallel()

	players := make(map[string]player.Player)
	MergeCompetitorStatistics(players, response(teamA, snapshot("Q", "Player Q", 0, 4)))

	require.EqualValues(t, 4, players["Q"].SeasonStatistics.Assists)
	require.Equal(t, teamA, players["Q"].Team)
}

func TestStatisticsAggregator_PartialFailureIsTolerated(t *testing.T) {
	t.Parallel()

	provider := usecasemock.NewSportsDataProvider(t)
	provider.
		On("FetchCompetitorStatistics", mock.Anything, sport.Soccer, "sr:season:1", teamA.ID).
		Return(response(teamA, snapshot("P", "Player P", 7, 1)), nil).
		Once()
	provider.
		On("FetchCompetitorStatistics", mock.Anything, sport.Soccer, "sr:season:1", teamB.ID).
		Return(player.CompetitorStatistics{}, errors.New("provider status=503")).
		Once()

	logger, logs := observedLogger()
	aggregator := NewStatisticsAggregator(provider, logger)

	players, report, err := aggregator.Aggregate(context.Background(), sport.Soccer, "sr:season:1", catalog.NewSet(teamA, teamB))
	require.NoError(t, err)
	require.Equal(t, AggregationReport{Requested: 2, Succeeded: 1, Failed: 1}, report)
	require.Len(t, players, 1)
	require.Contains(t, players, "P")

	warnings := logs.FilterLevelExact(zapcore.WarnLevel).FilterField(zap.String("competitor_id", teamB.ID)).All()
	require.Len(t, warnings, 1)
	require.Equal(t, "sr:season:1", warnings[0].ContextMap()["season_id"])
}

func TestStatisticsAggregator_FetchAllRunsConcurrentlyAndWaitsForAll(t *testing.T) {
	t.Parallel()

	var inFlight, peak atomic.Int32
	fetcher := fetcherFunc(func(ctx context.Context, s sport.Sport, seasonID, competitorID string) (player.CompetitorStatistics, error) {
		now := inFlight.Add(1)
		for {
			old := peak.Load()
			if now <= old || peak.CompareAndSwap(old, now) {
				break
			}
		}
		time.Sleep(30 * time.Millisecond)
		inFlight.Add(-1)
		return response(team.New(competitorID, competitorID)), nil
	})

	aggregator := NewStatisticsAggregator(fetcher, logging.NewNop())
	competitors := catalog.NewSet[team.Team]()
	for _, id := range []string{"a", "b", "c", "d", "e", "f"} {
		competitors.Add(team.New(id, id))
	}

	outcomes, err := aggregator.FetchAll(context.Background(), BuildStatisticsRequests(sport.Soccer, "sr:season:1", competitors))
	require.NoError(t, err)
	require.Len(t, outcomes, 6)
	require.Zero(t, inFlight.Load(), "every request settles before FetchAll returns")
	require.Greater(t, peak.Load(), int32(1), "requests must overlap")
}

func TestStatisticsAggregator_PanickingFetchBecomesFailedOutcome(t *testing.T) {
	t.Parallel()

	fetcher := fetcherFunc(func(ctx context.Context, s sport.Sport, seasonID, competitorID string) (player.CompetitorStatistics, error) {
		if competitorID == teamB.ID {
			panic("decoder blew up")
		}
		return response(teamA, snapshot("P", "Player P", 1, 0)), nil
	})

	aggregator := NewStatisticsAggregator(fetcher, logging.NewNop())
	players, report, err := aggregator.Aggregate(context.Background(), sport.Soccer, "sr:season:1", catalog.NewSet(teamA, teamB))

	require.NoError(t, err)
	require.Equal(t, 1, report.Failed)
	require.Len(t, players, 1)
}

func TestStatisticsAggregator_NoCompetitors(t *testing.T) {
	t.Parallel()

	aggregator := NewStatisticsAggregator(usecasemock.NewSportsDataProvider(t), logging.NewNop())
	players, report, err := aggregator.Aggregate(context.Background(), sport.Soccer, "sr:season:1", catalog.NewSet[team.Team]())

	require.NoError(t, err)
	require.Empty(t, players)
	require.Equal(t, AggregationReport{}, report)
}
