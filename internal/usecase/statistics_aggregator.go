package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/sourcegraph/conc/panics"

	"github.com/riskibarqy/season-leaders/internal/domain/catalog"
	"github.com/riskibarqy/season-leaders/internal/domain/player"
	"github.com/riskibarqy/season-leaders/internal/domain/sport"
	"github.com/riskibarqy/season-leaders/internal/domain/team"
	"github.com/riskibarqy/season-leaders/internal/platform/logging"
)

// StatisticsFetcher loads one competitor's player statistics for a season.
// Implementations must be safe for concurrent use.
type StatisticsFetcher interface {
	FetchCompetitorStatistics(ctx context.Context, s sport.Sport, seasonID, competitorID string) (player.CompetitorStatistics, error)
}

type StatisticsRequest struct {
	Sport        sport.Sport
	SeasonID     string
	CompetitorID string
}

// StatisticsOutcome is the settled result of one request. Exactly one of
// Response and Err is meaningful.
type StatisticsOutcome struct {
	Request  StatisticsRequest
	Response player.CompetitorStatistics
	Err      error
}

type AggregationReport struct {
	Requested int
	Succeeded int
	Failed    int
}

type StatisticsAggregator struct {
	fetcher StatisticsFetcher
	logger  *logging.Logger
}

func NewStatisticsAggregator(fetcher StatisticsFetcher, logger *logging.Logger) *StatisticsAggregator {
	if logger == nil {
		logger = logging.Default()
	}
	return &StatisticsAggregator{fetcher: fetcher, logger: logger}
}

// CompetitorRef is what request construction needs to know about a competitor.
type CompetitorRef interface {
	comparable
	catalog.Identified
}

// BuildStatisticsRequests returns one request per competitor, ordered by
// competitor id.
func BuildStatisticsRequests[C CompetitorRef](s sport.Sport, seasonID string, competitors catalog.Set[C]) []StatisticsRequest {
	if competitors == nil {
		return nil
	}

	out := make([]StatisticsRequest, 0, competitors.Cardinality())
	competitors.Each(func(c C) bool {
		out = append(out, StatisticsRequest{
			Sport:        s,
			SeasonID:     seasonID,
			CompetitorID: c.Identity(),
		})
		return false
	})

	sort.Slice(out, func(i, j int) bool {
		return out[i].CompetitorID < out[j].CompetitorID
	})
	return out
}

// FetchAll issues every request at once and waits until all of them settle.
// A failing or panicking request becomes a failed outcome; the returned error
// is reserved for the worker pool itself.
func (a *StatisticsAggregator) FetchAll(ctx context.Context, requests []StatisticsRequest) ([]StatisticsOutcome, error) {
	if len(requests) == 0 {
		return nil, nil
	}

	pool, err := ants.NewPool(len(requests))
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make(chan StatisticsOutcome, len(requests))

	var workers sync.WaitGroup
	for _, req := range requests {
		req := req
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			results <- a.fetchOne(ctx, req)
		}); err != nil {
			workers.Done()
			results <- StatisticsOutcome{Request: req, Err: fmt.Errorf("submit statistics request: %w", err)}
		}
	}

	workers.Wait()
	close(results)

	outcomes := make([]StatisticsOutcome, 0, len(requests))
	for outcome := range results {
		outcomes = append(outcomes, outcome)
	}

	sort.SliceStable(outcomes, func(i, j int) bool {
		return outcomes[i].Request.CompetitorID < outcomes[j].Request.CompetitorID
	})
	return outcomes, nil
}

func (a *StatisticsAggregator) fetchOne(ctx context.Context, req StatisticsRequest) StatisticsOutcome {
	out := StatisticsOutcome{Request: req}
	if a.fetcher == nil {
		out.Err = crerr.Mark(crerr.New("statistics fetcher is not configured"), ErrDependencyUnavailable)
		return out
	}

	var catcher panics.Catcher
	catcher.Try(func() {
		out.Response, out.Err = a.fetcher.FetchCompetitorStatistics(ctx, req.Sport, req.SeasonID, req.CompetitorID)
	})
	if recovered := catcher.Recovered(); recovered != nil {
		out.Response = player.CompetitorStatistics{}
		out.Err = crerr.Wrapf(recovered.AsError(), "fetch statistics for competitor %s", req.CompetitorID)
	}
	return out
}

// MergeOutcomes folds successful outcomes into players, in order. Failed
// outcomes are logged and contribute nothing.
func (a *StatisticsAggregator) MergeOutcomes(ctx context.Context, players map[string]player.Player, outcomes []StatisticsOutcome) (map[string]player.Player, AggregationReport) {
	if players == nil {
		players = make(map[string]player.Player)
	}

	report := AggregationReport{Requested: len(outcomes)}
	for _, outcome := range outcomes {
		if outcome.Err != nil {
			report.Failed++
			a.logger.WarnContext(ctx, "competitor statistics unavailable, skipping",
				"competitor_id", outcome.Request.CompetitorID,
				"season_id", outcome.Request.SeasonID,
				"error", outcome.Err,
			)
			continue
		}
		report.Succeeded++
		MergeCompetitorStatistics(players, outcome.Response)
	}
	return players, report
}

// MergeCompetitorStatistics applies one response to players. A known player
// gains the response's statistics on top of its season totals and takes the
// response's name and team; an unknown player starts its season totals at the
// response's statistics.
func MergeCompetitorStatistics(players map[string]player.Player, resp player.CompetitorStatistics) {
	for _, snapshot := range resp.Assigned() {
		id := snapshot.Identity()
		if existing, ok := players[id]; ok {
			players[id] = existing.Accumulate(snapshot)
			continue
		}
		players[id] = snapshot.StartSeason()
	}
}

// Aggregate builds, fetches and merges the statistics of every competitor.
// Competitor failures only show up in the report.
func (a *StatisticsAggregator) Aggregate(ctx context.Context, s sport.Sport, seasonID string, competitors catalog.Set[team.Team]) (map[string]player.Player, AggregationReport, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatisticsAggregator.Aggregate")
	defer span.End()

	requests := BuildStatisticsRequests(s, seasonID, competitors)
	outcomes, err := a.FetchAll(ctx, requests)
	if err != nil {
		return nil, AggregationReport{}, err
	}

	players, report := a.MergeOutcomes(ctx, make(map[string]player.Player), outcomes)
	a.logger.DebugContext(ctx, "season statistics aggregated",
		"season_id", seasonID,
		"requested", report.Requested,
		"succeeded", report.Succeeded,
		"failed", report.Failed,
		"players", len(players),
	)
	return players, report, nil
}
