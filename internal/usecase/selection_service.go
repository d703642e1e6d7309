package usecase

import (
	"context"
	"fmt"
	"sort"

	crerr "github.com/cockroachdb/errors"

	"github.com/riskibarqy/season-leaders/internal/domain/catalog"
	"github.com/riskibarqy/season-leaders/internal/domain/competition"
	"github.com/riskibarqy/season-leaders/internal/domain/player"
	"github.com/riskibarqy/season-leaders/internal/domain/playerstats"
	"github.com/riskibarqy/season-leaders/internal/domain/season"
	"github.com/riskibarqy/season-leaders/internal/domain/session"
	"github.com/riskibarqy/season-leaders/internal/domain/sport"
	"github.com/riskibarqy/season-leaders/internal/domain/sportevent"
	"github.com/riskibarqy/season-leaders/internal/platform/id"
	"github.com/riskibarqy/season-leaders/internal/platform/logging"
)

const (
	LabelSport       = "Select a sport:"
	LabelCompetition = "Select a competition:"
	LabelSeason      = "Select a season:"
	LabelStatKind    = "What statistics do you want to see?"
	LabelLimit       = "How many players do you want to see?"
	LabelContinue    = "Do you want to explore other sports, competitions, or seasons?"
)

// SportsDataProvider is the upstream sports data API.
type SportsDataProvider interface {
	StatisticsFetcher
	FetchCompetitions(ctx context.Context, s sport.Sport) ([]competition.Competition, error)
	FetchSeasons(ctx context.Context, s sport.Sport, competitionID string) ([]season.Season, error)
	FetchSchedules(ctx context.Context, s sport.Sport, seasonID string) ([]sportevent.SportEvent, error)
}

// Prompter asks the user to make a choice. Implementations return an error
// marked with ErrAborted when the user interrupts the prompt.
type Prompter interface {
	Select(label string, options []string) (int, error)
	Number(label string, initial int) (int, error)
	Confirm(label string) (bool, error)
}

type Renderer interface {
	RenderRanking(kind playerstats.Kind, players []player.Player) error
	Farewell() error
}

type SelectionConfig struct {
	AllowedCompetitions []string
	AllowedCountries    []string
	DisplayLimit        int
}

// SelectionService drives the wizard: one session, advanced step by step
// until a ranking is displayed.
type SelectionService struct {
	provider   SportsDataProvider
	aggregator *StatisticsAggregator
	prompter   Prompter
	renderer   Renderer
	ids        id.Generator
	logger     *logging.Logger

	nameAllowlist    catalog.Set[string]
	countryAllowlist catalog.Set[string]
	displayLimit     int

	session *session.Session
	cycleID string
}

func NewSelectionService(
	provider SportsDataProvider,
	prompter Prompter,
	renderer Renderer,
	cfg SelectionConfig,
	ids id.Generator,
	logger *logging.Logger,
) *SelectionService {
	if logger == nil {
		logger = logging.Default()
	}
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	displayLimit := cfg.DisplayLimit
	if displayLimit <= 0 {
		displayLimit = DefaultDisplayLimit
	}

	return &SelectionService{
		provider:         provider,
		aggregator:       NewStatisticsAggregator(provider, logger),
		prompter:         prompter,
		renderer:         renderer,
		ids:              ids,
		logger:           logger,
		nameAllowlist:    catalog.NewSet(cfg.AllowedCompetitions...),
		countryAllowlist: catalog.NewSet(cfg.AllowedCountries...),
		displayLimit:     displayLimit,
		session:          session.New(),
	}
}

// Session exposes the current selection state.
func (s *SelectionService) Session() *session.Session {
	return s.session
}

// Run repeats wizard cycles until the user declines to continue. Declining
// renders the farewell line and returns nil.
func (s *SelectionService) Run(ctx context.Context) error {
	for {
		if err := s.RunCycle(ctx); err != nil {
			return err
		}

		proceed, err := s.prompter.Confirm(LabelContinue)
		if err != nil {
			return crerr.Wrap(err, "confirm continue")
		}
		if !proceed {
			if err := s.renderer.Farewell(); err != nil {
				return crerr.Wrap(err, "render farewell")
			}
			return nil
		}

		s.session.Reset()
		s.cycleID = ""
	}
}

// RunCycle steps the session until the ranking has been displayed.
func (s *SelectionService) RunCycle(ctx context.Context) error {
	ctx, span := startRootSpan(ctx, "usecase.SelectionService.RunCycle")
	defer span.End()

	for s.session.State() != session.StateDisplayed {
		if err := ctx.Err(); err != nil {
			return crerr.Mark(crerr.Wrap(err, "wizard cycle"), ErrAborted)
		}
		if err := s.Step(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Step performs the single transition that leaves the current state.
func (s *SelectionService) Step(ctx context.Context) error {
	if s.cycleID == "" {
		cycleID, err := s.ids.NewID()
		if err != nil {
			return fmt.Errorf("generate cycle id: %w", err)
		}
		s.cycleID = cycleID
	}

	state := s.session.State()
	s.logger.DebugContext(ctx, "wizard step", "cycle_id", s.cycleID, "state", state.String())

	switch state {
	case session.StateNoSport:
		return s.chooseSport()
	case session.StateSportChosen:
		return s.chooseCompetition(ctx)
	case session.StateCompetitionChosen:
		return s.chooseSeason(ctx)
	case session.StateSeasonChosen:
		return s.chooseStatKind(ctx)
	case session.StateStatKindChosen:
		return s.chooseLimit()
	case session.StateLimitChosen:
		return s.display(ctx)
	case session.StateDisplayed:
		return nil
	default:
		return crerr.Mark(crerr.Newf("unknown wizard state %s", state), ErrPrecondition)
	}
}

func (s *SelectionService) chooseSport() error {
	if s.session.Sports().Cardinality() == 0 {
		s.session.SetSports(catalog.NewSet(sport.Soccer))
	}

	choice, err := selectOne(s.prompter, LabelSport, sortedOptions(s.session.Sports()))
	if err != nil {
		return err
	}
	return precondition(s.session.ChooseSport(choice))
}

func (s *SelectionService) chooseCompetition(ctx context.Context) error {
	if err := s.loadCompetitions(ctx); err != nil {
		return err
	}

	choice, err := selectOne(s.prompter, LabelCompetition, sortedOptions(s.session.Competitions()))
	if err != nil {
		return err
	}
	return precondition(s.session.ChooseCompetition(choice))
}

func (s *SelectionService) loadCompetitions(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SelectionService.loadCompetitions")
	defer span.End()

	selected, ok := s.session.Sport()
	if !ok {
		return crerr.Mark(crerr.New("fetch competitions: no sport selected"), ErrPrecondition)
	}

	all, err := s.provider.FetchCompetitions(ctx, selected)
	if err != nil {
		return crerr.Wrap(err, "fetch competitions")
	}

	filtered := FilterCompetitions(all, s.nameAllowlist, s.countryAllowlist)
	s.logger.DebugContext(ctx, "competitions filtered",
		"cycle_id", s.cycleID,
		"sport", selected.Name,
		"fetched", len(all),
		"allowed", filtered.Cardinality(),
	)
	return precondition(s.session.SetCompetitions(filtered))
}

func (s *SelectionService) chooseSeason(ctx context.Context) error {
	if err := s.loadSeasons(ctx); err != nil {
		return err
	}

	choice, err := selectOne(s.prompter, LabelSeason, s.session.Seasons())
	if err != nil {
		return err
	}
	return precondition(s.session.ChooseSeason(choice))
}

func (s *SelectionService) loadSeasons(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SelectionService.loadSeasons")
	defer span.End()

	selectedSport, ok := s.session.Sport()
	if !ok {
		return crerr.Mark(crerr.New("fetch seasons: no sport selected"), ErrPrecondition)
	}
	selectedCompetition, ok := s.session.Competition()
	if !ok {
		return crerr.Mark(crerr.New("fetch seasons: no competition selected"), ErrPrecondition)
	}

	all, err := s.provider.FetchSeasons(ctx, selectedSport, selectedCompetition.ID)
	if err != nil {
		return crerr.Wrapf(err, "fetch seasons for competition %s", selectedCompetition.ID)
	}
	return precondition(s.session.SetSeasons(FilterAndSortSeasons(all)))
}

func (s *SelectionService) chooseStatKind(ctx context.Context) error {
	if err := s.loadPlayers(ctx); err != nil {
		return err
	}

	choice, err := selectOne(s.prompter, LabelStatKind, playerstats.AllKinds)
	if err != nil {
		return err
	}
	return precondition(s.session.ChooseStatKind(choice))
}

// loadPlayers fetches the season's events, derives its competitors and
// aggregates their statistics into the session.
func (s *SelectionService) loadPlayers(ctx context.Context) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SelectionService.loadPlayers")
	defer span.End()

	selectedSport, ok := s.session.Sport()
	if !ok {
		return crerr.Mark(crerr.New("fetch schedules: no sport selected"), ErrPrecondition)
	}
	selectedSeason, ok := s.session.Season()
	if !ok {
		return crerr.Mark(crerr.New("fetch schedules: no season selected"), ErrPrecondition)
	}

	events, err := s.provider.FetchSchedules(ctx, selectedSport, selectedSeason.ID)
	if err != nil {
		return crerr.Wrapf(err, "fetch schedules for season %s", selectedSeason.ID)
	}
	if err := precondition(s.session.SetSportEvents(events)); err != nil {
		return err
	}

	players, report, err := s.aggregator.Aggregate(ctx, selectedSport, selectedSeason.ID, s.session.Competitors())
	if err != nil {
		return crerr.Wrap(err, "aggregate season statistics")
	}
	if report.Failed > 0 {
		s.logger.WarnContext(ctx, "season statistics are incomplete",
			"cycle_id", s.cycleID,
			"season_id", selectedSeason.ID,
			"failed", report.Failed,
			"requested", report.Requested,
		)
	}
	return precondition(s.session.SetPlayers(players))
}

func (s *SelectionService) chooseLimit() error {
	limit, err := s.prompter.Number(LabelLimit, s.displayLimit)
	if err != nil {
		return crerr.Wrap(err, "prompt limit")
	}
	if limit <= 0 {
		return crerr.Mark(crerr.Newf("limit must be greater than zero, got %d", limit), ErrInvalidInput)
	}
	return precondition(s.session.ChooseLimit(limit))
}

func (s *SelectionService) display(ctx context.Context) error {
	kind, ok := s.session.StatKind()
	if !ok {
		return crerr.Mark(crerr.New("display ranking: no statistic selected"), ErrPrecondition)
	}
	limit, ok := s.session.Limit()
	if !ok {
		return crerr.Mark(crerr.New("display ranking: no limit selected"), ErrPrecondition)
	}

	ranked := TopByMetric(s.session.Players(), kind, limit)
	if err := s.renderer.RenderRanking(kind, ranked); err != nil {
		return crerr.Wrap(err, "render ranking")
	}

	s.logger.InfoContext(ctx, "ranking displayed",
		"cycle_id", s.cycleID,
		"kind", kind.String(),
		"limit", limit,
		"shown", len(ranked),
	)
	return precondition(s.session.MarkDisplayed())
}

// selectOne prompts with the String form of each option. An empty option
// list cannot be answered and is reported as ErrNoOptions.
func selectOne[T fmt.Stringer](p Prompter, label string, options []T) (T, error) {
	var zero T
	if len(options) == 0 {
		return zero, crerr.Mark(crerr.Newf("%s nothing to choose from", label), ErrNoOptions)
	}

	labels := make([]string, len(options))
	for i, option := range options {
		labels[i] = option.String()
	}

	idx, err := p.Select(label, labels)
	if err != nil {
		return zero, crerr.Wrapf(err, "prompt %q", label)
	}
	if idx < 0 || idx >= len(options) {
		return zero, crerr.Mark(crerr.Newf("%s choice %d is out of range", label, idx), ErrInvalidInput)
	}
	return options[idx], nil
}

// sortedOptions orders a set by display text so prompts are stable.
func sortedOptions[T interface {
	comparable
	fmt.Stringer
}](items catalog.Set[T]) []T {
	out := items.ToSlice()
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].String() < out[j].String()
	})
	return out
}

func precondition(err error) error {
	if err == nil {
		return nil
	}
	return crerr.Mark(err, ErrPrecondition)
}
