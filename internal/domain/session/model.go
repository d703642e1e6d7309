// Package session holds the mutable selection state of the wizard and the
// rules for moving between its steps.
package session

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/riskibarqy/season-leaders/internal/domain/catalog"
	"github.com/riskibarqy/season-leaders/internal/domain/competition"
	"github.com/riskibarqy/season-leaders/internal/domain/player"
	"github.com/riskibarqy/season-leaders/internal/domain/playerstats"
	"github.com/riskibarqy/season-leaders/internal/domain/season"
	"github.com/riskibarqy/season-leaders/internal/domain/sport"
	"github.com/riskibarqy/season-leaders/internal/domain/sportevent"
	"github.com/riskibarqy/season-leaders/internal/domain/team"
)

var ErrIllegalTransition = errors.New("illegal session transition")

// State is the step the wizard is at. States only move forward, except for
// Reset which returns to StateNoSport.
type State int

const (
	StateNoSport State = iota
	StateSportChosen
	StateCompetitionChosen
	StateSeasonChosen
	StateStatKindChosen
	StateLimitChosen
	StateDisplayed
)

func (s State) String() string {
	switch s {
	case StateNoSport:
		return "no_sport"
	case StateSportChosen:
		return "sport_chosen"
	case StateCompetitionChosen:
		return "competition_chosen"
	case StateSeasonChosen:
		return "season_chosen"
	case StateStatKindChosen:
		return "stat_kind_chosen"
	case StateLimitChosen:
		return "limit_chosen"
	case StateDisplayed:
		return "displayed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Session is created once per process and mutated in place by the wizard.
// It is not safe for concurrent use.
type Session struct {
	state State

	sports catalog.Set[sport.Sport]

	sport         sport.Sport
	competitions  catalog.Set[competition.Competition]
	competition   competition.Competition
	seasons       []season.Season
	season        season.Season
	sportEvents   map[string]sportevent.SportEvent
	competitors   catalog.Set[team.Team]
	players       map[string]player.Player
	playersLoaded bool
	statKind      playerstats.Kind
	limit         int
}

func New() *Session {
	s := &Session{sports: catalog.NewSet[sport.Sport]()}
	s.Reset()
	return s
}

func (s *Session) State() State { return s.state }

// Reset clears every selection and fetched collection, keeping only the
// sport catalog.
func (s *Session) Reset() {
	s.state = StateNoSport
	s.sport = sport.Sport{}
	s.competitions = catalog.NewSet[competition.Competition]()
	s.competition = competition.Competition{}
	s.seasons = nil
	s.season = season.Season{}
	s.sportEvents = make(map[string]sportevent.SportEvent)
	s.competitors = catalog.NewSet[team.Team]()
	s.players = make(map[string]player.Player)
	s.playersLoaded = false
	s.statKind = 0
	s.limit = 0
}

func (s *Session) SetSports(items catalog.Set[sport.Sport]) {
	if items == nil {
		items = catalog.NewSet[sport.Sport]()
	}
	s.sports = items.Clone()
}

func (s *Session) Sports() catalog.Set[sport.Sport] {
	return s.sports.Clone()
}

func (s *Session) ChooseSport(item sport.Sport) error {
	if err := s.require(StateNoSport, "choose sport"); err != nil {
		return err
	}
	if !s.sports.Contains(item) {
		return fmt.Errorf("%w: sport %q is not in the catalog", ErrIllegalTransition, item.Name)
	}
	s.sport = item
	s.state = StateSportChosen
	return nil
}

func (s *Session) Sport() (sport.Sport, bool) {
	return s.sport, s.state >= StateSportChosen
}

func (s *Session) SetCompetitions(items catalog.Set[competition.Competition]) error {
	if err := s.require(StateSportChosen, "set competitions"); err != nil {
		return err
	}
	if items == nil {
		items = catalog.NewSet[competition.Competition]()
	}
	s.competitions = items.Clone()
	return nil
}

func (s *Session) Competitions() catalog.Set[competition.Competition] {
	return s.competitions.Clone()
}

func (s *Session) ChooseCompetition(item competition.Competition) error {
	if err := s.require(StateSportChosen, "choose competition"); err != nil {
		return err
	}
	if !s.competitions.Contains(item) {
		return fmt.Errorf("%w: competition %q is not an available option", ErrIllegalTransition, item.Name)
	}
	s.competition = item
	s.state = StateCompetitionChosen
	return nil
}

func (s *Session) Competition() (competition.Competition, bool) {
	return s.competition, s.state >= StateCompetitionChosen
}

func (s *Session) SetSeasons(items []season.Season) error {
	if err := s.require(StateCompetitionChosen, "set seasons"); err != nil {
		return err
	}
	s.seasons = slices.Clone(items)
	return nil
}

func (s *Session) Seasons() []season.Season {
	return slices.Clone(s.seasons)
}

func (s *Session) ChooseSeason(item season.Season) error {
	if err := s.require(StateCompetitionChosen, "choose season"); err != nil {
		return err
	}
	if !slices.Contains(s.seasons, item) {
		return fmt.Errorf("%w: season %q is not an available option", ErrIllegalTransition, item.Name)
	}
	s.season = item
	s.state = StateSeasonChosen
	return nil
}

func (s *Session) Season() (season.Season, bool) {
	return s.season, s.state >= StateSeasonChosen
}

// SetSportEvents stores the events of the chosen season and derives the
// competitor set as the union of every event's competitors.
func (s *Session) SetSportEvents(events []sportevent.SportEvent) error {
	if err := s.require(StateSeasonChosen, "set sport events"); err != nil {
		return err
	}
	s.sportEvents = make(map[string]sportevent.SportEvent, len(events))
	s.competitors = catalog.NewSet[team.Team]()
	for _, event := range events {
		s.sportEvents[event.ID] = event
		for _, competitor := range event.CompetitorList() {
			s.competitors.Add(competitor)
		}
	}
	return nil
}

// SportEvents returns the stored events ordered by id.
func (s *Session) SportEvents() []sportevent.SportEvent {
	out := make([]sportevent.SportEvent, 0, len(s.sportEvents))
	for _, id := range slices.Sorted(maps.Keys(s.sportEvents)) {
		out = append(out, s.sportEvents[id])
	}
	return out
}

func (s *Session) Competitors() catalog.Set[team.Team] {
	return s.competitors.Clone()
}

func (s *Session) SetPlayers(players map[string]player.Player) error {
	if err := s.require(StateSeasonChosen, "set players"); err != nil {
		return err
	}
	s.players = maps.Clone(players)
	if s.players == nil {
		s.players = make(map[string]player.Player)
	}
	s.playersLoaded = true
	return nil
}

func (s *Session) Players() map[string]player.Player {
	return maps.Clone(s.players)
}

// ChooseStatKind requires the season's players to be loaded first, so a
// ranking can never be built on an empty, unfetched map.
func (s *Session) ChooseStatKind(kind playerstats.Kind) error {
	if err := s.require(StateSeasonChosen, "choose statistic kind"); err != nil {
		return err
	}
	if !s.playersLoaded {
		return fmt.Errorf("%w: choose statistic kind: players are not loaded", ErrIllegalTransition)
	}
	if !kind.Valid() {
		return fmt.Errorf("%w: unknown statistic kind %d", ErrIllegalTransition, int(kind))
	}
	s.statKind = kind
	s.state = StateStatKindChosen
	return nil
}

func (s *Session) StatKind() (playerstats.Kind, bool) {
	return s.statKind, s.state >= StateStatKindChosen
}

func (s *Session) ChooseLimit(limit int) error {
	if err := s.require(StateStatKindChosen, "choose limit"); err != nil {
		return err
	}
	if limit <= 0 {
		return fmt.Errorf("%w: limit must be greater than zero, got %d", ErrIllegalTransition, limit)
	}
	s.limit = limit
	s.state = StateLimitChosen
	return nil
}

func (s *Session) Limit() (int, bool) {
	return s.limit, s.state >= StateLimitChosen
}

func (s *Session) MarkDisplayed() error {
	if err := s.require(StateLimitChosen, "mark displayed"); err != nil {
		return err
	}
	s.state = StateDisplayed
	return nil
}

func (s *Session) require(want State, op string) error {
	if s.state != want {
		return fmt.Errorf("%w: %s requires state %s, current state is %s", ErrIllegalTransition, op, want, s.state)
	}
	return nil
}
