package team

import "fmt"

// Team is a competitor taking part in the events of a season.
type Team struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// New rebuilds a competitor identity from a bare id/name pair.
func New(id, name string) Team {
	return Team{ID: id, Name: name}
}

func (t Team) Identity() string { return t.ID }

func (t Team) Label() string { return t.Name }

func (t Team) String() string { return t.Name }

func (t Team) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("team id is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
