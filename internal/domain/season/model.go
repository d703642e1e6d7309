package season

import "fmt"

// Season is a time-bounded edition of a competition, e.g. "Premier League 23/24".
type Season struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Disabled bool   `json:"disabled"`
}

func (s Season) Identity() string { return s.ID }

func (s Season) Label() string { return s.Name }

// Enabled reports whether the provider still serves data for the season.
func (s Season) Enabled() bool { return !s.Disabled }

func (s Season) String() string { return s.Name }

func (s Season) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("season id is required")
	}

	return nil
}
