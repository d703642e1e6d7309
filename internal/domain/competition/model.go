package competition

import "fmt"

// Country is the region a competition is played in. The provider models it
// as the competition category.
type Country struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Competition is a league or cup organized for a sport.
type Competition struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Country Country `json:"category"`
}

func (c Competition) Identity() string { return c.ID }

func (c Competition) Label() string { return c.Name }

func (c Competition) CountryName() string { return c.Country.Name }

func (c Competition) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.Country.Name)
}

func (c Competition) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("competition id is required")
	}
	if c.Name == "" {
		return fmt.Errorf("competition name is required")
	}

	return nil
}
