package competition

import "testing"

func TestCompetition_DisplayAndCountry(t *testing.T) {
	t.Parallel()

	c := Competition{ID: "sr:competition:23", Name: "Serie A", Country: Country{ID: "sr:category:31", Name: "Italy"}}
	if c.CountryName() != "Italy" {
		t.Fatalf("unexpected country: %q", c.CountryName())
	}
	if c.String() != "Serie A (Italy)" {
		t.Fatalf("unexpected display: %q", c.String())
	}
	if err := c.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if err := (Competition{Name: "Serie A"}).Validate(); err == nil {
		t.Fatalf("expected validation error for missing id")
	}
}
