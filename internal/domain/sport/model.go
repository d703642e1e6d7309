package sport

import (
	"fmt"
	"strings"
)

// Sport is a discipline exposed by the sports data provider.
type Sport struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Soccer is the only sport available with the provider's trial access level.
var Soccer = Sport{ID: "sr:sport:1", Name: "Soccer"}

func New(id, name string) Sport {
	return Sport{ID: id, Name: name}
}

func (s Sport) Identity() string { return s.ID }

func (s Sport) Label() string { return s.Name }

// CanonicalName is the lower-cased name used as a URL path segment.
func (s Sport) CanonicalName() string {
	return strings.ToLower(strings.TrimSpace(s.Name))
}

func (s Sport) String() string { return s.Name }

func (s Sport) Validate() error {
	if s.ID == "" {
		return fmt.Errorf("sport id is required")
	}
	if s.CanonicalName() == "" {
		return fmt.Errorf("sport name is required")
	}

	return nil
}
