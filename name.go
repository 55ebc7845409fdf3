package jurisdiction

import (
	"github.com/mycoria/jurisdiction/internal/fold"
)

// ParseName returns the jurisdiction with the given English short name.
// Matching ignores case, diacritics and surplus white space, so
// "cote d'ivoire" matches "Côte d'Ivoire".
func ParseName(name string) (Jurisdiction, error) {
	key := fold.Name(name)
	if key == "" {
		return Jurisdiction{}, unknown("name", name)
	}
	index, ok := tables().byName[key]
	if !ok {
		return Jurisdiction{}, unknown("name", name)
	}
	return Jurisdiction{index: index}, nil
}
