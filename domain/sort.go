package domain

import "strings"

// SortDirection orders the registry by principal.
type SortDirection string

const (
	Ascending  SortDirection = "ascendente"
	Descending SortDirection = "descendente"
)

var sortAliases = map[string]SortDirection{
	"ascendente":  Ascending,
	"descendente": Descending,
	"ascending":   Ascending,
	"descending":  Descending,
}

// ParseSortDirection accepts the direction case-insensitively.
func ParseSortDirection(raw string) (SortDirection, error) {
	dir, ok := sortAliases[strings.ToLower(strings.TrimSpace(raw))]
	if !ok {
		return "", &InvalidOptionError{Option: raw}
	}
	return dir, nil
}
