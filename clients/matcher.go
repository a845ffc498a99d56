package clients

import (
	"strings"
	"unicode/utf8"

	"github.com/programmermistery-hub/BarberCRM/models"
)

// MaxResults caps autocomplete responses.
const MaxResults = 10

// Finder is the storage query the matcher runs: case-insensitive
// substring match on the full name, ordered alphabetically, at most
// limit rows.
type Finder interface {
	SearchClientsByName(fragment string, limit int) ([]models.Client, error)
}

// Search resolves an autocomplete query. Queries shorter than two
// characters return nothing without touching storage, so typing the
// first letter never triggers a broad scan.
func Search(finder Finder, query string) ([]models.Client, error) {
	query = strings.TrimSpace(query)
	if utf8.RuneCountInString(query) < 2 {
		return []models.Client{}, nil
	}
	found, err := finder.SearchClientsByName(query, MaxResults)
	if err != nil {
		return nil, err
	}
	if found == nil {
		found = []models.Client{}
	}
	return found, nil
}
