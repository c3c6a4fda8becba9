package ui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/vitrine/internal/museum"
)

// Search terms understood by the catalog.
const (
	TermKeyword   = "keyword"
	TermCulture   = "culture"
	TermTechnique = "technique"
	TermMedium    = "medium"
	TermPerson    = "person"
)

// Searchable is a link bound to a fixed term and value. Activating it runs a
// new search and replaces the current results.
type Searchable struct {
	Term  string
	Value string
	// Label is the text shown; Value when empty.
	Label string
}

// Text returns the link's display text.
func (s Searchable) Text() string {
	if s.Label != "" {
		return s.Label
	}
	return s.Value
}

// Query describes the search for logs and the header.
func (s Searchable) Query() string {
	return s.Term + ": " + s.Value
}

// Activate starts the search. The store is marked loading before Activate
// returns; the returned command performs the request.
func (s Searchable) Activate(f fetcher) tea.Cmd {
	term, value := s.Term, s.Value
	client := f.client
	return f.begin(fetchSearch, s.Query(), func(ctx context.Context) (*museum.SearchResultSet, error) {
		return client.FetchByTermAndValue(ctx, term, value)
	})
}

// keywordSearch builds the link behind the / prompt. Blank input yields ok=false.
func keywordSearch(input string) (Searchable, bool) {
	value := strings.TrimSpace(input)
	if value == "" {
		return Searchable{}, false
	}
	return Searchable{Term: TermKeyword, Value: value}, true
}
