package directory

import (
	"strings"

	"smartmeet/internal/model"
)

const maxSearchResults = 10

// Directory is an in-memory company directory with case-insensitive
// lookup by name or email.
type Directory struct {
	participants []model.Participant
	index        map[string]model.Participant // lowercased name and email keys
}

// Match is the result of a fuzzy directory search
type Match struct {
	Query      string
	Matches    []model.Participant
	Confidence float64
	Exact      bool
}

// New builds a directory from the given participants. When two entries
// share a name or email, the first one wins.
func New(participants []model.Participant) *Directory {
	d := &Directory{
		participants: make([]model.Participant, len(participants)),
		index:        make(map[string]model.Participant, len(participants)*2),
	}
	copy(d.participants, participants)

	for _, p := range participants {
		nameKey := strings.ToLower(strings.TrimSpace(p.Name))
		emailKey := strings.ToLower(strings.TrimSpace(p.Email))
		if _, ok := d.index[nameKey]; !ok && nameKey != "" {
			d.index[nameKey] = p
		}
		if _, ok := d.index[emailKey]; !ok && emailKey != "" {
			d.index[emailKey] = p
		}
	}

	return d
}

// Resolve finds a participant by exact name or email, ignoring case and
// surrounding whitespace. Partial names do not resolve.
func (d *Directory) Resolve(query string) (model.Participant, bool) {
	p, ok := d.index[strings.ToLower(strings.TrimSpace(query))]
	return p, ok
}

// List returns all directory entries in roster order
func (d *Directory) List() []model.Participant {
	out := make([]model.Participant, len(d.participants))
	copy(out, d.participants)
	return out
}

// Len returns the number of directory entries
func (d *Directory) Len() int {
	return len(d.participants)
}

// Search performs fuzzy matching against names and emails. Exact name
// matches rank first, then first-name, last-name, substring, and
// word-overlap matches in roster order. Results are deduplicated and
// capped at ten entries.
func (d *Directory) Search(query string) Match {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return Match{Query: query}
	}

	// Exact email lookup short-circuits the ladder
	if strings.Contains(q, "@") {
		if p, ok := d.index[q]; ok {
			return Match{Query: query, Matches: []model.Participant{p}, Confidence: 1.0, Exact: true}
		}
	}

	var matches []model.Participant
	for _, p := range d.participants {
		name := strings.ToLower(p.Name)
		email := strings.ToLower(p.Email)

		switch {
		case q == name:
			matches = append([]model.Participant{p}, matches...)
		case q == firstWord(name):
			matches = append(matches, p)
		case isLastWordMatch(q, name):
			matches = append(matches, p)
		case strings.Contains(name, q) || strings.Contains(q, name):
			matches = append(matches, p)
		case strings.Contains(email, q):
			matches = append(matches, p)
		case wordsOverlap(q, name):
			matches = append(matches, p)
		}
	}

	matches = dedupeByEmail(matches)
	if len(matches) > maxSearchResults {
		matches = matches[:maxSearchResults]
	}

	exact := len(matches) == 1 && q == strings.ToLower(matches[0].Name)
	return Match{
		Query:      query,
		Matches:    matches,
		Confidence: matchConfidence(q, matches),
		Exact:      exact,
	}
}

// matchConfidence scores the best (first) match against the query
func matchConfidence(q string, matches []model.Participant) float64 {
	if len(matches) == 0 {
		return 0
	}

	best := strings.ToLower(matches[0].Name)
	single := len(matches) == 1

	switch {
	case q == best:
		return 1.0
	case q == firstWord(best):
		if single {
			return 0.9
		}
		return 0.7
	case isLastWordMatch(q, best):
		if single {
			return 0.8
		}
		return 0.6
	case strings.Contains(best, q) || strings.Contains(q, best):
		if single {
			return 0.7
		}
		return 0.5
	}

	if overlap := exactWordOverlap(q, best); overlap > 0 {
		score := 0.3 + float64(overlap)*0.1
		if score > 0.6 {
			score = 0.6
		}
		return score
	}

	return 0.3
}

func firstWord(s string) string {
	if i := strings.IndexByte(s, ' '); i >= 0 {
		return s[:i]
	}
	return s
}

func isLastWordMatch(q, name string) bool {
	words := strings.Fields(name)
	return len(words) > 1 && q == words[len(words)-1]
}

func wordsOverlap(q, name string) bool {
	for _, qw := range strings.Fields(q) {
		for _, nw := range strings.Fields(name) {
			if strings.Contains(nw, qw) || strings.Contains(qw, nw) {
				return true
			}
		}
	}
	return false
}

func exactWordOverlap(q, name string) int {
	nameWords := make(map[string]struct{})
	for _, nw := range strings.Fields(name) {
		nameWords[nw] = struct{}{}
	}
	count := 0
	for _, qw := range strings.Fields(q) {
		if _, ok := nameWords[qw]; ok {
			count++
		}
	}
	return count
}

func dedupeByEmail(matches []model.Participant) []model.Participant {
	seen := make(map[string]struct{}, len(matches))
	out := matches[:0]
	for _, p := range matches {
		key := strings.ToLower(p.Email)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	return out
}
