package index

import (
	"strings"

	"github.com/antzucaro/matchr"

	"github.com/KirkDiggler/champion-grid/internal/errors"
)

const (
	// fuzzyThreshold is the minimum Jaro-Winkler similarity for a suggestion
	fuzzyThreshold = 0.85
	// phoneticThreshold applies when the Double Metaphone codes overlap
	phoneticThreshold = 0.70
)

// Resolve maps user input to a champion name. Exact and case-insensitive
// matches resolve directly. Otherwise a NotFound error is returned, carrying
// the closest name under the "suggestion" meta key when one is close enough.
func (i *Index) Resolve(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", errors.InvalidArgument("champion name is required")
	}
	if _, ok := i.champions[trimmed]; ok {
		return trimmed, nil
	}
	if name, ok := i.lowered[strings.ToLower(trimmed)]; ok {
		return name, nil
	}

	err := errors.NotFoundf("unknown champion %q", trimmed)
	if suggestion, ok := i.Suggest(trimmed); ok {
		return "", err.WithMeta("suggestion", suggestion)
	}
	return "", err
}

// Suggest returns the champion name closest to input. Phonetic matches win
// over plain string similarity.
func (i *Index) Suggest(input string) (string, bool) {
	lowered := strings.ToLower(strings.TrimSpace(input))
	if lowered == "" {
		return "", false
	}
	inputCodes := phoneticCodes(lowered)

	var (
		best         string
		bestScore    float64
		bestPhonetic bool
	)
	for _, name := range i.names {
		candidate := strings.ToLower(name)
		score := similarity(lowered, candidate)
		phonetic := overlaps(inputCodes, phoneticCodes(candidate))

		switch {
		case phonetic && score >= phoneticThreshold:
			if !bestPhonetic || score > bestScore {
				best, bestScore, bestPhonetic = name, score, true
			}
		case !bestPhonetic && score >= fuzzyThreshold && score > bestScore:
			best, bestScore = name, score
		}
	}

	return best, best != ""
}

// similarity compares full strings and their space-stripped forms, so
// "missfortune" still finds "Miss Fortune"
func similarity(a, b string) float64 {
	score := matchr.JaroWinkler(a, b, false)
	stripped := matchr.JaroWinkler(stripSeparators(a), stripSeparators(b), false)
	if stripped > score {
		return stripped
	}
	return score
}

func stripSeparators(s string) string {
	return strings.NewReplacer(" ", "", "'", "", ".", "", "&", "").Replace(s)
}

func phoneticCodes(s string) map[string]struct{} {
	codes := make(map[string]struct{}, 2)
	primary, secondary := matchr.DoubleMetaphone(stripSeparators(s))
	if primary != "" {
		codes[primary] = struct{}{}
	}
	if secondary != "" {
		codes[secondary] = struct{}{}
	}
	return codes
}

func overlaps(a, b map[string]struct{}) bool {
	for code := range a {
		if _, ok := b[code]; ok {
			return true
		}
	}
	return false
}
