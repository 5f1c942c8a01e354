// Package index answers "which champions satisfy category C" over a static
// dataset. Every category's match set is computed once at construction.
package index

import (
	"log/slog"
	"sort"
	"strings"

	"github.com/KirkDiggler/champion-grid/internal/catalog"
	"github.com/KirkDiggler/champion-grid/internal/entities"
	"github.com/KirkDiggler/champion-grid/internal/errors"
)

// Config holds the dependencies of an Index
type Config struct {
	Champions []*entities.Champion
	Catalog   *catalog.Catalog
}

// Validate checks the config
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if len(c.Champions) == 0 {
		vb.RequiredField("Champions")
	}

	seen := make(map[string]bool, len(c.Champions))
	for i, champ := range c.Champions {
		switch {
		case champ == nil:
			vb.Fieldf("Champions", "entry %d is nil", i)
		case strings.TrimSpace(champ.Name) == "":
			vb.Fieldf("Champions", "entry %d has no name", i)
		case seen[champ.Name]:
			vb.Fieldf("Champions", "duplicate champion %q", champ.Name)
		default:
			seen[champ.Name] = true
		}
	}

	return vb.Build()
}

// Index is a read-only view over champions and their category memberships.
// It is safe for concurrent use.
type Index struct {
	catalog   *catalog.Catalog
	champions map[string]*entities.Champion
	names     []string
	lowered   map[string]string
	matches   map[string]map[string]struct{}
	sorted    map[string][]string
}

// New builds an index and precomputes the match set of every category
func New(cfg *Config) (*Index, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	idx := &Index{
		catalog:   cfg.Catalog,
		champions: make(map[string]*entities.Champion, len(cfg.Champions)),
		names:     make([]string, 0, len(cfg.Champions)),
		lowered:   make(map[string]string, len(cfg.Champions)),
		matches:   make(map[string]map[string]struct{}, len(cfg.Catalog.Categories())),
		sorted:    make(map[string][]string, len(cfg.Catalog.Categories())),
	}

	for _, champ := range cfg.Champions {
		idx.champions[champ.Name] = champ
		idx.names = append(idx.names, champ.Name)
		idx.lowered[strings.ToLower(champ.Name)] = champ.Name
	}
	sort.Strings(idx.names)

	for _, cat := range cfg.Catalog.Categories() {
		set := make(map[string]struct{})
		list := make([]string, 0)
		for _, name := range idx.names {
			if cat.Matches(idx.champions[name]) {
				set[name] = struct{}{}
				list = append(list, name)
			}
		}
		idx.matches[cat.Name] = set
		idx.sorted[cat.Name] = list
	}

	slog.Debug("Built attribute index",
		"champions", len(idx.names),
		"categories", len(idx.matches),
		"catalog_version", cfg.Catalog.Version())

	return idx, nil
}

// Catalog returns the catalog the index was built from
func (i *Index) Catalog() *catalog.Catalog {
	return i.catalog
}

// Total is the number of champions in the dataset
func (i *Index) Total() int {
	return len(i.names)
}

// Names returns every champion name, sorted
func (i *Index) Names() []string {
	out := make([]string, len(i.names))
	copy(out, i.names)
	return out
}

// Champion looks up a champion by exact name
func (i *Index) Champion(name string) (*entities.Champion, bool) {
	c, ok := i.champions[name]
	return c, ok
}

// Known reports whether the catalog defines the category
func (i *Index) Known(category string) bool {
	_, ok := i.matches[category]
	return ok
}

// Matches reports whether the champion satisfies the category. Unknown
// categories and nil champions never match.
func (i *Index) Matches(champion *entities.Champion, category string) bool {
	if champion == nil {
		return false
	}
	if set, ok := i.matches[category]; ok {
		if indexed, known := i.champions[champion.Name]; known && indexed == champion {
			_, hit := set[champion.Name]
			return hit
		}
	}
	cat, ok := i.catalog.Category(category)
	if !ok {
		return false
	}
	return cat.Matches(champion)
}

// EntitiesFor returns the sorted names of every champion satisfying the category
func (i *Index) EntitiesFor(category string) ([]string, error) {
	list, ok := i.sorted[category]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown category %q", category)
	}
	out := make([]string, len(list))
	copy(out, list)
	return out, nil
}

// Count returns the number of champions satisfying the category
func (i *Index) Count(category string) (int, error) {
	list, ok := i.sorted[category]
	if !ok {
		return 0, errors.InvalidArgumentf("unknown category %q", category)
	}
	return len(list), nil
}

// Intersect returns the sorted names of champions satisfying both categories
func (i *Index) Intersect(a, b string) ([]string, error) {
	left, ok := i.sorted[a]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown category %q", a)
	}
	right, ok := i.matches[b]
	if !ok {
		return nil, errors.InvalidArgumentf("unknown category %q", b)
	}
	out := make([]string, 0)
	for _, name := range left {
		if _, hit := right[name]; hit {
			out = append(out, name)
		}
	}
	return out, nil
}

// Viable returns every category with at least one match, in catalog order
func (i *Index) Viable() []string {
	out := make([]string, 0, len(i.sorted))
	for _, cat := range i.catalog.Categories() {
		if len(i.sorted[cat.Name]) > 0 {
			out = append(out, cat.Name)
		}
	}
	return out
}

// EmptyCategories groups the categories that no champion satisfies by type id
func (i *Index) EmptyCategories() map[string][]string {
	out := make(map[string][]string)
	for _, cat := range i.catalog.Categories() {
		if len(i.sorted[cat.Name]) == 0 {
			out[cat.Type] = append(out[cat.Type], cat.Name)
		}
	}
	return out
}
