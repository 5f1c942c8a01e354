// Package catalog defines the static set of puzzle categories and the compiled
// predicate each one uses to decide which champions belong to it.
package catalog

import (
	"strings"

	"github.com/KirkDiggler/champion-grid/internal/entities"
	"github.com/KirkDiggler/champion-grid/internal/errors"
)

// Category is a named predicate over champions
type Category struct {
	Name      string
	Type      string
	predicate Predicate
}

// Matches reports whether the champion satisfies the category
func (c *Category) Matches(champion *entities.Champion) bool {
	if champion == nil {
		return false
	}
	return c.predicate.Matches(champion)
}

// Kind returns the shape of the category's predicate
func (c *Category) Kind() PredicateKind {
	return c.predicate.Kind()
}

// Type groups related categories, e.g. every region under "location"
type Type struct {
	ID          string
	Name        string
	Description string
	Categories  []*Category
}

// CategoryNames returns the names of every category in the type, in catalog order
func (t *Type) CategoryNames() []string {
	names := make([]string, len(t.Categories))
	for i, c := range t.Categories {
		names[i] = c.Name
	}
	return names
}

// Definition declares one category of a TypeDefinition
type Definition struct {
	Name      string
	Predicate Predicate
}

// TypeDefinition declares a category type and its categories
type TypeDefinition struct {
	ID          string
	Name        string
	Description string
	Categories  []Definition
}

// Catalog is an immutable, ordered collection of category types
type Catalog struct {
	version    string
	types      []*Type
	categories []*Category
	byName     map[string]*Category
	typeByID   map[string]*Type
}

// New compiles the definitions into a catalog. Category names must be unique
// across the whole catalog because games refer to categories by name only.
func New(version string, defs []TypeDefinition) (*Catalog, error) {
	vb := errors.NewValidationBuilder()
	if strings.TrimSpace(version) == "" {
		vb.RequiredField("version")
	}
	if len(defs) == 0 {
		vb.Field("types", "at least one category type is required")
	}

	c := &Catalog{
		version:  version,
		byName:   make(map[string]*Category),
		typeByID: make(map[string]*Type),
	}

	for i, def := range defs {
		if def.ID == "" {
			vb.Fieldf("types", "type %d has no id", i)
			continue
		}
		if _, dup := c.typeByID[def.ID]; dup {
			vb.Fieldf("types", "duplicate type id %q", def.ID)
			continue
		}

		t := &Type{ID: def.ID, Name: def.Name, Description: def.Description}
		for _, cd := range def.Categories {
			switch {
			case strings.TrimSpace(cd.Name) == "":
				vb.Fieldf("categories", "type %q has a category without a name", def.ID)
				continue
			case cd.Predicate == nil:
				vb.Fieldf("categories", "category %q has no predicate", cd.Name)
				continue
			}
			if existing, dup := c.byName[cd.Name]; dup {
				vb.Fieldf("categories", "category %q declared in both %q and %q", cd.Name, existing.Type, def.ID)
				continue
			}

			cat := &Category{Name: cd.Name, Type: def.ID, predicate: cd.Predicate}
			t.Categories = append(t.Categories, cat)
			c.categories = append(c.categories, cat)
			c.byName[cat.Name] = cat
		}

		c.types = append(c.types, t)
		c.typeByID[t.ID] = t
	}

	if err := vb.Build(); err != nil {
		return nil, errors.Wrap(err, "invalid catalog")
	}

	return c, nil
}

// Version identifies the catalog revision
func (c *Catalog) Version() string {
	return c.version
}

// Types returns the category types in declaration order
func (c *Catalog) Types() []*Type {
	return c.types
}

// Categories returns every category in declaration order
func (c *Catalog) Categories() []*Category {
	return c.categories
}

// Names returns every category name in declaration order
func (c *Catalog) Names() []string {
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}

// Category looks up a category by name
func (c *Catalog) Category(name string) (*Category, bool) {
	cat, ok := c.byName[name]
	return cat, ok
}

// Type looks up a category type by id
func (c *Catalog) Type(id string) (*Type, bool) {
	t, ok := c.typeByID[id]
	return t, ok
}

// TypeOf returns the type id of the named category, or "" if unknown
func (c *Catalog) TypeOf(name string) string {
	if cat, ok := c.byName[name]; ok {
		return cat.Type
	}
	return ""
}

// SameType reports whether two known categories share a type
func (c *Catalog) SameType(a, b string) bool {
	ta, tb := c.TypeOf(a), c.TypeOf(b)
	return ta != "" && ta == tb
}
