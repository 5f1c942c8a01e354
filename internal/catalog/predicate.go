package catalog

import (
	"strings"

	"github.com/KirkDiggler/champion-grid/internal/entities"
)

// PredicateKind enumerates the shapes a category predicate can take
type PredicateKind string

// Predicate kinds
const (
	KindMembership  PredicateKind = "membership"
	KindEquals      PredicateKind = "equals"
	KindRange       PredicateKind = "range"
	KindTrueDamage  PredicateKind = "true_damage"
	KindSlotPresent PredicateKind = "slot_present"
	KindSlotFlag    PredicateKind = "slot_flag"
	KindAnyFlag     PredicateKind = "any_flag"
	KindFlagCount   PredicateKind = "flag_count"
	KindSkinCount   PredicateKind = "skin_count"
	KindSkinLine    PredicateKind = "skin_line"
	KindNever       PredicateKind = "never"
)

// Attribute names a champion field a predicate reads
type Attribute string

// Champion attributes
const (
	AttrRegion        Attribute = "region"
	AttrClass         Attribute = "class"
	AttrPosition      Attribute = "positions"
	AttrSpecies       Attribute = "species"
	AttrResource      Attribute = "resource"
	AttrDamageType    Attribute = "primaryDamageType"
	AttrRange         Attribute = "range"
	AttrModelSize     Attribute = "modelSize"
	AttrReleaseSeason Attribute = "releaseSeason"
	AttrMoveSpeed     Attribute = "moveSpeed"
)

// Predicate decides whether a champion belongs to a category. The set of
// implementations is closed; build them with the constructors in this file.
type Predicate interface {
	Matches(c *entities.Champion) bool
	Kind() PredicateKind
	sealed()
}

func stringSet(c *entities.Champion, attr Attribute) []string {
	switch attr {
	case AttrRegion:
		return c.Regions
	case AttrClass:
		return c.Classes
	case AttrPosition:
		return c.Positions
	case AttrSpecies:
		return c.Species
	default:
		return nil
	}
}

func stringValue(c *entities.Champion, attr Attribute) string {
	switch attr {
	case AttrResource:
		return c.Resource
	case AttrDamageType:
		return c.PrimaryDamageType
	default:
		return ""
	}
}

func intValue(c *entities.Champion, attr Attribute) (int, bool) {
	var v *int
	switch attr {
	case AttrRange:
		v = c.AttackRange
	case AttrModelSize:
		v = c.ModelSize
	case AttrReleaseSeason:
		v = c.ReleaseSeason
	case AttrMoveSpeed:
		v = c.MoveSpeed
	}
	if v == nil {
		return 0, false
	}
	return *v, true
}

type membership struct {
	attr  Attribute
	value string
}

// Membership matches champions whose set-valued attribute contains value
func Membership(attr Attribute, value string) Predicate {
	return membership{attr: attr, value: value}
}

func (p membership) Matches(c *entities.Champion) bool {
	for _, v := range stringSet(c, p.attr) {
		if v == p.value {
			return true
		}
	}
	return false
}

func (membership) Kind() PredicateKind { return KindMembership }
func (membership) sealed()             {}

type equals struct {
	attr  Attribute
	value string
}

// Equals matches champions whose single-valued attribute equals value
func Equals(attr Attribute, value string) Predicate {
	return equals{attr: attr, value: value}
}

func (p equals) Matches(c *entities.Champion) bool {
	v := stringValue(c, p.attr)
	return v != "" && v == p.value
}

func (equals) Kind() PredicateKind { return KindEquals }
func (equals) sealed()             {}

// Bounds describes a numeric interval. A nil bound is unbounded on that side.
type Bounds struct {
	Min          *int
	Max          *int
	MaxInclusive bool
}

type intRange struct {
	attr   Attribute
	bounds Bounds
}

// Range matches champions whose numeric attribute falls inside bounds. The
// lower bound is always inclusive. Missing attributes never match.
func Range(attr Attribute, bounds Bounds) Predicate {
	return intRange{attr: attr, bounds: bounds}
}

// Below is the bounds (-inf, max)
func Below(upper int) Bounds { return Bounds{Max: &upper} }

// AtLeast is the bounds [min, +inf)
func AtLeast(lower int) Bounds { return Bounds{Min: &lower} }

// HalfOpen is the bounds [min, max)
func HalfOpen(lower, upper int) Bounds { return Bounds{Min: &lower, Max: &upper} }

// Closed is the bounds [min, max]
func Closed(lower, upper int) Bounds {
	return Bounds{Min: &lower, Max: &upper, MaxInclusive: true}
}

// Exactly is the bounds [v, v]
func Exactly(v int) Bounds { return Closed(v, v) }

// Contains reports whether v lies inside the bounds
func (b Bounds) Contains(v int) bool {
	if b.Min != nil && v < *b.Min {
		return false
	}
	if b.Max != nil {
		if b.MaxInclusive {
			return v <= *b.Max
		}
		return v < *b.Max
	}
	return true
}

func (p intRange) Matches(c *entities.Champion) bool {
	v, ok := intValue(c, p.attr)
	if !ok {
		return false
	}
	return p.bounds.Contains(v)
}

func (intRange) Kind() PredicateKind { return KindRange }
func (intRange) sealed()             {}

type trueDamage struct{}

// TrueDamage matches champions flagged as dealing true damage
func TrueDamage() Predicate {
	return trueDamage{}
}

func (trueDamage) Matches(c *entities.Champion) bool { return c.HasTrueDamage }
func (trueDamage) Kind() PredicateKind               { return KindTrueDamage }
func (trueDamage) sealed()                           {}

type slotPresent struct {
	slot entities.AbilitySlot
}

// SlotPresent matches champions that have an ability in slot
func SlotPresent(slot entities.AbilitySlot) Predicate {
	return slotPresent{slot: slot}
}

func (p slotPresent) Matches(c *entities.Champion) bool {
	_, ok := c.Ability(p.slot)
	return ok
}

func (slotPresent) Kind() PredicateKind { return KindSlotPresent }
func (slotPresent) sealed()             {}

type slotFlag struct {
	slot entities.AbilitySlot
	flag entities.AbilityFlag
}

// SlotFlag matches champions whose ability in slot carries flag
func SlotFlag(slot entities.AbilitySlot, flag entities.AbilityFlag) Predicate {
	return slotFlag{slot: slot, flag: flag}
}

func (p slotFlag) Matches(c *entities.Champion) bool {
	a, ok := c.Ability(p.slot)
	return ok && a.Flags.Has(p.flag)
}

func (slotFlag) Kind() PredicateKind { return KindSlotFlag }
func (slotFlag) sealed()             {}

type anyFlag struct {
	flag entities.AbilityFlag
}

// AnyFlag matches champions with at least one ability carrying flag
func AnyFlag(flag entities.AbilityFlag) Predicate {
	return anyFlag{flag: flag}
}

func (p anyFlag) Matches(c *entities.Champion) bool {
	for _, a := range c.Abilities {
		if a.Flags.Has(p.flag) {
			return true
		}
	}
	return false
}

func (anyFlag) Kind() PredicateKind { return KindAnyFlag }
func (anyFlag) sealed()             {}

type flagCount struct {
	flags  []entities.AbilityFlag
	bounds Bounds
}

// FlagCount counts the abilities carrying any of flags and matches when the
// count falls inside bounds. Champions without ability data, a nil or empty
// ability map, never match.
func FlagCount(bounds Bounds, flags ...entities.AbilityFlag) Predicate {
	return flagCount{flags: flags, bounds: bounds}
}

func (p flagCount) Matches(c *entities.Champion) bool {
	if len(c.Abilities) == 0 {
		return false
	}
	count := 0
	for _, a := range c.Abilities {
		for _, f := range p.flags {
			if a.Flags.Has(f) {
				count++
				break
			}
		}
	}
	return p.bounds.Contains(count)
}

func (flagCount) Kind() PredicateKind { return KindFlagCount }
func (flagCount) sealed()             {}

type skinCount struct {
	bounds Bounds
}

// SkinCount matches champions whose number of skin lines falls inside bounds.
// Champions without skin data never match.
func SkinCount(bounds Bounds) Predicate {
	return skinCount{bounds: bounds}
}

func (p skinCount) Matches(c *entities.Champion) bool {
	if c.SkinLines == nil {
		return false
	}
	return p.bounds.Contains(len(c.SkinLines))
}

func (skinCount) Kind() PredicateKind { return KindSkinCount }
func (skinCount) sealed()             {}

type skinLine struct {
	prefix string
}

// SkinLine matches champions with a skin line starting with prefix, ignoring case
func SkinLine(prefix string) Predicate {
	return skinLine{prefix: strings.ToLower(prefix)}
}

func (p skinLine) Matches(c *entities.Champion) bool {
	for _, line := range c.SkinLines {
		if strings.HasPrefix(strings.ToLower(line), p.prefix) {
			return true
		}
	}
	return false
}

func (skinLine) Kind() PredicateKind { return KindSkinLine }
func (skinLine) sealed()             {}

type never struct{}

// Never matches nothing. Used for categories whose backing data is not collected yet.
func Never() Predicate {
	return never{}
}

func (never) Matches(*entities.Champion) bool { return false }
func (never) Kind() PredicateKind             { return KindNever }
func (never) sealed()                         {}
