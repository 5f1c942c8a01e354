// Package entities provides core data structures for champion-grid.
package entities

import "github.com/KirkDiggler/rpg-toolkit/core"

// EntityTypeChampion is the rpg-toolkit entity type reported by champions
const EntityTypeChampion = "champion"

// AbilitySlot identifies one of the five ability slots of a champion
type AbilitySlot string

// Ability slots
const (
	SlotPassive AbilitySlot = "passive"
	SlotQ       AbilitySlot = "q"
	SlotW       AbilitySlot = "w"
	SlotE       AbilitySlot = "e"
	SlotR       AbilitySlot = "r"
)

// AbilitySlots lists every slot in display order
var AbilitySlots = []AbilitySlot{SlotPassive, SlotQ, SlotW, SlotE, SlotR}

// AbilityFlag names a boolean trait carried by an ability
type AbilityFlag string

// Ability flags understood by the catalog
const (
	FlagPassive           AbilityFlag = "isPassive"
	FlagThreeHitPassive   AbilityFlag = "hasThreeHitPassive"
	FlagAutoAttackReset   AbilityFlag = "hasAutoAttackReset"
	FlagCharges           AbilityFlag = "hasCharges"
	FlagHardCC            AbilityFlag = "hasHardCC"
	FlagSoftCC            AbilityFlag = "hasSoftCC"
	FlagSlow              AbilityFlag = "hasSlow"
	FlagGround            AbilityFlag = "hasGround"
	FlagRoot              AbilityFlag = "hasRoot"
	FlagStun              AbilityFlag = "hasStun"
	FlagSilence           AbilityFlag = "hasSilence"
	FlagChangingAbilities AbilityFlag = "hasChangingAbilities"
	FlagDamageOverTime    AbilityFlag = "hasDamageOverTime"
	FlagAreaOfEffect      AbilityFlag = "hasAreaOfEffect"
)

// AbilityFlags holds the trait flags of a single ability
type AbilityFlags struct {
	IsPassive            bool `json:"isPassive,omitempty" yaml:"isPassive,omitempty"`
	HasThreeHitPassive   bool `json:"hasThreeHitPassive,omitempty" yaml:"hasThreeHitPassive,omitempty"`
	HasAutoAttackReset   bool `json:"hasAutoAttackReset,omitempty" yaml:"hasAutoAttackReset,omitempty"`
	HasCharges           bool `json:"hasCharges,omitempty" yaml:"hasCharges,omitempty"`
	HasHardCC            bool `json:"hasHardCC,omitempty" yaml:"hasHardCC,omitempty"`
	HasSoftCC            bool `json:"hasSoftCC,omitempty" yaml:"hasSoftCC,omitempty"`
	HasSlow              bool `json:"hasSlow,omitempty" yaml:"hasSlow,omitempty"`
	HasGround            bool `json:"hasGround,omitempty" yaml:"hasGround,omitempty"`
	HasRoot              bool `json:"hasRoot,omitempty" yaml:"hasRoot,omitempty"`
	HasStun              bool `json:"hasStun,omitempty" yaml:"hasStun,omitempty"`
	HasSilence           bool `json:"hasSilence,omitempty" yaml:"hasSilence,omitempty"`
	HasChangingAbilities bool `json:"hasChangingAbilities,omitempty" yaml:"hasChangingAbilities,omitempty"`
	HasDamageOverTime    bool `json:"hasDamageOverTime,omitempty" yaml:"hasDamageOverTime,omitempty"`
	HasAreaOfEffect      bool `json:"hasAreaOfEffect,omitempty" yaml:"hasAreaOfEffect,omitempty"`
}

// Has reports whether the given flag is set. Unknown flags are never set.
func (f AbilityFlags) Has(flag AbilityFlag) bool {
	switch flag {
	case FlagPassive:
		return f.IsPassive
	case FlagThreeHitPassive:
		return f.HasThreeHitPassive
	case FlagAutoAttackReset:
		return f.HasAutoAttackReset
	case FlagCharges:
		return f.HasCharges
	case FlagHardCC:
		return f.HasHardCC
	case FlagSoftCC:
		return f.HasSoftCC
	case FlagSlow:
		return f.HasSlow
	case FlagGround:
		return f.HasGround
	case FlagRoot:
		return f.HasRoot
	case FlagStun:
		return f.HasStun
	case FlagSilence:
		return f.HasSilence
	case FlagChangingAbilities:
		return f.HasChangingAbilities
	case FlagDamageOverTime:
		return f.HasDamageOverTime
	case FlagAreaOfEffect:
		return f.HasAreaOfEffect
	default:
		return false
	}
}

// Ability is one ability slot of a champion
type Ability struct {
	Name  string       `json:"name,omitempty" yaml:"name,omitempty"`
	Flags AbilityFlags `json:"flags" yaml:"flags"`
}

// Champion is a playable character with the attributes categories are matched against.
// Champions are loaded once and never mutated afterwards.
type Champion struct {
	Name              string                  `json:"name" yaml:"name"`
	Regions           []string                `json:"region,omitempty" yaml:"region,omitempty"`
	Classes           []string                `json:"class,omitempty" yaml:"class,omitempty"`
	Positions         []string                `json:"positions,omitempty" yaml:"positions,omitempty"`
	Resource          string                  `json:"resource,omitempty" yaml:"resource,omitempty"`
	Species           []string                `json:"species,omitempty" yaml:"species,omitempty"`
	PrimaryDamageType string                  `json:"primaryDamageType,omitempty" yaml:"primaryDamageType,omitempty"`
	HasTrueDamage     bool                    `json:"hasTrueDamage,omitempty" yaml:"hasTrueDamage,omitempty"`
	AttackRange       *int                    `json:"range,omitempty" yaml:"range,omitempty"`
	MoveSpeed         *int                    `json:"moveSpeed,omitempty" yaml:"moveSpeed,omitempty"`
	ReleaseSeason     *int                    `json:"releaseSeason,omitempty" yaml:"releaseSeason,omitempty"`
	ModelSize         *int                    `json:"modelSize,omitempty" yaml:"modelSize,omitempty"`
	Abilities         map[AbilitySlot]Ability `json:"abilities,omitempty" yaml:"abilities,omitempty"`
	SkinLines         []string                `json:"skinLines,omitempty" yaml:"skinLines,omitempty"`
}

// GetID returns the champion's name, which is unique within a dataset
func (c *Champion) GetID() string {
	return c.Name
}

// GetType returns the entity type for rpg-toolkit
func (c *Champion) GetType() string {
	return EntityTypeChampion
}

// Ability returns the ability in the given slot and whether the slot is present
func (c *Champion) Ability(slot AbilitySlot) (Ability, bool) {
	if c.Abilities == nil {
		return Ability{}, false
	}
	a, ok := c.Abilities[slot]
	return a, ok
}

// Compile-time check that champions can travel through rpg-toolkit APIs
var _ core.Entity = (*Champion)(nil)
