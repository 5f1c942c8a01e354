package catalog

import (
	"fmt"

	"github.com/KirkDiggler/champion-grid/internal/entities"
)

// DefaultVersion is the revision of the built-in catalog
const DefaultVersion = "2025.1"

// Category type ids
const (
	TypeLocation   = "location"
	TypeRole       = "role"
	TypePosition   = "position"
	TypeResource   = "resource"
	TypeSpecies    = "species"
	TypeDamageType = "damage_type"
	TypeRange      = "range"
	TypeRelease    = "release"
	TypeModelSize  = "model_size"
	TypeMoveSpeed  = "move_speed"
	TypeAbilities  = "abilities"
	TypeSkins      = "skins"
	TypeWeapons    = "weapons"
)

// Range and size band boundaries
const (
	MeleeRangeLimit  = 250
	LongRangeStart   = 500
	SmallModelMin    = 55
	SmallModelMax    = 64
	MediumModelMin   = 65
	MediumModelMax   = 79
	LargeModelMin    = 80
	SlowMoveLimit    = 335
	FastMoveStart    = 345
	LatestSeason     = 14
	preSeasonRelease = 0
)

var (
	regions = []string{
		"Ionia", "Demacia", "Noxus", "Freljord", "Piltover", "Zaun", "Bilgewater",
		"Shurima", "Targon", "Ixtal", "Bandle City", "Shadow Isles", "Void", "Runeterra",
	}
	roles     = []string{"Fighter", "Tank", "Mage", "Assassin", "Marksman", "Support"}
	resources = []string{"Mana", "Energy", "Rage", "Health", "No Resource"}
	species   = []string{
		"Human", "Yordle", "Vastaya", "Darkin", "Voidborn", "Celestial", "God-Warrior",
		"Brackern", "Undead", "Spirit", "Iceborn", "Minotaur", "Yeti", "Dragon", "Is Shapeshifter",
	}
	skinLines = []string{
		"Blood Moon", "Project", "Star Guardian", "High Noon", "Arcade", "Pulsefire", "K/DA",
		"True Damage", "Odyssey", "Battle Academia", "Spirit Blossom", "Coven",
	}
	weapons = []string{"Has Gun", "Has Sword", "Has Bow", "Has Staff", "Has Shield", "Has Claws", "Has Magic"}

	slotLabels = map[entities.AbilitySlot]string{
		entities.SlotQ: "Q",
		entities.SlotW: "W",
		entities.SlotE: "E",
		entities.SlotR: "Ultimate",
	}
	activeSlots = []entities.AbilitySlot{entities.SlotQ, entities.SlotW, entities.SlotE, entities.SlotR}
)

// Default returns the built-in catalog
func Default() *Catalog {
	c, err := New(DefaultVersion, DefaultDefinitions())
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in definitions are invalid: %v", err))
	}
	return c
}

// DefaultDefinitions returns the built-in category types
func DefaultDefinitions() []TypeDefinition {
	return []TypeDefinition{
		{
			ID:          TypeLocation,
			Name:        "Location",
			Description: "Geographic or regional categories",
			Categories:  memberships(AttrRegion, regions),
		},
		{
			ID:          TypeRole,
			Name:        "Role",
			Description: "Champion roles and positions",
			Categories:  memberships(AttrClass, roles),
		},
		{
			ID:          TypePosition,
			Name:        "Position",
			Description: "Champion positions in game",
			Categories: []Definition{
				{Name: "Top", Predicate: Membership(AttrPosition, "Top")},
				{Name: "Jungle", Predicate: Membership(AttrPosition, "Jungle")},
				{Name: "Mid", Predicate: Membership(AttrPosition, "Mid")},
				{Name: "Bot", Predicate: Membership(AttrPosition, "Bot")},
				// "Support" is already the role category
				{Name: "Support Position", Predicate: Membership(AttrPosition, "Support")},
			},
		},
		{
			ID:          TypeResource,
			Name:        "Resource",
			Description: "Primary resource type used by champions",
			Categories:  equalities(AttrResource, resources),
		},
		{
			ID:          TypeSpecies,
			Name:        "Species",
			Description: "Champion species or race",
			Categories:  memberships(AttrSpecies, species),
		},
		{
			ID:          TypeDamageType,
			Name:        "Damage Type",
			Description: "Primary damage type dealt by champions",
			Categories: []Definition{
				{Name: "AD", Predicate: Equals(AttrDamageType, "AD")},
				{Name: "AP", Predicate: Equals(AttrDamageType, "AP")},
				{Name: "Hybrid", Predicate: Equals(AttrDamageType, "Hybrid")},
				{Name: "Has True Damage", Predicate: TrueDamage()},
			},
		},
		{
			ID:          TypeRange,
			Name:        "Range",
			Description: "Attack range categories",
			Categories: []Definition{
				{Name: "Melee (< 250)", Predicate: Range(AttrRange, Below(MeleeRangeLimit))},
				{Name: "Short Range (250-499)", Predicate: Range(AttrRange, HalfOpen(MeleeRangeLimit, LongRangeStart))},
				{Name: "Long Range (500+)", Predicate: Range(AttrRange, AtLeast(LongRangeStart))},
			},
		},
		{
			ID:          TypeRelease,
			Name:        "Release",
			Description: "Champion release timing",
			Categories:  releaseSeasons(),
		},
		{
			ID:          TypeModelSize,
			Name:        "Model Size",
			Description: "Champion model size categories",
			Categories: []Definition{
				{Name: "Small (55-64)", Predicate: Range(AttrModelSize, Closed(SmallModelMin, SmallModelMax))},
				{Name: "Medium (65-79)", Predicate: Range(AttrModelSize, Closed(MediumModelMin, MediumModelMax))},
				{Name: "Large (80+)", Predicate: Range(AttrModelSize, AtLeast(LargeModelMin))},
			},
		},
		{
			ID:          TypeMoveSpeed,
			Name:        "Move Speed",
			Description: "Base movement speed categories",
			Categories: []Definition{
				{Name: "Slow Movement (< 335)", Predicate: Range(AttrMoveSpeed, Below(SlowMoveLimit))},
				{Name: "Average Movement (335-344)", Predicate: Range(AttrMoveSpeed, HalfOpen(SlowMoveLimit, FastMoveStart))},
				{Name: "Fast Movement (345+)", Predicate: Range(AttrMoveSpeed, AtLeast(FastMoveStart))},
			},
		},
		{
			ID:          TypeAbilities,
			Name:        "Abilities",
			Description: "Special ability characteristics",
			Categories:  abilityDefinitions(),
		},
		{
			ID:          TypeSkins,
			Name:        "Skins",
			Description: "Skin-related categories",
			Categories:  skinDefinitions(),
		},
		{
			ID:          TypeWeapons,
			Name:        "Weapons",
			Description: "Champion weapon types",
			Categories:  nevers(weapons),
		},
	}
}

func memberships(attr Attribute, values []string) []Definition {
	defs := make([]Definition, len(values))
	for i, v := range values {
		defs[i] = Definition{Name: v, Predicate: Membership(attr, v)}
	}
	return defs
}

func equalities(attr Attribute, values []string) []Definition {
	defs := make([]Definition, len(values))
	for i, v := range values {
		defs[i] = Definition{Name: v, Predicate: Equals(attr, v)}
	}
	return defs
}

func nevers(names []string) []Definition {
	defs := make([]Definition, len(names))
	for i, n := range names {
		defs[i] = Definition{Name: n, Predicate: Never()}
	}
	return defs
}

func releaseSeasons() []Definition {
	defs := []Definition{
		{Name: "Pre-Season", Predicate: Range(AttrReleaseSeason, Exactly(preSeasonRelease))},
	}
	for season := 1; season <= LatestSeason; season++ {
		defs = append(defs, Definition{
			Name:      fmt.Sprintf("Season %d", season),
			Predicate: Range(AttrReleaseSeason, Exactly(season)),
		})
	}
	return defs
}

// perSlot builds "<prefix> <slot label>" categories for every active slot
func perSlot(prefix string, flag entities.AbilityFlag) []Definition {
	defs := make([]Definition, 0, len(activeSlots))
	for _, slot := range activeSlots {
		defs = append(defs, Definition{
			Name:      fmt.Sprintf("%s %s", prefix, slotLabels[slot]),
			Predicate: SlotFlag(slot, flag),
		})
	}
	return defs
}

func abilityDefinitions() []Definition {
	defs := []Definition{
		{Name: "Has Passive Ability", Predicate: SlotPresent(entities.SlotPassive)},
	}
	defs = append(defs, perSlot("Has Passive", entities.FlagPassive)...)
	defs = append(defs,
		Definition{Name: "Has Three-Hit Passive", Predicate: SlotFlag(entities.SlotPassive, entities.FlagThreeHitPassive)},
		Definition{Name: "Has Auto-Attack Reset", Predicate: AnyFlag(entities.FlagAutoAttackReset)},
		Definition{Name: "Has Ability Charges", Predicate: AnyFlag(entities.FlagCharges)},
	)
	defs = append(defs, perSlot("Has Hard CC on", entities.FlagHardCC)...)
	defs = append(defs,
		Definition{Name: "Has Multiple Hard CC", Predicate: FlagCount(AtLeast(2), entities.FlagHardCC)},
		Definition{Name: "Has Hard CC", Predicate: AnyFlag(entities.FlagHardCC)},
		Definition{Name: "Has No CC", Predicate: FlagCount(Exactly(0), entities.FlagHardCC, entities.FlagSoftCC)},
		Definition{Name: "Has Slows", Predicate: AnyFlag(entities.FlagSlow)},
		Definition{Name: "Has Exactly One CC", Predicate: FlagCount(Exactly(1), entities.FlagHardCC, entities.FlagSoftCC)},
		Definition{Name: "Has Ground", Predicate: AnyFlag(entities.FlagGround)},
		Definition{Name: "Has Root", Predicate: AnyFlag(entities.FlagRoot)},
		Definition{Name: "Has Stun", Predicate: AnyFlag(entities.FlagStun)},
		Definition{Name: "Has Silence", Predicate: AnyFlag(entities.FlagSilence)},
		Definition{Name: "Has Changing Abilities", Predicate: AnyFlag(entities.FlagChangingAbilities)},
		Definition{Name: "Has Damage Over Time", Predicate: AnyFlag(entities.FlagDamageOverTime)},
	)
	defs = append(defs, perSlot("Has Damage Over Time", entities.FlagDamageOverTime)...)
	defs = append(defs, Definition{Name: "Has Area of Effect", Predicate: AnyFlag(entities.FlagAreaOfEffect)})
	defs = append(defs, perSlot("Has Area of Effect", entities.FlagAreaOfEffect)...)
	return defs
}

func skinDefinitions() []Definition {
	defs := []Definition{
		{Name: "Has 2 or Less Skins", Predicate: SkinCount(Closed(0, 2))},
		{Name: "Has 6+ Skins", Predicate: SkinCount(AtLeast(6))},
	}
	for _, line := range skinLines {
		defs = append(defs, Definition{Name: line, Predicate: SkinLine(line)})
	}
	return defs
}
