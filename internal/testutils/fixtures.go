package testutils

import (
	"fmt"

	"github.com/KirkDiggler/champion-grid/internal/catalog"
	"github.com/KirkDiggler/champion-grid/internal/entities"
)

// Ability shorthands for fixtures
var (
	hardCC = entities.AbilityFlags{HasHardCC: true}
	softCC = entities.AbilityFlags{HasSoftCC: true, HasSlow: true}
	noFlag = entities.AbilityFlags{}
)

// IntPtr returns a pointer to v
func IntPtr(v int) *int {
	return &v
}

// CreateTestChampions returns a small, realistic roster with every field populated
// for at least one champion and a few fields missing on purpose
func CreateTestChampions() []*entities.Champion {
	return []*entities.Champion{
		{
			Name:              "Ahri",
			Regions:           []string{"Ionia"},
			Classes:           []string{"Mage", "Assassin"},
			Positions:         []string{"Mid"},
			Resource:          "Mana",
			Species:           []string{"Vastaya"},
			PrimaryDamageType: "AP",
			AttackRange:       IntPtr(550),
			MoveSpeed:         IntPtr(330),
			ReleaseSeason:     IntPtr(1),
			ModelSize:         IntPtr(65),
			Abilities: map[entities.AbilitySlot]entities.Ability{
				entities.SlotPassive: {Name: "Essence Theft", Flags: noFlag},
				entities.SlotQ:       {Name: "Orb of Deception", Flags: noFlag},
				entities.SlotW:       {Name: "Fox-Fire", Flags: noFlag},
				entities.SlotE:       {Name: "Charm", Flags: hardCC},
				entities.SlotR:       {Name: "Spirit Rush", Flags: entities.AbilityFlags{HasCharges: true}},
			},
			SkinLines: []string{"Arcade", "K/DA", "Spirit Blossom", "Star Guardian", "Coven", "Popstar"},
		},
		{
			Name:              "Zed",
			Regions:           []string{"Ionia"},
			Classes:           []string{"Assassin"},
			Positions:         []string{"Mid", "Jungle"},
			Resource:          "Energy",
			Species:           []string{"Human"},
			PrimaryDamageType: "AD",
			AttackRange:       IntPtr(125),
			MoveSpeed:         IntPtr(345),
			ReleaseSeason:     IntPtr(2),
			ModelSize:         IntPtr(65),
			Abilities: map[entities.AbilitySlot]entities.Ability{
				entities.SlotPassive: {Name: "Contempt for the Weak", Flags: noFlag},
				entities.SlotQ:       {Name: "Razor Shuriken", Flags: noFlag},
				entities.SlotW:       {Name: "Living Shadow", Flags: noFlag},
				entities.SlotE:       {Name: "Shadow Slash", Flags: softCC},
				entities.SlotR:       {Name: "Death Mark", Flags: noFlag},
			},
			SkinLines: []string{"Project", "Blood Moon", "PROJECT: Zed Prestige"},
		},
		{
			Name:              "Garen",
			Regions:           []string{"Demacia"},
			Classes:           []string{"Fighter", "Tank"},
			Positions:         []string{"Top"},
			Resource:          "No Resource",
			Species:           []string{"Human"},
			PrimaryDamageType: "AD",
			HasTrueDamage:     true,
			AttackRange:       IntPtr(175),
			MoveSpeed:         IntPtr(340),
			ReleaseSeason:     IntPtr(0),
			ModelSize:         IntPtr(65),
			Abilities: map[entities.AbilitySlot]entities.Ability{
				entities.SlotPassive: {Name: "Perseverance", Flags: noFlag},
				entities.SlotQ:       {Name: "Decisive Strike", Flags: entities.AbilityFlags{HasSilence: true, HasAutoAttackReset: true}},
				entities.SlotW:       {Name: "Courage", Flags: noFlag},
				entities.SlotE:       {Name: "Judgment", Flags: entities.AbilityFlags{HasAreaOfEffect: true}},
				entities.SlotR:       {Name: "Demacian Justice", Flags: noFlag},
			},
			SkinLines: []string{"God-King", "Battle Academia"},
		},
		{
			Name:              "Lux",
			Regions:           []string{"Demacia"},
			Classes:           []string{"Mage", "Support"},
			Positions:         []string{"Mid", "Support"},
			Resource:          "Mana",
			Species:           []string{"Human"},
			PrimaryDamageType: "AP",
			AttackRange:       IntPtr(550),
			MoveSpeed:         IntPtr(330),
			ReleaseSeason:     IntPtr(1),
			ModelSize:         IntPtr(60),
			Abilities: map[entities.AbilitySlot]entities.Ability{
				entities.SlotPassive: {Name: "Illumination", Flags: noFlag},
				entities.SlotQ:       {Name: "Light Binding", Flags: entities.AbilityFlags{HasHardCC: true, HasRoot: true}},
				entities.SlotW:       {Name: "Prismatic Barrier", Flags: noFlag},
				entities.SlotE:       {Name: "Lucent Singularity", Flags: softCC},
				entities.SlotR:       {Name: "Final Spark", Flags: entities.AbilityFlags{HasAreaOfEffect: true}},
			},
			SkinLines: []string{"Star Guardian", "Battle Academia", "Elementalist", "Cosmic", "Space Groove", "Porcelain", "Lunar"},
		},
		{
			Name:              "Jinx",
			Regions:           []string{"Zaun"},
			Classes:           []string{"Marksman"},
			Positions:         []string{"Bot"},
			Resource:          "Mana",
			Species:           []string{"Human"},
			PrimaryDamageType: "AD",
			AttackRange:       IntPtr(525),
			MoveSpeed:         IntPtr(325),
			ReleaseSeason:     IntPtr(3),
			ModelSize:         IntPtr(60),
			Abilities: map[entities.AbilitySlot]entities.Ability{
				entities.SlotPassive: {Name: "Get Excited!", Flags: noFlag},
				entities.SlotQ:       {Name: "Switcheroo!", Flags: entities.AbilityFlags{HasChangingAbilities: true}},
				entities.SlotW:       {Name: "Zap!", Flags: softCC},
				entities.SlotE:       {Name: "Flame Chompers!", Flags: entities.AbilityFlags{HasHardCC: true, HasRoot: true}},
				entities.SlotR:       {Name: "Super Mega Death Rocket!", Flags: entities.AbilityFlags{HasAreaOfEffect: true}},
			},
			SkinLines: []string{"Star Guardian", "Odyssey", "PROJECT", "Arcane"},
		},
		{
			Name:              "Thresh",
			Regions:           []string{"Shadow Isles"},
			Classes:           []string{"Support", "Tank"},
			Positions:         []string{"Support"},
			Resource:          "Mana",
			Species:           []string{"Undead", "Spirit"},
			PrimaryDamageType: "AP",
			AttackRange:       IntPtr(450),
			MoveSpeed:         IntPtr(330),
			ReleaseSeason:     IntPtr(3),
			ModelSize:         IntPtr(85),
			Abilities: map[entities.AbilitySlot]entities.Ability{
				entities.SlotPassive: {Name: "Damnation", Flags: noFlag},
				entities.SlotQ:       {Name: "Death Sentence", Flags: entities.AbilityFlags{HasHardCC: true, HasStun: true}},
				entities.SlotW:       {Name: "Dark Passage", Flags: noFlag},
				entities.SlotE:       {Name: "Flay", Flags: hardCC},
				entities.SlotR:       {Name: "The Box", Flags: softCC},
			},
			SkinLines: []string{"Blood Moon", "Championship", "Dark Star", "High Noon", "Pulsefire", "Spirit Blossom"},
		},
		{
			Name:              "Darius",
			Regions:           []string{"Noxus"},
			Classes:           []string{"Fighter", "Tank"},
			Positions:         []string{"Top"},
			Resource:          "Mana",
			Species:           []string{"Human"},
			PrimaryDamageType: "AD",
			HasTrueDamage:     true,
			AttackRange:       IntPtr(175),
			MoveSpeed:         IntPtr(340),
			ReleaseSeason:     IntPtr(2),
			ModelSize:         IntPtr(80),
			Abilities: map[entities.AbilitySlot]entities.Ability{
				entities.SlotPassive: {Name: "Hemorrhage", Flags: entities.AbilityFlags{HasDamageOverTime: true}},
				entities.SlotQ:       {Name: "Decimate", Flags: entities.AbilityFlags{HasAreaOfEffect: true}},
				entities.SlotW:       {Name: "Crippling Strike", Flags: entities.AbilityFlags{HasSlow: true, HasSoftCC: true, HasAutoAttackReset: true}},
				entities.SlotE:       {Name: "Apprehend", Flags: hardCC},
				entities.SlotR:       {Name: "Noxian Guillotine", Flags: noFlag},
			},
			SkinLines: []string{"High Noon", "God-King", "Crime City Nightmare"},
		},
		{
			Name:              "Teemo",
			Regions:           []string{"Bandle City"},
			Classes:           []string{"Marksman", "Assassin"},
			Positions:         []string{"Top"},
			Resource:          "Mana",
			Species:           []string{"Yordle"},
			PrimaryDamageType: "AP",
			AttackRange:       IntPtr(500),
			MoveSpeed:         IntPtr(330),
			ReleaseSeason:     IntPtr(0),
			ModelSize:         IntPtr(55),
			Abilities: map[entities.AbilitySlot]entities.Ability{
				entities.SlotPassive: {Name: "Guerrilla Warfare", Flags: noFlag},
				entities.SlotQ:       {Name: "Blinding Dart", Flags: softCC},
				entities.SlotW:       {Name: "Move Quick", Flags: noFlag},
				entities.SlotE:       {Name: "Toxic Shot", Flags: entities.AbilityFlags{HasDamageOverTime: true}},
				entities.SlotR:       {Name: "Noxious Trap", Flags: entities.AbilityFlags{HasCharges: true, HasSlow: true, HasSoftCC: true}},
			},
			SkinLines: []string{"Omega Squad"},
		},
		{
			// Sparse on purpose: missing numeric fields and ability data
			Name:      "Briar",
			Regions:   []string{"Noxus"},
			Classes:   []string{"Fighter", "Assassin"},
			Positions: []string{"Jungle"},
			Resource:  "Health",
			Species:   []string{"Human"},
		},
	}
}

// Ample catalog category names
var (
	AmpleRows    = []string{"Alpha 1", "Alpha 2", "Alpha 3", "Alpha 4"}
	AmpleColumns = []string{"Beta 1", "Beta 2", "Beta 3", "Beta 4"}
)

// CreateAmpleDataset returns count champions that satisfy every category of the
// returned catalog, so every row x column pairing has solutions. Every pair
// scores 0 because each intersection is the whole dataset.
func CreateAmpleDataset(count int) ([]*entities.Champion, *catalog.Catalog) {
	champions := make([]*entities.Champion, 0, count)
	for i := 0; i < count; i++ {
		champions = append(champions, &entities.Champion{
			Name:    fmt.Sprintf("Champion %02d", i+1),
			Classes: AmpleRows,
			Regions: AmpleColumns,
		})
	}

	defs := []catalog.TypeDefinition{
		{ID: "alpha", Name: "Alpha"},
		{ID: "beta", Name: "Beta"},
	}
	for _, name := range AmpleRows {
		defs[0].Categories = append(defs[0].Categories, catalog.Definition{
			Name: name, Predicate: catalog.Membership(catalog.AttrClass, name),
		})
	}
	for _, name := range AmpleColumns {
		defs[1].Categories = append(defs[1].Categories, catalog.Definition{
			Name: name, Predicate: catalog.Membership(catalog.AttrRegion, name),
		})
	}

	c, err := catalog.New("test", defs)
	if err != nil {
		panic(err)
	}
	return champions, c
}

// CreateDisjointDataset returns count champions, each matching exactly one
// category of its own. No two categories share a champion, so no grid can
// ever have all nine cells satisfied.
func CreateDisjointDataset(count int) ([]*entities.Champion, *catalog.Catalog) {
	champions := make([]*entities.Champion, 0, count)
	def := catalog.TypeDefinition{ID: "solo", Name: "Solo"}
	for i := 0; i < count; i++ {
		tag := fmt.Sprintf("Solo %02d", i+1)
		champions = append(champions, &entities.Champion{
			Name:    fmt.Sprintf("Loner %02d", i+1),
			Classes: []string{tag},
		})
		def.Categories = append(def.Categories, catalog.Definition{
			Name: tag, Predicate: catalog.Membership(catalog.AttrClass, tag),
		})
	}

	c, err := catalog.New("test", []catalog.TypeDefinition{def})
	if err != nil {
		panic(err)
	}
	return champions, c
}
