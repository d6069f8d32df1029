package encounter

import "geoquest/internal/domain/world"

type Category string

const (
	CategoryMonster  Category = "monster"
	CategoryNPC      Category = "npc"
	CategoryShop     Category = "shop"
	CategoryTreasure Category = "treasure"
	CategoryDungeon  Category = "dungeon"
	CategoryQuest    Category = "quest"
	CategoryGuild    Category = "guild"
	CategoryCastle   Category = "castle"
)

// POI is point-of-interest placement data produced by the external
// world-content service. The generator only reads it.
type POI struct {
	ID       string      `json:"id"`
	Name     string      `json:"name,omitempty"`
	Category Category    `json:"category"`
	Pos      world.Point `json:"pos"`
	Seed     *int        `json:"seed,omitempty"`
}

type Tier string

const (
	TierCommon    Tier = "common"
	TierUncommon  Tier = "uncommon"
	TierRare      Tier = "rare"
	TierLegendary Tier = "legendary"
)

// MonsterInstance lives for a single combat. Nothing here is persisted by the
// generator; defeated-state bookkeeping belongs to the session layer.
type MonsterInstance struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Tier   Tier   `json:"tier"`
	Level  int    `json:"level"`
	Seed   int    `json:"seed"`
	Health int    `json:"health"`
	Damage int    `json:"damage"`
	Armor  int    `json:"armor"`
}

type TreasureInstance struct {
	ID   string `json:"id"`
	Gold int    `json:"gold"`
	XP   int    `json:"xp"`
}

// Encounter is the category-tagged result of materializing a POI. Exactly one
// of the payload pointers is set.
type Encounter struct {
	Category Category          `json:"category"`
	Monster  *MonsterInstance  `json:"monster,omitempty"`
	Treasure *TreasureInstance `json:"treasure,omitempty"`
}
