package encounter

import (
	"errors"
	"fmt"

	"geoquest/internal/domain/worldgen"
)

var ErrUnsupportedCategory = errors.New("unsupported poi category")

// Materialize derives the full encounter payload for a POI. It is a pure
// function of (poi, fallbackSeed): calling it twice with the same arguments
// yields bit-identical instances, on any machine, in any order.
func Materialize(poi POI, fallbackSeed int) (Encounter, error) {
	switch poi.Category {
	case CategoryMonster:
		m, err := materializeMonster(poi, fallbackSeed)
		if err != nil {
			return Encounter{}, err
		}
		return Encounter{Category: CategoryMonster, Monster: m}, nil
	case CategoryTreasure:
		t, err := materializeTreasure(poi, fallbackSeed)
		if err != nil {
			return Encounter{}, err
		}
		return Encounter{Category: CategoryTreasure, Treasure: t}, nil
	default:
		return Encounter{}, fmt.Errorf("%w: %q", ErrUnsupportedCategory, poi.Category)
	}
}

// EffectiveSeed is the POI's fixed seed when present, otherwise a
// deterministic mix of the world seed and the POI coordinate. A fixed seed is
// passed through as-is so stream construction rejects out-of-range values;
// only the derived mix is folded into the seed domain.
func EffectiveSeed(poi POI, fallbackSeed int) int {
	if poi.Seed != nil {
		return *poi.Seed
	}
	return worldgen.Mask31(fallbackSeed + poi.Pos.X*worldgen.CoordHashX + poi.Pos.Y*worldgen.CoordHashY)
}

func materializeMonster(poi POI, fallbackSeed int) (*MonsterInstance, error) {
	seed := EffectiveSeed(poi, fallbackSeed)
	stream, err := worldgen.NewStream(seed)
	if err != nil {
		return nil, err
	}

	level := stream.Intn(MaxLevel) + 1
	if level < 1 {
		level = 1
	}
	tier := tierForDraw(stream.Next())
	mult := tierMultipliers[tier]

	name := monsterNames[stream.Intn(len(monsterNames))]
	if tier == TierLegendary {
		name = "Elder " + name
	}

	return &MonsterInstance{
		ID:     fmt.Sprintf("mon_%d_%d_%d", poi.Pos.X, poi.Pos.Y, seed),
		Name:   name,
		Tier:   tier,
		Level:  level,
		Seed:   seed,
		Health: int(float64(baseHealth(level)) * mult.Health),
		Damage: int(float64(baseDamage(level)) * mult.Damage),
		Armor:  int(float64(baseArmor(level)) * mult.Armor),
	}, nil
}

func materializeTreasure(poi POI, fallbackSeed int) (*TreasureInstance, error) {
	seed := EffectiveSeed(poi, fallbackSeed)
	stream, err := worldgen.NewStream(seed)
	if err != nil {
		return nil, err
	}
	return &TreasureInstance{
		ID:   fmt.Sprintf("tre_%d_%d_%d", poi.Pos.X, poi.Pos.Y, seed),
		Gold: TreasureGoldMin + stream.Intn(TreasureGoldMax-TreasureGoldMin+1),
		XP:   TreasureXPMin + stream.Intn(TreasureXPMax-TreasureXPMin+1),
	}, nil
}

// tierForDraw checks the rarest band first; bands are half-open on the upper
// bound so exactly one matches.
func tierForDraw(r float64) Tier {
	switch {
	case r > tierBandLegendary:
		return TierLegendary
	case r > tierBandRare:
		return TierRare
	case r > tierBandUncommon:
		return TierUncommon
	default:
		return TierCommon
	}
}
