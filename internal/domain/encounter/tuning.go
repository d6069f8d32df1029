package encounter

const (
	MaxLevel = 5

	baseHealthFloor  = 20
	baseHealthPerLvl = 10
	baseDamageFloor  = 3
	baseDamagePerLvl = 2
	baseArmorFloor   = 8

	// Tier bands on a single [0,1) draw, checked rarest first with half-open
	// upper bounds so exactly one band matches.
	tierBandLegendary = 0.90
	tierBandRare      = 0.75
	tierBandUncommon  = 0.50

	TreasureGoldMin = 10
	TreasureGoldMax = 100
	TreasureXPMin   = 5
	TreasureXPMax   = 50

	rewardGoldPerLevel = 8
	rewardXPPerLevel   = 12
)

type tierMultiplier struct {
	Health float64
	Damage float64
	Armor  float64
	Reward float64
}

var tierMultipliers = map[Tier]tierMultiplier{
	TierCommon:    {Health: 1.0, Damage: 1.0, Armor: 1.0, Reward: 1.0},
	TierUncommon:  {Health: 1.25, Damage: 1.2, Armor: 1.1, Reward: 1.5},
	TierRare:      {Health: 1.6, Damage: 1.45, Armor: 1.25, Reward: 2.0},
	TierLegendary: {Health: 2.2, Damage: 1.8, Armor: 1.5, Reward: 4.0},
}

var monsterNames = []string{
	"Gnarlfang",
	"Mirewalker",
	"Ashwing",
	"Duskhowler",
	"Stonemaw",
	"Cinderjack",
	"Thornback",
	"Veilstalker",
}

func baseHealth(level int) int { return baseHealthFloor + level*baseHealthPerLvl }
func baseDamage(level int) int { return baseDamageFloor + level*baseDamagePerLvl }
func baseArmor(level int) int  { return baseArmorFloor + level }

// RewardFor returns the gold and XP granted for defeating a monster in
// combat, scaled by level and tier.
func RewardFor(m MonsterInstance) (gold, xp int) {
	mult := tierMultipliers[m.Tier].Reward
	if mult == 0 {
		mult = 1
	}
	gold = int(float64(m.Level*rewardGoldPerLevel) * mult)
	xp = int(float64(m.Level*rewardXPPerLevel) * mult)
	return gold, xp
}
