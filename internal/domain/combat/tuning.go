package combat

const (
	criticalRoll       = 20
	fumbleRoll         = 1
	criticalMultiplier = 2

	baseArmorClass         = 10
	armorMitigationDivisor = 4
	minHitDamage           = 1

	combatSeedSalt = 7349
)
