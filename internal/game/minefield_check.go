package game

import (
	"fmt"
	"math/rand"

	"novaturn/internal/model"
)

// CheckMinefields :
// After a fleet moves, checks every enemy minefield whose radius now
// covers its new position and rolls once per field against the mine
// type's hit chance multiplied by the fleet's warp; the distance the
// fleet travelled through the field does not change the roll.
// Damage resolution is left as a testable property, not a
// fixed formula: here it removes a deterministic
// fraction of the fleet's total armour, scaled by the mine type and
// taken from the heaviest token first, which callers can swap out
// without touching the hit-detection logic above it.
func CheckMinefields(rng *rand.Rand, empireID int, fleet *model.Fleet, warp int, fields map[uint64]*model.Minefield) []model.Message {
	var msgs []model.Message

	for _, field := range fields {
		if field.Owner == empireID {
			continue
		}
		if !field.Covers(fleet.Position) {
			continue
		}

		chance := field.MineType.HitChance() * float64(warp)
		if chance > 1 {
			chance = 1
		}

		if rng.Float64() < chance {
			damage := minefieldDamage(field.MineType, fleet)
			applyFleetDamage(fleet, damage)

			msgs = append(msgs, model.NewFleetMessage(empireID, model.MessageMinefieldHit,
				fmt.Sprintf("%s hit a minefield and took %d damage.", fleet.Name, damage), fleet.Key))
		}
	}

	return msgs
}

// minefieldDamage :
// A deterministic damage scale by mine type (Heavy 15%, Standard 5%,
// SpeedBump 2%), applied against the fleet's total current armour.
func minefieldDamage(mineType model.MineType, fleet *model.Fleet) int {
	var percent float64
	switch mineType {
	case model.MineHeavy:
		percent = 0.15
	case model.MineSpeedBump:
		percent = 0.02
	default:
		percent = 0.05
	}

	total := 0
	for _, t := range fleet.Tokens {
		total += t.Armour
	}
	return int(float64(total) * percent)
}

// applyFleetDamage :
// Spreads `damage` armour loss across the fleet's tokens, heaviest
// token first, destroying tokens whose armour reaches zero.
func applyFleetDamage(fleet *model.Fleet, damage int) {
	for damage > 0 {
		var target *model.ShipToken
		var targetKey uint64
		for key, t := range fleet.Tokens {
			if t.Armour <= 0 {
				continue
			}
			if target == nil || t.Armour > target.Armour {
				target = t
				targetKey = key
			}
		}
		if target == nil {
			return
		}

		hit := damage
		if hit > target.Armour {
			hit = target.Armour
		}
		target.Armour -= hit
		damage -= hit

		if target.Armour <= 0 {
			delete(fleet.Tokens, targetKey)
		}
	}
}
