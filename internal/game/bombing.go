package game

import (
	"fmt"

	"novaturn/internal/model"
)

// PostBattleContext :
// Collaborators the bombing phase needs to resolve a fleet's design
// stats.
type PostBattleContext struct {
	Empires map[int]*model.EmpireData
	Catalog ComponentCatalog
}

// RunBombing :
// For every bomber fleet in orbit of a star owned by an empire it
// considers hostile, applies the fleet's kill rate reduced by the
// star's defense coverage to the star's colonists. A star bombed to zero colonists reverts to Nobody and
// loses its infrastructure.
func RunBombing(ctx PostBattleContext, world *model.WorldSnapshot) []model.Message {
	var msgs []model.Message

	for _, empire := range world.AllEmpires {
		for _, fleet := range empire.OwnedFleets {
			if fleet.InOrbit == "" {
				continue
			}
			star, ok := world.AllStars[fleet.InOrbit]
			if !ok || !star.IsOwned() || star.Owner == empire.ID {
				continue
			}
			if !isHostile(empire, star.Owner) {
				continue
			}

			killPercent, minKill := fleetBombStrength(ctx, empire, fleet)
			if killPercent <= 0 {
				continue
			}

			coverage := defenseCoverage(star.Defenses)
			killed := int(float64(star.Colonists) * killPercent * (1 - coverage))
			if killed < minKill && star.Colonists > minKill {
				killed = minKill
			}
			if killed <= 0 {
				continue
			}
			if killed > star.Colonists {
				killed = star.Colonists
			}

			star.Colonists -= killed
			msgs = append(msgs, model.NewMessage(star.Owner, model.MessageBombing,
				fmt.Sprintf("%s was bombed, losing %d colonists.", star.Name, killed)))
			msgs = append(msgs, model.NewFleetMessage(empire.ID, model.MessageBombing,
				fmt.Sprintf("%s bombed %s, killing %d colonists.", fleet.Name, star.Name, killed), fleet.Key))

			if star.Colonists <= 0 {
				star.Depopulate()
			}
		}
	}

	return msgs
}

// fleetBombStrength :
// Sums the bomb kill percentage and the strongest minimum-kill floor
// across every bomber design in the fleet.
func fleetBombStrength(ctx PostBattleContext, empire *model.EmpireData, fleet *model.Fleet) (percent float64, minKill int) {
	for _, token := range fleet.Tokens {
		design, ok := empire.Designs[token.DesignKey]
		if !ok {
			continue
		}
		if design.Stale {
			_ = RecomputeSummary(design, ctx.Catalog)
		}
		if design.Summary.BombKillPercent <= 0 {
			continue
		}
		percent += design.Summary.BombKillPercent / 100.0 * float64(token.Quantity)
		if design.Summary.BombMinKill > minKill {
			minKill = design.Summary.BombMinKill
		}
	}
	if percent > 1 {
		percent = 1
	}
	return percent, minKill
}

// defenseCoverage :
// A star's defenses reduce bombing effectiveness, saturating as
// defenses approach MaxDefenses.
func defenseCoverage(defenses int) float64 {
	return float64(defenses) / float64(model.MaxDefenses) * 0.99
}
