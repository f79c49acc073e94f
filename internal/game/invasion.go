package game

import (
	"fmt"

	"novaturn/internal/model"
)

// invasionCasualtyFactor :
// The fraction of the losing side's strength the winner loses, per the
// invasion scenario: surviving invaders ≈ invaders × (1 −
// defenders/invaders × 0.9) when invaders win.
const invasionCasualtyFactor = 0.9

// RunInvasion :
// Processes every fleet sitting at an Invade waypoint. Invader strength is carried colonists × 1.1; defender
// strength is the planet's colonist count. The winning side survives
// proportionally to the loser's strength; the losing side loses
// everything. Invaders always lose all cargo colonists, win or lose.
func RunInvasion(ctx PostBattleContext, world *model.WorldSnapshot) []model.Message {
	var msgs []model.Message

	for _, empire := range world.AllEmpires {
		for _, fleet := range empire.OwnedFleets {
			if len(fleet.Waypoints) == 0 || fleet.Waypoints[0].Task.Kind != model.InvadeTask {
				continue
			}
			if fleet.InOrbit == "" {
				continue
			}
			star, ok := world.AllStars[fleet.InOrbit]
			if !ok {
				continue
			}

			msgs = append(msgs, invade(empire, fleet, star)...)
			consumeArrivalTask(fleet)
		}
	}

	return msgs
}

// invade :
// Resolves a single invasion attempt.
func invade(empire *model.EmpireData, fleet *model.Fleet, star *model.Star) []model.Message {
	invaders := float64(fleet.Cargo.ColonistHeadcount())
	invaderStrength := invaders * 1.1
	defenderStrength := float64(star.Colonists)

	fleet.Cargo.Colonists = 0

	if invaderStrength <= 0 {
		return nil
	}

	if invaderStrength <= defenderStrength {
		survivors := defenderStrength * (1 - invaderStrength/defenderStrength*invasionCasualtyFactor)
		star.Colonists = clampMin(int(survivors), 1)
		return []model.Message{
			model.NewFleetMessage(empire.ID, model.MessageInvasion,
				fmt.Sprintf("Invasion of %s failed.", star.Name), fleet.Key),
			model.NewMessage(star.Owner, model.MessageInvasion,
				fmt.Sprintf("%s repelled an invasion.", star.Name)),
		}
	}

	survivors := invaders * (1 - defenderStrength/invaderStrength*invasionCasualtyFactor)
	previousOwner := star.Owner
	star.Owner = empire.ID
	star.Colonists = clampMin(int(survivors), 1)

	return []model.Message{
		model.NewFleetMessage(empire.ID, model.MessageInvasion,
			fmt.Sprintf("Invasion of %s succeeded.", star.Name), fleet.Key),
		model.NewMessage(previousOwner, model.MessageInvasion,
			fmt.Sprintf("%s was invaded and lost.", star.Name)),
	}
}

func clampMin(v, min int) int {
	if v < min {
		return min
	}
	return v
}
