package game

import (
	"fmt"

	"novaturn/internal/model"
)

// packetKillFraction :
// A mineral packet striking an inhabited world kills this fraction of
// its population.
const packetKillFraction = 0.75

// MovePackets :
// Advances every in-flight mineral packet one year along its
// straight-line course, eroding 5% of its cargo, and resolves arrivals.
func MovePackets(world *model.WorldSnapshot) []model.Message {
	var msgs []model.Message
	var arrived []uint64

	for key, packet := range world.AllPackets {
		target, ok := world.AllStars[packet.Target]
		if !ok {
			arrived = append(arrived, key)
			continue
		}

		speed := float64(packet.Warp * packet.Warp)
		distance := packet.Position.DistanceTo(target.Position)

		if distance <= speed {
			packet.Position = target.Position
			msgs = append(msgs, resolvePacketArrival(packet, target)...)
			arrived = append(arrived, key)
			continue
		}

		packet.Position = packet.Position.StepTowards(target.Position, speed)
		packet.Decay()
	}

	for _, key := range arrived {
		delete(world.AllPackets, key)
	}

	return msgs
}

// resolvePacketArrival :
// A packet striking its destination deposits its surviving minerals
// and, if the world is inhabited, kills 3/4 of the population
//, emitting one message to
// the packet's owner and one to the world's owner.
func resolvePacketArrival(packet *model.MineralPacket, star *model.Star) []model.Message {
	star.ResourcesOnHand = star.ResourcesOnHand.Add(packet.Cargo.Minerals())

	if star.Colonists <= 0 {
		return []model.Message{
			model.NewMessage(packet.Owner, model.MessagePacketArrival,
				fmt.Sprintf("Mineral packet arrived at %s.", star.Name)),
		}
	}

	owner := star.Owner
	killed := int(float64(star.Colonists) * packetKillFraction)
	star.Colonists -= killed
	if star.Colonists <= 0 {
		star.Depopulate()
	}

	return []model.Message{
		model.NewMessage(packet.Owner, model.MessagePacketArrival,
			fmt.Sprintf("Mineral packet struck %s, destroying %d colonists.", star.Name, killed)),
		model.NewMessage(owner, model.MessagePacketArrival,
			fmt.Sprintf("%s was struck by a mineral packet, losing %d colonists.", star.Name, killed)),
	}
}
