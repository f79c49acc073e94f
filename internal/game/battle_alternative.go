package game

import (
	"fmt"
	"math"

	"novaturn/internal/model"
)

// AlternativeEngine :
// The higher-resolution battle engine: a 1000-unit board at scale 100,
// 60 rounds, fractional per-round velocity instead of discrete phases.
type AlternativeEngine struct{}

const alternativeBoardUnit = 1000
const alternativeScale = 100
const alternativeJitterRounds = 3
const alternativeJitterMagnitude = 2.0

func (AlternativeEngine) Run(ctx BattleContext, engagement Engagement) BattleResult {
	stacks := formStacks(ctx, engagement)
	if len(stacks) == 0 {
		return BattleResult{}
	}

	placeStacksOnGrid(stacks, alternativeBoardUnit)

	var msgs []model.Message
	round := 0
	for ; round < MaxBattleRounds; round++ {
		if !anyArmedWithTarget(ctx, stacks) {
			break
		}

		moveAlternativeRound(ctx, stacks, round)
		msgs = append(msgs, fireRound(ctx, stacks)...)
	}

	destroyed, salvageMsgs := collectDestroyed(stacks)
	msgs = append(msgs, salvageMsgs...)

	if len(msgs) > 0 || round > 0 {
		msgs = append([]model.Message{model.NewMessage(0, model.MessageBattle,
			fmt.Sprintf("Battle at (%d,%d) lasted %d rounds.", int(engagement.Position.X), int(engagement.Position.Y), round))}, msgs...)
	}

	return BattleResult{Occurred: true, Messages: msgs, Destroyed: destroyed, Rounds: round}
}

// moveAlternativeRound :
// Moves every surviving stack a fractional distance, scaled by its
// speed class, towards its current target (away from it if unarmed).
// Early rounds add bounded random jitter so opening moves aren't
// perfectly predictable lines, matching the source's "randomised
// early-game jitter".
func moveAlternativeRound(ctx BattleContext, stacks []*Stack, round int) {
	for _, s := range stacks {
		if s.Destroyed {
			continue
		}

		empire := ctx.Empires[s.Owner]
		plan := empire.BattlePlans[s.BattlePlan]
		target := selectTarget(empire, s, stacks, plan)

		velocity := s.SpeedClass * alternativeScale / 10.0

		var dx, dy float64
		if target != nil {
			ddx := target.X - s.X
			ddy := target.Y - s.Y
			dist := math.Hypot(ddx, ddy)
			if dist > 1e-9 {
				dx, dy = ddx/dist, ddy/dist
				if !s.IsArmed() {
					dx, dy = -dx, -dy
				}
			}
		}

		if round < alternativeJitterRounds {
			dx += (ctx.Rand.Float64()*2 - 1) * alternativeJitterMagnitude / velocity
			dy += (ctx.Rand.Float64()*2 - 1) * alternativeJitterMagnitude / velocity
		}

		s.X += dx * velocity
		s.Y += dy * velocity
	}
}
