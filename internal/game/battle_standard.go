package game

import (
	"fmt"
	"math"

	"novaturn/internal/model"
)

// standardMovementTable :
// Rows indexed by battle speed class, columns by round mod 8: how many
// of the round's 3 movement phases a stack of that class moves.
var standardMovementTable = map[float64][8]int{
	0.5:  {0, 1, 0, 1, 0, 1, 0, 1},
	0.75: {1, 1, 1, 0, 1, 1, 1, 0},
	1.0:  {1, 1, 1, 1, 1, 1, 1, 1},
	1.25: {1, 2, 1, 1, 1, 2, 1, 1},
	1.5:  {1, 2, 1, 2, 1, 2, 1, 2},
	1.75: {2, 2, 2, 1, 2, 2, 2, 1},
	2.0:  {2, 2, 2, 2, 2, 2, 2, 2},
	2.25: {2, 3, 2, 2, 2, 3, 2, 2},
	2.5:  {2, 3, 2, 3, 2, 3, 2, 3},
}

// StandardEngine :
// The default battle engine: a small 10-unit board, up to 16 rounds,
// 3 movement phases per round, integer-step movement.
type StandardEngine struct{}

const standardBoardUnit = 10
const standardMaxRounds = 16

func (StandardEngine) Run(ctx BattleContext, engagement Engagement) BattleResult {
	stacks := formStacks(ctx, engagement)
	if len(stacks) == 0 {
		return BattleResult{}
	}

	placeStacksOnGrid(stacks, standardBoardUnit)

	var msgs []model.Message
	round := 0
	for ; round < standardMaxRounds; round++ {
		if !anyArmedWithTarget(ctx, stacks) {
			break
		}

		for phase := 0; phase < 3; phase++ {
			moveStandardPhase(ctx, stacks, round, phase)
		}

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

// placeStacksOnGrid :
// Partitions participating empires into race boxes on a square grid
//, clustering each empire's stacks near its
// box center.
func placeStacksOnGrid(stacks []*Stack, scale float64) {
	owners := distinctOwners(stacks)
	cols := int(math.Ceil(math.Sqrt(float64(len(owners)))))
	if cols < 1 {
		cols = 1
	}
	side := float64(MaxWeaponRange) * float64(cols)

	boxIndex := make(map[int]int, len(owners))
	for i, o := range owners {
		boxIndex[o] = i
	}

	counts := make(map[int]int)
	for _, s := range stacks {
		idx := boxIndex[s.Owner]
		row := idx / cols
		col := idx % cols
		cx := (float64(col) + 0.5) * side / float64(cols)
		cy := (float64(row) + 0.5) * side / float64(cols)

		n := counts[s.Owner]
		counts[s.Owner] = n + 1
		spread := float64(n%5) * (scale / 20.0)
		s.X = cx + spread
		s.Y = cy + spread
	}
}

// distinctOwners :
// The sorted, deduplicated list of empire ids participating in a
// battle, used to assign race boxes deterministically.
func distinctOwners(stacks []*Stack) []int {
	seen := make(map[int]bool)
	var owners []int
	for _, s := range stacks {
		if !seen[s.Owner] {
			seen[s.Owner] = true
			owners = append(owners, s.Owner)
		}
	}
	for i := 1; i < len(owners); i++ {
		for j := i; j > 0 && owners[j-1] > owners[j]; j-- {
			owners[j-1], owners[j] = owners[j], owners[j-1]
		}
	}
	return owners
}

// anyArmedWithTarget :
// Battle termination check: whether any surviving armed stack still
// has a hostile, living candidate under its plan.
func anyArmedWithTarget(ctx BattleContext, stacks []*Stack) bool {
	for _, s := range stacks {
		if s.Destroyed || !s.IsArmed() {
			continue
		}
		empire := ctx.Empires[s.Owner]
		plan := empire.BattlePlans[s.BattlePlan]
		if selectTarget(empire, s, stacks, plan) != nil {
			return true
		}
	}
	return false
}

// moveStandardPhase :
// Moves every stack scheduled to act in this round's given phase one
// grid unit towards (or, if unarmed, away from) its current target.
func moveStandardPhase(ctx BattleContext, stacks []*Stack, round, phase int) {
	for _, s := range stacks {
		if s.Destroyed {
			continue
		}
		class := s.SpeedClass
		if class > 2.5 {
			class = 2.5
		}
		row, ok := standardMovementTable[class]
		if !ok {
			row = standardMovementTable[1.0]
		}
		movesThisRound := row[round%8]
		if phase >= movesThisRound {
			continue
		}

		empire := ctx.Empires[s.Owner]
		plan := empire.BattlePlans[s.BattlePlan]
		target := selectTarget(empire, s, stacks, plan)
		if target == nil {
			continue
		}
		stepToward(s, target, s.IsArmed())
	}
}

// stepToward :
// Moves `s` one grid unit towards `target`'s position, or away from it
// if `towards` is false.
func stepToward(s, target *Stack, towards bool) {
	dx := target.X - s.X
	dy := target.Y - s.Y
	dist := math.Hypot(dx, dy)
	if dist < 1e-9 {
		return
	}
	dx /= dist
	dy /= dist
	if !towards {
		dx, dy = -dx, -dy
	}
	s.X += dx
	s.Y += dy
}
