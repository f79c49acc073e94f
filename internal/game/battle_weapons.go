package game

import (
	"fmt"
	"sort"

	"novaturn/internal/model"
)

// shot :
// One weapon mount's contribution to this round's fire order, flattened
// out of its owning stack so every shot in the battle can be sorted
// together.
type shot struct {
	stack  *Stack
	weapon model.WeaponMount
}

// fireRound :
// Resolves one round of weapon fire: collect every live, armed stack's
// mounts, sort them into firing order, then for each shot re-pick a
// target (a previous shot this round may have killed it) and apply
// damage.
func fireRound(ctx BattleContext, stacks []*Stack) []model.Message {
	var shots []shot
	for _, s := range stacks {
		if s.Destroyed || !s.IsArmed() {
			continue
		}
		for _, w := range s.Weapons {
			shots = append(shots, shot{stack: s, weapon: w})
		}
	}

	sort.SliceStable(shots, func(i, j int) bool {
		if shots[i].weapon.Initiative != shots[j].weapon.Initiative {
			return shots[i].weapon.Initiative < shots[j].weapon.Initiative
		}
		return shots[i].stack.Key < shots[j].stack.Key
	})

	var msgs []model.Message
	for _, sh := range shots {
		if sh.stack.Destroyed {
			continue
		}
		wolfEmpire := ctx.Empires[sh.stack.Owner]
		plan := wolfEmpire.BattlePlans[sh.stack.BattlePlan]
		target := selectTarget(wolfEmpire, sh.stack, stacks, plan)
		if target == nil {
			continue
		}

		distSq := distanceSquared(sh.stack, target)
		if distSq > float64(sh.weapon.Range*sh.weapon.Range) {
			continue
		}

		if sh.weapon.IsMissile {
			msgs = append(msgs, fireMissile(ctx, sh.stack, target, sh.weapon)...)
		} else {
			msgs = append(msgs, fireBeam(sh.stack, target, sh.weapon, distSq)...)
		}
	}

	return msgs
}

// distanceSquared :
// Squared grid distance between two stacks' battle positions.
func distanceSquared(a, b *Stack) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// fireBeam :
// Applies beam falloff damage: full power at point-blank, 90% of
// power at the weapon's max range, linear in distance² in between.
// Damage hits shields first, then
// overflows to armour.
func fireBeam(wolf, lamb *Stack, w model.WeaponMount, distSq float64) []model.Message {
	rangeSq := float64(w.Range * w.Range)
	if rangeSq <= 0 {
		rangeSq = 1
	}
	percent := 100.0 - 10.0*(distSq/rangeSq)
	if percent < 10 {
		percent = 10
	}

	damage := int(float64(w.Damage*w.Count) * percent / 100.0)
	applyStackDamage(lamb, damage, 0)

	return nil
}

// fireMissile :
// Resolves a missile shot: a hit splits damage evenly between shields
// and armour; a miss still leaks damage/8 to shields.
func fireMissile(ctx BattleContext, wolf, lamb *Stack, w model.WeaponMount) []model.Message {
	damage := w.Damage * w.Count
	if ctx.Rand.Float64() < w.Accuracy {
		applyStackDamage(lamb, damage/2, damage/2)
	} else {
		applyStackDamage(lamb, damage/8, 0)
	}
	return nil
}

// applyStackDamage :
// Spends `shieldDamage` against the stack's shields, then overflow
// plus `armourDamage` against its armour, marking it destroyed once
// armour reaches zero.
func applyStackDamage(s *Stack, shieldDamage, armourDamage int) {
	overflow := 0
	if shieldDamage > 0 {
		if shieldDamage > s.Shields {
			overflow = shieldDamage - s.Shields
			s.Shields = 0
		} else {
			s.Shields -= shieldDamage
		}
	}

	s.Armour -= armourDamage + overflow
	if s.Armour <= 0 {
		s.Armour = 0
		s.Destroyed = true
	}
}

// destructionMessage :
// Builds the "stack destroyed" notice for the losing empire.
func destructionMessage(s *Stack) model.Message {
	return model.NewFleetMessage(s.Owner, model.MessageBattle,
		fmt.Sprintf("Lost %d ships in battle.", s.Quantity), s.FleetKey)
}
