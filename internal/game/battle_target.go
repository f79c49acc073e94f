package game

import "novaturn/internal/model"

// classifyStack :
// Buckets a stack into one of the six concrete battle plan target
// categories; it never returns TargetAnyShip.
// A stack qualifies for the first bucket its shape
// matches, checked most-specific first.
func classifyStack(s *Stack) model.TargetCategory {
	switch {
	case s.IsStarbase:
		return model.TargetStarbase
	case s.IsBomber:
		return model.TargetBomber
	case !s.IsArmed():
		return model.TargetSupportShip
	}

	perShipMass := s.Mass / maxInt(s.Quantity, 1)
	switch {
	case perShipMass >= 200:
		return model.TargetCapitalShip
	case perShipMass < 70:
		return model.TargetEscort
	default:
		return model.TargetArmedShip
	}
}

// isHostile :
// A candidate is an eligible target under `wolf`'s empire only if that
// empire's relation towards the candidate's owner is Enemy, or if the
// empire holds no report on that owner at all.
func isHostile(empire *model.EmpireData, targetOwner int) bool {
	if targetOwner == empire.ID {
		return false
	}
	report, ok := empire.EmpireReports[targetOwner]
	if !ok {
		return true
	}
	return report.Relation == model.RelationEnemy
}

// selectTarget :
// Picks the candidate stack `wolf` should engage this round
//, re-run every round since prior
// targets may have died. A plan only considers categories it
// explicitly lists, with a listed AnyShip matching every stack;
// among eligible candidates the one with the
// highest (priority, attractiveness) pair, compared lexicographically,
// wins. Unarmed stacks flip the attractiveness sign, since they flee
// rather than hunt -- `selectTarget` then returns the candidate to
// move away from.
func selectTarget(wolfOwner *model.EmpireData, wolf *Stack, candidates []*Stack, plan model.BattlePlan) *Stack {
	priorityOf := func(cat model.TargetCategory) (int, bool) {
		for i, want := range plan.Priorities {
			if want == cat || want == model.TargetAnyShip {
				return len(plan.Priorities) - i, true
			}
		}
		return 0, false
	}

	flee := !wolf.IsArmed()

	var best *Stack
	bestPriority := -1
	bestAttract := 0.0

	for _, lamb := range candidates {
		if lamb.Destroyed || lamb.Owner == wolf.Owner {
			continue
		}
		if !isHostile(wolfOwner, lamb.Owner) {
			continue
		}

		priority, ok := priorityOf(classifyStack(lamb))
		if !ok {
			continue
		}

		attract := attractiveness(lamb)
		if flee {
			attract = -attract
		}

		if best == nil || priority > bestPriority || (priority == bestPriority && attract > bestAttract) {
			best = lamb
			bestPriority = priority
			bestAttract = attract
		}
	}

	return best
}

// attractiveness :
// `(mass + energy cost) / (armour + shields)`, with a
// floor on the denominator so an undamaged-but-unshielded stack never
// divides by zero.
func attractiveness(s *Stack) float64 {
	denom := float64(s.Armour + s.Shields)
	if denom < 1 {
		denom = 1
	}
	return float64(s.Mass+s.Cost.Energy) / denom
}
