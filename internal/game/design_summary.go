package game

import "novaturn/internal/model"

// RecomputeSummary :
// Rebuilds a ShipDesign's derived summary from its blueprint and
// module allocations by folding every allocated component's catalog
// stats onto the hull's base stats. Clears the Stale
// flag on success.
func RecomputeSummary(design *model.ShipDesign, catalog ComponentCatalog) error {
	hull, ok := catalog.Hull(design.Hull)
	if !ok {
		return Invariant("design-summary", "unknown hull %q", design.Hull)
	}

	summary := model.DesignSummary{
		Mass:            hull.BaseMass,
		Cost:            hull.BaseCost,
		Armour:          hull.BaseArmour,
		FuelCapacity:    hull.FuelCapacity,
		CargoCapacity:   hull.CargoCapacity,
		IsStarbase:      hull.IsStarbase,
		BattleSpeedClsN: 1.0,
	}

	for _, slot := range design.Slots {
		if engine, ok := catalog.Engine(slot.Component); ok {
			summary.Engine = slot.Component
			_ = engine
			continue
		}

		comp, ok := catalog.Component(slot.Component)
		if !ok {
			return Invariant("design-summary", "unknown component %q", slot.Component)
		}

		n := slot.Count
		summary.Mass += comp.Mass * n
		summary.Cost = summary.Cost.Add(comp.Cost.ScaleInt(n))
		summary.Armour += comp.Armour * n
		summary.Shields += comp.Shields * n
		summary.FuelCapacity += comp.FuelCapacity * n
		summary.CargoCapacity += comp.CargoCapacity * n
		summary.MineLayRate += comp.MineLayRate * n

		if comp.ScanRange > summary.ScanRange {
			summary.ScanRange = comp.ScanRange
		}
		if comp.PenScanRange > summary.PenScanRange {
			summary.PenScanRange = comp.PenScanRange
		}
		if comp.BombKillPercent > 0 {
			summary.BombKillPercent += comp.BombKillPercent * float64(n)
			if comp.BombMinKill > summary.BombMinKill {
				summary.BombMinKill = comp.BombMinKill
			}
		}
		if comp.IsColonyModule {
			summary.HasColonyModule = true
		}
		if comp.IsDock {
			summary.HasDock = true
		}
		if comp.IsWeapon {
			summary.Weapons = append(summary.Weapons, model.WeaponMount{
				Component:  slot.Component,
				Count:      n,
				IsMissile:  comp.IsMissile,
				Damage:     comp.WeaponDamage,
				Range:      comp.WeaponRange,
				Initiative: comp.WeaponInit,
				Accuracy:   comp.Accuracy,
			})
			if comp.WeaponInit > summary.BattleInit {
				summary.BattleInit = comp.WeaponInit
			}
		}
	}

	design.Summary = summary
	design.Stale = false
	return nil
}
