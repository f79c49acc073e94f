package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"novaturn/internal/game"
	"novaturn/internal/model"
)

// hullDoc, engineDoc, componentDoc :
// On-disk shapes of one catalog entry, mirroring `game.HullStats` /
// `game.EngineStats` / `game.ComponentStats` field-for-field but
// using plain YAML scalars instead of `model.Resources`' decimal
// internals so the catalog file stays hand-editable.
type hullDoc struct {
	Name          string  `yaml:"name"`
	BaseMass      int     `yaml:"base_mass"`
	BaseArmour    int     `yaml:"base_armour"`
	BaseCost      costDoc `yaml:"base_cost"`
	FuelCapacity  int     `yaml:"fuel_capacity"`
	CargoCapacity int     `yaml:"cargo_capacity"`
	SlotCount     int     `yaml:"slot_count"`
	IsStarbase    bool    `yaml:"is_starbase"`
}

type engineDoc struct {
	Name     string  `yaml:"name"`
	FuelUse  [10]int `yaml:"fuel_use"`
	RamScoop bool    `yaml:"ram_scoop"`
}

type componentDoc struct {
	Name    string  `yaml:"name"`
	Mass    int     `yaml:"mass"`
	Cost    costDoc `yaml:"cost"`
	Armour  int     `yaml:"armour"`
	Shields int     `yaml:"shields"`

	IsWeapon     bool    `yaml:"is_weapon"`
	IsMissile    bool    `yaml:"is_missile"`
	WeaponDamage int     `yaml:"weapon_damage"`
	WeaponRange  int     `yaml:"weapon_range"`
	WeaponInit   int     `yaml:"weapon_init"`
	Accuracy     float64 `yaml:"accuracy"`

	BombKillPercent float64 `yaml:"bomb_kill_percent"`
	BombMinKill     int     `yaml:"bomb_min_kill"`

	MineLayRate int `yaml:"mine_lay_rate"`

	ScanRange    int `yaml:"scan_range"`
	PenScanRange int `yaml:"pen_scan_range"`

	IsColonyModule bool `yaml:"is_colony_module"`
	IsDock         bool `yaml:"is_dock"`
	FuelCapacity   int  `yaml:"fuel_capacity"`
	CargoCapacity  int  `yaml:"cargo_capacity"`
}

type costDoc struct {
	Ironium   int `yaml:"ironium"`
	Boranium  int `yaml:"boranium"`
	Germanium int `yaml:"germanium"`
	Energy    int `yaml:"energy"`
}

func (c costDoc) toResources() model.Resources {
	return model.Resources{Ironium: c.Ironium, Boranium: c.Boranium, Germanium: c.Germanium, Energy: c.Energy}
}

// catalogDoc :
// Top-level shape of the catalog file.
type catalogDoc struct {
	Hulls      []hullDoc      `yaml:"hulls"`
	Engines    []engineDoc    `yaml:"engines"`
	Components []componentDoc `yaml:"components"`
}

// YAMLCatalog :
// A `game.ComponentCatalog` loaded once from a YAML file on disk.
// Lookups are served from in-memory
// maps built at load time, so the catalog never touches disk again
// during a turn.
type YAMLCatalog struct {
	hulls      map[string]game.HullStats
	engines    map[string]game.EngineStats
	components map[string]game.ComponentStats
}

// LoadYAMLCatalog :
// Parses the catalog file at `path` into a ready-to-use catalog.
func LoadYAMLCatalog(path string) (*YAMLCatalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %q: %w", path, err)
	}

	var doc catalogDoc
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("parse catalog %q: %w", path, err)
	}

	c := &YAMLCatalog{
		hulls:      make(map[string]game.HullStats, len(doc.Hulls)),
		engines:    make(map[string]game.EngineStats, len(doc.Engines)),
		components: make(map[string]game.ComponentStats, len(doc.Components)),
	}

	for _, h := range doc.Hulls {
		c.hulls[h.Name] = game.HullStats{
			BaseMass:      h.BaseMass,
			BaseArmour:    h.BaseArmour,
			BaseCost:      h.BaseCost.toResources(),
			FuelCapacity:  h.FuelCapacity,
			CargoCapacity: h.CargoCapacity,
			SlotCount:     h.SlotCount,
			IsStarbase:    h.IsStarbase,
		}
	}
	for _, e := range doc.Engines {
		c.engines[e.Name] = game.EngineStats{FuelUse: e.FuelUse, RamScoop: e.RamScoop}
	}
	for _, comp := range doc.Components {
		c.components[comp.Name] = game.ComponentStats{
			Mass:            comp.Mass,
			Cost:            comp.Cost.toResources(),
			Armour:          comp.Armour,
			Shields:         comp.Shields,
			IsWeapon:        comp.IsWeapon,
			IsMissile:       comp.IsMissile,
			WeaponDamage:    comp.WeaponDamage,
			WeaponRange:     comp.WeaponRange,
			WeaponInit:      comp.WeaponInit,
			Accuracy:        comp.Accuracy,
			BombKillPercent: comp.BombKillPercent,
			BombMinKill:     comp.BombMinKill,
			MineLayRate:     comp.MineLayRate,
			ScanRange:       comp.ScanRange,
			PenScanRange:    comp.PenScanRange,
			IsColonyModule:  comp.IsColonyModule,
			IsDock:          comp.IsDock,
			FuelCapacity:    comp.FuelCapacity,
			CargoCapacity:   comp.CargoCapacity,
		}
	}

	return c, nil
}

// Hull :
func (c *YAMLCatalog) Hull(name string) (game.HullStats, bool) {
	h, ok := c.hulls[name]
	return h, ok
}

// Engine :
func (c *YAMLCatalog) Engine(name string) (game.EngineStats, bool) {
	e, ok := c.engines[name]
	return e, ok
}

// Component :
func (c *YAMLCatalog) Component(name string) (game.ComponentStats, bool) {
	comp, ok := c.components[name]
	return comp, ok
}
