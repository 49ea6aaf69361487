package defs

import (
	"fmt"
	"sort"
)

// Library is the immutable configuration a session is built from. All
// tables are keyed by string identifiers.
type Library struct {
	Towers       map[string]TowerDefinition
	Enemies      map[string]EnemyDefinition
	Waves        []WaveDefinition
	ExtraWaves   []WaveDefinition
	Difficulties map[string]DifficultyProfile
	Maps         map[string]MapDefinition

	// TowerOrder lists tower ids in build-menu order.
	TowerOrder []string
}

// Tower looks up a tower definition.
func (l *Library) Tower(id string) (TowerDefinition, error) {
	def, ok := l.Towers[id]
	if !ok {
		return TowerDefinition{}, fmt.Errorf("%w: %q", ErrUnknownTower, id)
	}
	return def, nil
}

// Enemy looks up an enemy definition.
func (l *Library) Enemy(id string) (EnemyDefinition, error) {
	def, ok := l.Enemies[id]
	if !ok {
		return EnemyDefinition{}, fmt.Errorf("%w: %q", ErrUnknownEnemy, id)
	}
	return def, nil
}

// Difficulty looks up a difficulty profile.
func (l *Library) Difficulty(id string) (DifficultyProfile, error) {
	p, ok := l.Difficulties[id]
	if !ok {
		return DifficultyProfile{}, fmt.Errorf("%w: %q", ErrUnknownDifficulty, id)
	}
	return p, nil
}

// Map looks up a map definition.
func (l *Library) Map(id string) (MapDefinition, error) {
	m, ok := l.Maps[id]
	if !ok {
		return MapDefinition{}, fmt.Errorf("%w: %q", ErrUnknownMap, id)
	}
	return m, nil
}

// EasiestDifficulty returns the profile id with the lowest tier.
func (l *Library) EasiestDifficulty() string {
	ids := l.DifficultyIDs()
	if len(ids) == 0 {
		return ""
	}
	return ids[0]
}

// DifficultyIDs returns profile ids ordered by tier.
func (l *Library) DifficultyIDs() []string {
	ids := make([]string, 0, len(l.Difficulties))
	for id := range l.Difficulties {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, b := l.Difficulties[ids[i]], l.Difficulties[ids[j]]
		if a.Tier != b.Tier {
			return a.Tier < b.Tier
		}
		return ids[i] < ids[j]
	})
	return ids
}

// MapIDs returns map ids in lexical order.
func (l *Library) MapIDs() []string {
	ids := make([]string, 0, len(l.Maps))
	for id := range l.Maps {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// normalize fills omitted fields and the ids of keyed entries.
func (l *Library) normalize() {
	for id, def := range l.Towers {
		def.ID = id
		l.Towers[id] = def.withDefaults()
	}
	for id, def := range l.Enemies {
		def.ID = id
		def = def.withDefaults()
		if def.SplitData != nil {
			child := def.SplitData.withDefaults()
			def.SplitData = &child
		}
		l.Enemies[id] = def
	}
	for id, p := range l.Difficulties {
		p.ID = id
		l.Difficulties[id] = p
	}
	for id, m := range l.Maps {
		m.ID = id
		l.Maps[id] = m
	}
	if len(l.TowerOrder) == 0 {
		for id := range l.Towers {
			l.TowerOrder = append(l.TowerOrder, id)
		}
		sort.Slice(l.TowerOrder, func(i, j int) bool {
			a, b := l.Towers[l.TowerOrder[i]], l.Towers[l.TowerOrder[j]]
			if a.Cost != b.Cost {
				return a.Cost < b.Cost
			}
			return a.ID < b.ID
		})
	}
}

// Validate rejects configurations the simulation cannot run: waves naming
// undefined enemies, non-positive stats, maps without a walkable route.
func (l *Library) Validate() error {
	if len(l.Waves) == 0 {
		return fmt.Errorf("%w: no waves", ErrInvalidDefinition)
	}
	if len(l.Difficulties) == 0 {
		return fmt.Errorf("%w: no difficulty profiles", ErrInvalidDefinition)
	}
	for id, def := range l.Towers {
		if def.Cost <= 0 || def.Range <= 0 {
			return fmt.Errorf("tower %s: %w: cost and range must be positive", id, ErrInvalidDefinition)
		}
		if def.Kind != TowerSupport && (def.FireRate <= 0 || def.ProjectileSpeed <= 0) {
			return fmt.Errorf("tower %s: %w: fire rate and projectile speed must be positive", id, ErrInvalidDefinition)
		}
		if def.Kind == TowerSupport && (def.BuffAmount <= 0 || def.BuffAmount >= 1) {
			return fmt.Errorf("tower %s: %w: buff amount must be in (0,1)", id, ErrInvalidDefinition)
		}
	}
	for _, id := range l.TowerOrder {
		if _, ok := l.Towers[id]; !ok {
			return fmt.Errorf("tower order: %w: %q", ErrUnknownTower, id)
		}
	}
	for id, def := range l.Enemies {
		if def.Health <= 0 || def.Speed < 0 {
			return fmt.Errorf("enemy %s: %w: health must be positive", id, ErrInvalidDefinition)
		}
		if def.Armor < 0 || def.Armor >= 1 {
			return fmt.Errorf("enemy %s: %w: armor must be in [0,1)", id, ErrInvalidDefinition)
		}
		if def.Kind == EnemySplit && def.SplitData == nil {
			if _, ok := l.Enemies[def.SplitType]; !ok {
				return fmt.Errorf("enemy %s split type: %w: %q", id, ErrUnknownEnemy, def.SplitType)
			}
		}
	}
	check := func(label string, waves []WaveDefinition) error {
		for i, w := range waves {
			if w.Count <= 0 || len(w.Enemies) == 0 {
				return fmt.Errorf("%s wave %d: %w: empty wave", label, i+1, ErrInvalidDefinition)
			}
			for _, e := range w.Enemies {
				if _, ok := l.Enemies[e]; !ok {
					return fmt.Errorf("%s wave %d: %w: %q", label, i+1, ErrUnknownEnemy, e)
				}
			}
		}
		return nil
	}
	if err := check("base", l.Waves); err != nil {
		return err
	}
	if err := check("extra", l.ExtraWaves); err != nil {
		return err
	}
	for id, p := range l.Difficulties {
		if p.EnemyHealthMultiplier <= 0 || p.EnemySpeedMultiplier <= 0 || p.EnemyRewardMultiplier < 0 || p.EnemyCountMultiplier <= 0 {
			return fmt.Errorf("difficulty %s: %w: multipliers must be positive", id, ErrInvalidDefinition)
		}
		for n, mix := range p.EarlyWaves {
			for _, e := range mix {
				if _, ok := l.Enemies[e]; !ok {
					return fmt.Errorf("difficulty %s early wave %d: %w: %q", id, n, ErrUnknownEnemy, e)
				}
			}
		}
	}
	for id, m := range l.Maps {
		if m.Width <= 0 || m.Height <= 0 || m.TileSize <= 0 {
			return fmt.Errorf("map %s: %w: bad dimensions", id, ErrInvalidDefinition)
		}
		if _, err := m.MainPath(); err != nil {
			return err
		}
	}
	return nil
}
