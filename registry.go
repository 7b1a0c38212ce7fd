package dyngauge

// Registry holds the fixed display pools: one slot per possible hero
// party position and one per possible monster troop position. Slot
// indices are stable per position, not per battler identity; slots are
// reused across battles, and a slot whose battler left the battle simply
// stays stale until the next battle start rebinds it.
type Registry struct {
	heroes   [MaxHeroes]*BattleDisplay
	monsters [MaxMonsters]*BattleDisplay
	disposed bool
}

// NewRegistry allocates every slot up front with the geometry and side
// options the Options describe. All displays start Unbound.
func NewRegistry(tiles *TileSet, opts Options) *Registry {
	r := &Registry{}
	for i := range r.heroes {
		r.heroes[i] = NewBattleDisplay(tiles, DisplayConfig{
			Side:       opts.Heroes,
			Width:      opts.DisplayWidth,
			Height:     opts.DisplayHeight,
			SmoothBars: opts.SmoothBars,
		})
	}
	for i := range r.monsters {
		r.monsters[i] = NewBattleDisplay(tiles, DisplayConfig{
			Side:       opts.Monsters,
			Width:      opts.DisplayWidth,
			Height:     opts.DisplayHeight,
			SmoothBars: opts.SmoothBars,
		})
	}
	return r
}

// Hero returns the display for a party slot, or nil when the index is out
// of range.
func (r *Registry) Hero(slot int) *BattleDisplay {
	if slot < 0 || slot >= MaxHeroes {
		return nil
	}
	return r.heroes[slot]
}

// Monster returns the display for a troop slot, or nil when the index is
// out of range.
func (r *Registry) Monster(slot int) *BattleDisplay {
	if slot < 0 || slot >= MaxMonsters {
		return nil
	}
	return r.monsters[slot]
}

// Reset unbinds every slot, clearing the canvases. Used on plugin
// restart when the pools themselves can be kept.
func (r *Registry) Reset() {
	for _, d := range r.heroes {
		d.Bind(nil)
	}
	for _, d := range r.monsters {
		d.Bind(nil)
	}
}

// Dispose releases every slot's canvas. Only the first call does
// anything; the registry must not be used afterward.
func (r *Registry) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	for _, d := range r.heroes {
		d.dispose()
	}
	for _, d := range r.monsters {
		d.dispose()
	}
}
