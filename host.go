package dyngauge

import "image"

// Host is the surface the embedding engine exposes to the plugin. The
// plugin calls it synchronously from inside the hooks; implementations do
// not need to be safe for concurrent use.
type Host interface {
	// SystemGraphic returns the shared system sheet holding the gauge,
	// bar, and digit artwork. The plugin slices tiles from it exactly
	// once and never mutates it. 8-bit paletted images keep the engine's
	// palette-index-0 transparency convention; see LoadSystemGraphic.
	SystemGraphic() image.Image

	// Hero returns the battler in the given party slot (0 to
	// MaxHeroes-1), or nil when the slot is empty.
	Hero(slot int) Battler

	// Monster returns the battler in the given troop slot (0 to
	// MaxMonsters-1), or nil when the slot is empty.
	Monster(slot int) Battler
}

// Battler is a live combat participant owned by the host. The plugin
// borrows these references: it never frees them, and a reference is only
// valid while the battler participates in the current battle. All values
// are read back fresh on every refresh; nothing is cached beyond the
// snapshot triple.
type Battler interface {
	// HP and MaxHP are the current and maximum health.
	HP() int
	MaxHP() int

	// MP and MaxMP are the current and maximum mana.
	MP() int
	MaxMP() int

	// ATB is the action-timer fill in [0, ATBFull].
	ATB() int

	// DatabaseID is the battler's database record id. Zero marks an
	// inactive slot that never receives a display.
	DatabaseID() int

	// ScreenX and ScreenY give the battler's sprite anchor in screen
	// pixels, used to place the overlay above the battler.
	ScreenX() int
	ScreenY() int
}

// ConditionReporter is an optional Battler capability. Battlers that
// implement it can have their active status-condition count rendered as a
// digit run when the matching Options row is enabled; battlers that do
// not simply skip that row.
type ConditionReporter interface {
	// ActiveConditions reports how many status conditions currently
	// affect the battler.
	ActiveConditions() int
}
