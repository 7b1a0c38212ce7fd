package dyngauge

import "image"

// Shared fakes for the display, registry, and plugin tests.

var (
	_ Host              = (*fakeHost)(nil)
	_ Battler           = (*fakeBattler)(nil)
	_ ConditionReporter = (*conditionBattler)(nil)
)

// fakeBattler is a Battler with settable stats.
type fakeBattler struct {
	hp, maxHP int
	mp, maxMP int
	atb       int
	dbID      int
	x, y      int
}

func (b *fakeBattler) HP() int         { return b.hp }
func (b *fakeBattler) MaxHP() int      { return b.maxHP }
func (b *fakeBattler) MP() int         { return b.mp }
func (b *fakeBattler) MaxMP() int      { return b.maxMP }
func (b *fakeBattler) ATB() int        { return b.atb }
func (b *fakeBattler) DatabaseID() int { return b.dbID }
func (b *fakeBattler) ScreenX() int    { return b.x }
func (b *fakeBattler) ScreenY() int    { return b.y }

// conditionBattler additionally reports a condition count.
type conditionBattler struct {
	fakeBattler
	conditions int
}

func (b *conditionBattler) ActiveConditions() int { return b.conditions }

// fakeHost serves a fixed system sheet and whatever battlers the test
// placed in its slots. Empty slots stay nil.
type fakeHost struct {
	graphic  image.Image
	heroes   [MaxHeroes]Battler
	monsters [MaxMonsters]Battler
}

func (h *fakeHost) SystemGraphic() image.Image { return h.graphic }

func (h *fakeHost) Hero(slot int) Battler {
	if slot < 0 || slot >= MaxHeroes {
		return nil
	}
	return h.heroes[slot]
}

func (h *fakeHost) Monster(slot int) Battler {
	if slot < 0 || slot >= MaxMonsters {
		return nil
	}
	return h.monsters[slot]
}
