package dyngauge

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Snapshot is the health/mana/ATB triple copied from a battler at bind
// time and on each refresh. Values are trusted host data; the display
// clamps them only when computing bar fractions.
type Snapshot struct {
	HP  int
	MP  int
	ATB int
}

// DisplayConfig carries the per-display construction parameters. The zero
// value means the default 80x320 canvas with everything visible per
// DefaultOptions and no smoothing.
type DisplayConfig struct {
	// Side selects which rows the compositor draws.
	Side SideOptions
	// Width and Height size the composite canvas. Zero uses the
	// DisplayWidth/DisplayHeight defaults.
	Width, Height int
	// SmoothBars eases bar fills toward their targets instead of
	// snapping.
	SmoothBars bool
}

// BattleDisplay models and renders the battle information for a single
// battler. It owns its composite canvas; the battler reference is
// borrowed from the host and only valid while that battler participates
// in the current battle.
//
// A display is either Unbound (no battler; canvas exists but stays empty)
// or Bound. Bind transitions to Bound and copies the first snapshot;
// Refresh re-reads the battler and recomposites. Refresh while Unbound is
// a deliberate no-op.
type BattleDisplay struct {
	tiles  *TileSet
	side   SideOptions
	smooth bool

	battler Battler // borrowed, nil while Unbound
	snap    Snapshot

	canvas *Canvas

	bars [statCount]smoothedBar
}

// NewBattleDisplay creates an Unbound display. The canvas is allocated
// immediately and lives until dispose; default config fields are filled
// the way the zero value promises.
func NewBattleDisplay(tiles *TileSet, cfg DisplayConfig) *BattleDisplay {
	w, h := cfg.Width, cfg.Height
	if w <= 0 {
		w = DisplayWidth
	}
	if h <= 0 {
		h = DisplayHeight
	}
	return &BattleDisplay{
		tiles:  tiles,
		side:   cfg.Side,
		smooth: cfg.SmoothBars,
		canvas: NewCanvas(w, h),
	}
}

// Bound reports whether the display currently serves a battler.
func (d *BattleDisplay) Bound() bool {
	return d.battler != nil
}

// Canvas returns the display's composite canvas. Hosts that place
// overlays themselves can blit it; Plugin.Draw does this for Ebitengine
// hosts.
func (d *BattleDisplay) Canvas() *Canvas {
	return d.canvas
}

// Bind attaches the display to a battler and copies its stats into the
// snapshot. Binding lazily initializes the shared tile set but does not
// redraw; the canvas keeps its previous content until the next Refresh.
// Binding nil detaches the display and clears its canvas.
func (d *BattleDisplay) Bind(b Battler) {
	if b == nil {
		d.battler = nil
		d.snap = Snapshot{}
		d.canvas.Clear()
		return
	}
	d.tiles.EnsureInitialized()
	d.battler = b
	d.snap = Snapshot{HP: b.HP(), MP: b.MP(), ATB: b.ATB()}
	// Smoothed bars jump straight to the bind-time fractions; easing only
	// applies to changes observed after binding.
	d.bars[statHealth].reset(float32(fillFraction(d.snap.HP, b.MaxHP())))
	d.bars[statMana].reset(float32(fillFraction(d.snap.MP, b.MaxMP())))
	d.bars[statATB].reset(float32(fillFraction(d.snap.ATB, ATBFull)))
}

// Refresh re-reads the bound battler's stats into the snapshot and
// recomposites the canvas. While Unbound it does nothing.
func (d *BattleDisplay) Refresh() {
	if d.battler == nil {
		return
	}
	d.snap = Snapshot{HP: d.battler.HP(), MP: d.battler.MP(), ATB: d.battler.ATB()}
	d.composite()
}

// rowKind distinguishes the row types the compositor can stack.
type rowKind uint8

const (
	rowGauge     rowKind = iota // gauge background + proportional bar fill
	rowCounter                  // right-aligned digit run of a stat value
	rowCondition                // digit run of the active condition count
)

type row struct {
	kind rowKind
	stat stat
}

// visibleRows returns the rows composite draws for the given side
// options, bottom-most first. The bottom row sits at the canvas's
// bottom-left anchor, so with only the health gauge enabled the layout
// collapses to a single row at the anchor.
func visibleRows(side SideOptions) []row {
	rows := make([]row, 0, 2*statCount+1)
	gauges := [statCount]bool{side.HealthGauge, side.ManaGauge, side.ATBGauge}
	counters := [statCount]bool{side.HealthCounter, side.ManaCounter, side.ATBCounter}
	for s := statHealth; s < statCount; s++ {
		if gauges[s] {
			rows = append(rows, row{kind: rowGauge, stat: s})
		}
		if counters[s] {
			rows = append(rows, row{kind: rowCounter, stat: s})
		}
	}
	if side.ConditionCounter {
		rows = append(rows, row{kind: rowCondition})
	}
	return rows
}

// composite redraws the canvas from the current snapshot. It always
// clears first so nothing from the previous snapshot ghosts through, then
// stacks the enabled rows upward from the bottom-left anchor.
func (d *BattleDisplay) composite() {
	d.canvas.Clear()
	if !d.tiles.Ready() {
		return
	}

	var dt float32
	if d.smooth {
		dt = float32(1.0 / float64(ebiten.TPS()))
	}

	y := d.canvas.Height()
	for _, r := range visibleRows(d.side) {
		switch r.kind {
		case rowGauge:
			y -= GaugeHeight
			d.drawGaugeRow(r.stat, 0, y, dt)
		case rowCounter:
			y -= DigitHeight
			d.drawDigitRow(d.statValue(r.stat), y)
		case rowCondition:
			cr, ok := d.battler.(ConditionReporter)
			if !ok {
				continue
			}
			y -= DigitHeight
			d.drawDigitRow(cr.ActiveConditions(), y)
		}
	}
}

// drawGaugeRow draws one stat's gauge background, the unfilled bar, and
// the filled bar clipped to the current fraction.
func (d *BattleDisplay) drawGaugeRow(s stat, x, y int, dt float32) {
	frac := d.statFraction(s)
	if d.smooth {
		frac = float64(d.bars[s].advance(float32(frac), dt))
	}
	d.canvas.DrawTileAt(d.tiles.Tile(gaugeTileFor(s)), x, y)
	d.canvas.DrawTileAt(d.tiles.Tile(barEmptyTileFor(s)), x, y)
	d.canvas.DrawTileClipped(d.tiles.Tile(barFullTileFor(s)), x, y, fillWidth(frac, BarWidth))
}

// drawDigitRow draws a counter value as a digit-tile run, right-aligned
// to the gauge column's right edge.
func (d *BattleDisplay) drawDigitRow(value, y int) {
	run := digitRun(value)
	x := GaugeWidth - len(run)*DigitWidth
	for _, dg := range run {
		d.canvas.DrawTileAt(d.tiles.Digit(dg), x, y)
		x += DigitWidth
	}
}

func (d *BattleDisplay) statValue(s stat) int {
	switch s {
	case statMana:
		return d.snap.MP
	case statATB:
		return d.snap.ATB
	default:
		return d.snap.HP
	}
}

func (d *BattleDisplay) statFraction(s stat) float64 {
	switch s {
	case statMana:
		return fillFraction(d.snap.MP, d.battler.MaxMP())
	case statATB:
		return fillFraction(d.snap.ATB, ATBFull)
	default:
		return fillFraction(d.snap.HP, d.battler.MaxHP())
	}
}

// dispose releases the composite canvas. Called by Registry.Dispose; a
// display must not be used afterward.
func (d *BattleDisplay) dispose() {
	d.canvas.Dispose()
}

// barTweenSeconds is how long a smoothed bar takes to reach a new target.
const barTweenSeconds = 0.25

// smoothedBar eases a bar fraction toward its target. The display
// advances it once per refresh; there is no global animation manager.
type smoothedBar struct {
	shown  float32
	target float32
	tween  *gween.Tween
}

// reset snaps the bar to a fraction, discarding any running tween.
func (b *smoothedBar) reset(v float32) {
	b.shown = v
	b.target = v
	b.tween = nil
}

// advance retargets the tween when the target fraction changed, steps it
// by dt, and returns the fraction to draw.
func (b *smoothedBar) advance(target, dt float32) float32 {
	if target != b.target {
		b.tween = gween.New(b.shown, target, barTweenSeconds, ease.Linear)
		b.target = target
	}
	if b.tween == nil {
		b.shown = target
		return b.shown
	}
	v, done := b.tween.Update(dt)
	b.shown = v
	if done {
		b.tween = nil
	}
	return b.shown
}
