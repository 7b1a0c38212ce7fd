package dyngauge

// Scene identifies what game mode the host engine is currently running.
// The values mirror the engine's scene enumerator; the plugin only ever
// distinguishes SceneBattle from everything else.
type Scene uint8

const (
	SceneMap      Scene = iota // walking around the map
	SceneMenu                  // main menu
	SceneBattle                // battle scene (the only one the plugin reacts to)
	SceneShop                  // shop
	SceneName                  // hero naming screen
	SceneGameOver              // game over screen
	SceneTitle                 // title screen
	SceneDebug                 // debug/test-play screen
)

// Geometry of the display and of the artwork inside the system sheet.
// The tile offsets live in the region table in tiles.go.
const (
	// DisplayWidth and DisplayHeight are the default composite canvas size.
	// The size is deliberately larger than one gauge row; the original
	// artwork marked it provisional, so it is overridable via Options.
	DisplayWidth  = 80
	DisplayHeight = 320

	// GaugeWidth and GaugeHeight are the dimensions of a gauge background
	// tile. Bar tiles share the same cell size.
	GaugeWidth  = 40
	GaugeHeight = 8

	// BarWidth and BarHeight are the dimensions of a bar fill tile.
	BarWidth  = 40
	BarHeight = 8

	// DigitWidth and DigitHeight are the dimensions of one numeral tile.
	DigitWidth  = 8
	DigitHeight = 16

	numDigits = 10
)

// Party capacity. Registry slots are stable per party/troop position.
const (
	MaxHeroes   = 4 // maximum party size
	MaxMonsters = 8 // maximum monster troop size
)

// ATBFull is the engine's fixed action-timer value for a completely filled
// ATB gauge. Battler.ATB() reports values in [0, ATBFull].
const ATBFull = 300000

// counterDigits caps a counter run at what fits beside one gauge column.
const counterDigits = 5

// stat indexes the three tracked battler statistics. Used by the row
// layout and the per-stat tile lookup tables.
type stat uint8

const (
	statHealth stat = iota
	statMana
	statATB
	statCount
)

// fillFraction converts a current/maximum pair into a bar fraction in
// [0, 1]. A non-positive maximum yields an empty bar; out-of-range host
// values are clamped rather than trusted.
func fillFraction(cur, max int) float64 {
	if max <= 0 {
		return 0
	}
	f := float64(cur) / float64(max)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// fillWidth converts a bar fraction into the pixel width of the filled
// portion, rounding down so a bar never reads fuller than it is.
func fillWidth(frac float64, width int) int {
	w := int(frac * float64(width))
	if w < 0 {
		return 0
	}
	if w > width {
		return width
	}
	return w
}

// digitRun decomposes a counter value into its decimal digits, most
// significant first. Negative values render as 0; values that would not
// fit beside a gauge column are capped at counterDigits nines.
func digitRun(v int) []int {
	if v < 0 {
		v = 0
	}
	if max := pow10(counterDigits) - 1; v > max {
		v = max
	}
	if v == 0 {
		return []int{0}
	}
	var buf [counterDigits]int
	n := 0
	for v > 0 {
		buf[n] = v % 10
		v /= 10
		n++
	}
	run := make([]int, n)
	for i := 0; i < n; i++ {
		run[i] = buf[n-1-i]
	}
	return run
}

func pow10(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}
