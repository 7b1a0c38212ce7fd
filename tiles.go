package dyngauge

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// TileKind identifies one piece of artwork sliced from the system sheet.
// Digit tiles occupy the range [TileDigit0, TileDigit0+9]; use
// TileSet.Digit for lookups by numeral.
type TileKind uint8

const (
	TileHealthGauge    TileKind = iota // health gauge background
	TileManaGauge                      // mana gauge background
	TileATBGauge                       // ATB gauge background
	TileHealthBarEmpty                 // health bar, unfilled artwork ("bar A")
	TileManaBarEmpty                   // mana bar, unfilled artwork
	TileATBBarEmpty                    // ATB bar, unfilled artwork
	TileHealthBarFull                  // health bar, filled artwork ("bar B")
	TileManaBarFull                    // mana bar, filled artwork
	TileATBBarFull                     // ATB bar, filled artwork
	TileDigit0                         // numeral 0; digit d is TileDigit0+d

	tileKindCount = TileDigit0 + numDigits
)

// Source offsets within the system sheet. The bar columns sit past the
// right edge of a standard 80-pixel sheet; extraction pads the missing
// area with transparency instead of faulting (see keyedSubImage).
const (
	gaugeSrcX    = 0
	barEmptySrcX = 48
	barFullSrcX  = 64

	healthRowSrcY = 40
	manaRowSrcY   = 56
	atbRowSrcY    = 72

	digitSrcX = 0
	digitSrcY = 80
)

// tileRegions maps every tile kind to its source rectangle in the system
// sheet.
var tileRegions = buildTileRegions()

func buildTileRegions() [tileKindCount]image.Rectangle {
	var r [tileKindCount]image.Rectangle
	rows := [statCount]int{statHealth: healthRowSrcY, statMana: manaRowSrcY, statATB: atbRowSrcY}
	for s := statHealth; s < statCount; s++ {
		r[gaugeTileFor(s)] = rectAt(gaugeSrcX, rows[s], GaugeWidth, GaugeHeight)
		r[barEmptyTileFor(s)] = rectAt(barEmptySrcX, rows[s], BarWidth, BarHeight)
		r[barFullTileFor(s)] = rectAt(barFullSrcX, rows[s], BarWidth, BarHeight)
	}
	for d := 0; d < numDigits; d++ {
		r[TileDigit0+TileKind(d)] = rectAt(digitSrcX+d*DigitWidth, digitSrcY, DigitWidth, DigitHeight)
	}
	return r
}

func rectAt(x, y, w, h int) image.Rectangle {
	return image.Rect(x, y, x+w, y+h)
}

// Per-stat tile lookups used by the compositor.
func gaugeTileFor(s stat) TileKind    { return TileHealthGauge + TileKind(s) }
func barEmptyTileFor(s stat) TileKind { return TileHealthBarEmpty + TileKind(s) }
func barFullTileFor(s stat) TileKind  { return TileHealthBarFull + TileKind(s) }

// requiredTileBounds is the union of all tile source rectangles; a system
// sheet at least this large yields fully populated tiles.
func requiredTileBounds() image.Rectangle {
	u := tileRegions[0]
	for _, r := range tileRegions[1:] {
		u = u.Union(r)
	}
	return u
}

// TileSet holds the shared tile images sliced from the host's system
// sheet. One TileSet serves every BattleDisplay; tiles are created lazily
// on the first bind and released exactly once at shutdown. A TileSet is
// not safe for concurrent use; like the rest of the plugin it lives on
// the host's single frame-loop call chain.
type TileSet struct {
	host     Host
	ready    bool
	released bool
	warned   bool
	tiles    [tileKindCount]*ebiten.Image
}

// NewTileSet creates an empty tile set that will slice its artwork from
// the given host's system graphic on first use.
func NewTileSet(host Host) *TileSet {
	return &TileSet{host: host}
}

// EnsureInitialized slices every tile kind from the host's system graphic.
// Only the first call has any effect; redundant calls are free. If the
// host has no system graphic yet, the set stays uninitialized and a later
// call retries. After Release the set stays permanently empty.
func (t *TileSet) EnsureInitialized() {
	if t.ready || t.released {
		return
	}
	src := t.host.SystemGraphic()
	if src == nil {
		t.warnOnce("system graphic unavailable; tiles not initialized")
		return
	}
	if req := requiredTileBounds(); !req.In(src.Bounds()) {
		t.warnOnce("system graphic %v smaller than tile table %v; missing areas stay transparent", src.Bounds(), req)
	}
	for k := TileKind(0); k < tileKindCount; k++ {
		t.tiles[k] = ebiten.NewImageFromImage(keyedSubImage(src, tileRegions[k]))
	}
	t.ready = true
}

// Ready reports whether the tiles have been sliced.
func (t *TileSet) Ready() bool {
	return t.ready
}

// Tile returns the image for the given kind, or nil before initialization.
func (t *TileSet) Tile(k TileKind) *ebiten.Image {
	return t.tiles[k]
}

// Digit returns the tile for a single numeral 0-9, or nil for any other
// value.
func (t *TileSet) Digit(d int) *ebiten.Image {
	if d < 0 || d >= numDigits {
		return nil
	}
	return t.tiles[TileDigit0+TileKind(d)]
}

// Release frees every tile buffer. Safe to call repeatedly; only the
// first call does anything. The set cannot be re-initialized afterward.
func (t *TileSet) Release() {
	if t.released {
		return
	}
	t.released = true
	t.ready = false
	for i := range t.tiles {
		if t.tiles[i] != nil {
			t.tiles[i].Deallocate()
			t.tiles[i] = nil
		}
	}
}

func (t *TileSet) warnOnce(format string, args ...any) {
	if t.warned || !globalDebug {
		return
	}
	t.warned = true
	log.Printf("dyngauge: "+format, args...)
}

// keyedSubImage copies the region r of src into a fresh RGBA image. For
// paletted sources, pixels with palette index 0 are left transparent,
// matching the engine's color-key convention. Pixels outside src's bounds
// also stay transparent, so an undersized sheet degrades to blank artwork
// instead of faulting.
func keyedSubImage(src image.Image, r image.Rectangle) *image.RGBA {
	out := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	pal, _ := src.(*image.Paletted)
	avail := r.Intersect(src.Bounds())
	for y := avail.Min.Y; y < avail.Max.Y; y++ {
		for x := avail.Min.X; x < avail.Max.X; x++ {
			if pal != nil && pal.ColorIndexAt(x, y) == 0 {
				continue
			}
			out.Set(x-r.Min.X, y-r.Min.Y, src.At(x, y))
		}
	}
	return out
}
