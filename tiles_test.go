package dyngauge

import (
	"image"
	"image/color"
	"testing"
)

// testSystemSheet returns a paletted sheet large enough for the whole
// tile table, with every pixel set to palette index 1. Index 0 is an
// opaque color on purpose: the color key must drop it by index, not by
// its own alpha.
func testSystemSheet() *image.Paletted {
	b := requiredTileBounds()
	img := image.NewPaletted(image.Rect(0, 0, b.Max.X, b.Max.Y), color.Palette{
		color.RGBA{R: 255, B: 255, A: 255}, // index 0: transparency key
		color.RGBA{R: 255, G: 255, B: 255, A: 255},
	})
	for i := range img.Pix {
		img.Pix[i] = 1
	}
	return img
}

func TestTileRegions_Layout(t *testing.T) {
	cases := []struct {
		kind TileKind
		want image.Rectangle
	}{
		{TileHealthGauge, image.Rect(0, 40, 40, 48)},
		{TileManaGauge, image.Rect(0, 56, 40, 64)},
		{TileATBGauge, image.Rect(0, 72, 40, 80)},
		{TileHealthBarEmpty, image.Rect(48, 40, 88, 48)},
		{TileManaBarEmpty, image.Rect(48, 56, 88, 64)},
		{TileHealthBarFull, image.Rect(64, 40, 104, 48)},
		{TileATBBarFull, image.Rect(64, 72, 104, 80)},
		{TileDigit0, image.Rect(0, 80, 8, 96)},
		{TileDigit0 + 9, image.Rect(72, 80, 80, 96)},
	}
	for _, c := range cases {
		if got := tileRegions[c.kind]; got != c.want {
			t.Errorf("tileRegions[%d] = %v, want %v", c.kind, got, c.want)
		}
	}
}

func TestRequiredTileBounds(t *testing.T) {
	want := image.Rect(0, 40, 104, 96)
	if got := requiredTileBounds(); got != want {
		t.Errorf("requiredTileBounds = %v, want %v", got, want)
	}
}

func TestKeyedSubImage_DropsIndexZero(t *testing.T) {
	src := image.NewPaletted(image.Rect(0, 0, 4, 4), color.Palette{
		color.RGBA{R: 255, B: 255, A: 255},
		color.RGBA{R: 255, G: 255, B: 255, A: 255},
	})
	for i := range src.Pix {
		src.Pix[i] = 1
	}
	src.SetColorIndex(0, 0, 0)

	out := keyedSubImage(src, image.Rect(0, 0, 4, 4))
	if a := out.RGBAAt(0, 0).A; a != 0 {
		t.Errorf("keyed pixel alpha = %d, want 0", a)
	}
	if got := out.RGBAAt(1, 0); got.A != 255 || got.R != 255 {
		t.Errorf("opaque pixel = %v, want white", got)
	}
}

func TestKeyedSubImage_RegionOffset(t *testing.T) {
	src := image.NewPaletted(image.Rect(0, 0, 8, 8), color.Palette{
		color.RGBA{A: 255},
		color.RGBA{R: 255, A: 255},
		color.RGBA{G: 255, A: 255},
	})
	src.SetColorIndex(2, 2, 1)
	src.SetColorIndex(3, 2, 2)

	out := keyedSubImage(src, image.Rect(2, 2, 4, 4))
	if b := out.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Fatalf("output size = %dx%d, want 2x2", b.Dx(), b.Dy())
	}
	if got := out.RGBAAt(0, 0); got.R != 255 {
		t.Errorf("out(0,0) = %v, want red", got)
	}
	if got := out.RGBAAt(1, 0); got.G != 255 {
		t.Errorf("out(1,0) = %v, want green", got)
	}
}

func TestKeyedSubImage_OutOfBoundsStaysTransparent(t *testing.T) {
	src := image.NewPaletted(image.Rect(0, 0, 4, 4), color.Palette{
		color.RGBA{A: 255},
		color.RGBA{R: 255, G: 255, B: 255, A: 255},
	})
	for i := range src.Pix {
		src.Pix[i] = 1
	}

	// Region hangs past the bottom-right corner of the source.
	out := keyedSubImage(src, image.Rect(2, 2, 6, 6))
	if b := out.Bounds(); b.Dx() != 4 || b.Dy() != 4 {
		t.Fatalf("output size = %dx%d, want 4x4", b.Dx(), b.Dy())
	}
	if a := out.RGBAAt(0, 0).A; a != 255 {
		t.Errorf("in-bounds pixel alpha = %d, want 255", a)
	}
	if a := out.RGBAAt(3, 3).A; a != 0 {
		t.Errorf("out-of-bounds pixel alpha = %d, want 0", a)
	}
}

func TestKeyedSubImage_NonPalettedCopiesEverything(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.Set(x, y, color.RGBA{R: 10, G: 20, B: 30, A: 255})
		}
	}
	out := keyedSubImage(src, image.Rect(0, 0, 2, 2))
	if got := out.RGBAAt(0, 0); got.A != 255 {
		t.Errorf("non-paletted pixel = %v, want opaque", got)
	}
}

// --- TileSet tests ---

func TestTileSet_EnsureInitialized_Idempotent(t *testing.T) {
	tiles := NewTileSet(&fakeHost{graphic: testSystemSheet()})
	defer tiles.Release()

	tiles.EnsureInitialized()
	if !tiles.Ready() {
		t.Fatal("Ready() = false after EnsureInitialized")
	}
	first := tiles.Tile(TileHealthGauge)
	if first == nil {
		t.Fatal("Tile(TileHealthGauge) = nil after EnsureInitialized")
	}

	tiles.EnsureInitialized()
	if tiles.Tile(TileHealthGauge) != first {
		t.Error("second EnsureInitialized re-sliced the tiles")
	}
}

func TestTileSet_TileDimensions(t *testing.T) {
	tiles := NewTileSet(&fakeHost{graphic: testSystemSheet()})
	defer tiles.Release()
	tiles.EnsureInitialized()

	g := tiles.Tile(TileATBGauge).Bounds()
	if g.Dx() != GaugeWidth || g.Dy() != GaugeHeight {
		t.Errorf("gauge tile = %dx%d, want %dx%d", g.Dx(), g.Dy(), GaugeWidth, GaugeHeight)
	}
	d := tiles.Digit(7).Bounds()
	if d.Dx() != DigitWidth || d.Dy() != DigitHeight {
		t.Errorf("digit tile = %dx%d, want %dx%d", d.Dx(), d.Dy(), DigitWidth, DigitHeight)
	}
}

func TestTileSet_NilGraphic_RetriesLater(t *testing.T) {
	host := &fakeHost{}
	tiles := NewTileSet(host)
	defer tiles.Release()

	tiles.EnsureInitialized()
	if tiles.Ready() {
		t.Fatal("Ready() = true with no system graphic")
	}

	host.graphic = testSystemSheet()
	tiles.EnsureInitialized()
	if !tiles.Ready() {
		t.Error("Ready() = false after the graphic became available")
	}
}

func TestTileSet_UndersizedSheet_StillInitializes(t *testing.T) {
	// A standard 80-pixel-wide sheet is narrower than the bar columns;
	// slicing must pad instead of fault.
	sheet := image.NewPaletted(image.Rect(0, 0, 80, 96), color.Palette{
		color.RGBA{A: 255},
		color.RGBA{R: 255, G: 255, B: 255, A: 255},
	})
	tiles := NewTileSet(&fakeHost{graphic: sheet})
	defer tiles.Release()

	tiles.EnsureInitialized()
	if !tiles.Ready() {
		t.Fatal("Ready() = false for undersized sheet")
	}
	b := tiles.Tile(TileHealthBarFull).Bounds()
	if b.Dx() != BarWidth || b.Dy() != BarHeight {
		t.Errorf("padded bar tile = %dx%d, want %dx%d", b.Dx(), b.Dy(), BarWidth, BarHeight)
	}
}

func TestTileSet_Digit(t *testing.T) {
	tiles := NewTileSet(&fakeHost{graphic: testSystemSheet()})
	defer tiles.Release()
	tiles.EnsureInitialized()

	for d := 0; d < 10; d++ {
		if tiles.Digit(d) == nil {
			t.Errorf("Digit(%d) = nil, want tile", d)
		}
		if tiles.Digit(d) != tiles.Tile(TileDigit0+TileKind(d)) {
			t.Errorf("Digit(%d) does not match its tile kind", d)
		}
	}
	if tiles.Digit(-1) != nil {
		t.Error("Digit(-1) should be nil")
	}
	if tiles.Digit(10) != nil {
		t.Error("Digit(10) should be nil")
	}
}

func TestTileSet_Release(t *testing.T) {
	tiles := NewTileSet(&fakeHost{graphic: testSystemSheet()})
	tiles.EnsureInitialized()

	tiles.Release()
	if tiles.Ready() {
		t.Error("Ready() = true after Release")
	}
	if tiles.Tile(TileHealthGauge) != nil {
		t.Error("Tile should be nil after Release")
	}

	// Released sets stay empty and releasing again should not panic.
	tiles.EnsureInitialized()
	if tiles.Ready() {
		t.Error("EnsureInitialized revived a released set")
	}
	tiles.Release()
}

// --- Benchmarks ---

func BenchmarkKeyedSubImage(b *testing.B) {
	src := testSystemSheet()
	r := tileRegions[TileHealthGauge]
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = keyedSubImage(src, r)
	}
}
