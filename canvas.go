package dyngauge

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Canvas is the persistent offscreen buffer a BattleDisplay composites
// into. It is owned by its display: allocated at construction, cleared and
// redrawn on every refresh, and disposed exactly once when the display's
// registry is disposed. It is never recycled between frames.
type Canvas struct {
	image *ebiten.Image
	w, h  int
}

// NewCanvas creates a transparent canvas of the given size.
func NewCanvas(w, h int) *Canvas {
	return &Canvas{
		image: ebiten.NewImage(w, h),
		w:     w,
		h:     h,
	}
}

// Image returns the underlying *ebiten.Image for presentation.
func (c *Canvas) Image() *ebiten.Image {
	return c.image
}

// Width returns the canvas width in pixels.
func (c *Canvas) Width() int {
	return c.w
}

// Height returns the canvas height in pixels.
func (c *Canvas) Height() int {
	return c.h
}

// Clear fills the canvas with transparent black. Composition always
// starts with Clear so no previous frame's tiles ghost through. Clearing
// a disposed canvas is a no-op.
func (c *Canvas) Clear() {
	if c.image == nil {
		return
	}
	c.image.Clear()
}

// DrawTileAt draws a whole tile at (x, y). A nil tile is skipped, which
// keeps composition harmless before the tile set is initialized.
func (c *Canvas) DrawTileAt(tile *ebiten.Image, x, y int) {
	if tile == nil {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(x), float64(y))
	c.image.DrawImage(tile, &op)
}

// DrawTileClipped draws the leftmost clipW pixels of a tile at (x, y).
// Used for proportional bar fills: the full-bar tile is clipped to the
// filled fraction and layered over the empty-bar tile. A clip of zero or
// less draws nothing; a clip at least as wide as the tile draws all of it.
func (c *Canvas) DrawTileClipped(tile *ebiten.Image, x, y, clipW int) {
	if tile == nil || clipW <= 0 {
		return
	}
	b := tile.Bounds()
	if clipW < b.Dx() {
		tile = tile.SubImage(image.Rect(b.Min.X, b.Min.Y, b.Min.X+clipW, b.Max.Y)).(*ebiten.Image)
	}
	var op ebiten.DrawImageOptions
	op.GeoM.Translate(float64(x), float64(y))
	c.image.DrawImage(tile, &op)
}

// Dispose deallocates the underlying image. The canvas must not be drawn
// to afterward; repeated Dispose calls are no-ops.
func (c *Canvas) Dispose() {
	if c.image != nil {
		c.image.Deallocate()
		c.image = nil
	}
}
