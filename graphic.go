package dyngauge

import (
	"fmt"
	"image"
	_ "image/png"
	"io"

	_ "golang.org/x/image/bmp" // RPG Maker 2000/2003 system sheets ship as BMP
)

// LoadSystemGraphic decodes a system sheet from r. PNG and BMP are
// registered, covering the two formats RPG Maker 2003 resources come in;
// both keep their palette, which the tile slicer needs for color keying.
// Hosts that already hold a decoded image can skip this and return it
// from SystemGraphic directly.
func LoadSystemGraphic(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("dyngauge: decode system graphic: %w", err)
	}
	return img, nil
}
