package window

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/lixenwraith/particle-field/parameter"
)

// discSize is the edge of the procedural fallback sprite
const discSize = 64

// DefaultSpritePath returns the sprite location next to the running executable
func DefaultSpritePath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), parameter.SpriteFileName), nil
}

// LoadSprite loads the sprite sheet at path and crops its top-left source square
func LoadSprite(path string) (*ebiten.Image, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load sprite %s: %w", path, err)
	}
	rect := SpriteSourceRect(img.Bounds())
	if rect.Empty() {
		return nil, fmt.Errorf("load sprite %s: empty image", path)
	}
	return img.SubImage(rect).(*ebiten.Image), nil
}

// SpriteSourceRect returns the drawn region: SpriteSourceSize square at the origin, clipped to b
func SpriteSourceRect(b image.Rectangle) image.Rectangle {
	r := image.Rect(b.Min.X, b.Min.Y, b.Min.X+parameter.SpriteSourceSize, b.Min.Y+parameter.SpriteSourceSize)
	return r.Intersect(b)
}

// DiscImage draws an anti-aliased white disc with a soft edge on transparent background
func DiscImage(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	r := c - 1

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c)
			a := math.Max(0, math.Min(1, r-d+0.5))
			if a == 0 {
				continue
			}
			v := uint8(a * 255)
			img.SetRGBA(x, y, color.RGBA{v, v, v, v})
		}
	}
	return img
}
