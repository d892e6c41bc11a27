package imaging

import (
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// Tone classifies a page as a color page or an (effectively) monochrome one.
// Most manga interiors are black and white with occasional color inserts;
// the split is reported in the run summary.
type Tone int

const (
	Monochrome Tone = iota
	Color
)

func (t Tone) String() string {
	if t == Color {
		return "color"
	}
	return "monochrome"
}

// colorSaturation is the mean HSV saturation above which a page counts as a
// color page. Paper tint and JPEG chroma noise on grayscale scans stay well
// below this.
const colorSaturation = 0.10

// toneSamples is the per-axis number of sample points used by ClassifyTone.
const toneSamples = 48

// ClassifyTone estimates whether img is a color page by sampling a sparse
// pixel grid and averaging HSV saturation. Fully transparent samples are
// skipped; an image with no opaque samples counts as monochrome.
func ClassifyTone(img image.Image) Tone {
	b := img.Bounds()
	stepX := b.Dx() / toneSamples
	if stepX < 1 {
		stepX = 1
	}
	stepY := b.Dy() / toneSamples
	if stepY < 1 {
		stepY = 1
	}

	var sum float64
	var n int
	for y := b.Min.Y; y < b.Max.Y; y += stepY {
		for x := b.Min.X; x < b.Max.X; x += stepX {
			c, ok := colorful.MakeColor(img.At(x, y))
			if !ok {
				continue
			}
			_, s, _ := c.Hsv()
			sum += s
			n++
		}
	}
	if n == 0 || sum/float64(n) < colorSaturation {
		return Monochrome
	}
	return Color
}
