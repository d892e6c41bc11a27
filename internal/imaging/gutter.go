package imaging

import (
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// GutterResult describes the vertical-seam probe of a landscape page.
type GutterResult struct {
	Seam       bool    `json:"seam"`        // a center seam was detected
	CenterMean float64 `json:"center_mean"` // mean edge response in the center band
	GlobalMean float64 `json:"global_mean"` // mean edge response over the page
}

// analysisWidth is the width pages are downscaled to before edge analysis.
// Spread scans are typically 2000+ pixels wide; the seam survives scaling
// and the Sobel pass gets dramatically cheaper.
const analysisWidth = 512

// seamRatio is how much stronger the center band response must be than the
// page average before we call it a seam.
const seamRatio = 1.4

// noiseFloor ignores near-flat pages where any ratio is meaningless.
const noiseFloor = 8.0

// ProbeGutter checks whether a landscape image shows a vertical seam near
// its horizontal center, the fold line where two scanned pages meet. A
// detected seam corroborates that a landscape single-numbered file really
// is a spread. The result is advisory: the rename engine flags on
// orientation alone, this probe only enriches the report.
func ProbeGutter(img image.Image) *GutterResult {
	small := imaging.Resize(img, analysisWidth, 0, imaging.Linear)
	edges := effect.Grayscale(effect.Sobel(small))

	b := edges.Bounds()
	w, h := b.Dx(), b.Dy()
	if w < 8 || h < 2 {
		return &GutterResult{}
	}

	// Center band: 2% of the width to each side of the middle column.
	band := w / 50
	if band < 2 {
		band = 2
	}
	lo, hi := w/2-band, w/2+band

	var global, center float64
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// Grayscale output has R == G == B, so R is the luminance.
			v := float64(edges.RGBAAt(b.Min.X+x, b.Min.Y+y).R)
			global += v
			if x >= lo && x < hi {
				center += v
			}
		}
	}
	global /= float64(w * h)
	center /= float64((hi - lo) * h)

	return &GutterResult{
		Seam:       center > noiseFloor && center >= seamRatio*global,
		CenterMean: center,
		GlobalMean: global,
	}
}
