// Package dbscanviz renders a clustering result to a 24-bit bitmap: one
// pixel per point in a 2D projection of the point cloud, colored by
// cluster membership.
package dbscanviz

import (
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/bmp"

	"github.com/banshee-data/appr-dbscan/internal/dbscan"
)

// DefaultPaletteSize is used by WriteBMP when its paletteSize argument
// is not positive. Cluster ids beyond the palette size wrap around via
// modulo, so a very large K will reuse colors.
const DefaultPaletteSize = 64

// DefaultPadding is used by WriteBMP when its padding argument is
// negative.
const DefaultPadding = 10

// noiseColor is the fixed color used for unclustered points.
var noiseColor = color.RGBA{R: 90, G: 90, B: 90, A: 255}

// palette returns n distinct colors spread evenly around the hue
// wheel at fixed saturation/lightness, in the same way as the line
// colors in a time-series plotter.
func palette(n int) []color.RGBA {
	colors := make([]color.RGBA, n)
	for i := 0; i < n; i++ {
		hue := float64(i) / float64(n)
		r, g, b := hslToRGB(hue, 0.65, 0.5)
		colors[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return colors
}

func hslToRGB(h, s, l float64) (r, g, b uint8) {
	var rf, gf, bf float64
	if s == 0 {
		rf, gf, bf = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		rf = hueToRGB(p, q, h+1.0/3.0)
		gf = hueToRGB(p, q, h)
		bf = hueToRGB(p, q, h-1.0/3.0)
	}
	return uint8(rf * 255), uint8(gf * 255), uint8(bf * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

// WriteBMP projects points onto their first two coordinates, scales
// that projection to fit a width x height canvas inset by padding
// pixels on every edge, and writes a 24-bit bitmap at path with each
// point drawn as a single pixel colored by its cluster label. Points
// with no spatial extent in either axis are drawn centered on that
// axis. paletteSize <= 0 falls back to DefaultPaletteSize; padding < 0
// falls back to DefaultPadding.
func WriteBMP(path string, points []dbscan.Point, labels *dbscan.Labels, width, height, paletteSize, padding int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("dbscanviz: width and height must be positive, got %dx%d", width, height)
	}
	if len(points) != labels.NumPoints() {
		return fmt.Errorf("dbscanviz: %d points but %d labels", len(points), labels.NumPoints())
	}
	if paletteSize <= 0 {
		paletteSize = DefaultPaletteSize
	}
	if padding < 0 {
		padding = DefaultPadding
	}

	colors := palette(paletteSize)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.White)
		}
	}

	if len(points) == 0 {
		return save(path, img)
	}

	plotWidth, plotHeight := width-2*padding, height-2*padding
	if plotWidth < 1 || plotHeight < 1 {
		plotWidth, plotHeight, padding = width, height, 0
	}

	minX, maxX := points[0][0], points[0][0]
	minY, maxY := points[0][1], points[0][1]
	for _, p := range points {
		minX, maxX = minF(minX, p[0]), maxF(maxX, p[0])
		minY, maxY = minF(minY, p[1]), maxF(maxY, p[1])
	}
	spanX, spanY := maxX-minX, maxY-minY

	for i, p := range points {
		px := padding + projectAxis(p[0], minX, spanX, plotWidth)
		py := padding + projectAxis(p[1], minY, spanY, plotHeight)
		id, isNoise := labels.ClusterOf(i)
		var c color.RGBA
		if isNoise {
			c = noiseColor
		} else {
			c = colors[(id-1)%paletteSize]
		}
		img.Set(px, height-1-py, c)
	}

	return save(path, img)
}

func save(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("dbscanviz: creating %q: %w", path, err)
	}
	defer f.Close()
	if err := bmp.Encode(f, img); err != nil {
		return fmt.Errorf("dbscanviz: encoding %q: %w", path, err)
	}
	return nil
}

func projectAxis(v, min, span float64, size int) int {
	if span == 0 {
		return size / 2
	}
	frac := (v - min) / span
	px := int(frac * float64(size-1))
	if px < 0 {
		px = 0
	}
	if px >= size {
		px = size - 1
	}
	return px
}

func minF(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}

func maxF(a, b float64) float64 {
	if a > b {
		return a
	}
	return b
}
