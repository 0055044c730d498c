package raster

import (
	"image"
	"image/color"
	"math"
)

// drawLine draws a line on img from (x1, y1) to (x2, y2) with a DDA walk.
// The segment is clipped to the image first, so the walk is bounded by the
// image size whatever the endpoints.
func drawLine(img *image.RGBA, x1, y1, x2, y2 float64, col color.RGBA) {
	b := img.Bounds()
	var ok bool
	x1, y1, x2, y2, ok = clip(x1, y1, x2, y2,
		float64(b.Min.X-1), float64(b.Min.Y-1), float64(b.Max.X+1), float64(b.Max.Y+1))
	if !ok {
		return
	}

	dx := x2 - x1
	dy := y2 - y1
	steps := math.Ceil(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 || math.IsNaN(steps) || math.IsInf(steps, 0) {
		plot(img, x1, y1, col)
		return
	}

	xInc := dx / steps
	yInc := dy / steps

	x := x1
	y := y1

	for i := 0; i <= int(steps); i++ {
		plot(img, x, y, col)
		x += xInc
		y += yInc
	}
}

func plot(img *image.RGBA, x, y float64, col color.RGBA) {
	if math.IsNaN(x) || math.IsNaN(y) {
		return
	}
	ix := int(math.Floor(x))
	iy := int(math.Floor(y))
	if !(image.Point{X: ix, Y: iy}).In(img.Bounds()) {
		return
	}
	offset := img.PixOffset(ix, iy)
	img.Pix[offset] = col.R
	img.Pix[offset+1] = col.G
	img.Pix[offset+2] = col.B
	img.Pix[offset+3] = col.A
}

// clip is Liang-Barsky clipping of the segment against the rectangle
// [xmin, xmax] x [ymin, ymax]. ok is false when nothing of it is inside.
func clip(x1, y1, x2, y2, xmin, ymin, xmax, ymax float64) (cx1, cy1, cx2, cy2 float64, ok bool) {
	dx, dy := x2-x1, y2-y1
	t0, t1 := 0.0, 1.0
	for _, edge := range [4][2]float64{
		{-dx, x1 - xmin},
		{dx, xmax - x1},
		{-dy, y1 - ymin},
		{dy, ymax - y1},
	} {
		p, q := edge[0], edge[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return x1 + t0*dx, y1 + t0*dy, x1 + t1*dx, y1 + t1*dy, true
}
