package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Series is one plotted line or point set.
type Series struct {
	X, Y  []float64
	Color color.RGBA
	// Dots draws markers instead of a connected line.
	Dots bool
}

// Plot draws 2-D line and scatter charts server-side, for the examples
// that ship finished images instead of client-rendered figure specs.
type Plot struct {
	Title  string
	XLabel string
	YLabel string
	Series []Series
}

const plotMargin = 40

// Render draws the plot into a white image of the given size.
func (p *Plot) Render(width, height int) *image.RGBA {
	if width < 2*plotMargin+20 {
		width = 2*plotMargin + 20
	}
	if height < 2*plotMargin+20 {
		height = 2*plotMargin + 20
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2], img.Pix[i+3] = 255, 255, 255, 255
	}

	xmin, xmax, ymin, ymax := p.dataRange()

	inner := image.Rect(plotMargin, plotMargin, width-plotMargin/2, height-plotMargin)
	toPx := func(x, y float64) (int, int) {
		px := inner.Min.X + int(float64(inner.Dx())*(x-xmin)/(xmax-xmin))
		py := inner.Max.Y - int(float64(inner.Dy())*(y-ymin)/(ymax-ymin))
		return px, py
	}

	axis := color.RGBA{60, 60, 60, 255}
	drawLine(img, inner.Min.X, inner.Max.Y, inner.Max.X, inner.Max.Y, axis)
	drawLine(img, inner.Min.X, inner.Min.Y, inner.Min.X, inner.Max.Y, axis)

	// Tick labels at the axis extremes; intermediate ticks add noise
	// at thumbnail sizes.
	drawText(img, inner.Min.X-4, inner.Max.Y+14, formatTick(xmin), axis)
	drawText(img, inner.Max.X-20, inner.Max.Y+14, formatTick(xmax), axis)
	drawText(img, 4, inner.Max.Y, formatTick(ymin), axis)
	drawText(img, 4, inner.Min.Y+10, formatTick(ymax), axis)

	if p.Title != "" {
		drawText(img, width/2-len(p.Title)*7/2, plotMargin/2+4, p.Title, color.RGBA{0, 0, 0, 255})
	}
	if p.XLabel != "" {
		drawText(img, width/2-len(p.XLabel)*7/2, height-8, p.XLabel, axis)
	}
	if p.YLabel != "" {
		drawText(img, 4, plotMargin-8, p.YLabel, axis)
	}

	for _, s := range p.Series {
		col := s.Color
		if col.A == 0 {
			col = color.RGBA{30, 136, 229, 255}
		}
		n := len(s.X)
		if len(s.Y) < n {
			n = len(s.Y)
		}
		if s.Dots {
			for i := 0; i < n; i++ {
				x, y := toPx(s.X[i], s.Y[i])
				fillDot(img, x, y, 2, col)
			}
			continue
		}
		for i := 1; i < n; i++ {
			x0, y0 := toPx(s.X[i-1], s.Y[i-1])
			x1, y1 := toPx(s.X[i], s.Y[i])
			drawLine(img, x0, y0, x1, y1, col)
		}
	}
	return img
}

func (p *Plot) dataRange() (xmin, xmax, ymin, ymax float64) {
	xmin, ymin = math.Inf(1), math.Inf(1)
	xmax, ymax = math.Inf(-1), math.Inf(-1)
	for _, s := range p.Series {
		for _, x := range s.X {
			xmin = math.Min(xmin, x)
			xmax = math.Max(xmax, x)
		}
		for _, y := range s.Y {
			ymin = math.Min(ymin, y)
			ymax = math.Max(ymax, y)
		}
	}
	if math.IsInf(xmin, 1) {
		xmin, xmax, ymin, ymax = 0, 1, 0, 1
	}
	if xmax == xmin {
		xmax = xmin + 1
	}
	if ymax == ymin {
		ymax = ymin + 1
	}
	return
}

func formatTick(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e6 {
		return fmt.Sprintf("%d", int(v))
	}
	return fmt.Sprintf("%.2g", v)
}

// drawLine draws a 1px line with the integer Bresenham walk.
func drawLine(img *image.RGBA, x0, y0, x1, y1 int, col color.RGBA) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		if image.Pt(x0, y0).In(img.Bounds()) {
			img.SetRGBA(x0, y0, col)
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func fillDot(img *image.RGBA, cx, cy, r int, col color.RGBA) {
	for y := cy - r; y <= cy+r; y++ {
		for x := cx - r; x <= cx+r; x++ {
			if (x-cx)*(x-cx)+(y-cy)*(y-cy) <= r*r && image.Pt(x, y).In(img.Bounds()) {
				img.SetRGBA(x, y, col)
			}
		}
	}
}

func drawText(img *image.RGBA, x, y int, text string, col color.RGBA) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
