package utils

import (
	"image/color"
	"math"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
)

type ColorName uint8

const (
	White ColorName = iota
	Blue
	Red
	Green
	Black
)

func GetColor(name ColorName) (c color.RGBA) {
	switch name {
	case White:
		c = color.RGBA{R: 255, G: 255, B: 255, A: 0}
	case Blue:
		c = color.RGBA{R: 50, G: 0, B: 255, A: 0}
	case Red:
		c = color.RGBA{R: 255, G: 0, B: 50, A: 0}
	case Green:
		c = color.RGBA{R: 25, G: 255, B: 25, A: 0}
	case Black:
		c = color.RGBA{R: 0, G: 0, B: 0, A: 0}
	}
	return
}

// LineSegments converts sampled curve points to the segment list format the
// chart takes.
func LineSegments(x, y []float64) (line []float32) {
	for i := 0; i+1 < len(x); i++ {
		line = append(line,
			float32(x[i]), float32(y[i]),
			float32(x[i+1]), float32(y[i+1]),
		)
	}
	return
}

// PlotCurves opens a chart window with one colored line per curve and
// blocks, mirroring the solver's interactive plotting. Curves share the x
// sample locations.
func PlotCurves(x []float64, curves [][]float64, colors []ColorName) {
	var (
		xMin, xMax = float32(math.MaxFloat32), -float32(math.MaxFloat32)
		yMin, yMax = float32(math.MaxFloat32), -float32(math.MaxFloat32)
	)
	for _, val := range x {
		if float32(val) < xMin {
			xMin = float32(val)
		}
		if float32(val) > xMax {
			xMax = float32(val)
		}
	}
	for _, y := range curves {
		for _, val := range y {
			if float32(val) < yMin {
				yMin = float32(val)
			}
			if float32(val) > yMax {
				yMax = float32(val)
			}
		}
	}
	ch := chart2d.NewChart2D(xMin, xMax, yMin, yMax,
		1024, 1024, utils2.WHITE, utils2.BLACK)
	for i, y := range curves {
		ch.AddLine(LineSegments(x, y), GetColor(colors[i%len(colors)]))
	}
	for {
	}
}
