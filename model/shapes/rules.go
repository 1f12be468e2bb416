package shapes

import (
	"go-ml.dev/pkg/synth/fu"
	"go-ml.dev/pkg/synth/model"
	"math"
)

// rule draws raw features and the noiseless label or target
type rule func(*Generator) ([]float64, float64)

var rules = map[model.Shape]rule{
	model.Halfs:           halfs,
	model.Quarters:        planar(quarters),
	model.Diagonal:        planar(diagonal),
	model.ShiftedDiagonal: planar(shiftedDiagonal),
	model.Circle:          planar(circle),
	model.Ellipse:         planar(ellipse),
	model.Circles:         planar(circles),
	model.Bernoulli:       bernoulli,

	model.Linear:          poly(1, linear),
	model.TwoDimLinear:    poly(2, twoDimLinear),
	model.MultiDimLinear:  poly(4, multiDimLinear),
	model.Quadratic:       poly(1, quadratic),
	model.TwoDimQuadratic: poly(2, twoDimQuadratic),
	model.Cubic:           poly(1, cubic),
	model.TwoDimCubic:     poly(2, twoDimCubic),
}

/*
Dim returns the feature vector length of the shape or 0 for unknown shapes
*/
func Dim(shape model.Shape) int {
	switch shape {
	case model.Bernoulli:
		return 5
	case model.Linear, model.Quadratic, model.Cubic:
		return 1
	case model.MultiDimLinear:
		return 4
	}
	if _, ok := rules[shape]; ok {
		return 2
	}
	return 0
}

// label is computed on rounded coordinates so it always agrees with the written row
func planar(label func(x0, x1 float64) bool) rule {
	return func(g *Generator) ([]float64, float64) {
		x := fu.Roundv(g.uniform(2), ClfPrecision)
		if label(x[0], x[1]) {
			return x, 1
		}
		return x, 0
	}
}

func halfs(g *Generator) ([]float64, float64) {
	var x0 float64
	label := g.coin.Rand()
	if label == 0 {
		x0 = g.neg.Rand()
	} else {
		x0 = g.pos.Rand()
	}
	return fu.Roundv([]float64{x0, g.unit.Rand()}, ClfPrecision), label
}

func quarters(x0, x1 float64) bool {
	return !(x0*x1 > 0)
}

func diagonal(x0, x1 float64) bool {
	return !(x0-x1 > 0)
}

func shiftedDiagonal(x0, x1 float64) bool {
	return !(x0-x1+0.5 > 0)
}

func dist(x0, x1 float64) float64 {
	return math.Sqrt(x0*x0 + x1*x1)
}

func circle(x0, x1 float64) bool {
	return dist(x0, x1) < 0.5
}

func ellipse(x0, x1 float64) bool {
	const rx0, rx1 = 0.75, 0.5
	c0, c1 := x0-0.2, x1+0.3
	return dist(c0/rx0, c1/rx1) < 1
}

func circles(x0, x1 float64) bool {
	const d, r = 0.5, 0.25
	return dist(x0-d, x1-d) < r ||
		dist(x0+d, x1+d) < r ||
		dist(x0-d, x1+d) < r ||
		dist(x0+d, x1-d) < r
}

func bernoulli(g *Generator) ([]float64, float64) {
	x := make([]float64, 5)
	sum := 0.0
	for i := range x {
		x[i] = g.coin.Rand()
		sum += x[i]
	}
	if sum > 2 {
		return x, 1
	}
	return x, 0
}

func poly(dim int, f func([]float64) float64) rule {
	return func(g *Generator) ([]float64, float64) {
		x := g.uniform(dim)
		return x, f(x)
	}
}

func linear(x []float64) float64 {
	return 2*x[0] - 1
}

func twoDimLinear(x []float64) float64 {
	return 2*x[0] + x[1] - 1
}

func multiDimLinear(x []float64) float64 {
	return 2*x[0] + x[1] + 10*x[2] - 5*x[3] - 1
}

func quadratic(x []float64) float64 {
	return 2*x[0]*x[0] + x[0] - 1
}

func twoDimQuadratic(x []float64) float64 {
	return 2*x[0]*x[0] - 3*x[1]*x[1] + 4*x[0]*x[1] + x[0] - 2*x[1] - 1
}

func cubic(x []float64) float64 {
	return -2*x[0]*x[0]*x[0] + 2*x[0]*x[0] + x[0] - 1
}

func twoDimCubic(x []float64) float64 {
	x0, x1 := x[0], x[1]
	return -x0*x0*x0 + 2*x1*x1*x1 + 2*x0*x0 - 3*x1*x1 + x0 - 2*x1 - 1
}
