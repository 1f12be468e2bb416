package shapes

import (
	"go-ml.dev/pkg/synth/fu"
	"go-ml.dev/pkg/synth/model"
	"go-ml.dev/pkg/zorros/zorros"
	"golang.org/x/exp/rand"
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/stat/distuv"
)

const (
	ClfPrecision = 2 // decimals of classification features
	RegPrecision = 3 // decimals of regression features and targets
)

/*
Generator produces samples of one shape from its own random source
*/
type Generator struct {
	shape model.Shape
	rule  rule
	sigma float64

	unit  distuv.Uniform   // U(-1,1)
	neg   distuv.Uniform   // U(-1,0)
	pos   distuv.Uniform   // U(0,1)
	coin  distuv.Bernoulli // uniform{0,1}
	noise distuv.Normal
}

/*
Option changes generator defaults
*/
type Option func(*Generator)

/*
WithNoise sets the standard deviation of the gaussian noise added to
regression targets. Zero gives exact polynomial values.
*/
func WithNoise(sigma float64) Option {
	return func(g *Generator) {
		g.sigma = sigma
	}
}

/*
New creates generator of the shape drawing from src.
Shapes outside the enumerated set fail with model.ErrUnsupportedStrategy.
*/
func New(shape model.Shape, src rand.Source, opts ...Option) (*Generator, error) {
	r, ok := rules[shape]
	if !ok {
		return nil, xerrors.Errorf("no generator for shape %v: %w", shape, model.ErrUnsupportedStrategy)
	}
	if src == nil {
		return nil, xerrors.New("nil random source")
	}
	g := &Generator{shape: shape, rule: r, sigma: model.DefaultNoise}
	for _, o := range opts {
		o(g)
	}
	if g.sigma < 0 {
		return nil, xerrors.Errorf("negative noise deviation %v", g.sigma)
	}
	g.unit = distuv.Uniform{Min: -1, Max: 1, Src: src}
	g.neg = distuv.Uniform{Min: -1, Max: 0, Src: src}
	g.pos = distuv.Uniform{Min: 0, Max: 1, Src: src}
	g.coin = distuv.Bernoulli{P: 0.5, Src: src}
	g.noise = distuv.Normal{Mu: 0, Sigma: g.sigma, Src: src}
	return g, nil
}

/*
NewSeeded creates generator with a fresh source seeded by seed
*/
func NewSeeded(shape model.Shape, seed uint64, opts ...Option) (*Generator, error) {
	return New(shape, rand.NewSource(seed), opts...)
}

/*
LuckyNew creates generator and panics on error
*/
func LuckyNew(shape model.Shape, src rand.Source, opts ...Option) *Generator {
	g, err := New(shape, src, opts...)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return g
}

// Shape returns the generated shape
func (g *Generator) Shape() model.Shape {
	return g.shape
}

/*
Next draws the next sample advancing the random source
*/
func (g *Generator) Next() model.Sample {
	x, y := g.rule(g)
	if g.shape.Kind() == model.Regression {
		y += g.noise.Rand()
		return model.Sample{
			Features: fu.Roundv(x, RegPrecision),
			Target:   fu.Round(y, RegPrecision),
		}
	}
	return model.Sample{Features: x, Target: y}
}

func (g *Generator) uniform(n int) []float64 {
	x := make([]float64, n)
	for i := range x {
		x[i] = g.unit.Rand()
	}
	return x
}
