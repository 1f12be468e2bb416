package model

import (
	"golang.org/x/xerrors"
	"iter"
)

/*
Kind is a family of generated datasets, classification or regression
*/
type Kind int

const (
	Classification Kind = iota
	Regression
)

// Prefix is the file name prefix used for datasets of the kind
func (k Kind) Prefix() string {
	if k == Regression {
		return "reg"
	}
	return "clf"
}

func (k Kind) String() string {
	if k == Regression {
		return "regression"
	}
	return "classification"
}

/*
Shape is a closed set of generative rules. Every shape belongs to exactly one Kind.
*/
type Shape int

const (
	NoShape Shape = iota

	Halfs
	Quarters
	Diagonal
	ShiftedDiagonal
	Circle
	Ellipse
	Circles
	Bernoulli

	Linear
	TwoDimLinear
	MultiDimLinear
	Quadratic
	TwoDimQuadratic
	Cubic
	TwoDimCubic

	shapeCount
)

var shapeNames = [shapeCount]string{
	NoShape:         "",
	Halfs:           "halfs",
	Quarters:        "quarters",
	Diagonal:        "diagonal",
	ShiftedDiagonal: "shifteddiagonal",
	Circle:          "circle",
	Ellipse:         "ellipse",
	Circles:         "circles",
	Bernoulli:       "bernoulli",
	Linear:          "linear",
	TwoDimLinear:    "twodimlinear",
	MultiDimLinear:  "multidimlinear",
	Quadratic:       "quadratic",
	TwoDimQuadratic: "twodimquadratic",
	Cubic:           "cubic",
	TwoDimCubic:     "twodimcubic",
}

func (s Shape) String() string {
	if s.Valid() {
		return shapeNames[s]
	}
	return "unknown"
}

// Valid reports whether s is one of the enumerated shapes
func (s Shape) Valid() bool {
	return s > NoShape && s < shapeCount
}

// Kind returns the dataset family the shape generates
func (s Shape) Kind() Kind {
	if s >= Linear {
		return Regression
	}
	return Classification
}

/*
Shapes lists the shapes of the kind in declaration order
*/
func Shapes(kind Kind) []Shape {
	r := []Shape{}
	for s := NoShape + 1; s < shapeCount; s++ {
		if s.Kind() == kind {
			r = append(r, s)
		}
	}
	return r
}

/*
ShapeNames lists the names of the kind's shapes, handy for usage messages
*/
func ShapeNames(kind Kind) []string {
	ss := Shapes(kind)
	r := make([]string, len(ss))
	for i, s := range ss {
		r[i] = s.String()
	}
	return r
}

/*
ParseShape maps a shape name to the Shape of the requested kind.
Unknown names and names of the other kind fail with ErrUnsupportedStrategy.
*/
func ParseShape(kind Kind, name string) (Shape, error) {
	for _, s := range Shapes(kind) {
		if shapeNames[s] == name {
			return s, nil
		}
	}
	return NoShape, xerrors.Errorf("%v shape %q: %w", kind, name, ErrUnsupportedStrategy)
}

/*
Sample is a single generated row, features plus label or target.
For classification the Target is 0 or 1.
*/
type Sample struct {
	Features []float64
	Target   float64
}

// Label returns the classification label of the sample
func (s Sample) Label() int {
	return int(s.Target)
}

/*
Sampler is an unbounded source of samples of one shape.
Each Next advances the underlying random stream.
*/
type Sampler interface {
	Shape() Shape
	Next() Sample
}

/*
Take yields the next n samples of s paired with their row index
*/
func Take(s Sampler, n int) iter.Seq2[int, Sample] {
	return func(yield func(int, Sample) bool) {
		for i := 0; i < n; i++ {
			if !yield(i, s.Next()) {
				return
			}
		}
	}
}
