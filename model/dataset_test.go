package model_test

import (
	"bytes"
	"errors"
	"go-ml.dev/pkg/synth/model"
	"gotest.tools/assert"
	"testing"
)

// counter emits features i/10 and the target i%2
type counter struct {
	shape model.Shape
	i     int
}

func (c *counter) Shape() model.Shape { return c.shape }

func (c *counter) Next() model.Sample {
	s := model.Sample{Features: []float64{float64(c.i) / 10, -0.25}, Target: float64(c.i % 2)}
	c.i++
	return s
}

func Test_Row(t *testing.T) {
	assert.Equal(t, model.Row(0, model.Sample{Features: []float64{0.5, -0.37}, Target: 1}), "0 0.5 -0.37 1")
	assert.Equal(t, model.Row(12, model.Sample{Features: []float64{0, 0, 1, 1, 0}, Target: 0}), "12 0 0 1 1 0 0")
	assert.Equal(t, model.Row(3, model.Sample{Features: []float64{0.125}, Target: -1.75}), "3 0.125 -1.75")
}

func Test_Write(t *testing.T) {
	bf := bytes.Buffer{}
	ds := model.Dataset{Shape: model.Circle, Split: model.Train, Count: 4}
	sm, err := model.Write(&bf, ds, &counter{shape: model.Circle})
	assert.NilError(t, err)
	assert.Equal(t, bf.String(), "Index X Y Type\n0 0 -0.25 0\n1 0.1 -0.25 1\n2 0.2 -0.25 0\n3 0.3 -0.25 1\n")
	assert.Equal(t, sm.Rows, 4)
	assert.Equal(t, sm.Mean, 0.5)
	assert.DeepEqual(t, sm.First, model.Sample{Features: []float64{0, -0.25}, Target: 0})
	assert.Equal(t, ds.FileName(false), "clf_train.csv")

	bf.Reset()
	ds = model.Dataset{Shape: model.Linear, Split: model.Test, Count: 0}
	sm, err = model.Write(&bf, ds, &counter{shape: model.Linear})
	assert.NilError(t, err)
	assert.Equal(t, bf.String(), "Index X Y\n")
	assert.Equal(t, sm.Rows, 0)
	assert.Equal(t, ds.FileName(true), "reg_test.csv.xz")
}

func Test_WriteMismatch(t *testing.T) {
	_, err := model.Write(&bytes.Buffer{}, model.Dataset{Shape: model.Circle, Count: 1}, &counter{shape: model.Halfs})
	assert.ErrorContains(t, err, "sampler generates halfs")
	_, err = model.Write(&bytes.Buffer{}, model.Dataset{Shape: model.Circle, Count: -1}, &counter{shape: model.Circle})
	assert.ErrorContains(t, err, "negative row count")
}

type failing struct{}

func (failing) Write([]byte) (int, error) { return 0, errors.New("disk is full") }

func Test_WriteFailure(t *testing.T) {
	_, err := model.Write(failing{}, model.Dataset{Shape: model.Circle, Count: 10000}, &counter{shape: model.Circle})
	assert.ErrorContains(t, err, "disk is full")
}

func Test_Take(t *testing.T) {
	c := &counter{shape: model.Circle}
	n := 0
	for i, s := range model.Take(c, 10) {
		assert.Equal(t, s.Features[0], float64(i)/10)
		n++
		if i == 4 {
			break
		}
	}
	assert.Equal(t, n, 5)
	// samples are not consumed past the break
	assert.Equal(t, c.i, 5)
}
