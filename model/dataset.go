package model

import (
	"bufio"
	"go-ml.dev/pkg/synth/fu"
	"golang.org/x/xerrors"
	"gonum.org/v1/gonum/stat"
	"io"
	"strconv"
	"strings"
)

/*
Split names the output file a batch of samples goes to
*/
type Split string

const (
	Train Split = "train"
	Test  Split = "test"
)

// DefaultSplits are written in this order from one random stream
var DefaultSplits = []Split{Train, Test}

/*
Dataset describes one output file: count rows of the shape for the split
*/
type Dataset struct {
	Shape Shape
	Split Split
	Count int
}

/*
Header is the first line of the file
*/
func (ds Dataset) Header() string {
	if ds.Shape.Kind() == Regression {
		return "Index X Y"
	}
	return "Index X Y Type"
}

/*
FileName is the base name of the file, like clf_train.csv
*/
func (ds Dataset) FileName(compress bool) string {
	n := ds.Shape.Kind().Prefix() + "_" + string(ds.Split) + ".csv"
	if compress {
		n += ".xz"
	}
	return n
}

/*
Summary describes what was written for a split
*/
type Summary struct {
	Rows  int
	First Sample
	// Mean of the targets. For classification it's the share of label 1.
	Mean float64
}

/*
Row formats the sample as a space delimited line without the newline
*/
func Row(i int, s Sample) string {
	b := strings.Builder{}
	b.WriteString(strconv.Itoa(i))
	for _, x := range s.Features {
		b.WriteByte(' ')
		b.WriteString(fu.Ftoa(x))
	}
	b.WriteByte(' ')
	b.WriteString(fu.Ftoa(s.Target))
	return b.String()
}

/*
Write pulls ds.Count samples from the sampler and writes them with the header
*/
func Write(w io.Writer, ds Dataset, sampler Sampler) (sm Summary, err error) {
	if sampler.Shape() != ds.Shape {
		err = xerrors.Errorf("sampler generates %v, dataset wants %v", sampler.Shape(), ds.Shape)
		return
	}
	if ds.Count < 0 {
		err = xerrors.Errorf("negative row count %d", ds.Count)
		return
	}
	bw := bufio.NewWriter(w)
	if _, err = bw.WriteString(ds.Header() + "\n"); err != nil {
		return sm, xerrors.Errorf("failed to write header: %w", err)
	}
	targets := make([]float64, 0, ds.Count)
	for i, s := range Take(sampler, ds.Count) {
		if i == 0 {
			sm.First = s
		}
		targets = append(targets, s.Target)
		if _, err = bw.WriteString(Row(i, s) + "\n"); err != nil {
			return sm, xerrors.Errorf("failed to write row %d: %w", i, err)
		}
	}
	if err = bw.Flush(); err != nil {
		return sm, xerrors.Errorf("failed to flush rows: %w", err)
	}
	sm.Rows = len(targets)
	if sm.Rows > 0 {
		sm.Mean = stat.Mean(targets, nil)
	}
	return
}
