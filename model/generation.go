package model

import (
	"fmt"
	"go-ml.dev/pkg/iokit"
	"go-ml.dev/pkg/synth/fu"
	"go-ml.dev/pkg/zorros/zorros"
	"golang.org/x/xerrors"
	"os"
)

const (
	DefaultCount = 1000
	DefaultSeed  = 1337
	DefaultNoise = 0.3
)

/*
Generation is the default driver writing one file per split from a single sampler
*/
type Generation struct {
	Shape    Shape        // shape to generate
	Count    int          // rows per split, DefaultCount if zero
	Splits   []Split      // DefaultSplits if empty
	Dir      string       // target directory, current if empty
	Compress bool         // xz compress the files
	Verbose  func(string) // progress callback
}

/*
Report is a generation report
*/
type Report struct {
	Shape  Shape
	Splits []SplitReport
}

/*
SplitReport describes one written file
*/
type SplitReport struct {
	Split Split
	Path  string
	Summary
}

func (g Generation) verbose(s string) {
	if g.Verbose != nil {
		g.Verbose(s)
	}
}

/*
Run writes every split pulling samples sequentially from the sampler.
Files appear only when all splits are written, nothing is left behind on failure.
*/
func (g Generation) Run(sampler Sampler) (*Report, error) {
	b := &Batch{}
	report, err := g.Stage(b, sampler)
	if err != nil {
		b.Discard()
		return nil, err
	}
	if err = b.Commit(); err != nil {
		return nil, err
	}
	g.verbose("Done.")
	return report, nil
}

/*
LuckyRun runs generation and panics on any error
*/
func (g Generation) LuckyRun(sampler Sampler) *Report {
	r, err := g.Run(sampler)
	if err != nil {
		panic(zorros.Panic(err))
	}
	return r
}

/*
Stage writes every split into the batch without committing it.
Several generations can share one batch to be committed together.
*/
func (g Generation) Stage(b *Batch, sampler Sampler) (report *Report, err error) {
	if !g.Shape.Valid() {
		return nil, xerrors.Errorf("shape %v: %w", g.Shape, ErrUnsupportedStrategy)
	}
	if sampler == nil {
		return nil, xerrors.New("nil sampler")
	}
	if sampler.Shape() != g.Shape {
		return nil, xerrors.Errorf("sampler generates %v, generation wants %v", sampler.Shape(), g.Shape)
	}
	count := fu.Fnzi(g.Count, DefaultCount)
	if count < 0 {
		return nil, xerrors.Errorf("negative row count %d", count)
	}
	splits := g.Splits
	if len(splits) == 0 {
		splits = DefaultSplits
	}
	dir := fu.DataPath(g.Dir, "")
	if err = os.MkdirAll(dir, 0755); err != nil {
		return nil, xerrors.Errorf("failed to create directory %v: %w", dir, err)
	}

	report = &Report{Shape: g.Shape}
	for _, split := range splits {
		ds := Dataset{Shape: g.Shape, Split: split, Count: count}
		path := fu.DataPath(dir, ds.FileName(g.Compress))
		g.verbose(fmt.Sprintf("Creating data in %v", path))
		g.verbose(fmt.Sprintf("Shape: %v", g.Shape))
		sm, e := write(b.Stage(dir, path, g.Compress), ds, sampler)
		if e != nil {
			return nil, xerrors.Errorf("failed to write %v: %w", path, e)
		}
		if sm.Rows > 0 {
			g.verbose(fmt.Sprintf("Example: %v", Row(0, sm.First)))
		}
		report.Splits = append(report.Splits, SplitReport{Split: split, Path: path, Summary: sm})
	}
	return
}

func write(out iokit.Output, ds Dataset, sampler Sampler) (sm Summary, err error) {
	wh, err := out.Create()
	if err != nil {
		return sm, zorros.Trace(err)
	}
	defer wh.End()
	if sm, err = Write(wh, ds, sampler); err != nil {
		return
	}
	if err = wh.Commit(); err != nil {
		err = zorros.Trace(err)
	}
	return
}
