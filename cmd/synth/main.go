package main

import (
	"flag"
	"fmt"
	"go-ml.dev/pkg/synth/model"
	"go-ml.dev/pkg/synth/model/shapes"
	"go-ml.dev/pkg/zorros/zlog"
	"golang.org/x/xerrors"
	"io"
	"os"
	"strings"
)

type options struct {
	clf, reg string
	dir      string
	count    int
	seed     uint64
	noise    float64
	compress bool
	verbose  bool
	commands []string
}

/*
parseFlags accepts flags mixed with train/test commands, like synth -clf circle test -xz
*/
func parseFlags(args []string, output io.Writer) (opts options, err error) {
	fs := flag.NewFlagSet("synth", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(output, "usage: synth [flags] [train] [test]")
		fs.PrintDefaults()
	}
	fs.StringVar(&opts.clf, "clf", "", "create classification data with shape: "+strings.Join(model.ShapeNames(model.Classification), ", "))
	fs.StringVar(&opts.reg, "reg", "", "create regression data with shape: "+strings.Join(model.ShapeNames(model.Regression), ", "))
	fs.StringVar(&opts.dir, "dir", "data", "target directory")
	fs.IntVar(&opts.count, "count", model.DefaultCount, "rows per split")
	fs.Uint64Var(&opts.seed, "seed", model.DefaultSeed, "random seed")
	fs.Float64Var(&opts.noise, "noise", model.DefaultNoise, "standard deviation of regression noise")
	fs.BoolVar(&opts.compress, "xz", false, "xz compress the files")
	fs.BoolVar(&opts.verbose, "v", false, "log split summaries")
	for {
		if err = fs.Parse(args); err != nil {
			return
		}
		if args = fs.Args(); len(args) == 0 {
			return
		}
		opts.commands = append(opts.commands, args[0])
		args = args[1:]
	}
}

/*
jobs resolves the requested shapes, classification first as the flags are listed
*/
func (o options) jobs() ([]model.Shape, error) {
	r := []model.Shape{}
	for _, j := range []struct {
		kind model.Kind
		name string
	}{{model.Classification, o.clf}, {model.Regression, o.reg}} {
		if j.name == "" {
			continue
		}
		s, err := model.ParseShape(j.kind, j.name)
		if err != nil {
			return nil, err
		}
		r = append(r, s)
	}
	return r, nil
}

/*
splits resolves train/test commands in the given order, both when none given
*/
func (o options) splits() ([]model.Split, error) {
	if len(o.commands) == 0 {
		return model.DefaultSplits, nil
	}
	r := []model.Split{}
	seen := map[model.Split]bool{}
	for _, c := range o.commands {
		s := model.Split(c)
		if s != model.Train && s != model.Test {
			return nil, xerrors.Errorf("unknown command %q, expected train or test", c)
		}
		if !seen[s] {
			seen[s] = true
			r = append(r, s)
		}
	}
	return r, nil
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	log := zlog.Config{Name: "synth", LogWriter: stderr, Exclusive: true}.Init()

	jobs, err := opts.jobs()
	if err != nil {
		log.Errorf("invalid arguments: %v", err)
		return 2
	}
	splits, err := opts.splits()
	if err != nil {
		log.Errorf("invalid arguments: %v", err)
		return 2
	}
	if len(jobs) == 0 {
		fmt.Fprintln(stdout, "Nothing to do.")
		return 2
	}
	if opts.count <= 0 {
		log.Errorf("row count must be positive, got %d", opts.count)
		return 2
	}
	if opts.noise < 0 {
		log.Errorf("noise deviation must not be negative, got %v", opts.noise)
		return 2
	}

	samplers := make([]*shapes.Generator, len(jobs))
	for i, shape := range jobs {
		if samplers[i], err = shapes.NewSeeded(shape, opts.seed, shapes.WithNoise(opts.noise)); err != nil {
			log.Errorf("failed to create %v generator: %v", shape, err)
			return 1
		}
	}

	batch := &model.Batch{}
	reports := []*model.Report{}
	for i, shape := range jobs {
		gen := model.Generation{
			Shape:    shape,
			Count:    opts.count,
			Splits:   splits,
			Dir:      opts.dir,
			Compress: opts.compress,
			Verbose:  func(s string) { log.Info(s) },
		}
		report, err := gen.Stage(batch, samplers[i])
		if err != nil {
			batch.Discard()
			log.Errorf("%v generation failed: %v", shape, err)
			return 1
		}
		reports = append(reports, report)
	}
	if err = batch.Commit(); err != nil {
		log.Errorf("failed to save datasets: %v", err)
		return 1
	}
	if opts.verbose {
		for _, r := range reports {
			for _, sr := range r.Splits {
				log.Infof("%v %v: %v rows, mean %v, seed %v", r.Shape, sr.Split, sr.Rows, sr.Mean, opts.seed)
			}
		}
	}
	log.Info("Done.")
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
