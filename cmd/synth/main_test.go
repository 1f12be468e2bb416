package main

import (
	"bytes"
	"gotest.tools/assert"
	"os"
	"path/filepath"
	"testing"
)

func Test_RunBoth(t *testing.T) {
	dir := t.TempDir()
	out, errs := bytes.Buffer{}, bytes.Buffer{}
	code := run([]string{"-clf", "quarters", "-reg", "twodimcubic", "-dir", dir, "-count", "20"}, &out, &errs)
	assert.Equal(t, code, 0, errs.String())
	for _, n := range []string{"clf_train.csv", "clf_test.csv", "reg_train.csv", "reg_test.csv"} {
		_, err := os.Stat(filepath.Join(dir, n))
		assert.NilError(t, err)
	}
	assert.Assert(t, bytes.Contains(errs.Bytes(), []byte("Done.")))
}

func Test_RunSameSeedSameBytes(t *testing.T) {
	a, b := t.TempDir(), t.TempDir()
	for _, dir := range []string{a, b} {
		code := run([]string{"-reg", "linear", "-dir", dir, "-xz"}, &bytes.Buffer{}, &bytes.Buffer{})
		assert.Equal(t, code, 0)
	}
	x, err := os.ReadFile(filepath.Join(a, "reg_train.csv.xz"))
	assert.NilError(t, err)
	y, err := os.ReadFile(filepath.Join(b, "reg_train.csv.xz"))
	assert.NilError(t, err)
	assert.Assert(t, bytes.Equal(x, y))
}

func Test_RunUsageErrors(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	for _, args := range [][]string{
		{"-clf", "spiral"},
		{"-reg", "circle"},
		{"-clf", "circle", "-reg", "sine"},
		{"-clf", "circle", "-count", "0"},
		{"-reg", "linear", "-noise", "-1"},
		{"-unknown"},
		{"-clf", "circle", "validate"},
	} {
		errs := bytes.Buffer{}
		code := run(append(args, "-dir", dir), &bytes.Buffer{}, &errs)
		assert.Equal(t, code, 2, "%v: %v", args, errs.String())
		_, err := os.Stat(dir)
		assert.Assert(t, os.IsNotExist(err), "%v", args)
	}
}

func Test_RunNothingToDo(t *testing.T) {
	out := bytes.Buffer{}
	assert.Equal(t, run([]string{"-dir", t.TempDir()}, &out, &bytes.Buffer{}), 2)
	assert.Equal(t, out.String(), "Nothing to do.\n")
	assert.Equal(t, run([]string{"-h"}, &bytes.Buffer{}, &bytes.Buffer{}), 0)
}

func Test_RunSplits(t *testing.T) {
	dir := t.TempDir()
	code := run([]string{"-clf", "circle", "test", "-dir", dir, "-count", "5"}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Equal(t, code, 0)
	files, err := os.ReadDir(dir)
	assert.NilError(t, err)
	assert.Equal(t, len(files), 1)
	assert.Equal(t, files[0].Name(), "clf_test.csv")

	dir = t.TempDir()
	code = run([]string{"train", "-reg", "cubic", "train", "-dir", dir, "-count", "5"}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.Equal(t, code, 0)
	files, err = os.ReadDir(dir)
	assert.NilError(t, err)
	assert.Equal(t, len(files), 1)
	assert.Equal(t, files[0].Name(), "reg_train.csv")
}

func Test_RunKeepsNothingOnFailure(t *testing.T) {
	dir := t.TempDir()
	assert.NilError(t, os.MkdirAll(filepath.Join(dir, "reg_test.csv", "keep"), 0755))
	errs := bytes.Buffer{}
	code := run([]string{"-clf", "halfs", "-reg", "linear", "-dir", dir, "-count", "5"}, &bytes.Buffer{}, &errs)
	assert.Equal(t, code, 1)
	assert.Assert(t, bytes.Contains(errs.Bytes(), []byte("ERROR: ")), errs.String())
	files, err := os.ReadDir(dir)
	assert.NilError(t, err)
	assert.Equal(t, len(files), 1)
	assert.Equal(t, files[0].Name(), "reg_test.csv")
}
