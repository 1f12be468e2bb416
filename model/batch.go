package model

import (
	"fmt"
	"go-ml.dev/pkg/iokit"
	"go-ml.dev/pkg/synth/fu"
	"golang.org/x/xerrors"
	"os"
	"sync/atomic"
)

var stageSeq atomic.Int64

type staging struct {
	temp, path string
}

/*
Batch holds dataset files written to hidden staging files.
Commit moves all of them into place or none of them.
*/
type Batch struct {
	staged []staging
}

/*
Stage returns the output a file destined for path is written to.
The staging file lives in dir, compress wraps it into xz.
*/
func (b *Batch) Stage(dir, path string, compress bool) iokit.Output {
	n := stageSeq.Add(1)
	temp := fu.DataPath(dir, fmt.Sprintf(".synth-%d-%d.partial", os.Getpid(), n))
	b.staged = append(b.staged, staging{temp, path})
	var out iokit.Output = iokit.File(temp)
	if compress {
		out = iokit.Lzma2(out)
	}
	return out
}

// Paths lists destinations of the staged files
func (b *Batch) Paths() []string {
	r := make([]string, len(b.staged))
	for i, s := range b.staged {
		r[i] = s.path
	}
	return r
}

/*
Discard removes staged files
*/
func (b *Batch) Discard() {
	for _, s := range b.staged {
		_ = os.Remove(s.temp)
	}
	b.staged = nil
}

/*
Commit renames staged files to their destinations. Files it replaces are kept
aside until every rename succeeds, a failed rename restores them and removes
what was already committed.
*/
func (b *Batch) Commit() (err error) {
	defer func() {
		if err != nil {
			b.Discard()
		}
	}()
	for _, s := range b.staged {
		if st, e := os.Stat(s.path); e == nil && st.IsDir() {
			return xerrors.Errorf("failed to commit %v: destination is a directory", s.path)
		}
	}

	done := []string{}
	backups := []staging{}
	rollback := func() {
		for _, p := range done {
			_ = os.Remove(p)
		}
		for _, bk := range backups {
			_ = os.Rename(bk.temp, bk.path)
		}
	}
	for _, s := range b.staged {
		if _, e := os.Lstat(s.path); e == nil {
			bk := s.temp + ".orig"
			if e = os.Rename(s.path, bk); e != nil {
				rollback()
				return xerrors.Errorf("failed to commit %v: %w", s.path, e)
			}
			backups = append(backups, staging{bk, s.path})
		}
		if e := os.Rename(s.temp, s.path); e != nil {
			rollback()
			return xerrors.Errorf("failed to commit %v: %w", s.path, e)
		}
		done = append(done, s.path)
	}
	for _, bk := range backups {
		_ = os.Remove(bk.temp)
	}
	b.staged = nil
	return nil
}
