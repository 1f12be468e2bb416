package fu

import (
	"path/filepath"
)

/*
DataPath resolves s against dir unless s is already absolute.
An empty dir means the current directory.
*/
func DataPath(dir, s string) string {
	if filepath.IsAbs(s) {
		return s
	}
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, s)
}
