package model

import "golang.org/x/xerrors"

// ErrUnsupportedStrategy is returned for shapes outside the enumerated set
var ErrUnsupportedStrategy = xerrors.New("unsupported strategy")
