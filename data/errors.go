// Copyright 2019 Radiation Detection and Imaging (RDI), LLC
// Use of this source code is governed by the BSD 3-clause
// license that can be found in the LICENSE file.

package data

import (
	"errors"
	"fmt"
)

// ErrMissingHistogram is returned when a requested object is absent from
// its store.
type ErrMissingHistogram struct {
	Path string
	Err  error
}

func (e *ErrMissingHistogram) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("missing histogram %q: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("missing histogram %q", e.Path)
}

func (e *ErrMissingHistogram) Unwrap() error {
	return e.Err
}

// ErrNotHistogram is returned when a path resolves to an object that is not
// a 2D histogram.
type ErrNotHistogram struct {
	Path  string
	Class string
}

func (e *ErrNotHistogram) Error() string {
	return fmt.Sprintf("object %q is a %s, not a 2D histogram", e.Path, e.Class)
}

// ErrUnknownSensorSize is returned when the geometry table holds a code
// with no sensor group.
type ErrUnknownSensorSize struct {
	Code  int
	Depth int
	XMap  int
	YMap  int
}

func (e *ErrUnknownSensorSize) Error() string {
	return fmt.Sprintf("unknown sensor size %d at depth %d bin (%d, %d)", e.Code, e.Depth, e.XMap, e.YMap)
}

var (
	ErrBadScheme  = errors.New("bad url scheme")
	ErrBadRecord  = errors.New("malformed summary record")
	ErrNoGeometry = errors.New("no geometry table")
)
