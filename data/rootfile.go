// Copyright 2019 Radiation Detection and Imaging (RDI), LLC
// Use of this source code is governed by the BSD 3-clause
// license that can be found in the LICENSE file.

package data

import (
	"fmt"
	"strings"

	"go-hep.org/x/hep/hbook/rootcnv"
	"go-hep.org/x/hep/rootio"
)

// RootStore serves the TH2 objects of a ROOT file. Paths are slash
// separated and walked one directory at a time.
type RootStore struct {
	Name string
	file *rootio.File
	root objectGetter
}

func OpenRootFile(path string) (*RootStore, error) {
	f, err := rootio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening root file %q: %w", path, err)
	}
	return &RootStore{Name: path, file: f, root: f}, nil
}

func NewRootStore(r rootio.Reader, name string) (*RootStore, error) {
	f, err := rootio.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("error reading root file %q: %w", name, err)
	}
	return &RootStore{Name: name, file: f, root: f}, nil
}

func (s *RootStore) Close() error {
	if s.file == nil {
		return nil
	}
	return s.file.Close()
}

type objectGetter interface {
	Get(namecycle string) (rootio.Object, error)
}

func (s *RootStore) lookup(path string) (rootio.Object, error) {
	dir := s.root
	var obj rootio.Object

	parts := strings.Split(strings.Trim(path, "/"), "/")
	for i, name := range parts {
		o, err := dir.Get(name)
		if err != nil {
			return nil, &ErrMissingHistogram{Path: path, Err: err}
		}
		obj = o
		if i == len(parts)-1 {
			break
		}
		next, ok := o.(objectGetter)
		if !ok {
			return nil, &ErrMissingHistogram{
				Path: path,
				Err:  fmt.Errorf("%q is a %s, not a directory", name, o.Class()),
			}
		}
		dir = next
	}
	return obj, nil
}

func (s *RootStore) Get(path string) (Histogram2D, error) {
	obj, err := s.lookup(path)
	if err != nil {
		return nil, err
	}
	h2, ok := obj.(rootio.H2)
	if !ok {
		return nil, &ErrNotHistogram{Path: path, Class: obj.Class()}
	}
	hb, err := rootcnv.H2D(h2)
	if err != nil {
		return nil, fmt.Errorf("error converting %q: %w", path, err)
	}
	return GridFromH2D(hb), nil
}
