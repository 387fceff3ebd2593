// Copyright 2019 Radiation Detection and Imaging (RDI), LLC
// Use of this source code is governed by the BSD 3-clause
// license that can be found in the LICENSE file.

package data

import (
	"sync"
)

// Store looks up 2D histograms by path.
type Store interface {
	Get(path string) (Histogram2D, error)
}

type MemStore struct {
	sync.RWMutex
	hists map[string]Histogram2D
}

func NewMemStore() *MemStore {
	return &MemStore{hists: make(map[string]Histogram2D)}
}

func (s *MemStore) Put(path string, h Histogram2D) {
	s.Lock()
	defer s.Unlock()
	s.hists[path] = h
}

func (s *MemStore) Get(path string) (Histogram2D, error) {
	s.RLock()
	defer s.RUnlock()
	h, ok := s.hists[path]
	if !ok {
		return nil, &ErrMissingHistogram{Path: path}
	}
	return h, nil
}
