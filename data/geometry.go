// Copyright 2019 Radiation Detection and Imaging (RDI), LLC
// Use of this source code is governed by the BSD 3-clause
// license that can be found in the LICENSE file.

package data

import (
	"bytes"
	"fmt"

	"github.com/gobuffalo/packr"
)

var GeometryBox = packr.NewBox("../detmap/tables")

const GeometryFile = "channel_SiPM_size.root"

func GeometryPath(depth int) string {
	return fmt.Sprintf("MyHcalAnlzr/hist2D_depth%d", depth)
}

// Geometry is the sensor size table, one histogram per depth. A bin holds
// the sensor size code of the channel mapped there, 0 where there is none.
type Geometry struct {
	depths map[int]Histogram2D
}

func NewGeometry() *Geometry {
	return &Geometry{depths: make(map[int]Histogram2D)}
}

func (g *Geometry) Set(depth int, h Histogram2D) {
	g.depths[depth] = h
}

func (g *Geometry) SensorSize(depth, xmap, ymap int) int {
	if g == nil {
		return 0
	}
	h, ok := g.depths[depth]
	if !ok || h == nil {
		return 0
	}
	return int(h.BinContent(xmap, ymap))
}

// LoadGeometry reads the tables of every depth from s.
func LoadGeometry(s Store) (*Geometry, error) {
	g := NewGeometry()
	for depth := 1; depth <= NumDepths; depth++ {
		h, err := s.Get(GeometryPath(depth))
		if err != nil {
			return nil, fmt.Errorf("error loading geometry for depth %d: %w", depth, err)
		}
		g.Set(depth, h)
	}
	return g, nil
}

// OpenGeometry loads the table from a ROOT file, or from the copy bundled in
// GeometryBox when path is empty.
func OpenGeometry(path string) (*Geometry, error) {
	var store *RootStore
	var err error
	if path == "" {
		var buf []byte
		buf, err = GeometryBox.Find(GeometryFile)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrNoGeometry, err)
		}
		store, err = NewRootStore(memFile{bytes.NewReader(buf)}, GeometryFile)
	} else {
		store, err = OpenRootFile(path)
	}
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return LoadGeometry(store)
}
