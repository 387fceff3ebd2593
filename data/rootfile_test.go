// Copyright 2019 Radiation Detection and Imaging (RDI), LLC
// Use of this source code is governed by the BSD 3-clause
// license that can be found in the LICENSE file.

package data

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/rootio"
)

func writeRootFile(t *testing.T, objs map[string]rootio.Object) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.root")
	f, err := rootio.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	for name, obj := range objs {
		if err := f.Put(name, obj); err != nil {
			t.Fatal(err)
		}
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

// sensorTable is binned like the geometry table: unit bins starting at 0.
func sensorTable(fills ...[3]float64) *hbook.H2D {
	h := hbook.NewH2D(64, 0, 64, 72, 0, 72)
	for _, f := range fills {
		h.Fill(f[0], f[1], f[2])
	}
	return h
}

func TestRootStoreGet(t *testing.T) {
	h := sensorTable([3]float64{3.5, 0.5, 4}, [3]float64{59.5, 9.5, 6})
	path := writeRootFile(t, map[string]rootio.Object{
		"hist2D_depth1": rootio.NewH2DFrom(h),
	})

	s, err := OpenRootFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	g, err := s.Get("hist2D_depth1")
	if err != nil {
		t.Fatal(err)
	}
	for _, c := range []struct {
		i, j int
		want float64
	}{
		{4, 1, 4},
		{60, 10, 6},
		{5, 1, 0},
		{0, 1, 0},
		{65, 1, 0},
	} {
		if got := g.BinContent(c.i, c.j); got != c.want {
			t.Errorf("bin(%d,%d) = %v, want %v", c.i, c.j, got, c.want)
		}
	}
}

func TestRootStoreErrors(t *testing.T) {
	path := writeRootFile(t, map[string]rootio.Object{
		"hist2D_depth1": rootio.NewH2DFrom(sensorTable()),
		"hist1D":        rootio.NewH1DFrom(hbook.NewH1D(10, 0, 10)),
	})
	s, err := OpenRootFile(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	var missing *ErrMissingHistogram
	if _, err := s.Get("nothere"); !errors.As(err, &missing) || missing.Path != "nothere" {
		t.Errorf("missing key: error = %v", err)
	}
	if _, err := s.Get("hist2D_depth1/below"); !errors.As(err, &missing) {
		t.Errorf("path through a histogram: error = %v", err)
	}

	var wrong *ErrNotHistogram
	if _, err := s.Get("hist1D"); !errors.As(err, &wrong) || wrong.Class != "TH1D" {
		t.Errorf("1D histogram: error = %v", err)
	}
}

type memDir struct {
	keys map[string]rootio.Object
}

func newMemDir() *memDir {
	return &memDir{keys: make(map[string]rootio.Object)}
}

func (d *memDir) Class() string { return "TDirectoryFile" }

func (d *memDir) Get(name string) (rootio.Object, error) {
	obj, ok := d.keys[name]
	if !ok {
		return nil, fmt.Errorf("no key %q", name)
	}
	return obj, nil
}

// mkdirAll returns the directory at path, creating the missing levels.
func (d *memDir) mkdirAll(path ...string) *memDir {
	dir := d
	for _, name := range path {
		next, ok := dir.keys[name].(*memDir)
		if !ok {
			next = newMemDir()
			dir.keys[name] = next
		}
		dir = next
	}
	return dir
}

func TestRootStoreWalksDirectories(t *testing.T) {
	top := newMemDir()
	mean := sensorTable([3]float64{13.5, 4.5, 1.25})
	top.mkdirAll("DQMData", "Run 330000", "Hcal", "Run summary", "PedestalTask", "Mean", "depth").
		keys["depth1"] = rootio.NewH2DFrom(mean)

	s := &RootStore{Name: "mem", root: top}
	paths := DQMPaths{Run: "330000"}

	g, err := s.Get(paths.Mean(DepthLabel(1)))
	if err != nil {
		t.Fatal(err)
	}
	if got := g.BinContent(14, 5); got != 1.25 {
		t.Errorf("bin(14,5) = %v, want 1.25", got)
	}

	var missing *ErrMissingHistogram
	if _, err := s.Get(paths.RMS(DepthLabel(1))); !errors.As(err, &missing) {
		t.Errorf("missing RMS folder: error = %v", err)
	}
	if err := s.Close(); err != nil {
		t.Errorf("Close = %v", err)
	}
}

func TestLoadGeometryFromRootStore(t *testing.T) {
	top := newMemDir()
	dir := top.mkdirAll("MyHcalAnlzr")
	for depth := 1; depth <= NumDepths; depth++ {
		h := sensorTable([3]float64{3.5, 0.5, float64(depth%4 + 3)})
		dir.keys[fmt.Sprintf("hist2D_depth%d", depth)] = rootio.NewH2DFrom(h)
	}

	geom, err := LoadGeometry(&RootStore{Name: "mem", root: top})
	if err != nil {
		t.Fatal(err)
	}
	for depth := 1; depth <= NumDepths; depth++ {
		if got, want := geom.SensorSize(depth, 4, 1), depth%4+3; got != want {
			t.Errorf("depth %d: SensorSize = %d, want %d", depth, got, want)
		}
	}
}

func TestOpenGeometryWithoutTables(t *testing.T) {
	path := writeRootFile(t, map[string]rootio.Object{
		"hist2D_depth1": rootio.NewH2DFrom(sensorTable()),
	})
	_, err := OpenGeometry(path)
	var missing *ErrMissingHistogram
	if !errors.As(err, &missing) || missing.Path != GeometryPath(1) {
		t.Fatalf("error = %v, want missing %s", err, GeometryPath(1))
	}
}
