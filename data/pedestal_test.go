// Copyright 2019 Radiation Detection and Imaging (RDI), LLC
// Use of this source code is governed by the BSD 3-clause
// license that can be found in the LICENSE file.

package data

import (
	"errors"
	"testing"
)

const testRun = "330000"

type runFixture struct {
	store    *MemStore
	geometry *Geometry
	mean     map[string]*Grid
	rms      map[string]*Grid
}

func newRunFixture() *runFixture {
	f := &runFixture{
		store:    NewMemStore(),
		geometry: NewGeometry(),
		mean:     make(map[string]*Grid),
		rms:      make(map[string]*Grid),
	}
	paths := DQMPaths{Run: testRun}
	labels := []string{DepthHO}
	for depth := 1; depth <= NumDepths; depth++ {
		labels = append(labels, DepthLabel(depth))
		f.geometry.Set(depth, NewGrid(85, 72))
	}
	for _, l := range labels {
		f.mean[l] = NewGrid(84, 72)
		f.rms[l] = NewGrid(84, 72)
		f.store.Put(paths.Mean(l), f.mean[l])
		f.store.Put(paths.RMS(l), f.rms[l])
	}
	return f
}

func (f *runFixture) set(depth string, i, j int, mean, rms float64) {
	f.mean[depth].Set(i, j, mean)
	f.rms[depth].Set(i, j, rms)
}

func (f *runFixture) sensorSize(depth, xmap, ymap, code int) {
	f.geometry.depths[depth].(*Grid).Set(xmap, ymap, float64(code))
}

func (f *runFixture) aggregate(t *testing.T) *Sensors {
	t.Helper()
	a := &Aggregator{
		Store:    f.store,
		Geometry: f.geometry,
		Paths:    DQMPaths{Run: testRun},
	}
	s, err := a.Aggregate()
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func assertOnly(t *testing.T, s *Sensors, counts map[Group]int) {
	t.Helper()
	for g := Group(0); g < NumGroups; g++ {
		if got := s[g].Len(); got != counts[g] {
			t.Errorf("group %v has %d samples, want %d", g, got, counts[g])
		}
		if len(s[g].Means) != len(s[g].RMSes) {
			t.Errorf("group %v has %d means and %d rmses", g, len(s[g].Means), len(s[g].RMSes))
		}
	}
}

func TestAggregateBarrelSingleChannel(t *testing.T) {
	f := newRunFixture()
	f.set("1", 14, 1, 8.25, 1.5)
	// ieta -29 lands on geometry bin x = 4
	f.sensorSize(1, 4, 1, 4)

	s := f.aggregate(t)
	assertOnly(t, s, map[Group]int{Size4: 1})
	if s[Size4].Means[0] != 8.25 || s[Size4].RMSes[0] != 1.5 {
		t.Fatalf("group 4 samples = %+v", s[Size4])
	}
}

func TestAggregateBarrelAcrossBoundary(t *testing.T) {
	f := newRunFixture()
	f.set("2", 42, 5, 3, 0.5)
	f.set("2", 43, 5, 4, 0.6)
	// ieta -1 and +1 are one geometry bin apart with nothing between
	f.sensorSize(2, 32, 5, 3)
	f.sensorSize(2, 34, 5, 6)
	f.sensorSize(2, 33, 5, 5)

	s := f.aggregate(t)
	assertOnly(t, s, map[Group]int{Size3: 1, Size6: 1})
}

func TestAggregateZeroMeanSkipped(t *testing.T) {
	f := newRunFixture()
	f.set("1", 20, 10, 0, 2.5)
	f.sensorSize(1, 20-43+33, 10, 5)

	s := f.aggregate(t)
	assertOnly(t, s, map[Group]int{})
}

func TestAggregateNoChannelDiscarded(t *testing.T) {
	f := newRunFixture()
	f.set("3", 30, 30, 5, 1)

	s := f.aggregate(t)
	assertOnly(t, s, map[Group]int{})
}

func TestAggregateUsesDepthGeometry(t *testing.T) {
	f := newRunFixture()
	f.set("5", 50, 2, 5, 1)
	xmap := 50 - 42 + 33
	f.sensorSize(4, xmap, 2, 3)

	s := f.aggregate(t)
	assertOnly(t, s, map[Group]int{})

	f.sensorSize(5, xmap, 2, 6)
	s = f.aggregate(t)
	assertOnly(t, s, map[Group]int{Size6: 1})
}

func TestAggregateForwardBypassesGeometry(t *testing.T) {
	f := newRunFixture()
	f.set("1", 5, 10, 6.5, 0.75)
	for depth := 1; depth <= NumDepths; depth++ {
		for x := 1; x <= 85; x++ {
			f.sensorSize(depth, x, 10, 3)
		}
	}

	s := f.aggregate(t)
	assertOnly(t, s, map[Group]int{HF: 1})
	if s[HF].Means[0] != 6.5 || s[HF].RMSes[0] != 0.75 {
		t.Fatalf("HF samples = %+v", s[HF])
	}
}

func TestAggregateForwardBothSides(t *testing.T) {
	f := newRunFixture()
	f.set("1", 5, 10, 6, 1)
	f.set("1", 76, 10, 7, 2)
	f.set("7", 13, 72, 8, 3)
	f.set("7", 84, 72, 9, 0)

	s := f.aggregate(t)
	assertOnly(t, s, map[Group]int{HF: 4})
	want := []float64{6, 7, 8, 9}
	for k, v := range want {
		if s[HF].Means[k] != v {
			t.Fatalf("HF means = %v, want %v", s[HF].Means, want)
		}
	}
}

func TestAggregateOuter(t *testing.T) {
	f := newRunFixture()
	f.set(DepthHO, 14, 1, 9, 1)
	f.set(DepthHO, 71, 72, 10, 2)
	f.set(DepthHO, 13, 1, 11, 3) // outside the HO rectangle

	s := f.aggregate(t)
	assertOnly(t, s, map[Group]int{HO: 2})
}

func TestAggregateEmptyGeometry(t *testing.T) {
	f := newRunFixture()
	f.geometry = NewGeometry()
	f.set("1", 14, 1, 8, 1)
	f.set("1", 1, 1, 8, 1)
	f.set(DepthHO, 20, 20, 8, 1)

	s := f.aggregate(t)
	assertOnly(t, s, map[Group]int{HF: 1, HO: 1})
}

func TestAggregateUnknownSensorSize(t *testing.T) {
	f := newRunFixture()
	f.set("1", 14, 1, 8, 1)
	f.sensorSize(1, 4, 1, 9)

	a := &Aggregator{Store: f.store, Geometry: f.geometry, Paths: DQMPaths{Run: testRun}}
	_, err := a.Aggregate()
	var unknown *ErrUnknownSensorSize
	if !errors.As(err, &unknown) {
		t.Fatalf("error = %v, want *ErrUnknownSensorSize", err)
	}
	if unknown.Code != 9 || unknown.XMap != 4 {
		t.Fatalf("unexpected error %+v", unknown)
	}
}

func TestAggregateMissingHistogram(t *testing.T) {
	for _, path := range []string{
		DQMPaths{Run: testRun}.Mean("4"),
		DQMPaths{Run: testRun}.RMS("7"),
		DQMPaths{Run: testRun}.Mean(DepthHO),
	} {
		f := newRunFixture()
		delete(f.store.hists, path)

		a := &Aggregator{Store: f.store, Geometry: f.geometry, Paths: DQMPaths{Run: testRun}}
		s, err := a.Aggregate()
		var missing *ErrMissingHistogram
		if !errors.As(err, &missing) || missing.Path != path {
			t.Fatalf("error = %v, want missing %q", err, path)
		}
		if s != nil {
			t.Fatalf("partial result returned for missing %q", path)
		}
	}
}

func TestAggregateFillsMap(t *testing.T) {
	f := newRunFixture()
	f.set("1", 14, 1, 8, 1)
	f.sensorSize(1, 4, 1, 4)
	f.set("1", 3, 3, 8, 1)

	a := &Aggregator{
		Store:    f.store,
		Geometry: f.geometry,
		Paths:    DQMPaths{Run: testRun},
		Map:      NewPedestalMap(),
	}
	if _, err := a.Aggregate(); err != nil {
		t.Fatal(err)
	}
	g := GridFromH2D(a.Map)
	// ieta -29 is bin 13 of the -41.5..41.5 axis
	if got := g.BinContent(13, 1); got != 8 {
		t.Fatalf("map bin = %v, want 8", got)
	}
}
