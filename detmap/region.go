// Copyright 2019 Radiation Detection and Imaging (RDI), LLC
// Use of this source code is governed by the BSD 3-clause
// license that can be found in the LICENSE file.

package detmap

// Region is a rectangle of DQM bins, bounds inclusive.
type Region struct {
	Name       string
	XMin, XMax int
	YMin, YMax int
}

var (
	// Barrel covers HB and HE, classified through the geometry table.
	Barrel = Region{Name: "HBHE", XMin: 14, XMax: 71, YMin: 1, YMax: 72}
	// Forward is the HF minus side; the plus side sits ForwardPlusOffset
	// bins further in x.
	Forward = Region{Name: "HF", XMin: 1, XMax: 13, YMin: 1, YMax: 72}
	Outer   = Region{Name: "HO", XMin: 14, XMax: 71, YMin: 1, YMax: 72}
)

const ForwardPlusOffset = 71

// Each calls fn for every bin, x outer and y inner.
func (r Region) Each(fn func(i, j int)) {
	for i := r.XMin; i <= r.XMax; i++ {
		for j := r.YMin; j <= r.YMax; j++ {
			fn(i, j)
		}
	}
}

func (r Region) Contains(i, j int) bool {
	return i >= r.XMin && i <= r.XMax && j >= r.YMin && j <= r.YMax
}

func (r Region) NBins() int {
	return (r.XMax - r.XMin + 1) * (r.YMax - r.YMin + 1)
}
