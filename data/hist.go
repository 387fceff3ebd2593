// Copyright 2019 Radiation Detection and Imaging (RDI), LLC
// Use of this source code is governed by the BSD 3-clause
// license that can be found in the LICENSE file.

package data

import (
	"math"

	"go-hep.org/x/hep/hbook"
)

// Histogram2D is read with ROOT bin numbering: the first in-range bin on
// each axis is 1, and bins outside the axis read as 0.
type Histogram2D interface {
	BinContent(i, j int) float64
}

// Grid is a dense Histogram2D.
type Grid struct {
	Nx, Ny int
	values []float64
}

func NewGrid(nx, ny int) *Grid {
	if nx < 0 {
		nx = 0
	}
	if ny < 0 {
		ny = 0
	}
	return &Grid{
		Nx:     nx,
		Ny:     ny,
		values: make([]float64, nx*ny),
	}
}

func (g *Grid) inRange(i, j int) bool {
	return i >= 1 && i <= g.Nx && j >= 1 && j <= g.Ny
}

func (g *Grid) BinContent(i, j int) float64 {
	if !g.inRange(i, j) {
		return 0
	}
	return g.values[(j-1)*g.Nx+(i-1)]
}

// Set ignores bins outside the grid.
func (g *Grid) Set(i, j int, v float64) {
	if !g.inRange(i, j) {
		return
	}
	g.values[(j-1)*g.Nx+(i-1)] = v
}

// GridFromH2D copies the sum of weights of every in-range bin of h. Bin
// indices are recovered from the bin centers so the layout of the hbook
// bin slice does not matter.
func GridFromH2D(h *hbook.H2D) *Grid {
	b := h.Binning
	g := NewGrid(b.Nx, b.Ny)
	if b.Nx == 0 || b.Ny == 0 {
		return g
	}
	dx := (b.XRange.Max - b.XRange.Min) / float64(b.Nx)
	dy := (b.YRange.Max - b.YRange.Min) / float64(b.Ny)
	for _, bin := range b.Bins {
		i := int(math.Floor((bin.XMid()-b.XRange.Min)/dx)) + 1
		j := int(math.Floor((bin.YMid()-b.YRange.Min)/dy)) + 1
		g.Set(i, j, bin.SumW())
	}
	return g
}
