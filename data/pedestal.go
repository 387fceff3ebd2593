// Copyright 2019 Radiation Detection and Imaging (RDI), LLC
// Use of this source code is governed by the BSD 3-clause
// license that can be found in the LICENSE file.

package data

import (
	"github.com/rditech/hcal-pedestals/detmap"

	"github.com/rs/zerolog"
	"go-hep.org/x/hep/hbook"
)

// Aggregator pools the pedestal mean and RMS of every channel of a run
// into sensor groups.
type Aggregator struct {
	Store    Store
	Geometry *Geometry
	Paths    DQMPaths

	// Map, when set, is filled at (ieta, iphi) with the mean of every
	// classified HB/HE channel.
	Map *hbook.H2D

	Log zerolog.Logger
}

// NewPedestalMap returns a histogram binned like the HB/HE channels.
func NewPedestalMap() *hbook.H2D {
	return hbook.NewH2D(83, -41.5, 41.5, 72, 0.5, 72.5)
}

type pedestalPlots struct {
	mean, rms Histogram2D
}

func (a *Aggregator) load(depth string) (pedestalPlots, error) {
	var p pedestalPlots
	var err error
	p.mean, err = a.Store.Get(a.Paths.Mean(depth))
	if err != nil {
		return p, err
	}
	p.rms, err = a.Store.Get(a.Paths.RMS(depth))
	if err != nil {
		return p, err
	}
	a.Log.Debug().Str("depth", depth).Msg("loaded pedestal plots")
	return p, nil
}

func (a *Aggregator) Aggregate() (*Sensors, error) {
	sensors := &Sensors{}

	for depth := 1; depth <= NumDepths; depth++ {
		plots, err := a.load(DepthLabel(depth))
		if err != nil {
			return nil, err
		}
		if err := a.fillBarrel(sensors, depth, plots); err != nil {
			return nil, err
		}
		a.fillForward(sensors, plots)
	}

	plots, err := a.load(DepthHO)
	if err != nil {
		return nil, err
	}
	a.fillOuter(sensors, plots)

	for g := Group(0); g < NumGroups; g++ {
		a.Log.Debug().
			Str("group", g.String()).
			Int("samples", sensors[g].Len()).
			Msg("collected pedestals")
	}
	return sensors, nil
}

func (a *Aggregator) fillBarrel(sensors *Sensors, depth int, p pedestalPlots) (err error) {
	detmap.Barrel.Each(func(i, j int) {
		if err != nil {
			return
		}
		mean := p.mean.BinContent(i, j)
		if mean == 0 {
			return
		}
		ch := detmap.MapChannel(depth, i, j)
		xmap, ymap := ch.GeometryBin()
		code := a.Geometry.SensorSize(depth, xmap, ymap)
		if code == 0 {
			return
		}
		g, ok := GroupForSensorSize(code)
		if !ok {
			err = &ErrUnknownSensorSize{Code: code, Depth: depth, XMap: xmap, YMap: ymap}
			return
		}
		sensors[g].Add(mean, p.rms.BinContent(i, j))
		if a.Map != nil {
			a.Map.Fill(float64(ch.IEta), float64(ch.IPhi), mean)
		}
	})
	return
}

func (a *Aggregator) fillForward(sensors *Sensors, p pedestalPlots) {
	detmap.Forward.Each(func(i, j int) {
		// minus side
		if mean := p.mean.BinContent(i, j); mean != 0 {
			sensors[HF].Add(mean, p.rms.BinContent(i, j))
		}
		// plus side
		iPlus := i + detmap.ForwardPlusOffset
		if mean := p.mean.BinContent(iPlus, j); mean != 0 {
			sensors[HF].Add(mean, p.rms.BinContent(iPlus, j))
		}
	})
}

func (a *Aggregator) fillOuter(sensors *Sensors, p pedestalPlots) {
	detmap.Outer.Each(func(i, j int) {
		if mean := p.mean.BinContent(i, j); mean != 0 {
			sensors[HO].Add(mean, p.rms.BinContent(i, j))
		}
	})
}
