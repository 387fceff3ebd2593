// Copyright 2019 Radiation Detection and Imaging (RDI), LLC
// Use of this source code is governed by the BSD 3-clause
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/rditech/hcal-pedestals/data"
	"github.com/rditech/hcal-pedestals/plot"
	"github.com/rditech/hcal-pedestals/upload"

	"github.com/rs/zerolog"
)

type timestamper interface {
	Timestamp(ctx context.Context, run string) (string, error)
}

type extraction struct {
	Run        string
	Store      data.Store
	Geometry   *data.Geometry
	Format     data.FormatOptions
	Timestamps timestamper
	Sinks      upload.Sinks
	PlotFile   string
	Log        zerolog.Logger
}

// Execute builds the record of one run and writes its line to out. Nothing
// is written when any input is missing.
func (e *extraction) Execute(ctx context.Context, out io.Writer) error {
	agg := &data.Aggregator{
		Store:    e.Store,
		Geometry: e.Geometry,
		Paths:    data.DQMPaths{Run: e.Run},
		Log:      e.Log,
	}
	if e.PlotFile != "" {
		agg.Map = data.NewPedestalMap()
	}

	sensors, err := agg.Aggregate()
	if err != nil {
		return err
	}
	rec := sensors.Summarize(e.Run)

	if e.Format.Timestamp {
		if e.Timestamps == nil {
			return fmt.Errorf("timestamp requested without a run registry query")
		}
		rec.Timestamp, err = e.Timestamps.Timestamp(ctx, e.Run)
		if err != nil {
			return err
		}
	}

	if agg.Map != nil {
		if err := e.writePlot(agg); err != nil {
			return err
		}
	}

	if rec.Suppressed(e.Format) {
		e.Log.Info().Msg("all pedestals are zero, summary suppressed")
		return nil
	}
	line := rec.Format(e.Format)
	if _, err := io.WriteString(out, line+"\n"); err != nil {
		return err
	}
	return e.Sinks.Send(ctx, rec, line)
}

func (e *extraction) writePlot(agg *data.Aggregator) error {
	f, err := os.Create(e.PlotFile)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := plot.RenderPedestalMap(f, agg.Map, "Run "+e.Run); err != nil {
		return fmt.Errorf("error drawing pedestal map: %w", err)
	}
	e.Log.Debug().Str("file", e.PlotFile).Msg("wrote pedestal map")
	return f.Close()
}
