// Copyright 2019 Radiation Detection and Imaging (RDI), LLC
// Use of this source code is governed by the BSD 3-clause
// license that can be found in the LICENSE file.

// Package plot draws diagnostic images of a run's pedestals.
package plot

import (
	"image/color"
	"image/png"
	"io"

	"go-hep.org/x/hep/hbook"
	"go-hep.org/x/hep/hplot"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// RenderPedestalMap writes h, binned in (ieta, iphi), as a PNG heat map.
func RenderPedestalMap(w io.Writer, h *hbook.H2D, title string) error {
	p, err := plot.New()
	if err != nil {
		return err
	}
	p.BackgroundColor = color.White
	p.Title.Text = title
	p.X.Label.Text = "ieta"
	p.Y.Label.Text = "iphi"

	hp := &hplot.Plot{
		Plot:  p,
		Style: hplot.DefaultStyle,
	}
	if h != nil {
		colorMap := moreland.Kindlmann()
		h2 := hplot.NewH2D(h, colorMap.Palette(1000))
		h2.Infos.Style = hplot.HInfoMean | hplot.HInfoStdDev
		hp.Add(h2)
		hp.Add(hplot.NewGrid())
	}

	img := vgimg.New(6*vg.Inch, 4*vg.Inch)
	c := draw.New(img)
	p.Draw(c)

	encoder := png.Encoder{CompressionLevel: png.BestSpeed}
	return encoder.Encode(w, img.Image())
}
