// Copyright 2019 Radiation Detection and Imaging (RDI), LLC
// Use of this source code is governed by the BSD 3-clause
// license that can be found in the LICENSE file.

package data

import (
	"gonum.org/v1/gonum/stat"
)

// GroupSummary is the reduced pedestal of one group. Valid is false for a
// group that collected no samples.
type GroupSummary struct {
	Group       Group
	Valid       bool
	Samples     int
	MeanOfMeans float64
	MeanOfRMS   float64
}

// Summarize reduces every group to the mean of its means and the mean of
// its RMS values. AllZero stays set only if no group has a positive result.
func (s *Sensors) Summarize(run string) Record {
	rec := Record{Run: run, AllZero: true}
	for g := Group(0); g < NumGroups; g++ {
		samples := &s[g]
		sum := GroupSummary{Group: g, Samples: samples.Len()}
		if sum.Samples > 0 {
			sum.Valid = true
			sum.MeanOfMeans = stat.Mean(samples.Means, nil)
			sum.MeanOfRMS = stat.Mean(samples.RMSes, nil)
			if sum.MeanOfMeans > 0 || sum.MeanOfRMS > 0 {
				rec.AllZero = false
			}
		}
		rec.Groups[g] = sum
	}
	return rec
}
