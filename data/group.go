// Copyright 2019 Radiation Detection and Imaging (RDI), LLC
// Use of this source code is governed by the BSD 3-clause
// license that can be found in the LICENSE file.

package data

// Group is a sensor group of the summary. The numeric order of the
// constants is the column order of the summary line.
type Group int

const (
	Size3 Group = iota
	Size4
	Size5
	Size6
	HF
	HO
	NumGroups
)

var groupNames = [NumGroups]string{"3", "4", "5", "6", "HF", "HO"}

func (g Group) String() string {
	if g < 0 || g >= NumGroups {
		return "unknown"
	}
	return groupNames[g]
}

// GroupForSensorSize maps a geometry table code to its group.
func GroupForSensorSize(code int) (Group, bool) {
	switch code {
	case 3:
		return Size3, true
	case 4:
		return Size4, true
	case 5:
		return Size5, true
	case 6:
		return Size6, true
	}
	return 0, false
}

type Samples struct {
	Means []float64
	RMSes []float64
}

func (s *Samples) Add(mean, rms float64) {
	s.Means = append(s.Means, mean)
	s.RMSes = append(s.RMSes, rms)
}

func (s *Samples) Len() int {
	return len(s.Means)
}

// Sensors collects the samples of every group for one run.
type Sensors [NumGroups]Samples
