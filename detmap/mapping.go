// Copyright 2019 Radiation Detection and Imaging (RDI), LLC
// Use of this source code is governed by the BSD 3-clause
// license that can be found in the LICENSE file.

// Package detmap translates DQM histogram bins into physical HCAL channel
// coordinates and into bins of the sensor size geometry table.
package detmap

// etaGap is the first DQM x bin on the positive side of the detector. The
// physical eta index has no zero, so the offset changes by one here.
const etaGap = 43

func ToPhysicalEta(ix int) int {
	if ix >= etaGap {
		return ix - 42
	}
	return ix - 43
}

func ToPhysicalPhi(iy int) int {
	return iy
}

func ToGeometryEtaBin(ieta int) int {
	return ieta + 33
}

func ToGeometryPhiBin(iphi int) int {
	return iphi
}

// Channel is one readout element at a given depth, addressed both by its
// DQM bin and its physical coordinates.
type Channel struct {
	Depth int
	IX    int
	IY    int
	IEta  int
	IPhi  int
}

func MapChannel(depth, ix, iy int) Channel {
	return Channel{
		Depth: depth,
		IX:    ix,
		IY:    iy,
		IEta:  ToPhysicalEta(ix),
		IPhi:  ToPhysicalPhi(iy),
	}
}

// GeometryBin returns the bin of the sensor size table holding this channel.
func (c Channel) GeometryBin() (xmap, ymap int) {
	return ToGeometryEtaBin(c.IEta), ToGeometryPhiBin(c.IPhi)
}
