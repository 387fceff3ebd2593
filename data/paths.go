// Copyright 2019 Radiation Detection and Imaging (RDI), LLC
// Use of this source code is governed by the BSD 3-clause
// license that can be found in the LICENSE file.

package data

import (
	"fmt"
	"strconv"
)

// NumDepths is the number of HB/HE/HF depth layers in the DQM output.
const NumDepths = 7

const DepthHO = "HO"

// DQMPaths is the layout of the PedestalTask folder of a DQM file.
type DQMPaths struct {
	Run string
}

func DepthLabel(depth int) string {
	return strconv.Itoa(depth)
}

func (p DQMPaths) Mean(depth string) string {
	return fmt.Sprintf("DQMData/Run %s/Hcal/Run summary/PedestalTask/Mean/depth/depth%s", p.Run, depth)
}

func (p DQMPaths) RMS(depth string) string {
	return fmt.Sprintf("DQMData/Run %s/Hcal/Run summary/PedestalTask/RMS/depth/depth%s", p.Run, depth)
}
