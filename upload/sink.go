// Copyright 2019 Radiation Detection and Imaging (RDI), LLC
// Use of this source code is governed by the BSD 3-clause
// license that can be found in the LICENSE file.

package upload

import (
	"context"

	"github.com/rditech/hcal-pedestals/data"
)

// Sink receives every emitted summary, both as a record and as the exact
// line written to stdout.
type Sink interface {
	Send(ctx context.Context, rec data.Record, line string) error
}

type Sinks []Sink

func (s Sinks) Send(ctx context.Context, rec data.Record, line string) error {
	for _, sink := range s {
		if err := sink.Send(ctx, rec, line); err != nil {
			return err
		}
	}
	return nil
}
