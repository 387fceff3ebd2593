// Copyright 2019 Radiation Detection and Imaging (RDI), LLC
// Use of this source code is governed by the BSD 3-clause
// license that can be found in the LICENSE file.

package upload

import (
	"context"
	"fmt"
	"time"

	"github.com/rditech/hcal-pedestals/data"

	"github.com/go-redis/redis"
)

// RedisSink keeps the latest line of each run under Prefix+run and, when
// Channel is set, publishes it for live consumers.
type RedisSink struct {
	Client  *redis.Client
	Prefix  string
	Channel string
	TTL     time.Duration
}

func (s *RedisSink) Key(run string) string {
	return s.Prefix + run
}

func (s *RedisSink) Send(ctx context.Context, rec data.Record, line string) error {
	client := s.Client.WithContext(ctx)
	if err := client.Set(s.Key(rec.Run), line, s.TTL).Err(); err != nil {
		return fmt.Errorf("error storing run %s in redis: %w", rec.Run, err)
	}
	if s.Channel == "" {
		return nil
	}
	if err := client.Publish(s.Channel, line).Err(); err != nil {
		return fmt.Errorf("error publishing run %s to %s: %w", rec.Run, s.Channel, err)
	}
	return nil
}
