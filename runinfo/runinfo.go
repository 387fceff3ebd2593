// Copyright 2019 Radiation Detection and Imaging (RDI), LLC
// Use of this source code is governed by the BSD 3-clause
// license that can be found in the LICENSE file.

// Package runinfo recovers run metadata that is not stored in the DQM file.
package runinfo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

var (
	ErrBadFilename        = errors.New("cannot read run number from file name")
	ErrMalformedTimestamp = errors.New("malformed timestamp query output")
)

// DQM files are named DQM_V0001_R000123456__..., the run number is the six
// characters after the R000 prefix.
const (
	runOffset = 14
	runLength = 6
)

func RunNumberFromFilename(name string) (string, error) {
	base := filepath.Base(name)
	if len(base) < runOffset+runLength {
		return "", fmt.Errorf("%w: %q", ErrBadFilename, base)
	}
	return base[runOffset : runOffset+runLength], nil
}

// ExtractTimestamp takes the third line of the query output and drops
// everything from its last space on, ignoring spaces in the first three
// characters.
func ExtractTimestamp(output string) (string, error) {
	lines := strings.Split(output, "\n")
	if len(lines) < 3 {
		return "", fmt.Errorf("%w: %d lines", ErrMalformedTimestamp, len(lines))
	}
	line := lines[2]
	if len(line) <= 3 {
		return "", fmt.Errorf("%w: line %q", ErrMalformedTimestamp, line)
	}
	cut := strings.LastIndex(line[3:], " ")
	if cut < 0 {
		return "", fmt.Errorf("%w: line %q", ErrMalformedTimestamp, line)
	}
	return line[:cut+3], nil
}

// Querier asks the run registry for the start time of a run through the
// sqlplus command line client.
type Querier struct {
	Command string
	User    string
	Passwd  string
	Service string
	Script  string
	Args    []string

	Log zerolog.Logger
}

func (q *Querier) commandArgs(run string) []string {
	args := []string{
		"-S",
		fmt.Sprintf("%s/%s@%s", q.User, q.Passwd, q.Service),
		"@" + q.Script,
	}
	args = append(args, q.Args...)
	return append(args, run)
}

func (q *Querier) Timestamp(ctx context.Context, run string) (string, error) {
	cmd := exec.CommandContext(ctx, q.Command, q.commandArgs(run)...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	q.Log.Debug().Str("command", q.Command).Str("run", run).Msg("querying run start time")
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("error running %s: %w: %s", q.Command, err, strings.TrimSpace(stderr.String()))
	}
	return ExtractTimestamp(stdout.String())
}
