// Copyright 2019 Radiation Detection and Imaging (RDI), LLC
// Use of this source code is governed by the BSD 3-clause
// license that can be found in the LICENSE file.

// Package upload delivers summary lines to their consumers: the SQL*Loader
// bulk load, a SQL table and Redis.
package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/rs/zerolog"
)

var ErrNoInput = errors.New("input file doesn't exist")

// Loader runs sqlldr against a parameter file and keeps a log of every run.
type Loader struct {
	Command string
	Parfile string
	LogFile string

	Log zerolog.Logger
}

// Load bulk loads inputFile. An empty input is skipped without running the
// loader and reports false.
func (l *Loader) Load(ctx context.Context, inputFile string) (bool, error) {
	info, err := os.Stat(inputFile)
	if err != nil {
		if os.IsNotExist(err) {
			return false, fmt.Errorf("%w: %s", ErrNoInput, inputFile)
		}
		return false, err
	}
	if info.Size() == 0 {
		l.Log.Info().Str("file", inputFile).Msg("empty input, nothing to load")
		return false, nil
	}

	cmd := exec.CommandContext(ctx, l.Command, "parfile="+l.Parfile)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	runErr := cmd.Run()

	if err := l.appendLog(time.Now(), stdout.Bytes(), stderr.Bytes()); err != nil {
		return true, err
	}
	if runErr != nil {
		return true, fmt.Errorf("error running %s: %w", l.Command, runErr)
	}
	l.Log.Info().Str("file", inputFile).Str("parfile", l.Parfile).Msg("bulk load finished")
	return true, nil
}

func (l *Loader) appendLog(now time.Time, stdout, stderr []byte) error {
	f, err := os.OpenFile(l.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("error opening log file %q: %w", l.LogFile, err)
	}
	defer f.Close()

	var buf bytes.Buffer
	buf.WriteString(now.Format(time.ANSIC))
	buf.WriteString("\n")
	buf.Write(stdout)
	buf.Write(stderr)
	buf.WriteString("\n")
	_, err = f.Write(buf.Bytes())
	return err
}
