// Copyright 2019 Radiation Detection and Imaging (RDI), LLC
// Use of this source code is governed by the BSD 3-clause
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/rditech/hcal-pedestals/config"
	"github.com/rditech/hcal-pedestals/upload"

	"github.com/rs/zerolog"
)

var errUsage = errors.New("missing required option")

type options struct {
	InputFile  string
	Parfile    string
	LogFile    string
	ConfigFile string
}

// resolve loads the configuration and lays the command line over it.
func resolve(opts options) (config.Configuration, error) {
	configuration, err := config.LoadConfiguration(opts.ConfigFile)
	if err != nil {
		return configuration, fmt.Errorf("error reading configuration file: %w", err)
	}
	if opts.Parfile != "" {
		configuration.Loader.Parfile = opts.Parfile
	}
	if opts.LogFile != "" {
		configuration.Loader.LogFile = opts.LogFile
	}
	if opts.InputFile == "" || configuration.Loader.Parfile == "" || configuration.Loader.LogFile == "" {
		return configuration, errUsage
	}
	return configuration, nil
}

func runUpload(ctx context.Context, c config.LoaderConfig, inputFile string, log zerolog.Logger) error {
	loader := &upload.Loader{
		Command: c.Command,
		Parfile: c.Parfile,
		LogFile: c.LogFile,
		Log:     log,
	}
	_, err := loader.Load(ctx, inputFile)
	return err
}
