// Copyright 2019 Radiation Detection and Imaging (RDI), LLC
// Use of this source code is governed by the BSD 3-clause
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/rditech/hcal-pedestals/logging"

	"github.com/google/uuid"
)

var (
	inputFile  = flag.String("f", "", "summary file to upload")
	parFile    = flag.String("p", "", "sqlldr parameter file, overrides the configuration")
	logFile    = flag.String("l", "", "log file to append loader output to, overrides the configuration")
	configFile = flag.String("config", "", "configuration file path")
)

func printUsage() {
	fmt.Fprintf(os.Stderr,
		`Usage: `+os.Args[0]+` [options] -f <summary-file>

Uploads a pedestal summary file to the database with sqlldr.

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = printUsage
	flag.Parse()

	configuration, err := resolve(options{
		InputFile:  *inputFile,
		Parfile:    *parFile,
		LogFile:    *logFile,
		ConfigFile: *configFile,
	})
	if errors.Is(err, errUsage) {
		printUsage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logging.New(logging.Options{
		Level:     configuration.LogLevel,
		Format:    configuration.LogFormat,
		Component: "hcal-db-upload",
	}).With().Str("invocation", uuid.New().String()).Logger()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := runUpload(ctx, configuration.Loader, *inputFile, log); err != nil {
		log.Error().Err(err).Str("file", *inputFile).Msg("upload failed")
		cancel()
		os.Exit(1)
	}
}
