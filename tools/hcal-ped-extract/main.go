// Copyright 2019 Radiation Detection and Imaging (RDI), LLC
// Use of this source code is governed by the BSD 3-clause
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/rditech/hcal-pedestals/config"
	"github.com/rditech/hcal-pedestals/data"
	"github.com/rditech/hcal-pedestals/logging"
	"github.com/rditech/hcal-pedestals/runinfo"
	"github.com/rditech/hcal-pedestals/upload"

	"github.com/go-redis/redis"
	"github.com/google/uuid"
)

var (
	inputFile    = flag.String("f", "", "input DQM file name, relative to the configured input directory")
	timeStamp    = flag.Bool("t", false, "include run timestamp")
	suppressZero = flag.Bool("z", false, "suppress runs that give zero for all pedestals")
	debug        = flag.Bool("d", false, "include per group sample counts")
	configFile   = flag.String("config", "", "configuration file path")
	mapFile      = flag.String("map", "", "sensor size table, overrides the configuration; \"box\" for the bundled copy")
	plotFile     = flag.String("plot", "", "write a PNG map of the HB/HE pedestals to this file")
	toSQL        = flag.Bool("sql", false, "also insert the summary into the configured SQL table")
	toRedis      = flag.Bool("redis", false, "also store and publish the summary in redis")
	verbose      = flag.Bool("v", false, "debug logging")
)

func printUsage() {
	fmt.Fprintf(os.Stderr,
		`Usage: `+os.Args[0]+` [options] -f <dqm-file>

Extracts the mean and rms of the HCAL pedestals of one run and prints a
tab separated summary line for the database loader.

options:
`,
	)
	flag.PrintDefaults()
}

func main() {
	flag.Usage = printUsage
	flag.Parse()

	if *inputFile == "" || flag.NArg() != 0 {
		printUsage()
		os.Exit(2)
	}

	configuration, err := config.LoadConfiguration(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error reading configuration file: %v\n", err)
		os.Exit(1)
	}
	configuration = configuration.FromEnv(nil)
	if *verbose {
		configuration.LogLevel = "debug"
	}

	log := logging.New(logging.Options{
		Level:     configuration.LogLevel,
		Format:    configuration.LogFormat,
		Component: "hcal-ped-extract",
	}).With().Str("invocation", uuid.New().String()).Logger()
	if *verbose {
		configuration.Print(log)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	run, err := runinfo.RunNumberFromFilename(*inputFile)
	if err != nil {
		log.Fatal().Err(err).Msg("bad input file")
	}
	log = log.With().Str("run", run).Logger()

	store, err := data.OpenStore(ctx, inputURL(configuration.InputDir, *inputFile), configuration.Credentials)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening input")
	}
	defer store.Close()

	geometryFile := configuration.MapFile
	if *mapFile != "" {
		geometryFile = *mapFile
	}
	if geometryFile == "box" {
		geometryFile = ""
	}
	geometry, err := data.OpenGeometry(geometryFile)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading sensor size table")
	}

	e := &extraction{
		Run:      run,
		Store:    store,
		Geometry: geometry,
		Format: data.FormatOptions{
			Timestamp:    *timeStamp,
			Debug:        *debug,
			SuppressZero: *suppressZero,
			TimeZone:     configuration.TimeZone,
		},
		PlotFile: *plotFile,
		Log:      log,
	}
	if *timeStamp {
		q := configuration.Query
		e.Timestamps = &runinfo.Querier{
			Command: q.Command,
			User:    q.User,
			Passwd:  q.Passwd,
			Service: q.Service,
			Script:  q.Script,
			Args:    q.Args,
			Log:     log,
		}
	}

	if *toSQL {
		c := configuration.SQL
		db, err := upload.ConnectToDatabase(c.User, c.Passwd, c.Host, c.Port, c.DBName)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting to database")
		}
		defer db.Close()
		e.Sinks = append(e.Sinks, &upload.SQLSink{DB: db, Table: c.Table})
	}
	if *toRedis {
		c := configuration.Redis
		redisClient := redis.NewClient(&redis.Options{Addr: c.Addr})
		defer redisClient.Close()
		if err := redisClient.Ping().Err(); err != nil {
			log.Fatal().Err(err).Str("addr", c.Addr).Msg("unable to ping redis server")
		}
		e.Sinks = append(e.Sinks, &upload.RedisSink{
			Client:  redisClient,
			Prefix:  c.Prefix,
			Channel: c.Channel,
			TTL:     c.TTL.Duration,
		})
	}

	if err := e.Execute(ctx, os.Stdout); err != nil {
		log.Error().Err(err).Msg("extraction failed")
		os.Exit(1)
	}
}

// inputURL joins name to the input directory unless it is already a URL or
// an absolute path.
func inputURL(dir, name string) string {
	if strings.Contains(name, "://") || filepath.IsAbs(name) {
		return name
	}
	if strings.Contains(dir, "://") {
		return strings.TrimRight(dir, "/") + "/" + name
	}
	return filepath.Join(dir, name)
}
