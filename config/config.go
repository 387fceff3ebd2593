// Copyright 2019 Radiation Detection and Imaging (RDI), LLC
// Use of this source code is governed by the BSD 3-clause
// license that can be found in the LICENSE file.

// Package config holds the settings of the pedestal tools. Values come from
// a JSON file over built in defaults, with secrets taken from the
// environment by the commands.
package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"
	"time"

	"github.com/rs/zerolog"
)

type QueryConfig struct {
	Command string   `json:"command"`
	User    string   `json:"user"`
	Passwd  string   `json:"pass"`
	Service string   `json:"service"`
	Script  string   `json:"script"`
	Args    []string `json:"args"`
}

type LoaderConfig struct {
	Command string `json:"command"`
	Parfile string `json:"parfile"`
	LogFile string `json:"log_file"`
}

type SQLConfig struct {
	Host   string `json:"host"`
	Port   string `json:"port"`
	User   string `json:"user"`
	Passwd string `json:"pass"`
	DBName string `json:"dbname"`
	Table  string `json:"table"`
}

// Duration is written in JSON as a time.ParseDuration string, e.g. "1h".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string such as \"1h\": %w", err)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

type RedisConfig struct {
	Addr    string   `json:"addr"`
	Prefix  string   `json:"prefix"`
	Channel string   `json:"channel"`
	TTL     Duration `json:"ttl"`
}

type Configuration struct {
	InputDir    string       `json:"input_dir"`
	MapFile     string       `json:"map_file"`
	TimeZone    string       `json:"time_zone"`
	Credentials string       `json:"gcs_credentials"`
	LogLevel    string       `json:"log_level"`
	LogFormat   string       `json:"log_format"`
	Query       QueryConfig  `json:"query"`
	Loader      LoaderConfig `json:"loader"`
	SQL         SQLConfig    `json:"sql"`
	Redis       RedisConfig  `json:"redis"`
}

func Default() Configuration {
	return Configuration{
		InputDir:  "/data/hcaldqm/DQMIO/LOCAL/",
		MapFile:   "data/channel_SiPM_size.root",
		TimeZone:  "Europe/Zurich",
		LogLevel:  "info",
		LogFormat: "console",
		Query: QueryConfig{
			Command: "sqlplus64",
			Service: "cms_rcms",
			Script:  "/data/hcaldqm/HCALDQM-INSTALLATION/Utilities/WBM/sql_templates/query.sql",
			Args:    []string{"STRING_VALUE", "CMS.HCAL_LEVEL_1:LOCAL_RUNKEY_SELECTED"},
		},
		Loader: LoaderConfig{
			Command: "sqlldr",
		},
		SQL: SQLConfig{
			Port:  "3306",
			Table: "HCAL_PEDESTAL_SUMMARY",
		},
		Redis: RedisConfig{
			Prefix:  "hcal:pedestal:",
			Channel: "hcal:pedestal",
		},
	}
}

// LoadConfiguration reads filename over the defaults. An empty filename
// returns the defaults.
func LoadConfiguration(filename string) (Configuration, error) {
	config := Default()
	if filename == "" {
		return config, nil
	}

	data, err := ioutil.ReadFile(filename)
	if err != nil {
		return config, err
	}
	err = json.Unmarshal(data, &config)
	if err != nil {
		return config, err
	}
	return config, nil
}

// Env variables read by FromEnv.
const (
	EnvQueryUser   = "DB_CMS_RCMS_USR"
	EnvQueryPasswd = "DB_CMS_RCMS_PWD"
	EnvRedisAddr   = "REDIS_ADDR"
	EnvGcsCreds    = "GCS_CREDENTIALS"
)

// FromEnv overlays the variables that are set on c.
func (c Configuration) FromEnv(lookup func(string) (string, bool)) Configuration {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup(EnvQueryUser); ok {
		c.Query.User = v
	}
	if v, ok := lookup(EnvQueryPasswd); ok {
		c.Query.Passwd = v
	}
	if v, ok := lookup(EnvRedisAddr); ok {
		c.Redis.Addr = v
	}
	if v, ok := lookup(EnvGcsCreds); ok {
		c.Credentials = v
	}
	return c
}

func (c Configuration) Print(log zerolog.Logger) {
	log.Info().Str("module", "config").Str("input_dir", c.InputDir).Msg("configuration")
	log.Info().Str("module", "config").Str("map_file", c.MapFile).Msg("configuration")
	log.Info().Str("module", "config").Str("time_zone", c.TimeZone).Msg("configuration")
	log.Info().Str("module", "config").Str("query_command", c.Query.Command).Str("service", c.Query.Service).Msg("configuration")
	log.Info().Str("module", "config").Str("loader_command", c.Loader.Command).Str("parfile", c.Loader.Parfile).Msg("configuration")
	log.Info().Str("module", "config").Str("sql_host", c.SQL.Host).Str("sql_db", c.SQL.DBName).Msg("configuration")
	log.Info().Str("module", "config").Str("redis_addr", c.Redis.Addr).Msg("configuration")
}
