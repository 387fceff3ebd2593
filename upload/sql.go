// Copyright 2019 Radiation Detection and Imaging (RDI), LLC
// Use of this source code is governed by the BSD 3-clause
// license that can be found in the LICENSE file.

package upload

import (
	"context"
	"fmt"
	"strings"

	"github.com/rditech/hcal-pedestals/data"

	_ "github.com/go-sql-driver/mysql"
	sqlx "github.com/jmoiron/sqlx"
)

func ConnectToDatabase(user, pass, host, port, dbname string) (*sqlx.DB, error) {
	if port == "" {
		port = "3306"
	}
	dbURI := fmt.Sprintf("%s:%s@(%s:%s)/%s?parseTime=true", user, pass, host, port, dbname)
	return sqlx.Connect("mysql", dbURI)
}

// SQLSink inserts one row per run. Empty groups are stored as NULL.
type SQLSink struct {
	DB    *sqlx.DB
	Table string
}

func groupColumn(kind string, g data.Group) string {
	return fmt.Sprintf("PED_%s_%s", kind, g)
}

// InsertRow returns the named INSERT statement and its arguments.
func InsertRow(table string, rec data.Record) (string, map[string]interface{}) {
	args := map[string]interface{}{
		"RUN_NUMBER": rec.Run,
		"RUN_START":  nil,
	}
	if rec.Timestamp != "" {
		args["RUN_START"] = rec.Timestamp
	}
	columns := []string{"RUN_NUMBER", "RUN_START"}

	for _, g := range rec.Groups {
		mean, rms, count := groupColumn("MEAN", g.Group), groupColumn("RMS", g.Group), groupColumn("COUNT", g.Group)
		columns = append(columns, mean, rms, count)
		args[count] = g.Samples
		if g.Valid {
			args[mean] = g.MeanOfMeans
			args[rms] = g.MeanOfRMS
		} else {
			args[mean] = nil
			args[rms] = nil
		}
	}

	query := fmt.Sprintf(
		"INSERT INTO %s (%s) VALUES (:%s)",
		table,
		strings.Join(columns, ", "),
		strings.Join(columns, ", :"),
	)
	return query, args
}

func (s *SQLSink) Send(ctx context.Context, rec data.Record, line string) error {
	query, args := InsertRow(s.Table, rec)
	if _, err := s.DB.NamedExecContext(ctx, query, args); err != nil {
		return fmt.Errorf("error inserting run %s into %s: %w", rec.Run, s.Table, err)
	}
	return nil
}
