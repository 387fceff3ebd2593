// Copyright 2019 Radiation Detection and Imaging (RDI), LLC
// Use of this source code is governed by the BSD 3-clause
// license that can be found in the LICENSE file.

package data

import (
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

const (
	Sep         = "\t"
	Placeholder = "''"
)

// Record is the per run summary handed to the database loader.
type Record struct {
	Run       string
	Timestamp string
	Groups    [NumGroups]GroupSummary
	AllZero   bool
}

type FormatOptions struct {
	Timestamp    bool
	Debug        bool
	SuppressZero bool
	TimeZone     string
}

// FormatFloat writes the shortest representation that reads back to v,
// keeping a trailing ".0" on integral values, which is what the loader
// control files were written against.
func FormatFloat(v float64) string {
	abs := math.Abs(v)
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64)
	}
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Format returns the tab separated summary line without a newline. Every
// field, the last included, is followed by a tab.
func (r Record) Format(opts FormatOptions) string {
	var b strings.Builder
	b.WriteString(r.Run)
	b.WriteString(Sep)
	if opts.Timestamp {
		ts := r.Timestamp
		if opts.TimeZone != "" {
			ts += " " + opts.TimeZone
		}
		fmt.Fprintf(&b, "'%s'%s", ts, Sep)
	}
	for _, g := range r.Groups {
		if opts.Debug {
			b.WriteString(strconv.Itoa(g.Samples))
			b.WriteString(Sep)
		}
		if !g.Valid {
			b.WriteString(Placeholder + Sep + Placeholder + Sep)
			continue
		}
		b.WriteString(FormatFloat(g.MeanOfMeans))
		b.WriteString(Sep)
		b.WriteString(FormatFloat(g.MeanOfRMS))
		b.WriteString(Sep)
	}
	return b.String()
}

// Suppressed reports whether the record is dropped under opts.
func (r Record) Suppressed(opts FormatOptions) bool {
	return opts.SuppressZero && r.AllZero
}

// Emit writes the line followed by a newline unless it is suppressed.
func (r Record) Emit(w io.Writer, opts FormatOptions) (bool, error) {
	if r.Suppressed(opts) {
		return false, nil
	}
	_, err := io.WriteString(w, r.Format(opts)+"\n")
	return err == nil, err
}

// ParseRecord reads a line written by Format with the same options. The
// time zone suffix, when opts.TimeZone is set, is stripped from the
// timestamp. Without opts.Debug the sample counts are not recoverable and
// are left at zero.
func ParseRecord(line string, opts FormatOptions) (Record, error) {
	var rec Record
	fields := strings.Split(strings.TrimRight(line, "\r\n"), Sep)

	perGroup := 2
	if opts.Debug {
		perGroup = 3
	}
	want := 1 + int(NumGroups)*perGroup
	if opts.Timestamp {
		want++
	}
	// the trailing separator leaves one empty field
	if len(fields) != want+1 || fields[want] != "" {
		return rec, fmt.Errorf("%w: %d fields, want %d", ErrBadRecord, len(fields)-1, want)
	}

	rec.Run = fields[0]
	k := 1
	if opts.Timestamp {
		ts := fields[k]
		if len(ts) < 2 || ts[0] != '\'' || ts[len(ts)-1] != '\'' {
			return rec, fmt.Errorf("%w: unquoted timestamp %q", ErrBadRecord, ts)
		}
		ts = ts[1 : len(ts)-1]
		if opts.TimeZone != "" {
			ts = strings.TrimSuffix(ts, " "+opts.TimeZone)
		}
		rec.Timestamp = ts
		k++
	}

	rec.AllZero = true
	for g := Group(0); g < NumGroups; g++ {
		sum := GroupSummary{Group: g}
		if opts.Debug {
			n, err := strconv.Atoi(fields[k])
			if err != nil {
				return rec, fmt.Errorf("%w: group %v count: %v", ErrBadRecord, g, err)
			}
			sum.Samples = n
			k++
		}
		mean, rms := fields[k], fields[k+1]
		k += 2
		switch {
		case mean == Placeholder && rms == Placeholder:
		case mean == Placeholder || rms == Placeholder:
			return rec, fmt.Errorf("%w: group %v half empty", ErrBadRecord, g)
		default:
			var err error
			sum.Valid = true
			if sum.MeanOfMeans, err = strconv.ParseFloat(mean, 64); err != nil {
				return rec, fmt.Errorf("%w: group %v mean: %v", ErrBadRecord, g, err)
			}
			if sum.MeanOfRMS, err = strconv.ParseFloat(rms, 64); err != nil {
				return rec, fmt.Errorf("%w: group %v rms: %v", ErrBadRecord, g, err)
			}
			if sum.MeanOfMeans > 0 || sum.MeanOfRMS > 0 {
				rec.AllZero = false
			}
		}
		rec.Groups[g] = sum
	}
	return rec, nil
}
