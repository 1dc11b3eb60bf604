// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchcsv reads the CSV results format written by Google
// Benchmark (--benchmark_format=csv).
//
// The format is a header row followed by one row per benchmark run.
// Columns are located by name, so extra columns and column order do
// not matter. Only "name" and "real_time" are required.
package benchcsv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/vulkansubgroups/benchgraph/benchunit"
)

// Column names understood by Reader.
const (
	ColName          = "name"
	ColRealTime      = "real_time"
	ColTimeUnit      = "time_unit"
	ColErrorOccurred = "error_occurred"
	ColErrorMessage  = "error_message"
)

// A Row is a single benchmark measurement.
type Row struct {
	// Name is the full benchmark name, for example
	// "Reduce_GPU_Subgroup/4096/manual_time".
	Name string

	// RealTime is the measured wall time per iteration in
	// nanoseconds, already normalized from the row's time_unit.
	RealTime float64

	fileName string
	line     int
}

// Pos returns the file name and line number of r.
func (r *Row) Pos() (fileName string, line int) {
	return r.fileName, r.line
}

// A SyntaxError represents a malformed row or header in a benchmark
// results file.
type SyntaxError struct {
	FileName string
	Line     int
	Msg      string
}

func (e *SyntaxError) Pos() (fileName string, line int) {
	return e.FileName, e.Line
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.FileName, e.Line, e.Msg)
}

// A Reader reads benchmark rows from CSV input.
//
// Its API is modeled on bufio.Scanner. The Row returned by Row is
// owned by the Reader and is overwritten by the next call to Scan.
type Reader struct {
	cr       *csv.Reader
	fileName string
	err      error

	// Column indexes, or -1 if the column is absent.
	name, realTime, timeUnit, errOccurred, errMessage int
	header                                            bool

	row Row
}

// NewReader constructs a reader for CSV data in r. fileName is used
// in error messages; it is purely diagnostic.
func NewReader(r io.Reader, fileName string) *Reader {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true
	return &Reader{cr: cr, fileName: fileName}
}

func (r *Reader) newSyntaxError(line int, format string, args ...interface{}) *SyntaxError {
	return &SyntaxError{r.fileName, line, fmt.Sprintf(format, args...)}
}

// Scan advances the reader to the next row and reports whether a row
// was read. Scan returns false at the end of input or on the first
// error; in the latter case Err reports it.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}
	if !r.header {
		if err := r.readHeader(); err != nil {
			r.err = err
			return false
		}
	}

	rec, err := r.cr.Read()
	if err == io.EOF {
		return false
	}
	if err != nil {
		r.err = r.wrapCSVError(err)
		return false
	}
	line, _ := r.cr.FieldPos(0)
	if err := r.parseRow(rec, line); err != nil {
		r.err = err
		return false
	}
	return true
}

// Row returns the row read by the last successful call to Scan.
func (r *Reader) Row() *Row {
	return &r.row
}

// Err returns the first error encountered by the Reader, if any.
// Errors in the input are of type *SyntaxError.
func (r *Reader) Err() error {
	return r.err
}

func (r *Reader) readHeader() error {
	rec, err := r.cr.Read()
	if err == io.EOF {
		return r.newSyntaxError(1, "missing header row")
	}
	if err != nil {
		return r.wrapCSVError(err)
	}
	r.header = true
	r.name, r.realTime, r.timeUnit, r.errOccurred, r.errMessage = -1, -1, -1, -1, -1
	for i, col := range rec {
		switch strings.TrimSpace(col) {
		case ColName:
			r.name = i
		case ColRealTime:
			r.realTime = i
		case ColTimeUnit:
			r.timeUnit = i
		case ColErrorOccurred:
			r.errOccurred = i
		case ColErrorMessage:
			r.errMessage = i
		}
	}
	line, _ := r.cr.FieldPos(0)
	if r.name < 0 {
		return r.newSyntaxError(line, "header has no %q column", ColName)
	}
	if r.realTime < 0 {
		return r.newSyntaxError(line, "header has no %q column", ColRealTime)
	}
	return nil
}

func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func (r *Reader) parseRow(rec []string, line int) error {
	name := field(rec, r.name)
	if name == "" {
		return r.newSyntaxError(line, "empty %q field", ColName)
	}
	if field(rec, r.errOccurred) == "true" {
		msg := field(rec, r.errMessage)
		if msg == "" {
			msg = "benchmark reported an error"
		}
		return r.newSyntaxError(line, "%s: %s", name, msg)
	}

	raw := field(rec, r.realTime)
	if raw == "" {
		return r.newSyntaxError(line, "%s: empty %q field", name, ColRealTime)
	}
	val, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return r.newSyntaxError(line, "%s: parsing %s %q: %v", name, ColRealTime, raw, err.(*strconv.NumError).Err)
	}
	unit, err := benchunit.ParseTimeUnit(field(rec, r.timeUnit))
	if err != nil {
		return r.newSyntaxError(line, "%s: %v", name, err)
	}

	r.row = Row{
		Name:     name,
		RealTime: benchunit.Convert(val, unit, benchunit.Nanosecond),
		fileName: r.fileName,
		line:     line,
	}
	return nil
}

// wrapCSVError turns an encoding/csv error into a *SyntaxError where
// the position is known.
func (r *Reader) wrapCSVError(err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return r.newSyntaxError(perr.Line, "%v", perr.Err)
	}
	return errors.Wrapf(err, "reading %s", r.fileName)
}
