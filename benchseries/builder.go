// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/vulkansubgroups/benchgraph/benchcsv"
)

// SizeVariant is the benchmark whose element counts label the x axis.
const SizeVariant = "Reduce_GPU_Subgroup"

// BuilderOptions controls how a Builder classifies rows.
type BuilderOptions struct {
	// SizeVariant is the family/variant segment whose element
	// counts are collected as x-axis labels.
	SizeVariant string

	// Strict rejects names without a "Reduce_" or "Scan_" prefix
	// and series whose length differs from the number of x-axis
	// labels. Otherwise both are reported through Warn.
	Strict bool

	// Warn, if non-nil, is called for suspicious but accepted input.
	Warn func(format string, args ...interface{})
}

// DefaultBuilderOptions returns the options used by the benchgraph
// command when nothing is overridden.
func DefaultBuilderOptions() *BuilderOptions {
	return &BuilderOptions{SizeVariant: SizeVariant}
}

// A Builder collects benchmark rows into a Report.
type Builder struct {
	opts   BuilderOptions
	report *Report

	warned map[string]bool // unknown segments already reported
}

// NewBuilder returns a Builder with an empty Reduce and Scan group.
func NewBuilder(opts *BuilderOptions) *Builder {
	if opts == nil {
		opts = DefaultBuilderOptions()
	}
	b := &Builder{
		opts: *opts,
		report: &Report{
			Reduce: newGroup(Reduce),
			Scan:   newGroup(Scan),
		},
		warned: make(map[string]bool),
	}
	if b.opts.SizeVariant == "" {
		b.opts.SizeVariant = SizeVariant
	}
	return b
}

func (b *Builder) warn(format string, args ...interface{}) {
	if b.opts.Warn != nil {
		b.opts.Warn(format, args...)
	}
}

func rowError(row *benchcsv.Row, format string, args ...interface{}) error {
	file, line := row.Pos()
	return &benchcsv.SyntaxError{FileName: file, Line: line, Msg: fmt.Sprintf(format, args...)}
}

// Add classifies a single row and appends its time to the matching
// series.
func (b *Builder) Add(row *benchcsv.Row) error {
	parts := strings.Split(row.Name, "/")
	segment := parts[0]
	if segment == "" {
		return rowError(row, "%s: no family segment before '/'", row.Name)
	}

	if segment == b.opts.SizeVariant {
		if len(parts) < 2 || parts[1] == "" {
			return rowError(row, "%s: missing element count after %s/", row.Name, segment)
		}
		b.report.Sizes = append(b.report.Sizes, parts[1])
	}

	f, key, known := Classify(segment)
	if !known {
		if b.opts.Strict {
			return rowError(row, "%s: family segment %q does not start with Reduce_ or Scan_", row.Name, segment)
		}
		if !b.warned[segment] {
			b.warned[segment] = true
			b.warn("%s: unrecognized family %q, charting it as %s", row.Name, segment, f)
		}
	}

	b.report.Group(f).Append(key, row.RealTime)
	return nil
}

// AddReader adds every row from r. It stops at the first error.
func (b *Builder) AddReader(r *benchcsv.Reader) error {
	for r.Scan() {
		if err := b.Add(r.Row()); err != nil {
			return err
		}
	}
	return r.Err()
}

// AddFile reads the CSV results in path. The file is closed before
// AddFile returns.
func (b *Builder) AddFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "opening benchmark results")
	}
	defer f.Close()
	return b.AddReader(benchcsv.NewReader(f, path))
}

// Report returns the grouped data. It checks that every series has
// one value per x-axis label, failing in strict mode and warning
// otherwise.
func (b *Builder) Report() (*Report, error) {
	r := b.report
	for _, g := range []*Group{r.Reduce, r.Scan} {
		for _, key := range g.Keys {
			n := len(g.Values(key))
			if n == len(r.Sizes) {
				continue
			}
			msg := fmt.Sprintf("%s %q has %d points but there are %d x-axis labels from %s", g.Family, key, n, len(r.Sizes), b.opts.SizeVariant)
			if b.opts.Strict {
				return nil, errors.New(msg)
			}
			b.warn("%s", msg)
		}
	}
	return r, nil
}
