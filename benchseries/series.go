// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchseries groups benchmark measurements into per-family
// series and charts them.
//
// Benchmark names have the form "<Family>_<Variant>/<ElementCount>".
// Each family (Reduce or Scan) becomes one chart, each variant one
// line in that chart, and the element counts label the x axis.
package benchseries

import (
	"fmt"
	"strings"
)

// A Family is a top-level benchmark category. Each family is drawn
// as a separate chart.
type Family int

const (
	Reduce Family = iota
	Scan
)

func (f Family) String() string {
	switch f {
	case Reduce:
		return "Reduce"
	case Scan:
		return "Scan"
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// prefix is the family name followed by the variant separator.
func (f Family) prefix() string {
	return f.String() + "_"
}

// Classify maps the family/variant segment of a benchmark name (the
// part before the first '/') to its family and series key.
//
// Segments starting with "Reduce" belong to Reduce; everything else
// belongs to Scan. The key is the segment with the "Reduce_" or
// "Scan_" prefix removed and underscores replaced by spaces, so
// "Scan_GPU_Inclusive" has key "GPU Inclusive".
//
// known reports whether the segment carried its family's prefix. A
// segment that did not, such as "Other_Thing", still lands in Scan
// but its key is the segment unchanged.
func Classify(segment string) (f Family, key string, known bool) {
	f = Scan
	if strings.HasPrefix(segment, "Reduce") {
		f = Reduce
	}
	rest, ok := strings.CutPrefix(segment, f.prefix())
	if !ok {
		return f, segment, false
	}
	return f, strings.ReplaceAll(rest, "_", " "), true
}

// A Group is an ordered set of series for one family. Keys are kept
// in first-seen order, which is the legend order of the chart.
type Group struct {
	Family Family
	Keys   []string

	values map[string][]float64
}

func newGroup(f Family) *Group {
	return &Group{Family: f, values: make(map[string][]float64)}
}

// Append adds v to the end of the series named key, creating the
// series if this is the first value for key.
func (g *Group) Append(key string, v float64) {
	vs, ok := g.values[key]
	if !ok {
		g.Keys = append(g.Keys, key)
	}
	g.values[key] = append(vs, v)
}

// Values returns the values of series key in the order they were
// appended, or nil if there is no such series.
func (g *Group) Values(key string) []float64 {
	return g.values[key]
}

// Len returns the number of series in g.
func (g *Group) Len() int {
	return len(g.Keys)
}

// A Report is the result of grouping a benchmark results file.
// Values are raw nanoseconds.
type Report struct {
	Reduce, Scan *Group

	// Sizes are the element counts of the size-reference variant,
	// in the order they were read. They label the x axis of every
	// chart.
	Sizes []string
}

// Group returns the group for family f.
func (r *Report) Group(f Family) *Group {
	if f == Reduce {
		return r.Reduce
	}
	return r.Scan
}
