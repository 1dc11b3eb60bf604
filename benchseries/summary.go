// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"fmt"
	"io"

	"github.com/aclements/go-moremath/stats"
	"github.com/vulkansubgroups/benchgraph/benchunit"
	"github.com/vulkansubgroups/benchgraph/internal/texttab"
)

// A Summary describes one line of a chart. Times are in seconds.
type Summary struct {
	Chart   string
	Series  string
	N       int
	Min     float64
	GeoMean float64
	Max     float64
}

// Summaries summarizes every line of c in legend order. Lines with
// no values are skipped.
func (c *Chart) Summaries() []Summary {
	var out []Summary
	for _, l := range c.Lines {
		if len(l.Values) == 0 {
			continue
		}
		sec := make([]float64, len(l.Values))
		for i, v := range l.Values {
			sec[i] = benchunit.Seconds(v, benchunit.Microsecond)
		}
		s := Summary{Chart: c.Title, Series: l.Label, N: len(sec)}
		s.Min, s.Max = stats.Bounds(sec)
		s.GeoMean = stats.GeoMean(sec)
		out = append(out, s)
	}
	return out
}

// WriteSummary writes a table of the summaries of charts to w.
func WriteSummary(w io.Writer, charts []*Chart) error {
	var tab texttab.Table
	tab.Row().Cell("chart").Cell("series").Cell("n", texttab.Right).
		Cell("min", texttab.Right).Cell("geomean", texttab.Right).Cell("max", texttab.Right)
	for _, c := range charts {
		for _, s := range c.Summaries() {
			tab.Row().Cell(s.Chart).Cell(s.Series).Cell(fmt.Sprint(s.N), texttab.Right)
			for _, v := range []float64{s.Min, s.GeoMean, s.Max} {
				tab.Cell(benchunit.ScaleSeconds(v), texttab.Right)
			}
		}
	}
	return tab.Format(w)
}
