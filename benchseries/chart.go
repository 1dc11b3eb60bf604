// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"bytes"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"github.com/vulkansubgroups/benchgraph/benchunit"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgsvg"
)

// Axis titles shared by every chart.
const (
	XTitle = "Number of elements"
	YTitle = "Time (us)"
)

const (
	chartWidth  = 10 * vg.Inch
	chartHeight = 6 * vg.Inch
)

// A Line is one series of a chart. Values are in microseconds and
// Values[i] is plotted above XLabels[i].
type Line struct {
	Label  string
	Values []float64
}

// A Chart describes a line chart independently of how it is drawn.
type Chart struct {
	Title  string
	XTitle string
	YTitle string
	LogY   bool

	// XLabels label x positions 0, 1, 2, ...
	XLabels []string
	Lines   []Line
}

// Chart assembles the chart for family f. Values are converted from
// nanoseconds to microseconds. The x labels are r.Sizes itself, so
// every chart of r shares them.
func (r *Report) Chart(f Family) *Chart {
	g := r.Group(f)
	c := &Chart{
		Title:   f.String(),
		XTitle:  XTitle,
		YTitle:  YTitle,
		LogY:    true,
		XLabels: r.Sizes,
		Lines:   make([]Line, 0, g.Len()),
	}
	for _, key := range g.Keys {
		raw := g.Values(key)
		us := make([]float64, len(raw))
		for i, v := range raw {
			us[i] = benchunit.Convert(v, benchunit.Nanosecond, benchunit.Microsecond)
		}
		c.Lines = append(c.Lines, Line{Label: key, Values: us})
	}
	return c
}

// Charts returns the Reduce chart followed by the Scan chart.
func (r *Report) Charts() []*Chart {
	return []*Chart{r.Chart(Reduce), r.Chart(Scan)}
}

// check reports values the plot cannot represent. gonum/plot panics
// on non-positive values in a log scale.
func (c *Chart) check() error {
	for _, l := range c.Lines {
		for i, v := range l.Values {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return errors.Errorf("%s: %q point %d is %v", c.Title, l.Label, i, v)
			}
			if c.LogY && v <= 0 {
				return errors.Errorf("%s: %q point %d is %v, which a log scale cannot show", c.Title, l.Label, i, v)
			}
		}
	}
	return nil
}

// Plot builds the gonum plot for c.
func (c *Chart) Plot() (*plot.Plot, error) {
	if err := c.check(); err != nil {
		return nil, err
	}

	p := plot.New()
	p.Title.Text = c.Title
	p.X.Label.Text = c.XTitle
	p.Y.Label.Text = c.YTitle

	if c.LogY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}

	grid := plotter.NewGrid()
	grid.Vertical.Color = nil
	p.Add(grid)

	hasData := false
	for i, l := range c.Lines {
		if len(l.Values) == 0 {
			continue
		}
		pts := make(plotter.XYs, len(l.Values))
		for j, v := range l.Values {
			pts[j].X = float64(j)
			pts[j].Y = v
		}
		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return nil, errors.Wrapf(err, "%s: %q", c.Title, l.Label)
		}
		line.Color = plotutil.Color(i)
		points.Shape = plotutil.Shape(i)
		points.Color = line.Color
		p.Add(line, points)
		p.Legend.Add(l.Label, line, points)
		hasData = true
	}
	p.Legend.Top = true
	p.Legend.Left = true

	ticks := make([]plot.Tick, len(c.XLabels))
	for i, label := range c.XLabels {
		ticks[i] = plot.Tick{Value: float64(i), Label: label}
	}
	p.X.Tick.Marker = plot.ConstantTicks(ticks)
	p.X.Tick.Label.Rotation = -math.Pi / 8
	p.X.Tick.Label.YAlign = draw.YTop
	p.X.Tick.Label.XAlign = draw.XLeft

	if !hasData {
		// Give the empty axes a range the scales accept.
		p.X.Min, p.X.Max = 0, 1
		p.Y.Min, p.Y.Max = 1, 10
	}
	if n := len(c.XLabels); n > 0 {
		p.X.Min = math.Min(p.X.Min, 0)
		p.X.Max = math.Max(p.X.Max, float64(n-1))
	}
	if c.LogY && p.Y.Min == p.Y.Max {
		p.Y.Min /= 2
		p.Y.Max *= 2
	}
	return p, nil
}

// WriteSVG renders c as SVG to w.
func (c *Chart) WriteSVG(w io.Writer) error {
	p, err := c.Plot()
	if err != nil {
		return err
	}
	cv := vgsvg.New(chartWidth, chartHeight)
	p.Draw(draw.New(cv))
	_, err = cv.WriteTo(w)
	return errors.Wrapf(err, "writing %s chart", c.Title)
}

// Save renders c as SVG into the file path, replacing any existing
// file. Nothing is written if rendering fails.
func (c *Chart) Save(path string) error {
	var buf bytes.Buffer
	if err := c.WriteSVG(&buf); err != nil {
		return err
	}
	return errors.Wrapf(os.WriteFile(path, buf.Bytes(), 0666), "saving %s chart", c.Title)
}
