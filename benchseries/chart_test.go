// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot"
)

func testChart() *Chart {
	return &Chart{
		Title:   "Reduce",
		XTitle:  XTitle,
		YTitle:  YTitle,
		LogY:    true,
		XLabels: []string{"8", "64", "512"},
		Lines: []Line{
			{"GPU Subgroup", []float64{8, 16, 32}},
			{"CPU Seq", []float64{0.1, 0.8, 6.4}},
		},
	}
}

func TestPlot(t *testing.T) {
	p, err := testChart().Plot()
	require.NoError(t, err)
	assert.Equal(t, "Reduce", p.Title.Text)
	assert.Equal(t, "Number of elements", p.X.Label.Text)
	assert.Equal(t, "Time (us)", p.Y.Label.Text)
	assert.IsType(t, plot.LogScale{}, p.Y.Scale)
	assert.Equal(t, 0.0, p.X.Min)
	assert.Equal(t, 2.0, p.X.Max)
	assert.Equal(t, 0.1, p.Y.Min)
	assert.Equal(t, 32.0, p.Y.Max)

	ticks := p.X.Tick.Marker.Ticks(p.X.Min, p.X.Max)
	require.Len(t, ticks, 3)
	assert.Equal(t, plot.Tick{Value: 2, Label: "512"}, ticks[2])
}

func TestPlotMoreLabelsThanPoints(t *testing.T) {
	c := testChart()
	c.XLabels = append(c.XLabels, "4096", "32768")
	p, err := c.Plot()
	require.NoError(t, err)
	assert.Equal(t, 4.0, p.X.Max)
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, testChart().WriteSVG(&buf))
	svg := buf.String()
	assert.Contains(t, svg, "<svg")
	for _, s := range []string{"Reduce", "Time (us)", "Number of elements", "GPU Subgroup", "CPU Seq", "512"} {
		assert.Contains(t, svg, s)
	}
}

func TestWriteSVGEmpty(t *testing.T) {
	c := &Chart{Title: "Scan", XTitle: XTitle, YTitle: YTitle, LogY: true}
	var buf bytes.Buffer
	require.NoError(t, c.WriteSVG(&buf))
	assert.Contains(t, buf.String(), "Scan")
}

func TestWriteSVGSinglePoint(t *testing.T) {
	c := &Chart{Title: "Scan", LogY: true, XLabels: []string{"8"}, Lines: []Line{{"CPU", []float64{0.5}}}}
	p, err := c.Plot()
	require.NoError(t, err)
	assert.Equal(t, 0.25, p.Y.Min)
	assert.Equal(t, 1.0, p.Y.Max)
	var buf bytes.Buffer
	require.NoError(t, c.WriteSVG(&buf))
}

func TestPlotRejectsUnplottable(t *testing.T) {
	c := testChart()
	c.Lines[1].Values[2] = 0
	_, err := c.Plot()
	assert.EqualError(t, err, `Reduce: "CPU Seq" point 2 is 0, which a log scale cannot show`)

	c.LogY = false
	_, err = c.Plot()
	assert.NoError(t, err)
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reduce.svg")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0666))

	require.NoError(t, testChart().Save(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "GPU Subgroup")
	assert.NotContains(t, string(data), "stale")

	err = testChart().Save(filepath.Join(dir, "missing", "reduce.svg"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "saving Reduce chart")
}

func TestSaveKeepsFileOnRenderError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scan.svg")
	require.NoError(t, os.WriteFile(path, []byte("previous"), 0666))

	c := testChart()
	c.Lines[0].Values[0] = -1
	require.Error(t, c.Save(path))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
}
