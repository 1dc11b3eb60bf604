// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchseries

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaries(t *testing.T) {
	c := testChart()
	c.Lines = append(c.Lines, Line{Label: "empty"})
	sums := c.Summaries()
	require.Len(t, sums, 2)

	s := sums[0]
	assert.Equal(t, "Reduce", s.Chart)
	assert.Equal(t, "GPU Subgroup", s.Series)
	assert.Equal(t, 3, s.N)
	assert.InDelta(t, 8e-6, s.Min, 1e-18)
	assert.InDelta(t, 32e-6, s.Max, 1e-18)
	assert.InDelta(t, 16e-6, s.GeoMean, 1e-15)
}

func TestWriteSummary(t *testing.T) {
	r, err := build(t, nil, timing)
	require.NoError(t, err)

	var buf strings.Builder
	require.NoError(t, WriteSummary(&buf, r.Charts()))
	want := `chart   series        n      min  geomean      max
Reduce  GPU Subgroup  2  8.000µs  11.31µs  16.00µs
Reduce  CPU Seq       2  100.0ns  282.8ns  800.0ns
Scan    GPU Subgroup  2  9.000µs  12.73µs  18.00µs
Scan    CPU Seq       2  200.0ns  565.7ns  1.600µs
`
	assert.Equal(t, want, buf.String())
}
