// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package benchunit converts benchmark time measurements between
// units and formats them for display.
package benchunit

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// A TimeUnit is a unit of elapsed time as written by benchmark
// harnesses in their "time_unit" column.
type TimeUnit int

const (
	Nanosecond TimeUnit = iota
	Microsecond
	Millisecond
	Second
)

var timeUnits = [...]struct {
	name   string
	perSec float64 // units per second
}{
	Nanosecond:  {"ns", 1e9},
	Microsecond: {"us", 1e6},
	Millisecond: {"ms", 1e3},
	Second:      {"s", 1},
}

func (u TimeUnit) String() string {
	if u < 0 || int(u) >= len(timeUnits) {
		return fmt.Sprintf("TimeUnit(%d)", int(u))
	}
	return timeUnits[u].name
}

// ParseTimeUnit parses a unit name such as "ns" or "us". "µs" and
// "sec" are accepted as aliases. An empty string is nanoseconds,
// which is what benchmark harnesses report when no unit is given.
func ParseTimeUnit(s string) (TimeUnit, error) {
	switch strings.TrimSpace(s) {
	case "", "ns":
		return Nanosecond, nil
	case "us", "µs":
		return Microsecond, nil
	case "ms":
		return Millisecond, nil
	case "s", "sec":
		return Second, nil
	}
	return 0, errors.Errorf("unknown time unit %q", s)
}

// Convert re-scales val from unit "from" to unit "to". Converting to
// a coarser unit divides by the (exact) ratio between the units, so
// Convert(x, Nanosecond, Microsecond) is exactly x / 1000.
func Convert(val float64, from, to TimeUnit) float64 {
	f, t := timeUnits[from].perSec, timeUnits[to].perSec
	if f > t {
		return val / (f / t)
	}
	return val * (t / f)
}

// Seconds converts val in unit u to seconds. Scale expects values in
// base units, so callers should use this before formatting.
func Seconds(val float64, u TimeUnit) float64 {
	return Convert(val, u, Second)
}
