// Copyright 2022 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package benchunit

import (
	"math"
	"testing"
)

func TestScale(t *testing.T) {
	test := func(num float64, want, wantPred string) {
		t.Helper()

		got := Scale(num)
		if got != want {
			t.Errorf("for %v, got %s, want %s", num, got, want)
		}

		// Check what happens when this number is exactly on
		// the crux between two scale factors.
		pred := math.Nextafter(num, 0)
		got = Scale(pred)
		if got != wantPred {
			t.Errorf("for %v-ε, got %s, want %s", num, got, wantPred)
		}
	}

	// Smoke tests
	test(0, "0.000", "0.000")
	test(1, "1.000", "1.000")
	test(-1, "-1.000", "-1.000")
	// Full range
	test(9999500, "9999.5k", "9999.5k")
	test(99995, "100.0k", "99.99k")
	test(9999.5, "10.00k", "9.999k")
	test(999.95, "1.000k", "999.9")
	test(99.995, "100.0", "99.99")
	test(9.9995, "10.00", "9.999")
	test(.99995, "1.000", "999.9m")
	test(.099995, "100.0m", "99.99m")
	test(.0099995, "10.00m", "9.999m")
	test(.00099995, "1.000m", "999.9µ")
	test(.000099995, "100.0µ", "99.99µ")
	test(.0000099995, "10.00µ", "9.999µ")
	test(.00000099995, "1.000µ", "999.9n")
	test(.000000099995, "100.0n", "99.99n")
	test(.0000000099995, "10.00n", "9.999n")

	// Misc
	test(-.0000000099995, "-10.00n", "-9.999n")
}

func TestScaleBelowNano(t *testing.T) {
	if got, want := Scale(0.5e-9), "0.5000n"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func TestScaleSeconds(t *testing.T) {
	for _, tc := range []struct {
		sec  float64
		want string
	}{
		{1.5e-3, "1.500ms"},
		{2, "2.000s"},
		{0.5e-6, "500.0ns"},
		{42e-6, "42.00µs"},
	} {
		if got := ScaleSeconds(tc.sec); got != tc.want {
			t.Errorf("ScaleSeconds(%v) = %s, want %s", tc.sec, got, tc.want)
		}
	}
}

func TestCommonScale(t *testing.T) {
	s := CommonScale([]float64{0, 2.5e-3, 1.2})
	if s.Prefix != "m" || s.Prec != 3 {
		t.Errorf("got %+v, want 3 digits of m", s)
	}
	if got, want := s.Format(1.2), "1200.000m"; got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}
