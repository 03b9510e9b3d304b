// This file is part of ChipDJ.
//
// ChipDJ is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ChipDJ is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with ChipDJ.  If not, see <https://www.gnu.org/licenses/>.

package mix_test

import (
	"math"
	"testing"

	"github.com/chipdj/chipdj/synth/mix"
	"github.com/chipdj/chipdj/test"
)

func TestMonoSum(t *testing.T) {
	a := []int16{1000, -1000, 0}
	b := []int16{2000, 500, -3000}

	out := mix.Mono(a, b)
	test.EquateSamples(t, out, []int16{3000, -500, -3000})
}

func TestMonoPadding(t *testing.T) {
	a := []int16{1000, 1000, 1000}
	b := []int16{500}

	// the shorter buffer counts as silence once exhausted
	out := mix.Mono(a, b)
	test.EquateSamples(t, out, []int16{1500, 1000, 1000})
}

func TestMonoClamp(t *testing.T) {
	peak := []int16{math.MaxInt16, math.MinInt16}

	// three channels at full scale clamp to full scale. wrapping would
	// flip the sign
	out := mix.Mono(peak, peak, peak)
	test.EquateSamples(t, out, []int16{math.MaxInt16, math.MinInt16})
}

func TestMonoPassThrough(t *testing.T) {
	a := []int16{1, 2, 3}

	out := mix.Mono(a)
	test.EquateSamples(t, out, a)

	test.Equate(t, mix.Mono() == nil, true)
}
