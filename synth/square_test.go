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

package synth_test

import (
	"math"
	"testing"
	"time"

	"github.com/chipdj/chipdj/curated"
	"github.com/chipdj/chipdj/synth"
	"github.com/chipdj/chipdj/test"
)

func TestSquareLength(t *testing.T) {
	buf, err := synth.Square(44100, 440, 200*time.Millisecond, 0.5)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(buf), 8820)

	// durations that don't fall on a whole number of samples round to
	// nearest
	buf, err = synth.Square(44100, 440, time.Millisecond, 0.5)
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(buf), 44)
}

func TestSquareLevels(t *testing.T) {
	// 441Hz at 44100Hz is exactly 100 samples per period, which makes the
	// per-period counts exact
	buf, err := synth.Square(44100, 441, 200*time.Millisecond, 0.25)
	test.ExpectedSuccess(t, err)

	high := 0
	for _, s := range buf {
		switch s {
		case synth.PeakAmplitude:
			high++
		case -synth.PeakAmplitude:
		default:
			t.Fatalf("unexpected amplitude level (%d)", s)
		}
	}

	// 88 whole periods of 25 high samples, plus the first 20 samples of
	// the 89th period which are all high
	test.Equate(t, high, 88*25+20)
}

func TestSquareDutyFraction(t *testing.T) {
	// a frequency whose period isn't a whole number of samples. the high
	// fraction must still match the duty cycle to within one sample of
	// rounding error per period
	buf, err := synth.Square(44100, 440, time.Second, 0.5)
	test.ExpectedSuccess(t, err)

	high := 0
	for _, s := range buf {
		if s == synth.PeakAmplitude {
			high++
		}
	}

	frac := float64(high) / float64(len(buf))
	period := 44100.0 / 440.0
	if math.Abs(frac-0.5) > 1/period {
		t.Errorf("high fraction does not match duty cycle (%f - wanted 0.5)", frac)
	}
}

func TestSquareRejects(t *testing.T) {
	// a frequency of zero is a rest and rests are not the generator's
	// business
	_, err := synth.Square(44100, 0, time.Second, 0.5)
	if test.ExpectedFailure(t, err) {
		test.Equate(t, curated.Is(err, synth.InvalidNote), true)
	}

	_, err = synth.Square(44100, -440, time.Second, 0.5)
	test.ExpectedFailure(t, err)

	for _, duty := range []float64{0, 1, -0.1, 1.5} {
		_, err = synth.Square(44100, 440, time.Second, duty)
		if test.ExpectedFailure(t, err) {
			test.Equate(t, curated.Is(err, synth.InvalidNote), true)
		}
	}

	_, err = synth.Square(44100, 440, 0, 0.5)
	test.ExpectedFailure(t, err)
}
