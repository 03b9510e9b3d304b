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

package melody_test

import (
	"strings"
	"testing"
	"time"

	"github.com/chipdj/chipdj/curated"
	"github.com/chipdj/chipdj/melody"
	"github.com/chipdj/chipdj/test"
)

func TestBuiltinThemes(t *testing.T) {
	test.Equate(t, strings.Join(melody.Names(), ","), "clown,desperado,mario")

	m, err := melody.Lookup("mario")
	test.ExpectedSuccess(t, err)
	test.Equate(t, m.Name, "mario")
	test.Equate(t, len(m.Voices), 2)

	// melody and bass voices are note-for-note aligned
	test.Equate(t, len(m.Voices[0].Notes), 64)
	test.Equate(t, len(m.Voices[1].Notes), 64)

	// opening note of the melody voice
	n := m.Voices[0].Notes[0]
	test.Equate(t, n.Freq, 659.0)
	test.Equate(t, n.Channel.String(), "square")
	test.Equate(t, n.Duty, 0.5)
	test.Equate(t, n.Duration == 200*time.Millisecond, true)
	test.Equate(t, n.IsRest(), false)

	// third entry is a rest
	test.Equate(t, m.Voices[0].Notes[2].IsRest(), true)

	// bass voice is the triangle channel an octave down
	b := m.Voices[1].Notes[0]
	test.Equate(t, b.Freq, 329.5)
	test.Equate(t, b.Channel.String(), "triangle")

	// both voices cover the same span of time
	gap := 5 * time.Millisecond
	test.Equate(t, m.Voices[0].Duration(gap) == m.Voices[1].Duration(gap), true)
}

func TestBuiltinNoise(t *testing.T) {
	m, err := melody.Lookup("clown")
	test.ExpectedSuccess(t, err)
	test.Equate(t, len(m.Voices), 2)

	// the noise voice sounds for every note even though no frequency is
	// given
	n := m.Voices[1].Notes[0]
	test.Equate(t, n.Channel.String(), "noise")
	test.Equate(t, n.Density, 4)
	test.Equate(t, n.IsRest(), false)
}

func TestLookupUnknown(t *testing.T) {
	_, err := melody.Lookup("frere jacques")
	test.ExpectedFailure(t, err)
	test.Equate(t, curated.Is(err, melody.NotFound), true)
}

const minimalDoc = `
name: minimal
voices:
  - channel: square
    notes:
      - {freq: 440, ms: 100}
      - {ms: 50}
      - {freq: 220, ms: 100, channel: triangle}
`

func TestParse(t *testing.T) {
	m, err := melody.Parse([]byte(minimalDoc))
	test.ExpectedSuccess(t, err)
	test.Equate(t, m.Name, "minimal")
	test.Equate(t, len(m.Voices), 1)
	test.Equate(t, len(m.Voices[0].Notes), 3)

	// duty defaults to a half when neither the note nor the voice specify
	// one
	test.Equate(t, m.Voices[0].Notes[0].Duty, 0.5)

	test.Equate(t, m.Voices[0].Notes[1].IsRest(), true)

	// the note-level channel overrides the voice default
	test.Equate(t, m.Voices[0].Notes[2].Channel.String(), "triangle")

	// gain of zero means full volume for hand-built voices; the loader
	// leaves it as it found it
	test.Equate(t, m.Voices[0].Gain, 0.0)
}

func TestParseErrors(t *testing.T) {
	bad := []string{
		"voices:\n  - notes:\n      - {freq: 440, ms: 100}\n",            // no name
		"name: x\n",                                                      // no voices
		"name: x\nvoices:\n  - notes: []\n",                              // no notes
		"name: x\nvoices:\n  - notes:\n      - {freq: 440, ms: 0}\n",     // bad duration
		"name: x\nvoices:\n  - notes:\n      - {freq: -1, ms: 100}\n",    // bad frequency
		"name: x\nvoices:\n  - channel: theremin\n    notes:\n      - {freq: 440, ms: 100}\n", // bad channel
		"name: x\nvoices:\n  - gain: 1.5\n    notes:\n      - {freq: 440, ms: 100}\n",         // bad gain
	}

	for _, doc := range bad {
		_, err := melody.Parse([]byte(doc))
		if test.ExpectedFailure(t, err) {
			test.Equate(t, curated.Is(err, melody.DefinitionError), true)
		}
	}
}

func TestDuration(t *testing.T) {
	v := melody.Voice{Notes: []melody.Note{
		{Freq: 440, Duration: 200 * time.Millisecond},
		melody.Rest(100 * time.Millisecond),
		{Freq: 880, Duration: 150 * time.Millisecond, Channel: melody.Triangle},
	}}

	gap := 5 * time.Millisecond
	test.Equate(t, v.Duration(gap) == 460*time.Millisecond, true)

	m := melody.Melody{Name: "x", Voices: []melody.Voice{
		v,
		{Notes: []melody.Note{melody.Rest(time.Millisecond)}},
	}}
	test.Equate(t, m.Duration(gap) == 460*time.Millisecond, true)
}
