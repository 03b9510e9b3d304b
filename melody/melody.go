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

package melody

import (
	"time"
)

// Channel identifies which of the sound chip's channels a Note is played
// on.
type Channel int

// The three channels of the emulated chip.
const (
	Square Channel = iota
	Triangle
	Noise
)

func (c Channel) String() string {
	switch c {
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	case Noise:
		return "noise"
	}
	return "unknown"
}

// Note is a single entry in a Voice. Notes are immutable once constructed.
//
// A Freq of zero means a rest, except on the noise channel where frequency
// has no meaning and the channel sounds for every note. A rest is silent so
// its channel tag is irrelevant; the zero value (Square) is the
// conventional choice.
type Note struct {
	// frequency in Hz. zero means rest (ignored by the noise channel)
	Freq float64

	// how long the note sounds for. must be positive
	Duration time.Duration

	Channel Channel

	// fraction of each period spent at the high amplitude level. square
	// channel only. must be inside the interval (0,1)
	Duty float64

	// how many samples each state of the noise register is held for. noise
	// channel only. must be at least 1
	Density int
}

// Rest creates a silent Note of the specified duration.
func Rest(d time.Duration) Note {
	return Note{Duration: d}
}

// IsRest returns true if the Note produces silence.
func (n Note) IsRest() bool {
	return n.Channel != Noise && n.Freq == 0
}

// Voice is an ordered sequence of Notes, played one after the other.
type Voice struct {
	// amplitude multiplier applied to every note in the voice after
	// envelope shaping. values are in the range (0,1]. the zero value is
	// treated as full volume so that hand-built voices need not set it
	Gain float64

	Notes []Note
}

// Duration of the voice, including an inter-note gap of the specified
// length between every pair of notes.
func (v Voice) Duration(gap time.Duration) time.Duration {
	var d time.Duration
	for _, n := range v.Notes {
		d += n.Duration
	}
	if len(v.Notes) > 1 {
		d += gap * time.Duration(len(v.Notes)-1)
	}
	return d
}

// Melody is a named collection of Voices that sound concurrently.
type Melody struct {
	Name   string
	Voices []Voice
}

// Duration of the melody, which is the duration of its longest voice.
func (m Melody) Duration(gap time.Duration) time.Duration {
	var d time.Duration
	for _, v := range m.Voices {
		if vd := v.Duration(gap); vd > d {
			d = vd
		}
	}
	return d
}
