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

// Package melody defines the data model for the tunes the synthesizer can
// render. A Melody is one or more Voices and a Voice is an ordered sequence
// of Notes. Each Note names the channel that should sound it: the square
// channel with its duty cycle setting, the triangle channel, or the noise
// channel with its density setting. A Note with a frequency of zero is a
// rest.
//
// Melodies are plain data. The synth package walks them note by note; this
// package never generates samples itself.
//
// The builtin themes are YAML documents embedded at build time. A melody in
// the same format can also be loaded from disk with LoadFile(), so new
// tunes do not require a code change.
package melody
