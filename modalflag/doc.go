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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes and
// allows different flags for each mode.
//
// Unlike flag.FlagSet, the argument list is given to NewArgs() up front and
// Parse() is then called with no arguments:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("render", "play", "list")
//	p, err := md.Parse()
//
// The Parse() function checks whether the first argument after any flags is
// one of the registered sub-modes. If it is, the mode is recorded and the
// argument consumed. The first registered sub-mode acts as the default when
// no mode argument is given. Sub-mode comparisons are case insensitive.
//
// Once a mode has been selected, NewMode() starts a fresh flag layer for
// that mode:
//
//	switch md.Mode() {
//	case "RENDER":
//		md.NewMode()
//		output := md.AddString("o", "out.wav", "output file")
//		p, err := md.Parse()
//		...
//		doRender(md.GetArg(0), *output)
//	}
//
// Modes can be nested as deeply as required by registering further sub-modes
// after each call to NewMode().
package modalflag
