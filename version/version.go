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

// Package version records the version number of the project.
package version

// The name to use when referring to the application.
const ApplicationName = "ChipDJ"

// the version number is set at build time through the linker:
//
//	go build -ldflags "-X github.com/chipdj/chipdj/version.number=v1.0"
var number string

// Version returns the version string and whether this is a numbered release
// version. A manual build (ie. not via the makefile) reports "unreleased".
func Version() (string, bool) {
	if number == "" {
		return "unreleased", false
	}
	return number, true
}
