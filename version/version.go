// This file is part of Gopherinput.
//
// Gopherinput is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherinput is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherinput.  If not, see <https://www.gnu.org/licenses/>.

// Package version reports the version of the program. A release build sets
// the number variable with the linker:
//
//	go build -ldflags "-X github.com/jetsetilly/gopherinput/version.number=v0.1.0"
//
// Other builds are described with the VCS information embedded by the Go
// toolchain.
package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the program.
const ApplicationName = "gopherinput"

// set by the linker for release builds
var number string

// Version returns the version string and the VCS revision. The version is
// "unreleased" for builds from a VCS checkout that were not given a number
// and "local" when there is no VCS information.
//
// The revision is suffixed with "+dirty" if the checkout had uncommitted
// changes.
func Version() (string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return describe(number, nil)
	}
	return describe(number, info.Settings)
}

func describe(number string, settings []debug.BuildSetting) (string, string) {
	var vcs, modified bool
	var revision string

	for _, s := range settings {
		switch s.Key {
		case "vcs":
			vcs = true
		case "vcs.revision":
			revision = s.Value
		case "vcs.modified":
			modified = s.Value == "true"
		}
	}

	if revision == "" {
		revision = "no revision information"
	} else if modified {
		revision = fmt.Sprintf("%s+dirty", revision)
	}

	switch {
	case number != "":
		return number, revision
	case vcs:
		return "unreleased", revision
	}
	return "local", revision
}
