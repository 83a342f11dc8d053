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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It provides a convenient method of handling program modes (and
// sub-modes) and allows different flags for each mode.
//
// At its simplest it can be used as a replacement for the flag package, with
// some differences. Instead of calling flag.Parse() we create an instance of
// Modes and call Parse() on that:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	echo := md.AddBool("echo", false, "echo log to stdout")
//	p, err := md.Parse()
//
// Sub-modes are added with AddSubModes(). The first sub-mode is the default
// and is selected if the first non-flag argument is not a sub-mode.
//
//	md.AddSubModes("MONITOR", "TERM", "CODES")
//	p, err := md.Parse()
//	switch md.Mode() {
//	case "TERM":
//		md.NewMode()
//		...
//	}
//
// Calling NewMode() after a sub-mode has been selected allows a new set of
// flags to be specified for the remaining arguments. The mode path, returned
// by Path(), records every mode that has been selected.
package modalflag
