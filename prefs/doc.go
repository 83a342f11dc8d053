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

// Package prefs facilitates the storage of preference values on disk.
//
// The live value types (Bool, Int, Float and String) are safe to read from
// any goroutine. This is important for the input system because preference
// values are read on every poll while the values can be changed by the user
// interface at any time.
//
// Values are added to a Disk instance with a key. Keys are conventionally
// dotted paths, for example:
//
//	dsk, err := prefs.NewDisk(pth)
//	var deadzone prefs.Float
//	err = dsk.Add("input.joystick.deadzone", &deadzone)
//	err = dsk.Load(true)
//
// The file on disk is a simple list of "key :: value" lines, preceded by
// WarningBoilerPlate. A Disk instance only loads and saves the keys added to
// it but it preserves the other entries in the file. This means that more
// than one Disk instance can share the same file.
//
// The command line stack allows preference values to be overridden for a
// single run of the program. Values on the top of the stack are applied by
// Disk.Load() after the file has been read.
package prefs
