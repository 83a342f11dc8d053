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

// Package paths contains functions to prepare paths to gopherinput resources.
//
// The ResourcePath() function returns the path to a file in the resource
// directory. For example, the following will return the path to the key
// bindings file:
//
//	pth, err := paths.ResourcePath("", "keybinds.yaml")
//
// For non-release builds the resource directory is ".gopherinput" in the
// current directory. For release builds (the "release" build tag) it is the
// "gopherinput" directory in the user's config directory, as reported by
// os.UserConfigDir().
package paths
