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

// Package keybinds maps buttons to command strings. Binds are stored as a
// YAML mapping using the button names of the codes package, for example:
//
//	SPACE: +jump
//	A_BUTTON: +jump
//	MOUSE1: +attack
//
// Names are case insensitive when read. Joystick buttons can be written with
// either the generic or the Xbox-style names.
package keybinds
