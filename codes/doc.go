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

// Package codes defines the canonical code space of the input system. Every
// backend translates its native events into ButtonCode and AnalogCode values
// and downstream code depends on these values and names bit-for-bit.
//
// Translation from native codes is through pure lookup functions. Unknown
// input to any of the lookup functions returns a sentinel value, either
// ButtonCodeNone or ButtonCodeInvalid as documented for each function.
//
// Button names are used in key binding files. Joystick codes have two
// names: a generic name ("JOY1", "POV_UP") and an Xbox-style name used in
// gamepad context ("A_BUTTON", "UP"). StringToButtonCode() accepts either
// name.
package codes
