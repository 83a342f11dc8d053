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

// Package curated is a helper package for the plain Go language error type.
// Curated errors are the "expected" errors of the input system: a missing
// preferences file, an unknown key name in a bindings file, a driver that is
// not available on the host platform.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error. The pattern is what identifies the
// error and so patterns should be stored as a const string. For example:
//
//	const UnknownButton = "keybinds: unknown button: %s"
//
//	e := curated.Errorf(UnknownButton, "KEY_FOO")
//	if curated.Is(e, UnknownButton) {
//		...
//	}
//
// The Has() function is similar to Is() but checks if a pattern occurs
// somewhere in the error chain. The IsAny() function answers whether the error
// was created by curated.Errorf() at all.
//
// The Error() function ensures that the error message does not contain
// duplicate adjacent parts, where parts are separated by the sub-string ": ".
// This means that wrapping an error with the same prefix more than once does
// not lead to messages such as:
//
//	joystick: joystick: device not found
//
// Curated errors also implement Unwrap() so that errors.Is() from the standard
// library can find plain errors used as values.
package curated
