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

// Package termkeys is a message pump for programs that run in a terminal
// rather than a window. The terminal is put into raw mode and every byte
// typed is decoded into a key press and release, and a character where the
// key is printable.
//
// Terminals do not report key releases, modifier keys or the mouse, so the
// keyboard backend sees every key as tapped. Ctrl-C is decoded as a quit
// request.
package termkeys
