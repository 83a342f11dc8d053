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

package inputsystem

import "github.com/jetsetilly/gopherinput/backends/keyboard"

// Pump is the platform's window message stream. Events are pushed into the
// keyboard backend when the pump is drained.
type Pump interface {
	keyboard.ToggleState

	// Drain passes every pending window event to the handler. Must not
	// block.
	Drain(h keyboard.Handler)

	// WaitForInput blocks until there is input to drain or until maxMs
	// milliseconds have passed. A negative value waits indefinitely. Returns
	// true if there is input to drain.
	WaitForInput(maxMs int) bool

	// SetCursorPosition moves the cursor, relative to the window.
	SetCursorPosition(x int, y int)
}

// WindowBinder is implemented by pumps that need to be told which window to
// read from.
type WindowBinder interface {
	Attach(handle uintptr) error
	Detach()
}
