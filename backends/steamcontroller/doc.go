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

// Package steamcontroller is the backend for the Steam Controller. The
// platform supplies the vendor API.
//
// The backend does not read buttons directly. Instead it reads a fixed table
// of named digital actions, each mapped to a ButtonCode. An action is pressed
// if it is active and pressed on any connected controller. Only changes from
// the previous frame are posted.
//
// Pressing one of the menu actions makes the Steam Controller the current
// input device.
//
// The action set in use is chosen by a stack of modes. Each caller pushes its
// mode with a key that identifies it and pops it with the same key, so nested
// callers do not overwrite one another. The mode at the top of the stack is
// the active mode. With an empty stack the mode is GameControls.
package steamcontroller
