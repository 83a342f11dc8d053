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

// Package keyboard is the backend for the keyboard and mouse.
//
// The platform message pump calls the methods of the Handler interface as
// messages arrive. Each message is translated into canonical codes and
// posted straight to the live slot of the event queue.
//
// Keys report both the code for the physical key and the code for the
// virtual key, which can differ. The state of the lock keys is reported by
// the platform through the ToggleState interface and is posted as the three
// toggle pseudo-buttons, separately from the physical lock keys.
package keyboard
