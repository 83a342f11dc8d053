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

// Package connectivity tracks which families of input device are connected
// and which family currently drives gameplay.
//
// Any number of device families can be connected at once. The current device
// is a single family or None. None means that input from every family is
// accepted. Backends use IsDeviceReadingInput() to decide whether to forward
// analog input to the game. Menu navigation is never filtered.
//
// When exactly one family is connected it becomes the current device
// automatically. An automatically chosen device stops being current as soon
// as another family connects. A device chosen with SetCurrentInputDevice(), or
// by sampling for significant input, stays current until it is disconnected.
package connectivity
