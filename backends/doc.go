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

// Package backends defines the contract between the input system and the
// families of input device, and the pieces shared by the implementations in
// the sub-packages.
//
// A backend reads its devices when sampled, compares what it reads with the
// previous reading, and writes only the differences to the Sink. A button
// that has not changed state never produces an event.
//
// Digital buttons and menu events are always posted. Analog values are only
// posted if the Devices interface says the device family is reading input.
package backends
