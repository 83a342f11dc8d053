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

package connectivity

import (
	"math/bits"
	"strings"
)

// Device is a set of input device families. Each family is a single bit.
type Device uint32

// List of device families. None is the empty set.
const (
	None          Device = 0
	KeyboardMouse Device = 1 << (iota - 1)
	Gamepad
	PlayStationMove
	Hydra
	Sharpshooter
	MoveNavController
	SteamController
)

// AllDevices is the set of every known device family.
const AllDevices = KeyboardMouse | Gamepad | PlayStationMove | Hydra | Sharpshooter | MoveNavController | SteamController

var deviceNames = []struct {
	dev  Device
	name string
}{
	{KeyboardMouse, "keyboard/mouse"},
	{Gamepad, "gamepad"},
	{PlayStationMove, "playstation move"},
	{Hydra, "hydra"},
	{Sharpshooter, "sharpshooter"},
	{MoveNavController, "move nav controller"},
	{SteamController, "steam controller"},
}

// Contains returns true if every device in o is also in d. The empty set is
// contained by every set.
func (d Device) Contains(o Device) bool {
	return d&o == o
}

// Insert returns d with the devices in o added.
func (d Device) Insert(o Device) Device {
	return d | o
}

// Remove returns d with the devices in o removed.
func (d Device) Remove(o Device) Device {
	return d &^ o
}

// IsSingleton returns true if exactly one device family is in the set.
func (d Device) IsSingleton() bool {
	return d != None && d&(d-1) == 0
}

// Count returns the number of device families in the set.
func (d Device) Count() int {
	return bits.OnesCount32(uint32(d))
}

func (d Device) String() string {
	if d == None {
		return "none"
	}
	s := strings.Builder{}
	for _, n := range deviceNames {
		if d.Contains(n.dev) {
			if s.Len() > 0 {
				s.WriteString("|")
			}
			s.WriteString(n.name)
		}
	}
	if d.Remove(AllDevices) != None {
		if s.Len() > 0 {
			s.WriteString("|")
		}
		s.WriteString("unknown")
	}
	return s.String()
}
