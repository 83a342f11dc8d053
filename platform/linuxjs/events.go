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

package linuxjs

import (
	"encoding/binary"

	"github.com/jetsetilly/gopherinput/backends/joystick"
	"github.com/jetsetilly/gopherinput/codes"
)

// size in bytes of a js_event.
const eventSize = 8

// event types. the init flag is set on the synthetic events sent when the
// device is opened.
const (
	eventButton = 0x01
	eventAxis   = 0x02
	eventInit   = 0x80
)

// abs codes found in the axis map that identify the hat axes.
const (
	absHat0X = 0x10
	absHat0Y = 0x11
)

// maximum number of axes reported by the joystick API.
const maxAxes = 64

type event struct {
	time   uint32
	value  int16
	typ    uint8
	number uint8
}

// decodeEvent decodes a js_event. The kernel writes the event in host byte
// order, which is little endian on every supported platform.
func decodeEvent(b []byte) event {
	return event{
		time:   binary.LittleEndian.Uint32(b[0:]),
		value:  int16(binary.LittleEndian.Uint16(b[4:])),
		typ:    b[6],
		number: b[7],
	}
}

// state accumulates events into the current state of the device.
type state struct {
	buttons uint64
	axes    [maxAxes]int16

	// index into axes of the axes reported as joystick axes. hats are
	// excluded
	axisIdx []int

	// index into axes of the hat, or -1
	hatX, hatY int
}

// newState creates a state for a device with the axis map returned by the
// JSIOCGAXMAP ioctl.
func newState(axmap []uint8) *state {
	s := &state{hatX: -1, hatY: -1}
	for i, a := range axmap {
		if i >= maxAxes {
			break
		}
		switch a {
		case absHat0X:
			s.hatX = i
		case absHat0Y:
			s.hatY = i
		default:
			s.axisIdx = append(s.axisIdx, i)
		}
	}
	return s
}

func (s *state) hasPOV() bool {
	return s.hatX >= 0 && s.hatY >= 0
}

func (s *state) numAxes() int {
	return len(s.axisIdx)
}

func (s *state) apply(e event) {
	switch e.typ &^ eventInit {
	case eventButton:
		if e.number >= 64 {
			return
		}
		if e.value != 0 {
			s.buttons |= 1 << e.number
		} else {
			s.buttons &^= 1 << e.number
		}
	case eventAxis:
		if int(e.number) < maxAxes {
			s.axes[e.number] = e.value
		}
	}
}

func (s *state) reading(r *joystick.Reading) {
	r.Buttons = s.buttons
	for i := range r.Axes {
		r.Axes[i] = 0
	}
	for i, idx := range s.axisIdx {
		if i >= int(codes.MaxJoystickAxes) {
			break
		}
		r.Axes[i] = int(s.axes[idx])
	}
	r.POV = joystick.POVCentered
	if s.hasPOV() {
		r.POV = hatAngle(s.axes[s.hatX], s.axes[s.hatY])
	}
}

// hatAngle converts the position of the hat axes to a POV angle. negative y
// is up.
func hatAngle(x int16, y int16) int {
	switch {
	case x == 0 && y < 0:
		return 0
	case x > 0 && y < 0:
		return 4500
	case x > 0 && y == 0:
		return 9000
	case x > 0 && y > 0:
		return 13500
	case x == 0 && y > 0:
		return 18000
	case x < 0 && y > 0:
		return 22500
	case x < 0 && y == 0:
		return 27000
	case x < 0 && y < 0:
		return 31500
	}
	return joystick.POVCentered
}
