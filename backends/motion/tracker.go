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

package motion

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Error patterns.
const (
	TrackerUnavailable = "motion: tracker unavailable: %v"
	ReadFailed         = "motion: read failed: %v"
)

// Status of the tracking system.
type Status int

// List of valid Status values. Values from StatusNotCalibrated upwards mean
// that the controller is connected.
const (
	StatusCameraNotConnected Status = iota
	StatusControllerNotConnected
	StatusNotCalibrated
	StatusCalibrating
	StatusError
	StatusOK
)

func (s Status) String() string {
	switch s {
	case StatusCameraNotConnected:
		return "camera not connected"
	case StatusControllerNotConnected:
		return "controller not connected"
	case StatusNotCalibrated:
		return "not calibrated"
	case StatusCalibrating:
		return "calibrating"
	case StatusError:
		return "error"
	case StatusOK:
		return "ok"
	}
	return fmt.Sprintf("status(%d)", int(s))
}

// Button bits in the Sample.Buttons mask.
const (
	ButtonSquare uint32 = 1 << iota
	ButtonCross
	ButtonCircle
	ButtonTriangle
	ButtonMove
	ButtonSelect
	ButtonStart
	ButtonPS
)

// Sample is a single reading from the tracker.
type Sample struct {
	Status Status

	// the controller is connected but the camera cannot see it
	OutOfView bool

	Orientation mgl32.Quat

	// position on the screen. each axis is in the range -1.0 to 1.0 with the
	// origin at the centre of the screen
	Position mgl32.Vec2

	Buttons uint32

	// analog trigger. zero is released
	Trigger uint8
}

// Tracker is the platform interface to a camera tracked motion controller.
type Tracker interface {
	Init() error
	Read(s *Sample) error

	// rumble intensity. zero stops the rumble
	SetRumble(intensity uint8) error
}
