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
	"sync"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/jetsetilly/gopherinput/backends"
	"github.com/jetsetilly/gopherinput/codes"
	"github.com/jetsetilly/gopherinput/connectivity"
	"github.com/jetsetilly/gopherinput/curated"
	"github.com/jetsetilly/gopherinput/eventqueue"
	"github.com/jetsetilly/gopherinput/logger"
)

var buttonCodes = [...]struct {
	bit  uint32
	code codes.ButtonCode
}{
	{bit: ButtonSquare, code: codes.MotionSquare},
	{bit: ButtonCross, code: codes.MotionCross},
	{bit: ButtonCircle, code: codes.MotionCircle},
	{bit: ButtonTriangle, code: codes.MotionTriangle},
	{bit: ButtonMove, code: codes.MotionMove},
	{bit: ButtonSelect, code: codes.MotionSelect},
	{bit: ButtonStart, code: codes.MotionStart},
	{bit: ButtonPS, code: codes.MotionPS},
}

const (
	// trigger press and release points as a fraction of the trigger range
	triggerPress   = 0.5
	triggerRelease = 0.4
)

// Backend for a camera tracked motion controller.
type Backend struct {
	tracker Tracker
	prefs   *Preferences

	sink backends.Sink
	devs backends.Devices

	initialised bool

	// last sample read from the tracker
	last Sample

	trigger backends.AxisButton
	roll    backends.AxisButton

	// tracking values are read by the application through the query
	// functions, possibly from another goroutine
	crit        sync.Mutex
	status      Status
	position    mgl32.Vec2
	orientation mgl32.Quat
}

// NewBackend is the preferred method of initialisation for the Backend type.
// Default preferences are used if prefs is nil.
func NewBackend(tracker Tracker, prefs *Preferences) *Backend {
	if prefs == nil {
		prefs = NewPreferences()
	}
	return &Backend{
		tracker:     tracker,
		prefs:       prefs,
		trigger:     backends.NewAxisButton(codes.MotionTrigger, codes.ButtonCodeNone),
		roll:        backends.NewAxisButton(codes.MotionRollLeft, codes.MotionRollRight),
		orientation: mgl32.QuatIdent(),
		last:        Sample{Orientation: mgl32.QuatIdent()},
	}
}

// Name implements the backends.Backend interface.
func (mb *Backend) Name() string {
	return "motion"
}

// Init implements the backends.Backend interface.
func (mb *Backend) Init(sink backends.Sink, devs backends.Devices) error {
	mb.sink = sink
	mb.devs = devs
	if err := mb.tracker.Init(); err != nil {
		return curated.Errorf(TrackerUnavailable, err)
	}
	mb.initialised = true
	return nil
}

// Connected implements the backends.Backend interface.
func (mb *Backend) Connected() connectivity.Device {
	mb.crit.Lock()
	defer mb.crit.Unlock()
	if mb.status >= StatusNotCalibrated {
		return connectivity.PlayStationMove
	}
	return connectivity.None
}

// Shutdown implements the backends.Backend interface.
func (mb *Backend) Shutdown() {
	if mb.sink != nil {
		mb.release(mb.sink.Tick())
	}
	if mb.initialised {
		_ = mb.tracker.SetRumble(0)
	}
}

// Status returns the most recent status of the tracking system.
func (mb *Backend) Status() Status {
	mb.crit.Lock()
	defer mb.crit.Unlock()
	return mb.status
}

// Position returns the screen position of the controller. The value is not
// updated while another device is the current input device.
func (mb *Backend) Position() mgl32.Vec2 {
	mb.crit.Lock()
	defer mb.crit.Unlock()
	return mb.position
}

// Orientation returns the orientation of the controller. The value is not
// updated while another device is the current input device.
func (mb *Backend) Orientation() mgl32.Quat {
	mb.crit.Lock()
	defer mb.crit.Unlock()
	return mb.orientation
}

// SetRumble implements the backends.Rumbler interface. Only user zero is
// supported. The stronger of the two motors is used for the intensity.
func (mb *Backend) SetRumble(userID int, left float32, right float32) bool {
	if userID != 0 || mb.Connected() == connectivity.None {
		return false
	}
	v := left
	if right > v {
		v = right
	}
	var intensity uint8
	switch {
	case v >= 1:
		intensity = 0xff
	case v > 0:
		intensity = uint8(v * 0xff)
	}
	if err := mb.tracker.SetRumble(intensity); err != nil {
		logger.Log(logger.Allow, "motion", err)
		return false
	}
	return true
}

// StopRumble implements the backends.Rumbler interface.
func (mb *Backend) StopRumble(userID int) bool {
	return mb.SetRumble(userID, 0, 0)
}

// Sample implements the backends.Backend interface.
func (mb *Backend) Sample(_ bool) {
	if !mb.initialised {
		return
	}

	tick := mb.sink.Tick()

	var s Sample
	if err := mb.tracker.Read(&s); err != nil {
		logger.Log(logger.Allow, "motion", curated.Errorf(ReadFailed, err))
		s = mb.last
		s.Status = StatusError
		s.Buttons = 0
		s.Trigger = 0
	}

	if s.Status != mb.last.Status {
		mb.statusChange(tick, s.Status)
	}

	if s.Status < StatusNotCalibrated {
		mb.release(tick)
		mb.last = s
		return
	}

	if s.OutOfView != mb.last.OutOfView {
		data := 0
		if s.OutOfView {
			data = 1
		}
		mb.sink.PostEvent(eventqueue.MotionOutOfView, tick, data, 0, 0)
	}

	backends.ButtonDiff(uint64(mb.last.Buttons), uint64(s.Buttons), len(buttonCodes), func(i int, down bool) {
		backends.PostButton(mb.sink, tick, buttonCodes[i].code, down)
	})

	trigger := float64(s.Trigger) / 0xff
	wasDown, _ := mb.trigger.IsDown()
	mb.trigger.Update(mb.sink, tick, trigger, triggerPress, triggerRelease)
	if down, _ := mb.trigger.IsDown(); down && !wasDown {
		mb.devs.ReportSignificantInput(connectivity.PlayStationMove)
	}

	threshold := mb.prefs.RollThreshold.Get().(float64)
	hysteresis := mb.prefs.RollHysteresis.Get().(float64)
	mb.roll.Update(mb.sink, tick, float64(Roll(s.Orientation))/180, threshold/180, (threshold-hysteresis)/180)

	if mb.devs.IsDeviceReadingInput(connectivity.PlayStationMove) {
		mb.crit.Lock()
		mb.position = s.Position
		mb.orientation = s.Orientation
		mb.crit.Unlock()
	}

	mb.last = s
}

func (mb *Backend) statusChange(tick uint32, status Status) {
	logger.Logf(logger.Allow, "motion", "status: %s", status)

	mb.crit.Lock()
	mb.status = status
	mb.crit.Unlock()

	if status == StatusCameraNotConnected {
		mb.sink.PostEvent(eventqueue.CameraUnavailable, tick, 0, 0, 0)
	}
}

func (mb *Backend) release(tick uint32) {
	for _, b := range buttonCodes {
		if mb.last.Buttons&b.bit == b.bit {
			backends.PostButton(mb.sink, tick, b.code, false)
		}
	}
	mb.last.Buttons = 0
	mb.trigger.Release(mb.sink, tick)
	mb.roll.Release(mb.sink, tick)
}
