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

package backends

import (
	"github.com/jetsetilly/gopherinput/codes"
	"github.com/jetsetilly/gopherinput/connectivity"
	"github.com/jetsetilly/gopherinput/eventqueue"
)

// Sink is where backends write input. It is implemented by eventqueue.Queue.
type Sink interface {
	Tick() uint32
	PostEvent(typ eventqueue.EventType, tick uint32, data int, data2 int, data3 int)
	PostButtonPressedEvent(typ eventqueue.EventType, tick uint32, scan codes.ButtonCode, virtual codes.ButtonCode)
	PostButtonReleasedEvent(typ eventqueue.EventType, tick uint32, scan codes.ButtonCode, virtual codes.ButtonCode)
	SetAnalogValue(tick uint32, code codes.AnalogCode, value int)
	AddAnalogDelta(tick uint32, code codes.AnalogCode, delta int)
	ReleaseButtons(tick uint32, first codes.ButtonCode, last codes.ButtonCode)
}

// Devices is the view of the connectivity registry used by backends. It is
// implemented by connectivity.Registry.
type Devices interface {
	IsDeviceReadingInput(d connectivity.Device) bool
	SetCurrentInputDevice(d connectivity.Device)
	ReportSignificantInput(d connectivity.Device)
}

// Backend is implemented by every family of input device.
type Backend interface {
	// Name is used for logging and to address hotplug notifications.
	Name() string

	// Init is called once with the Sink and Devices the backend will use for
	// its lifetime. If it fails the backend is never sampled.
	Init(sink Sink, devs Devices) error

	// Sample reads the devices and writes any changes to the Sink. If rescan
	// is true the backend should look for devices that have been connected
	// since the last rescan.
	//
	// Sample never fails. A device that cannot be read is treated as
	// unchanged, or as removed if it has gone.
	Sample(rescan bool)

	// Connected returns the device families the backend currently has
	// connected.
	Connected() connectivity.Device

	// Shutdown releases all devices. The backend will not be used again.
	Shutdown()
}

// Rumbler is implemented by backends that support force feedback. The user
// ID is backend specific. Returns false if the backend does not own the
// user ID.
type Rumbler interface {
	SetRumble(userID int, left float32, right float32) bool
	StopRumble(userID int) bool
}

// Hotplugger is implemented by backends that want notifications of devices
// being inserted or removed. Hotplug() is called from the goroutine running
// the poll, never from the goroutine that noticed the change.
type Hotplugger interface {
	Hotplug(n Notification)
}

// PostButton posts a press or release for a button with the same scan and
// virtual code.
func PostButton(sink Sink, tick uint32, code codes.ButtonCode, down bool) {
	if down {
		sink.PostButtonPressedEvent(eventqueue.ButtonPressed, tick, code, code)
	} else {
		sink.PostButtonReleasedEvent(eventqueue.ButtonReleased, tick, code, code)
	}
}
