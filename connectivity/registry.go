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
	"sync"

	"github.com/jetsetilly/gopherinput/logger"
)

// Registry records which device families are connected and which one, if
// any, is currently driving gameplay.
type Registry struct {
	crit sync.Mutex

	connected Device
	current   Device

	// the current device was chosen by SetCurrentInputDevice() or by sampling
	// rather than automatically
	explicit bool

	sampling bool
}

// NewRegistry is the preferred method of initialisation for the Registry
// type.
func NewRegistry() *Registry {
	return &Registry{}
}

// SetInputDeviceConnected adds or removes the devices from the connected set.
// The connectivity of every other device is unchanged.
func (reg *Registry) SetInputDeviceConnected(d Device, connected bool) {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	prev := reg.connected
	if connected {
		reg.connected = reg.connected.Insert(d)
	} else {
		reg.connected = reg.connected.Remove(d)
	}

	if prev != reg.connected {
		logger.Logf(logger.Allow, "connectivity", "connected devices: %s", reg.connected)
		reg.reselect()
	}
}

// SetConnectedDevices replaces the connected set entirely.
func (reg *Registry) SetConnectedDevices(d Device) {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	if reg.connected == d {
		return
	}
	reg.connected = d
	logger.Logf(logger.Allow, "connectivity", "connected devices: %s", reg.connected)
	reg.reselect()
}

// reselect updates the current device after a change to the connected set.
// must be called from within the critical section.
func (reg *Registry) reselect() {
	if reg.current != None {
		if !reg.connected.Contains(reg.current) {
			logger.Logf(logger.Allow, "connectivity", "current device (%s) disconnected", reg.current)
			reg.current = None
			reg.explicit = false
		} else if !reg.explicit && !reg.connected.IsSingleton() {
			reg.current = None
		}
	}

	if reg.current == None && reg.connected.IsSingleton() {
		reg.current = reg.connected
		reg.explicit = false
		logger.Logf(logger.Allow, "connectivity", "current device: %s (only device connected)", reg.current)
	}
}

// IsInputDeviceConnected returns true if every device in d is connected.
// Always false for None.
func (reg *Registry) IsInputDeviceConnected(d Device) bool {
	if d == None {
		return false
	}
	reg.crit.Lock()
	defer reg.crit.Unlock()
	return reg.connected.Contains(d)
}

// Connected returns the set of connected devices.
func (reg *Registry) Connected() Device {
	reg.crit.Lock()
	defer reg.crit.Unlock()
	return reg.connected
}

// IsOnlySingleDeviceConnected returns the connected device if it is the only
// one. Returns None otherwise.
func (reg *Registry) IsOnlySingleDeviceConnected() Device {
	reg.crit.Lock()
	defer reg.crit.Unlock()
	if reg.connected.IsSingleton() {
		return reg.connected
	}
	return None
}

// SetCurrentInputDevice selects the device that drives gameplay. None removes
// the filter.
func (reg *Registry) SetCurrentInputDevice(d Device) {
	reg.crit.Lock()
	defer reg.crit.Unlock()
	reg.setCurrent(d)
}

func (reg *Registry) setCurrent(d Device) {
	if reg.current == d && reg.explicit == (d != None) {
		return
	}
	reg.current = d
	reg.explicit = d != None
	logger.Logf(logger.Allow, "connectivity", "current device: %s", reg.current)
}

// GetCurrentInputDevice returns the device that drives gameplay.
func (reg *Registry) GetCurrentInputDevice() Device {
	reg.crit.Lock()
	defer reg.crit.Unlock()
	return reg.current
}

// IsDeviceReadingInput returns true if input from the device should affect
// gameplay. This is true when the device is the current device or when there
// is no current device.
func (reg *Registry) IsDeviceReadingInput(d Device) bool {
	reg.crit.Lock()
	defer reg.crit.Unlock()
	return reg.current == None || reg.current == d
}

// SampleInputToFindCurrentDevice enables or disables sampling. While enabled
// the next significant input selects the device it came from.
func (reg *Registry) SampleInputToFindCurrentDevice(enable bool) {
	reg.crit.Lock()
	defer reg.crit.Unlock()
	reg.sampling = enable
}

// IsSamplingForCurrentDevice returns true if sampling is enabled.
func (reg *Registry) IsSamplingForCurrentDevice() bool {
	reg.crit.Lock()
	defer reg.crit.Unlock()
	return reg.sampling
}

// ReportSignificantInput is called by backends when a button that identifies
// the user's choice of device is pressed. Does nothing unless sampling.
func (reg *Registry) ReportSignificantInput(d Device) {
	reg.crit.Lock()
	defer reg.crit.Unlock()

	if !reg.sampling || d == None {
		return
	}
	reg.sampling = false
	logger.Logf(logger.Allow, "connectivity", "sampled significant input from %s", d)
	reg.setCurrent(d)
}
