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

package steamcontroller

// APIUnavailable is returned by Init() when the vendor API cannot be used.
const APIUnavailable = "steam controller: api unavailable: %v"

// Handles used by the vendor API. A zero handle is invalid.
type (
	ControllerHandle    uint64
	ActionSetHandle     uint64
	DigitalActionHandle uint64
)

// DigitalActionData is the state of a digital action for one controller.
type DigitalActionData struct {
	// the action is pressed
	State bool

	// the action is available in the active action set
	Active bool
}

// API is the subset of the vendor controller API used by the backend.
type API interface {
	Init() error

	// RunFrame updates the state returned by the other functions.
	RunFrame()

	ConnectedControllers() []ControllerHandle

	ActionSetHandle(name string) ActionSetHandle
	DigitalActionHandle(name string) DigitalActionHandle
	DigitalActionData(c ControllerHandle, a DigitalActionHandle) DigitalActionData
	ActivateActionSet(c ControllerHandle, set ActionSetHandle)

	TriggerVibration(c ControllerHandle, left uint16, right uint16)
}
