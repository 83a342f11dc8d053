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

package gamepad

import (
	"github.com/jetsetilly/gopherinput/curated"
	"github.com/jetsetilly/gopherinput/prefs"
)

// Values for the DeadzoneShape preference.
const (
	DeadzoneCross  = "cross"
	DeadzoneSquare = "square"
)

// InvalidDeadzoneShape is returned when setting an unknown deadzone shape.
const InvalidDeadzoneShape = "gamepad: invalid deadzone shape: %v"

// Preferences for the gamepad backend.
type Preferences struct {
	// proportion of the stick range around the centre that is reported as zero
	Deadzone prefs.Float

	// "cross" applies the deadzone to each axis independently and rescales.
	// "square" zeroes both axes if both are inside the deadzone
	DeadzoneShape prefs.String

	// proportion of trigger travel below which the trigger reads as zero
	TriggerThreshold prefs.Float

	// proportion of stick or trigger travel past which the axis button is
	// pressed
	AxisButtonThreshold prefs.Float
}

const (
	deadzone            = 0.24
	deadzoneShape       = DeadzoneCross
	triggerThreshold    = 0.12
	axisButtonThreshold = 0.5
)

// NewPreferences returns Preferences with default values.
func NewPreferences() *Preferences {
	p := &Preferences{}
	p.DeadzoneShape.SetHookPre(func(v prefs.Value) error {
		switch v {
		case DeadzoneCross, DeadzoneSquare:
			return nil
		}
		return curated.Errorf(InvalidDeadzoneShape, v)
	})
	p.SetDefaults()
	return p
}

// SetDefaults reverts all gamepad settings to default values.
func (p *Preferences) SetDefaults() {
	p.Deadzone.Set(deadzone)
	p.DeadzoneShape.Set(deadzoneShape)
	p.TriggerThreshold.Set(triggerThreshold)
	p.AxisButtonThreshold.Set(axisButtonThreshold)
}
