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

package joystick

import "github.com/jetsetilly/gopherinput/prefs"

// Preferences for the joystick backend. The values are read every time the
// backend is sampled.
type Preferences struct {
	// no joystick is opened or sampled
	Disabled prefs.Bool

	// proportion of the axis range around the centre that is reported as zero
	Deadzone prefs.Float

	// proportion of the axis range past which the axis button is pressed
	AxisButtonThreshold prefs.Float

	// the POV hat reports diagonals as two buttons
	POVDiagonals prefs.Bool
}

const (
	disabled            = false
	deadzone            = 0.15
	axisButtonThreshold = 0.5
	povDiagonals        = true
)

// NewPreferences returns Preferences with default values.
func NewPreferences() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	return p
}

// SetDefaults reverts all joystick settings to default values.
func (p *Preferences) SetDefaults() {
	p.Disabled.Set(disabled)
	p.Deadzone.Set(deadzone)
	p.AxisButtonThreshold.Set(axisButtonThreshold)
	p.POVDiagonals.Set(povDiagonals)
}
