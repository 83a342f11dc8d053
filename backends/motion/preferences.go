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

import "github.com/jetsetilly/gopherinput/prefs"

// Preferences for the motion controller backend.
type Preferences struct {
	// roll in degrees past which the roll buttons are pressed
	RollThreshold prefs.Float

	// degrees the roll must come back by before the roll button is released
	RollHysteresis prefs.Float
}

const (
	rollThreshold  = 30.0
	rollHysteresis = 10.0
)

// NewPreferences returns Preferences with default values.
func NewPreferences() *Preferences {
	p := &Preferences{}
	p.SetDefaults()
	return p
}

// SetDefaults reverts all motion settings to default values.
func (p *Preferences) SetDefaults() {
	p.RollThreshold.Set(rollThreshold)
	p.RollHysteresis.Set(rollHysteresis)
}
