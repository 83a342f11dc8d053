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

// Package joystick is the backend for joysticks read through the native
// joystick API of the platform. The platform supplies a Driver.
//
// Each joystick occupies one of codes.MaxJoysticks slots. When sampled, the
// button mask of each joystick is compared with the previous reading and a
// press or release is posted for every bit that differs. The POV hat is
// converted into four direction buttons and compared in the same way.
//
// Every axis drives a pair of axis buttons, pressed when the axis is pushed
// past the AxisButtonThreshold preference in either direction. Separately, the
// analog value of the axis is posted after the Deadzone preference has been
// applied.
//
// A joystick that fails to read has its buttons released for that frame. A
// joystick that has been disconnected is removed from its slot.
package joystick
