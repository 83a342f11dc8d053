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

// Package motion is the backend for camera tracked motion controllers, such
// as the PlayStation Move. The platform supplies the Tracker.
//
// The face buttons and the trigger are posted as ButtonCodes. Rolling the
// controller past a threshold presses MotionRollLeft or MotionRollRight. The
// button is released when the roll comes back by the hysteresis amount.
//
// Screen position and orientation are not part of the code space. They are
// read with the Position() and Orientation() functions.
//
// A change to the camera status posts CameraUnavailable and the controller
// leaving or entering the camera's view posts MotionOutOfView, with Data set
// to one when leaving and zero when entering.
package motion
