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

import "fmt"

// NotificationKind is the kind of change reported by a Notification.
type NotificationKind int

// List of valid NotificationKind values.
const (
	DeviceInserted NotificationKind = iota
	DeviceRemoved
)

func (k NotificationKind) String() string {
	switch k {
	case DeviceInserted:
		return "inserted"
	case DeviceRemoved:
		return "removed"
	}
	return "unknown"
}

// Notification is sent by goroutines watching for devices being connected or
// disconnected. It is delivered to the Backend with the matching name during
// the next poll.
type Notification struct {
	Kind    NotificationKind
	Backend string

	// ID is backend specific. for example, the path of a device file
	ID string
}

func (n Notification) String() string {
	return fmt.Sprintf("%s: %s %s", n.Backend, n.ID, n.Kind)
}
