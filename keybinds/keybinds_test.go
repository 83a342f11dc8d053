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

package keybinds_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherinput/codes"
	"github.com/jetsetilly/gopherinput/curated"
	"github.com/jetsetilly/gopherinput/keybinds"
	"github.com/jetsetilly/gopherinput/test"
)

func TestBind(t *testing.T) {
	b := keybinds.NewBinds()
	test.ExpectSuccess(t, b.Bind(codes.KeySpace, "+jump"))
	test.ExpectSuccess(t, b.BindName("mouse1", "+attack"))

	cmd, ok := b.Lookup(codes.KeySpace)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, cmd, "+jump")
	cmd, ok = b.Lookup(codes.MouseLeft)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, cmd, "+attack")

	_, ok = b.Lookup(codes.KeyEscape)
	test.ExpectFailure(t, ok)

	// empty command removes the bind
	test.ExpectSuccess(t, b.Bind(codes.KeySpace, "  "))
	_, ok = b.Lookup(codes.KeySpace)
	test.ExpectFailure(t, ok)

	b.Unbind(codes.MouseLeft)
	test.ExpectEquality(t, b.Len(), 0)

	err := b.BindName("NOT_A_BUTTON", "quit")
	test.ExpectSuccess(t, curated.Is(err, keybinds.UnknownButton))
	err = b.Bind(codes.ButtonCodeNone, "quit")
	test.ExpectSuccess(t, curated.Is(err, keybinds.InvalidButton))
}

func TestReadWrite(t *testing.T) {
	b := keybinds.NewBinds()
	test.DemandSuccess(t, b.Read(strings.NewReader("space: +jump\nA_BUTTON: +use\nescape: cancelselect\n")))
	test.ExpectEquality(t, b.Len(), 3)

	cmd, _ := b.Lookup(codes.KeyXButtonA)
	test.ExpectEquality(t, cmd, "+use")

	// written in code order
	buttons := b.Buttons()
	test.DemandEquality(t, len(buttons), 3)
	test.ExpectSuccess(t, buttons[0] < buttons[1] && buttons[1] < buttons[2])

	var out bytes.Buffer
	test.DemandSuccess(t, b.Write(&out))
	test.ExpectSuccess(t, strings.Contains(out.String(), "JOY1: +use"))

	b.GamepadNames = true
	out.Reset()
	test.DemandSuccess(t, b.Write(&out))
	test.ExpectSuccess(t, strings.Contains(out.String(), "A_BUTTON: +use"))

	c := keybinds.NewBinds()
	test.DemandSuccess(t, c.Read(&out))
	test.ExpectEquality(t, c.Len(), 3)
	for _, btn := range buttons {
		want, _ := b.Lookup(btn)
		got, ok := c.Lookup(btn)
		test.ExpectSuccess(t, ok)
		test.ExpectEquality(t, got, want)
	}
}

func TestReadErrors(t *testing.T) {
	b := keybinds.NewBinds()
	test.DemandSuccess(t, b.Bind(codes.KeySpace, "+jump"))

	// unknown names leave the binds unchanged
	err := b.Read(strings.NewReader("escape: cancelselect\nbogus: quit\n"))
	test.ExpectSuccess(t, curated.Is(err, keybinds.UnknownButton))
	test.ExpectEquality(t, b.Len(), 1)

	err = b.Read(strings.NewReader("- space\n- escape\n"))
	test.ExpectSuccess(t, curated.Is(err, keybinds.NotMapping))

	test.ExpectFailure(t, b.Read(strings.NewReader("space: [")))

	// empty documents are accepted
	test.ExpectSuccess(t, b.Read(strings.NewReader("")))

	// an empty value removes the bind
	test.ExpectSuccess(t, b.Read(strings.NewReader("space: \"\"\n")))
	test.ExpectEquality(t, b.Len(), 0)
}

func TestFile(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "binds.yaml")

	b := keybinds.NewBinds()
	test.ExpectSuccess(t, b.Load(pth))
	test.ExpectEquality(t, b.Len(), 0)

	test.DemandSuccess(t, b.Bind(codes.MouseWheelUp, "invprev"))
	test.DemandSuccess(t, b.Save(pth))

	c := keybinds.NewBinds()
	test.DemandSuccess(t, c.Load(pth))
	cmd, ok := c.Lookup(codes.MouseWheelUp)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, cmd, "invprev")
}
