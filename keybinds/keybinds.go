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

package keybinds

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/jetsetilly/gopherinput/codes"
	"github.com/jetsetilly/gopherinput/curated"
	"gopkg.in/yaml.v3"
)

// Error patterns.
const (
	UnknownButton = "keybinds: unknown button (%s)"
	InvalidButton = "keybinds: invalid button code (%d)"
	NotMapping    = "keybinds: bind file must be a mapping of button to command"
)

// Binds maps buttons to command strings.
type Binds struct {
	crit  sync.Mutex
	binds map[codes.ButtonCode]string

	// joystick buttons are saved with Xbox-style names
	GamepadNames bool
}

// NewBinds is the preferred method of initialisation for the Binds type.
func NewBinds() *Binds {
	return &Binds{
		binds: make(map[codes.ButtonCode]string),
	}
}

// Bind the command to the button, replacing any existing command. An empty
// command removes the bind.
func (b *Binds) Bind(c codes.ButtonCode, command string) error {
	if codes.ButtonCodeToString(c, false) == "" {
		return curated.Errorf(InvalidButton, int(c))
	}

	b.crit.Lock()
	defer b.crit.Unlock()

	command = strings.TrimSpace(command)
	if command == "" {
		delete(b.binds, c)
		return nil
	}
	b.binds[c] = command
	return nil
}

// BindName is the same as Bind() but the button is given by name.
func (b *Binds) BindName(name string, command string) error {
	c := codes.StringToButtonCode(name)
	if c == codes.ButtonCodeInvalid {
		return curated.Errorf(UnknownButton, name)
	}
	return b.Bind(c, command)
}

// Unbind removes the command from the button.
func (b *Binds) Unbind(c codes.ButtonCode) {
	b.crit.Lock()
	defer b.crit.Unlock()
	delete(b.binds, c)
}

// Lookup returns the command bound to the button.
func (b *Binds) Lookup(c codes.ButtonCode) (string, bool) {
	b.crit.Lock()
	defer b.crit.Unlock()
	cmd, ok := b.binds[c]
	return cmd, ok
}

// Len returns the number of bound buttons.
func (b *Binds) Len() int {
	b.crit.Lock()
	defer b.crit.Unlock()
	return len(b.binds)
}

// Buttons returns the bound buttons in code order.
func (b *Binds) Buttons() []codes.ButtonCode {
	b.crit.Lock()
	defer b.crit.Unlock()
	return b.sorted()
}

// must be called from within the critical section.
func (b *Binds) sorted() []codes.ButtonCode {
	cs := make([]codes.ButtonCode, 0, len(b.binds))
	for c := range b.binds {
		cs = append(cs, c)
	}
	sort.Slice(cs, func(i, j int) bool { return cs[i] < cs[j] })
	return cs
}

// Read binds from YAML. The document is a mapping of button name to command.
// Existing binds are kept unless the document rebinds the button. Nothing is
// changed if the document contains an unknown button name.
func (b *Binds) Read(r io.Reader) error {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("keybinds: %w", err)
	}

	if len(doc.Content) == 0 {
		return nil
	}
	m := doc.Content[0]
	if m.Kind != yaml.MappingNode {
		return curated.Errorf(NotMapping)
	}

	binds := make(map[codes.ButtonCode]string, len(m.Content)/2)
	for i := 0; i+1 < len(m.Content); i += 2 {
		name := m.Content[i].Value
		c := codes.StringToButtonCode(name)
		if c == codes.ButtonCodeInvalid {
			return curated.Errorf(UnknownButton, name)
		}
		binds[c] = strings.TrimSpace(m.Content[i+1].Value)
	}

	b.crit.Lock()
	defer b.crit.Unlock()
	for c, cmd := range binds {
		if cmd == "" {
			delete(b.binds, c)
		} else {
			b.binds[c] = cmd
		}
	}

	return nil
}

// Write binds as YAML, in button code order.
func (b *Binds) Write(w io.Writer) error {
	b.crit.Lock()
	m := &yaml.Node{Kind: yaml.MappingNode}
	for _, c := range b.sorted() {
		m.Content = append(m.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: codes.ButtonCodeToString(c, b.GamepadNames)},
			&yaml.Node{Kind: yaml.ScalarNode, Value: b.binds[c]},
		)
	}
	b.crit.Unlock()

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&yaml.Node{Kind: yaml.DocumentNode, Content: []*yaml.Node{m}}); err != nil {
		return fmt.Errorf("keybinds: %w", err)
	}
	return enc.Close()
}

// Load binds from the file. A missing file is not an error.
func (b *Binds) Load(pth string) error {
	f, err := os.Open(pth)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("keybinds: %w", err)
	}
	defer f.Close()
	return b.Read(f)
}

// Save binds to the file.
func (b *Binds) Save(pth string) error {
	f, err := os.Create(pth)
	if err != nil {
		return fmt.Errorf("keybinds: %w", err)
	}
	if err := b.Write(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("keybinds: %w", err)
	}
	return nil
}
