// Package regbind derives variable bindings from a register profile and
// moves values between a host register file and the lifted variable
// store.
package regbind

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Descriptor describes one register of the host architecture profile:
// its name, the class it belongs to (gpr, flg, ...), its bit offset
// inside the packed profile space and its width in bits.
type Descriptor struct {
	Name   string `yaml:"name"`
	Class  string `yaml:"class"`
	Offset uint   `yaml:"offset"`
	Size   uint   `yaml:"size"`
}

// overlaps reports whether the two descriptors share any bit of the
// profile space. Descriptors of different classes never overlap.
func (d Descriptor) overlaps(o Descriptor) bool {
	if d.Class != o.Class {
		return false
	}
	return d.Offset < o.Offset+o.Size && o.Offset < d.Offset+d.Size
}

// covers reports whether d fully contains o.
func (d Descriptor) covers(o Descriptor) bool {
	if d.Class != o.Class {
		return false
	}
	return d.Offset <= o.Offset && o.Offset+o.Size <= d.Offset+d.Size
}

// Profile is a host register layout. PC names the program counter
// register, which is bound unconditionally and never appears in the
// derived item list.
type Profile struct {
	PC   string       `yaml:"pc"`
	Regs []Descriptor `yaml:"regs"`
}

// ParseProfile decodes a YAML register profile.
func ParseProfile(data []byte) (*Profile, error) {
	var p Profile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("parse register profile: %w", err)
	}
	if p.PC == "" {
		return nil, fmt.Errorf("parse register profile: missing pc register name")
	}
	return &p, nil
}

// LoadProfile reads and decodes a YAML register profile file.
func LoadProfile(path string) (*Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load register profile: %w", err)
	}
	return ParseProfile(data)
}
