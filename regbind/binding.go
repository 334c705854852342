package regbind

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownRegister is returned by Exact when a requested name does
// not exist in the profile.
var ErrUnknownRegister = errors.New("unknown register")

// Item is one bound register: a variable name and its width in bits.
type Item struct {
	Name string
	Size uint
}

// Binding is a derived list of register-to-variable bindings. The
// program counter is tracked separately and is never an Item.
type Binding struct {
	pcName string
	Items  []Item
}

// PCName returns the profile name of the program counter register.
func (b *Binding) PCName() string {
	return b.pcName
}

// Derive builds a binding that covers as much of the profile as can be
// represented without ambiguity. Within each register class:
//
//  1. Single-bit registers bind first; a second flag at an already
//     bound offset is dropped.
//  2. A wider register that contains a bound flag is dropped, so the
//     flag keeps ownership of its bit.
//  3. A register fully covered by a strictly larger one is dropped.
//  4. The survivors are ordered by offset, and any register that
//     partially overlaps an earlier survivor is dropped.
//
// The program counter never becomes an Item. The second return value
// lists every descriptor Derive had to drop, in profile order per
// class.
func Derive(p *Profile) (*Binding, []Descriptor) {
	b := &Binding{pcName: p.PC}
	var excluded []Descriptor

	for _, class := range classOrder(p) {
		var flags, regs []Descriptor
		for _, d := range p.Regs {
			if d.Class != class {
				continue
			}
			if d.Size == 1 {
				flags = append(flags, d)
			} else {
				regs = append(regs, d)
			}
		}

		var boundFlags []Descriptor
		for _, f := range flags {
			if f.Name == p.PC {
				excluded = append(excluded, f)
				continue
			}
			dup := false
			for _, prev := range boundFlags {
				if prev.Offset == f.Offset {
					dup = true
					break
				}
			}
			if dup {
				excluded = append(excluded, f)
				continue
			}
			boundFlags = append(boundFlags, f)
			b.Items = append(b.Items, Item{Name: f.Name, Size: f.Size})
		}

		var keep []Descriptor
		for _, r := range regs {
			if containsAnyFlag(r, boundFlags) || coveredByLarger(r, regs) {
				excluded = append(excluded, r)
				continue
			}
			keep = append(keep, r)
		}

		sort.SliceStable(keep, func(i, j int) bool {
			return keep[i].Offset < keep[j].Offset
		})

		var prev *Descriptor
		for i := range keep {
			r := keep[i]
			if prev != nil && prev.overlaps(r) {
				excluded = append(excluded, r)
				continue
			}
			if r.Name == p.PC {
				excluded = append(excluded, r)
				continue
			}
			b.Items = append(b.Items, Item{Name: r.Name, Size: r.Size})
			prev = &keep[i]
		}
	}

	return b, excluded
}

// Exact builds a binding for exactly the named registers, in the given
// order, with no overlap analysis. Every name must exist in the
// profile.
func Exact(p *Profile, names []string) (*Binding, error) {
	b := &Binding{pcName: p.PC}
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if seen[name] {
			return nil, fmt.Errorf("bind %q: duplicate name", name)
		}
		seen[name] = true

		found := false
		for _, d := range p.Regs {
			if d.Name == name {
				b.Items = append(b.Items, Item{Name: d.Name, Size: d.Size})
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("bind %q: %w", name, ErrUnknownRegister)
		}
	}
	return b, nil
}

// classOrder lists the profile's classes in order of first appearance.
func classOrder(p *Profile) []string {
	var order []string
	seen := make(map[string]bool)
	for _, d := range p.Regs {
		if !seen[d.Class] {
			seen[d.Class] = true
			order = append(order, d.Class)
		}
	}
	return order
}

func containsAnyFlag(r Descriptor, flags []Descriptor) bool {
	for _, f := range flags {
		if r.overlaps(f) {
			return true
		}
	}
	return false
}

func coveredByLarger(r Descriptor, regs []Descriptor) bool {
	for _, o := range regs {
		if o.Size > r.Size && o.covers(r) {
			return true
		}
	}
	return false
}
