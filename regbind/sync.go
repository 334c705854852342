package regbind

// Value is a concrete bitvector: a width and the value truncated to
// that width.
type Value struct {
	Bits uint
	V    uint64
}

func maskBits(bits uint) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << bits) - 1
}

// coerce zero-extends or truncates v to the given width.
func coerce(v Value, bits uint) uint64 {
	return v.V & maskBits(bits)
}

// Store is the variable store of an evaluation host: bound global
// variables plus the program counter.
type Store interface {
	Var(name string) (Value, bool)
	SetVar(name string, v Value)
	PC() Value
	SetPC(v Value)
}

// RegisterFile is the host's concrete register state, addressed by
// profile name.
type RegisterFile interface {
	Lookup(name string) (size uint, ok bool)
	Read(name string) (uint64, bool)
	Write(name string, v uint64) bool
}

// Push copies every bound variable, and the program counter, from the
// store into the register file. A variable wider or narrower than its
// register is truncated or zero-extended. Push is total; the return
// value reports whether the transfer was faithful: every register
// found, every variable present and of matching width, every write
// accepted.
func Push(b *Binding, vm Store, file RegisterFile) bool {
	perfect := true

	pc := vm.PC()
	if size, ok := file.Lookup(b.pcName); ok {
		if size != pc.Bits {
			perfect = false
		}
		if !file.Write(b.pcName, coerce(pc, size)) {
			perfect = false
		}
	} else {
		perfect = false
	}

	for _, item := range b.Items {
		size, ok := file.Lookup(item.Name)
		if !ok {
			perfect = false
			continue
		}
		v, ok := vm.Var(item.Name)
		if !ok {
			perfect = false
			file.Write(item.Name, 0)
			continue
		}
		if v.Bits != size {
			perfect = false
		}
		if !file.Write(item.Name, coerce(v, size)) {
			perfect = false
		}
	}

	return perfect
}

// Pull copies every bound register, and the program counter, from the
// register file into the store. A register missing from the file reads
// as zero. Pull is total.
func Pull(b *Binding, file RegisterFile, vm Store) {
	pc := vm.PC()
	v, ok := file.Read(b.pcName)
	if !ok {
		v = 0
	}
	vm.SetPC(Value{Bits: pc.Bits, V: v & maskBits(pc.Bits)})

	for _, item := range b.Items {
		v, ok := file.Read(item.Name)
		if !ok {
			v = 0
		}
		vm.SetVar(item.Name, Value{Bits: item.Size, V: v & maskBits(item.Size)})
	}
}

// MapStore is a map-backed Store for tests and tooling.
type MapStore struct {
	Vars    map[string]Value
	Counter Value
}

// NewMapStore returns an empty store with a program counter of the
// given width.
func NewMapStore(pcBits uint) *MapStore {
	return &MapStore{
		Vars:    make(map[string]Value),
		Counter: Value{Bits: pcBits},
	}
}

func (s *MapStore) Var(name string) (Value, bool) {
	v, ok := s.Vars[name]
	return v, ok
}

func (s *MapStore) SetVar(name string, v Value) {
	s.Vars[name] = v
}

func (s *MapStore) PC() Value { return s.Counter }

func (s *MapStore) SetPC(v Value) { s.Counter = v }

// MapFile is a map-backed RegisterFile for tests and tooling. Its
// layout comes from a profile; values default to zero.
type MapFile struct {
	Sizes  map[string]uint
	Values map[string]uint64
}

// NewMapFile builds a register file covering every register of the
// profile, including the program counter.
func NewMapFile(p *Profile) *MapFile {
	f := &MapFile{
		Sizes:  make(map[string]uint, len(p.Regs)),
		Values: make(map[string]uint64, len(p.Regs)),
	}
	for _, d := range p.Regs {
		f.Sizes[d.Name] = d.Size
	}
	return f
}

func (f *MapFile) Lookup(name string) (uint, bool) {
	size, ok := f.Sizes[name]
	return size, ok
}

func (f *MapFile) Read(name string) (uint64, bool) {
	size, ok := f.Sizes[name]
	if !ok {
		return 0, false
	}
	return f.Values[name] & maskBits(size), true
}

func (f *MapFile) Write(name string, v uint64) bool {
	size, ok := f.Sizes[name]
	if !ok {
		return false
	}
	f.Values[name] = v & maskBits(size)
	return true
}
