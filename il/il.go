// Package il defines the intermediate representation emitted by the
// lifter: typed bitvector pure expressions and sequenced effects.
//
// Pure nodes are side-effect-free value computations; Effect nodes are
// ordered state mutations. Every node is owned by exactly one parent.
// Reusing a subtree requires an explicit Dup, which deep-copies the
// structure so that no two parents share a node.
package il

// Pure is a side-effect-free typed value computation node. A Pure
// evaluates to either a bitvector of a fixed width or a boolean.
type Pure interface {
	// Dup returns a structurally identical, independently owned copy.
	Dup() Pure

	pure()
}

// Effect is a sequenced state mutation node. Effects never produce a
// value and compose only through Seq.
type Effect interface {
	// DupEffect returns a structurally identical, independently owned
	// copy of the effect tree.
	DupEffect() Effect

	effect()
}

func mask(bits uint) uint64 {
	if bits >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << bits) - 1
}

// Const is a bitvector literal of an explicit width.
type Const struct {
	Bits uint
	V    uint64
}

// Bool is a boolean literal.
type Bool struct {
	V bool
}

// Global reads a global variable.
type Global struct {
	Name string
}

// Local reads a local (per-lift) variable.
type Local struct {
	Name string
}

// BinOp selects the operation of a Bin node.
type BinOp uint8

// Bitvector binary operations. Arithmetic is two's complement, modulo
// 2^width. Logical shifts zero-fill; Sar sign-extends.
const (
	OpAdd BinOp = iota
	OpSub
	OpMul
	OpAnd
	OpOr
	OpXor
	OpShl
	OpShr
	OpSar
)

var binOpNames = [...]string{"add", "sub", "mul", "and", "or", "xor", "shl", "shr", "sar"}

func (o BinOp) String() string { return binOpNames[o] }

// Bin applies a bitvector binary operation to two operands of equal
// width, producing a result of the same width.
type Bin struct {
	Op   BinOp
	X, Y Pure
}

// Not is bitwise complement.
type Not struct {
	X Pure
}

// CmpOp selects the predicate of a Cmp node.
type CmpOp uint8

// Comparison predicates. U-prefixed predicates compare unsigned,
// S-prefixed ones signed.
const (
	CmpEq CmpOp = iota
	CmpUlt
	CmpUle
	CmpUgt
	CmpUge
	CmpSlt
	CmpSle
	CmpSgt
	CmpSge
)

var cmpOpNames = [...]string{"eq", "ult", "ule", "ugt", "uge", "slt", "sle", "sgt", "sge"}

func (o CmpOp) String() string { return cmpOpNames[o] }

// Cmp compares two bitvectors of equal width and produces a boolean.
type Cmp struct {
	Op   CmpOp
	X, Y Pure
}

// BoolOp selects the operation of a BoolBin node.
type BoolOp uint8

// Boolean binary operations.
const (
	OpBAnd BoolOp = iota
	OpBOr
	OpBXor
)

var boolOpNames = [...]string{"band", "bor", "bxor"}

func (o BoolOp) String() string { return boolOpNames[o] }

// BoolBin applies a boolean binary operation.
type BoolBin struct {
	Op   BoolOp
	X, Y Pure
}

// BoolNot is boolean negation.
type BoolNot struct {
	X Pure
}

// Msb extracts the most significant bit of a bitvector as a boolean.
type Msb struct {
	X Pure
}

// Lsb extracts the least significant bit of a bitvector as a boolean.
type Lsb struct {
	X Pure
}

// IsZero tests a bitvector for equality with zero.
type IsZero struct {
	X Pure
}

// Cast resizes a bitvector to an explicit target width. Shrinking
// truncates to the low bits; growing zero-extends when Signed is false
// and sign-extends when Signed is true.
type Cast struct {
	Bits   uint
	Signed bool
	X      Pure
}

// Ite is pure conditional value selection; both branches are values.
type Ite struct {
	Cond, Then, Else Pure
}

// Load reads Bits bits of memory at Addr.
type Load struct {
	Bits uint
	Addr Pure
}

func (*Const) pure()   {}
func (*Bool) pure()    {}
func (*Global) pure()  {}
func (*Local) pure()   {}
func (*Bin) pure()     {}
func (*Not) pure()     {}
func (*Cmp) pure()     {}
func (*BoolBin) pure() {}
func (*BoolNot) pure() {}
func (*Msb) pure()     {}
func (*Lsb) pure()     {}
func (*IsZero) pure()  {}
func (*Cast) pure()    {}
func (*Ite) pure()     {}
func (*Load) pure()    {}

// Dup implementations. Each deep-copies the node so the copy shares no
// structure with the original.

func (c *Const) Dup() Pure  { d := *c; return &d }
func (b *Bool) Dup() Pure   { d := *b; return &d }
func (g *Global) Dup() Pure { d := *g; return &d }
func (l *Local) Dup() Pure  { d := *l; return &d }

func (b *Bin) Dup() Pure     { return &Bin{Op: b.Op, X: b.X.Dup(), Y: b.Y.Dup()} }
func (n *Not) Dup() Pure     { return &Not{X: n.X.Dup()} }
func (c *Cmp) Dup() Pure     { return &Cmp{Op: c.Op, X: c.X.Dup(), Y: c.Y.Dup()} }
func (b *BoolBin) Dup() Pure { return &BoolBin{Op: b.Op, X: b.X.Dup(), Y: b.Y.Dup()} }
func (n *BoolNot) Dup() Pure { return &BoolNot{X: n.X.Dup()} }
func (m *Msb) Dup() Pure     { return &Msb{X: m.X.Dup()} }
func (l *Lsb) Dup() Pure     { return &Lsb{X: l.X.Dup()} }
func (z *IsZero) Dup() Pure  { return &IsZero{X: z.X.Dup()} }
func (c *Cast) Dup() Pure    { return &Cast{Bits: c.Bits, Signed: c.Signed, X: c.X.Dup()} }
func (i *Ite) Dup() Pure     { return &Ite{Cond: i.Cond.Dup(), Then: i.Then.Dup(), Else: i.Else.Dup()} }
func (l *Load) Dup() Pure    { return &Load{Bits: l.Bits, Addr: l.Addr.Dup()} }

// Pure constructors.

// UN builds an unsigned bitvector constant, masked to the given width.
func UN(bits uint, v uint64) Pure {
	return &Const{Bits: bits, V: v & mask(bits)}
}

// SN builds a bitvector constant from a signed value, reduced modulo
// 2^bits.
func SN(bits uint, v int64) Pure {
	return &Const{Bits: bits, V: uint64(v) & mask(bits)}
}

// True builds a boolean true literal.
func True() Pure { return &Bool{V: true} }

// False builds a boolean false literal.
func False() Pure { return &Bool{V: false} }

// VarG reads the named global variable.
func VarG(name string) Pure { return &Global{Name: name} }

// VarL reads the named local variable.
func VarL(name string) Pure { return &Local{Name: name} }

// Add builds x + y.
func Add(x, y Pure) Pure { return &Bin{Op: OpAdd, X: x, Y: y} }

// Sub builds x - y.
func Sub(x, y Pure) Pure { return &Bin{Op: OpSub, X: x, Y: y} }

// Mul builds x * y.
func Mul(x, y Pure) Pure { return &Bin{Op: OpMul, X: x, Y: y} }

// And builds bitwise x & y.
func And(x, y Pure) Pure { return &Bin{Op: OpAnd, X: x, Y: y} }

// Or builds bitwise x | y.
func Or(x, y Pure) Pure { return &Bin{Op: OpOr, X: x, Y: y} }

// Xor builds bitwise x ^ y.
func Xor(x, y Pure) Pure { return &Bin{Op: OpXor, X: x, Y: y} }

// Shl builds a zero-filling left shift of x by y bits.
func Shl(x, y Pure) Pure { return &Bin{Op: OpShl, X: x, Y: y} }

// Shr builds a zero-filling right shift of x by y bits.
func Shr(x, y Pure) Pure { return &Bin{Op: OpShr, X: x, Y: y} }

// Sar builds a sign-extending right shift of x by y bits.
func Sar(x, y Pure) Pure { return &Bin{Op: OpSar, X: x, Y: y} }

// BitNot builds bitwise complement of x.
func BitNot(x Pure) Pure { return &Not{X: x} }

// Eq builds the boolean x == y.
func Eq(x, y Pure) Pure { return &Cmp{Op: CmpEq, X: x, Y: y} }

// Ult builds the unsigned boolean x < y.
func Ult(x, y Pure) Pure { return &Cmp{Op: CmpUlt, X: x, Y: y} }

// Ule builds the unsigned boolean x <= y.
func Ule(x, y Pure) Pure { return &Cmp{Op: CmpUle, X: x, Y: y} }

// Ugt builds the unsigned boolean x > y.
func Ugt(x, y Pure) Pure { return &Cmp{Op: CmpUgt, X: x, Y: y} }

// Uge builds the unsigned boolean x >= y.
func Uge(x, y Pure) Pure { return &Cmp{Op: CmpUge, X: x, Y: y} }

// Slt builds the signed boolean x < y.
func Slt(x, y Pure) Pure { return &Cmp{Op: CmpSlt, X: x, Y: y} }

// Sle builds the signed boolean x <= y.
func Sle(x, y Pure) Pure { return &Cmp{Op: CmpSle, X: x, Y: y} }

// Sgt builds the signed boolean x > y.
func Sgt(x, y Pure) Pure { return &Cmp{Op: CmpSgt, X: x, Y: y} }

// Sge builds the signed boolean x >= y.
func Sge(x, y Pure) Pure { return &Cmp{Op: CmpSge, X: x, Y: y} }

// BAnd builds boolean x && y.
func BAnd(x, y Pure) Pure { return &BoolBin{Op: OpBAnd, X: x, Y: y} }

// BOr builds boolean x || y.
func BOr(x, y Pure) Pure { return &BoolBin{Op: OpBOr, X: x, Y: y} }

// BXor builds boolean x != y.
func BXor(x, y Pure) Pure { return &BoolBin{Op: OpBXor, X: x, Y: y} }

// BNot builds boolean !x.
func BNot(x Pure) Pure { return &BoolNot{X: x} }

// MSB extracts the most significant bit of x as a boolean.
func MSB(x Pure) Pure { return &Msb{X: x} }

// LSB extracts the least significant bit of x as a boolean.
func LSB(x Pure) Pure { return &Lsb{X: x} }

// Zero builds the boolean x == 0.
func Zero(x Pure) Pure { return &IsZero{X: x} }

// NonZero builds the boolean x != 0.
func NonZero(x Pure) Pure { return &BoolNot{X: &IsZero{X: x}} }

// Unsigned resizes x to the given width, zero-extending when growing.
func Unsigned(bits uint, x Pure) Pure {
	return &Cast{Bits: bits, Signed: false, X: x}
}

// Signed resizes x to the given width, sign-extending when growing.
func Signed(bits uint, x Pure) Pure {
	return &Cast{Bits: bits, Signed: true, X: x}
}

// ITE builds pure conditional value selection.
func ITE(cond, then, els Pure) Pure {
	return &Ite{Cond: cond, Then: then, Else: els}
}

// LoadW reads bits bits of memory at addr.
func LoadW(bits uint, addr Pure) Pure {
	return &Load{Bits: bits, Addr: addr}
}

// Effect nodes.

// SetG assigns a global variable.
type SetG struct {
	Name string
	Val  Pure
}

// SetL assigns a local (per-lift) variable.
type SetL struct {
	Name string
	Val  Pure
}

// Store writes Bits bits of Val to memory at Addr.
type Store struct {
	Bits uint
	Addr Pure
	Val  Pure
}

// Jmp transfers control to Target unconditionally.
type Jmp struct {
	Target Pure
}

// Branch is effect-valued conditional selection; both branches are
// effects.
type Branch struct {
	Cond       Pure
	Then, Else Effect
}

// SeqN sequences its children in order.
type SeqN struct {
	Effects []Effect
}

// Nop is the explicit empty effect.
type Nop struct{}

// Raise appends a string-tagged exception event to the host's event log.
type Raise struct {
	Tag string
}

func (*SetG) effect()   {}
func (*SetL) effect()   {}
func (*Store) effect()  {}
func (*Jmp) effect()    {}
func (*Branch) effect() {}
func (*SeqN) effect()   {}
func (*Nop) effect()    {}
func (*Raise) effect()  {}

func (s *SetG) DupEffect() Effect  { return &SetG{Name: s.Name, Val: s.Val.Dup()} }
func (s *SetL) DupEffect() Effect  { return &SetL{Name: s.Name, Val: s.Val.Dup()} }
func (s *Store) DupEffect() Effect { return &Store{Bits: s.Bits, Addr: s.Addr.Dup(), Val: s.Val.Dup()} }
func (j *Jmp) DupEffect() Effect   { return &Jmp{Target: j.Target.Dup()} }

func (b *Branch) DupEffect() Effect {
	d := &Branch{Cond: b.Cond.Dup()}
	if b.Then != nil {
		d.Then = b.Then.DupEffect()
	}
	if b.Else != nil {
		d.Else = b.Else.DupEffect()
	}
	return d
}

func (s *SeqN) DupEffect() Effect {
	d := &SeqN{Effects: make([]Effect, len(s.Effects))}
	for i, e := range s.Effects {
		d.Effects[i] = e.DupEffect()
	}
	return d
}

func (n *Nop) DupEffect() Effect   { return &Nop{} }
func (r *Raise) DupEffect() Effect { return &Raise{Tag: r.Tag} }

// Effect constructors.

// SetGlobal assigns val to the named global variable.
func SetGlobal(name string, val Pure) Effect { return &SetG{Name: name, Val: val} }

// SetLocal assigns val to the named local variable.
func SetLocal(name string, val Pure) Effect { return &SetL{Name: name, Val: val} }

// StoreW writes bits bits of val to memory at addr.
func StoreW(bits uint, addr, val Pure) Effect { return &Store{Bits: bits, Addr: addr, Val: val} }

// Goto transfers control to target unconditionally.
func Goto(target Pure) Effect { return &Jmp{Target: target} }

// BranchE selects between two effects on a boolean condition. Either
// branch may be nil, which is treated as a no-op.
func BranchE(cond Pure, then, els Effect) Effect {
	if then == nil {
		then = &Nop{}
	}
	if els == nil {
		els = &Nop{}
	}
	return &Branch{Cond: cond, Then: then, Else: els}
}

// Seq sequences effects in order. Nil entries are skipped; a single
// surviving effect is returned unwrapped, and an all-nil sequence
// collapses to an empty effect.
func Seq(effects ...Effect) Effect {
	kept := make([]Effect, 0, len(effects))
	for _, e := range effects {
		if e == nil {
			continue
		}
		kept = append(kept, e)
	}
	switch len(kept) {
	case 0:
		return &Nop{}
	case 1:
		return kept[0]
	}
	return &SeqN{Effects: kept}
}

// Empty is the explicit empty effect.
func Empty() Effect { return &Nop{} }

// Event appends a string-tagged exception event to the host's event log.
func Event(tag string) Effect { return &Raise{Tag: tag} }
