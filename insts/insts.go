// Package insts provides SuperH-4 instruction definitions.
//
// This package defines the structured form of a decoded SH-4 instruction:
// the mnemonic enumeration, addressing-mode tags, operand descriptors, and
// operation widths. Instances are produced by an external decoder and
// consumed by the lift package, which turns them into IR.
package insts

// Mnemonic identifies an SH-4 instruction family.
//
// The enumeration is dense: it indexes the lifter's dispatch table
// directly, so values must stay contiguous and NumMnemonics must remain
// the last entry.
type Mnemonic uint16

// SH-4 mnemonics.
const (
	OpInvalid Mnemonic = iota
	OpMov
	OpMovt
	OpSwap
	OpXtrct
	OpAdd
	OpAddc
	OpAddv
	OpCmpEq
	OpCmpHs
	OpCmpGe
	OpCmpHi
	OpCmpGt
	OpCmpPz
	OpCmpPl
	OpCmpStr
	OpDiv1
	OpDiv0s
	OpDiv0u
	OpDmuls
	OpDmulu
	OpDt
	OpExts
	OpExtu
	OpMac
	OpMul
	OpMuls
	OpMulu
	OpNeg
	OpNegc
	OpSub
	OpSubc
	OpSubv
	OpAnd
	OpNot
	OpOr
	OpTas
	OpTst
	OpXor
	OpRotl
	OpRotr
	OpRotcl
	OpRotcr
	OpShad
	OpShal
	OpShar
	OpShld
	OpShll
	OpShlr
	OpShll2
	OpShlr2
	OpShll8
	OpShlr8
	OpShll16
	OpShlr16
	OpBf
	OpBfs
	OpBt
	OpBts
	OpBra
	OpBraf
	OpBsr
	OpBsrf
	OpJmp
	OpJsr
	OpRts
	OpClrmac
	OpClrs
	OpClrt
	OpLdc
	OpLds
	OpMovca
	OpNop
	OpRte
	OpSets
	OpSett
	OpSleep
	OpStc
	OpSts
	OpUnimpl

	// NumMnemonics is the size of the dispatch table.
	NumMnemonics
)

var mnemonicNames = [NumMnemonics]string{
	OpInvalid: "invalid",
	OpMov:     "mov",
	OpMovt:    "movt",
	OpSwap:    "swap",
	OpXtrct:   "xtrct",
	OpAdd:     "add",
	OpAddc:    "addc",
	OpAddv:    "addv",
	OpCmpEq:   "cmp/eq",
	OpCmpHs:   "cmp/hs",
	OpCmpGe:   "cmp/ge",
	OpCmpHi:   "cmp/hi",
	OpCmpGt:   "cmp/gt",
	OpCmpPz:   "cmp/pz",
	OpCmpPl:   "cmp/pl",
	OpCmpStr:  "cmp/str",
	OpDiv1:    "div1",
	OpDiv0s:   "div0s",
	OpDiv0u:   "div0u",
	OpDmuls:   "dmuls.l",
	OpDmulu:   "dmulu.l",
	OpDt:      "dt",
	OpExts:    "exts",
	OpExtu:    "extu",
	OpMac:     "mac",
	OpMul:     "mul.l",
	OpMuls:    "muls.w",
	OpMulu:    "mulu.w",
	OpNeg:     "neg",
	OpNegc:    "negc",
	OpSub:     "sub",
	OpSubc:    "subc",
	OpSubv:    "subv",
	OpAnd:     "and",
	OpNot:     "not",
	OpOr:      "or",
	OpTas:     "tas.b",
	OpTst:     "tst",
	OpXor:     "xor",
	OpRotl:    "rotl",
	OpRotr:    "rotr",
	OpRotcl:   "rotcl",
	OpRotcr:   "rotcr",
	OpShad:    "shad",
	OpShal:    "shal",
	OpShar:    "shar",
	OpShld:    "shld",
	OpShll:    "shll",
	OpShlr:    "shlr",
	OpShll2:   "shll2",
	OpShlr2:   "shlr2",
	OpShll8:   "shll8",
	OpShlr8:   "shlr8",
	OpShll16:  "shll16",
	OpShlr16:  "shlr16",
	OpBf:      "bf",
	OpBfs:     "bf/s",
	OpBt:      "bt",
	OpBts:     "bt/s",
	OpBra:     "bra",
	OpBraf:    "braf",
	OpBsr:     "bsr",
	OpBsrf:    "bsrf",
	OpJmp:     "jmp",
	OpJsr:     "jsr",
	OpRts:     "rts",
	OpClrmac:  "clrmac",
	OpClrs:    "clrs",
	OpClrt:    "clrt",
	OpLdc:     "ldc",
	OpLds:     "lds",
	OpMovca:   "movca.l",
	OpNop:     "nop",
	OpRte:     "rte",
	OpSets:    "sets",
	OpSett:    "sett",
	OpSleep:   "sleep",
	OpStc:     "stc",
	OpSts:     "sts",
	OpUnimpl:  "unimpl",
}

// String returns the assembler spelling of the mnemonic.
func (m Mnemonic) String() string {
	if m >= NumMnemonics {
		return "unknown"
	}
	return mnemonicNames[m]
}

// Reg identifies an architectural register referenced by an operand.
//
// General-purpose registers occupy indices 0..15 so that a Reg below
// GPRCount can be used directly as a bank-relative register number.
type Reg uint16

// SH-4 register indices.
const (
	RegR0 Reg = iota
	RegR1
	RegR2
	RegR3
	RegR4
	RegR5
	RegR6
	RegR7
	RegR8
	RegR9
	RegR10
	RegR11
	RegR12
	RegR13
	RegR14
	RegR15
	RegPC
	RegSR
	RegGBR
	RegSSR
	RegSPC
	RegSGR
	RegDBR
	RegVBR
	RegMACH
	RegMACL
	RegPR

	NumRegs
)

const (
	// GPRCount is the number of general-purpose registers.
	GPRCount = 16
	// BankedCount is the number of banked general-purpose registers;
	// r0..r7 exist once per bank.
	BankedCount = 8
)

var regNames = [NumRegs]string{
	"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7",
	"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15",
	"pc", "sr", "gbr", "ssr", "spc", "sgr", "dbr", "vbr",
	"mach", "macl", "pr",
}

// Name returns the register's name, or "badreg" for out-of-range indices.
func (r Reg) Name() string {
	if r >= NumRegs {
		return "badreg"
	}
	return regNames[r]
}

// IsGPR reports whether the register is one of r0..r15.
func (r Reg) IsGPR() bool {
	return r < GPRCount
}

// IsBanked reports whether the register is one of the banked r0..r7.
func (r Reg) IsBanked() bool {
	return r < BankedCount
}

// Scaling is the operation width of an instruction or operand access.
type Scaling uint8

// Operation widths.
const (
	ScalingInvalid Scaling = iota // width not applicable (longword register ops)
	ScalingB                      // byte
	ScalingW                      // word (2 bytes)
	ScalingL                      // longword (4 bytes)
	ScalingQ                      // quadword (8 bytes)
)

var scalingSize = [5]uint{0, 1, 2, 4, 8}

// Size returns the access width in bytes.
func (s Scaling) Size() uint {
	if int(s) >= len(scalingSize) {
		return 0
	}
	return scalingSize[s]
}

// Bits returns the access width in bits.
func (s Scaling) Bits() uint {
	return 8 * s.Size()
}

// Mode tags the addressing mode of an operand.
type Mode uint8

// Addressing modes.
const (
	ModeInvalid            Mode = iota
	ModeRegDirect               // Rn
	ModeRegIndirect             // @Rn
	ModeRegIndirectI            // @Rn+ (post-increment)
	ModeRegIndirectD            // @-Rn (pre-decrement)
	ModeRegIndirectDisp         // @(disp, Rn)
	ModeRegIndirectIndexed      // @(R0, Rn)
	ModeGBRIndirectDisp         // @(disp, GBR)
	ModeGBRIndirectIndexed      // @(R0, GBR)
	ModePCRelativeDisp          // @(disp, PC)
	ModePCRelative8             // 8-bit signed displacement branch target
	ModePCRelative12            // 12-bit signed displacement branch target
	ModePCRelativeReg           // Rn-relative branch target
	ModeImmU                    // #imm, zero-extended
	ModeImmS                    // #imm, sign-extended
)

// Operand describes one instruction operand: an addressing-mode tag plus
// up to two integer fields.
type Operand struct {
	// Mode is the addressing-mode tag.
	Mode Mode

	// Reg is the register named by the mode, if any.
	Reg Reg

	// Imm holds the immediate or displacement field, if any.
	Imm int32
}

// Instruction is a decoded SH-4 instruction.
//
// An Instruction is built once per fetch by the external decoder, handed
// to the lifter exactly once, and owned by the caller throughout.
type Instruction struct {
	// Op is the mnemonic id. It indexes the lifter's dispatch table.
	Op Mnemonic

	// Operand holds up to two operand descriptors, source first.
	Operand [2]Operand

	// Scaling is the operation width.
	Scaling Scaling

	// Address is the address the instruction was fetched from.
	Address uint64

	// Opcode is the raw 16-bit instruction word.
	Opcode uint16
}
