package lift

import (
	"github.com/sarchlab/shlift/il"
	"github.com/sarchlab/shlift/insts"
)

// Register and address width of the SH-4 core, in bits.
const (
	regBits  = 32
	addrBits = 32
)

// IL global variable names for the individual status-register bits.
const (
	SRT = "sr_t" // condition flag
	SRS = "sr_s" // saturation flag (MAC)
	SRI = "sr_i" // interrupt mask, 4 bits
	SRQ = "sr_q" // divide-step state
	SRM = "sr_m" // divide-step state
	SRF = "sr_f" // FPU disable
	SRB = "sr_b" // exception block
	SRR = "sr_r" // register bank select
	SRD = "sr_d" // processor mode, set while privileged
)

// GlobalRegisters lists every global variable the lifter reads or
// writes. Hosts use it to set up the IL variable store before
// evaluating lifted effects.
var GlobalRegisters = []string{
	"r0", "r1", "r2", "r3", "r4", "r5", "r6", "r7", // bank 0 (user mode)
	"r0b", "r1b", "r2b", "r3b", "r4b", "r5b", "r6b", "r7b", // bank 1 (privileged mode)
	"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15",
	SRT, SRS, SRI, SRQ, SRM, SRF, SRB, SRR, SRD,
	"gbr", "ssr", "spc", "sgr", "dbr", "vbr", "mach", "macl", "pr",
}

// bankedName returns the IL variable name of a banked general-purpose
// register in the given bank. Bank 1 names carry a "b" suffix.
func bankedName(r insts.Reg, bank int) string {
	if bank == 0 {
		return r.Name()
	}
	return r.Name() + "b"
}

// StatusBit reads a status-register bit as a register-width bitvector
// rather than a boolean: 1 when the bit is set, 0 otherwise.
func StatusBit(name string) il.Pure {
	return il.ITE(il.VarG(name), il.UN(regBits, 1), il.UN(regBits, 0))
}

// StatusReg packs the individual status-register bits into the
// composite SR word. Bits accumulate by shift-and-or in descending
// order of their final position: MD at 30, RB at 29, BL at 28, FD at
// 15, M at 9, Q at 8, IMASK at 4..7, S at 1, T at 0.
func StatusReg() il.Pure {
	val := il.UN(regBits, 0)
	val = il.Or(il.Unsigned(regBits, StatusBit(SRD)), val)
	val = il.Shl(val, il.UN(regBits, 1))
	val = il.Or(il.Unsigned(regBits, StatusBit(SRR)), val)
	val = il.Shl(val, il.UN(regBits, 1))
	val = il.Or(il.Unsigned(regBits, StatusBit(SRB)), val)
	val = il.Shl(val, il.UN(regBits, 13))
	val = il.Or(il.Unsigned(regBits, StatusBit(SRF)), val)
	val = il.Shl(val, il.UN(regBits, 6))
	val = il.Or(il.Unsigned(regBits, StatusBit(SRM)), val)
	val = il.Shl(val, il.UN(regBits, 1))
	val = il.Or(il.Unsigned(regBits, StatusBit(SRQ)), val)
	val = il.Shl(val, il.UN(regBits, 4))
	val = il.Or(il.Unsigned(regBits, StatusBit(SRI)), val)
	val = il.Shl(val, il.UN(regBits, 3))
	val = il.Or(il.Unsigned(regBits, StatusBit(SRS)), val)
	val = il.Shl(val, il.UN(regBits, 1))
	val = il.Or(il.Unsigned(regBits, StatusBit(SRT)), val)

	return val
}

// SetStatusReg unpacks a composite SR word into the individual bit
// variables with mask-and-shift, the reverse of StatusReg.
func SetStatusReg(val il.Pure) il.Effect {
	eff := il.SetGlobal(SRT, il.NonZero(il.And(il.UN(regBits, 0x1), val)))
	val = il.Shr(val.Dup(), il.UN(regBits, 1))
	eff = il.Seq(eff, il.SetGlobal(SRS, il.NonZero(il.And(il.UN(regBits, 0x1), val))))
	val = il.Shr(val.Dup(), il.UN(regBits, 3))
	eff = il.Seq(eff, il.SetGlobal(SRI, il.NonZero(il.And(il.UN(regBits, 0xf), val))))
	val = il.Shr(val.Dup(), il.UN(regBits, 4))
	eff = il.Seq(eff, il.SetGlobal(SRQ, il.NonZero(il.And(il.UN(regBits, 0x1), val))))
	val = il.Shr(val.Dup(), il.UN(regBits, 1))
	eff = il.Seq(eff, il.SetGlobal(SRM, il.NonZero(il.And(il.UN(regBits, 0x1), val))))
	val = il.Shr(val.Dup(), il.UN(regBits, 6))
	eff = il.Seq(eff, il.SetGlobal(SRF, il.NonZero(il.And(il.UN(regBits, 0x1), val))))
	val = il.Shr(val.Dup(), il.UN(regBits, 13))
	eff = il.Seq(eff, il.SetGlobal(SRB, il.NonZero(il.And(il.UN(regBits, 0x1), val))))
	val = il.Shr(val.Dup(), il.UN(regBits, 1))
	eff = il.Seq(eff, il.SetGlobal(SRR, il.NonZero(il.And(il.UN(regBits, 0x1), val))))
	val = il.Shr(val.Dup(), il.UN(regBits, 1))
	eff = il.Seq(eff, il.SetGlobal(SRD, il.NonZero(il.And(il.UN(regBits, 0x1), val))))

	return eff
}

// getReg reads an architectural register as a pure expression. Banked
// registers resolve symbolically on the MD and RB bits: bank 1 is
// selected while both are set. Reading SR synthesizes the packed word.
func (l *Lifter) getReg(r insts.Reg) il.Pure {
	if !r.IsBanked() {
		if r == insts.RegSR {
			return StatusReg()
		}
		return il.VarG(r.Name())
	}

	cond := il.BAnd(il.VarG(SRD), il.VarG(SRR))
	return il.ITE(cond, il.VarG(bankedName(r, 1)), il.VarG(bankedName(r, 0)))
}

// setReg writes an architectural register. Writing SR unpacks the word
// into the bit variables; banked registers branch on MD and RB.
func (l *Lifter) setReg(r insts.Reg, val il.Pure) il.Effect {
	if !r.IsBanked() {
		if r == insts.RegSR {
			return SetStatusReg(val)
		}
		return il.SetGlobal(r.Name(), val)
	}

	cond := il.BAnd(il.VarG(SRD), il.VarG(SRR))
	return il.BranchE(cond,
		il.SetGlobal(bankedName(r, 1), val),
		il.SetGlobal(bankedName(r, 0), val.Dup()))
}
