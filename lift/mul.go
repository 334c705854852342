package lift

import (
	"github.com/sarchlab/shlift/il"
	"github.com/sarchlab/shlift/insts"
)

// DMULS.L Rm, Rn: signed 32x32 -> 64; result split across MACH:MACL
func liftDmuls(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	wide := il.SetLocal("res_wide",
		il.Mul(il.Signed(64, l.pure(op, 0, pc)), il.Signed(64, l.pure(op, 1, pc))))
	lower := il.SetGlobal("macl",
		il.Unsigned(regBits, il.And(il.VarL("res_wide"), il.UN(64, 0xffffffff))))
	higher := il.SetGlobal("mach",
		il.Unsigned(regBits, il.Shr(il.VarL("res_wide"), il.UN(64, 32))))

	return ok(il.Seq(wide, lower, higher))
}

// DMULU.L Rm, Rn: unsigned 32x32 -> 64; result split across MACH:MACL
func liftDmulu(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	wide := il.SetLocal("res_wide",
		il.Mul(il.Unsigned(64, l.pure(op, 0, pc)), il.Unsigned(64, l.pure(op, 1, pc))))
	lower := il.SetGlobal("macl",
		il.Unsigned(regBits, il.And(il.VarL("res_wide"), il.UN(64, 0xffffffff))))
	higher := il.SetGlobal("mach",
		il.Unsigned(regBits, il.Shr(il.VarL("res_wide"), il.UN(64, 32))))

	return ok(il.Seq(wide, lower, higher))
}

// MAC.L / MAC.W @Rm+, @Rn+: multiply the two memory operands and
// accumulate into MACH:MACL. With the S bit set the accumulation
// saturates, to 48 bits for the longword form and to 32 bits for the
// word form.
func liftMac(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	rm := l.operand(op.Operand[0], op.Scaling, pc)
	rn := l.operand(op.Operand[1], op.Scaling, pc)
	if rm.val == nil || rn.val == nil {
		return result{}
	}

	if op.Scaling == insts.ScalingL {
		mac := il.SetLocal("mac",
			il.Or(il.Shl(il.Unsigned(64, il.VarG("mach")), il.UN(regBits, 32)),
				il.Unsigned(64, il.VarG("macl"))))
		mul := il.Mul(il.Signed(64, rm.val), il.Signed(64, rn.val))
		add := il.Add(mul, il.VarL("mac"))
		low := il.Unsigned(48, il.And(add, il.UN(64, 0xffffffffffff)))
		sat := il.Signed(64, low)
		eff := il.Seq(mac,
			il.BranchE(StatusBit(SRS),
				il.SetLocal("mac", sat),
				il.SetLocal("mac", add.Dup())))
		lower := il.SetGlobal("macl",
			il.Unsigned(regBits, il.And(il.VarL("mac"), il.UN(64, 0xffffffff))))
		higher := il.SetGlobal("mach",
			il.Unsigned(regBits, il.Shr(il.VarL("mac"), il.UN(64, 32))))
		return ok(il.Seq(eff, lower, higher, rn.post, rm.post))
	}

	mul := il.Unsigned(64,
		il.Mul(il.Signed(regBits, rm.val), il.Signed(regBits, rn.val)))
	mac := il.SetLocal("mac",
		il.Or(il.Shl(il.Unsigned(64, il.VarG("mach")), il.UN(regBits, 32)),
			il.Unsigned(64, il.VarG("macl"))))
	add := il.Add(mul, il.VarL("mac"))
	satAdd := il.Add(il.Unsigned(regBits, mul.Dup()), il.VarG("macl"))
	lower := il.SetGlobal("macl",
		il.Unsigned(regBits, il.And(add, il.UN(64, 0xffffffff))))
	higher := il.SetGlobal("mach",
		il.Unsigned(regBits, il.Shr(add.Dup(), il.UN(64, 32))))
	eff := il.Seq(mac,
		il.BranchE(StatusBit(SRS),
			il.SetGlobal("macl", satAdd),
			il.Seq(lower, higher)))
	return ok(il.Seq(eff, rn.post, rm.post))
}

// MUL.L Rm, Rn: Rn * Rm -> MACL
func liftMul(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return ok(il.SetGlobal("macl", il.Mul(l.pure(op, 0, pc), l.pure(op, 1, pc))))
}

// MULS.W Rm, Rn: signed 16x16 -> 32 in MACL
func liftMuls(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	m := il.Signed(regBits, il.Signed(16, l.pure(op, 0, pc)))
	n := il.Signed(regBits, il.Signed(16, l.pure(op, 1, pc)))
	return ok(il.SetGlobal("macl", il.Mul(m, n)))
}

// MULU.W Rm, Rn: unsigned 16x16 -> 32 in MACL
func liftMulu(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	m := il.Unsigned(regBits, il.Unsigned(16, l.pure(op, 0, pc)))
	n := il.Unsigned(regBits, il.Unsigned(16, l.pure(op, 1, pc)))
	return ok(il.SetGlobal("macl", il.Mul(m, n)))
}
