package lift

import (
	"github.com/sarchlab/shlift/il"
	"github.com/sarchlab/shlift/insts"
)

// ROTL Rn: rotate left by one; the bit rotated out goes to T
func liftRotl(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	msb := il.MSB(l.pure(op, 0, pc))
	shl := il.Shl(l.pure(op, 0, pc), il.UN(regBits, 1))
	lsb := il.ITE(msb.Dup(),
		il.Or(shl, il.UN(regBits, 1)),
		il.And(shl.Dup(), il.UN(regBits, 0xfffffffe)))

	ret := l.set(op, 0, lsb, pc)
	if ret == nil {
		return result{}
	}
	return ok(il.Seq(il.SetGlobal(SRT, msb), ret))
}

// ROTR Rn: rotate right by one; the bit rotated out goes to T
func liftRotr(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	lsb := il.LSB(l.pure(op, 0, pc))
	shr := il.Shr(l.pure(op, 0, pc), il.UN(regBits, 1))
	msb := il.ITE(lsb.Dup(),
		il.Or(shr, il.UN(regBits, 0x80000000)),
		il.And(shr.Dup(), il.UN(regBits, 0x7fffffff)))

	ret := l.set(op, 0, msb, pc)
	if ret == nil {
		return result{}
	}
	return ok(il.Seq(il.SetGlobal(SRT, lsb), ret))
}

// ROTCL Rn: rotate left through T
func liftRotcl(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	msb := il.SetLocal("msb", il.MSB(l.pure(op, 0, pc)))
	shl := il.Shl(l.pure(op, 0, pc), il.UN(regBits, 1))
	lsb := il.ITE(StatusBit(SRT),
		il.Or(shl, il.UN(regBits, 1)),
		il.And(shl.Dup(), il.UN(regBits, 0xfffffffe)))

	ret := l.set(op, 0, lsb, pc)
	if ret == nil {
		return result{}
	}
	return ok(il.Seq(msb, ret, il.SetGlobal(SRT, il.VarL("msb"))))
}

// ROTCR Rn: rotate right through T
func liftRotcr(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	lsb := il.SetLocal("lsb", il.LSB(l.pure(op, 0, pc)))
	shr := il.Shr(l.pure(op, 0, pc), il.UN(regBits, 1))
	msb := il.ITE(StatusBit(SRT),
		il.Or(shr, il.UN(regBits, 0x80000000)),
		il.And(shr.Dup(), il.UN(regBits, 0x7fffffff)))

	ret := l.set(op, 0, msb, pc)
	if ret == nil {
		return result{}
	}
	return ok(il.Seq(lsb, ret, il.SetGlobal(SRT, il.VarL("lsb"))))
}

// SHAD Rm, Rn: arithmetic shift of Rn by the signed amount in Rm. A
// non-negative amount shifts left by the low five bits; a negative
// amount shifts right by 32 minus that.
func liftShad(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	op1 := il.SetLocal("op1", il.Signed(regBits, l.pure(op, 0, pc)))
	op2 := il.SetLocal("op2", il.Signed(regBits, l.pure(op, 1, pc)))
	amt := il.Unsigned(5, il.VarL("op1"))
	shl := il.Shl(il.VarL("op2"), amt)
	shr := il.Sar(il.VarL("op2"), il.Sub(il.UN(5, 32), amt.Dup()))

	left := l.set(op, 1, shl, pc)
	right := l.set(op, 1, shr, pc)
	if left == nil || right == nil {
		return result{}
	}
	return ok(il.Seq(op1, op2,
		il.BranchE(il.Sge(il.VarL("op1"), il.SN(regBits, 0)), left, right)))
}

// SHLD Rm, Rn: logical shift of Rn by the signed amount in Rm
func liftShld(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	op1 := il.SetLocal("op1", il.Signed(regBits, l.pure(op, 0, pc)))
	op2 := il.SetLocal("op2", il.Unsigned(regBits, l.pure(op, 1, pc)))
	amt := il.Unsigned(5, il.VarL("op1"))
	shl := il.Shl(il.VarL("op2"), amt)
	shr := il.Shr(il.VarL("op2"), il.Sub(il.UN(5, 32), amt.Dup()))

	left := l.set(op, 1, shl, pc)
	right := l.set(op, 1, shr, pc)
	if left == nil || right == nil {
		return result{}
	}
	return ok(il.Seq(op1, op2,
		il.BranchE(il.Sge(il.VarL("op1"), il.SN(regBits, 0)), left, right)))
}

// SHAL Rn: shift left by one; the shifted-out bit goes to T
func liftShal(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return liftShiftLeftT(l, op, pc)
}

// SHLL Rn: shift left by one; the shifted-out bit goes to T
func liftShll(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return liftShiftLeftT(l, op, pc)
}

func liftShiftLeftT(l *Lifter, op *insts.Instruction, pc uint64) result {
	tbit := il.SetGlobal(SRT, il.MSB(l.pure(op, 0, pc)))
	ret := l.set(op, 0, il.Shl(l.pure(op, 0, pc), il.UN(regBits, 1)), pc)
	if ret == nil {
		return result{}
	}
	return ok(il.Seq(tbit, ret))
}

// SHAR Rn: arithmetic shift right by one; the shifted-out bit goes to T
func liftShar(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	tbit := il.SetGlobal(SRT, il.LSB(l.pure(op, 0, pc)))
	ret := l.set(op, 0, il.Sar(l.pure(op, 0, pc), il.UN(regBits, 1)), pc)
	if ret == nil {
		return result{}
	}
	return ok(il.Seq(tbit, ret))
}

// SHLR Rn: logical shift right by one; the shifted-out bit goes to T
func liftShlr(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	tbit := il.SetGlobal(SRT, il.LSB(l.pure(op, 0, pc)))
	ret := l.set(op, 0, il.Shr(l.pure(op, 0, pc), il.UN(regBits, 1)), pc)
	if ret == nil {
		return result{}
	}
	return ok(il.Seq(tbit, ret))
}

func (l *Lifter) shiftBy(op *insts.Instruction, pc uint64, left bool, n uint64) result {
	var val il.Pure
	if left {
		val = il.Shl(l.pure(op, 0, pc), il.UN(regBits, n))
	} else {
		val = il.Shr(l.pure(op, 0, pc), il.UN(regBits, n))
	}
	ret := l.set(op, 0, val, pc)
	if ret == nil {
		return result{}
	}
	return ok(ret)
}

func liftShll2(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return l.shiftBy(op, pc, true, 2)
}

func liftShll8(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return l.shiftBy(op, pc, true, 8)
}

func liftShll16(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return l.shiftBy(op, pc, true, 16)
}

func liftShlr2(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return l.shiftBy(op, pc, false, 2)
}

func liftShlr8(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return l.shiftBy(op, pc, false, 8)
}

func liftShlr16(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return l.shiftBy(op, pc, false, 16)
}
