package lift

import (
	"github.com/sarchlab/shlift/il"
	"github.com/sarchlab/shlift/insts"
)

// ADD Rm, Rn / ADD #imm, Rn: Rn + src -> Rn
func liftAdd(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	ret := l.set(op, 1, il.Add(l.pure(op, 0, pc), l.pure(op, 1, pc)), pc)
	if ret == nil {
		return result{}
	}
	return ok(ret)
}

// ADDC Rm, Rn: Rn + Rm + T -> Rn; carry -> T
func liftAddc(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	sum := il.Add(l.pure(op, 0, pc), l.pure(op, 1, pc))
	sum = il.Add(sum, il.Unsigned(regBits, StatusBit(SRT)))

	ret := l.set(op, 1, sum, pc)
	if ret == nil {
		return result{}
	}
	tbit := il.SetGlobal(SRT, AddCarry(sum.Dup(), l.pure(op, 0, pc), l.pure(op, 1, pc)))
	return ok(il.Seq(ret, tbit))
}

// ADDV Rm, Rn: Rn + Rm -> Rn; overflow -> T
func liftAddv(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	sum := il.Add(l.pure(op, 0, pc), l.pure(op, 1, pc))

	ret := l.set(op, 1, sum, pc)
	if ret == nil {
		return result{}
	}
	tbit := il.SetGlobal(SRT, AddOverflow(sum.Dup(), l.pure(op, 0, pc), l.pure(op, 1, pc)))
	return ok(il.Seq(ret, tbit))
}

// CMP/EQ: T = (dst == src)
func liftCmpEq(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return ok(il.SetGlobal(SRT, il.Eq(l.pure(op, 0, pc), l.pure(op, 1, pc))))
}

// CMP/HS: T = (Rn >= Rm), unsigned
func liftCmpHs(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return ok(il.SetGlobal(SRT, il.Uge(l.pure(op, 1, pc), l.pure(op, 0, pc))))
}

// CMP/GE: T = (Rn >= Rm), signed
func liftCmpGe(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return ok(il.SetGlobal(SRT, il.Sge(l.pure(op, 1, pc), l.pure(op, 0, pc))))
}

// CMP/HI: T = (Rn > Rm), unsigned
func liftCmpHi(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return ok(il.SetGlobal(SRT, il.Ugt(l.pure(op, 1, pc), l.pure(op, 0, pc))))
}

// CMP/GT: T = (Rn > Rm), signed
func liftCmpGt(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return ok(il.SetGlobal(SRT, il.Sgt(l.pure(op, 1, pc), l.pure(op, 0, pc))))
}

// CMP/PZ: T = (Rn >= 0)
func liftCmpPz(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return ok(il.SetGlobal(SRT, il.Sge(l.pure(op, 0, pc), il.SN(regBits, 0))))
}

// CMP/PL: T = (Rn > 0)
func liftCmpPl(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return ok(il.SetGlobal(SRT, il.Sgt(l.pure(op, 0, pc), il.SN(regBits, 0))))
}

// CMP/STR Rm, Rn: T = 1 when any byte of Rm equals the corresponding
// byte of Rn.
func liftCmpStr(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	x := il.Xor(l.pure(op, 0, pc), l.pure(op, 1, pc))

	eq := il.Eq(il.And(x, il.UN(regBits, 0xff)), il.UN(regBits, 0))
	x = il.Shr(x.Dup(), il.UN(regBits, 8))
	eq = il.BOr(eq, il.Eq(il.And(x, il.UN(regBits, 0xff)), il.UN(regBits, 0)))
	x = il.Shr(x.Dup(), il.UN(regBits, 8))
	eq = il.BOr(eq, il.Eq(il.And(x, il.UN(regBits, 0xff)), il.UN(regBits, 0)))
	x = il.Shr(x.Dup(), il.UN(regBits, 8))
	eq = il.BOr(eq, il.Eq(il.And(x, il.UN(regBits, 0xff)), il.UN(regBits, 0)))

	return ok(il.SetGlobal(SRT, eq))
}

// DIV1 Rm, Rn: one non-restoring division step of Rn / Rm.
//
// The step rotates the next dividend bit in through T, then either
// subtracts or adds the divisor depending on the previous quotient bit
// and the M mode bit, toggling Q on the compare outcome. The final
// condition bit is (Q == M).
func liftDiv1(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	oldQ := il.SetLocal("old_q", StatusBit(SRQ))
	q := il.SetGlobal(SRQ, il.MSB(l.pure(op, 1, pc)))
	shl := l.set(op, 1, il.Shl(l.pure(op, 1, pc), il.UN(regBits, 1)), pc)
	ort := l.set(op, 1, il.Or(l.pure(op, 1, pc), il.Unsigned(regBits, StatusBit(SRT))), pc)
	if shl == nil || ort == nil {
		return result{}
	}
	init := il.Seq(oldQ, q, shl, ort)

	tmp0 := il.SetLocal("tmp0", l.pure(op, 1, pc))
	sub := l.set(op, 1, il.Sub(l.pure(op, 1, pc), l.pure(op, 0, pc)), pc)
	tmp1 := il.SetLocal("tmp1", il.Ugt(l.pure(op, 1, pc), il.VarL("tmp0")))
	qBit := il.BranchE(StatusBit(SRQ),
		il.SetGlobal(SRQ, il.Zero(il.VarL("tmp1"))),
		il.SetGlobal(SRQ, il.VarL("tmp1")))
	q0m0 := il.Seq(tmp0, sub, tmp1, qBit)

	tmp0 = il.SetLocal("tmp0", l.pure(op, 1, pc))
	add := l.set(op, 1, il.Add(l.pure(op, 1, pc), l.pure(op, 0, pc)), pc)
	tmp1 = il.SetLocal("tmp1", il.Ult(l.pure(op, 1, pc), il.VarL("tmp0")))
	qBit = il.BranchE(StatusBit(SRQ),
		il.SetGlobal(SRQ, il.VarL("tmp1")),
		il.SetGlobal(SRQ, il.Zero(il.VarL("tmp1"))))
	q0m1 := il.Seq(tmp0, add, tmp1, qBit)

	tmp0 = il.SetLocal("tmp0", l.pure(op, 1, pc))
	add = l.set(op, 1, il.Add(l.pure(op, 1, pc), l.pure(op, 0, pc)), pc)
	tmp1 = il.SetLocal("tmp1", il.Ult(l.pure(op, 1, pc), il.VarL("tmp0")))
	qBit = il.BranchE(StatusBit(SRQ),
		il.SetGlobal(SRQ, il.Zero(il.VarL("tmp1"))),
		il.SetGlobal(SRQ, il.VarL("tmp1")))
	q1m0 := il.Seq(tmp0, add, tmp1, qBit)

	tmp0 = il.SetLocal("tmp0", l.pure(op, 1, pc))
	sub = l.set(op, 1, il.Sub(l.pure(op, 1, pc), l.pure(op, 0, pc)), pc)
	tmp1 = il.SetLocal("tmp1", il.Ugt(l.pure(op, 1, pc), il.VarL("tmp0")))
	qBit = il.BranchE(StatusBit(SRQ),
		il.SetGlobal(SRQ, il.VarL("tmp1")),
		il.SetGlobal(SRQ, il.Zero(il.VarL("tmp1"))))
	q1m1 := il.Seq(tmp0, sub, tmp1, qBit)

	q0 := il.BranchE(StatusBit(SRM), q0m1, q0m0)
	q1 := il.BranchE(StatusBit(SRM), q1m1, q1m0)
	qSwitch := il.BranchE(il.VarL("old_q"), q1, q0)

	return ok(il.Seq(init, qSwitch,
		il.SetGlobal(SRT, il.Eq(StatusBit(SRQ), StatusBit(SRM)))))
}

// DIV0S Rm, Rn: MSB of Rn -> Q; MSB of Rm -> M; M ^ Q -> T
func liftDiv0s(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	setm := il.SetGlobal(SRM, il.MSB(l.pure(op, 0, pc)))
	setq := il.SetGlobal(SRQ, il.MSB(l.pure(op, 1, pc)))
	sett := il.SetGlobal(SRT, il.BXor(il.MSB(l.pure(op, 0, pc)), il.MSB(l.pure(op, 1, pc))))

	return ok(il.Seq(setm, setq, sett))
}

// DIV0U: 0 -> M/Q/T
func liftDiv0u(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return ok(il.Seq(
		il.SetGlobal(SRM, il.False()),
		il.SetGlobal(SRQ, il.False()),
		il.SetGlobal(SRT, il.False())))
}

// DT Rn: Rn - 1 -> Rn; T = 1 when Rn reaches 0
func liftDt(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	dec := l.set(op, 0, il.Sub(l.pure(op, 0, pc), il.UN(regBits, 1)), pc)
	if dec == nil {
		return result{}
	}
	return ok(il.Seq(dec, il.SetGlobal(SRT, il.Zero(l.pure(op, 0, pc)))))
}

// NEG Rm, Rn: 0 - Rm -> Rn
func liftNeg(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	ret := l.set(op, 1, il.Sub(il.UN(regBits, 0), l.pure(op, 0, pc)), pc)
	if ret == nil {
		return result{}
	}
	return ok(ret)
}

// NEGC Rm, Rn: 0 - Rm - T -> Rn; borrow -> T
func liftNegc(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	sub := il.Sub(il.UN(regBits, 0), l.pure(op, 0, pc))
	sub = il.Sub(sub, il.Unsigned(regBits, StatusBit(SRT)))

	ret := l.set(op, 1, sub, pc)
	if ret == nil {
		return result{}
	}
	tbit := il.SetGlobal(SRT, SubBorrow(sub.Dup(), il.UN(regBits, 0), l.pure(op, 0, pc)))
	return ok(il.Seq(ret, tbit))
}

// SUB Rm, Rn: Rn - Rm -> Rn
func liftSub(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	ret := l.set(op, 1, il.Sub(l.pure(op, 1, pc), l.pure(op, 0, pc)), pc)
	if ret == nil {
		return result{}
	}
	return ok(ret)
}

// SUBC Rm, Rn: Rn - Rm - T -> Rn; borrow -> T
func liftSubc(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	dif := il.Sub(l.pure(op, 1, pc), l.pure(op, 0, pc))
	dif = il.Sub(dif, il.Unsigned(regBits, StatusBit(SRT)))

	ret := l.set(op, 1, dif, pc)
	if ret == nil {
		return result{}
	}
	tbit := il.SetGlobal(SRT, SubBorrow(dif.Dup(), l.pure(op, 1, pc), l.pure(op, 0, pc)))
	return ok(il.Seq(ret, tbit))
}

// SUBV Rm, Rn: Rn - Rm -> Rn; underflow -> T
func liftSubv(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	dif := il.Sub(l.pure(op, 1, pc), l.pure(op, 0, pc))

	ret := l.set(op, 1, dif, pc)
	if ret == nil {
		return result{}
	}
	tbit := il.SetGlobal(SRT, SubUnderflow(dif.Dup(), l.pure(op, 1, pc), l.pure(op, 0, pc)))
	return ok(il.Seq(ret, tbit))
}
