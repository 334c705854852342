package lift

import (
	"github.com/sarchlab/shlift/il"
	"github.com/sarchlab/shlift/insts"
)

// MOV family: the operand resolver does all the work; the generator
// just wires the source value into the destination and keeps the
// addressing side effects in order.
func liftMov(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	src := l.operand(op.Operand[0], op.Scaling, pc)
	dst := l.set(op, 1, src.val, pc)
	if dst == nil {
		return result{}
	}
	return ok(applyEffects(dst, src.pre, src.post))
}

// MOVT Rn: T -> Rn
func liftMovt(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return ok(l.set(op, 0, il.Unsigned(regBits, StatusBit(SRT)), pc))
}

// SWAP.B Rm, Rn: swap the lower two bytes of Rm.
// SWAP.W Rm, Rn: swap the upper and lower words of Rm.
func liftSwap(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	switch op.Scaling {
	case insts.ScalingB:
		lowerByte := il.And(l.pure(op, 0, pc), il.UN(regBits, 0xff))
		newLowerByte := il.And(il.Shr(l.pure(op, 0, pc), il.UN(regBits, 8)), il.UN(regBits, 0xff))
		newUpperByte := il.Shl(lowerByte, il.UN(regBits, 8))
		upperWord := il.And(l.pure(op, 0, pc), il.UN(regBits, 0xffff0000))
		return ok(l.set(op, 1, il.Or(upperWord, il.Or(newUpperByte, newLowerByte)), pc))
	case insts.ScalingW:
		high := il.Shl(l.pure(op, 0, pc), il.UN(regBits, 16))
		low := il.Shr(l.pure(op, 0, pc), il.UN(regBits, 16))
		return ok(l.set(op, 1, il.Or(high, low), pc))
	}

	return result{}
}

// XTRCT Rm, Rn: middle 32 bits of Rm:Rn -> Rn
func liftXtrct(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	high := il.Shl(l.pure(op, 0, pc), il.UN(regBits, 16))
	low := il.Shr(l.pure(op, 1, pc), il.UN(regBits, 16))
	return ok(l.set(op, 1, il.Or(high, low), pc))
}

// EXTS.B/EXTS.W Rm, Rn: sign-extend from byte or word.
func liftExts(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	switch op.Scaling {
	case insts.ScalingB:
		b := il.And(l.pure(op, 0, pc), il.UN(regBits, 0xff))
		sign := il.MSB(il.Unsigned(8, l.pure(op, 0, pc)))
		return ok(il.BranchE(sign,
			l.set(op, 1, il.Or(b, il.UN(regBits, 0xffffff00)), pc),
			l.set(op, 1, b.Dup(), pc)))
	case insts.ScalingW:
		w := il.And(l.pure(op, 0, pc), il.UN(regBits, 0xffff))
		sign := il.MSB(il.Unsigned(16, l.pure(op, 0, pc)))
		return ok(il.BranchE(sign,
			l.set(op, 1, il.Or(w, il.UN(regBits, 0xffff0000)), pc),
			l.set(op, 1, w.Dup(), pc)))
	}

	return result{}
}

// EXTU.B/EXTU.W Rm, Rn: zero-extend from byte or word.
func liftExtu(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	switch op.Scaling {
	case insts.ScalingB:
		return ok(l.set(op, 1, il.And(l.pure(op, 0, pc), il.UN(regBits, 0xff)), pc))
	case insts.ScalingW:
		return ok(l.set(op, 1, il.And(l.pure(op, 0, pc), il.UN(regBits, 0xffff)), pc))
	}

	return result{}
}

// MOVCA.L R0, @Rn: plain store; the cache-allocation hint has no
// semantic content at this level.
func liftMovca(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return ok(l.set(op, 1, l.pure(op, 0, pc), pc))
}
