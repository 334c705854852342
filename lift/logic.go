package lift

import (
	"github.com/sarchlab/shlift/il"
	"github.com/sarchlab/shlift/insts"
)

// AND: dst & src -> dst
func liftAnd(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	ret := l.set(op, 1, il.And(l.pure(op, 0, pc), l.pure(op, 1, pc)), pc)
	if ret == nil {
		return result{}
	}
	return ok(ret)
}

// OR: dst | src -> dst
func liftOr(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	ret := l.set(op, 1, il.Or(l.pure(op, 0, pc), l.pure(op, 1, pc)), pc)
	if ret == nil {
		return result{}
	}
	return ok(ret)
}

// XOR: dst ^ src -> dst
func liftXor(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	ret := l.set(op, 1, il.Xor(l.pure(op, 0, pc), l.pure(op, 1, pc)), pc)
	if ret == nil {
		return result{}
	}
	return ok(ret)
}

// NOT Rm, Rn: ~Rm -> Rn
func liftNot(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	ret := l.set(op, 1, il.BitNot(l.pure(op, 0, pc)), pc)
	if ret == nil {
		return result{}
	}
	return ok(ret)
}

// TAS.B @Rn: T = (mem == 0), then set bit 7 of the byte
func liftTas(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	mem := l.pure(op, 0, pc)
	if mem == nil {
		return result{}
	}
	tbit := il.SetGlobal(SRT, il.Zero(mem))
	set := l.set(op, 0, il.Or(mem.Dup(), il.UN(8, 0x80)), pc)
	if set == nil {
		return result{}
	}
	return ok(il.Seq(tbit, set))
}

// TST: T = ((dst & src) == 0)
func liftTst(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return ok(il.SetGlobal(SRT,
		il.Zero(il.And(l.pure(op, 0, pc), l.pure(op, 1, pc)))))
}
