package lift

import (
	"github.com/sarchlab/shlift/il"
	"github.com/sarchlab/shlift/insts"
)

// BF label: branch when T is clear
func liftBf(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return ok(il.BranchE(il.Zero(StatusBit(SRT)),
		il.Goto(l.addr(op, 0, pc)), il.Empty()))
}

// BF/S label: branch when T is clear
func liftBfs(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return liftBf(l, op, pc, ctx)
}

// BT label: branch when T is set
func liftBt(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return ok(il.BranchE(il.VarG(SRT),
		il.Goto(l.addr(op, 0, pc)), il.Empty()))
}

// BT/S label: branch when T is set
func liftBts(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return ok(il.BranchE(il.Zero(StatusBit(SRT)),
		il.Empty(), il.Goto(l.addr(op, 0, pc))))
}

// BRA label: unconditional branch
func liftBra(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return ok(il.Goto(l.addr(op, 0, pc)))
}

// BRAF Rm: unconditional branch, register relative
func liftBraf(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return ok(il.Goto(l.addr(op, 0, pc)))
}

// BSR label: branch to subroutine, saving the return address in PR
func liftBsr(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return ok(il.Seq(
		il.SetGlobal("pr", il.UN(regBits, pc)),
		il.Goto(l.addr(op, 0, pc))))
}

// BSRF Rm: branch to subroutine, register relative
func liftBsrf(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return ok(il.Seq(
		il.SetGlobal("pr", il.UN(regBits, pc)),
		il.Goto(l.addr(op, 0, pc))))
}

// JMP @Rm: unconditional register-indirect branch
func liftJmp(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return ok(il.Goto(l.addr(op, 0, pc)))
}

// JSR @Rm: jump to subroutine, saving the return address in PR
func liftJsr(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return ok(il.Seq(
		il.SetGlobal("pr", il.Add(il.UN(regBits, pc), il.UN(regBits, 4))),
		il.Goto(l.addr(op, 0, pc))))
}

// RTS: return from subroutine
func liftRts(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return ok(il.Goto(il.VarG("pr")))
}
