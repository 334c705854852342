package lift

import (
	"github.com/sarchlab/shlift/il"
	"github.com/sarchlab/shlift/insts"
)

// CLRMAC: 0 -> MACH, MACL
func liftClrmac(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return ok(il.Seq(
		il.SetGlobal("mach", il.UN(regBits, 0)),
		il.SetGlobal("macl", il.UN(regBits, 0))))
}

// CLRS: 0 -> S
func liftClrs(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return ok(il.SetGlobal(SRS, il.False()))
}

// CLRT: 0 -> T
func liftClrt(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return ok(il.SetGlobal(SRT, il.False()))
}

// SETS: 1 -> S
func liftSets(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return ok(il.SetGlobal(SRS, il.True()))
}

// SETT: 1 -> T
func liftSett(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return ok(il.SetGlobal(SRT, il.True()))
}

// LDC src, ctrl: load a control register. Privileged for every target
// except GBR. The @Rm+ form pops the value off memory.
func liftLdc(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	if op.Operand[1].Reg != insts.RegGBR && !ctx.Privileged() {
		ctx.AddEvent(EventReservedInstruction)
		return result{fault: true}
	}

	target := op.Operand[1].Reg
	switch op.Scaling {
	case insts.ScalingInvalid:
		if target.IsBanked() {
			return ok(il.SetGlobal(bankedName(target, 1), l.pure(op, 0, pc)))
		}
		ret := l.set(op, 1, l.pure(op, 0, pc), pc)
		if ret == nil {
			return result{}
		}
		return ok(ret)
	case insts.ScalingL:
		rm := l.operand(op.Operand[0], op.Scaling, pc)
		if rm.val == nil {
			return result{}
		}
		var ret il.Effect
		if target.IsBanked() {
			ret = il.SetGlobal(bankedName(target, 1), rm.val)
		} else {
			ret = l.set(op, 1, rm.val, pc)
			if ret == nil {
				return result{}
			}
		}
		return ok(il.Seq(ret, rm.post))
	default:
		return ok(il.Empty())
	}
}

// LDS src, sys: load a system register (MACH, MACL, PR)
func liftLds(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	switch op.Scaling {
	case insts.ScalingInvalid:
		ret := l.set(op, 1, l.pure(op, 0, pc), pc)
		if ret == nil {
			return result{}
		}
		return ok(ret)
	case insts.ScalingL:
		rm := l.operand(op.Operand[0], op.Scaling, pc)
		if rm.val == nil {
			return result{}
		}
		ret := l.set(op, 1, rm.val, pc)
		if ret == nil {
			return result{}
		}
		return ok(il.Seq(ret, rm.post))
	default:
		return ok(il.Empty())
	}
}

func liftNop(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return ok(il.Empty())
}

// RTE: return from exception. SSR -> SR, then jump to SPC. Privileged.
func liftRte(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	if !l.checkPrivilege(ctx) {
		return result{fault: true}
	}
	return ok(il.Seq(
		SetStatusReg(il.VarG("ssr")),
		il.Goto(il.VarG("spc"))))
}

// SLEEP: privileged; no architectural state changes to model
func liftSleep(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	if !l.checkPrivilege(ctx) {
		return result{fault: true}
	}
	return ok(il.Empty())
}

// STC ctrl, dst: store a control register. Privileged for every source
// except GBR. The @-Rn form pushes the value onto memory.
func liftStc(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	if op.Operand[0].Reg != insts.RegGBR && !ctx.Privileged() {
		ctx.AddEvent(EventReservedInstruction)
		return result{fault: true}
	}

	source := op.Operand[0].Reg
	var val il.Pure
	if op.Operand[0].Mode == insts.ModeRegDirect && source.IsBanked() {
		val = il.VarG(bankedName(source, 1))
	} else {
		val = l.pure(op, 0, pc)
	}
	if val == nil {
		return result{}
	}
	ret := l.set(op, 1, val, pc)
	if ret == nil {
		return result{}
	}
	return ok(ret)
}

// STS sys, dst: store a system register (MACH, MACL, PR)
func liftSts(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	ret := l.set(op, 1, l.pure(op, 0, pc), pc)
	if ret == nil {
		return result{}
	}
	return ok(ret)
}
