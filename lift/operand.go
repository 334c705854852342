package lift

import (
	"go.uber.org/zap"

	"github.com/sarchlab/shlift/il"
	"github.com/sarchlab/shlift/insts"
)

// operandParts is the result of resolving one operand: a pure value
// plus the side effects of the addressing mode. pre executes before the
// value is read (pre-decrement), post after (post-increment). Either
// may be nil.
type operandParts struct {
	pre  il.Effect
	val  il.Pure
	post il.Effect
}

// effectiveAddr computes the effective address of a memory operand.
// Returns nil for modes that have no address (register-direct,
// immediates).
func (l *Lifter) effectiveAddr(p insts.Operand, sc insts.Scaling, pc uint64) il.Pure {
	switch p.Mode {
	case insts.ModeRegIndirect, insts.ModeRegIndirectI, insts.ModeRegIndirectD:
		return l.getReg(p.Reg)
	case insts.ModeRegIndirectDisp:
		disp := il.Mul(il.UN(addrBits, uint64(uint32(p.Imm))), il.UN(addrBits, uint64(sc.Size())))
		return il.Add(l.getReg(p.Reg), disp)
	case insts.ModeRegIndirectIndexed:
		return il.Add(l.getReg(insts.RegR0), l.getReg(p.Reg))
	case insts.ModeGBRIndirectDisp:
		disp := il.Mul(il.UN(addrBits, uint64(uint32(p.Imm))), il.UN(addrBits, uint64(sc.Size())))
		return il.Add(il.VarG("gbr"), disp)
	case insts.ModeGBRIndirectIndexed:
		return il.Add(il.VarG("gbr"), l.getReg(insts.RegR0))
	case insts.ModePCRelativeDisp:
		pcbv := il.UN(addrBits, pc)
		if sc == insts.ScalingL {
			// longword accesses mask the low 2 bits of PC
			pcbv = il.And(pcbv, il.UN(addrBits, 0xfffffffc))
		}
		pcbv = il.Add(pcbv, il.UN(addrBits, 4))
		disp := il.Mul(il.UN(addrBits, uint64(uint32(p.Imm))), il.UN(addrBits, uint64(sc.Size())))
		return il.Add(pcbv, disp)
	case insts.ModePCRelative8:
		// sign-extended 8-bit displacement, in units of 2 bytes
		rel := il.Signed(addrBits, il.Shl(il.SN(8, int64(p.Imm)), il.UN(8, 1)))
		return il.Add(il.Add(il.UN(addrBits, pc), il.UN(addrBits, 4)), rel)
	case insts.ModePCRelative12:
		rel := il.Signed(addrBits, il.Shl(il.SN(12, int64(p.Imm)), il.UN(8, 1)))
		return il.Add(il.Add(il.UN(addrBits, pc), il.UN(addrBits, 4)), rel)
	case insts.ModePCRelativeReg:
		return il.Add(il.Add(il.UN(addrBits, pc), il.UN(addrBits, 4)), l.getReg(p.Reg))
	}

	l.log.Warn("no effective address for addressing mode",
		zap.Uint8("mode", uint8(p.Mode)))
	return nil
}

// operand resolves an operand into its {pre, value, post} triple.
func (l *Lifter) operand(p insts.Operand, sc insts.Scaling, pc uint64) operandParts {
	var ret operandParts
	switch p.Mode {
	case insts.ModeRegDirect:
		if sc == insts.ScalingInvalid || sc == insts.ScalingL {
			ret.val = l.getReg(p.Reg)
		} else {
			ret.val = il.Unsigned(sc.Bits(), l.getReg(p.Reg))
		}
	case insts.ModeRegIndirectI:
		step := il.UN(addrBits, uint64(sc.Size()))
		ret.post = l.setReg(p.Reg, il.Add(l.getReg(p.Reg), step))
		ret.val = il.LoadW(sc.Bits(), l.effectiveAddr(p, sc, pc))
	case insts.ModeRegIndirectD:
		step := il.UN(addrBits, uint64(sc.Size()))
		ret.pre = l.setReg(p.Reg, il.Sub(l.getReg(p.Reg), step))
		ret.val = il.LoadW(sc.Bits(), l.effectiveAddr(p, sc, pc))
	case insts.ModeRegIndirect, insts.ModeRegIndirectDisp, insts.ModeRegIndirectIndexed,
		insts.ModeGBRIndirectDisp, insts.ModeGBRIndirectIndexed,
		insts.ModePCRelativeDisp, insts.ModePCRelative8, insts.ModePCRelative12,
		insts.ModePCRelativeReg:
		ret.val = il.LoadW(sc.Bits(), l.effectiveAddr(p, sc, pc))
	case insts.ModeImmU:
		ret.val = il.UN(regBits, uint64(uint32(p.Imm)))
	case insts.ModeImmS:
		ret.val = il.SN(regBits, int64(p.Imm))
	default:
		l.log.Error("invalid addressing mode",
			zap.Uint8("mode", uint8(p.Mode)))
	}

	return ret
}

// setOperand mirrors the addressing computation of operand for stores.
// Register-direct writes below longword width sign-extend to the full
// register; immediate modes are invalid write targets and produce nil.
func (l *Lifter) setOperand(p insts.Operand, val il.Pure, sc insts.Scaling, pc uint64) il.Effect {
	switch p.Mode {
	case insts.ModeRegDirect:
		if sc == insts.ScalingInvalid || sc == insts.ScalingL {
			return l.setReg(p.Reg, val)
		}
		return l.setReg(p.Reg, il.Signed(regBits, val))
	case insts.ModeRegIndirect, insts.ModeRegIndirectI, insts.ModeRegIndirectD,
		insts.ModeRegIndirectDisp, insts.ModeRegIndirectIndexed,
		insts.ModeGBRIndirectDisp, insts.ModeGBRIndirectIndexed,
		insts.ModePCRelativeDisp, insts.ModePCRelative8, insts.ModePCRelative12,
		insts.ModePCRelativeReg:
		parts := l.operand(p, sc, pc)
		bits := sc.Bits()
		if bits == 0 {
			bits = regBits
		}
		store := il.StoreW(bits, l.effectiveAddr(p, sc, pc), val)
		return applyEffects(store, parts.pre, parts.post)
	}

	l.log.Error("cannot use addressing mode as write target",
		zap.Uint8("mode", uint8(p.Mode)))
	return nil
}

// applyEffects wraps a target effect with an addressing mode's pre and
// post effects. Any of the three may be nil.
func applyEffects(target, pre, post il.Effect) il.Effect {
	if target == nil && pre == nil && post == nil {
		return nil
	}
	return il.Seq(pre, target, post)
}

// pure resolves operand i to its value only, discarding addressing side
// effects. Generators that need the pre/post effects call operand
// directly.
func (l *Lifter) pure(op *insts.Instruction, i int, pc uint64) il.Pure {
	return l.operand(op.Operand[i], op.Scaling, pc).val
}

// set writes val to operand i.
func (l *Lifter) set(op *insts.Instruction, i int, val il.Pure, pc uint64) il.Effect {
	return l.setOperand(op.Operand[i], val, op.Scaling, pc)
}

// addr computes the effective address of operand i.
func (l *Lifter) addr(op *insts.Instruction, i int, pc uint64) il.Pure {
	return l.effectiveAddr(op.Operand[i], op.Scaling, pc)
}
