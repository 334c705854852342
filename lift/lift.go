// Package lift converts decoded SH-4 instructions into IR effect trees.
//
// The lifter is stateless: each Lift call is a pure function of the
// instruction, the program counter, and the processor context, so
// concurrent Lift calls need no coordination. Diagnostics go through an
// optional zap logger and never affect the produced IR.
package lift

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/sarchlab/shlift/il"
	"github.com/sarchlab/shlift/insts"
)

// EventReservedInstruction tags the fault event raised when a
// privileged transfer is attempted in user mode.
const EventReservedInstruction = "SuperH: RESINST"

// ErrMnemonicRange reports a mnemonic id outside the dispatch table.
var ErrMnemonicRange = errors.New("mnemonic id out of dispatch range")

// Context supplies the concrete processor state a generator may consult
// while building IR, and receives fault events.
//
// The privilege bit is inspected eagerly at lift time rather than
// symbolically: a privileged transfer in user mode raises a fault event
// immediately instead of emitting a conditional fault effect. A fully
// symbolic lifter would branch on the MD bit inside the IR; this one
// does not.
type Context interface {
	// Privileged reports the current concrete value of the MD bit.
	Privileged() bool

	// AddEvent appends a string-tagged exception event to the host's
	// event log.
	AddEvent(tag string)
}

// State is a minimal Context for hosts that track the privilege bit
// concretely.
type State struct {
	// MD is the processor mode bit; set while privileged.
	MD bool

	// Events collects fault events in the order they were raised.
	Events []string
}

// Privileged reports the MD bit.
func (s *State) Privileged() bool { return s.MD }

// AddEvent appends tag to the event log.
func (s *State) AddEvent(tag string) { s.Events = append(s.Events, tag) }

// result is the tagged outcome of one generator: an effect tree, or
// absence, or a fault. A nil eff with fault unset means the instruction
// cannot be expressed.
type result struct {
	eff   il.Effect
	fault bool
}

func ok(eff il.Effect) result { return result{eff: eff} }

type genFunc func(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result

// Lifter lifts SH-4 instructions to IR.
type Lifter struct {
	log *zap.Logger
}

// Option configures a Lifter.
type Option func(*Lifter)

// WithLogger routes diagnostics through the given logger.
func WithLogger(log *zap.Logger) Option {
	return func(l *Lifter) {
		l.log = log
	}
}

// NewLifter creates a Lifter. Without options, diagnostics are
// discarded.
func NewLifter(opts ...Option) *Lifter {
	l := &Lifter{log: zap.NewNop()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Lift converts one decoded instruction into an effect tree.
//
// A nil effect with a nil error means the instruction's effects cannot
// be expressed; the caller must treat it as an unknown-effect
// instruction and not attempt partial execution. A non-nil error is a
// caller error (mnemonic id outside the dispatch table) and is reported
// before any dispatch happens.
func (l *Lifter) Lift(op *insts.Instruction, pc uint64, ctx Context) (il.Effect, error) {
	if op == nil {
		return nil, errors.New("nil instruction")
	}
	if op.Op >= insts.NumMnemonics {
		l.log.Error("mnemonic id out of range", zap.Uint16("id", uint16(op.Op)))
		return nil, fmt.Errorf("%w: %d", ErrMnemonicRange, op.Op)
	}
	if !l.validOperands(op) {
		return nil, nil
	}

	r := generators[op.Op](l, op, pc, ctx)
	if r.fault {
		l.log.Warn("privileged instruction in user mode",
			zap.Stringer("mnemonic", op.Op),
			zap.Uint64("address", op.Address))
	}
	return r.eff, nil
}

// validOperands rejects instructions whose operands name a register
// outside the architectural set. The decoder never produces these; a
// hand-built instruction might.
func (l *Lifter) validOperands(op *insts.Instruction) bool {
	for i := range op.Operand {
		p := op.Operand[i]
		switch p.Mode {
		case insts.ModeRegDirect, insts.ModeRegIndirect, insts.ModeRegIndirectI,
			insts.ModeRegIndirectD, insts.ModeRegIndirectDisp,
			insts.ModeRegIndirectIndexed, insts.ModePCRelativeReg:
			if p.Reg >= insts.NumRegs {
				l.log.Error("invalid register id",
					zap.Uint16("reg", uint16(p.Reg)),
					zap.Stringer("mnemonic", op.Op))
				return false
			}
		}
	}
	return true
}

// checkPrivilege implements the eager mode check for privileged
// transfers: in user mode it raises a reserved-instruction fault event
// and reports failure.
func (l *Lifter) checkPrivilege(ctx Context) bool {
	if ctx.Privileged() {
		return true
	}
	ctx.AddEvent(EventReservedInstruction)
	return false
}

func liftInvalid(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	return result{}
}

func liftUnimpl(l *Lifter, op *insts.Instruction, pc uint64, ctx Context) result {
	l.log.Warn("unimplemented instruction",
		zap.Uint16("opcode", op.Opcode),
		zap.Uint64("address", op.Address))
	return ok(il.Empty())
}

// generators is the total dispatch table, indexed by mnemonic id.
var generators = [insts.NumMnemonics]genFunc{
	insts.OpInvalid: liftInvalid,
	insts.OpMov:     liftMov,
	insts.OpMovt:    liftMovt,
	insts.OpSwap:    liftSwap,
	insts.OpXtrct:   liftXtrct,
	insts.OpAdd:     liftAdd,
	insts.OpAddc:    liftAddc,
	insts.OpAddv:    liftAddv,
	insts.OpCmpEq:   liftCmpEq,
	insts.OpCmpHs:   liftCmpHs,
	insts.OpCmpGe:   liftCmpGe,
	insts.OpCmpHi:   liftCmpHi,
	insts.OpCmpGt:   liftCmpGt,
	insts.OpCmpPz:   liftCmpPz,
	insts.OpCmpPl:   liftCmpPl,
	insts.OpCmpStr:  liftCmpStr,
	insts.OpDiv1:    liftDiv1,
	insts.OpDiv0s:   liftDiv0s,
	insts.OpDiv0u:   liftDiv0u,
	insts.OpDmuls:   liftDmuls,
	insts.OpDmulu:   liftDmulu,
	insts.OpDt:      liftDt,
	insts.OpExts:    liftExts,
	insts.OpExtu:    liftExtu,
	insts.OpMac:     liftMac,
	insts.OpMul:     liftMul,
	insts.OpMuls:    liftMuls,
	insts.OpMulu:    liftMulu,
	insts.OpNeg:     liftNeg,
	insts.OpNegc:    liftNegc,
	insts.OpSub:     liftSub,
	insts.OpSubc:    liftSubc,
	insts.OpSubv:    liftSubv,
	insts.OpAnd:     liftAnd,
	insts.OpNot:     liftNot,
	insts.OpOr:      liftOr,
	insts.OpTas:     liftTas,
	insts.OpTst:     liftTst,
	insts.OpXor:     liftXor,
	insts.OpRotl:    liftRotl,
	insts.OpRotr:    liftRotr,
	insts.OpRotcl:   liftRotcl,
	insts.OpRotcr:   liftRotcr,
	insts.OpShad:    liftShad,
	insts.OpShal:    liftShal,
	insts.OpShar:    liftShar,
	insts.OpShld:    liftShld,
	insts.OpShll:    liftShll,
	insts.OpShlr:    liftShlr,
	insts.OpShll2:   liftShll2,
	insts.OpShlr2:   liftShlr2,
	insts.OpShll8:   liftShll8,
	insts.OpShlr8:   liftShlr8,
	insts.OpShll16:  liftShll16,
	insts.OpShlr16:  liftShlr16,
	insts.OpBf:      liftBf,
	insts.OpBfs:     liftBfs,
	insts.OpBt:      liftBt,
	insts.OpBts:     liftBts,
	insts.OpBra:     liftBra,
	insts.OpBraf:    liftBraf,
	insts.OpBsr:     liftBsr,
	insts.OpBsrf:    liftBsrf,
	insts.OpJmp:     liftJmp,
	insts.OpJsr:     liftJsr,
	insts.OpRts:     liftRts,
	insts.OpClrmac:  liftClrmac,
	insts.OpClrs:    liftClrs,
	insts.OpClrt:    liftClrt,
	insts.OpLdc:     liftLdc,
	insts.OpLds:     liftLds,
	insts.OpMovca:   liftMovca,
	insts.OpNop:     liftNop,
	insts.OpRte:     liftRte,
	insts.OpSets:    liftSets,
	insts.OpSett:    liftSett,
	insts.OpSleep:   liftSleep,
	insts.OpStc:     liftStc,
	insts.OpSts:     liftSts,
	insts.OpUnimpl:  liftUnimpl,
}
