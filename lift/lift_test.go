package lift_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/shlift/il"
	"github.com/sarchlab/shlift/insts"
	"github.com/sarchlab/shlift/lift"
)

func regOp(r insts.Reg) insts.Operand {
	return insts.Operand{Mode: insts.ModeRegDirect, Reg: r}
}

func immOp(v int32) insts.Operand {
	return insts.Operand{Mode: insts.ModeImmS, Imm: v}
}

func memOp(mode insts.Mode, r insts.Reg) insts.Operand {
	return insts.Operand{Mode: mode, Reg: r}
}

func dispOp(mode insts.Mode, r insts.Reg, disp int32) insts.Operand {
	return insts.Operand{Mode: mode, Reg: r, Imm: disp}
}

func newInst(m insts.Mnemonic, sc insts.Scaling, ops ...insts.Operand) *insts.Instruction {
	in := &insts.Instruction{Op: m, Scaling: sc}
	copy(in.Operand[:], ops)
	return in
}

// mustLift lifts at pc 0x1000 in privileged mode and fails the spec on
// any lifter error or inexpressible instruction.
func mustLift(in *insts.Instruction) il.Effect {
	ctx := &lift.State{MD: true}
	eff, err := lift.NewLifter().Lift(in, 0x1000, ctx)
	Expect(err).NotTo(HaveOccurred())
	Expect(eff).NotTo(BeNil())
	return eff
}

var _ = Describe("Lifter", func() {
	var m *machine

	BeforeEach(func() {
		m = newMachine()
	})

	Describe("dispatch", func() {
		It("should reject mnemonic ids outside the table", func() {
			in := newInst(insts.NumMnemonics, insts.ScalingInvalid)
			eff, err := lift.NewLifter().Lift(in, 0, &lift.State{})
			Expect(err).To(MatchError(lift.ErrMnemonicRange))
			Expect(eff).To(BeNil())
		})

		It("should reject a nil instruction", func() {
			_, err := lift.NewLifter().Lift(nil, 0, &lift.State{})
			Expect(err).To(HaveOccurred())
		})

		It("should refuse operands naming an out-of-range register", func() {
			in := newInst(insts.OpAdd, insts.ScalingInvalid,
				regOp(insts.NumRegs), regOp(insts.RegR1))
			eff, err := lift.NewLifter().Lift(in, 0, &lift.State{})
			Expect(err).NotTo(HaveOccurred())
			Expect(eff).To(BeNil())
		})

		It("should lift every implemented mnemonic of the table", func() {
			// Register-direct operands satisfy most generators;
			// branches and the MAC forms need their own shapes.
			for op := insts.OpMov; op < insts.OpUnimpl; op++ {
				sc := insts.ScalingInvalid
				ops := []insts.Operand{regOp(insts.RegR1), regOp(insts.RegR2)}
				switch op {
				case insts.OpSwap, insts.OpExts, insts.OpExtu, insts.OpTas:
					sc = insts.ScalingB
				case insts.OpMac:
					sc = insts.ScalingW
					ops = []insts.Operand{
						memOp(insts.ModeRegIndirectI, insts.RegR1),
						memOp(insts.ModeRegIndirectI, insts.RegR2),
					}
				case insts.OpBf, insts.OpBfs, insts.OpBt, insts.OpBts:
					ops = []insts.Operand{dispOp(insts.ModePCRelative8, 0, 2)}
				case insts.OpBra, insts.OpBsr:
					ops = []insts.Operand{dispOp(insts.ModePCRelative12, 0, 2)}
				case insts.OpBraf, insts.OpBsrf:
					ops = []insts.Operand{memOp(insts.ModePCRelativeReg, insts.RegR1)}
				case insts.OpJmp, insts.OpJsr:
					ops = []insts.Operand{memOp(insts.ModeRegIndirect, insts.RegR1)}
				}
				in := newInst(op, sc, ops...)
				ctx := &lift.State{MD: true}
				eff, err := lift.NewLifter().Lift(in, 0x1000, ctx)
				Expect(err).NotTo(HaveOccurred())
				Expect(eff).NotTo(BeNil(), "mnemonic %s", op)
			}
		})

		It("should lift unimplemented ids to an empty effect", func() {
			in := newInst(insts.OpUnimpl, insts.ScalingInvalid)
			eff := mustLift(in)
			Expect(eff).To(BeAssignableToTypeOf(&il.Nop{}))
		})

		It("should lift invalid to nothing", func() {
			in := newInst(insts.OpInvalid, insts.ScalingInvalid)
			eff, err := lift.NewLifter().Lift(in, 0, &lift.State{})
			Expect(err).NotTo(HaveOccurred())
			Expect(eff).To(BeNil())
		})
	})

	Describe("data movement", func() {
		It("should move register to register", func() {
			m.setReg("r1", 0xcafe)
			m.run(mustLift(newInst(insts.OpMov, insts.ScalingInvalid,
				regOp(insts.RegR1), regOp(insts.RegR2))))
			Expect(m.reg("r2")).To(Equal(uint64(0xcafe)))
		})

		It("should sign-extend immediates", func() {
			m.run(mustLift(newInst(insts.OpMov, insts.ScalingInvalid,
				immOp(-1), regOp(insts.RegR3))))
			Expect(m.reg("r3")).To(Equal(uint64(0xffffffff)))
		})

		It("should load a longword and post-increment", func() {
			m.setReg("r1", 0x100)
			m.write32(0x100, 0xdeadbeef)
			m.run(mustLift(newInst(insts.OpMov, insts.ScalingL,
				memOp(insts.ModeRegIndirectI, insts.RegR1), regOp(insts.RegR2))))
			Expect(m.reg("r2")).To(Equal(uint64(0xdeadbeef)))
			Expect(m.reg("r1")).To(Equal(uint64(0x104)))
		})

		It("should pre-decrement before a byte store", func() {
			m.setReg("r1", 0x5ab)
			m.setReg("r2", 0x200)
			m.run(mustLift(newInst(insts.OpMov, insts.ScalingB,
				regOp(insts.RegR1), memOp(insts.ModeRegIndirectD, insts.RegR2))))
			Expect(m.reg("r2")).To(Equal(uint64(0x1ff)))
			Expect(m.mem[0x1ff]).To(Equal(byte(0xab)))
		})

		It("should sign-extend a byte load into the register", func() {
			m.setReg("r1", 0x100)
			m.mem[0x100] = 0x80
			m.run(mustLift(newInst(insts.OpMov, insts.ScalingB,
				memOp(insts.ModeRegIndirect, insts.RegR1), regOp(insts.RegR2))))
			Expect(m.reg("r2")).To(Equal(uint64(0xffffff80)))
		})

		It("should scale register-relative displacements", func() {
			m.setReg("r1", 0x100)
			m.write32(0x108, 0x11223344)
			m.run(mustLift(newInst(insts.OpMov, insts.ScalingL,
				dispOp(insts.ModeRegIndirectDisp, insts.RegR1, 2), regOp(insts.RegR2))))
			Expect(m.reg("r2")).To(Equal(uint64(0x11223344)))
		})

		It("should mask PC for longword PC-relative loads", func() {
			// pc 0x1002: the effective base is (pc & ~3) + 4
			m.write32(0x1008, 0xfeedface)
			in := newInst(insts.OpMov, insts.ScalingL,
				dispOp(insts.ModePCRelativeDisp, 0, 1), regOp(insts.RegR2))
			ctx := &lift.State{MD: true}
			eff, err := lift.NewLifter().Lift(in, 0x1002, ctx)
			Expect(err).NotTo(HaveOccurred())
			m.run(eff)
			Expect(m.reg("r2")).To(Equal(uint64(0xfeedface)))
		})

		It("should copy T into a register with movt", func() {
			m.setFlag("sr_t", true)
			m.run(mustLift(newInst(insts.OpMovt, insts.ScalingInvalid,
				regOp(insts.RegR4))))
			Expect(m.reg("r4")).To(Equal(uint64(1)))
		})

		It("should swap the low bytes with swap.b", func() {
			m.setReg("r1", 0x12345678)
			m.run(mustLift(newInst(insts.OpSwap, insts.ScalingB,
				regOp(insts.RegR1), regOp(insts.RegR2))))
			Expect(m.reg("r2")).To(Equal(uint64(0x12347856)))
		})

		It("should swap the words with swap.w", func() {
			m.setReg("r1", 0x12345678)
			m.run(mustLift(newInst(insts.OpSwap, insts.ScalingW,
				regOp(insts.RegR1), regOp(insts.RegR2))))
			Expect(m.reg("r2")).To(Equal(uint64(0x56781234)))
		})

		It("should extract the middle longword with xtrct", func() {
			m.setReg("r1", 0xaabbccdd)
			m.setReg("r2", 0x11223344)
			m.run(mustLift(newInst(insts.OpXtrct, insts.ScalingInvalid,
				regOp(insts.RegR1), regOp(insts.RegR2))))
			Expect(m.reg("r2")).To(Equal(uint64(0xccdd1122)))
		})

		It("should sign-extend with exts.b", func() {
			m.setReg("r1", 0x80)
			m.run(mustLift(newInst(insts.OpExts, insts.ScalingB,
				regOp(insts.RegR1), regOp(insts.RegR2))))
			Expect(m.reg("r2")).To(Equal(uint64(0xffffff80)))

			m.setReg("r1", 0x7f)
			m.run(mustLift(newInst(insts.OpExts, insts.ScalingB,
				regOp(insts.RegR1), regOp(insts.RegR2))))
			Expect(m.reg("r2")).To(Equal(uint64(0x7f)))
		})

		It("should zero-extend with extu.w", func() {
			m.setReg("r1", 0x12345678)
			m.run(mustLift(newInst(insts.OpExtu, insts.ScalingW,
				regOp(insts.RegR1), regOp(insts.RegR2))))
			Expect(m.reg("r2")).To(Equal(uint64(0x5678)))
		})
	})

	Describe("arithmetic", func() {
		It("should add registers", func() {
			m.setReg("r1", 5)
			m.setReg("r2", 7)
			m.run(mustLift(newInst(insts.OpAdd, insts.ScalingInvalid,
				regOp(insts.RegR1), regOp(insts.RegR2))))
			Expect(m.reg("r2")).To(Equal(uint64(12)))
		})

		It("should add with carry and set T on carry out", func() {
			m.setReg("r1", 0xffffffff)
			m.setReg("r2", 1)
			m.setFlag("sr_t", true)
			m.run(mustLift(newInst(insts.OpAddc, insts.ScalingInvalid,
				regOp(insts.RegR1), regOp(insts.RegR2))))
			Expect(m.reg("r2")).To(Equal(uint64(1)))
			Expect(m.flag("sr_t")).To(BeTrue())
		})

		It("should flag signed overflow with addv", func() {
			m.setReg("r1", 0x7fffffff)
			m.setReg("r2", 1)
			m.run(mustLift(newInst(insts.OpAddv, insts.ScalingInvalid,
				regOp(insts.RegR1), regOp(insts.RegR2))))
			Expect(m.reg("r2")).To(Equal(uint64(0x80000000)))
			Expect(m.flag("sr_t")).To(BeTrue())
		})

		It("should subtract source from destination", func() {
			m.setReg("r1", 3)
			m.setReg("r2", 10)
			m.run(mustLift(newInst(insts.OpSub, insts.ScalingInvalid,
				regOp(insts.RegR1), regOp(insts.RegR2))))
			Expect(m.reg("r2")).To(Equal(uint64(7)))
		})

		It("should subtract with carry and set T on borrow", func() {
			m.setReg("r1", 5)
			m.setReg("r2", 3)
			m.run(mustLift(newInst(insts.OpSubc, insts.ScalingInvalid,
				regOp(insts.RegR1), regOp(insts.RegR2))))
			Expect(m.reg("r2")).To(Equal(uint64(0xfffffffe)))
			Expect(m.flag("sr_t")).To(BeTrue())
		})

		It("should negate", func() {
			m.setReg("r1", 5)
			m.run(mustLift(newInst(insts.OpNeg, insts.ScalingInvalid,
				regOp(insts.RegR1), regOp(insts.RegR2))))
			Expect(m.reg("r2")).To(Equal(uint64(0xfffffffb)))
		})

		It("should decrement and test with dt", func() {
			m.setReg("r1", 1)
			m.run(mustLift(newInst(insts.OpDt, insts.ScalingInvalid,
				regOp(insts.RegR1))))
			Expect(m.reg("r1")).To(Equal(uint64(0)))
			Expect(m.flag("sr_t")).To(BeTrue())

			m.setReg("r1", 5)
			m.run(mustLift(newInst(insts.OpDt, insts.ScalingInvalid,
				regOp(insts.RegR1))))
			Expect(m.reg("r1")).To(Equal(uint64(4)))
			Expect(m.flag("sr_t")).To(BeFalse())
		})
	})

	Describe("comparisons", func() {
		type cmpCase struct {
			op       insts.Mnemonic
			rm, rn   uint64
			expected bool
		}

		run := func(c cmpCase) {
			m.setReg("r1", c.rm)
			m.setReg("r2", c.rn)
			m.run(mustLift(newInst(c.op, insts.ScalingInvalid,
				regOp(insts.RegR1), regOp(insts.RegR2))))
			Expect(m.flag("sr_t")).To(Equal(c.expected))
		}

		It("should compare for equality", func() {
			run(cmpCase{insts.OpCmpEq, 5, 5, true})
			run(cmpCase{insts.OpCmpEq, 5, 6, false})
		})

		It("should compare unsigned", func() {
			run(cmpCase{insts.OpCmpHs, 1, 0xffffffff, true})
			run(cmpCase{insts.OpCmpHi, 0xffffffff, 1, false})
		})

		It("should compare signed", func() {
			// 0xffffffff is -1: less than 1 signed
			run(cmpCase{insts.OpCmpGe, 1, 0xffffffff, false})
			run(cmpCase{insts.OpCmpGt, 0xffffffff, 1, true})
		})

		It("should test the sign with cmp/pz and cmp/pl", func() {
			m.setReg("r1", 0)
			m.run(mustLift(newInst(insts.OpCmpPz, insts.ScalingInvalid,
				regOp(insts.RegR1))))
			Expect(m.flag("sr_t")).To(BeTrue())

			m.run(mustLift(newInst(insts.OpCmpPl, insts.ScalingInvalid,
				regOp(insts.RegR1))))
			Expect(m.flag("sr_t")).To(BeFalse())
		})

		It("should find an equal byte with cmp/str", func() {
			m.setReg("r1", 0x11223344)
			m.setReg("r2", 0x55663377)
			m.run(mustLift(newInst(insts.OpCmpStr, insts.ScalingInvalid,
				regOp(insts.RegR1), regOp(insts.RegR2))))
			Expect(m.flag("sr_t")).To(BeTrue())

			m.setReg("r2", 0x55667788)
			m.run(mustLift(newInst(insts.OpCmpStr, insts.ScalingInvalid,
				regOp(insts.RegR1), regOp(insts.RegR2))))
			Expect(m.flag("sr_t")).To(BeFalse())
		})
	})

	Describe("division steps", func() {
		It("should clear M, Q and T with div0u", func() {
			m.setFlag("sr_m", true)
			m.setFlag("sr_q", true)
			m.setFlag("sr_t", true)
			m.run(mustLift(newInst(insts.OpDiv0u, insts.ScalingInvalid)))
			Expect(m.flag("sr_m")).To(BeFalse())
			Expect(m.flag("sr_q")).To(BeFalse())
			Expect(m.flag("sr_t")).To(BeFalse())
		})

		It("should seed M, Q and T from the operand signs with div0s", func() {
			m.setReg("r1", 0x80000000)
			m.setReg("r2", 1)
			m.run(mustLift(newInst(insts.OpDiv0s, insts.ScalingInvalid,
				regOp(insts.RegR1), regOp(insts.RegR2))))
			Expect(m.flag("sr_m")).To(BeTrue())
			Expect(m.flag("sr_q")).To(BeFalse())
			Expect(m.flag("sr_t")).To(BeTrue())
		})

		It("should perform one non-restoring division step with div1", func() {
			// After div0u: dividend 0x80000000, divisor 3.
			m.setReg("r1", 3)
			m.setReg("r2", 0x80000000)
			m.run(mustLift(newInst(insts.OpDiv1, insts.ScalingInvalid,
				regOp(insts.RegR1), regOp(insts.RegR2))))
			Expect(m.reg("r2")).To(Equal(uint64(0xfffffffd)))
			Expect(m.flag("sr_q")).To(BeFalse())
			Expect(m.flag("sr_t")).To(BeTrue())
		})

		It("should divide 32 bits by 16 via repeated div1 steps", func() {
			// Unsigned 100 / 7: place the dividend in r2, the divisor
			// shifted to the upper half in r1, then run the canonical
			// div0u + 16x div1 sequence. The low half of r2 holds the
			// quotient bits.
			m.setReg("r1", 7<<16)
			m.setReg("r2", 100)
			m.run(mustLift(newInst(insts.OpDiv0u, insts.ScalingInvalid)))
			step := mustLift(newInst(insts.OpDiv1, insts.ScalingInvalid,
				regOp(insts.RegR1), regOp(insts.RegR2)))
			for i := 0; i < 16; i++ {
				m.run(step.DupEffect())
			}
			// rotcl shifts the last quotient bit in
			m.run(mustLift(newInst(insts.OpRotcl, insts.ScalingInvalid,
				regOp(insts.RegR2))))
			Expect(m.reg("r2") & 0xffff).To(Equal(uint64(100 / 7)))
		})
	})

	Describe("multiplication", func() {
		It("should multiply into macl", func() {
			m.setReg("r1", 6)
			m.setReg("r2", 7)
			m.run(mustLift(newInst(insts.OpMul, insts.ScalingL,
				regOp(insts.RegR1), regOp(insts.RegR2))))
			Expect(m.reg("macl")).To(Equal(uint64(42)))
		})

		It("should multiply signed words", func() {
			m.setReg("r1", 0xffff) // -1 as a word
			m.setReg("r2", 7)
			m.run(mustLift(newInst(insts.OpMuls, insts.ScalingW,
				regOp(insts.RegR1), regOp(insts.RegR2))))
			Expect(m.reg("macl")).To(Equal(uint64(0xfffffff9)))
		})

		It("should multiply unsigned words", func() {
			m.setReg("r1", 0xffff)
			m.setReg("r2", 2)
			m.run(mustLift(newInst(insts.OpMulu, insts.ScalingW,
				regOp(insts.RegR1), regOp(insts.RegR2))))
			Expect(m.reg("macl")).To(Equal(uint64(0x1fffe)))
		})

		It("should produce a 64-bit signed product with dmuls.l", func() {
			m.setReg("r1", 0xffffffff) // -1
			m.setReg("r2", 5)
			m.run(mustLift(newInst(insts.OpDmuls, insts.ScalingL,
				regOp(insts.RegR1), regOp(insts.RegR2))))
			Expect(m.reg("macl")).To(Equal(uint64(0xfffffffb)))
			Expect(m.reg("mach")).To(Equal(uint64(0xffffffff)))
		})

		It("should produce a 64-bit unsigned product with dmulu.l", func() {
			m.setReg("r1", 0x80000000)
			m.setReg("r2", 4)
			m.run(mustLift(newInst(insts.OpDmulu, insts.ScalingL,
				regOp(insts.RegR1), regOp(insts.RegR2))))
			Expect(m.reg("macl")).To(Equal(uint64(0)))
			Expect(m.reg("mach")).To(Equal(uint64(2)))
		})

		It("should multiply-accumulate longwords from memory", func() {
			m.setReg("r1", 0x100)
			m.setReg("r2", 0x200)
			m.write32(0x100, 2)
			m.write32(0x200, 3)
			m.setReg("macl", 10)
			m.run(mustLift(newInst(insts.OpMac, insts.ScalingL,
				memOp(insts.ModeRegIndirectI, insts.RegR1),
				memOp(insts.ModeRegIndirectI, insts.RegR2))))
			Expect(m.reg("macl")).To(Equal(uint64(16)))
			Expect(m.reg("mach")).To(Equal(uint64(0)))
			Expect(m.reg("r1")).To(Equal(uint64(0x104)))
			Expect(m.reg("r2")).To(Equal(uint64(0x204)))
		})
	})

	Describe("logic", func() {
		It("should and, or and xor registers", func() {
			m.setReg("r1", 0xff00ff00)
			m.setReg("r2", 0x0ff00ff0)

			m.run(mustLift(newInst(insts.OpAnd, insts.ScalingInvalid,
				regOp(insts.RegR1), regOp(insts.RegR2))))
			Expect(m.reg("r2")).To(Equal(uint64(0x0f000f00)))

			m.setReg("r2", 0x0ff00ff0)
			m.run(mustLift(newInst(insts.OpOr, insts.ScalingInvalid,
				regOp(insts.RegR1), regOp(insts.RegR2))))
			Expect(m.reg("r2")).To(Equal(uint64(0xfff0fff0)))

			m.setReg("r2", 0x0ff00ff0)
			m.run(mustLift(newInst(insts.OpXor, insts.ScalingInvalid,
				regOp(insts.RegR1), regOp(insts.RegR2))))
			Expect(m.reg("r2")).To(Equal(uint64(0xf0f0f0f0)))
		})

		It("should complement with not", func() {
			m.setReg("r1", 0x0000ffff)
			m.run(mustLift(newInst(insts.OpNot, insts.ScalingInvalid,
				regOp(insts.RegR1), regOp(insts.RegR2))))
			Expect(m.reg("r2")).To(Equal(uint64(0xffff0000)))
		})

		It("should set T when the masked value is zero with tst", func() {
			m.setReg("r1", 0x0f)
			m.setReg("r2", 0xf0)
			m.run(mustLift(newInst(insts.OpTst, insts.ScalingInvalid,
				regOp(insts.RegR1), regOp(insts.RegR2))))
			Expect(m.flag("sr_t")).To(BeTrue())
		})

		It("should test and set the byte with tas.b", func() {
			m.setReg("r1", 0x100)
			m.mem[0x100] = 0
			m.run(mustLift(newInst(insts.OpTas, insts.ScalingB,
				memOp(insts.ModeRegIndirect, insts.RegR1))))
			Expect(m.flag("sr_t")).To(BeTrue())
			Expect(m.mem[0x100]).To(Equal(byte(0x80)))
		})
	})

	Describe("shifts and rotates", func() {
		It("should shift left into T with shll", func() {
			m.setReg("r1", 0x80000001)
			m.run(mustLift(newInst(insts.OpShll, insts.ScalingInvalid,
				regOp(insts.RegR1))))
			Expect(m.reg("r1")).To(Equal(uint64(2)))
			Expect(m.flag("sr_t")).To(BeTrue())
		})

		It("should shift right arithmetically with shar", func() {
			m.setReg("r1", 0x80000001)
			m.run(mustLift(newInst(insts.OpShar, insts.ScalingInvalid,
				regOp(insts.RegR1))))
			Expect(m.reg("r1")).To(Equal(uint64(0xc0000000)))
			Expect(m.flag("sr_t")).To(BeTrue())
		})

		It("should shift by fixed amounts", func() {
			m.setReg("r1", 1)
			m.run(mustLift(newInst(insts.OpShll16, insts.ScalingInvalid,
				regOp(insts.RegR1))))
			Expect(m.reg("r1")).To(Equal(uint64(0x10000)))

			m.run(mustLift(newInst(insts.OpShlr8, insts.ScalingInvalid,
				regOp(insts.RegR1))))
			Expect(m.reg("r1")).To(Equal(uint64(0x100)))
		})

		It("should rotate left through the carry with rotcl", func() {
			m.setReg("r1", 0x40000000)
			m.setFlag("sr_t", true)
			m.run(mustLift(newInst(insts.OpRotcl, insts.ScalingInvalid,
				regOp(insts.RegR1))))
			Expect(m.reg("r1")).To(Equal(uint64(0x80000001)))
			Expect(m.flag("sr_t")).To(BeFalse())
		})

		It("should rotate the top bit around with rotl", func() {
			m.setReg("r1", 0x80000000)
			m.run(mustLift(newInst(insts.OpRotl, insts.ScalingInvalid,
				regOp(insts.RegR1))))
			Expect(m.reg("r1")).To(Equal(uint64(1)))
			Expect(m.flag("sr_t")).To(BeTrue())
		})

		It("should shift dynamically with shad", func() {
			m.setReg("r1", 4)
			m.setReg("r2", 1)
			m.run(mustLift(newInst(insts.OpShad, insts.ScalingInvalid,
				regOp(insts.RegR1), regOp(insts.RegR2))))
			Expect(m.reg("r2")).To(Equal(uint64(0x10)))

			m.setReg("r1", uint64(0xfffffffc)) // -4: arithmetic right by 4
			m.setReg("r2", 0x80000000)
			m.run(mustLift(newInst(insts.OpShad, insts.ScalingInvalid,
				regOp(insts.RegR1), regOp(insts.RegR2))))
			Expect(m.reg("r2")).To(Equal(uint64(0xf8000000)))
		})

		It("should shift dynamically without sign fill with shld", func() {
			m.setReg("r1", uint64(0xfffffffc))
			m.setReg("r2", 0x80000000)
			m.run(mustLift(newInst(insts.OpShld, insts.ScalingInvalid,
				regOp(insts.RegR1), regOp(insts.RegR2))))
			Expect(m.reg("r2")).To(Equal(uint64(0x08000000)))
		})
	})
})
