package insts_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/shlift/insts"
)

var _ = Describe("Mnemonic", func() {
	It("should name every id", func() {
		for m := insts.Mnemonic(0); m < insts.NumMnemonics; m++ {
			Expect(m.String()).NotTo(BeEmpty())
			Expect(m.String()).NotTo(Equal("unknown"))
		}
	})

	It("should spell mnemonics in assembler form", func() {
		Expect(insts.OpMov.String()).To(Equal("mov"))
		Expect(insts.OpCmpEq.String()).To(Equal("cmp/eq"))
		Expect(insts.OpDmuls.String()).To(Equal("dmuls.l"))
		Expect(insts.OpBfs.String()).To(Equal("bf/s"))
	})

	It("should report out-of-range ids as unknown", func() {
		Expect(insts.NumMnemonics.String()).To(Equal("unknown"))
		Expect(insts.Mnemonic(1000).String()).To(Equal("unknown"))
	})
})

var _ = Describe("Reg", func() {
	It("should name the general-purpose registers by index", func() {
		Expect(insts.RegR0.Name()).To(Equal("r0"))
		Expect(insts.RegR15.Name()).To(Equal("r15"))
	})

	It("should name the control and system registers", func() {
		Expect(insts.RegPC.Name()).To(Equal("pc"))
		Expect(insts.RegSR.Name()).To(Equal("sr"))
		Expect(insts.RegGBR.Name()).To(Equal("gbr"))
		Expect(insts.RegMACL.Name()).To(Equal("macl"))
		Expect(insts.RegPR.Name()).To(Equal("pr"))
	})

	It("should classify r0..r15 as GPRs", func() {
		for r := insts.RegR0; r <= insts.RegR15; r++ {
			Expect(r.IsGPR()).To(BeTrue())
		}
		Expect(insts.RegPC.IsGPR()).To(BeFalse())
		Expect(insts.RegSR.IsGPR()).To(BeFalse())
	})

	It("should classify only r0..r7 as banked", func() {
		for r := insts.RegR0; r <= insts.RegR7; r++ {
			Expect(r.IsBanked()).To(BeTrue())
		}
		Expect(insts.RegR8.IsBanked()).To(BeFalse())
		Expect(insts.RegR15.IsBanked()).To(BeFalse())
	})

	It("should report out-of-range indices as badreg", func() {
		Expect(insts.NumRegs.Name()).To(Equal("badreg"))
	})
})

var _ = Describe("Scaling", func() {
	It("should report access widths in bytes", func() {
		Expect(insts.ScalingInvalid.Size()).To(Equal(uint(0)))
		Expect(insts.ScalingB.Size()).To(Equal(uint(1)))
		Expect(insts.ScalingW.Size()).To(Equal(uint(2)))
		Expect(insts.ScalingL.Size()).To(Equal(uint(4)))
		Expect(insts.ScalingQ.Size()).To(Equal(uint(8)))
	})

	It("should report access widths in bits", func() {
		Expect(insts.ScalingB.Bits()).To(Equal(uint(8)))
		Expect(insts.ScalingL.Bits()).To(Equal(uint(32)))
	})
})
