// Package main provides the shlift debugging tool: it derives register
// bindings from profile files and renders the IR of single
// instructions.
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sarchlab/shlift/il"
	"github.com/sarchlab/shlift/insts"
	"github.com/sarchlab/shlift/lift"
	"github.com/sarchlab/shlift/regbind"
)

func main() {
	root := &cobra.Command{
		Use:           "shlift",
		Short:         "SuperH instruction lifter inspection tool",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(bindingCmd(), globalsCmd(), liftCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func bindingCmd() *cobra.Command {
	var exact []string

	cmd := &cobra.Command{
		Use:   "binding <profile.yaml>",
		Short: "Derive a register binding from a profile and print it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := regbind.LoadProfile(args[0])
			if err != nil {
				return err
			}

			if len(exact) > 0 {
				b, err := regbind.Exact(p, exact)
				if err != nil {
					return err
				}
				printBinding(b)
				return nil
			}

			b, excluded := regbind.Derive(p)
			printBinding(b)
			if len(excluded) > 0 {
				fmt.Println("excluded:")
				for _, d := range excluded {
					fmt.Printf("  %-12s class=%s offset=%d size=%d\n",
						d.Name, d.Class, d.Offset, d.Size)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringSliceVar(&exact, "exact", nil,
		"bind exactly these registers instead of deriving")
	return cmd
}

func printBinding(b *regbind.Binding) {
	fmt.Printf("pc: %s\n", b.PCName())
	fmt.Println("bound:")
	for _, item := range b.Items {
		fmt.Printf("  %-12s size=%d\n", item.Name, item.Size)
	}
}

func globalsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "globals",
		Short: "List the global variables the lifter writes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range lift.GlobalRegisters {
				fmt.Println(name)
			}
			return nil
		},
	}
}

func liftCmd() *cobra.Command {
	var (
		pc      uint64
		size    string
		user    bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "lift <mnemonic> [operand...]",
		Short: "Lift one instruction and print its IR",
		Long: `Lift one instruction and print its IR.

Operands are registers (r0..r15, gbr, sr, pr, mach, macl, vbr, ssr,
spc, sgr, dbr) or immediates (#N). Only the register-direct and
immediate addressing forms can be assembled here.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := assemble(args[0], args[1:], size)
			if err != nil {
				return err
			}
			op.Address = pc

			log := zap.NewNop()
			if verbose {
				log, err = zap.NewDevelopment()
				if err != nil {
					return err
				}
			}

			ctx := &lift.State{MD: !user}
			eff, err := lift.NewLifter(lift.WithLogger(log)).Lift(op, pc, ctx)
			if err != nil {
				return err
			}
			if eff == nil {
				if len(ctx.Events) > 0 {
					fmt.Printf("fault: %s\n", strings.Join(ctx.Events, ", "))
					return nil
				}
				return fmt.Errorf("cannot lift %s", args[0])
			}
			fmt.Println(il.EffectString(eff))
			return nil
		},
	}
	cmd.Flags().Uint64Var(&pc, "pc", 0, "instruction address")
	cmd.Flags().StringVar(&size, "size", "", "operand size (b, w or l)")
	cmd.Flags().BoolVar(&user, "user", false, "lift in user mode instead of privileged")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "enable lifter diagnostics")
	return cmd
}

func assemble(name string, operands []string, size string) (*insts.Instruction, error) {
	op := &insts.Instruction{Op: lookupMnemonic(name)}
	if op.Op == insts.OpInvalid && !strings.EqualFold(name, "invalid") {
		return nil, fmt.Errorf("unknown mnemonic %q", name)
	}

	switch strings.ToLower(size) {
	case "":
		op.Scaling = insts.ScalingInvalid
	case "b":
		op.Scaling = insts.ScalingB
	case "w":
		op.Scaling = insts.ScalingW
	case "l":
		op.Scaling = insts.ScalingL
	default:
		return nil, fmt.Errorf("unknown size %q", size)
	}

	if len(operands) > len(op.Operand) {
		return nil, fmt.Errorf("too many operands (max %d)", len(op.Operand))
	}
	for i, text := range operands {
		parsed, err := parseOperand(text)
		if err != nil {
			return nil, err
		}
		op.Operand[i] = parsed
	}
	return op, nil
}

func lookupMnemonic(name string) insts.Mnemonic {
	for m := insts.Mnemonic(0); m < insts.NumMnemonics; m++ {
		if strings.EqualFold(m.String(), name) {
			return m
		}
	}
	return insts.OpInvalid
}

func parseOperand(text string) (insts.Operand, error) {
	if imm, found := strings.CutPrefix(text, "#"); found {
		v, err := strconv.ParseInt(imm, 0, 32)
		if err != nil {
			return insts.Operand{}, fmt.Errorf("bad immediate %q: %w", text, err)
		}
		return insts.Operand{Mode: insts.ModeImmS, Imm: int32(v)}, nil
	}

	for r := insts.Reg(0); r < insts.NumRegs; r++ {
		if strings.EqualFold(r.Name(), text) {
			return insts.Operand{Mode: insts.ModeRegDirect, Reg: r}, nil
		}
	}
	return insts.Operand{}, fmt.Errorf("unknown register %q", text)
}
