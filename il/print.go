package il

import (
	"fmt"
	"io"
	"strings"
)

// PureString renders a pure expression as an s-expression.
func PureString(p Pure) string {
	var b strings.Builder
	writePure(&b, p)
	return b.String()
}

// EffectString renders an effect tree as an s-expression.
func EffectString(e Effect) string {
	var b strings.Builder
	writeEffect(&b, e)
	return b.String()
}

// Fprint writes the s-expression rendering of an effect tree to w.
func Fprint(w io.Writer, e Effect) error {
	_, err := io.WriteString(w, EffectString(e))
	return err
}

func writePure(b *strings.Builder, p Pure) {
	switch n := p.(type) {
	case *Const:
		fmt.Fprintf(b, "(bv %d 0x%x)", n.Bits, n.V)
	case *Bool:
		if n.V {
			b.WriteString("true")
		} else {
			b.WriteString("false")
		}
	case *Global:
		fmt.Fprintf(b, "(var %s)", n.Name)
	case *Local:
		fmt.Fprintf(b, "(local %s)", n.Name)
	case *Bin:
		writeList(b, n.Op.String(), n.X, n.Y)
	case *Not:
		writeList(b, "not", n.X)
	case *Cmp:
		writeList(b, n.Op.String(), n.X, n.Y)
	case *BoolBin:
		writeList(b, n.Op.String(), n.X, n.Y)
	case *BoolNot:
		writeList(b, "bnot", n.X)
	case *Msb:
		writeList(b, "msb", n.X)
	case *Lsb:
		writeList(b, "lsb", n.X)
	case *IsZero:
		writeList(b, "is-zero", n.X)
	case *Cast:
		kind := "unsigned"
		if n.Signed {
			kind = "signed"
		}
		fmt.Fprintf(b, "(%s %d ", kind, n.Bits)
		writePure(b, n.X)
		b.WriteByte(')')
	case *Ite:
		writeList(b, "ite", n.Cond, n.Then, n.Else)
	case *Load:
		fmt.Fprintf(b, "(load %d ", n.Bits)
		writePure(b, n.Addr)
		b.WriteByte(')')
	default:
		fmt.Fprintf(b, "(?pure %T)", p)
	}
}

func writeEffect(b *strings.Builder, e Effect) {
	switch n := e.(type) {
	case *SetG:
		fmt.Fprintf(b, "(set %s ", n.Name)
		writePure(b, n.Val)
		b.WriteByte(')')
	case *SetL:
		fmt.Fprintf(b, "(set-local %s ", n.Name)
		writePure(b, n.Val)
		b.WriteByte(')')
	case *Store:
		fmt.Fprintf(b, "(store %d ", n.Bits)
		writePure(b, n.Addr)
		b.WriteByte(' ')
		writePure(b, n.Val)
		b.WriteByte(')')
	case *Jmp:
		b.WriteString("(jmp ")
		writePure(b, n.Target)
		b.WriteByte(')')
	case *Branch:
		b.WriteString("(branch ")
		writePure(b, n.Cond)
		b.WriteByte(' ')
		writeEffect(b, n.Then)
		b.WriteByte(' ')
		writeEffect(b, n.Else)
		b.WriteByte(')')
	case *SeqN:
		b.WriteString("(seq")
		for _, sub := range n.Effects {
			b.WriteByte(' ')
			writeEffect(b, sub)
		}
		b.WriteByte(')')
	case *Nop:
		b.WriteString("(nop)")
	case *Raise:
		fmt.Fprintf(b, "(raise %q)", n.Tag)
	default:
		fmt.Fprintf(b, "(?effect %T)", e)
	}
}

func writeList(b *strings.Builder, head string, args ...Pure) {
	b.WriteByte('(')
	b.WriteString(head)
	for _, a := range args {
		b.WriteByte(' ')
		writePure(b, a)
	}
	b.WriteByte(')')
}
