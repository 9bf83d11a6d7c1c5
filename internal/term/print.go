package term

import (
	"strconv"
	"strings"
)

// String renders t as an SMT-LIB s-expression: literals as plain decimal,
// booleans as true/false, operators prefix with space-separated children,
// e.g. (and (> (+ 1 2) -3) false).
func (t *Term) String() string {
	var b strings.Builder
	write(&b, t)
	return b.String()
}

func write(b *strings.Builder, t *Term) {
	switch t.Kind {
	case KindIntLit:
		b.WriteString(strconv.FormatInt(t.Int, 10))
		return
	case KindBoolLit:
		b.WriteString(strconv.FormatBool(t.Bool))
		return
	case KindVar:
		b.WriteString(t.Name)
		return
	}
	b.WriteByte('(')
	b.WriteString(t.Kind.Symbol())
	for _, a := range t.Args {
		b.WriteByte(' ')
		write(b, a)
	}
	b.WriteByte(')')
}
