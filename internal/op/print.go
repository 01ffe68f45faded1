package op

import (
	"io"
	"strings"
)

// Print renders code applied to xRepr (and, for binary ops, yRepr) onto w
// using the operation's grammar: "prefix x separator y postfix" for binary
// ops, "prefix x postfix" for unary ops (yRepr is ignored for unary ops but
// need not be empty).
func Print(w io.Writer, code Code, xRepr, yRepr string) (int, error) {
	g := DescriptorOf(code).Grammar
	var buf []byte
	buf = append(buf, g.Prefix...)
	buf = append(buf, xRepr...)
	if Arity(code) == 2 {
		buf = append(buf, g.Separator...)
		buf = append(buf, yRepr...)
	}
	buf = append(buf, g.Postfix...)
	return w.Write(buf)
}

// PrintPrefix writes code's grammar prefix to w.
func PrintPrefix(w io.Writer, code Code) (int, error) {
	return io.WriteString(w, DescriptorOf(code).Grammar.Prefix)
}

// PrintSeparator writes code's grammar separator to w. It is a no-op (and
// writes nothing) for unary ops.
func PrintSeparator(w io.Writer, code Code) (int, error) {
	if Arity(code) == 1 {
		return 0, nil
	}
	return io.WriteString(w, DescriptorOf(code).Grammar.Separator)
}

// PrintPostfix writes code's grammar postfix to w.
func PrintPostfix(w io.Writer, code Code) (int, error) {
	return io.WriteString(w, DescriptorOf(code).Grammar.Postfix)
}

// Render is a convenience wrapper around Print that returns the rendered
// string directly instead of writing to a stream.
func Render(code Code, xRepr, yRepr string) string {
	var sb strings.Builder
	_, _ = Print(&sb, code, xRepr, yRepr)
	return sb.String()
}
