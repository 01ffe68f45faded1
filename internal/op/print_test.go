package op

import "testing"

func TestRenderScenarios(t *testing.T) {
	// concrete rendering scenarios across the catalogue.
	cases := []struct {
		code Code
		x, y string
		want string
	}{
		{ADD, "a", "b", "(a+b)"},
		{SQRT, "a", "", "sqrt(a)"},
		{INV, "a", "", "(1/a)"},
		{SUB, "x", "y", "(x-y)"},
		{MUL, "x", "y", "(x*y)"},
		{DIV, "x", "y", "(x/y)"},
		{NEG, "x", "", "(-x)"},
		{POW, "x", "y", "pow(x,y)"},
		{STEP, "x", "", "(x>=0)"},
		{EQUALITY, "x", "y", "(x==y)"},
		{PRINTME, "x", "y", "printme(x,y)"},
	}
	for _, c := range cases {
		if got := Render(c.code, c.x, c.y); got != c.want {
			t.Errorf("Render(%s, %q, %q) = %q, want %q", c.code, c.x, c.y, got, c.want)
		}
	}
}

func TestPrintSeparatorNoOpForUnary(t *testing.T) {
	var buf []byte
	w := byteSliceWriter{&buf}
	n, err := PrintSeparator(&w, SQRT)
	if err != nil || n != 0 || len(buf) != 0 {
		t.Errorf("PrintSeparator on unary op wrote %q, want nothing", buf)
	}
}

type byteSliceWriter struct{ buf *[]byte }

func (w *byteSliceWriter) Write(p []byte) (int, error) {
	*w.buf = append(*w.buf, p...)
	return len(p), nil
}
