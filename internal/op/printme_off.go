//go:build !symop_printme

package op

import "io"

// SetDiagnosticOutput is a no-op in builds without the symop_printme tag:
// PRINTME has no diagnostic side effect to redirect.
func SetDiagnosticOutput(w io.Writer) {}
