//go:build !symop_printme

package cmd

// applyDiagnosticConfig is a no-op outside symop_printme builds: there is
// no diagnostic stream to redirect.
func applyDiagnosticConfig() error { return nil }
