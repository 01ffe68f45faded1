//go:build symop_printme

package cmd

import (
	"fmt"
	"os"

	"github.com/cwbudde/go-symop/internal/op"
)

// applyDiagnosticConfig redirects PRINTME's diagnostic stream to
// cfg.DiagnosticFile when set, leaving it on stderr otherwise. Only
// compiled into symop_printme builds, where PRINTME actually has a
// diagnostic stream to redirect.
func applyDiagnosticConfig() error {
	if cfg.DiagnosticFile == "" {
		return nil
	}
	f, err := os.OpenFile(cfg.DiagnosticFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open diagnostic file %s: %w", cfg.DiagnosticFile, err)
	}
	op.SetDiagnosticOutput(f)
	return nil
}
