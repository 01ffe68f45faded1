//go:build symop_printme

package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cwbudde/go-symop/internal/op"
)

func TestApplyDiagnosticConfigRedirectsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "diag.log")
	defer op.SetDiagnosticOutput(os.Stderr)

	cfg.DiagnosticFile = path
	defer func() { cfg.DiagnosticFile = "" }()

	if err := applyDiagnosticConfig(); err != nil {
		t.Fatalf("applyDiagnosticConfig: %v", err)
	}

	op.Eval[op.FloatT](op.PRINTME, 4, 0)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected diagnostic output written to file, got none")
	}
}

func TestApplyDiagnosticConfigNoopWhenUnset(t *testing.T) {
	cfg.DiagnosticFile = ""
	if err := applyDiagnosticConfig(); err != nil {
		t.Fatalf("applyDiagnosticConfig: %v", err)
	}
}
