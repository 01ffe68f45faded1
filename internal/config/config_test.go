package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefault(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(missing) = %+v, want Default() = %+v", cfg, Default())
	}
}

func TestLoadParsesYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "symop.yaml")
	contents := "default_operand: dual\nprecision: 3\ndiagnostic_file: /tmp/symop.log\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DefaultOperand != KindDual {
		t.Errorf("DefaultOperand = %v, want dual", cfg.DefaultOperand)
	}
	if cfg.Precision != 3 {
		t.Errorf("Precision = %d, want 3", cfg.Precision)
	}
	if cfg.DiagnosticFile != "/tmp/symop.log" {
		t.Errorf("DiagnosticFile = %q", cfg.DiagnosticFile)
	}
}
