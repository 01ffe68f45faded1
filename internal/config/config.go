// Package config loads go-symop's optional symop.yaml file: CLI/REPL
// defaults that the cobra flags in cmd/symop fall back to when not set
// explicitly on the command line.
package config

import (
	"os"

	"github.com/goccy/go-yaml"
)

// OperandKind names one of the concrete operand types internal/op ships.
type OperandKind string

const (
	KindFloat    OperandKind = "float"
	KindInterval OperandKind = "interval"
	KindDual     OperandKind = "dual"
	KindSymbol   OperandKind = "symbol"
)

// Config is the shape of symop.yaml.
type Config struct {
	// DefaultOperand selects the operand kind the CLI uses when --operand
	// is not given.
	DefaultOperand OperandKind `yaml:"default_operand"`
	// Precision controls decimal digits when formatting float results.
	Precision int `yaml:"precision"`
	// DiagnosticFile, if set, is where the PRINTME diagnostic recorder
	// writes (symop_printme builds only); empty means stderr.
	DiagnosticFile string `yaml:"diagnostic_file"`
}

// Default returns the configuration used when no symop.yaml is present.
func Default() Config {
	return Config{
		DefaultOperand: KindFloat,
		Precision:      6,
	}
}

// Load reads and parses the YAML config at path. A missing file is not an
// error: Default() is returned unchanged. Callers apply this after their
// own flags so that flags take precedence over file values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}
