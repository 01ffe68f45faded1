package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-symop/internal/config"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"

	configPath string
	cfg        config.Config
)

var rootCmd = &cobra.Command{
	Use:   "symop",
	Short: "Scalar-operation algebra toolkit",
	Long: `symop exposes the built-in scalar-operation catalogue, the closed set
of arithmetic and elementary-function operations a symbolic dynamic-
optimization framework dispatches expression evaluation and first-order
differentiation through.

It can list the catalogue, evaluate a single operation (with partials)
for a chosen operand kind, benchmark dispatch throughput, and run an
interactive REPL.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config %s: %w", configPath, err)
		}
		cfg = loaded
		return applyDiagnosticConfig()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "symop.yaml", "path to config file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
}
