//go:build symop_printme

package op

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/google/uuid"
)

// printmeOut is the diagnostic stream PRINTME writes to when the
// symop_printme build tag is set. It defaults to os.Stderr and may be
// redirected (e.g. by the symop CLI, to the config's diagnostic_file) via
// SetDiagnosticOutput before any evaluation runs.
var (
	printmeMu  sync.Mutex
	printmeOut io.Writer = os.Stderr
	printmeID            = uuid.NewString()
)

// SetDiagnosticOutput redirects PRINTME's diagnostic stream. It is a
// package-level, process-wide switch, guarded by printmeMu since the
// stream is the only shared mutable resource the algebra touches.
func SetDiagnosticOutput(w io.Writer) {
	printmeMu.Lock()
	defer printmeMu.Unlock()
	printmeOut = w
}

// OnPrintme implements printmeNotifier[FloatT]. FloatT is the one operand
// type that overrides PRINTME's diagnostic hook; every other Scalar
// implementation in this package is silent.
func (f FloatT) OnPrintme(y FloatT) {
	printmeMu.Lock()
	defer printmeMu.Unlock()
	fmt.Fprintf(printmeOut, "[printme %s] x=%v y=%v\n", printmeID, float64(f), float64(y))
}
