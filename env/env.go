// Package env applies process-wide environment workarounds. It is blank
// imported across the module so the settings land before any dependency
// initialises.
package env

import (
	"os"
)

func init() {
	// The gorgonia compute kernel links against CUDA-era code that predates
	// Go's moving collector checks. Required whenever the module is built
	// with the gorgonia tag.
	os.Setenv("ASSUME_NO_MOVING_GC_UNSAFE_RISK_IT_WITH", "go1.24")
}
