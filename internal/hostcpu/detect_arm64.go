//go:build arm64

package hostcpu

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// Advanced SIMD is mandatory on ARMv8.
func detect() Report {
	return Report{
		Architecture: runtime.GOARCH,
		Flags: []Flag{
			{"fp", cpu.ARM64.HasFP},
			{"asimd", cpu.ARM64.HasASIMD},
			{"sve", cpu.ARM64.HasSVE},
		},
	}
}
