// Package hostcpu reports the raw processor capabilities of the host.
//
// Kernel selection itself goes through algo-vecmath/cpu; this package only
// describes the machine for diagnostics such as cmd/lainfo. Detection runs
// once and is cached.
package hostcpu

import (
	"strings"
	"sync"
)

// Flag is a named processor capability.
type Flag struct {
	Name    string
	Present bool
}

// Report describes the host processor.
type Report struct {
	Architecture string
	Flags        []Flag
}

var (
	detected   Report
	detectOnce sync.Once
)

// Detect returns the cached host report.
func Detect() Report {
	detectOnce.Do(func() {
		detected = detect()
	})
	return detected
}

// Has reports whether the named flag is present.
func (r Report) Has(name string) bool {
	for _, f := range r.Flags {
		if f.Name == name {
			return f.Present
		}
	}
	return false
}

// Present returns the names of the flags the host supports.
func (r Report) Present() []string {
	var out []string
	for _, f := range r.Flags {
		if f.Present {
			out = append(out, f.Name)
		}
	}
	return out
}

func (r Report) String() string {
	present := r.Present()
	if len(present) == 0 {
		return r.Architecture + " (no SIMD extensions)"
	}
	return r.Architecture + " [" + strings.Join(present, " ") + "]"
}
