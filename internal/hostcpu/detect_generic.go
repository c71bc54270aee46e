//go:build !amd64 && !arm64

package hostcpu

import "runtime"

func detect() Report {
	return Report{Architecture: runtime.GOARCH}
}
