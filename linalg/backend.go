package linalg

import (
	"github.com/cwbudde/algo-linalg/internal/kernel"
	"go.uber.org/zap"
)

// Backend returns the name of the active kernel backend.
func Backend() string { return kernel.Backend() }

// Backends lists the registered kernel backends, highest priority first.
func Backends() []string { return kernel.Backends() }

// UseBackend pins the kernel backend by name.
func UseBackend(name string) error { return kernel.UseBackend(name) }

// ResetBackend drops any pinned backend and repeats CPU-based selection on
// next use.
func ResetBackend() { kernel.Reset() }

// SetLogger sets the logger used to report backend selection. A nil logger
// disables logging.
func SetLogger(l *zap.Logger) { kernel.SetLogger(l) }

// ErrUnknownBackend is returned by UseBackend for unregistered names.
var ErrUnknownBackend = kernel.ErrUnknownBackend
