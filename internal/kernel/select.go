package kernel

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/cwbudde/algo-vecmath/cpu"
	"go.uber.org/zap"

	"github.com/cwbudde/algo-linalg/internal/kernel/registry"
)

// ErrUnknownBackend is returned by UseBackend for unregistered names.
var ErrUnknownBackend = errors.New("kernel: unknown backend")

var (
	active     atomic.Pointer[registry.OpEntry]
	selectMu   sync.Mutex
	selectOnce sync.Once

	logger atomic.Pointer[zap.Logger]
)

func init() {
	logger.Store(zap.NewNop())
}

// SetLogger sets the logger used to report backend selection.
// A nil logger disables logging.
func SetLogger(l *zap.Logger) {
	if l == nil {
		l = zap.NewNop()
	}
	logger.Store(l)
}

func selectBackend() {
	features := cpu.DetectFeatures()
	entry := registry.Global.Lookup(features)
	if entry == nil {
		panic("kernel: no implementation registered")
	}
	mustComplete(entry)
	active.Store(entry)

	logger.Load().Debug("kernel backend selected",
		zap.String("backend", entry.Name),
		zap.Int("priority", entry.Priority),
		zap.Int("simd_level", int(entry.SIMDLevel)),
		zap.Bool("force_generic", features.ForceGeneric),
	)
}

func mustComplete(entry *registry.OpEntry) {
	if !entry.F32.Complete() || !entry.F64.Complete() {
		panic("kernel: selected implementation " + entry.Name + " is missing operations")
	}
}

func current() *registry.OpEntry {
	if e := active.Load(); e != nil {
		return e
	}
	selectMu.Lock()
	defer selectMu.Unlock()
	selectOnce.Do(selectBackend)
	return active.Load()
}

// Backend returns the name of the active implementation.
func Backend() string {
	return current().Name
}

// Backends returns the names of all registered implementations, highest
// priority first.
func Backends() []string {
	entries := registry.Global.ListEntries()
	names := make([]string, len(entries))
	for i := range entries {
		names[i] = entries[i].Name
	}
	return names
}

// UseBackend pins the implementation registered under name, bypassing CPU
// feature based selection until Reset is called.
func UseBackend(name string) error {
	entry := registry.Global.LookupName(name)
	if entry == nil {
		return fmt.Errorf("%w: %q", ErrUnknownBackend, name)
	}
	mustComplete(entry)

	selectMu.Lock()
	defer selectMu.Unlock()
	selectOnce.Do(func() {})
	active.Store(entry)

	logger.Load().Debug("kernel backend pinned", zap.String("backend", entry.Name))
	return nil
}

// Reset drops the active implementation so the next call selects again from
// the detected CPU features.
func Reset() {
	selectMu.Lock()
	defer selectMu.Unlock()
	selectOnce = sync.Once{}
	active.Store(nil)
}

// ops returns the active kernel table for T.
func ops[T Float]() *registry.Ops[T] {
	e := current()
	var zero T
	if _, ok := any(zero).(float32); ok {
		return any(&e.F32).(*registry.Ops[T])
	}
	return any(&e.F64).(*registry.Ops[T])
}
