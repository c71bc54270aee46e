package scratch

import (
	"reflect"
	"sync"
)

// Pool provides sync.Pool-based Buffer reuse to reduce GC pressure when
// expressions are evaluated repeatedly.
type Pool[T any] struct {
	pool sync.Pool
}

// NewPool returns a Pool ready for use.
func NewPool[T any]() *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{
			New: func() any {
				return &Buffer[T]{}
			},
		},
	}
}

// Get returns a Buffer with the requested length. The buffer is zeroed.
// Callers must return it via Put when done.
func (p *Pool[T]) Get(length int) *Buffer[T] {
	b := p.pool.Get().(*Buffer[T])
	b.Resize(length)
	b.Zero()
	return b
}

// Put returns a Buffer to the pool for reuse.
// The caller must not use the buffer after calling Put.
func (p *Pool[T]) Put(b *Buffer[T]) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}

var pools sync.Map // reflect.Type -> *Pool[T]

// For returns the process-wide pool for element type T.
func For[T any]() *Pool[T] {
	key := reflect.TypeFor[T]()
	if p, ok := pools.Load(key); ok {
		return p.(*Pool[T])
	}
	p, _ := pools.LoadOrStore(key, NewPool[T]())
	return p.(*Pool[T])
}
