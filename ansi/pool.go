package ansi

import (
	"bytes"
	"sync"
)

// A Pool is a typed wrapper around a sync.Pool
type Pool[T any] struct {
	pool sync.Pool
}

// NewPool creates a pool which uses fn to create new instances of T
func NewPool[T any](fn func() T) *Pool[T] {
	return &Pool[T]{
		pool: sync.Pool{New: func() interface{} { return fn() }},
	}
}

func (p *Pool[T]) Get() T {
	return p.pool.Get().(T)
}

func (p *Pool[T]) Put(x T) {
	p.pool.Put(x)
}

// Buffers hands out scratch buffers for building sequences. Buffers are reset
// when they are returned
var Buffers = NewPool(func() *bytes.Buffer {
	return bytes.NewBuffer(make([]byte, 0, 1024))
})

// PutBuffer resets buf and returns it to Buffers
func PutBuffer(buf *bytes.Buffer) {
	buf.Reset()
	Buffers.Put(buf)
}
