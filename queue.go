package avada

import (
	"sync"
	"sync/atomic"
)

// queue provides an infinitely buffered channel. Items are delivered in the
// order they were pushed
type queue[T any] struct {
	ch    chan T
	items []T
	mu    sync.Mutex
	busy  atomic.Bool
}

func newQueue[T any]() *queue[T] {
	q := &queue[T]{
		ch: make(chan T),
	}
	return q
}

func (q *queue[T]) Chan() <-chan T {
	return q.ch
}

func (q *queue[T]) push(item T) {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.items = append(q.items, item)
	// Only one sender at a time, or items could be reordered
	if q.busy.CompareAndSwap(false, true) {
		go q.process()
	}
}

func (q *queue[T]) pop() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()

	var item T
	switch len(q.items) {
	case 0:
		// Cleared under the lock so a concurrent push starts a new
		// sender
		q.busy.Store(false)
		return item, false
	case 1:
		item = q.items[0]
		q.items = make([]T, 0)
	default:
		item = q.items[0]
		q.items = q.items[1:]
	}
	return item, true
}

func (q *queue[T]) len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.items)
}

func (q *queue[T]) process() {
	for {
		item, ok := q.pop()
		if !ok {
			return
		}
		q.ch <- item
	}
}
