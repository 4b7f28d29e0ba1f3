package application

import (
	"context"
	"sync"
)

// observers is an ordered list of callbacks. Callbacks run synchronously on
// the notifying goroutine and never under the owner's state lock.
type observers[T any] struct {
	mu     sync.Mutex
	nextID uint64
	items  []observer[T]
}

type observer[T any] struct {
	id uint64
	fn func(context.Context, T)
}

func (o *observers[T]) add(fn func(context.Context, T)) func() {
	if fn == nil {
		return func() {}
	}

	o.mu.Lock()
	o.nextID++
	id := o.nextID
	o.items = append(o.items, observer[T]{id: id, fn: fn})
	o.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { o.remove(id) })
	}
}

func (o *observers[T]) remove(id uint64) {
	o.mu.Lock()
	defer o.mu.Unlock()

	for i, item := range o.items {
		if item.id == id {
			o.items = append(o.items[:i:i], o.items[i+1:]...)
			return
		}
	}
}

func (o *observers[T]) notify(ctx context.Context, value T) {
	o.mu.Lock()
	items := append([]observer[T](nil), o.items...)
	o.mu.Unlock()

	for _, item := range items {
		item.fn(ctx, value)
	}
}

func (o *observers[T]) len() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return len(o.items)
}
