package ast

import (
	"fmt"

	"fortio.org/safecast"
)

// Arena is an append-only store of T, addressed by 1-based index so the
// zero value of an index type naturally means "absent".
type Arena[T any] struct {
	data []T
}

// NewArena creates an Arena with capHint pre-allocated slots.
func NewArena[T any](capHint uint) *Arena[T] {
	return &Arena[T]{data: make([]T, 0, capHint)}
}

// Allocate appends value and returns its 1-based index.
func (a *Arena[T]) Allocate(value T) uint32 {
	a.data = append(a.data, value)
	n, err := safecast.Conv[uint32](len(a.data))
	if err != nil {
		panic(fmt.Errorf("arena index overflow: %w", err))
	}
	return n
}

// Get returns a pointer to the element at index, or nil if index is 0
// (the "absent" sentinel) or out of range.
func (a *Arena[T]) Get(index uint32) *T {
	if index == 0 || index > uint32(len(a.data)) {
		return nil
	}
	return &a.data[index-1]
}

func (a *Arena[T]) Len() uint32 {
	return uint32(len(a.data))
}
