package doubly_linked_list

import (
	"context"
	"fmt"

	psync "github.com/dmgrit/doubly-linked-list/internal/synchronization"
)

// Locked serializes access to a list shared between goroutines.
type Locked[T any] struct {
	lock *psync.Lock
	list *DoublyLinkedList[T]
}

func NewLocked[T any](list *DoublyLinkedList[T]) *Locked[T] {
	return &Locked[T]{lock: psync.NewLock(), list: list}
}

// Do runs fn with exclusive access to the list. If ctx is done before access
// is granted, fn is not run and the error matches both ErrLockTimeout and ctx.Err().
// fn must not keep the list or any of its iterators after returning.
func (l *Locked[T]) Do(ctx context.Context, fn func(list *DoublyLinkedList[T])) error {
	if !psync.RunLocked(ctx, l.lock, func() { fn(l.list) }) {
		return fmt.Errorf("%w: %w", ErrLockTimeout, ctx.Err())
	}
	return nil
}
