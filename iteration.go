package doubly_linked_list

import "iter"

// All returns an iterator over the values from head to tail.
// Every call walks the list again from the head.
func (l *DoublyLinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.chain.FirstNode(); node != nil; node = node.Next() {
			if !yield(node.Value()) {
				return
			}
		}
	}
}

// Enumerate is like All but also yields each position.
func (l *DoublyLinkedList[T]) Enumerate() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		i := 0
		for node := l.chain.FirstNode(); node != nil; node = node.Next() {
			if !yield(i, node.Value()) {
				return
			}
			i++
		}
	}
}

// Nodes returns an iterator over the nodes from head to tail.
func (l *DoublyLinkedList[T]) Nodes() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for node := l.chain.FirstNode(); node != nil; node = node.Next() {
			if !yield(node) {
				return
			}
		}
	}
}

// Backward returns an iterator over the values from tail to head.
func (l *DoublyLinkedList[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for node := l.chain.LastNode(); node != nil; node = node.Prev() {
			if !yield(node.Value()) {
				return
			}
		}
	}
}

// Items yields nodes if the list was created with ReturnNodes, values otherwise.
func (l *DoublyLinkedList[T]) Items() iter.Seq[any] {
	return func(yield func(any) bool) {
		for node := l.chain.FirstNode(); node != nil; node = node.Next() {
			var item any = node.Value()
			if l.returnNodes {
				item = node
			}
			if !yield(item) {
				return
			}
		}
	}
}

// Values returns the values as a new slice.
func (l *DoublyLinkedList[T]) Values() []T {
	values := make([]T, 0, l.chain.Len())
	for node := l.chain.FirstNode(); node != nil; node = node.Next() {
		values = append(values, node.Value())
	}
	return values
}

// Next steps the list's own cursor: it returns the value under the cursor and
// advances it, or reports false once the tail has been passed.
//
// There is one cursor per list, so nested loops over Next interfere with
// each other. Use All for independent traversals.
func (l *DoublyLinkedList[T]) Next() (T, bool) {
	cursor := l.position()
	if !cursor.HasNext() {
		return getZero[T](), false
	}
	return cursor.Next().Value(), true
}

// Rewind moves the cursor used by Next back to the head.
func (l *DoublyLinkedList[T]) Rewind() {
	l.position().Reset()
}
