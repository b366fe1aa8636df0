package doubly_linked_list

import (
	"cmp"
	"iter"
	"slices"
)

// Sequence is an ordered, finite collection a list can be compared with or
// concatenated to. *DoublyLinkedList and Elements implement it.
type Sequence[T any] interface {
	Len() int
	All() iter.Seq[T]
}

// Elements adapts a slice to Sequence.
type Elements[T any] []T

func (e Elements[T]) Len() int {
	return len(e)
}

func (e Elements[T]) All() iter.Seq[T] {
	return slices.Values(e)
}

var (
	_ Sequence[int] = (*DoublyLinkedList[int])(nil)
	_ Sequence[int] = Elements[int](nil)
)

// Concat returns a new list holding l's values followed by other's.
// Neither operand is modified.
func (l *DoublyLinkedList[T]) Concat(other Sequence[T]) *DoublyLinkedList[T] {
	out := l.Copy()
	out.Extend(slices.Collect(other.All())...)
	return out
}

// ConcatTo returns a new list holding other's values followed by l's.
// Neither operand is modified.
func (l *DoublyLinkedList[T]) ConcatTo(other Sequence[T]) *DoublyLinkedList[T] {
	out := l.newEmpty(l.returnNodes)
	out.Extend(slices.Collect(other.All())...)
	out.Extend(l.Values()...)
	return out
}

// Repeat returns a new list holding |n| back to back copies of l's values,
// reversed as a whole when n is negative.
func (l *DoublyLinkedList[T]) Repeat(n int) *DoublyLinkedList[T] {
	out := l.newEmpty(l.returnNodes)
	values := l.Values()
	for i := 0; i < max(n, -n); i++ {
		out.Extend(values...)
	}
	if n < 0 {
		out.Reverse()
	}
	return out
}

// Compare orders l and other lexicographically: the first position where the
// elements differ decides, and when one is a prefix of the other the shorter
// one comes first. It returns -1, 0 or +1.
func (l *DoublyLinkedList[T]) Compare(other Sequence[T]) int {
	next, stop := iter.Pull(other.All())
	defer stop()
	for node := l.chain.FirstNode(); node != nil; node = node.Next() {
		v, ok := next()
		if !ok {
			return 1
		}
		if c := node.CompareValue(v); c != 0 {
			return cmp.Compare(c, 0)
		}
	}
	if _, ok := next(); ok {
		return -1
	}
	return 0
}

// Equal reports whether other has the same length and pairwise equal elements.
func (l *DoublyLinkedList[T]) Equal(other Sequence[T]) bool {
	return l.chain.Len() == other.Len() && l.Compare(other) == 0
}

func (l *DoublyLinkedList[T]) NotEqual(other Sequence[T]) bool {
	return !l.Equal(other)
}

func (l *DoublyLinkedList[T]) Less(other Sequence[T]) bool {
	return l.Compare(other) < 0
}

func (l *DoublyLinkedList[T]) LessOrEqual(other Sequence[T]) bool {
	return l.Compare(other) <= 0
}

func (l *DoublyLinkedList[T]) Greater(other Sequence[T]) bool {
	return l.Compare(other) > 0
}

func (l *DoublyLinkedList[T]) GreaterOrEqual(other Sequence[T]) bool {
	return l.Compare(other) >= 0
}
