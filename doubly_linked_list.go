package doubly_linked_list

import (
	"cmp"
	"iter"
	"slices"
	"strings"

	"github.com/dmgrit/doubly-linked-list/internal/collections"
	"github.com/dmgrit/doubly-linked-list/internal/deepcopy"
)

// Node is a single element of a DoublyLinkedList. Its links are owned by the
// list; a node removed from its list reports nil for Next and Prev.
type Node[T any] = collections.ListNode[T]

// DoublyLinkedList is a sequence of values stored in doubly linked nodes.
//
// A list is not safe for concurrent use, and it must not be modified while one
// of its iterators is running. Wrap it in Locked when several goroutines share it.
type DoublyLinkedList[T any] struct {
	chain       collections.Chain[T]
	cursor      *collections.ListIterator[T]
	compare     func(a, b T) int
	returnNodes bool
}

// New creates a list of naturally ordered values.
func New[T cmp.Ordered](options ...func(*Options[T])) *DoublyLinkedList[T] {
	return NewFunc(cmp.Compare[T], options...)
}

// NewFunc creates a list whose values are ordered and compared for equality by
// compare, which returns a negative number, zero or a positive number as
// a is less than, equal to or greater than b. NewFunc panics if compare is nil.
func NewFunc[T any](compare func(a, b T) int, options ...func(*Options[T])) *DoublyLinkedList[T] {
	if compare == nil {
		panic("doubly_linked_list: nil compare function")
	}
	opts := &Options[T]{}
	for _, option := range options {
		option(opts)
	}
	l := &DoublyLinkedList[T]{
		compare:     compare,
		returnNodes: opts.returnNodes,
	}
	for _, seq := range opts.seed {
		l.ExtendSeq(seq)
	}
	return l
}

func (l *DoublyLinkedList[T]) newEmpty(returnNodes bool) *DoublyLinkedList[T] {
	return &DoublyLinkedList[T]{compare: l.compare, returnNodes: returnNodes}
}

func (l *DoublyLinkedList[T]) newNode(value T) *Node[T] {
	return collections.NewListNode(value, l.compare)
}

func (l *DoublyLinkedList[T]) position() *collections.ListIterator[T] {
	if l.cursor == nil {
		l.cursor = l.chain.Iterator()
	}
	return l.cursor
}

// ReturnsNodes reports whether Items and Item expose nodes rather than values.
func (l *DoublyLinkedList[T]) ReturnsNodes() bool {
	return l.returnNodes
}

// Add appends value at the tail.
func (l *DoublyLinkedList[T]) Add(value T) {
	l.chain.Append(l.newNode(value))
}

// Append is an alias of Add.
func (l *DoublyLinkedList[T]) Append(value T) {
	l.Add(value)
}

// Insert places value so that it ends up at index. Negative indexes count
// from the tail, and index == Len() appends.
func (l *DoublyLinkedList[T]) Insert(value T, index int) error {
	n := l.chain.Len()
	i := index
	if i < 0 {
		i += n
	}
	switch {
	case i == 0:
		l.chain.Prepend(l.newNode(value))
	case i == n:
		l.chain.Append(l.newNode(value))
	case i < 0 || i > n:
		return &IndexOutOfRangeError{Op: "insert", Index: index, Len: n}
	default:
		l.chain.InsertBefore(l.newNode(value), l.chain.NodeAt(i))
	}
	return nil
}

// Extend appends every value in order.
func (l *DoublyLinkedList[T]) Extend(values ...T) {
	for _, v := range values {
		l.Add(v)
	}
}

// ExtendSeq appends every element of seq. The sequence is drained before the
// list changes, so it may be derived from l itself.
func (l *DoublyLinkedList[T]) ExtendSeq(seq iter.Seq[T]) {
	l.Extend(slices.Collect(seq)...)
}

// ExtendList appends copies of other's values. The two lists never share nodes.
func (l *DoublyLinkedList[T]) ExtendList(other *DoublyLinkedList[T]) {
	l.Extend(other.Values()...)
}

func (l *DoublyLinkedList[T]) resolve(op string, index int) (int, error) {
	n := l.chain.Len()
	i := index
	if i < 0 {
		i += n
	}
	if i < 0 || i >= n {
		return 0, &IndexOutOfRangeError{Op: op, Index: index, Len: n}
	}
	return i, nil
}

// Get returns the node at index. Negative indexes count from the tail.
func (l *DoublyLinkedList[T]) Get(index int) (*Node[T], error) {
	i, err := l.resolve("get", index)
	if err != nil {
		return nil, err
	}
	return l.chain.NodeAt(i), nil
}

// At returns the value at index.
func (l *DoublyLinkedList[T]) At(index int) (T, error) {
	node, err := l.Get(index)
	if err != nil {
		return getZero[T](), err
	}
	return node.Value(), nil
}

// Item returns the node at index if the list was created with ReturnNodes,
// otherwise the value.
func (l *DoublyLinkedList[T]) Item(index int) (any, error) {
	node, err := l.Get(index)
	if err != nil {
		return nil, err
	}
	if l.returnNodes {
		return node, nil
	}
	return node.Value(), nil
}

// Set replaces the value stored at index in place.
func (l *DoublyLinkedList[T]) Set(index int, value T) error {
	i, err := l.resolve("set", index)
	if err != nil {
		return err
	}
	l.chain.NodeAt(i).SetValue(value)
	return nil
}

// Delete removes the element at index.
func (l *DoublyLinkedList[T]) Delete(index int) error {
	i, err := l.resolve("delete", index)
	if err != nil {
		return err
	}
	l.unlink(l.chain.NodeAt(i))
	return nil
}

// Pop removes and returns the last value.
func (l *DoublyLinkedList[T]) Pop() (T, error) {
	return l.PopAt(-1)
}

// PopAt removes and returns the value at index.
func (l *DoublyLinkedList[T]) PopAt(index int) (T, error) {
	i, err := l.resolve("pop", index)
	if err != nil {
		return getZero[T](), err
	}
	node := l.chain.NodeAt(i)
	l.unlink(node)
	return node.Value(), nil
}

// Remove deletes the first element equal to value and reports whether one was found.
func (l *DoublyLinkedList[T]) Remove(value T) bool {
	for node := l.chain.FirstNode(); node != nil; node = node.Next() {
		if node.CompareValue(value) == 0 {
			l.unlink(node)
			return true
		}
	}
	return false
}

// unlink keeps the step cursor valid: removing the head rewinds it,
// removing the node it is about to return moves it forward.
func (l *DoublyLinkedList[T]) unlink(node *Node[T]) {
	if node == l.chain.FirstNode() {
		l.position().Reset()
	} else {
		l.position().Skip(node)
	}
	l.chain.RemoveNode(node)
}

// Clear removes every element.
func (l *DoublyLinkedList[T]) Clear() {
	l.chain.Clear()
	l.position().Reset()
}

// Index returns the position of the first element equal to value.
func (l *DoublyLinkedList[T]) Index(value T) (int, bool) {
	return l.IndexRange(value, 0, l.chain.Len())
}

// IndexRange is like Index but only looks at positions in [start, end).
// Negative bounds count from the tail; bounds past either end are clamped.
func (l *DoublyLinkedList[T]) IndexRange(value T, start, end int) (int, bool) {
	n := l.chain.Len()
	start, end = clampBound(start, n), clampBound(end, n)
	i := 0
	for node := l.chain.FirstNode(); node != nil && i < end; node = node.Next() {
		if i >= start && node.CompareValue(value) == 0 {
			return i, true
		}
		i++
	}
	return -1, false
}

func clampBound(index, n int) int {
	if index < 0 {
		index += n
	}
	return max(0, min(index, n))
}

// Count returns the number of elements equal to value.
func (l *DoublyLinkedList[T]) Count(value T) int {
	count := 0
	for node := l.chain.FirstNode(); node != nil; node = node.Next() {
		if node.CompareValue(value) == 0 {
			count++
		}
	}
	return count
}

// Contains reports whether an element equal to value is present.
func (l *DoublyLinkedList[T]) Contains(value T) bool {
	_, ok := l.Index(value)
	return ok
}

func (l *DoublyLinkedList[T]) Len() int {
	return l.chain.Len()
}

func (l *DoublyLinkedList[T]) IsEmpty() bool {
	return l.chain.IsEmpty()
}

// Copy returns a new list with the same values, compare function and mode.
// Values are copied by assignment.
func (l *DoublyLinkedList[T]) Copy() *DoublyLinkedList[T] {
	out := l.newEmpty(l.returnNodes)
	out.Extend(l.Values()...)
	return out
}

// DeepCopy returns a list of recursively copied values that shares no memory
// with l, including memory reachable only through unexported struct fields.
// Pointers that alias each other inside l alias each other in the copy.
// The copy always exposes values, whatever the mode of l.
func (l *DoublyLinkedList[T]) DeepCopy() *DoublyLinkedList[T] {
	out := l.newEmpty(false)
	out.Extend(deepcopy.Value(l.Values())...)
	return out
}

func (l *DoublyLinkedList[T]) String() string {
	var sb strings.Builder
	sb.WriteString("DoublyLinkedList of [")
	for node := l.chain.FirstNode(); node != nil; node = node.Next() {
		if node != l.chain.FirstNode() {
			sb.WriteString(", ")
		}
		sb.WriteString(node.String())
	}
	sb.WriteString("]")
	return sb.String()
}
