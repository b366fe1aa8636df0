package collections

import "fmt"

// ListNode represents a node in the doubly linked list
type ListNode[T any] struct {
	value   T
	prev    *ListNode[T]
	next    *ListNode[T]
	compare func(a, b T) int
}

func NewListNode[T any](value T, compare func(a, b T) int) *ListNode[T] {
	return &ListNode[T]{value: value, compare: compare}
}

func (n *ListNode[T]) Value() T {
	return n.value
}

func (n *ListNode[T]) SetValue(value T) {
	n.value = value
}

// Next returns the following node, or nil if n is the tail or detached.
func (n *ListNode[T]) Next() *ListNode[T] {
	return n.next
}

// Prev returns the preceding node, or nil if n is the head or detached.
func (n *ListNode[T]) Prev() *ListNode[T] {
	return n.prev
}

// Compare orders two nodes by their values.
func (n *ListNode[T]) Compare(other *ListNode[T]) int {
	return n.compare(n.value, other.value)
}

// CompareValue orders the node's value against a bare value.
func (n *ListNode[T]) CompareValue(value T) int {
	return n.compare(n.value, value)
}

func (n *ListNode[T]) Less(other *ListNode[T]) bool {
	return n.Compare(other) < 0
}

func (n *ListNode[T]) Greater(other *ListNode[T]) bool {
	return n.Compare(other) > 0
}

func (n *ListNode[T]) LessValue(value T) bool {
	return n.CompareValue(value) < 0
}

func (n *ListNode[T]) GreaterValue(value T) bool {
	return n.CompareValue(value) > 0
}

func (n *ListNode[T]) String() string {
	return fmt.Sprint(n.value)
}

// Chain owns the links between nodes. It keeps no knowledge of values.
type Chain[T any] struct {
	head *ListNode[T]
	tail *ListNode[T]
	size int
}

// Append links newNode after the current tail
func (c *Chain[T]) Append(newNode *ListNode[T]) {
	c.size++
	if c.tail == nil {
		c.head = newNode
		c.tail = newNode
		return
	}
	c.tail.next = newNode
	newNode.prev = c.tail
	c.tail = newNode
}

// Prepend links newNode before the current head
func (c *Chain[T]) Prepend(newNode *ListNode[T]) {
	c.size++
	if c.head == nil {
		c.head = newNode
		c.tail = newNode
		return
	}
	c.head.prev = newNode
	newNode.next = c.head
	c.head = newNode
}

// InsertBefore links newNode between at and its predecessor.
// at must belong to c.
func (c *Chain[T]) InsertBefore(newNode, at *ListNode[T]) {
	if at.prev == nil {
		c.Prepend(newNode)
		return
	}
	c.size++
	newNode.prev = at.prev
	newNode.next = at
	at.prev.next = newNode
	at.prev = newNode
}

// RemoveNode removes the given node from the list
func (c *Chain[T]) RemoveNode(node *ListNode[T]) {
	if node == nil {
		return
	}
	c.size--
	if node.prev != nil {
		node.prev.next = node.next
	} else {
		c.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		c.tail = node.prev
	}
	node.prev = nil
	node.next = nil
}

// NodeAt walks to the node at position index from whichever end is closer.
// index must be within [0, Len()).
func (c *Chain[T]) NodeAt(index int) *ListNode[T] {
	if index == c.size-1 {
		return c.tail
	}
	if index <= c.size/2 {
		node := c.head
		for i := 0; i < index; i++ {
			node = node.next
		}
		return node
	}
	node := c.tail
	for i := c.size - 1; i > index; i-- {
		node = node.prev
	}
	return node
}

// Clear unlinks every node so that handles held by callers read as detached.
func (c *Chain[T]) Clear() {
	for node := c.head; node != nil; {
		next := node.next
		node.prev = nil
		node.next = nil
		node = next
	}
	c.head = nil
	c.tail = nil
	c.size = 0
}

// Replace drops the current nodes and takes over the nodes of other, leaving other empty.
func (c *Chain[T]) Replace(other *Chain[T]) {
	c.Clear()
	c.head, c.tail, c.size = other.head, other.tail, other.size
	other.head, other.tail, other.size = nil, nil, 0
}

func (c *Chain[T]) IsEmpty() bool {
	return c.head == nil
}

func (c *Chain[T]) Len() int {
	return c.size
}

func (c *Chain[T]) FirstNode() *ListNode[T] {
	return c.head
}

func (c *Chain[T]) LastNode() *ListNode[T] {
	return c.tail
}

// ListIterator is a resumable position over a chain. An iterator that has not
// started yet, or has been reset, begins at whatever the head is on the next call.
// Once it has passed the tail it stays exhausted until Reset.
type ListIterator[T any] struct {
	chain   *Chain[T]
	current *ListNode[T]
	started bool
}

func (c *Chain[T]) Iterator() *ListIterator[T] {
	return &ListIterator[T]{chain: c}
}

// HasNext reports whether Next would return a node.
func (it *ListIterator[T]) HasNext() bool {
	if !it.started {
		return it.chain.head != nil
	}
	return it.current != nil
}

// Next returns the node under the iterator and advances past it,
// or nil once the tail has been passed.
func (it *ListIterator[T]) Next() *ListNode[T] {
	if !it.started {
		if it.chain.head == nil {
			return nil
		}
		it.current = it.chain.head
		it.started = true
	}
	if it.current == nil {
		return nil
	}
	node := it.current
	it.current = node.next
	return node
}

// Reset moves the iterator back to the head.
func (it *ListIterator[T]) Reset() {
	it.current = nil
	it.started = false
}

// Skip moves the iterator off node if it is about to return it.
// Call before unlinking node from the chain.
func (it *ListIterator[T]) Skip(node *ListNode[T]) {
	if it.started && it.current == node {
		it.current = node.next
	}
}
