package doubly_linked_list

import (
	"slices"

	"github.com/dmgrit/doubly-linked-list/internal/collections"
)

// Sort orders the list in place with a stable sort. The list is rebuilt from
// the sorted values, so nodes obtained before sorting are detached afterwards
// and the Next cursor is rewound.
func (l *DoublyLinkedList[T]) Sort(options ...func(*SortOptions[T])) {
	opts := &SortOptions[T]{}
	SortFunc(l.compare)(opts)
	for _, option := range options {
		option(opts)
	}

	values := l.Values()
	compare := opts.order(values)
	positions := make([]int, len(values))
	for i := range positions {
		positions[i] = i
	}
	slices.SortStableFunc(positions, func(i, j int) int {
		if opts.reverse {
			return compare(j, i)
		}
		return compare(i, j)
	})

	var sorted collections.Chain[T]
	for _, i := range positions {
		sorted.Append(l.newNode(values[i]))
	}
	l.replaceChain(&sorted)
}

// Reverse reverses the list in place. Like Sort it rebuilds the nodes.
func (l *DoublyLinkedList[T]) Reverse() {
	var reversed collections.Chain[T]
	for node := l.chain.FirstNode(); node != nil; node = node.Next() {
		reversed.Prepend(l.newNode(node.Value()))
	}
	l.replaceChain(&reversed)
}

// Reversed returns a reversed copy of the list.
func (l *DoublyLinkedList[T]) Reversed() *DoublyLinkedList[T] {
	out := l.Copy()
	out.Reverse()
	return out
}

func (l *DoublyLinkedList[T]) replaceChain(chain *collections.Chain[T]) {
	l.chain.Replace(chain)
	l.position().Reset()
}
