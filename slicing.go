package doubly_linked_list

// Slice returns a new list holding the elements at positions i with
// start <= i < stop and (i+start) divisible by step. Negative start and stop
// count from the tail. A negative step selects with |step| and then reverses.
// Slice returns ErrZeroStep if step is 0.
func (l *DoublyLinkedList[T]) Slice(start, stop, step int) (*DoublyLinkedList[T], error) {
	if step == 0 {
		return nil, ErrZeroStep
	}
	n := l.chain.Len()
	if start < 0 {
		start += n
	}
	if stop < 0 {
		stop += n
	}
	reverse := step < 0
	if reverse {
		step = -step
	}

	out := l.newEmpty(l.returnNodes)
	for i, v := range l.Enumerate() {
		if i >= stop {
			break
		}
		if i >= start && (i+start)%step == 0 {
			out.Add(v)
		}
	}
	if reverse {
		out.Reverse()
	}
	return out, nil
}
