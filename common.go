package doubly_linked_list

func getZero[T any]() T {
	var result T
	return result
}
