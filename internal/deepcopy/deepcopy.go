package deepcopy

import "github.com/huandu/go-clone"

// Value returns a recursive copy of v, unexported struct fields included.
// Every call starts from an empty memo, so pointers that alias each other
// inside v alias each other in the copy and cycles are copied as cycles.
func Value[T any](v T) T {
	out, _ := clone.Slowly(v).(T)
	return out
}
