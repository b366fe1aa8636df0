package doubly_linked_list

import (
	"cmp"
	"iter"
)

type Options[T any] struct {
	seed        []iter.Seq[T]
	returnNodes bool
}

// WithValues seeds the list with one node per value.
func WithValues[T any](values ...T) func(opt *Options[T]) {
	return func(opt *Options[T]) {
		opt.seed = append(opt.seed, func(yield func(T) bool) {
			for _, v := range values {
				if !yield(v) {
					return
				}
			}
		})
	}
}

// WithSeq seeds the list with one node per element of seq.
func WithSeq[T any](seq iter.Seq[T]) func(opt *Options[T]) {
	return func(opt *Options[T]) {
		opt.seed = append(opt.seed, seq)
	}
}

// WithValue seeds the list with a single node holding value,
// even when value is itself a collection.
func WithValue[T any](value T) func(opt *Options[T]) {
	return func(opt *Options[T]) {
		opt.seed = append(opt.seed, func(yield func(T) bool) {
			yield(value)
		})
	}
}

// ReturnNodes makes Items and Item expose nodes instead of values.
func ReturnNodes[T any]() func(opt *Options[T]) {
	return func(opt *Options[T]) {
		opt.returnNodes = true
	}
}

type SortOptions[T any] struct {
	order   func(values []T) func(i, j int) int
	reverse bool
}

// SortKey orders elements by key(v) instead of v. The key may be of any
// ordered type, and it is computed once per element.
func SortKey[T any, K cmp.Ordered](key func(T) K) func(opt *SortOptions[T]) {
	return SortKeyFunc(key, cmp.Compare[K])
}

// SortKeyFunc orders elements by key(v), comparing keys with compare.
func SortKeyFunc[T, K any](key func(T) K, compare func(a, b K) int) func(opt *SortOptions[T]) {
	return func(opt *SortOptions[T]) {
		opt.order = func(values []T) func(i, j int) int {
			keys := make([]K, len(values))
			for i, v := range values {
				keys[i] = key(v)
			}
			return func(i, j int) int {
				return compare(keys[i], keys[j])
			}
		}
	}
}

// SortFunc orders elements with compare instead of the list's compare function.
func SortFunc[T any](compare func(a, b T) int) func(opt *SortOptions[T]) {
	return func(opt *SortOptions[T]) {
		opt.order = func(values []T) func(i, j int) int {
			return func(i, j int) int {
				return compare(values[i], values[j])
			}
		}
	}
}

// SortReverse sorts in descending order. Equal elements keep their relative order.
func SortReverse[T any]() func(opt *SortOptions[T]) {
	return func(opt *SortOptions[T]) {
		opt.reverse = true
	}
}
