package doubly_linked_list

import (
	"fmt"

	"golang.org/x/xerrors"
)

var (
	ErrIndexOutOfRange = xerrors.New("list index out of range")
	ErrEmptyList       = xerrors.New("list is empty")
	ErrZeroStep        = xerrors.New("slice step cannot be zero")
	ErrLockTimeout     = xerrors.New("list lock was not acquired")
	ErrNoCompareFunc   = xerrors.New("list has no compare function")
)

// IndexOutOfRangeError reports an index that does not resolve to an element.
// It matches ErrIndexOutOfRange, and ErrEmptyList too when the list was empty.
type IndexOutOfRangeError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexOutOfRangeError) Error() string {
	if e.Len == 0 {
		return fmt.Sprintf("%s: index %d out of range of empty list", e.Op, e.Index)
	}
	return fmt.Sprintf("%s: index %d out of range [%d:%d]", e.Op, e.Index, -e.Len, e.Len)
}

func (e *IndexOutOfRangeError) Is(target error) bool {
	switch target {
	case ErrIndexOutOfRange:
		return true
	case ErrEmptyList:
		return e.Len == 0
	default:
		return false
	}
}
