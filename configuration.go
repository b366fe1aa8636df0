package doubly_linked_list

import (
	"encoding/json"

	"golang.org/x/xerrors"
)

type Configuration[T any] struct {
	Values      []T  `json:"values,omitempty"`
	ReturnNodes bool `json:"returnNodes,omitempty"`
}

func NewFromConfiguration[T any](config Configuration[T], compare func(a, b T) int) (*DoublyLinkedList[T], error) {
	if compare == nil {
		return nil, ErrNoCompareFunc
	}
	options := []func(*Options[T]){WithValues(config.Values...)}
	if config.ReturnNodes {
		options = append(options, ReturnNodes[T]())
	}
	return NewFunc(compare, options...), nil
}

// Configuration describes l so that NewFromConfiguration can recreate it.
func (l *DoublyLinkedList[T]) Configuration() Configuration[T] {
	return Configuration[T]{
		Values:      l.Values(),
		ReturnNodes: l.returnNodes,
	}
}

// MarshalJSON encodes the values as a JSON array.
func (l *DoublyLinkedList[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.Values())
}

// UnmarshalJSON replaces the contents of l with the values of a JSON array.
// l must have been created by New, NewFunc or NewFromConfiguration.
func (l *DoublyLinkedList[T]) UnmarshalJSON(data []byte) error {
	if l.compare == nil {
		return ErrNoCompareFunc
	}
	var values []T
	if err := json.Unmarshal(data, &values); err != nil {
		return xerrors.Errorf("decode list: %w", err)
	}
	l.Clear()
	l.Extend(values...)
	return nil
}
