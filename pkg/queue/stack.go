package queue

// Stack is a last-in first-out container. Besides the top item it gives access to the
// most recently pushed item satisfying a predicate and to the bottom item. An item may
// be contained more than once.
type Stack[T comparable] struct {
	items []T
}

func NewStack[T comparable](initialItems ...T) *Stack[T] {
	s := &Stack[T]{items: make([]T, 0, len(initialItems))}
	s.items = append(s.items, initialItems...)
	return s
}

func (s *Stack[T]) Len() int      { return len(s.items) }
func (s *Stack[T]) IsEmpty() bool { return len(s.items) == 0 }
func (s *Stack[T]) Push(item T)   { s.items = append(s.items, item) }

// Last scans from the top of the stack towards the bottom and returns the first item for
// which eligible returns true. The stack is not modified.
func (s *Stack[T]) Last(eligible func(item T) bool) (T, bool) {
	for i := len(s.items) - 1; i >= 0; i-- {
		if eligible(s.items[i]) {
			return s.items[i], true
		}
	}
	var zero T
	return zero, false
}

// Bottom returns the least recently pushed item.
func (s *Stack[T]) Bottom() (T, bool) {
	if s.IsEmpty() {
		var zero T
		return zero, false
	}
	return s.items[0], true
}

// Remove deletes the occurrence of item closest to the bottom. The order of the remaining
// items is kept.
func (s *Stack[T]) Remove(item T) bool {
	for i, candidate := range s.items {
		if candidate != item {
			continue
		}
		copy(s.items[i:], s.items[i+1:])
		var zero T
		s.items[len(s.items)-1] = zero
		s.items = s.items[:len(s.items)-1]
		return true
	}
	return false
}
