package util

// Stack is a LIFO list. A positive Limit drops the oldest items once exceeded.
type Stack[T any] struct {
	Limit int

	items []T
}

func (s *Stack[T]) Push(item T) {
	s.items = append(s.items, item)
	if s.Limit > 0 && len(s.items) > s.Limit {
		s.items = s.items[len(s.items)-s.Limit:]
	}
}

// Pop removes the top item. ok is false when the stack is empty.
func (s *Stack[T]) Pop() (item T, ok bool) {
	if len(s.items) == 0 {
		return item, false
	}

	last := len(s.items) - 1
	item, s.items = s.items[last], s.items[:last]
	return item, true
}

func (s *Stack[T]) Len() int { return len(s.items) }
