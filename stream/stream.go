package stream

import (
	"sync"
)

type Stream[T any] struct {
	name     string
	elements []T
	*sync.Cond
}

func NewStream[T any](name string) *Stream[T] {
	return &Stream[T]{
		Cond: sync.NewCond(&sync.Mutex{}),
		name: name,
	}
}

func (s *Stream[T]) Push(msg T) {
	s.Cond.L.Lock()
	s.elements = append(s.elements, msg)
	s.Cond.Signal()
	s.Cond.L.Unlock()
}

// Pull blocks until an element is available.
func (s *Stream[T]) Pull() T {
	s.Cond.L.Lock()
	for len(s.elements) == 0 {
		s.Cond.Wait()
	}
	msg := s.elements[0]
	s.elements = s.elements[1:]
	s.Cond.L.Unlock()
	return msg
}

// PullWhile removes and returns the queued elements up to the first one that
// does not match. It never blocks.
func (s *Stream[T]) PullWhile(match func(T) bool) []T {
	s.Cond.L.Lock()
	n := 0
	for n < len(s.elements) && match(s.elements[n]) {
		n++
	}
	msgs := make([]T, n)
	copy(msgs, s.elements[:n])
	s.elements = s.elements[n:]
	s.Cond.L.Unlock()
	return msgs
}

func (s *Stream[T]) Len() int {
	s.Cond.L.Lock()
	defer s.Cond.L.Unlock()
	return len(s.elements)
}
