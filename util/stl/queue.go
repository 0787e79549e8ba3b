package stl

type queue[T interface{}] struct {
	s    []T
	head int
}

type Queue[T interface{}] interface {
	Push(v T)
	Pop() (T, error)
	Front() (T, error)
	Size() int
}

func NewQueue[T interface{}]() Queue[T] {
	return &queue[T]{s: make([]T, 0)}
}

func (q *queue[T]) Push(value T) {
	q.s = append(q.s, value)
}

func (q *queue[T]) Pop() (value T, err error) {
	if q.head == len(q.s) {
		err = ErrEmpty
		return
	}

	value = q.s[q.head]
	var zero T
	q.s[q.head] = zero
	q.head++

	// reclaim the consumed prefix once it dominates the buffer
	if q.head > 32 && q.head*2 >= len(q.s) {
		q.s = append(q.s[:0], q.s[q.head:]...)
		q.head = 0
	}
	return value, nil
}

func (q *queue[T]) Front() (value T, err error) {
	if q.head == len(q.s) {
		err = ErrEmpty
		return
	}
	return q.s[q.head], nil
}

func (q *queue[T]) Size() int {
	return len(q.s) - q.head
}
