package stl

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	s := NewStack[int]()
	_, err := s.Pop()
	require.ErrorIs(t, err, ErrEmpty)
	_, err = s.Top()
	require.ErrorIs(t, err, ErrEmpty)

	for i := 0; i < 5; i++ {
		s.Push(i)
	}
	require.Equal(t, 5, s.Size())

	top, err := s.Top()
	require.NoError(t, err)
	require.Equal(t, 4, top)

	for i := 4; i >= 0; i-- {
		v, err := s.Pop()
		require.NoError(t, err)
		require.Equal(t, i, v)
	}
	require.Equal(t, 0, s.Size())
}

func TestQueue(t *testing.T) {
	q := NewQueue[string]()
	_, err := q.Pop()
	require.ErrorIs(t, err, ErrEmpty)

	q.Push("a")
	q.Push("b")
	front, err := q.Front()
	require.NoError(t, err)
	require.Equal(t, "a", front)

	v, err := q.Pop()
	require.NoError(t, err)
	require.Equal(t, "a", v)
	q.Push("c")

	v, _ = q.Pop()
	require.Equal(t, "b", v)
	v, _ = q.Pop()
	require.Equal(t, "c", v)
	require.Equal(t, 0, q.Size())
}

func TestQueueCompaction(t *testing.T) {
	q := NewQueue[int]()
	next := 0
	for round := 0; round < 10; round++ {
		for i := 0; i < 50; i++ {
			q.Push(round*50 + i)
		}
		for i := 0; i < 40; i++ {
			v, err := q.Pop()
			require.NoError(t, err)
			require.Equal(t, next, v)
			next++
		}
	}
	require.Equal(t, 100, q.Size())
	for q.Size() > 0 {
		v, err := q.Pop()
		require.NoError(t, err)
		require.Equal(t, next, v)
		next++
	}
	require.Equal(t, 500, next)
}
