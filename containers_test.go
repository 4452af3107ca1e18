package gridsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQueueFIFO(t *testing.T) {
	q := NewQueue(1, 2)
	q.Push(3)
	var got []int
	q.While(func(v int) bool {
		got = append(got, v)
		if v == 1 {
			q.Push(4)
		}
		return true
	})
	assert.Equal(t, []int{1, 2, 3, 4}, got)
	_, ok := q.Pop()
	assert.False(t, ok)
}

func TestQueueCompacts(t *testing.T) {
	var q Queue[int]
	for i := 0; i < 1000; i++ {
		q.Push(i)
		v, ok := q.Pop()
		assert.True(t, ok)
		assert.Equal(t, i, v)
	}
	assert.Equal(t, 0, q.Len())
	assert.Less(t, len(q.q), 100)
}

func TestStackLIFO(t *testing.T) {
	var s Stack[string]
	s.Push("a")
	s.Push("b")
	assert.Equal(t, 2, s.Len())
	v, _ := s.Pop()
	assert.Equal(t, "b", v)
	v, _ = s.Pop()
	assert.Equal(t, "a", v)
	_, ok := s.Pop()
	assert.False(t, ok)
}

func TestPQ(t *testing.T) {
	var pq PQ[string, int]
	pq.Push("c", 3)
	pq.Push("a", 1)
	pq.Push("b1", 2)
	pq.Push("b2", 2)

	v, p, ok := pq.Peek()
	assert.True(t, ok)
	assert.Equal(t, "a", v)
	assert.Equal(t, 1, p)

	var got []string
	for pq.Len() > 0 {
		v, _, _ := pq.Pop()
		got = append(got, v)
	}
	// Equal priorities pop in push order.
	assert.Equal(t, []string{"a", "b1", "b2", "c"}, got)
	_, _, ok = pq.Pop()
	assert.False(t, ok)
	_, _, ok = pq.Peek()
	assert.False(t, ok)
}
