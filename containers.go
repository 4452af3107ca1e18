package gridsearch

import (
	"container/heap"

	"golang.org/x/exp/constraints"
)

// Stack is a LIFO stack.
type Stack[T any] struct {
	s []T
}

func (s *Stack[T]) Push(v T) {
	s.s = append(s.s, v)
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.s) == 0 {
		var zero T
		return zero, false
	}
	v := s.s[len(s.s)-1]
	s.s = s.s[:len(s.s)-1]
	return v, true
}

func (s *Stack[T]) Len() int {
	return len(s.s)
}

// NewQueue returns a FIFO queue seeded with in.
func NewQueue[T any](in ...T) Queue[T] {
	return Queue[T]{
		q: in,
	}
}

// Queue is a FIFO queue. Popped slots are released once half of the
// backing slice has been consumed.
type Queue[T any] struct {
	q    []T
	head int
}

func (q *Queue[T]) Len() int {
	return len(q.q) - q.head
}

func (q *Queue[T]) Push(v T) {
	q.q = append(q.q, v)
}

func (q *Queue[T]) Pop() (T, bool) {
	var zero T
	if q.head >= len(q.q) {
		return zero, false
	}
	v := q.q[q.head]
	q.q[q.head] = zero
	q.head++
	if q.head > 32 && q.head*2 >= len(q.q) {
		q.q = append(q.q[:0:0], q.q[q.head:]...)
		q.head = 0
	}
	return v, true
}

// While pops until the queue is empty or f returns false. f may push.
func (q *Queue[T]) While(f func(T) bool) {
	for {
		v, ok := q.Pop()
		if !ok {
			return
		}
		if !f(v) {
			return
		}
	}
}

// PQ is a min-priority queue. Entries with equal priority pop in the
// order they were pushed, which keeps searches deterministic.
type PQ[T any, P constraints.Ordered] struct {
	pq  pq[T, P]
	seq uint64
}

func (q *PQ[T, P]) Push(v T, p P) {
	q.seq++
	heap.Push(&q.pq, pqi[T, P]{v: v, p: p, seq: q.seq})
}

// Pop removes and returns the entry with the lowest priority.
func (q *PQ[T, P]) Pop() (T, P, bool) {
	if len(q.pq) == 0 {
		var zv T
		var zp P
		return zv, zp, false
	}
	it := heap.Pop(&q.pq).(pqi[T, P])
	return it.v, it.p, true
}

// Peek returns the entry Pop would return, without removing it.
func (q *PQ[T, P]) Peek() (T, P, bool) {
	if len(q.pq) == 0 {
		var zv T
		var zp P
		return zv, zp, false
	}
	return q.pq[0].v, q.pq[0].p, true
}

func (q *PQ[T, P]) Len() int {
	return len(q.pq)
}

type pqi[T any, P constraints.Ordered] struct {
	v   T
	p   P
	seq uint64
}

type pq[T any, P constraints.Ordered] []pqi[T, P]

func (pq pq[T, P]) Len() int { return len(pq) }

func (pq pq[T, P]) Less(i, j int) bool {
	if pq[i].p != pq[j].p {
		return pq[i].p < pq[j].p
	}
	return pq[i].seq < pq[j].seq
}

func (pq pq[T, P]) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
}

func (pq *pq[T, P]) Push(x any) {
	*pq = append(*pq, x.(pqi[T, P]))
}

func (pq *pq[T, P]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[0 : n-1]
	return item
}
