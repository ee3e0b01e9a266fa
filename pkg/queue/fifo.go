package queue

// Fifo is a first-in first-out queue.
type Fifo[T any] struct {
	items []T
	head  int // index of the next item to pop
}

func NewFifo[T any](initialItems ...T) *Fifo[T] {
	q := &Fifo[T]{items: make([]T, 0, len(initialItems))}
	q.items = append(q.items, initialItems...)
	return q
}

func (q *Fifo[T]) Len() int      { return len(q.items) - q.head }
func (q *Fifo[T]) Push(item T)   { q.items = append(q.items, item) }
func (q *Fifo[T]) IsEmpty() bool { return q.Len() == 0 }

// Pop removes and returns the oldest item. It panics on an empty queue.
func (q *Fifo[T]) Pop() T {
	if q.IsEmpty() {
		panic("pop on empty queue")
	}
	var zero T
	item := q.items[q.head]
	q.items[q.head] = zero
	q.head++
	if q.head == len(q.items) {
		// everything consumed, reuse the backing array
		q.items = q.items[:0]
		q.head = 0
	}
	return item
}
