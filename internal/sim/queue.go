package sim

// readyQueue is the FIFO of runnable processes used by Round-Robin. It holds
// references, so burst accounting on a dequeued process is visible when the
// process comes back around.
type readyQueue struct {
	items []*Process
}

func (q *readyQueue) Enqueue(p *Process) {
	q.items = append(q.items, p)
}

func (q *readyQueue) Dequeue() *Process {
	p := q.items[0]
	q.items = q.items[1:]
	return p
}

func (q *readyQueue) Len() int { return len(q.items) }
