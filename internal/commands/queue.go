package commands

// Queue carries commands from other goroutines (remote clients) to the render loop.
// Post never blocks; Drain runs on the render loop.
type Queue struct {
	ch chan Command
}

// NewQueue returns a queue holding at most size pending commands.
func NewQueue(size int) *Queue {
	if size <= 0 {
		size = 1
	}
	return &Queue{ch: make(chan Command, size)}
}

// Post enqueues cmd. It returns ErrQueueFull instead of blocking when the render loop is behind.
func (q *Queue) Post(cmd Command) error {
	select {
	case q.ch <- cmd:
		return nil
	default:
		return ErrQueueFull
	}
}

// Drain dispatches every pending command in arrival order and returns how many ran.
func (q *Queue) Drain(d Dispatcher) int {
	n := 0
	for {
		select {
		case cmd := <-q.ch:
			d.Dispatch(cmd)
			n++
		default:
			return n
		}
	}
}
