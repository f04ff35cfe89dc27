package Queues

// Queue is a FIFO container.
type Queue[T any] interface {
	Push(item T)
	Pop() (T, error)
	Peek() (T, bool)
	Empty() bool
	Size() uint
}

// ArrayQueue is a Queue backed by a growable ring buffer.
type ArrayQueue[T any] interface {
	Queue[T]
	Shrink()
	Clear()
	resize(newLen uint)
}

type EmptyQueueError struct {
}

func (e *EmptyQueueError) Error() string {
	return "Queue is Empty: cannot Pop."
}
