package workers

import "errors"

var (
	ErrMailQueueFull    = errors.New("mail queue is full")
	ErrDispatcherClosed = errors.New("mail dispatcher is closed")
)
