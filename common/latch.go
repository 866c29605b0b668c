package common

import "sync"

// Latch is a one-way trigger that can be waited or selected on.
//
// It starts "off" and once triggered stays triggered forever. Trigger is safe
// to call more than once and from multiple goroutines.
type Latch struct {
	once sync.Once
	ch   chan struct{}
}

// NewLatch returns a new, un-triggered Latch.
func NewLatch() *Latch {
	return &Latch{ch: make(chan struct{})}
}

// Trigger the latch, releasing anyone waiting on it.
func (l *Latch) Trigger() {
	l.once.Do(func() { close(l.ch) })
}

// Test returns whether the latch has been triggered, without blocking.
func (l *Latch) Test() bool {
	select {
	case <-l.ch:
		return true
	default:
		return false
	}
}

// Wait blocks until the latch is triggered.
func (l *Latch) Wait() { <-l.ch }

// WaitChan returns the channel that is closed when the latch triggers,
// for use in select statements.
func (l *Latch) WaitChan() <-chan struct{} { return l.ch }
