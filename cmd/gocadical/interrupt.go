package main

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

type terminator interface {
	Terminate()
}

// interrupts forwards the first shutdown signal to every solver currently
// registered. A second signal exits the process directly.
type interrupts struct {
	mu      sync.Mutex
	fired   bool
	running map[terminator]struct{}
}

func newInterrupts() *interrupts {
	return &interrupts{running: make(map[terminator]struct{})}
}

// listen installs the signal handler. It returns a function that removes it.
func (i *interrupts) listen() func() {
	c := make(chan os.Signal, 2)
	signal.Notify(c, shutdownSignals...)
	done := make(chan struct{})
	go func() {
		select {
		case <-c:
		case <-done:
			return
		}
		i.fire()
		select {
		case <-c:
			os.Exit(1) // second signal. Exit directly.
		case <-done:
		}
	}()
	return func() {
		signal.Stop(c)
		close(done)
	}
}

// add registers t and reports false if a signal already arrived, in which
// case the caller should not start solving.
func (i *interrupts) add(t terminator) bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.fired {
		return false
	}
	i.running[t] = struct{}{}
	return true
}

// remove must be called before t is closed.
func (i *interrupts) remove(t terminator) {
	i.mu.Lock()
	delete(i.running, t)
	i.mu.Unlock()
}

func (i *interrupts) fire() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.fired = true
	for t := range i.running {
		t.Terminate()
	}
}

func (i *interrupts) interrupted() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.fired
}
