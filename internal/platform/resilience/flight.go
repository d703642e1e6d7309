package resilience

import "sync"

// Flight coalesces concurrent calls that share a key: the first caller runs
// fn and every caller arriving before it returns receives the same result.
type Flight[T any] struct {
	mu       sync.Mutex
	inFlight map[string]*flightCall[T]
}

type flightCall[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// Do reports shared=true when the result came from another caller's run.
func (f *Flight[T]) Do(key string, fn func() (T, error)) (val T, err error, shared bool) {
	f.mu.Lock()
	if f.inFlight == nil {
		f.inFlight = make(map[string]*flightCall[T])
	}
	if c, ok := f.inFlight[key]; ok {
		f.mu.Unlock()
		<-c.done
		return c.val, c.err, true
	}

	c := &flightCall[T]{done: make(chan struct{})}
	f.inFlight[key] = c
	f.mu.Unlock()

	defer func() {
		f.mu.Lock()
		delete(f.inFlight, key)
		f.mu.Unlock()
		close(c.done)
	}()

	c.val, c.err = fn()
	return c.val, c.err, false
}
