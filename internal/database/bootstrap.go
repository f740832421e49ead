package database

import (
	"sync"
	"sync/atomic"
)

// BootstrapState records whether the expense schema has been created.
//
// Share one state between all providers of a process. The zero value is
// ready to use.
type BootstrapState struct {
	done atomic.Bool
	mu   sync.Mutex
}

// NewBootstrapState returns a state for which bootstrap has not happened.
func NewBootstrapState() *BootstrapState {
	return &BootstrapState{}
}

// Done reports whether bootstrap has completed successfully.
func (s *BootstrapState) Done() bool {
	return s.done.Load()
}

// run calls fn unless bootstrap has already completed. Concurrent callers
// wait for the running attempt. The state is only marked as done if fn
// succeeds and is never reset afterwards.
func (s *BootstrapState) run(fn func() error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done.Load() {
		return nil
	}

	if err := fn(); err != nil {
		return err
	}

	s.done.Store(true)
	return nil
}
