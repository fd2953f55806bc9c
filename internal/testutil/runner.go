package testutil

import (
	"context"
	"fmt"
	"sync"
)

// RecordingRunner is a Runner stub that records every invocation's full
// argument list and can be armed to fail on the Nth call.
type RecordingRunner struct {
	mu sync.Mutex

	// Calls holds one argument slice per invocation, in order.
	Calls [][]string
	// FailAt is the 1-based call index that returns an error; 0 never fails.
	FailAt int
}

func (r *RecordingRunner) Run(_ context.Context, args ...string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	call := append([]string(nil), args...)
	r.Calls = append(r.Calls, call)
	if r.FailAt > 0 && len(r.Calls) == r.FailAt {
		return fmt.Errorf("stubbed runner failure on call %d", r.FailAt)
	}
	return nil
}

// CallCount returns how many invocations were recorded.
func (r *RecordingRunner) CallCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Calls)
}
