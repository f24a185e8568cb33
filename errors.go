package tide

import (
	"errors"
	"sync"
)

// ErrReentrantDispatch is returned when Dispatch is called while a reducer
// invocation is in progress. A reducer must stay pure; transitions are
// processed one at a time. This is a programmer error and is never retried
// or swallowed by the store.
var ErrReentrantDispatch = errors.New("tide: dispatch during reducer execution")

// errorLog is a thread-safe bounded history of effect errors, oldest first.
type errorLog struct {
	mu   sync.Mutex
	max  int
	errs []error
}

// newErrorLog creates an error log retaining up to max errors.
// If max is 0 the log is disabled.
func newErrorLog(max int) *errorLog {
	if max <= 0 {
		return nil
	}
	return &errorLog{max: max}
}

func (l *errorLog) record(err error) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	l.errs = append(l.errs, err)
	if len(l.errs) > l.max {
		l.errs = append(l.errs[:0], l.errs[len(l.errs)-l.max:]...)
	}
}

func (l *errorLog) recent() []error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.errs) == 0 {
		return nil
	}
	out := make([]error, len(l.errs))
	copy(out, l.errs)
	return out
}
