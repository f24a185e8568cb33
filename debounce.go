package tide

import (
	"sync"
	"time"

	"github.com/zoobzio/clockz"
)

// Debounce decorates a listener so that bursts of notifications collapse
// into a single invocation once the store has been quiet for d. The store's
// notification pass only signals the debouncer and never blocks; fn runs on
// a dedicated goroutine.
//
// Use this for subscribers that do expensive work (re-rendering, writing
// derived views) and only care about the latest state:
//
//	listener, stop := tide.Debounce(clockz.RealClock, 50*time.Millisecond, func() {
//	    render(store.State())
//	})
//	defer stop()
//	unsubscribe := store.Subscribe(listener)
//	defer unsubscribe()
//
// stop releases the goroutine; it is idempotent. A pending invocation that
// has not fired when stop is called is discarded.
func Debounce(clock clockz.Clock, d time.Duration, fn func()) (listener func(), stop func()) {
	ticks := make(chan struct{}, 1)
	done := make(chan struct{})

	go func() {
		var (
			timer  clockz.Timer
			timerC <-chan time.Time
		)
		for {
			select {
			case <-done:
				if timer != nil {
					timer.Stop()
				}
				return

			case <-ticks:
				// Reset or start the quiet-period timer
				if timer == nil {
					timer = clock.NewTimer(d)
					timerC = timer.C()
				} else {
					if !timer.Stop() {
						select {
						case <-timerC:
						default:
						}
					}
					timer.Reset(d)
				}

			case <-timerC:
				fn()
			}
		}
	}()

	listener = func() {
		select {
		case ticks <- struct{}{}:
		default:
		}
	}

	var once sync.Once
	stop = func() {
		once.Do(func() { close(done) })
	}
	return listener, stop
}
