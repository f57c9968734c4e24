package stage

import (
	"log"
	"sync"
	"time"

	"github.com/1broseidon/stagehand/internal/geom"
)

// DefaultPollInterval is how often the watcher re-queries its provider.
const DefaultPollInterval = 500 * time.Millisecond

// Watcher polls a Provider and invokes a callback whenever the stage
// rectangle changes. Provider errors are logged and the previous stage is
// kept until the provider recovers.
type Watcher struct {
	provider Provider
	interval time.Duration
	onChange func(geom.Rect)

	mu   sync.Mutex
	last geom.Rect
	seen bool

	stop chan struct{}
	done chan struct{}
}

// NewWatcher creates a watcher. onChange runs on the watcher goroutine; it
// also fires for the first successful poll.
func NewWatcher(provider Provider, interval time.Duration, onChange func(geom.Rect)) *Watcher {
	if interval <= 0 {
		interval = DefaultPollInterval
	}
	return &Watcher{
		provider: provider,
		interval: interval,
		onChange: onChange,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start begins polling in a background goroutine.
func (w *Watcher) Start() {
	go w.run()
}

// Stop halts polling and waits for the watcher goroutine to exit.
func (w *Watcher) Stop() {
	close(w.stop)
	<-w.done
}

func (w *Watcher) run() {
	defer close(w.done)

	w.poll()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stop:
			return
		case <-ticker.C:
			w.poll()
		}
	}
}

// poll queries the provider once and fires onChange when the stage differs
// from the last observed value.
func (w *Watcher) poll() {
	r, err := w.provider.Stage()
	if err != nil {
		log.Printf("Stage: provider error: %v", err)
		return
	}

	w.mu.Lock()
	changed := !w.seen || r != w.last
	w.last = r
	w.seen = true
	w.mu.Unlock()

	if changed {
		log.Printf("Stage: now %dx%d", r.Width, r.Height)
		if w.onChange != nil {
			w.onChange(r)
		}
	}
}
