package schedule

import (
	"context"
	"sync"
	"time"
)

// DefaultTickInterval matches how often the portal refreshed its clock line.
const DefaultTickInterval = 30 * time.Second

// Marker is one evaluation of the live time indicator.
type Marker struct {
	At          time.Time `json:"at"`
	TopOffsetPx float64   `json:"top_offset_px"`
	Visible     bool      `json:"visible"`
}

// Clock abstracts time.Now for tests.
type Clock func() time.Time

// Evaluate computes the marker for selectedDate at now. It is a pure
// function of its arguments.
func Evaluate(now, selectedDate time.Time, w Window) Marker {
	offset, ok := CurrentTimeOffset(now, selectedDate, now, w)
	return Marker{At: now, TopOffsetPx: offset, Visible: ok}
}

// Indicator re-evaluates the marker on a fixed interval. At most one cycle
// runs at a time: Start cancels and waits for the previous cycle before
// launching the next one.
type Indicator struct {
	window   Window
	interval time.Duration
	clock    Clock

	// cycle serializes Start and Stop; mu guards cancel and done.
	cycle  sync.Mutex
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewIndicator creates an indicator for w. A non-positive interval falls
// back to DefaultTickInterval and a nil clock to time.Now.
func NewIndicator(w Window, interval time.Duration, clock Clock) *Indicator {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	if clock == nil {
		clock = time.Now
	}
	return &Indicator{window: w, interval: interval, clock: clock}
}

// Start evaluates the marker immediately and then once per interval, passing
// each result to emit, until ctx is done or Stop/Start is called.
//
// emit runs on the indicator's goroutine and must not call Start or Stop:
// both wait for that goroutine to exit. Calling Running is safe.
func (i *Indicator) Start(ctx context.Context, selectedDate time.Time, emit func(Marker)) {
	i.cycle.Lock()
	defer i.cycle.Unlock()

	i.stop()

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	i.mu.Lock()
	i.cancel = cancel
	i.done = done
	i.mu.Unlock()

	go i.run(ctx, done, selectedDate, emit)
}

// Stop halts the running cycle, if any, and waits for it to exit.
func (i *Indicator) Stop() {
	i.cycle.Lock()
	defer i.cycle.Unlock()
	i.stop()
}

// Running reports whether a cycle is active.
func (i *Indicator) Running() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.done == nil {
		return false
	}
	select {
	case <-i.done:
		return false
	default:
		return true
	}
}

// stop cancels the current cycle and waits for it without holding mu, so
// emit may still call Running while the cycle winds down.
func (i *Indicator) stop() {
	i.mu.Lock()
	cancel, done := i.cancel, i.done
	i.cancel, i.done = nil, nil
	i.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (i *Indicator) run(ctx context.Context, done chan struct{}, selectedDate time.Time, emit func(Marker)) {
	defer close(done)

	ticker := time.NewTicker(i.interval)
	defer ticker.Stop()

	emit(Evaluate(i.clock(), selectedDate, i.window))
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			emit(Evaluate(i.clock(), selectedDate, i.window))
		}
	}
}
