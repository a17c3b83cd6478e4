package progress

import (
	"io"
	"math"
	"math/big"
	"sync"
	"sync/atomic"
	"time"

	"github.com/schollz/progressbar/v3"

	"combinator/internal/domain"
)

const (
	defaultBuffer   = 1000
	defaultInterval = 100 * time.Millisecond
)

// Options configures a Reporter.
type Options struct {
	Writer      io.Writer     // where the bar is drawn; nil disables drawing
	Description string        // label shown before the bar
	Buffer      int           // tick channel capacity (default 1000)
	Interval    time.Duration // minimum time between redraws (default 100ms)
}

// Reporter counts completed candidates against a precomputed total.
type Reporter struct {
	total    *big.Int
	ticks    chan struct{}
	overflow atomic.Uint64
	done     atomic.Uint64
	interval time.Duration
	bar      *progressbar.ProgressBar

	mu        sync.RWMutex // guards closed against concurrent Tick
	closed    bool
	startOnce sync.Once
	stopped   chan struct{}
}

// New returns a Reporter for a search of total candidates. Call Start before
// the first Tick and Close once the search has returned.
func New(total *big.Int, opts Options) *Reporter {
	if opts.Buffer <= 0 {
		opts.Buffer = defaultBuffer
	}
	if opts.Interval <= 0 {
		opts.Interval = defaultInterval
	}
	r := &Reporter{
		total:    new(big.Int).Set(total),
		ticks:    make(chan struct{}, opts.Buffer),
		interval: opts.Interval,
		stopped:  make(chan struct{}),
	}
	r.bar = newBar(total, opts)
	return r
}

func newBar(total *big.Int, opts Options) *progressbar.ProgressBar {
	// Totals beyond int64 render as an indeterminate spinner.
	limit := int64(-1)
	if total.IsInt64() {
		limit = total.Int64()
	}
	w := opts.Writer
	visible := w != nil
	if w == nil {
		w = io.Discard
	}
	return progressbar.NewOptions64(limit,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetVisibility(visible),
		progressbar.OptionSetDescription(opts.Description),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionSetItsString("candidates"),
		progressbar.OptionSetPredictTime(true),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionThrottle(opts.Interval),
		progressbar.OptionFullWidth(),
		progressbar.OptionOnCompletion(func() { _, _ = io.WriteString(w, "\n") }),
	)
}

// Total returns the precomputed number of candidates.
func (r *Reporter) Total() *big.Int { return new(big.Int).Set(r.total) }

// Start launches the goroutine that drains ticks. It is safe to call more than
// once.
func (r *Reporter) Start() {
	r.startOnce.Do(func() { go r.listen() })
}

// Tick records one evaluated candidate. It never blocks. Ticks after Close are
// ignored.
func (r *Reporter) Tick() {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return
	}
	select {
	case r.ticks <- struct{}{}:
	default:
		r.overflow.Add(1)
	}
}

// Close stops accepting ticks, flushes the final count and marks the bar
// complete. It blocks until the drain goroutine has exited.
func (r *Reporter) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		<-r.stopped
		return
	}
	r.closed = true
	close(r.ticks)
	r.mu.Unlock()

	r.Start()
	<-r.stopped
}

// Completed returns the number of ticks flushed so far.
func (r *Reporter) Completed() uint64 { return r.done.Load() }

func (r *Reporter) listen() {
	defer close(r.stopped)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	var pending uint64
	flush := func() {
		pending += r.overflow.Swap(0)
		if pending == 0 {
			return
		}
		r.done.Add(pending)
		_ = r.bar.Add64(clampInt64(pending))
		pending = 0
	}

	for {
		select {
		case _, ok := <-r.ticks:
			if !ok {
				flush()
				// The bar completes on its own once the last tick lands.
				if !r.bar.IsFinished() {
					_ = r.bar.Finish()
				}
				return
			}
			pending++
		case <-ticker.C:
			flush()
		}
	}
}

func clampInt64(v uint64) int64 {
	if v > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v)
}

// Noop discards ticks. It is used when no progress display is wanted.
type Noop struct{}

// Tick does nothing.
func (Noop) Tick() {}

// Close does nothing.
func (Noop) Close() {}

// Compile-time assertions that both types implement domain.Progress.
var (
	_ domain.Progress = (*Reporter)(nil)
	_ domain.Progress = Noop{}
)
