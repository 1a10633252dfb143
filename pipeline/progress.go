package pipeline

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// progressTracker reports stage progress to a writer. Safe for concurrent
// Increment calls from pool workers.
type progressTracker struct {
	writer         io.Writer
	stage          string
	total          int
	current        int
	reportInterval int
	lastReported   int
	startTime      time.Time
	mu             sync.Mutex
}

// newProgressTracker creates a tracker for one pipeline stage.
// writer: where to write progress output (typically os.Stderr); nil disables output
// total: number of items the stage will process
func newProgressTracker(writer io.Writer, stage string, total int) *progressTracker {
	interval := total / 10
	if interval < 1 {
		interval = 1
	}
	return &progressTracker{
		writer:         writer,
		stage:          stage,
		total:          total,
		reportInterval: interval,
		startTime:      time.Now(),
	}
}

// Increment advances the stage's progress by delta, reporting when a report
// interval is crossed.
func (p *progressTracker) Increment(delta int) {
	if p.writer == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	p.current += delta
	if p.current > p.total {
		p.current = p.total
	}
	if p.current-p.lastReported >= p.reportInterval {
		p.report()
		p.lastReported = p.current
	}
}

// Finish reports the final state of the stage.
func (p *progressTracker) Finish() {
	if p.writer == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()

	elapsed := time.Since(p.startTime).Round(time.Millisecond)
	fmt.Fprintf(p.writer, "%s: done, %d/%d items in %v\n", p.stage, p.current, p.total, elapsed)
}

func (p *progressTracker) report() {
	percent := 0
	if p.total > 0 {
		percent = p.current * 100 / p.total
	}
	fmt.Fprintf(p.writer, "%s: %d/%d (%d%%)\n", p.stage, p.current, p.total, percent)
}
