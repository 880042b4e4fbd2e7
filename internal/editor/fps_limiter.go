package editor

import (
	"runtime"
	"time"
)

// spinWindow is how close to the deadline Wait stops sleeping and yields.
const spinWindow = 200 * time.Microsecond

// FrameCap supplies the frame rate cap; config.Settings implements it.
type FrameCap interface {
	FPSLimit() int
}

// FPSLimiter paces the frame loop against a fixed schedule of deadlines.
type FPSLimiter struct {
	source   FrameCap
	deadline time.Time
}

// NewFPSLimiter reads the cap from c every frame, so runtime changes to the
// settings apply on the next Wait. A nil c never limits.
func NewFPSLimiter(c FrameCap) *FPSLimiter {
	return &FPSLimiter{source: c}
}

// Wait blocks until the current frame's deadline. With no cap the schedule is
// dropped and Wait returns at once.
func (f *FPSLimiter) Wait() {
	budget := f.frameBudget()
	if budget == 0 {
		f.deadline = time.Time{}
		return
	}

	if f.deadline.IsZero() {
		f.deadline = time.Now()
	}
	f.deadline = f.deadline.Add(budget)
	sleepUntil(f.deadline)

	// After a hitch, restart the schedule from now instead of rushing the
	// following frames to catch up.
	if time.Since(f.deadline) > budget {
		f.deadline = time.Now()
	}
}

func (f *FPSLimiter) frameBudget() time.Duration {
	if f.source == nil {
		return 0
	}
	fps := f.source.FPSLimit()
	if fps <= 0 {
		return 0
	}
	return time.Second / time.Duration(fps)
}

func sleepUntil(t time.Time) {
	for {
		left := time.Until(t)
		switch {
		case left <= 0:
			return
		case left > spinWindow:
			time.Sleep(left - spinWindow)
		default:
			runtime.Gosched()
		}
	}
}
