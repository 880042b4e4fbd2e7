package profiling

import (
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"
)

// Profiler accumulates per-frame CPU time by name. A nil *Profiler is valid
// and records nothing.
type Profiler struct {
	mu     sync.Mutex
	totals map[string]time.Duration
	now    func() time.Time
}

// New creates an empty profiler.
func New() *Profiler {
	return &Profiler{
		totals: make(map[string]time.Duration),
		now:    time.Now,
	}
}

// Track returns a stop function that records the elapsed time under the given name.
// Usage: defer p.Track("subsystem.Operation")()
func (p *Profiler) Track(name string) func() {
	if p == nil {
		return func() {}
	}
	start := p.now()
	return func() {
		d := p.now().Sub(start)
		p.mu.Lock()
		p.totals[name] += d
		p.mu.Unlock()
	}
}

// ResetFrame clears current per-frame totals. Call at the start of each frame.
func (p *Profiler) ResetFrame() {
	if p == nil {
		return
	}
	p.mu.Lock()
	clear(p.totals)
	p.mu.Unlock()
}

// Snapshot returns a copy of current per-frame totals.
func (p *Profiler) Snapshot() map[string]time.Duration {
	if p == nil {
		return map[string]time.Duration{}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make(map[string]time.Duration, len(p.totals))
	for k, v := range p.totals {
		out[k] = v
	}
	return out
}

// SumWithPrefix totals every entry whose name starts with prefix.
func (p *Profiler) SumWithPrefix(prefix string) time.Duration {
	var sum time.Duration
	for k, v := range p.Snapshot() {
		if strings.HasPrefix(k, prefix) {
			sum += v
		}
	}
	return sum
}

// TopN formats the n most expensive entries of the current frame.
// Example: "renderer.Render:4.2ms, texture.Load:2.1ms"
func (p *Profiler) TopN(n int) string {
	type pair struct {
		name string
		dur  time.Duration
	}
	ss := p.Snapshot()
	list := make([]pair, 0, len(ss))
	for k, v := range ss {
		list = append(list, pair{name: k, dur: v})
	}
	sort.Slice(list, func(i, j int) bool {
		if list[i].dur == list[j].dur {
			return list[i].name < list[j].name
		}
		return list[i].dur > list[j].dur
	})
	if n > len(list) {
		n = len(list)
	}
	parts := make([]string, 0, n)
	for i := 0; i < n; i++ {
		parts = append(parts, list[i].name+":"+formatMs(list[i].dur))
	}
	return strings.Join(parts, ", ")
}

// formatMs keeps one decimal and drops a trailing ".0".
func formatMs(d time.Duration) string {
	ms := float64(d.Microseconds()) / 1000.0
	s := strconv.FormatFloat(ms, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0") + "ms"
}
