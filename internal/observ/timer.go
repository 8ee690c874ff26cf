// Package observ carries the lightweight phase timing used by the
// batch driver.
package observ

import (
	"fmt"
	"strings"
	"time"
)

// PhaseReport is one finished phase, ready for display or
// serialization.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report aggregates every tracked phase.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

type phase struct {
	name  string
	start time.Time
	dur   time.Duration
	note  string
}

// Timer tracks the durations of sequential pipeline phases. Not safe
// for concurrent use; each worker keeps its own timer.
type Timer struct {
	phases []phase
}

// NewTimer returns an empty timer.
func NewTimer() *Timer { return &Timer{phases: make([]phase, 0, 8)} }

// Phase starts a named phase and returns the closer that finishes it.
// The optional note is attached on close.
func (t *Timer) Phase(name string) func(note string) {
	t.phases = append(t.phases, phase{name: name, start: time.Now()})
	idx := len(t.phases) - 1
	return func(note string) {
		p := &t.phases[idx]
		p.dur = time.Since(p.start)
		p.note = note
	}
}

// Report returns the aggregated phase data.
func (t *Timer) Report() Report {
	if len(t.phases) == 0 {
		return Report{}
	}
	out := Report{Phases: make([]PhaseReport, len(t.phases))}
	var total time.Duration
	for i, p := range t.phases {
		total += p.dur
		out.Phases[i] = PhaseReport{
			Name:       p.name,
			DurationMS: millis(p.dur),
			Note:       p.note,
		}
	}
	out.TotalMS = millis(total)
	return out
}

// Summary renders a human-readable timing block.
func (t *Timer) Summary() string {
	report := t.Report()
	var b strings.Builder
	b.WriteString("timings:\n")
	for _, p := range report.Phases {
		fmt.Fprintf(&b, "  %-20s %7.2f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			b.WriteString("  // " + p.Note)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "  %-20s %7.2f ms\n", "total", report.TotalMS)
	return b.String()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
