package observ

import (
	"strings"
	"testing"
)

func TestTimerPhases(t *testing.T) {
	timer := NewTimer()
	stop := timer.Phase("scan")
	stop("3 files")
	stop = timer.Phase("enhance")
	stop("")

	report := timer.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(report.Phases))
	}
	if report.Phases[0].Name != "scan" || report.Phases[0].Note != "3 files" {
		t.Fatalf("first phase = %+v", report.Phases[0])
	}
	if report.Phases[1].Name != "enhance" {
		t.Fatalf("second phase = %+v", report.Phases[1])
	}
	if report.TotalMS < 0 {
		t.Fatalf("total = %f", report.TotalMS)
	}
}

func TestTimerEmptyReport(t *testing.T) {
	report := NewTimer().Report()
	if len(report.Phases) != 0 || report.TotalMS != 0 {
		t.Fatalf("empty timer produced %+v", report)
	}
}

func TestTimerSummary(t *testing.T) {
	timer := NewTimer()
	timer.Phase("scan")("12 files")
	summary := timer.Summary()
	for _, want := range []string{"timings:", "scan", "12 files", "total"} {
		if !strings.Contains(summary, want) {
			t.Fatalf("summary missing %q:\n%s", want, summary)
		}
	}
}
