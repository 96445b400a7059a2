package runner

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/pantryworks/recipe-converter/internal/hooks"
)

func TestReporterStatusLines(t *testing.T) {
	var out bytes.Buffer
	rep := newReporter(&out, "never", 3)

	rep.FinishHook(Result{
		Hook:     hooks.Hook{ID: "black", Name: "format python"},
		Status:   StatusPassed,
		Duration: 1200 * time.Millisecond,
	})
	rep.FinishHook(Result{
		Hook:     hooks.Hook{ID: "lint"},
		Status:   StatusFailed,
		Duration: 40 * time.Millisecond,
		Output:   "src/app.py:1: unused import\n",
	})
	rep.FinishHook(Result{
		Hook:   hooks.Hook{ID: "gofmt"},
		Status: StatusSkipped,
	})
	rep.Summary(2 * time.Second)

	text := out.String()

	if !strings.Contains(text, "format python") || !strings.Contains(text, "Passed (1.2s)") {
		t.Errorf("missing passed line:\n%s", text)
	}
	if !strings.Contains(text, "lint") || !strings.Contains(text, "Failed (40ms)") {
		t.Errorf("missing failed line:\n%s", text)
	}
	if !strings.Contains(text, "  src/app.py:1: unused import") {
		t.Errorf("missing captured output:\n%s", text)
	}
	if !strings.Contains(text, "gofmt") || !strings.Contains(text, "Skipped") {
		t.Errorf("missing skipped line:\n%s", text)
	}
	if !strings.Contains(text, "3 hooks: 1 passed, 1 failed, 1 skipped in 2s") {
		t.Errorf("missing summary:\n%s", text)
	}
	if !strings.Contains(text, "format python....") {
		t.Errorf("status line not padded with dots:\n%s", text)
	}
}

func TestReporterSummaryAllPassed(t *testing.T) {
	var out bytes.Buffer
	rep := newReporter(&out, "never", 1)

	rep.FinishHook(Result{Hook: hooks.Hook{ID: "ok"}, Status: StatusPassed})
	rep.Summary(10 * time.Millisecond)

	if !strings.Contains(out.String(), "1 hooks: 1 passed in 10ms") {
		t.Errorf("summary = %q", out.String())
	}
}

func TestColorEnabled(t *testing.T) {
	if !colorEnabled("always") {
		t.Error("always must enable color")
	}
	if colorEnabled("never") {
		t.Error("never must disable color")
	}
}
