package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestLineReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &LineReporter{Out: &buf}
	r.Start(2)
	r.Update(1, "index.html")
	r.Update(2, "projects/a/0.html")
	r.Finish()

	out := buf.String()
	for _, want := range []string{"Rendering 2 pages", "[1/2] index.html", "[2/2] projects/a/0.html", "complete"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestBarReporterBeforeStart(t *testing.T) {
	r := &BarReporter{}
	// Update and Finish before Start must not panic.
	r.Update(1, "x")
	r.Finish()
}

func TestNewReporterCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter().(*LineReporter); !ok {
		t.Error("expected LineReporter under CI")
	}
}
