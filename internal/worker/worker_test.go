// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package worker

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Ankit-Cherian/file-2-pdf-converter/internal/convert"
	"github.com/Ankit-Cherian/file-2-pdf-converter/internal/format"
	"github.com/Ankit-Cherian/file-2-pdf-converter/pkg/types"
)

// fakeConverter reports fixed steps and optionally fails.
type fakeConverter struct {
	steps int
	err   error
	calls []string
}

func (f *fakeConverter) Convert(job types.Job, step convert.StepFunc) error {
	f.calls = append(f.calls, job.SourcePath)
	if f.err != nil {
		return f.err
	}
	for i := 1; i <= f.steps; i++ {
		step(i, f.steps)
	}
	return nil
}

func testConverters() (map[types.FormatKind]convert.Converter, *fakeConverter) {
	ok := &fakeConverter{steps: 4}
	return map[types.FormatKind]convert.Converter{
		types.KindImage:  ok,
		types.KindText:   ok,
		types.KindHTML:   ok,
		types.KindOffice: ok,
	}, ok
}

func job(src string) types.Job {
	return types.NewJob(src, "/tmp/out")
}

func TestRunPartialFailure(t *testing.T) {
	converters, _ := testConverters()
	w := New(format.NewRegistry(), converters, Hooks{})

	jobs := []types.Job{
		job("/in/a.txt"),
		job("/in/b.xyz"), // unsupported extension
		job("/in/c.png"),
	}

	outcomes := w.Run(jobs)

	if len(outcomes) != len(jobs) {
		t.Fatalf("got %d outcomes, want %d", len(outcomes), len(jobs))
	}
	for i, o := range outcomes {
		if o.Job.SourcePath != jobs[i].SourcePath {
			t.Errorf("outcome %d is for %q, want %q", i, o.Job.SourcePath, jobs[i].SourcePath)
		}
	}

	if !outcomes[0].Success || !outcomes[2].Success {
		t.Error("supported jobs should succeed despite the failing one")
	}
	if outcomes[1].Success {
		t.Error("unsupported job should fail")
	}
	if !strings.Contains(outcomes[1].Error, ".xyz") {
		t.Errorf("failure message should name the extension, got %q", outcomes[1].Error)
	}
}

func TestRunConverterErrorContained(t *testing.T) {
	boom := &fakeConverter{err: errors.New("disk full")}
	good := &fakeConverter{steps: 2}
	converters := map[types.FormatKind]convert.Converter{
		types.KindText:  boom,
		types.KindImage: good,
	}

	w := New(format.NewRegistry(), converters, Hooks{})
	outcomes := w.Run([]types.Job{job("/in/a.txt"), job("/in/b.jpg")})

	if outcomes[0].Success {
		t.Error("first job should fail")
	}
	if outcomes[0].Error != "disk full" {
		t.Errorf("error = %q, want %q", outcomes[0].Error, "disk full")
	}
	if !outcomes[1].Success {
		t.Error("second job should still run and succeed")
	}
	if len(good.calls) != 1 {
		t.Errorf("image converter ran %d times, want 1", len(good.calls))
	}
}

func TestRunEmitsProgressInOrder(t *testing.T) {
	converters, _ := testConverters()

	var events []types.ProgressEvent
	hooks := Hooks{
		OnProgress: func(e types.ProgressEvent) { events = append(events, e) },
	}

	w := New(format.NewRegistry(), converters, hooks)
	w.Run([]types.Job{job("/in/a.txt")})

	if len(events) != 4 {
		t.Fatalf("got %d events, want 4", len(events))
	}
	prev := -1
	for _, e := range events {
		if e.Percent <= prev {
			t.Errorf("progress not increasing: %v", events)
		}
		prev = e.Percent
		if e.File != "/in/a.txt" {
			t.Errorf("event file = %q, want %q", e.File, "/in/a.txt")
		}
	}
	if events[len(events)-1].Percent != 100 {
		t.Errorf("final percent = %d, want 100", events[len(events)-1].Percent)
	}
}

func TestRunBatchCompleteHook(t *testing.T) {
	converters, _ := testConverters()

	var completed [][]types.Outcome
	hooks := Hooks{
		OnBatchComplete: func(o []types.Outcome) { completed = append(completed, o) },
	}

	w := New(format.NewRegistry(), converters, hooks)
	jobs := []types.Job{job("/in/a.txt"), job("/in/b.nope")}
	outcomes := w.Run(jobs)

	if len(completed) != 1 {
		t.Fatalf("OnBatchComplete fired %d times, want 1", len(completed))
	}
	if len(completed[0]) != len(outcomes) {
		t.Errorf("hook received %d outcomes, want %d", len(completed[0]), len(outcomes))
	}
}

// Every job fails and the batch still completes with a full outcome list.
func TestRunAllFailures(t *testing.T) {
	w := New(format.NewRegistry(), map[types.FormatKind]convert.Converter{}, Hooks{})

	outcomes := w.Run([]types.Job{job("/in/a.txt"), job("/in/b.png")})

	if len(outcomes) != 2 {
		t.Fatalf("got %d outcomes, want 2", len(outcomes))
	}
	for _, o := range outcomes {
		if o.Success {
			t.Errorf("job %s should fail with no converter registered", o.Job.SourcePath)
		}
		if o.Error == "" {
			t.Error("failed outcome should carry a message")
		}
	}
}

func TestStartDeliversOnChannel(t *testing.T) {
	converters, _ := testConverters()
	w := New(format.NewRegistry(), converters, Hooks{})

	select {
	case outcomes := <-w.Start([]types.Job{job("/in/a.txt")}):
		if len(outcomes) != 1 || !outcomes[0].Success {
			t.Errorf("unexpected outcomes: %+v", outcomes)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("batch did not complete")
	}
}
