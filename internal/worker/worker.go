// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package worker sequences batch conversion: one job at a time, failures
// contained per job, outcomes reported in input order.
package worker

import (
	"fmt"

	"github.com/Ankit-Cherian/file-2-pdf-converter/internal/convert"
	"github.com/Ankit-Cherian/file-2-pdf-converter/internal/format"
	"github.com/Ankit-Cherian/file-2-pdf-converter/internal/progress"
	"github.com/Ankit-Cherian/file-2-pdf-converter/pkg/types"
)

// Hooks are the narrow callbacks through which any frontend observes a
// batch run. Nil hooks are skipped.
type Hooks struct {
	// OnProgress receives normalized progress events during conversion.
	OnProgress func(types.ProgressEvent)

	// OnBatchComplete receives the full outcome list after the last job.
	OnBatchComplete func([]types.Outcome)
}

// Worker orchestrates a batch of conversion jobs against a registry and a
// static dispatch table. Jobs run strictly sequentially: the external office
// tool is a shared stateful resource, and progress reporting is
// single-file-at-a-time.
type Worker struct {
	registry   *format.Registry
	converters map[types.FormatKind]convert.Converter
	hooks      Hooks
}

// New builds a worker over the given registry and dispatch table.
func New(registry *format.Registry, converters map[types.FormatKind]convert.Converter, hooks Hooks) *Worker {
	return &Worker{registry: registry, converters: converters, hooks: hooks}
}

// Run processes jobs in input order. A failing job is recorded and the batch
// continues; the outcome list always has one entry per job, in input order.
func (w *Worker) Run(jobs []types.Job) []types.Outcome {
	outcomes := make([]types.Outcome, 0, len(jobs))
	for _, job := range jobs {
		outcomes = append(outcomes, w.runJob(job))
	}
	if w.hooks.OnBatchComplete != nil {
		w.hooks.OnBatchComplete(outcomes)
	}
	return outcomes
}

// Start runs one batch on a dedicated background goroutine, keeping
// interactive callers responsive during long conversions. The outcome list
// is delivered on the returned channel after OnBatchComplete fires.
func (w *Worker) Start(jobs []types.Job) <-chan []types.Outcome {
	done := make(chan []types.Outcome, 1)
	go func() {
		done <- w.Run(jobs)
	}()
	return done
}

func (w *Worker) runJob(job types.Job) types.Outcome {
	kind, err := w.registry.Resolve(job.Ext)
	if err != nil {
		return failure(job, err)
	}

	conv, ok := w.converters[kind]
	if !ok {
		return failure(job, fmt.Errorf("no converter registered for kind %s", kind))
	}

	step := func(s, total int) {
		if w.hooks.OnProgress != nil {
			w.hooks.OnProgress(progress.Report(s, total, job.SourcePath))
		}
	}

	if err := conv.Convert(job, step); err != nil {
		return failure(job, err)
	}
	return types.Outcome{Job: job, Success: true}
}

func failure(job types.Job, err error) types.Outcome {
	return types.Outcome{Job: job, Error: err.Error()}
}
