package aoc

import (
	"context"
	"strconv"
	"sync"

	"github.com/zoobzio/metricz"
	"github.com/zoobzio/tracez"
	"golang.org/x/sync/errgroup"
)

// Observability constants for batch runs.
const (
	RunnerBatchesTotal  = metricz.Key("runner.batches.total")
	RunnerWorkersMax    = metricz.Key("runner.workers.max")
	RunnerWorkersActive = metricz.Key("runner.workers.active")

	RunnerBatchSpan = tracez.Key("runner.batch")

	RunnerTagJobCount    = tracez.Tag("runner.job_count")
	RunnerTagWorkerCount = tracez.Tag("runner.worker_count")
)

// Job is one part of one puzzle to solve. Sample jobs ignore Input and use
// the puzzle's embedded example.
type Job struct {
	Input  string
	Puzzle Puzzle
	Part   Part
	Sample bool
}

// RunAll solves jobs with at most workers running at once. Reports come
// back in job order.
// Every job runs to completion; if any failed, the error of the earliest
// failing job is returned with no reports.
func (r *Runner) RunAll(ctx context.Context, jobs []Job, workers int) ([]Report, error) {
	if workers <= 0 {
		workers = 1
	}
	r.metrics.Counter(RunnerBatchesTotal).Inc()
	r.metrics.Gauge(RunnerWorkersMax).Set(float64(workers))

	ctx, span := r.tracer.StartSpan(ctx, RunnerBatchSpan)
	defer span.Finish()
	span.SetTag(RunnerTagJobCount, strconv.Itoa(len(jobs)))
	span.SetTag(RunnerTagWorkerCount, strconv.Itoa(workers))

	reports := make([]Report, len(jobs))
	errs := make([]error, len(jobs))

	var active sync.Mutex
	running := 0
	setActive := func(delta int) {
		active.Lock()
		running += delta
		r.metrics.Gauge(RunnerWorkersActive).Set(float64(running))
		active.Unlock()
	}

	var eg errgroup.Group
	eg.SetLimit(workers)
	for i, job := range jobs {
		eg.Go(func() error {
			setActive(1)
			defer setActive(-1)

			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			if job.Sample {
				reports[i], errs[i] = r.RunSample(ctx, job.Puzzle, job.Part)
			} else {
				reports[i], errs[i] = r.Run(ctx, job.Puzzle, job.Part, job.Input)
			}
			return nil
		})
	}
	_ = eg.Wait()

	for i, err := range errs {
		if err != nil {
			span.SetTag(RunnerTagSuccess, "false")
			span.SetTag(RunnerTagError, err.Error())
			return nil, &JobError{Day: jobs[i].Puzzle.Day, Part: jobs[i].Part, Err: err}
		}
	}
	span.SetTag(RunnerTagSuccess, "true")
	return reports, nil
}
