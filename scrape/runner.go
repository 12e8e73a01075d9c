package scrape

import (
	"context"
	"net/url"
	"time"

	"github.com/fwojciec/refscrape"
	"github.com/fwojciec/refscrape/bloom"
	"golang.org/x/sync/errgroup"
)

// Func is the site-specific scrape function run for each task. It
// consumes the task's sections via the goquery helpers, refscrape.Clean,
// and a refscrape.Resolver, and acts on what it extracts.
type Func func(ctx context.Context, task *Task) error

// Result holds the outcome of a scrape run.
type Result struct {
	// Scraped counts URLs whose scrape function completed.
	Scraped int

	// Skipped counts URLs dropped by deduplication.
	Skipped int

	// Failed counts URLs that failed for any reason other than a 404.
	Failed int

	// Gone lists URLs whose source page returned 404. The caller decides
	// how to react, e.g. marking the source entity as removed.
	Gone []string
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during a scrape run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Error     error
}

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// taskResult holds the outcome of one URL.
type taskResult struct {
	url string
	err error
}

// Runner scrapes many catalog URLs with bounded concurrency. Each URL
// gets its own Task; the runner never shares task state between workers.
type Runner struct {
	// Fetcher used by every task.
	Fetcher refscrape.Fetcher

	// Limiter applies per-domain rate limits. Optional.
	Limiter refscrape.DomainLimiter

	// Dedup drops URLs already scheduled in this or a previous run.
	// Optional.
	Dedup *bloom.Filter

	// Concurrency bounds the worker pool. Defaults to 4.
	Concurrency int

	// RetryDelays are the backoff delays applied after rate-limited
	// attempts. Defaults to DefaultRetryDelays.
	RetryDelays []time.Duration

	// Log receives backoff messages. Optional.
	Log LogFunc
}

// Run scrapes every URL with fn. Rate-limited attempts are retried with
// backoff; 404s are terminal and collected in Result.Gone. Run returns
// the context's error if the run is canceled midway, along with the
// partial result.
func (r *Runner) Run(ctx context.Context, urls []string, fn Func, progress ProgressFunc) (*Result, error) {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}
	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	result := &Result{}

	// Deduplicate up front so Total reflects actual work.
	var pending []string
	for _, u := range urls {
		if r.Dedup != nil && r.Dedup.TestAndAdd(u) {
			result.Skipped++
			continue
		}
		pending = append(pending, u)
	}

	total := len(pending)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan taskResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, u := range pending {
			g.Go(func() error {
				if err := gctx.Err(); err != nil {
					resultCh <- taskResult{url: u, err: err}
					return nil
				}
				resultCh <- taskResult{url: u, err: r.runOne(gctx, u, fn, delays)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	completed := 0
	for res := range resultCh {
		completed++

		switch {
		case res.err == nil:
			result.Scraped++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressCompleted, Completed: completed, Total: total, URL: res.url})
			}
		case refscrape.ErrorCode(res.err) == refscrape.ENOTFOUND:
			result.Gone = append(result.Gone, res.url)
			if progress != nil {
				progress(ProgressEvent{Type: ProgressCompleted, Completed: completed, Total: total, URL: res.url, Error: res.err})
			}
		default:
			result.Failed++
			if progress != nil {
				progress(ProgressEvent{Type: ProgressFailed, Completed: completed, Total: total, URL: res.url, Error: res.err})
			}
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: completed, Total: total})
	}

	if err := ctx.Err(); err != nil {
		return result, err
	}
	return result, nil
}

// runOne scrapes a single URL, waiting on the domain limiter before each
// attempt. The task is shared across attempts so a successful fetch is
// never repeated.
func (r *Runner) runOne(ctx context.Context, u string, fn Func, delays []time.Duration) error {
	task := NewTask(r.Fetcher, u)
	domain := hostOf(u)

	return RunWithBackoff(ctx, func(ctx context.Context) error {
		if r.Limiter != nil && domain != "" {
			if err := r.Limiter.Wait(ctx, domain); err != nil {
				return err
			}
		}
		return fn(ctx, task)
	}, delays, r.Log)
}

func hostOf(rawurl string) string {
	parsed, err := url.Parse(rawurl)
	if err != nil {
		return ""
	}
	return parsed.Host
}
