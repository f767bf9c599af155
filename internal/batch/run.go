// Package batch evaluates files of expressions, one expression per line,
// fanning files out over a bounded worker group.
package batch

import (
	"bufio"
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"runtime"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"bigint/internal/bigint"
	"bigint/internal/calc"
	"bigint/internal/trace"
)

// Options configures Run.
type Options struct {
	Jobs     int          // max parallel files (0 = GOMAXPROCS)
	Base     int          // output base for integer results
	Progress ProgressSink // optional
	Cache    *DiskCache   // optional
}

// Run evaluates every file. Per-line failures are recorded in the results;
// the returned error is only set for invalid options or cancellation.
func Run(ctx context.Context, files []string, opts Options) ([]FileResult, error) {
	if opts.Base == 0 {
		opts.Base = 10
	}
	if opts.Base < bigint.MinBase || opts.Base > bigint.MaxBase {
		return nil, fmt.Errorf("%w: %d", bigint.ErrInvalidBase, opts.Base)
	}
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]FileResult, len(files))
	if len(files) == 0 {
		return results, nil
	}
	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageRead, Status: StatusQueued})
	}

	tr := trace.FromContext(ctx)
	parent := trace.CurrentSpan(ctx)

	// Indices are unique per goroutine, so results needs no lock.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			span := trace.Begin(tr, trace.ScopeFile, path, parent)
			start := time.Now()
			res := runFile(trace.WithSpan(gctx, span), path, opts)
			results[i] = res

			status := StatusDone
			switch {
			case res.Failed():
				status = StatusError
			case res.Cached:
				status = StatusCached
			}
			emit(opts.Progress, Event{File: path, Stage: StageEval, Status: status, Err: res.Err, Elapsed: time.Since(start)})
			span.WithExtra("lines", strconv.Itoa(len(res.Lines))).End(string(status))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

func runFile(ctx context.Context, path string, opts Options) FileResult {
	emit(opts.Progress, Event{File: path, Stage: StageRead, Status: StatusWorking})
	content, err := os.ReadFile(path)
	if err != nil {
		return FileResult{Path: path, Err: fmt.Errorf("failed to read %s: %w", path, err)}
	}

	key := cacheKey(content, opts.Base)
	if opts.Cache != nil {
		var payload DiskPayload
		ok, cacheErr := opts.Cache.Get(key, &payload)
		if cacheErr == nil && ok && payload.Schema == diskCacheSchemaVersion {
			return FileResult{Path: path, Lines: payload.Lines, Cached: true}
		}
	}

	emit(opts.Progress, Event{File: path, Stage: StageEval, Status: StatusWorking})
	lines := EvalLines(ctx, content, opts.Base)
	if opts.Cache != nil {
		// A cache write failure only costs a recomputation next time.
		_ = opts.Cache.Put(key, &DiskPayload{Schema: diskCacheSchemaVersion, Lines: lines}) //nolint:errcheck
	}
	return FileResult{Path: path, Lines: lines}
}

// EvalLines evaluates each line of content. Blank lines and lines starting
// with '#' are skipped.
func EvalLines(ctx context.Context, content []byte, base int) []LineResult {
	var out []LineResult
	sc := bufio.NewScanner(bytes.NewReader(content))
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	n := 0
	for sc.Scan() {
		n++
		expr := strings.TrimSpace(sc.Text())
		if expr == "" || strings.HasPrefix(expr, "#") {
			continue
		}
		lr := LineResult{Line: n, Expr: expr}
		res, err := calc.Eval(ctx, expr)
		if err == nil {
			lr.Output, err = res.Text(base)
		}
		if err != nil {
			lr.Err = err.Error()
		}
		out = append(out, lr)
	}
	if err := sc.Err(); err != nil {
		out = append(out, LineResult{Line: n + 1, Err: err.Error()})
	}
	return out
}

func cacheKey(content []byte, base int) Digest {
	h := sha256.New()
	h.Write(content)
	fmt.Fprintf(h, "\x00base=%d", base)
	var d Digest
	copy(d[:], h.Sum(nil))
	return d
}

func emit(sink ProgressSink, ev Event) {
	if sink != nil {
		sink.OnEvent(ev)
	}
}
