// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package triage

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/sassoftware/viya-pdf-triage/logger"
	"golang.org/x/sync/semaphore"
)

// Processor defines the contract for analyzing PDF files on disk.
type Processor interface {
	AnalyzeFile(ctx context.Context, path string) (*Result, error)
	AnalyzeFiles(ctx context.Context, paths []string) ([]FileResult, error)
}

// A FileResult pairs one file of a batch with its analysis outcome. In
// best-effort mode a file that failed to load carries its error here and the
// rest of the batch is unaffected.
type FileResult struct {
	Path   string
	Result *Result
	Err    error
}

// processor manages file analysis with concurrency control. Each file's
// pipeline (load, detect, score) is an independent unit of work; no state is
// shared across files beyond the read-only analyzer.
type processor struct {
	cfg      *Config
	analyzer *Analyzer
	sem      *semaphore.Weighted
}

// NewProcessor validates the config and creates a new processor. Invalid
// configuration, including malformed pattern fragments, is reported here and
// never deferred to analysis time.
func NewProcessor(cfg *Config) (*processor, error) {
	analyzer, err := NewAnalyzer(cfg)
	if err != nil {
		return nil, err
	}

	logger.Debug(fmt.Sprintf("Processor initialized: mode=%v, max_concurrent_pdfs=%d",
		cfg.Mode, cfg.MaxConcurrentPDFs), true)

	return &processor{
		cfg:      cfg,
		analyzer: analyzer,
		sem:      semaphore.NewWeighted(int64(cfg.MaxConcurrentPDFs)),
	}, nil
}

// AnalyzeFile loads and analyzes a single file, respecting the concurrent
// file limit.
func (p *processor) AnalyzeFile(ctx context.Context, path string) (*Result, error) {
	if err := p.acquireSlot(ctx); err != nil {
		logger.Debug(fmt.Sprintf("Failed to acquire slot: err=%v", err), true)
		return nil, err
	}
	defer p.sem.Release(1)
	logger.Debug(fmt.Sprintf("Slot acquired for analysis: path=%s", path), true)

	doc, err := Load(path)
	if err != nil {
		return nil, err
	}
	return p.analyzer.Analyze(doc), nil
}

// AnalyzeFiles fans the batch out over a worker pool and returns one
// FileResult per input path, in input order.
//
// In best-effort mode a file that cannot be loaded is reported in its own
// slot and the remaining files are still analyzed. In strict mode the first
// failure aborts the batch and is returned as the error.
func (p *processor) AnalyzeFiles(ctx context.Context, paths []string) ([]FileResult, error) {
	logger.Debug(fmt.Sprintf("Starting batch analysis: files=%d", len(paths)), true)
	if len(paths) == 0 {
		return nil, nil
	}

	numWorkers := p.adjustWorkerCount(p.cfg.MaxConcurrentPDFs, len(paths))
	jobs := make(chan int, len(paths))
	results := make([]FileResult, len(paths))

	var wg sync.WaitGroup
	p.startWorkers(ctx, paths, jobs, results, numWorkers, &wg)
	p.feedJobs(ctx, len(paths), jobs)
	close(jobs)
	wg.Wait()

	if p.cfg.Mode == Strict {
		for _, res := range results {
			if res.Err != nil {
				logger.Debug(fmt.Sprintf("Strict mode error — failing batch: path=%s err=%v", res.Path, res.Err))
				return nil, fmt.Errorf("strict mode failed on %s: %w", res.Path, res.Err)
			}
		}
	}

	logger.Debug(fmt.Sprintf("Batch analysis completed: files=%d", len(paths)), true)
	return results, nil
}

func (p *processor) startWorkers(ctx context.Context, paths []string, jobs <-chan int, results []FileResult, numWorkers int, wg *sync.WaitGroup) {
	logger.Debug(fmt.Sprintf("Spawning workers: num_workers=%d", numWorkers), true)
	for w := 1; w <= numWorkers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Debug(fmt.Sprintf("Worker started: id=%d", id), true)
			for i := range jobs {
				path := paths[i]
				result, err := p.AnalyzeFile(ctx, path)
				results[i] = FileResult{Path: path, Result: result, Err: err}
				if err != nil {
					logger.Warn(fmt.Sprintf("Worker: analysis error: worker_id=%d path=%s err=%v", id, path, err))
				} else {
					logger.Debug(fmt.Sprintf("Worker: file analyzed: worker_id=%d path=%s score=%d", id, path, result.Score), true)
				}
			}
			logger.Debug(fmt.Sprintf("Worker finished: id=%d", id), true)
		}(w)
	}
}

func (p *processor) feedJobs(ctx context.Context, total int, jobs chan<- int) error {
	for i := 0; i < total; i++ {
		select {
		case <-ctx.Done():
			logger.Debug("Context cancelled while feeding jobs", true)
			return ctx.Err()
		case jobs <- i:
		}
	}
	logger.Debug(fmt.Sprintf("All jobs queued: total_files=%d", total), true)
	return nil
}

func (p *processor) acquireSlot(ctx context.Context) error {
	if err := p.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("acquire slot: %w", err)
	}
	return nil
}

func (p *processor) adjustWorkerCount(maxWorkers, jobCount int) int {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	if maxWorkers > runtime.NumCPU() {
		maxWorkers = runtime.NumCPU()
	}
	if maxWorkers > jobCount {
		maxWorkers = jobCount
	}
	logger.Debug(fmt.Sprintf("Adjusted worker count: workers=%d", maxWorkers), true)
	return maxWorkers
}
