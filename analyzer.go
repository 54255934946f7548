// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package triage

import (
	"fmt"
	"sync"

	"github.com/sassoftware/viya-pdf-triage/logger"
)

// An Analyzer scores documents against one validated configuration. The
// pattern alternations are compiled once at construction; Analyze itself
// can then never fail.
type Analyzer struct {
	cfg   *Config
	rules *ruleSet
}

// NewAnalyzer validates the config, compiles the pattern alternations and
// returns an Analyzer. Configuration problems (out-of-range fields,
// malformed pattern fragments) are returned here, before any document is
// analyzed; they are never absorbed per-object the way graph defects are.
func NewAnalyzer(cfg *Config) (*Analyzer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	rules, err := compileRules(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if cfg.Logger != nil {
		logger.SetLogger(cfg.Logger)
	}
	logger.Debug(fmt.Sprintf("Analyzer initialized: mode=%v, size_threshold=%d, max_decoded_bytes=%d",
		cfg.Mode, cfg.FileSizeThreshold, cfg.MaxDecodedBytes), true)

	return &Analyzer{cfg: cfg, rules: rules}, nil
}

// Analyze runs every indicator detector and the statistics pass over the
// document and aggregates their outputs into a Result.
//
// The detectors are independent and the document is immutable, so they run
// as parallel goroutines over the shared graph with no locking; each writes
// a disjoint set of Result fields. The WaitGroup is the barrier the severity
// aggregation waits behind. Running the same document twice produces an
// identical Result: every list-valued finding is collected in ascending
// object-id order.
func (a *Analyzer) Analyze(doc *Document) *Result {
	logger.Debug(fmt.Sprintf("Starting analysis: objects=%d size=%d", doc.NumObjects(), doc.Size()), true)

	result := &Result{}
	var streamFindings []string

	var wg sync.WaitGroup
	run := func(f func()) {
		wg.Add(1)
		go func() {
			defer wg.Done()
			f()
		}()
	}

	run(func() { result.HasJavaScript = hasScripting(doc) })
	run(func() { result.Scripts = scriptObjects(doc, a.cfg.MaxDecodedBytes) })
	run(func() { result.HasAutoAction = hasAutoAction(doc) })
	run(func() { result.HasObjectStreams = hasObjectStreams(doc) })
	run(func() { result.SuspiciousStrings = suspiciousText(doc, a.rules) })
	run(func() { result.HiddenContent = hasHiddenContent(doc) })
	run(func() { result.LargeFile = isOversized(doc, a.cfg.FileSizeThreshold) })
	run(func() { result.SuspiciousMetadata = hasSuspiciousMetadata(doc, a.rules) })
	run(func() { result.UnusualTypes = unusualTypes(doc) })
	run(func() { streamFindings = suspiciousStreamContent(doc, a.rules, a.cfg.MaxDecodedBytes) })
	run(func() { result.Statistics = collectStatistics(doc) })
	wg.Wait()

	// Stream findings extend the name/string findings; keeping them last
	// keeps the list order stable.
	result.SuspiciousStrings = append(result.SuspiciousStrings, streamFindings...)

	result.Score = severityScore(result)
	result.Severity = severityFor(result.Score)

	logger.Debug(fmt.Sprintf("Analysis completed: score=%d severity=%s", result.Score, result.Severity), true)
	return result
}
