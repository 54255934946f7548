// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package triage

// Indicator weights. Scripting is the strongest single signal; the
// count-based terms let heavily obfuscated or script-dense documents
// escalate past the boolean indicators.
const (
	weightJavaScript    = 3
	weightAutoAction    = 2
	weightObjectStreams = 2
	weightHidden        = 2
	weightLargeFile     = 1
	weightMetadata      = 2
	weightScriptObject  = 2
)

// severityScore combines all detector outputs and statistics into one
// deterministic number. It is a pure function of the Result fields: the same
// Result always yields the same score, regardless of how the detectors ran.
func severityScore(r *Result) int {
	score := 0
	if r.HasJavaScript {
		score += weightJavaScript
	}
	if r.HasAutoAction {
		score += weightAutoAction
	}
	if r.HasObjectStreams {
		score += weightObjectStreams
	}
	score += len(r.SuspiciousStrings)
	if r.HiddenContent {
		score += weightHidden
	}
	if r.LargeFile {
		score += weightLargeFile
	}
	if r.SuspiciousMetadata {
		score += weightMetadata
	}
	score += len(r.UnusualTypes)
	score += r.Statistics.ScriptObjects * weightScriptObject
	score += r.Statistics.ObjectStreamObjects
	return score
}

// severityFor maps a score onto its tier. The tiers are closed, contiguous
// and non-overlapping: 0–2 Low, 3–5 Medium, 6–10 High, 11+ Critical.
func severityFor(score int) Severity {
	switch {
	case score <= 2:
		return SeverityLow
	case score <= 5:
		return SeverityMedium
	case score <= 10:
		return SeverityHigh
	default:
		return SeverityCritical
	}
}
