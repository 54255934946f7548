// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package triage

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeverityScore_Weights(t *testing.T) {
	tests := []struct {
		name   string
		result Result
		want   int
	}{
		{"empty", Result{}, 0},
		{"javascript", Result{HasJavaScript: true}, 3},
		{"auto action", Result{HasAutoAction: true}, 2},
		{"object streams", Result{HasObjectStreams: true}, 2},
		{"suspicious strings count", Result{SuspiciousStrings: []string{"a", "b", "c"}}, 3},
		{"hidden content", Result{HiddenContent: true}, 2},
		{"large file", Result{LargeFile: true}, 1},
		{"metadata", Result{SuspiciousMetadata: true}, 2},
		{"unusual types count", Result{UnusualTypes: []string{"EmbeddedFile"}}, 1},
		{"script object count doubles", Result{Statistics: Statistics{ScriptObjects: 2}}, 4},
		{"objstm object count", Result{Statistics: Statistics{ObjectStreamObjects: 3}}, 3},
		{
			"everything at once",
			Result{
				HasJavaScript:      true,
				HasAutoAction:      true,
				HasObjectStreams:   true,
				SuspiciousStrings:  []string{"eval"},
				HiddenContent:      true,
				LargeFile:          true,
				SuspiciousMetadata: true,
				UnusualTypes:       []string{"EmbeddedFile", "Launch"},
				Statistics:         Statistics{ScriptObjects: 1, ObjectStreamObjects: 1},
			},
			3 + 2 + 2 + 1 + 2 + 1 + 2 + 2 + 2 + 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, severityScore(&tt.result))
		})
	}
}

func TestSeverityScore_IsPure(t *testing.T) {
	r := Result{HasJavaScript: true, SuspiciousStrings: []string{"x"}}
	first := severityScore(&r)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, severityScore(&r))
	}
}

func TestSeverityFor_TierBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  Severity
	}{
		{0, SeverityLow},
		{2, SeverityLow},
		{3, SeverityMedium},
		{5, SeverityMedium},
		{6, SeverityHigh},
		{10, SeverityHigh},
		{11, SeverityCritical},
		{100, SeverityCritical},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, severityFor(tt.score), "score %d", tt.score)
	}
}

func TestVerdict(t *testing.T) {
	benign := Result{}
	assert.Equal(t, "Likely benign", benign.Verdict())

	flagged := Result{Score: 1}
	assert.Equal(t, "Potentially malicious", flagged.Verdict())
}
