// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package triage

// A ScriptObject is one piece of embedded script recovered from the graph:
// the id of the stream object that carried it and its decoded source text.
type ScriptObject struct {
	ID     uint32 `json:"id"`
	Source string `json:"source"`
}

// Statistics are the structural counts collected in one pass over the graph.
// They are purely a function of the Document snapshot.
type Statistics struct {
	TotalObjects        int `json:"totalObjects"`
	StreamObjects       int `json:"streamObjects"`
	ScriptObjects       int `json:"scriptObjects"`
	ObjectStreamObjects int `json:"objectStreamObjects"`
}

// Severity is the qualitative bucket a severity score maps into.
type Severity string

const (
	SeverityLow      Severity = "Low"
	SeverityMedium   Severity = "Medium"
	SeverityHigh     Severity = "High"
	SeverityCritical Severity = "Critical"
)

// A Result is the terminal value of one analysis run. It is owned solely by
// the caller after return; the engine keeps no reference to it.
type Result struct {
	HasJavaScript      bool           `json:"hasJavascript"`
	HasAutoAction      bool           `json:"hasAutoAction"`
	HasObjectStreams   bool           `json:"hasObjectStreams"`
	SuspiciousStrings  []string       `json:"suspiciousStrings,omitempty"`
	HiddenContent      bool           `json:"hiddenContent"`
	LargeFile          bool           `json:"largeFile"`
	SuspiciousMetadata bool           `json:"suspiciousMetadata"`
	UnusualTypes       []string       `json:"unusualTypes,omitempty"`
	Scripts            []ScriptObject `json:"scripts,omitempty"`
	Statistics         Statistics     `json:"statistics"`
	Score              int            `json:"score"`
	Severity           Severity       `json:"severity"`
}

// Verdict returns the qualitative assessment for the result:
// "Potentially malicious" for any positive score, "Likely benign" otherwise.
func (r *Result) Verdict() string {
	if r.Score > 0 {
		return "Potentially malicious"
	}
	return "Likely benign"
}
