// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package triage

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteReport renders a human-readable analysis report to w.
func WriteReport(w io.Writer, path string, r *Result) error {
	var err error
	p := func(format string, args ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(w, format+"\n", args...)
		}
	}

	p("PDF Analysis Result: %s", path)
	p("- Contains JavaScript: %v", r.HasJavaScript)
	p("- Contains Auto Action: %v", r.HasAutoAction)
	p("- Contains Object Streams: %v", r.HasObjectStreams)
	p("- Suspicious strings found: %q", r.SuspiciousStrings)
	p("- Contains hidden content: %v", r.HiddenContent)
	p("- Large file size: %v", r.LargeFile)
	p("- Suspicious metadata: %v", r.SuspiciousMetadata)
	p("- Unusual objects: %q", r.UnusualTypes)
	for _, script := range r.Scripts {
		p("JavaScript object %d:", script.ID)
		p("%s", script.Source)
		p("--------------------")
	}
	p("- Object Statistics:")
	p("  Total Objects: %d", r.Statistics.TotalObjects)
	p("  Stream Objects: %d", r.Statistics.StreamObjects)
	p("  JavaScript Objects: %d", r.Statistics.ScriptObjects)
	p("  Object Stream Objects: %d", r.Statistics.ObjectStreamObjects)
	p("- Severity Score: %d", r.Score)
	p("")
	p("Overall assessment: %s (Severity: %s)", r.Verdict(), r.Severity)
	return err
}

// WriteJSON renders the result as indented JSON to w, for machine consumers.
func WriteJSON(w io.Writer, r *Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}
