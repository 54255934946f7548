// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package triage

// collectStatistics tallies the structural counts in a single pass over the
// graph. The counts are additive and order-independent, so any traversal
// order yields the same Statistics.
func collectStatistics(d *Document) Statistics {
	stats := Statistics{TotalObjects: d.NumObjects()}
	for _, id := range d.IDs() {
		obj := d.Object(id)
		if obj.Kind() == Stream {
			stats.StreamObjects++
		}
		if obj.Has("JS") || obj.Has("JavaScript") {
			stats.ScriptObjects++
		}
		if obj.Has("ObjStm") {
			stats.ObjectStreamObjects++
		}
	}
	return stats
}
