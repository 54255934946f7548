// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package triage

import (
	"fmt"
	"unicode/utf8"

	"github.com/sassoftware/viya-pdf-triage/logger"
)

// The indicator detectors. Each one is a pure, side-effect-free function of
// the Document (and, where noted, the compiled rule set): no detector
// depends on another's output, so the analyzer may run them in any order or
// all at once over the shared read-only graph. An object whose dictionary
// lacks the relevant key, or whose kind does not fit a check, simply
// contributes nothing; malformed objects are never an error here.

// streamFinding is the synthetic entry appended to the suspicious-strings
// list for each stream whose decoded content matches the suspicious
// alternation. It is not tied to an object id.
const streamFinding = "Suspicious content in stream"

// hasScripting reports whether any object's dictionary carries a script key
// (JS or JavaScript) or declares /JavaScript as its S action type.
func hasScripting(d *Document) bool {
	for _, id := range d.IDs() {
		obj := d.Object(id)
		if obj.Has("JS") || obj.Has("JavaScript") {
			return true
		}
		if obj.Key("S").Name() == "JavaScript" {
			return true
		}
	}
	return false
}

// scriptObjects extracts decoded script text from every stream whose header
// carries a script key. A stream with an unrecognized filter, a corrupt
// deflate body, or content that is not valid UTF-8 is skipped: presence is
// still reported by hasScripting off the dictionary key alone, but only
// exact text makes it into the extraction list.
func scriptObjects(d *Document, limit int64) []ScriptObject {
	var scripts []ScriptObject
	for _, id := range d.IDs() {
		obj := d.Object(id)
		if obj.Kind() != Stream {
			continue
		}
		if !obj.Has("JS") && !obj.Has("JavaScript") {
			continue
		}
		content, err := decodeStream(obj, limit)
		if err != nil {
			logger.Warn(fmt.Sprintf("scripts: skipping object %d: %v", id, err))
			continue
		}
		if !utf8.Valid(content) {
			logger.Debug(fmt.Sprintf("scripts: object %d decoded to non-UTF-8 content", id), true)
			continue
		}
		scripts = append(scripts, ScriptObject{ID: id, Source: string(content)})
	}
	return scripts
}

// hasAutoAction reports whether any object's dictionary carries an
// additional-actions (AA) or open-action (OpenAction) key. Either one lets
// the document run an action without user interaction.
func hasAutoAction(d *Document) bool {
	return anyObject(d, func(o Object) bool {
		return o.Has("AA") || o.Has("OpenAction")
	})
}

// hasObjectStreams reports whether any object's dictionary carries the
// ObjStm key, the marker for packing objects into a compressed container
// that hides them from naive inspection.
func hasObjectStreams(d *Document) bool {
	return anyObject(d, func(o Object) bool {
		return o.Has("ObjStm")
	})
}

// hasHiddenContent reports whether any object's dictionary carries an
// optional-content-group key (OCG or OCGs), the mechanism behind layers
// that render invisibly.
func hasHiddenContent(d *Document) bool {
	return anyObject(d, func(o Object) bool {
		return o.Has("OCG") || o.Has("OCGs")
	})
}

func anyObject(d *Document, pred func(Object) bool) bool {
	for _, id := range d.IDs() {
		if pred(d.Object(id)) {
			return true
		}
	}
	return false
}

// suspiciousText collects the decoded text of every Name or String object
// matching the configured suspicious alternation, in object-id order.
func suspiciousText(d *Document, rules *ruleSet) []string {
	var found []string
	for _, id := range d.IDs() {
		obj := d.Object(id)
		if obj.Kind() != Name && obj.Kind() != String {
			continue
		}
		if text := obj.Text(); matches(rules.suspicious, text) {
			found = append(found, text)
		}
	}
	return found
}

// suspiciousStreamContent scans the Flate-decoded content of every stream
// against the same suspicious alternation and returns one synthetic finding
// per matching stream. Streams that fail to decode are skipped. Lossy text
// reconstruction is fine here: the content is only pattern-matched, never
// reproduced.
func suspiciousStreamContent(d *Document, rules *ruleSet, limit int64) []string {
	var found []string
	for _, id := range d.IDs() {
		obj := d.Object(id)
		if obj.Kind() != Stream {
			continue
		}
		content, err := decodeStream(obj, limit)
		if err != nil {
			continue
		}
		if matches(rules.suspicious, string(content)) {
			logger.Debug(fmt.Sprintf("streams: suspicious content in object %d", id), true)
			found = append(found, streamFinding)
		}
	}
	return found
}

// isOversized reports whether the document size exceeds the configured
// threshold. Sizes exactly at the threshold are not flagged.
func isOversized(d *Document, threshold int64) bool {
	return d.Size() > threshold
}

// hasSuspiciousMetadata reports whether the Info dictionary has any
// string-valued entry that does NOT match the known-good producer
// alternation. Note the polarity: a document produced by anything outside
// the configured list is flagged, so virtually any Info dictionary from an
// unlisted tool counts as suspicious. A document without an Info dictionary
// is never flagged.
func hasSuspiciousMetadata(d *Document, rules *ruleSet) bool {
	info := d.Info()
	if info.Kind() != Dict {
		return false
	}
	for _, key := range info.Keys() {
		value := d.Deref(info.Key(key))
		if value.Kind() != String {
			continue
		}
		if !matches(rules.metadata, value.Text()) {
			return true
		}
	}
	return false
}

// commonTypes is the allow-list of /Type names that never count as unusual.
var commonTypes = map[string]bool{
	"Catalog":  true,
	"Pages":    true,
	"Page":     true,
	"Font":     true,
	"XObject":  true,
	"Metadata": true,
}

// unusualTypes collects, in object-id order, every /Type name outside the
// allow-list. A type name appearing on several objects is listed once per
// object.
func unusualTypes(d *Document) []string {
	var found []string
	for _, id := range d.IDs() {
		obj := d.Object(id)
		typeName := obj.Key("Type").Name()
		if typeName == "" || commonTypes[typeName] {
			continue
		}
		found = append(found, typeName)
	}
	return found
}
