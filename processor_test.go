// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package triage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeMinimalPDF writes a syntactically complete single-page PDF with a
// correct cross-reference table and returns its path.
func writeMinimalPDF(t *testing.T, dir, name string) string {
	t.Helper()

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")

	offsets := make([]int, 4)
	addObj := func(id int, body string) {
		offsets[id] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", id, body)
	}
	addObj(1, "<< /Type /Catalog /Pages 2 0 R >>")
	addObj(2, "<< /Type /Pages /Kids [3 0 R] /Count 1 >>")
	addObj(3, "<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << >> >>")

	xrefPos := buf.Len()
	buf.WriteString("xref\n0 4\n")
	buf.WriteString("0000000000 65535 f \n")
	for id := 1; id <= 3; id++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[id])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size 4 /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", xrefPos)

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func newTestProcessor(t *testing.T, mode AnalysisMode) *processor {
	t.Helper()
	cfg := NewDefaultConfig()
	cfg.Mode = mode
	proc, err := NewProcessor(cfg)
	require.NoError(t, err)
	return proc
}

func TestNewProcessor_InvalidConfig(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.SuspiciousPatterns = []string{"(broken"}
	_, err := NewProcessor(cfg)
	assert.Error(t, err)
}

func TestLoad_MinimalPDF(t *testing.T) {
	path := writeMinimalPDF(t, t.TempDir(), "sample.pdf")

	doc, err := Load(path)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, doc.NumObjects(), 3)
	assert.Positive(t, doc.Size())
	assert.Equal(t, "Catalog", doc.Deref(doc.Trailer().Key("Root")).Key("Type").Name())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.pdf"))
	assert.Error(t, err)
}

func TestLoad_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fake.pdf")
	require.NoError(t, os.WriteFile(path, []byte("not a pdf at all"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestProcessor_AnalyzeFile(t *testing.T) {
	path := writeMinimalPDF(t, t.TempDir(), "sample.pdf")
	proc := newTestProcessor(t, BestEffort)

	result, err := proc.AnalyzeFile(context.Background(), path)
	require.NoError(t, err)

	assert.Zero(t, result.Score, "a bare single-page document is benign")
	assert.Equal(t, SeverityLow, result.Severity)
	assert.Equal(t, "Likely benign", result.Verdict())
	assert.Empty(t, result.UnusualTypes, "Catalog, Pages and Page are all common types")
}

func TestProcessor_AnalyzeFiles_BestEffortIsolatesFailures(t *testing.T) {
	dir := t.TempDir()
	good1 := writeMinimalPDF(t, dir, "one.pdf")
	missing := filepath.Join(dir, "missing.pdf")
	good2 := writeMinimalPDF(t, dir, "two.pdf")

	proc := newTestProcessor(t, BestEffort)
	results, err := proc.AnalyzeFiles(context.Background(), []string{good1, missing, good2})
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, good1, results[0].Path)
	assert.NoError(t, results[0].Err)
	require.NotNil(t, results[0].Result)

	assert.Equal(t, missing, results[1].Path)
	assert.Error(t, results[1].Err, "the broken file fails alone")
	assert.Nil(t, results[1].Result)

	assert.Equal(t, good2, results[2].Path)
	assert.NoError(t, results[2].Err, "later files are unaffected")
	require.NotNil(t, results[2].Result)
}

func TestProcessor_AnalyzeFiles_StrictFailsBatch(t *testing.T) {
	dir := t.TempDir()
	good := writeMinimalPDF(t, dir, "one.pdf")
	missing := filepath.Join(dir, "missing.pdf")

	proc := newTestProcessor(t, Strict)
	_, err := proc.AnalyzeFiles(context.Background(), []string{good, missing})
	assert.Error(t, err)
}

func TestProcessor_AnalyzeFiles_Empty(t *testing.T) {
	proc := newTestProcessor(t, BestEffort)
	results, err := proc.AnalyzeFiles(context.Background(), nil)
	assert.NoError(t, err)
	assert.Nil(t, results)
}

func TestProcessor_AnalyzeFile_LoadError(t *testing.T) {
	proc := newTestProcessor(t, BestEffort)
	_, err := proc.AnalyzeFile(context.Background(), filepath.Join(t.TempDir(), "absent.pdf"))
	assert.Error(t, err)
}

func TestAdjustWorkerCount(t *testing.T) {
	proc := &processor{}

	assert.Equal(t, 1, proc.adjustWorkerCount(0, 10))
	assert.Equal(t, 2, proc.adjustWorkerCount(2, 10))
	assert.Equal(t, 3, proc.adjustWorkerCount(8, 3), "never more workers than files")
	assert.LessOrEqual(t, proc.adjustWorkerCount(64, 64), runtime.NumCPU())
}
