// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package triage

import (
	"bytes"
	"compress/zlib"
	"errors"
	"fmt"
	"io"

	"github.com/sassoftware/viya-pdf-triage/logger"
)

// Stream decoding failures. All of them are non-fatal: the caller skips the
// affected stream for the affected check and carries on with the analysis.
var (
	ErrNotStream         = errors.New("object is not a stream")
	ErrUnsupportedFilter = errors.New("unsupported stream filter")
	ErrDecodeLimit       = errors.New("decoded stream exceeds size limit")
)

// decodeStream decompresses the content of the stream o into a byte buffer.
// Only the Flate/zlib filter is supported. The decompressed output is capped
// at limit bytes; stream content is untrusted, and an unbounded inflate is a
// decompression-bomb vector. Exceeding the cap, a corrupt deflate body, or an
// unrecognized filter all return an error instead of partial output.
func decodeStream(o Object, limit int64) ([]byte, error) {
	if o.Kind() != Stream {
		return nil, ErrNotStream
	}
	filter := o.Filter()
	if filter != "FlateDecode" {
		logger.Debug(fmt.Sprintf("decode: skipping filter %q", filter))
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFilter, filter)
	}

	zr, err := zlib.NewReader(bytes.NewReader(o.Raw()))
	if err != nil {
		return nil, fmt.Errorf("flate: %w", err)
	}
	defer zr.Close()

	var buf bytes.Buffer
	// Read one byte past the cap so overflow is distinguishable from an
	// output of exactly limit bytes.
	n, err := io.Copy(&buf, io.LimitReader(zr, limit+1))
	if err != nil {
		return nil, fmt.Errorf("flate: %w", err)
	}
	if n > limit {
		logger.Debug(fmt.Sprintf("decode: stream inflated past cap (limit=%d)", limit), true)
		return nil, fmt.Errorf("%w (limit=%d)", ErrDecodeLimit, limit)
	}
	return buf.Bytes(), nil
}
