// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

package triage

import (
	"fmt"
	"os"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"github.com/sassoftware/viya-pdf-triage/logger"
)

// Load reads the PDF file at path through the upstream parser and converts
// its cross-reference table into a Document. Only load failures propagate;
// everything the parser managed to resolve ends up in the graph, and any
// defect inside the graph is left for the detectors to absorb.
func Load(path string) (*Document, error) {
	logger.Debug(fmt.Sprintf("Loading document: path=%s", path), true)
	ctx, err := api.ReadContextFile(path)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to read PDF: path=%s err=%v", path, err))
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	size := int64(0)
	if ctx.Read != nil {
		size = ctx.Read.FileSize
	}
	if size == 0 {
		if fi, err := os.Stat(path); err == nil {
			size = fi.Size()
		}
	}

	doc := fromContext(ctx, size)
	logger.Debug(fmt.Sprintf("Document loaded: path=%s objects=%d size=%d", path, doc.NumObjects(), size), true)
	return doc, nil
}

// fromContext converts the parser's resolved cross-reference table into the
// engine's object graph. Free and unresolved entries are dropped.
func fromContext(ctx *model.Context, size int64) *Document {
	objects := make(map[uint32]Object, len(ctx.Table))
	for id, entry := range ctx.Table {
		if id < 0 || entry == nil || entry.Free || entry.Object == nil {
			continue
		}
		objects[uint32(id)] = fromPDFObject(entry.Object)
	}

	trailer := Dictionary{"Size": NewNumber(float64(len(objects)))}
	if ctx.Root != nil {
		trailer["Root"] = NewReference(uint32(ctx.Root.ObjectNumber.Value()))
	}
	if ctx.Info != nil {
		trailer["Info"] = NewReference(uint32(ctx.Info.ObjectNumber.Value()))
	}

	return NewDocument(objects, trailer, size)
}

func fromPDFObject(o types.Object) Object {
	switch o := o.(type) {
	case types.Dict:
		return NewDict(fromPDFDict(o))
	case types.StreamDict:
		return NewStream(fromPDFDict(o.Dict), o.Raw)
	case types.ObjectStreamDict:
		return NewStream(fromPDFDict(o.Dict), o.Raw)
	case types.XRefStreamDict:
		return NewStream(fromPDFDict(o.Dict), o.Raw)
	case types.Array:
		elems := make([]Object, 0, len(o))
		for _, elem := range o {
			elems = append(elems, fromPDFObject(elem))
		}
		return NewArray(elems...)
	case types.Name:
		return NewName(o.Value())
	case types.StringLiteral:
		return NewString([]byte(o.Value()))
	case types.HexLiteral:
		b, err := o.Bytes()
		if err != nil {
			return NewString([]byte(o))
		}
		return NewString(b)
	case types.Integer:
		return NewNumber(float64(o.Value()))
	case types.Float:
		return NewNumber(o.Value())
	case types.Boolean:
		return NewBool(o.Value())
	case types.IndirectRef:
		return NewReference(uint32(o.ObjectNumber.Value()))
	default:
		return Object{}
	}
}

func fromPDFDict(d types.Dict) Dictionary {
	dict := make(Dictionary, len(d))
	for k, v := range d {
		if v == nil {
			dict[k] = Object{}
			continue
		}
		dict[k] = fromPDFObject(v)
	}
	return dict
}
