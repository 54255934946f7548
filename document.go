// Copyright © 2026, SAS Institute Inc., Cary, NC, USA.  All Rights Reserved.
// SPDX-License-Identifier: BSD-3-Clause

// Package triage inspects the object graph of a parsed PDF document for
// heuristic indicators of weaponization.
//
// # Overview
//
// A PDF document is a graph of numbered objects. The upstream parser turns
// the raw byte stream into that graph; this package consumes the finished
// graph and never touches raw PDF syntax. Each indicator detector walks the
// graph looking for one class of threat signal (embedded scripts, automatic
// actions, object-stream obfuscation, hidden layers, and so on), and the
// individual signals are combined into a single deterministic severity score.
//
// Specifically, the engine operates on Objects, each of which has one of the
// following Kinds:
//
//	Null, for the null object.
//	Boolean, for a boolean value.
//	Number, for an integer or real number.
//	String, for a string constant.
//	Name, for a name constant (as in /Helvetica).
//	Array, for an array of objects.
//	Dict, for a dictionary of name-object pairs.
//	Stream, for an opaque data stream and associated header dictionary.
//	Reference, for an indirect reference to another object.
//
// The accessors on Object—Bool, Int64, Name, Key, and so on—return a view of
// the data as the given type. When there is no appropriate view, the accessor
// returns a zero result. For example, the Name accessor returns the empty
// string if called on an Object o for which o.Kind() != Name. Returning zero
// values this way makes it possible to traverse an untrusted graph quickly
// without writing any error checking: a malformed or unexpected object simply
// contributes nothing to a detector.
package triage

import "sort"

// A Kind specifies the kind of data underlying an Object.
type Kind int

// The PDF object kinds.
const (
	Null Kind = iota
	Boolean
	Number
	String
	Name
	Array
	Dict
	Stream
	Reference
)

// Dictionary maps name keys, written without the leading slash, to objects.
type Dictionary map[string]Object

// An Object is a single PDF object, such as a number, dictionary, or stream.
// The zero Object is a PDF null (Kind() == Null, IsNull() == true).
// The kind is fixed at construction; Objects are immutable.
type Object struct {
	kind Kind
	b    bool
	num  float64
	text []byte
	arr  []Object
	dict Dictionary
	raw  []byte
	ref  uint32
}

// NewBool returns a Boolean object.
func NewBool(b bool) Object {
	return Object{kind: Boolean, b: b}
}

// NewNumber returns a Number object.
func NewNumber(n float64) Object {
	return Object{kind: Number, num: n}
}

// NewString returns a String object carrying the given byte content.
func NewString(b []byte) Object {
	return Object{kind: String, text: b}
}

// NewName returns a Name object. The name is written without the leading
// slash, so the object for /JavaScript is NewName("JavaScript").
func NewName(n string) Object {
	return Object{kind: Name, text: []byte(n)}
}

// NewArray returns an Array object holding the given elements.
func NewArray(elems ...Object) Object {
	return Object{kind: Array, arr: elems}
}

// NewDict returns a Dict object for the given dictionary.
func NewDict(d Dictionary) Object {
	return Object{kind: Dict, dict: d}
}

// NewStream returns a Stream object with the given header dictionary and
// raw, possibly still compressed, content bytes. The declared filter is
// taken from the header's Filter entry.
func NewStream(hdr Dictionary, raw []byte) Object {
	return Object{kind: Stream, dict: hdr, raw: raw}
}

// NewReference returns a Reference to the object with the given id.
// References are not followed automatically; see Document.Deref.
func NewReference(id uint32) Object {
	return Object{kind: Reference, ref: id}
}

// Kind reports the kind of data underlying o.
func (o Object) Kind() Kind {
	return o.kind
}

// IsNull reports whether the object is a null. It is equivalent to
// Kind() == Null.
func (o Object) IsNull() bool {
	return o.kind == Null
}

// Bool returns o's boolean value.
// If o.Kind() != Boolean, Bool returns false.
func (o Object) Bool() bool {
	if o.kind != Boolean {
		return false
	}
	return o.b
}

// Float64 returns o's numeric value.
// If o.Kind() != Number, Float64 returns 0.
func (o Object) Float64() float64 {
	if o.kind != Number {
		return 0
	}
	return o.num
}

// Int64 returns o's numeric value truncated to an integer.
// If o.Kind() != Number, Int64 returns 0.
func (o Object) Int64() int64 {
	if o.kind != Number {
		return 0
	}
	return int64(o.num)
}

// RawBytes returns o's string content.
// If o.Kind() != String, RawBytes returns nil.
func (o Object) RawBytes() []byte {
	if o.kind != String {
		return nil
	}
	return o.text
}

// Text returns the content of a String or Name object as a string. The
// conversion is lossy for byte content that is not valid UTF-8, which is
// acceptable for substring matching but not for faithful reproduction.
// For other kinds, Text returns the empty string.
func (o Object) Text() string {
	if o.kind != String && o.kind != Name {
		return ""
	}
	return string(o.text)
}

// Name returns o's name value, without the leading slash.
// If o.Kind() != Name, Name returns the empty string.
func (o Object) Name() string {
	if o.kind != Name {
		return ""
	}
	return string(o.text)
}

// Key returns the object associated with the given key in the dictionary o.
// Like the argument to NewName, the key is written without a leading slash.
// If o is a stream, Key applies to the stream's header dictionary.
// If o.Kind() != Dict and o.Kind() != Stream, Key returns a null Object.
func (o Object) Key(key string) Object {
	if o.kind != Dict && o.kind != Stream {
		return Object{}
	}
	return o.dict[key]
}

// Has reports whether the dictionary o carries the given key.
// If o is a stream, Has applies to the stream's header dictionary.
// For all other kinds Has returns false.
func (o Object) Has(key string) bool {
	if o.kind != Dict && o.kind != Stream {
		return false
	}
	_, ok := o.dict[key]
	return ok
}

// Keys returns a sorted list of the keys in the dictionary o.
// If o is a stream, Keys applies to the stream's header dictionary.
// If o.Kind() != Dict and o.Kind() != Stream, Keys returns nil.
func (o Object) Keys() []string {
	if o.kind != Dict && o.kind != Stream {
		return nil
	}
	keys := make([]string, 0, len(o.dict))
	for k := range o.dict {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Index returns the i'th element in the array o.
// If o.Kind() != Array or i is outside the array bounds, Index returns a
// null Object.
func (o Object) Index(i int) Object {
	if o.kind != Array || i < 0 || i >= len(o.arr) {
		return Object{}
	}
	return o.arr[i]
}

// Len returns the length of the array o.
// If o.Kind() != Array, Len returns 0.
func (o Object) Len() int {
	if o.kind != Array {
		return 0
	}
	return len(o.arr)
}

// Raw returns the raw, possibly compressed, content of the stream o.
// If o.Kind() != Stream, Raw returns nil.
func (o Object) Raw() []byte {
	if o.kind != Stream {
		return nil
	}
	return o.raw
}

// Filter returns the declared filter name of the stream o: the header's
// Filter entry if it is a name, or the first element if it is an array.
// If o is not a stream or declares no filter, Filter returns the empty
// string.
func (o Object) Filter() string {
	if o.kind != Stream {
		return ""
	}
	f := o.dict["Filter"]
	switch f.Kind() {
	case Name:
		return f.Name()
	case Array:
		return f.Index(0).Name()
	}
	return ""
}

// Ref returns the object id a Reference points at.
// If o.Kind() != Reference, Ref returns 0.
func (o Object) Ref() uint32 {
	if o.kind != Reference {
		return 0
	}
	return o.ref
}

// A Document is the finished object graph of one PDF file: an immutable
// mapping from object id to Object plus the trailer dictionary, already
// resolved from raw bytes by the upstream parser. A Document is read-only
// for the entire analysis and safe for concurrent use.
type Document struct {
	objects map[uint32]Object
	ids     []uint32
	trailer Dictionary
	size    int64
}

// NewDocument builds a Document from an object map, a trailer dictionary and
// the total file size in bytes. The object map is copied, so the caller may
// reuse or modify its own map afterwards.
func NewDocument(objects map[uint32]Object, trailer Dictionary, size int64) *Document {
	m := make(map[uint32]Object, len(objects))
	ids := make([]uint32, 0, len(objects))
	for id, obj := range objects {
		m[id] = obj
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	if trailer == nil {
		trailer = Dictionary{}
	}
	return &Document{objects: m, ids: ids, trailer: trailer, size: size}
}

// NumObjects returns the number of objects in the graph.
func (d *Document) NumObjects() int {
	return len(d.ids)
}

// IDs returns the object ids in ascending order. Iterating the graph in this
// order keeps every list-valued finding deterministic across runs.
func (d *Document) IDs() []uint32 {
	return d.ids
}

// Object returns the object with the given id, or a null Object if the id is
// not present.
func (d *Document) Object(id uint32) Object {
	return d.objects[id]
}

// Trailer returns the trailer dictionary as a Dict object.
func (d *Document) Trailer() Object {
	return NewDict(d.trailer)
}

// Deref follows o while it is a Reference and returns the referenced object.
// A dangling or cyclic reference resolves to a null Object.
func (d *Document) Deref(o Object) Object {
	for hops := 0; o.Kind() == Reference; hops++ {
		if hops > 32 {
			return Object{}
		}
		o = d.objects[o.Ref()]
	}
	return o
}

// Info returns the document's Info dictionary resolved through the trailer,
// or a null Object if the trailer carries none.
func (d *Document) Info() Object {
	return d.Deref(d.trailer["Info"])
}

// Size returns the total document size in bytes as reported by the parser.
func (d *Document) Size() int64 {
	return d.size
}
