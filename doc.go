// Copyright (C) 2026 The json17 Authors. All Rights Reserved.

// Package json17 implements an embeddable JSON document model: an in-memory
// value tree, a text serializer (dump), and a text parser (load).
//
// # Values
//
// The Value type is a tagged union over the six JSON kinds: null, bool,
// number, string, array, and object. The zero Value is null. Values are
// built by construction or by indexed access, which auto-vivifies a null
// value into the container being addressed:
//
//	var v json17.JSON
//	e, _ := v.Key("answer") // v is now an object
//	e.SetNumber(42)
//
// Object keys are unique and iterate in sort order; array indices are
// contiguous from zero. Read-only accessors are partial: they fail with
// ErrTypeMismatch, ErrIndexOutOfRange, or ErrKeyNotFound rather than
// converting, and the Ptr accessor forms return nil instead of failing.
//
// # Storage policies
//
// Value takes a type parameter selecting how composite payloads (strings,
// arrays, objects) are owned. Three policies are recognized:
//
//	Policy  | Storage              | Aliasing
//	------- | -------------------- | -------------------------------
//	Unique  | one owner, boxed     | none
//	Shared  | boxed                | explicit, via Share
//	Inline  | in place, unboxed    | impossible
//
// Under every policy, Clone is a deep, independent copy. Sharing is opt-in
// and explicit: only Share, which accepts a *Value[Shared] and therefore
// does not exist for the other policies, produces a second owner of the
// same payload. The aliases JSON, SharedJSON, and InlineJSON name the three
// instantiations.
//
// # Dumping and loading
//
// Dump walks a Value and writes JSON text to any io.Writer; DumpString
// returns the text directly. Layout is controlled by DumpOptions: compact,
// newline-separated, or indented by a configurable fill character.
//
//	err := v.Dump(os.Stdout, json17.DumpOptions{Indent: 4})
//
// Load parses one JSON document from a Source into a Value, and Parse does
// the same returning a fresh Value. Errors are reported as *ParseError with
// the byte offset of the failure. An explicit nesting-depth limit, settable
// through LoadOptions, guards against adversarially deep input.
//
// Two deliberate deviations from strict JSON are documented here rather
// than hidden: non-finite numbers serialize as null, and the EnsureASCII
// dump option escapes bytes, not code points. \uXXXX surrogate halves are
// not recombined during parsing; each decodes to U+FFFD.
package json17
