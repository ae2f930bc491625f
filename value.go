// Copyright (C) 2026 The json17 Authors. All Rights Reserved.

package json17

import (
	"fmt"
)

// Kind is the type of the discriminant of a Value.
type Kind byte

// Constants defining the valid Kind values.
const (
	NullType   Kind = iota // the null constant
	BoolType               // true or false
	NumberType             // a floating-point number
	StringType             // a string
	ArrayType              // an ordered sequence of values
	ObjectType             // a mapping from string keys to values
)

var kindStr = [...]string{
	NullType:   "null",
	BoolType:   "bool",
	NumberType: "number",
	StringType: "string",
	ArrayType:  "array",
	ObjectType: "object",
}

func (k Kind) String() string {
	if int(k) >= len(kindStr) {
		return fmt.Sprintf("Kind(%d)", byte(k))
	}
	return kindStr[k]
}

// Unique is the storage policy under which each composite payload has exactly
// one owner. Clone deep-copies composites, and no aliasing operation exists.
type Unique struct{}

// Shared is the storage policy under which a composite payload may have
// additional owners acquired explicitly through Share. Clone still
// deep-copies; sharing is opt-in, never implicit.
type Shared struct{}

// Inline is the storage policy under which composite payloads are stored
// directly in the Value with no indirection. Aliasing is impossible, and
// ownership operations are synonyms for plain copies.
type Inline struct{}

func (Unique) inlineStorage() bool { return false }
func (Shared) inlineStorage() bool { return false }
func (Inline) inlineStorage() bool { return true }

// Policy is the constraint satisfied by the recognized storage policies.
// The policy is fixed at instantiation time, so a Value carries no runtime
// strategy state; capabilities that exist only under one policy (see Share)
// are gated by the type system rather than by a runtime check.
type Policy interface {
	Unique | Shared | Inline

	inlineStorage() bool
}

// isInline reports whether policy P stores composite payloads in place.
func isInline[P Policy]() bool { var p P; return p.inlineStorage() }

// A cell holds the composite payload of a Value. Exactly one field is in use,
// as selected by the discriminant of the owning Value.
type cell[P Policy] struct {
	s string
	a Array[P]
	o Object[P]
}

// A Value is a JSON document node: a tagged union over null, bool, number,
// string, array, and object. The zero Value is null. The type parameter
// selects how string, array, and object payloads are owned; null, bool, and
// number are held inline under every policy.
//
// Values form trees. Plain Go assignment of a Value is a shallow copy and is
// not part of the ownership contract; use Clone to obtain an independent deep
// copy, or Share (Shared policy only) to obtain a second owner of the same
// composite payload.
type Value[P Policy] struct {
	kind Kind
	b    bool
	n    float64
	p    *cell[P] // boxed payload under the Unique and Shared policies
	q    cell[P]  // in-place payload under the Inline policy
}

// Convenience names for the three instantiations of Value.
type (
	JSON       = Value[Unique]
	SharedJSON = Value[Shared]
	InlineJSON = Value[Inline]
)

// cell returns the payload cell of v. It must only be called while the
// discriminant is a composite kind.
func (v *Value[P]) cell() *cell[P] {
	if isInline[P]() {
		return &v.q
	}
	return v.p
}

// reset replaces the contents of v with a fresh empty value of kind k and
// returns the payload cell, or nil for scalar kinds.
func (v *Value[P]) reset(k Kind) *cell[P] {
	v.kind = k
	v.b = false
	v.n = 0
	v.q = cell[P]{}
	v.p = nil
	if k < StringType {
		return nil
	}
	if isInline[P]() {
		return &v.q
	}
	v.p = new(cell[P])
	return v.p
}

// Type returns the kind of value currently held by v. It never fails.
func (v *Value[P]) Type() Kind { return v.kind }

// IsNull reports whether v holds null.
func (v *Value[P]) IsNull() bool { return v.kind == NullType }

// IsBool reports whether v holds a bool.
func (v *Value[P]) IsBool() bool { return v.kind == BoolType }

// IsNumber reports whether v holds a number.
func (v *Value[P]) IsNumber() bool { return v.kind == NumberType }

// IsString reports whether v holds a string.
func (v *Value[P]) IsString() bool { return v.kind == StringType }

// IsArray reports whether v holds an array.
func (v *Value[P]) IsArray() bool { return v.kind == ArrayType }

// IsObject reports whether v holds an object.
func (v *Value[P]) IsObject() bool { return v.kind == ObjectType }

func typeError(want, got Kind) error {
	return fmt.Errorf("%w: want %v, have %v", ErrTypeMismatch, want, got)
}

// Bool returns the bool held by v, or ErrTypeMismatch.
func (v *Value[P]) Bool() (bool, error) {
	if v.kind != BoolType {
		return false, typeError(BoolType, v.kind)
	}
	return v.b, nil
}

// Number returns the number held by v, or ErrTypeMismatch.
func (v *Value[P]) Number() (float64, error) {
	if v.kind != NumberType {
		return 0, typeError(NumberType, v.kind)
	}
	return v.n, nil
}

// Int returns the number held by v truncated to int, or ErrTypeMismatch.
func (v *Value[P]) Int() (int, error) {
	n, err := v.Number()
	return int(n), err
}

// Str returns the string held by v, or ErrTypeMismatch.
func (v *Value[P]) Str() (string, error) {
	if v.kind != StringType {
		return "", typeError(StringType, v.kind)
	}
	return v.cell().s, nil
}

// Arr returns a mutable handle on the array held by v, or ErrTypeMismatch.
func (v *Value[P]) Arr() (*Array[P], error) {
	if v.kind != ArrayType {
		return nil, typeError(ArrayType, v.kind)
	}
	return &v.cell().a, nil
}

// Obj returns a mutable handle on the object held by v, or ErrTypeMismatch.
func (v *Value[P]) Obj() (*Object[P], error) {
	if v.kind != ObjectType {
		return nil, typeError(ObjectType, v.kind)
	}
	return &v.cell().o, nil
}

// BoolPtr returns a pointer to the bool held by v, or nil if v does not hold
// a bool. The pointer stays valid until v changes kind.
func (v *Value[P]) BoolPtr() *bool {
	if v.kind != BoolType {
		return nil
	}
	return &v.b
}

// NumberPtr returns a pointer to the number held by v, or nil.
func (v *Value[P]) NumberPtr() *float64 {
	if v.kind != NumberType {
		return nil
	}
	return &v.n
}

// StringPtr returns a pointer to the string held by v, or nil.
func (v *Value[P]) StringPtr() *string {
	if v.kind != StringType {
		return nil
	}
	return &v.cell().s
}

// ArrayPtr returns a pointer to the array held by v, or nil.
func (v *Value[P]) ArrayPtr() *Array[P] {
	if v.kind != ArrayType {
		return nil
	}
	return &v.cell().a
}

// ObjectPtr returns a pointer to the object held by v, or nil.
func (v *Value[P]) ObjectPtr() *Object[P] {
	if v.kind != ObjectType {
		return nil
	}
	return &v.cell().o
}

// SetNull replaces the contents of v with null.
func (v *Value[P]) SetNull() { v.reset(NullType) }

// SetBool replaces the contents of v with the bool b.
func (v *Value[P]) SetBool(b bool) { v.reset(BoolType); v.b = b }

// SetNumber replaces the contents of v with the number n.
func (v *Value[P]) SetNumber(n float64) { v.reset(NumberType); v.n = n }

// SetString replaces the contents of v with an empty string, regardless of
// its previous kind, and returns a pointer to the new string.
func (v *Value[P]) SetString() *string { return &v.reset(StringType).s }

// SetArray replaces the contents of v with an empty array, regardless of its
// previous kind, and returns a pointer to the new array.
func (v *Value[P]) SetArray() *Array[P] { return &v.reset(ArrayType).a }

// SetObject replaces the contents of v with an empty object, regardless of
// its previous kind, and returns a pointer to the new object.
func (v *Value[P]) SetObject() *Object[P] { return &v.reset(ObjectType).o }

// Index returns a mutable handle on element i of the array held by v,
// growing the array as needed. If v is null it becomes an array of length
// i+1 with all elements null; if v is an array shorter than i+1 it is
// extended with nulls. Any other kind fails with ErrTypeMismatch, and a
// negative index fails with ErrIndexOutOfRange.
//
// The returned pointer stays valid until the array grows again.
func (v *Value[P]) Index(i int) (*Value[P], error) {
	if i < 0 {
		return nil, fmt.Errorf("%w: index %d", ErrIndexOutOfRange, i)
	}
	switch v.kind {
	case NullType:
		c := v.reset(ArrayType)
		c.a = make(Array[P], i+1)
		return &c.a[i], nil
	case ArrayType:
		c := v.cell()
		if i >= len(c.a) {
			c.a = append(c.a, make(Array[P], i+1-len(c.a))...)
		}
		return &c.a[i], nil
	default:
		return nil, typeError(ArrayType, v.kind)
	}
}

// At returns element i of the array held by v without modifying v. It fails
// with ErrTypeMismatch if v is not an array, or ErrIndexOutOfRange if i is
// outside the array.
func (v *Value[P]) At(i int) (*Value[P], error) {
	if v.kind != ArrayType {
		return nil, typeError(ArrayType, v.kind)
	}
	c := v.cell()
	if i < 0 || i >= len(c.a) {
		return nil, fmt.Errorf("%w: index %d, length %d", ErrIndexOutOfRange, i, len(c.a))
	}
	return &c.a[i], nil
}

// Key returns a mutable handle on the member of the object held by v with
// the given key, inserting a null member if the key is absent. If v is null
// it becomes an empty object first. Any other kind fails with
// ErrTypeMismatch.
func (v *Value[P]) Key(key string) (*Value[P], error) {
	switch v.kind {
	case NullType:
		return v.reset(ObjectType).o.Entry(key), nil
	case ObjectType:
		return v.cell().o.Entry(key), nil
	default:
		return nil, typeError(ObjectType, v.kind)
	}
}

// Find returns the member of the object held by v with the given key,
// without modifying v. It fails with ErrTypeMismatch if v is not an object,
// or ErrKeyNotFound if the key is absent.
func (v *Value[P]) Find(key string) (*Value[P], error) {
	if v.kind != ObjectType {
		return nil, typeError(ObjectType, v.kind)
	}
	if m := v.cell().o.Find(key); m != nil {
		return m, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
}

// Append appends values to the array held by v. A null v becomes an empty
// array first; any kind other than null or array fails with ErrTypeMismatch.
func (v *Value[P]) Append(vals ...Value[P]) error {
	switch v.kind {
	case NullType:
		v.reset(ArrayType)
	case ArrayType:
	default:
		return typeError(ArrayType, v.kind)
	}
	c := v.cell()
	c.a = append(c.a, vals...)
	return nil
}

// Len returns the number of elements of an array, the number of members of
// an object, or the length in bytes of a string. For all other kinds it
// returns 0.
func (v *Value[P]) Len() int {
	switch v.kind {
	case StringType:
		return len(v.cell().s)
	case ArrayType:
		return len(v.cell().a)
	case ObjectType:
		return v.cell().o.Len()
	default:
		return 0
	}
}
