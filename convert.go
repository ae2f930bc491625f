// Copyright (C) 2026 The json17 Authors. All Rights Reserved.

package json17

import "fmt"

// NewBool constructs a Value holding the bool b.
func NewBool[P Policy](b bool) Value[P] { return Value[P]{kind: BoolType, b: b} }

// NewNumber constructs a Value holding the number n.
func NewNumber[P Policy](n float64) Value[P] { return Value[P]{kind: NumberType, n: n} }

// NewString constructs a Value holding the string s.
func NewString[P Policy](s string) Value[P] {
	var v Value[P]
	*v.SetString() = s
	return v
}

// NewArray constructs a Value holding an array of the given elements.
func NewArray[P Policy](vals ...Value[P]) Value[P] {
	var v Value[P]
	a := v.SetArray()
	*a = append(*a, vals...)
	return v
}

// NewObject constructs a Value holding an object of the given members.
// Members with duplicate keys are resolved in favor of the last one given.
func NewObject[P Policy](members ...*Member[P]) Value[P] {
	var v Value[P]
	o := v.SetObject()
	for _, m := range members {
		o.Set(m.Key, m.Value)
	}
	return v
}

// ToValue converts a string, int, float, bool, nil, Array, Object, Member
// list, or Value into a Value under policy P. It panics if x does not have
// one of those types. Value and composite arguments are deep-copied, so the
// result never aliases its input.
func ToValue[P Policy](x any) Value[P] {
	switch t := x.(type) {
	case nil:
		return Value[P]{}
	case bool:
		return NewBool[P](t)
	case int:
		return NewNumber[P](float64(t))
	case int64:
		return NewNumber[P](float64(t))
	case float64:
		return NewNumber[P](t)
	case string:
		return NewString[P](t)
	case Value[P]:
		return t.Clone()
	case *Value[P]:
		return t.Clone()
	case Array[P]:
		return NewArray(t...).Clone()
	case Object[P]:
		v := NewObject[P]()
		for _, m := range t.members {
			v.cell().o.Set(m.Key, m.Value.Clone())
		}
		return v
	case []*Member[P]:
		return NewObject(t...).Clone()
	}
	panic(fmt.Sprintf("cannot convert %T to a value", x))
}

// Clone returns a deep copy of v. The copy is fully independent under every
// storage policy: mutating the copy never affects v, even when v was
// obtained through Share.
func (v Value[P]) Clone() Value[P] {
	switch v.kind {
	case StringType:
		return NewString[P](v.cell().s)
	case ArrayType:
		var w Value[P]
		c := w.reset(ArrayType)
		src := v.cell().a
		c.a = make(Array[P], len(src))
		for i := range src {
			c.a[i] = src[i].Clone()
		}
		return w
	case ObjectType:
		var w Value[P]
		c := w.reset(ObjectType)
		src := v.cell().o.members
		c.o.members = make([]*Member[P], len(src))
		for i, m := range src {
			c.o.members[i] = &Member[P]{Key: m.Key, Value: m.Value.Clone()}
		}
		return w
	default:
		return v
	}
}

// Equal reports whether v and w are structurally equal: the same kind, and
// equal scalar content or pairwise-equal children. Numbers compare with ==,
// so NaN is unequal to itself.
func (v *Value[P]) Equal(w *Value[P]) bool {
	if v.kind != w.kind {
		return false
	}
	switch v.kind {
	case NullType:
		return true
	case BoolType:
		return v.b == w.b
	case NumberType:
		return v.n == w.n
	case StringType:
		return v.cell().s == w.cell().s
	case ArrayType:
		va, wa := v.cell().a, w.cell().a
		if len(va) != len(wa) {
			return false
		}
		for i := range va {
			if !va[i].Equal(&wa[i]) {
				return false
			}
		}
		return true
	case ObjectType:
		vo, wo := v.cell().o.members, w.cell().o.members
		if len(vo) != len(wo) {
			return false
		}
		for i := range vo {
			if vo[i].Key != wo[i].Key || !vo[i].Value.Equal(&wo[i].Value) {
				return false
			}
		}
		return true
	}
	return false
}

// TakeString moves the string payload out of v, resetting v to null. It
// reports false and does not modify v if v does not hold a string, so a
// second take observes null and reports absence.
func (v *Value[P]) TakeString() (string, bool) {
	if v.kind != StringType {
		return "", false
	}
	s := v.cell().s
	v.reset(NullType)
	return s, true
}

// TakeArray moves the array payload out of v, resetting v to null.
func (v *Value[P]) TakeArray() (Array[P], bool) {
	if v.kind != ArrayType {
		return nil, false
	}
	a := v.cell().a
	v.reset(NullType)
	return a, true
}

// TakeObject moves the object payload out of v, resetting v to null.
func (v *Value[P]) TakeObject() (Object[P], bool) {
	if v.kind != ObjectType {
		return Object[P]{}, false
	}
	o := v.cell().o
	v.reset(NullType)
	return o, true
}

// Share returns a second Value owning the same composite payload as v,
// without consuming or modifying v: mutations made through either owner are
// visible through the other. Scalar values have no shared payload and are
// plainly copied. Share exists only under the Shared policy; unique and
// inline values cannot alias at all.
func Share(v *Value[Shared]) Value[Shared] {
	switch v.kind {
	case StringType, ArrayType, ObjectType:
		return Value[Shared]{kind: v.kind, p: v.p}
	default:
		return *v
	}
}
