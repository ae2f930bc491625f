// Copyright (C) 2026 The json17 Authors. All Rights Reserved.

package json17

import (
	"iter"
	"slices"
	"strings"
)

// An Array is an ordered sequence of values.
type Array[P Policy] []Value[P]

// A Member is a single key-value pair belonging to an Object.
type Member[P Policy] struct {
	Key   string
	Value Value[P]
}

// Field constructs an object member with the given key and value.
func Field[P Policy](key string, value Value[P]) *Member[P] {
	return &Member[P]{Key: key, Value: value}
}

// An Object is a collection of key-value members. Keys are unique, and
// members are kept ordered by key, so iteration visits keys in sort order.
// The zero Object is empty and ready for use.
type Object[P Policy] struct {
	members []*Member[P]
}

// Len returns the number of members of o.
func (o *Object[P]) Len() int { return len(o.members) }

// search locates the member with the given key, returning its position and
// whether it is present. Absent keys report their insertion point.
func (o *Object[P]) search(key string) (int, bool) {
	return slices.BinarySearchFunc(o.members, key, func(m *Member[P], k string) int {
		return strings.Compare(m.Key, k)
	})
}

// Find returns the value of the member of o with the given key, or nil if
// the key is absent.
func (o *Object[P]) Find(key string) *Value[P] {
	if i, ok := o.search(key); ok {
		return &o.members[i].Value
	}
	return nil
}

// Has reports whether o has a member with the given key.
func (o *Object[P]) Has(key string) bool { _, ok := o.search(key); return ok }

// Entry returns the value of the member of o with the given key, inserting a
// null member first if the key is absent.
func (o *Object[P]) Entry(key string) *Value[P] {
	i, ok := o.search(key)
	if !ok {
		o.members = slices.Insert(o.members, i, &Member[P]{Key: key})
	}
	return &o.members[i].Value
}

// Set sets the member of o with the given key to value, replacing any
// existing member with that key, and returns the stored value.
func (o *Object[P]) Set(key string, value Value[P]) *Value[P] {
	e := o.Entry(key)
	*e = value
	return e
}

// Delete removes the member of o with the given key, and reports whether a
// member was removed.
func (o *Object[P]) Delete(key string) bool {
	i, ok := o.search(key)
	if ok {
		o.members = slices.Delete(o.members, i, i+1)
	}
	return ok
}

// Keys returns the keys of o in sort order.
func (o *Object[P]) Keys() []string {
	keys := make([]string, len(o.members))
	for i, m := range o.members {
		keys[i] = m.Key
	}
	return keys
}

// All ranges over the members of o in key order. The value pointers remain
// valid until the member is deleted.
func (o *Object[P]) All() iter.Seq2[string, *Value[P]] {
	return func(yield func(string, *Value[P]) bool) {
		for _, m := range o.members {
			if !yield(m.Key, &m.Value) {
				return
			}
		}
	}
}
