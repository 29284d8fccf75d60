// Package value implements the DOM: a tree of typed value nodes built
// from a token array, together with editing operations for assembling and
// mutating trees by hand. Every owned byte buffer (string payloads and
// object keys) is acquired through a config.Config and must be released
// through it exactly once; Value nodes and their item/pair slices are
// ordinary Go allocations.
package value

import (
	"github.com/cwbudde/go-jfes/internal/config"
	"github.com/cwbudde/go-jfes/internal/token"
)

// Kind is the tag of a Value. It mirrors token.Type: every token emitted
// by the scanner maps directly onto one DOM value variant.
type Kind = token.Type

// Pair is one object entry: an owned key buffer and an owned child value.
// Keys are not required to be unique on input; editing operations treat a
// pre-existing key as an in-place replacement.
type Pair struct {
	key   []byte // full allocation, includes a trailing NUL the length excludes
	klen  int
	Value *Value
}

// Key returns the pair's key bytes (length-authoritative, excludes the
// trailing NUL).
func (p *Pair) Key() []byte { return p.key[:p.klen] }

// Value is a node in the DOM tree. It is strictly an arborescence: no
// back references, no shared ownership. A value produced by the parser or
// assembled by the editor owns all of its transitive children.
type Value struct {
	Kind Kind

	boolVal bool
	intVal  int64
	dblVal  float64

	str  []byte // full allocation, includes a trailing NUL the length excludes
	slen int

	items []*Value
	pairs []Pair
}

// BoolValue returns the boolean payload (zero value if Kind != Boolean).
func (v *Value) BoolValue() bool { return v.boolVal }

// IntValue returns the integer payload (zero value if Kind != Integer).
func (v *Value) IntValue() int64 { return v.intVal }

// DoubleValue returns the double payload (zero value if Kind != Double).
func (v *Value) DoubleValue() float64 { return v.dblVal }

// StringValue returns the string payload's bytes, length-authoritative.
func (v *Value) StringValue() []byte {
	if v.str == nil {
		return nil
	}
	return v.str[:v.slen]
}

// ArrayLen returns the number of elements (zero if Kind != Array).
func (v *Value) ArrayLen() int { return len(v.items) }

// ArrayItems returns the array's owned children, in order. The returned
// slice aliases internal storage and must not be mutated by the caller.
func (v *Value) ArrayItems() []*Value { return v.items }

// ObjectLen returns the number of key/value pairs (zero if Kind != Object).
func (v *Value) ObjectLen() int { return len(v.pairs) }

// ObjectPairs returns the object's owned pairs, in insertion order. The
// returned slice aliases internal storage and must not be mutated.
func (v *Value) ObjectPairs() []Pair { return v.pairs }

func allocString(cfg *config.Config, bytes []byte) ([]byte, int, bool) {
	buf, ok := cfg.Allocate(len(bytes) + 1)
	if !ok {
		return nil, 0, false
	}
	copy(buf, bytes)
	buf[len(bytes)] = 0
	return buf, len(bytes), true
}

// Free releases v's transitive children, post-order, then v's own owned
// buffers. It does not release v itself: the root Value's node record is
// owned by the caller, only its payload allocations flow through cfg.
func (v *Value) Free(cfg *config.Config) {
	if v == nil {
		return
	}
	switch v.Kind {
	case token.String:
		if v.str != nil {
			cfg.Release(v.str)
			v.str = nil
		}
	case token.Array:
		for _, item := range v.items {
			item.Free(cfg)
		}
		v.items = nil
	case token.Object:
		for i := range v.pairs {
			v.pairs[i].Value.Free(cfg)
			if v.pairs[i].key != nil {
				cfg.Release(v.pairs[i].key)
			}
		}
		v.pairs = nil
	}
}
