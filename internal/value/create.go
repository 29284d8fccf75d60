package value

import (
	"github.com/cwbudde/go-jfes/internal/config"
	"github.com/cwbudde/go-jfes/internal/token"
)

// CreateBoolean returns an owned boolean value.
func CreateBoolean(v bool) *Value {
	return &Value{Kind: token.Boolean, boolVal: v}
}

// CreateInteger returns an owned integer value.
func CreateInteger(v int64) *Value {
	return &Value{Kind: token.Integer, intVal: v}
}

// CreateDouble returns an owned double value.
func CreateDouble(v float64) *Value {
	return &Value{Kind: token.Double, dblVal: v}
}

// CreateNull returns a value of kind Undefined. The spec's DOM has no
// dedicated null variant: the parser tokenizes `null` as Undefined, and
// this factory preserves that rather than inventing a variant the
// tokenizer can never produce.
func CreateNull() *Value {
	return &Value{Kind: token.Undefined}
}

// CreateString copies bytes into a freshly allocated owned buffer. Returns
// nil if the allocator is exhausted, so the caller can translate that to
// status.OutOfMemory without leaking a half-built node.
func CreateString(cfg *config.Config, bytes []byte) *Value {
	buf, n, ok := allocString(cfg, bytes)
	if !ok {
		return nil
	}
	return &Value{Kind: token.String, str: buf, slen: n}
}

// CreateArray returns an empty, owned array value.
func CreateArray() *Value {
	return &Value{Kind: token.Array}
}

// CreateObject returns an empty, owned object value.
func CreateObject() *Value {
	return &Value{Kind: token.Object}
}
