package jfes

import "github.com/cwbudde/go-jfes/internal/value"

// CreateBoolean returns an owned boolean value.
func CreateBoolean(v bool) *Value { return value.CreateBoolean(v) }

// CreateInteger returns an owned integer value.
func CreateInteger(v int64) *Value { return value.CreateInteger(v) }

// CreateDouble returns an owned double value.
func CreateDouble(v float64) *Value { return value.CreateDouble(v) }

// CreateNull returns a value of kind Undefined: the DOM has no dedicated
// null variant.
func CreateNull() *Value { return value.CreateNull() }

// CreateString copies bytes into an owned buffer allocated through cfg.
// Returns nil on allocator exhaustion.
func CreateString(cfg *Config, bytes []byte) *Value { return value.CreateString(cfg, bytes) }

// CreateArray returns an empty, owned array value.
func CreateArray() *Value { return value.CreateArray() }

// CreateObject returns an empty, owned object value.
func CreateObject() *Value { return value.CreateObject() }

// AddToArray appends item to arr, taking ownership of item.
func AddToArray(arr *Value, item *Value) Status { return value.AddToArray(arr, item) }

// AddToArrayAt inserts item at min(index, len(arr)), taking ownership.
func AddToArrayAt(arr *Value, item *Value, index int) Status {
	return value.AddToArrayAt(arr, item, index)
}

// RemoveFromArray frees and removes the element at index.
func RemoveFromArray(cfg *Config, arr *Value, index int) Status {
	return value.RemoveFromArray(cfg, arr, index)
}

// SetObjectProperty installs item under key, replacing any existing value
// for that key in place, or appending a new pair. Ownership of item
// transfers to obj on success only.
func SetObjectProperty(cfg *Config, obj *Value, item *Value, key []byte) Status {
	return value.SetObjectProperty(cfg, obj, item, key)
}

// RemoveObjectProperty frees and removes the pair for key.
func RemoveObjectProperty(cfg *Config, obj *Value, key []byte) Status {
	return value.RemoveObjectProperty(cfg, obj, key)
}
