package jfes

import "github.com/cwbudde/go-jfes/internal/serializer"

// Style selects compact or pretty serialization.
type Style = serializer.Style

const (
	StyleCompact = serializer.StyleCompact
	StylePretty  = serializer.StylePretty
)

// SerializeOptions configures ValueToString.
type SerializeOptions = serializer.Options

// ValueToString renders v into buffer, returning the number of bytes
// written. Fails with OutOfMemory if buffer is too small; the written
// prefix is then unspecified.
func ValueToString(v *Value, buffer []byte, opts SerializeOptions) (int, Status) {
	return serializer.ValueToString(v, buffer, opts)
}

// EstimateSize is an advisory (non-authoritative) upper bound on the
// number of bytes ValueToString would need for v.
func EstimateSize(v *Value, opts SerializeOptions) int {
	return serializer.EstimateSize(v, opts)
}
