// Package serializer renders a value tree into a caller-provided byte
// buffer, compact or pretty. Its Options{Style} shape (StyleCompact /
// StylePretty) follows the same pattern a source-code pretty-printer would
// use, applied to JSON output instead.
package serializer

import (
	"strconv"

	"github.com/cwbudde/go-jfes/internal/status"
	"github.com/cwbudde/go-jfes/internal/token"
	"github.com/cwbudde/go-jfes/internal/value"
)

// Style selects compact or pretty output.
type Style uint8

const (
	StyleCompact Style = iota
	StylePretty
)

// Options configures a serialization pass.
type Options struct {
	Style Style
	// IndentWidth is the number of spaces per nesting level in pretty
	// mode. Zero means the default of four.
	IndentWidth int
}

func (o Options) indentWidth() int {
	if o.IndentWidth <= 0 {
		return 4
	}
	return o.IndentWidth
}

// writer tracks a fixed capacity buffer, failing the whole pass with
// OutOfMemory the moment it would overrun — the written prefix is then
// unspecified.
type writer struct {
	buf []byte
	n   int
	ok  bool
}

func (w *writer) writeByte(b byte) {
	if !w.ok {
		return
	}
	if w.n >= len(w.buf) {
		w.ok = false
		return
	}
	w.buf[w.n] = b
	w.n++
}

func (w *writer) writeString(s string) {
	for i := 0; i < len(s); i++ {
		w.writeByte(s[i])
	}
}

func (w *writer) writeBytes(b []byte) {
	for _, c := range b {
		w.writeByte(c)
	}
}

func (w *writer) newlineIndent(opts Options, depth int) {
	if opts.Style != StylePretty {
		return
	}
	w.writeByte('\n')
	for i := 0; i < depth*opts.indentWidth(); i++ {
		w.writeByte(' ')
	}
}

// ValueToString renders v into buffer and returns the number of bytes
// written. Capacity is both input (len(buffer)) and output (bytes
// written, not counting any terminator); callers that need a null
// terminator must leave room for it themselves.
func ValueToString(v *value.Value, buffer []byte, opts Options) (int, status.Code) {
	if v == nil {
		return 0, status.InvalidArguments
	}
	w := &writer{buf: buffer, ok: true}
	writeValue(w, v, opts, 0)
	if !w.ok {
		return 0, status.OutOfMemory
	}
	return w.n, status.Success
}

func writeValue(w *writer, v *value.Value, opts Options, depth int) {
	switch v.Kind {
	case token.Boolean:
		if v.BoolValue() {
			w.writeString("true")
		} else {
			w.writeString("false")
		}
	case token.Integer:
		w.writeString(strconv.FormatInt(v.IntValue(), 10))
	case token.Double:
		w.writeString(strconv.FormatFloat(v.DoubleValue(), 'g', -1, 64))
	case token.String:
		w.writeByte('"')
		w.writeBytes(v.StringValue())
		w.writeByte('"')
	case token.Array:
		writeArray(w, v, opts, depth)
	case token.Object:
		writeObject(w, v, opts, depth)
	default:
		w.writeString("null")
	}
}

func writeArray(w *writer, v *value.Value, opts Options, depth int) {
	w.writeByte('[')
	items := v.ArrayItems()
	for i, item := range items {
		if i > 0 {
			w.writeByte(',')
		}
		w.newlineIndent(opts, depth+1)
		writeValue(w, item, opts, depth+1)
	}
	if len(items) > 0 {
		w.newlineIndent(opts, depth)
	}
	w.writeByte(']')
}

func writeObject(w *writer, v *value.Value, opts Options, depth int) {
	w.writeByte('{')
	pairs := v.ObjectPairs()
	for i := range pairs {
		if i > 0 {
			w.writeByte(',')
		}
		w.newlineIndent(opts, depth+1)
		w.writeByte('"')
		w.writeBytes(pairs[i].Key())
		w.writeByte('"')
		w.writeByte(':')
		if opts.Style == StylePretty {
			w.writeByte(' ')
		}
		writeValue(w, pairs[i].Value, opts, depth+1)
	}
	if len(pairs) > 0 {
		w.newlineIndent(opts, depth)
	}
	w.writeByte('}')
}

// EstimateSize returns an advisory upper bound on the number of bytes
// ValueToString would write for v, so a caller can presize a buffer. It is
// not part of the core C1-C7 contract and is never authoritative: the
// only authoritative outcome of a too-small buffer is status.OutOfMemory
// from ValueToString itself.
func EstimateSize(v *value.Value, opts Options) int {
	if v == nil {
		return 0
	}
	return estimate(v, opts, 0)
}

func estimate(v *value.Value, opts Options, depth int) int {
	childIndent := (depth + 1) * opts.indentWidth()
	switch v.Kind {
	case token.Boolean:
		return 5
	case token.Integer:
		return len(strconv.FormatInt(v.IntValue(), 10))
	case token.Double:
		return len(strconv.FormatFloat(v.DoubleValue(), 'g', -1, 64))
	case token.String:
		return len(v.StringValue()) + 2
	case token.Array:
		n := 2
		for _, item := range v.ArrayItems() {
			n += estimate(item, opts, depth+1) + 3 + childIndent
		}
		if v.ArrayLen() > 0 {
			n += 1 + depth*opts.indentWidth()
		}
		return n
	case token.Object:
		n := 2
		for _, p := range v.ObjectPairs() {
			n += len(p.Key()) + 6 + estimate(p.Value, opts, depth+1) + childIndent
		}
		if v.ObjectLen() > 0 {
			n += 1 + depth*opts.indentWidth()
		}
		return n
	default:
		return 4
	}
}
