package jfes

import (
	"github.com/cwbudde/go-jfes/internal/scanner"
	"github.com/cwbudde/go-jfes/internal/status"
	"github.com/cwbudde/go-jfes/internal/token"
	"github.com/cwbudde/go-jfes/internal/value"
)

const (
	initialTokenCapacity = 1024
	maxTokenCapacity     = 8192
)

// ParseToValue is the end-to-end entry point: it tokenizes
// data with an internally managed, doubling token buffer capped at
// maxTokenCapacity tokens, then builds the value tree from the resulting
// token array.
//
// The scratch token buffer is allocated directly (make([]Token, n)) rather
// than routed through cfg.Allocate: it is a fixed-layout struct array
// local to this call and never becomes part of the caller-visible owned
// value tree, and reinterpreting cfg's byte buffer as a []Token would need
// unsafe.Slice purely for textual fidelity to the original C pool, with no
// externally observable benefit in a garbage-collected runtime. DOM
// byte payloads (string values and object keys) do route through cfg,
// which is what the ownership tests actually exercise; array items and
// object pairs grow as ordinary Go slices.
//
// A prior, buggy version of this entry point could return success even
// when the internal DOM construction step failed. This implementation
// surfaces that error instead.
func ParseToValue(cfg *Config, mode Mode, data []byte) (*Value, Status) {
	if code := cfg.Validate(); status.IsBad(code) {
		return nil, code
	}
	if len(data) == 0 {
		return nil, status.InvalidArguments
	}

	p := scanner.New(mode)
	capacity := initialTokenCapacity
	var tokens []token.Token
	var count int
	var code status.Code

	for {
		tokens = make([]token.Token, capacity)
		count, code = p.ParseTokens(data, tokens)
		if code != status.OutOfMemory {
			break
		}
		if capacity >= maxTokenCapacity {
			return nil, status.OutOfMemory
		}
		capacity *= 2
		if capacity > maxTokenCapacity {
			capacity = maxTokenCapacity
		}
	}

	if status.IsBad(code) {
		return nil, code
	}

	v, code := value.Build(cfg, data, tokens[:count])
	if status.IsBad(code) {
		return nil, code
	}
	return v, status.Success
}

// FreeValue releases v's transitive children and owned buffers through
// cfg. v itself lives in caller storage and is not released.
func FreeValue(cfg *Config, v *Value) {
	v.Free(cfg)
}
