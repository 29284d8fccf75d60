// Package jfes is the public facade over the tokenizer and DOM core:
// callers only ever import this package, while internal/* holds the
// component implementations (status, config, token, scanner, value,
// serializer).
package jfes

import (
	"github.com/cwbudde/go-jfes/internal/config"
	"github.com/cwbudde/go-jfes/internal/scanner"
	"github.com/cwbudde/go-jfes/internal/status"
	"github.com/cwbudde/go-jfes/internal/token"
	"github.com/cwbudde/go-jfes/internal/value"
)

// Status is the outcome of any fallible operation in this package.
type Status = status.Code

const (
	Success          = status.Success
	InvalidArguments = status.InvalidArguments
	OutOfMemory      = status.OutOfMemory
	InvalidInput     = status.InvalidInput
	PartialInput     = status.PartialInput
	UnknownType      = status.UnknownType
	NotFound         = status.NotFound
)

// IsGood reports whether s represents success.
func IsGood(s Status) bool { return status.IsGood(s) }

// IsBad reports whether s represents any failure.
func IsBad(s Status) bool { return status.IsBad(s) }

// Type is a token/value kind: Undefined, Boolean, Integer, Double,
// String, Array, or Object.
type Type = token.Type

const (
	TypeUndefined = token.Undefined
	TypeBoolean   = token.Boolean
	TypeInteger   = token.Integer
	TypeDouble    = token.Double
	TypeString    = token.String
	TypeArray     = token.Array
	TypeObject    = token.Object
)

// Token is a fixed-size (type, start, end, size) descriptor over a span of
// the scanned input.
type Token = token.Token

// Mode selects strict or lenient scanner framing.
type Mode = scanner.Mode

const (
	ModeLenient = scanner.ModeLenient
	ModeStrict  = scanner.ModeStrict
)

// Config bundles the allocate/release handles every heap allocation in
// this library routes through.
type Config = config.Config

// NewConfig builds a Config from functional options, see config.Option.
func NewConfig(opts ...config.Option) *Config { return config.New(opts...) }

// DefaultConfig returns a Config backed by plain Go slice allocation.
func DefaultConfig() *Config { return config.Default() }

// Value is a node in the DOM tree.
type Value = value.Value

// Pair is one object entry: an owned key and an owned child value.
type Pair = value.Pair

// Parser drives the single-pass tokenizer. It is stateful and
// must not be driven by more than one goroutine concurrently.
type Parser struct {
	scanner *scanner.Parser
}

// NewParser constructs a Parser in the given mode.
func NewParser(mode Mode) *Parser {
	return &Parser{scanner: scanner.New(mode)}
}

// Reset zeroes the parser's cursor and counters.
func (p *Parser) Reset() { p.scanner.Reset() }

// ParseTokens tokenizes data into tokens. It returns the number
// of tokens emitted and a status code.
func (p *Parser) ParseTokens(data []byte, tokens []Token) (int, Status) {
	return p.scanner.ParseTokens(data, tokens)
}
