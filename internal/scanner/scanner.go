// Package scanner implements the single-pass, allocation-free JSON
// tokenizer. It drives byte-by-byte parsing, emits tokens into
// a caller-supplied array, and tracks nesting via a single "superior
// token" index rather than a parser stack.
package scanner

import (
	"github.com/cwbudde/go-jfes/internal/status"
	"github.com/cwbudde/go-jfes/internal/token"
)

// Mode selects strict or lenient framing rules. A C library with the same
// design would typically pick this at compile time with a preprocessor
// define; here it is a runtime choice on the Parser, since Go has no
// portable equivalent and the two modes are behaviorally independent
// choices.
type Mode uint8

const (
	ModeLenient Mode = iota
	ModeStrict
)

// Parser holds scanner state: cursor position, the next free token slot,
// and the index of the currently owning container or key ("superior
// token"), or -1 at top level.
type Parser struct {
	mode     Mode
	pos      int
	next     int
	superior int
}

// New constructs a Parser in the given mode. The parser is stateful and
// must not be driven by more than one caller concurrently.
func New(mode Mode) *Parser {
	p := &Parser{mode: mode}
	p.Reset()
	return p
}

// Reset zeroes the cursor and counters so the parser can be reused.
func (p *Parser) Reset() {
	p.pos = 0
	p.next = 0
	p.superior = -1
}

func isWhitespace(c byte) bool {
	return c == '\t' || c == '\r' || c == '\n' || c == ' '
}

// ParseTokens tokenizes data into tokens, resetting the parser first. It
// returns the number of tokens emitted and a status code. On failure the
// returned count is the number of tokens successfully emitted before the
// failure (the caller may still need to free any DOM built from them, but
// the scanner itself allocates nothing beyond the caller's token array).
func (p *Parser) ParseTokens(data []byte, tokens []token.Token) (int, status.Code) {
	if len(data) == 0 || len(tokens) == 0 {
		return 0, status.InvalidArguments
	}

	p.Reset()

	for p.pos < len(data) && data[p.pos] != 0 {
		c := data[p.pos]
		switch {
		case c == '{' || c == '[':
			t := token.Allocate(tokens, &p.next)
			if t == nil {
				return p.next, status.OutOfMemory
			}
			if p.superior != -1 {
				tokens[p.superior].Size++
			}
			if c == '{' {
				t.Type = token.Object
			} else {
				t.Type = token.Array
			}
			t.Start = p.pos
			p.superior = p.next - 1

		case c == '}' || c == ']':
			if code := p.closeContainer(tokens, p.pos); status.IsBad(code) {
				return p.next, code
			}

		case c == '"':
			code := p.parseString(data, tokens)
			if status.IsBad(code) {
				return p.next, code
			}
			if p.superior != -1 {
				tokens[p.superior].Size++
			}

		case isWhitespace(c):
			// skip

		case c == ':':
			p.superior = p.next - 1

		case c == ',':
			p.rewindSuperior(tokens)

		default:
			if p.mode == ModeStrict && !isPrimitiveStart(c) {
				return p.next, status.InvalidInput
			}
			if p.mode == ModeStrict && p.superior != -1 {
				owner := &tokens[p.superior]
				if owner.Type == token.Object || (owner.Type == token.String && owner.Size != 0) {
					return p.next, status.InvalidInput
				}
			}
			code := p.parsePrimitive(data, tokens)
			if status.IsBad(code) {
				return p.next, code
			}
			if p.superior != -1 {
				tokens[p.superior].Size++
			}
		}
		p.pos++
	}

	for i := p.next - 1; i >= 0; i-- {
		if tokens[i].Start != -1 && tokens[i].End == -1 {
			return p.next, status.PartialInput
		}
	}

	return p.next, status.Success
}

func isPrimitiveStart(c byte) bool {
	if c >= '0' && c <= '9' {
		return true
	}
	return c == '-' || c == 't' || c == 'f' || c == 'n'
}

// closeContainer handles '}' and ']': it finds the innermost still-open
// token (scanning downward) and closes it, then finds the nearest
// still-open ancestor to become the new superior token. Container-type
// mismatch ('[' closed by '}') is not checked.
func (p *Parser) closeContainer(tokens []token.Token, pos int) status.Code {
	i := p.next - 1
	for ; i >= 0; i-- {
		if tokens[i].Start != -1 && tokens[i].End == -1 {
			p.superior = -1
			tokens[i].End = pos + 1
			break
		}
	}
	if i == -1 {
		return status.InvalidInput
	}
	for ; i >= 0; i-- {
		if tokens[i].Start != -1 && tokens[i].End == -1 {
			p.superior = i
			break
		}
	}
	return status.Success
}

// rewindSuperior undoes the key-owner promotion performed by ':': if the
// current superior is not itself a container, it scans downward for the
// nearest enclosing open array/object.
func (p *Parser) rewindSuperior(tokens []token.Token) {
	if p.superior == -1 {
		return
	}
	if tokens[p.superior].Type == token.Array || tokens[p.superior].Type == token.Object {
		return
	}
	for i := p.next - 1; i >= 0; i-- {
		if tokens[i].Type == token.Array || tokens[i].Type == token.Object {
			if tokens[i].Start != -1 && tokens[i].End == -1 {
				p.superior = i
				return
			}
		}
	}
}
