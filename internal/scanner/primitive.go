package scanner

import (
	"github.com/cwbudde/go-jfes/internal/status"
	"github.com/cwbudde/go-jfes/internal/token"
)

func isPrimitiveTerminator(c byte, lenient bool) bool {
	if isWhitespace(c) || c == ',' || c == ']' || c == '}' {
		return true
	}
	return lenient && c == ':'
}

// parsePrimitive scans a bare literal (boolean, number, or null) starting
// at p.pos, stopping at the first terminator byte. It backs p.pos up by
// one so the dispatcher re-reads the terminator.
func (p *Parser) parsePrimitive(data []byte, tokens []token.Token) status.Code {
	start := p.pos
	found := false
	for p.pos < len(data) && data[p.pos] != 0 {
		if isPrimitiveTerminator(data[p.pos], p.mode == ModeLenient) {
			found = true
			break
		}
		p.pos++
	}

	if p.mode == ModeStrict && !found {
		p.pos = start
		return status.PartialInput
	}

	t := token.Allocate(tokens, &p.next)
	if t == nil {
		p.pos = start
		return status.OutOfMemory
	}

	span := data[start:p.pos]
	t.Type = token.ClassifyPrimitive(span)
	t.Start = start
	t.End = p.pos
	p.pos--
	return status.Success
}
