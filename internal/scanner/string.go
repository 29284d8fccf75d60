package scanner

import (
	"github.com/cwbudde/go-jfes/internal/status"
	"github.com/cwbudde/go-jfes/internal/token"
)

func isHex(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
}

// parseString scans a quoted JSON string starting at p.pos (which must be
// the opening quote). On success it emits a string token whose span
// excludes the quotes and leaves p.pos on the closing quote, ready for the
// dispatcher's unconditional pos++.
func (p *Parser) parseString(data []byte, tokens []token.Token) status.Code {
	start := p.pos
	p.pos++
	for p.pos < len(data) && data[p.pos] != 0 {
		c := data[p.pos]
		if c == '"' {
			t := token.Allocate(tokens, &p.next)
			if t == nil {
				p.pos = start
				return status.OutOfMemory
			}
			t.Type = token.String
			t.Start = start + 1
			t.End = p.pos
			return status.Success
		}
		if c == '\\' && p.pos+1 < len(data) {
			p.pos++
			switch data[p.pos] {
			case '"', '/', '\\', 'b', 'f', 'r', 'n', 't':
				// single-byte escape, nothing further to consume
			case 'u':
				p.pos++
				i := 0
				for ; i < 4 && p.pos < len(data) && data[p.pos] != 0; i, p.pos = i+1, p.pos+1 {
					if !isHex(data[p.pos]) {
						p.pos = start
						return status.InvalidInput
					}
				}
				if i < 4 {
					p.pos = start
					return status.PartialInput
				}
				p.pos--
			default:
				p.pos = start
				return status.InvalidInput
			}
		}
		p.pos++
	}
	p.pos = start
	return status.PartialInput
}
