package value

import (
	"github.com/cwbudde/go-jfes/internal/config"
	"github.com/cwbudde/go-jfes/internal/status"
	"github.com/cwbudde/go-jfes/internal/token"
)

// builder walks the token array from index 0 using a shared cursor and
// produces the value tree in a single preorder recursion, mirroring
// jfes_create_node in the original source.
type builder struct {
	cfg    *config.Config
	data   []byte
	tokens []token.Token
	cursor int
}

// Build constructs a value tree from tokens (emitted in preorder by the
// scanner) starting at token 0. It is the Go counterpart of jfes_create_node
// invoked on the whole token stream, i.e. the tree-building half of
// parse-to-value.
func Build(cfg *config.Config, data []byte, tokens []token.Token) (*Value, status.Code) {
	if len(tokens) == 0 {
		return nil, status.InvalidArguments
	}
	b := &builder{cfg: cfg, data: data, tokens: tokens}
	return b.next()
}

func (b *builder) next() (*Value, status.Code) {
	if b.cursor >= len(b.tokens) {
		// Guards against a malformed or truncated token stream walking off
		// the end of the array; construction errors must be surfaced rather
		// than swallowed by the top-level entry point.
		return nil, status.InvalidArguments
	}
	t := &b.tokens[b.cursor]
	b.cursor++

	v := &Value{Kind: t.Type}
	switch t.Type {
	case token.Boolean:
		v.boolVal = token.ToBoolean(b.data[t.Start:t.End])
	case token.Integer:
		v.intVal = token.ToInteger(b.data[t.Start:t.End])
	case token.Double:
		v.dblVal = token.ToDouble(b.data[t.Start:t.End])
	case token.String:
		buf, n, ok := allocString(b.cfg, b.data[t.Start:t.End])
		if !ok {
			return nil, status.OutOfMemory
		}
		v.str, v.slen = buf, n
	case token.Array:
		if t.Size > 0 {
			v.items = make([]*Value, 0, t.Size)
			for i := 0; i < t.Size; i++ {
				child, code := b.next()
				if status.IsBad(code) {
					v.Free(b.cfg)
					return nil, code
				}
				v.items = append(v.items, child)
			}
		}
	case token.Object:
		if t.Size > 0 {
			v.pairs = make([]Pair, 0, t.Size)
			for i := 0; i < t.Size; i++ {
				if b.cursor >= len(b.tokens) {
					v.Free(b.cfg)
					return nil, status.InvalidArguments
				}
				keyTok := &b.tokens[b.cursor]
				if keyTok.Type != token.String {
					v.Free(b.cfg)
					return nil, status.InvalidInput
				}
				b.cursor++
				keyBuf, keyLen, ok := allocString(b.cfg, b.data[keyTok.Start:keyTok.End])
				if !ok {
					v.Free(b.cfg)
					return nil, status.OutOfMemory
				}
				child, code := b.next()
				if status.IsBad(code) {
					b.cfg.Release(keyBuf)
					v.Free(b.cfg)
					return nil, code
				}
				v.pairs = append(v.pairs, Pair{key: keyBuf, klen: keyLen, Value: child})
			}
		}
	default:
		return nil, status.UnknownType
	}
	return v, status.Success
}
