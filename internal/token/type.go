// Package token defines the token descriptor produced by the scanner, the
// lexical predicates and conversions used to classify primitive spans
// and the fixed-capacity token allocator.
package token

// Type is the kind of value a Token describes.
type Type uint8

const (
	Undefined Type = iota
	Boolean
	Integer
	Double
	String
	Array
	Object
)

var typeNames = [...]string{
	"undefined",
	"boolean",
	"integer",
	"double",
	"string",
	"array",
	"object",
}

// String renders the type name.
func (t Type) String() string {
	if int(t) < len(typeNames) {
		return typeNames[t]
	}
	return "unknown"
}

// Token is a fixed-size descriptor over a span of the source bytes.
//
// Start and End are byte offsets into the scanned input. For strings the
// span excludes the surrounding quotes; for containers it covers the
// opening through the closing delimiter. An open container has End == -1
// until its matching close delimiter is consumed.
//
// Size is a child count: for arrays, the number of direct element tokens;
// for objects, the number of key/value pairs (each pair is two tokens at
// the flat array level); for strings used as object keys, it is repurposed
// by the strict-mode emission guard and otherwise unused.
type Token struct {
	Type  Type
	Start int
	End   int
	Size  int
}

// Open reports whether the token's span is still unterminated.
func (t *Token) Open() bool {
	return t.Start != -1 && t.End == -1
}

// Closed reports whether the token is a fully parsed, well-formed span.
//
// An empty string token ("") legitimately has Start == End (see
// original_source/jfes.c's jfes_parse_string, which fills start+1..pos for
// a string whose closing quote immediately follows its opening quote), so
// this uses End >= Start rather than the stricter End > Start a reader
// might expect from a byte-span invariant.
func (t *Token) Closed() bool {
	return t.Start >= 0 && t.End >= t.Start
}
