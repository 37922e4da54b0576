package token

import "fmt"

// Field names the token attribute a condition or filter inspects. The set
// is closed: configuration referring to anything else is rejected at load
// time, never at analysis time.
type Field int

const (
	FieldText Field = iota
	FieldNormalized
	FieldStem
	FieldPartOfSpeech
)

var fieldNames = map[string]Field{
	"text":         FieldText,
	"normalized":   FieldNormalized,
	"stem":         FieldStem,
	"partOfSpeech": FieldPartOfSpeech,
}

func ParseField(name string) (Field, error) {
	f, ok := fieldNames[name]
	if !ok {
		return 0, fmt.Errorf("unknown field name %q (want text, normalized, stem or partOfSpeech)", name)
	}
	return f, nil
}

func (f Field) String() string {
	switch f {
	case FieldText:
		return "text"
	case FieldNormalized:
		return "normalized"
	case FieldStem:
		return "stem"
	case FieldPartOfSpeech:
		return "partOfSpeech"
	}
	return "unknown"
}

// Location points back into the source text. The analysis core never
// inspects it; it travels with the token into the diagnostic for the sink
// to render.
type Location struct {
	Line   int `json:"line"`
	Column int `json:"column"`
	Offset int `json:"offset"`
}

// Token is one annotated unit of text as produced by the upstream
// tokenizer. Index is the token's position within its container and
// defines distance and ordering.
type Token struct {
	Index        int
	Text         string
	Normalized   string
	Stem         string
	PartOfSpeech string
	Loc          Location
}

func (t Token) Value(f Field) string {
	switch f {
	case FieldText:
		return t.Text
	case FieldNormalized:
		return t.Normalized
	case FieldStem:
		return t.Stem
	case FieldPartOfSpeech:
		return t.PartOfSpeech
	}
	return ""
}

// Container is an ordered group of tokens sharing one analysis scope,
// e.g. a document or a single sentence. Token indexes are unique within
// a container.
type Container struct {
	Index  int
	Tokens []Token
}
