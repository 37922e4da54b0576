// Package segment is the reference token source: it splits raw text into
// annotated word tokens and groups them into containers per analysis
// scope. The engine accepts any producer of containers; this one exists so
// the tool is usable end to end and so tests have realistic input. The
// annotations are deliberately crude — deployments with a real tagger
// supply their own tokens.
package segment

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"echolint/internal/token"
)

const (
	ScopeDocument = "document"
	ScopeSentence = "sentence"
)

var (
	wordPattern = regexp.MustCompile(`[A-Za-z0-9']+`)
	sentenceEnd = regexp.MustCompile(`[.!?]+`)
)

// Resolve tokenizes text and carves the tokens into containers for the
// named scope. An unknown scope is a configuration error.
func Resolve(scope, text string) ([]token.Container, error) {
	switch scope {
	case "", ScopeDocument:
		toks := Tokenize(text)
		if len(toks) == 0 {
			return nil, nil
		}
		return []token.Container{{Index: 0, Tokens: toks}}, nil
	case ScopeSentence:
		return sentenceContainers(text), nil
	}
	return nil, fmt.Errorf("unknown scope %q (want document or sentence)", scope)
}

// Tokenize splits text into word tokens with source locations, lowercase
// normalized forms, a suffix-stripped stem and a heuristic part-of-speech
// tag.
func Tokenize(text string) []token.Token {
	matches := wordPattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}
	lines := newLineIndex(text)
	toks := make([]token.Token, 0, len(matches))
	for i, m := range matches {
		surface := text[m[0]:m[1]]
		lower := strings.ToLower(surface)
		line, column := lines.locate(m[0])
		toks = append(toks, token.Token{
			Index:        i,
			Text:         surface,
			Normalized:   lower,
			Stem:         stem(lower),
			PartOfSpeech: tag(surface, lower),
			Loc:          token.Location{Line: line, Column: column, Offset: m[0]},
		})
	}
	return toks
}

// sentenceContainers re-tokenizes nothing: the document tokens are
// partitioned at sentence-ending punctuation and re-indexed per container,
// so distance is always sentence-local while locations stay global.
func sentenceContainers(text string) []token.Container {
	toks := Tokenize(text)
	if len(toks) == 0 {
		return nil
	}

	boundaries := sentenceEnd.FindAllStringIndex(text, -1)
	var containers []token.Container
	current := make([]token.Token, 0, 16)
	next := 0 // next sentence boundary to cross
	flush := func() {
		if len(current) == 0 {
			return
		}
		containers = append(containers, token.Container{Index: len(containers), Tokens: current})
		current = make([]token.Token, 0, 16)
	}
	for _, t := range toks {
		for next < len(boundaries) && boundaries[next][1] <= t.Loc.Offset {
			flush()
			next++
		}
		t.Index = len(current)
		current = append(current, t)
	}
	flush()
	return containers
}

type lineIndex struct {
	starts []int // byte offset of the first character of each line
}

func newLineIndex(text string) lineIndex {
	starts := []int{0}
	for i, r := range text {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return lineIndex{starts: starts}
}

// locate converts a byte offset into a 1-based line and column.
func (li lineIndex) locate(offset int) (line, column int) {
	i := sort.Search(len(li.starts), func(n int) bool { return li.starts[n] > offset }) - 1
	return i + 1, offset - li.starts[i] + 1
}

// stem strips one common inflectional suffix. Longest suffix wins; very
// short remainders are left alone so "sing" does not become "s".
func stem(lower string) string {
	suffixes := []string{"ingly", "edly", "ments", "ment", "ings", "ing", "ies", "ed", "es", "ly", "s"}
	for _, suf := range suffixes {
		if strings.HasSuffix(lower, suf) && len(lower)-len(suf) >= 3 {
			return strings.TrimSuffix(lower, suf)
		}
	}
	return lower
}

var closedClassTags = map[string]string{
	"the": "DT", "a": "DT", "an": "DT", "this": "DT", "that": "DT", "these": "DT", "those": "DT",
	"i": "PRP", "you": "PRP", "he": "PRP", "she": "PRP", "it": "PRP", "we": "PRP", "they": "PRP",
	"in": "IN", "on": "IN", "at": "IN", "by": "IN", "of": "IN", "with": "IN", "from": "IN", "to": "IN",
	"and": "CC", "or": "CC", "but": "CC", "nor": "CC",
	"is": "VBZ", "are": "VBP", "was": "VBD", "were": "VBD", "be": "VB", "been": "VBN",
}

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

// tag assigns a crude Penn-style part-of-speech tag from closed-class
// lookup and surface shape. Enough for field-based filtering in tests and
// the demo CLI; not a real tagger.
func tag(surface, lower string) string {
	if t, ok := closedClassTags[lower]; ok {
		return t
	}
	switch {
	case digitsOnly.MatchString(lower):
		return "CD"
	case strings.HasSuffix(lower, "ly") && len(lower) > 4:
		return "RB"
	case strings.HasSuffix(lower, "ing") && len(lower) > 5:
		return "VBG"
	case strings.HasSuffix(lower, "ed") && len(lower) > 4:
		return "VBD"
	case surface != lower:
		return "NNP"
	case strings.HasSuffix(lower, "s") && len(lower) > 3:
		return "NNS"
	default:
		return "NN"
	}
}
