package echo

import "echolint/internal/token"

// Window returns every token within radius positions of center, excluding
// the center itself. Container order is preserved so downstream output is
// deterministic.
func Window(tokens []token.Token, center, radius int) []token.Token {
	out := make([]token.Token, 0, min(len(tokens), 2*radius))
	for _, t := range tokens {
		d := t.Index - center
		if d < 0 {
			d = -d
		}
		if d > 0 && d <= radius {
			out = append(out, t)
		}
	}
	return out
}
