package echo

import "testing"

func TestCompileLiteralAndRegex(t *testing.T) {
	cases := []struct {
		pattern string
		value   string
		want    bool
	}{
		// Literals compare for exact equality, case-sensitive.
		{"the", "the", true},
		{"the", "The", false},
		{"the", "then", false},
		{"a.c", "abc", false}, // no implicit regex for literals
		{"a.c", "a.c", true},

		// Delimited patterns are unanchored regular expressions.
		{"/^N/", "NN", true},
		{"/^N/", "VB", false},
		{"/ing$/", "running", true},
		{"/ing$/", "ringer", false},
		{"/^run$/", "run", true},
		{"/^run$/", "rerun", false},
		{"/b/", "abc", true},

		// A single "/" is a literal, not a malformed regex.
		{"/", "/", true},
		{"/", "a", false},

		// "//" is a delimited empty expression, which matches anything.
		{"//", "anything", true},
	}
	for _, c := range cases {
		p, err := Compile(c.pattern)
		if err != nil {
			t.Fatalf("Compile(%q): %v", c.pattern, err)
		}
		if got := p.Matches(c.value); got != c.want {
			t.Fatalf("pattern %q against %q = %v, want %v", c.pattern, c.value, got, c.want)
		}
	}
}

func TestCompileRejectsMalformedRegex(t *testing.T) {
	if _, err := Compile("/[unclosed/"); err == nil {
		t.Fatal("expected a configuration error for a malformed expression")
	}
}

func TestLiteralNeverInterpretsDelimiters(t *testing.T) {
	p := Literal("/x/")
	if !p.Matches("/x/") {
		t.Fatal("literal should match its exact source value")
	}
	if p.Matches("x") {
		t.Fatal("literal must not be treated as a delimited regex")
	}
}
