package htmltext

import "testing"

func TestSimplify(t *testing.T) {
	tests := []struct {
		name      string
		fragments []string
		want      string
	}{
		{"nil fragments", nil, ""},
		{"empty fragments", []string{}, ""},
		{"plain text untouched", []string{"just some text"}, "just some text"},

		// Script and style blocks disappear with their content.
		{
			"script removed",
			[]string{"<p>Hi<br>there</p><script>evil()</script>"},
			"Hi\nthere",
		},
		{
			"style removed",
			[]string{"<style>.a{color:red}</style><div>Body</div>"},
			"Body",
		},
		{
			"multiline script",
			[]string{"before<SCRIPT type=\"text/javascript\">\nline1\nline2\n</SCRIPT>after"},
			"beforeafter",
		},

		// Entity decoding happens before tag handling.
		{"entities", []string{"Tom &amp; Jerry &lt;3"}, "Tom & Jerry <3"},

		// Break and block-closing tags become newlines.
		{"br variants", []string{"a<br>b<BR/>c<br />d"}, "a\nb\nc\nd"},
		{"paragraphs", []string{"<p>one</p><p>two</p>"}, "one\ntwo"},
		{"headings and lists", []string{"<h1>Title</h1><ul><li>x</li><li>y</li></ul>"}, "Title\nx\ny"},
		{"table rows", []string{"<table><tr><td>a</td></tr><tr><td>b</td></tr></table>"}, "a\nb"},

		// Whatever remains between angle brackets is stripped.
		{"inline tags stripped", []string{"<b>bold</b> and <i>italic</i>"}, "bold and italic"},
		{"multiline tag", []string{"x<a\nhref=\"http://example.com\">link</a>y"}, "xlinky"},

		// Malformed markup degrades instead of failing.
		{"unclosed bracket survives", []string{"5 < 6 is true"}, "5 < 6 is true"},
		{"unterminated script", []string{"<script>no close tag"}, "no close tag"},

		// Whitespace normalization.
		{"trailing spaces before newline", []string{"line one   \nline two"}, "line one\nline two"},
		{"newline runs collapse to one blank line", []string{"a\n\n\n\n\nb"}, "a\n\nb"},
		{"surrounding whitespace trimmed", []string{"  \n hello \n  "}, "hello"},

		// Fragments join with a blank line.
		{"two fragments", []string{"<p>first</p>", "<p>second</p>"}, "first\n\nsecond"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Simplify(tc.fragments)
			if got != tc.want {
				t.Errorf("Simplify(%q) = %q, want %q", tc.fragments, got, tc.want)
			}
		})
	}
}

// Simplifying text that contains no markup returns it unchanged apart
// from trimming and newline-run collapsing.
func TestSimplify_PlainTextRoundTrip(t *testing.T) {
	in := "Dear user,\n\nyour code is 123456.\n\nRegards"
	if got := Simplify([]string{in}); got != in {
		t.Errorf("Simplify(plain) = %q, want %q", got, in)
	}
}

func TestSimplify_Idempotent(t *testing.T) {
	fragments := []string{"<div>Hello<br>world</div><script>x()</script>"}
	once := Simplify(fragments)
	twice := Simplify([]string{once})
	if once != twice {
		t.Errorf("second pass changed output: %q -> %q", once, twice)
	}
}
