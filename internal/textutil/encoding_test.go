package textutil

import (
	"testing"
	"unicode/utf8"
)

func TestEnsureUTF8(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"valid ascii", "plain text", "plain text"},
		{"valid utf8", "héllo wörld ✓", "héllo wörld ✓"},
		{"empty", "", ""},
		// 0xE9 is é in Latin-1 / Windows-1252.
		{"latin1 e acute", "caf\xe9", "café"},
		// Windows-1252 smart quotes (0x93/0x94).
		{"cp1252 quotes", "\x93quoted\x94", "“quoted”"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := EnsureUTF8(tc.input)
			if got != tc.want {
				t.Errorf("EnsureUTF8(%q) = %q, want %q", tc.input, got, tc.want)
			}
		})
	}
}

func TestEnsureUTF8_AlwaysValid(t *testing.T) {
	inputs := []string{
		"\xff\xfe\xfd",
		"ok\x80then",
		"\x00\x01\xfe",
	}
	for _, in := range inputs {
		if got := EnsureUTF8(in); !utf8.ValidString(got) {
			t.Errorf("EnsureUTF8(%q) produced invalid UTF-8: %q", in, got)
		}
	}
}

func TestSanitizeUTF8(t *testing.T) {
	got := SanitizeUTF8("ok\xffbad")
	if got != "ok�bad" {
		t.Errorf("SanitizeUTF8 = %q, want %q", got, "ok�bad")
	}
	if got := SanitizeUTF8("clean"); got != "clean" {
		t.Errorf("SanitizeUTF8(clean) = %q", got)
	}
}
