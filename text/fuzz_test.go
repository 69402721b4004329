package text_test

import (
	"strings"
	"testing"

	"github.com/hasbyte1/go-sigutil/text"
)

// FuzzSplitCat checks that joining the tokens of Split with the delimiter
// gives back s with empty fields removed, and that no token is empty or
// contains the delimiter.
func FuzzSplitCat(f *testing.F) {
	f.Add(" one,2, 参 ", ",")
	f.Add(",,a,,", ",")
	f.Add("a--b", "--")
	f.Add("", "")

	f.Fuzz(func(t *testing.T, s, delim string) {
		toks := text.Split(s, delim)
		for tok := range toks.All() {
			if tok == "" {
				t.Fatalf("Split(%q, %q) produced an empty token", s, delim)
			}
			if delim != "" && strings.Contains(tok, delim) {
				t.Fatalf("token %q contains delimiter %q", tok, delim)
			}
		}
		if delim == "" {
			return
		}
		var want []string
		for _, part := range strings.Split(s, delim) {
			if part != "" {
				want = append(want, part)
			}
		}
		if got := text.Cat(toks, delim); got != strings.Join(want, delim) {
			t.Fatalf("Cat(Split(%q, %q)) = %q; want %q", s, delim, got, strings.Join(want, delim))
		}
	})
}
