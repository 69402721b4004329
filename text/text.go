// Package text splits strings into containers and joins containers back
// into strings.
package text

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/hasbyte1/go-sigutil/access"
	"github.com/hasbyte1/go-sigutil/container"
)

// Split cuts s at every occurrence of delim and returns the non-empty pieces
// in order. Adjacent, leading and trailing delimiters therefore produce no
// empty tokens. An empty delim yields s itself as the only token.
//
//	text.Split(" one,2,, 参 ", ",") // → [" one" "2" " 参 "]
func Split(s, delim string) *container.Vector[string] {
	return container.VectorFrom(tokens(s, delim))
}

// SplitInto is [Split] writing the tokens into a fresh container made from
// proto, e.g. an OrderedSet to get the distinct tokens sorted.
func SplitInto(proto container.Container[string], s, delim string) container.Container[string] {
	toks := tokens(s, delim)
	out := proto.Make(len(toks))
	for _, t := range toks {
		out.Add(t)
	}
	return out
}

func tokens(s, delim string) []string {
	if delim == "" {
		return lo.Filter([]string{s}, isToken)
	}
	return lo.Filter(strings.Split(s, delim), isToken)
}

func isToken(s string, _ int) bool { return s != "" }

// Cat joins the printed forms of the elements of c, separated by delim.
// Strings are used as they are; other values are formatted with fmt.Sprint.
//
//	text.Cat(container.NewList(1, 2, 3), ", ") // → "1, 2, 3"
func Cat[T any](c container.Source[T], delim string) string {
	var b strings.Builder
	first := true
	for v := range access.Of(c).Values() {
		if !first {
			b.WriteString(delim)
		}
		first = false
		fmt.Fprint(&b, v)
	}
	return b.String()
}

// Chars returns the runes of s as a Text.
func Chars(s string) *container.Text[rune] {
	return container.NewText(s)
}
