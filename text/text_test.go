package text_test

import (
	"strings"
	"testing"

	"github.com/hasbyte1/go-sigutil/container"
	"github.com/hasbyte1/go-sigutil/hof"
	"github.com/hasbyte1/go-sigutil/text"
)

func assertSlice[T comparable](t *testing.T, got, want []T) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("slice length: got %d want %d  (got=%v want=%v)", len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Fatalf("index %d: got %#v want %#v", i, got[i], want[i])
		}
	}
}

func TestSplit(t *testing.T) {
	cases := []struct {
		s, delim string
		want     []string
	}{
		{" one,2, 参 ", ",", []string{" one", "2", " 参 "}},
		{",a,,b,", ",", []string{"a", "b"}},
		{"a--b----c", "--", []string{"a", "b", "c"}},
		{"", ",", nil},
		{",,,", ",", nil},
		{"abc", "", []string{"abc"}},
		{"abc", "x", []string{"abc"}},
	}
	for _, tc := range cases {
		assertSlice(t, text.Split(tc.s, tc.delim).ToSlice(), tc.want)
	}
}

func TestSplitInto(t *testing.T) {
	set := text.SplitInto(container.NewOrderedSet[string](), "b a c a b", " ")
	assertSlice(t, container.Slice(set), []string{"a", "b", "c"})

	l := text.SplitInto(container.NewList[string](), "x/y", "/")
	if _, ok := l.(*container.List[string]); !ok {
		t.Fatalf("SplitInto type = %T; want *List[string]", l)
	}
}

func TestCat(t *testing.T) {
	if got := text.Cat(container.NewVector("eins", "zwei", "drei"), ""); got != "einszweidrei" {
		t.Fatalf("Cat = %q", got)
	}
	if got := text.Cat(container.NewList("eins", "zwei", "drei"), ","); got != "eins,zwei,drei" {
		t.Fatalf("Cat = %q", got)
	}
	if got := text.Cat(container.NewOrderedSet(3, 1, 2), " < "); got != "1 < 2 < 3" {
		t.Fatalf("Cat = %q", got)
	}
	if got := text.Cat(container.NewVector[string](), ","); got != "" {
		t.Fatalf("Cat of empty = %q", got)
	}
}

func TestChars(t *testing.T) {
	c := text.Chars("héllo")
	if c.Len() != 5 {
		t.Fatalf("Len = %d; want 5", c.Len())
	}
	up := hof.Map(func(r rune) rune { return []rune(strings.ToUpper(string(r)))[0] }, c)
	if got := up.(*container.Text[rune]).String(); got != "HÉLLO" {
		t.Fatalf("upper = %q", got)
	}
}
