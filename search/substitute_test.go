// Copyright 2025 dacapoday
// SPDX-License-Identifier: Apache-2.0

package search

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dacapoday/ranges"
	"github.com/dacapoday/ranges/adapt"
)

func TestStringSubstitute(t *testing.T) {
	table := []adapt.Pair[string, string]{
		{First: "name", Second: "World"},
		{First: "a{b}c", Second: "nested"},
		{First: "", Second: "empty"},
		{First: "name", Second: "shadowed"},
	}
	tests := []struct {
		name, input, want string
	}{
		{"greeting", "Hi {name}!", "Hi World!"},
		{"unknown key", "Hi {nobody}!", "Hi ?!"},
		{"nested key", "<{a{b}c}>", "<nested>"},
		{"empty key", "{}", "empty"},
		{"adjacent", "{name}{name}", "WorldWorld"},
		{"no entries", "plain", "plain"},
		{"unterminated", "Hi {name", "Hi {name"},
		{"unterminated nested", "{name} {a{b}", "World {a{b}"},
		{"stray close", "a}b", "a}b"},
		{"empty input", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := StringSubstitute(tt.input, "{", "}", table, "?")
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("StringSubstitute(%q) mismatch (-want +got):\n%s", tt.input, diff)
			}
		})
	}
}

func TestStringSubstituteDelimiters(t *testing.T) {
	table := []adapt.Pair[string, string]{{First: "user", Second: "ada"}}
	got := StringSubstitute("${{user}} and ${{ {{user}} }}", "${{", "}}", table, "-")
	require.Equal(t, "ada and - }}", got)

	got = StringSubstitute("<%user%>", "<%", "%>", table, "")
	require.Equal(t, "ada", got)
}

func TestSubstituteGeneric(t *testing.T) {
	table := Table[int](ranges.Of(
		adapt.MakePair([]int{1}, []int{100, 101}),
		adapt.MakePair([]int{2, 2}, []int{200}),
	))
	in := []int{5, -1, 1, -2, 6, -1, 2, 2, -2, -1, 3, -2}
	got := Substitute(nil, ranges.Input[int](ranges.Of(in...)), []int{-1}, []int{-2}, table, []int{0})
	require.Equal(t, []int{5, 100, 101, 6, 200, 0}, got)
}

func TestSubstituteForwardInput(t *testing.T) {
	table := Table[byte](ranges.Of(adapt.MakePair([]byte("k"), []byte("v"))))
	dst := []byte("> ")
	got := Substitute(dst, ranges.Input[byte](&forward{[]byte("[k] [x] [k")}), []byte("["), []byte("]"), table, []byte("?"))
	require.Equal(t, "> v ? [k", string(got))
}

func TestSubstituteLazyTable(t *testing.T) {
	keys := ranges.Of("a", "b", "c")
	table := adapt.Map[string, adapt.Pair[[]byte, []byte]](keys, func(k string) adapt.Pair[[]byte, []byte] {
		return adapt.MakePair([]byte(k), []byte(strings.ToUpper(k)))
	})
	got := Substitute(nil, ranges.Input[byte](str("(c)(a)(d)")), []byte("("), []byte(")"), Table[byte](table), nil)
	require.Equal(t, "CA", string(got))
	require.Equal(t, 3, keys.Length(), "the table is searched on copies")
}

// Text without the start delimiter passes through unchanged.
func TestPropertySubstituteIdentity(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := rapid.StringMatching(`[a-z }]{0,30}`).Draw(t, "s")
		if got := StringSubstitute(s, "{", "}", nil, "?"); got != s {
			t.Fatalf("StringSubstitute(%q) = %q", s, got)
		}
	})
}

// Every well-formed entry is replaced and the text around it kept.
func TestPropertySubstituteEntries(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		words := rapid.SliceOfN(rapid.StringMatching(`[a-z]{0,5}`), 1, 8).Draw(t, "words")
		keys := rapid.SliceOfN(rapid.SampledFrom([]string{"x", "y", "z"}), len(words)-1, len(words)-1).Draw(t, "keys")
		table := []adapt.Pair[string, string]{{First: "x", Second: "1"}, {First: "y", Second: "22"}}
		values := map[string]string{"x": "1", "y": "22", "z": "?"}

		var in, want strings.Builder
		for i, w := range words {
			in.WriteString(w)
			want.WriteString(w)
			if i < len(keys) {
				in.WriteString("{" + keys[i] + "}")
				want.WriteString(values[keys[i]])
			}
		}
		if got := StringSubstitute(in.String(), "{", "}", table, "?"); got != want.String() {
			t.Fatalf("StringSubstitute(%q) = %q, want %q", in.String(), got, want.String())
		}
	})
}
