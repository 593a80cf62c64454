package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		title  string
		expect string
	}{
		{"Hello, World!", "hello-world"},
		{"Hello World", "hello-world"},
		{"Hello World!!", "hello-world"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Multiple   spaces", "multiple-spaces"},
		{"Already-hyphenated title", "already-hyphenated-title"},
		{"a - b", "a-b"},
		{"UPPER case 123", "upper-case-123"},
		{"", ""},
		{"!!!", ""},
		{"标题没有拉丁字符", ""},
	}

	for _, tc := range cases {
		t.Run(tc.title, func(t *testing.T) {
			require.Equal(t, tc.expect, slugify(tc.title))
		})
	}
}

func TestNextFreeSlug(t *testing.T) {
	taken := map[string]struct{}{}
	require.Equal(t, "hello-world", nextFreeSlug("hello-world", taken))

	taken["hello-world"] = struct{}{}
	require.Equal(t, "hello-world-1", nextFreeSlug("hello-world", taken))

	taken["hello-world-1"] = struct{}{}
	require.Equal(t, "hello-world-2", nextFreeSlug("hello-world", taken))
}

// TestNextFreeSlugGap ensures the scan picks the smallest free counter,
// not the end of the sequence.
func TestNextFreeSlugGap(t *testing.T) {
	taken := map[string]struct{}{
		"post":   {},
		"post-1": {},
		"post-3": {},
	}
	require.Equal(t, "post-2", nextFreeSlug("post", taken))
}

func TestSlugifyKeepsOnlySafeRunes(t *testing.T) {
	got := slugify(`Crazy <>&"' title #42 (final)`)
	require.Equal(t, "crazy-title-42-final", got)
	require.False(t, strings.ContainsAny(got, ` <>&"'#()`))
}
