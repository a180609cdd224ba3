package htmlutil

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	testCases := []struct {
		input    string
		expected string
	}{
		{"  hello  ", "hello"},
		{"hello\n\tworld", "hello world"},
		{"Shopping\n\t\t\tlist", "Shopping list"},
		{"a  b   c", "a b c"},
		{"", ""},
		{"\n\t ", ""},
	}

	for _, test := range testCases {
		require.Equal(t, test.expected, CleanText(test.input))
	}
}

func TestFirstAnchor(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<td><img src="/i/t.gif"/><a href="/abc123"> Some   title </a><a href="/other">x</a></td>`,
	))
	require.NoError(t, err)

	anchor, ok := FirstAnchor(doc.Selection)
	require.True(t, ok)
	require.Equal(t, "/abc123", anchor.Href)
	require.Equal(t, "Some title", anchor.Name)
}

func TestFirstAnchorMissing(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<td>just text, no link</td>`,
	))
	require.NoError(t, err)

	_, ok := FirstAnchor(doc.Selection)
	require.False(t, ok)
}

func TestFirstAnchorSkipsHreflessLinks(t *testing.T) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(
		`<td><a name="top">not a link</a><a href="/real">real</a></td>`,
	))
	require.NoError(t, err)

	anchor, ok := FirstAnchor(doc.Selection)
	require.True(t, ok)
	require.Equal(t, "/real", anchor.Href)
}
