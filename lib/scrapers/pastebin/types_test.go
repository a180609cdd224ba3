package pastebin

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func strptr(s string) *string {
	return &s
}

func TestEncodeJSONRoundTrip(t *testing.T) {
	pastes := []Paste{
		{
			Metadata: PasteMetadata{
				PasteID: "abc12345",
				Title:   "Interesting logs",
				URL:     "https://pastebin.com/abc12345",
				Author:  strptr("spammer42"),
				Added:   strptr("2 mins ago"),
				Syntax:  strptr("Python"),
			},
			Content: strptr("if x < 3:\n    print(\"ok\")\n"),
		},
		{
			Metadata: PasteMetadata{
				PasteID: "def67890",
				Title:   "def67890",
				URL:     "https://pastebin.com/def67890",
			},
			Content: nil,
		},
	}

	var buf bytes.Buffer
	err := EncodeJSON(&buf, pastes)
	require.NoError(t, err)

	rendered := buf.String()
	require.True(t, strings.HasSuffix(rendered, "\n"))
	require.Contains(t, rendered, `"paste_id": "abc12345"`)
	require.Contains(t, rendered, `"content": null`)
	// html characters in content stay intact
	require.Contains(t, rendered, `if x < 3:`)

	var decoded []Paste
	err = json.Unmarshal(buf.Bytes(), &decoded)
	require.NoError(t, err)

	diff := cmp.Diff(pastes, decoded)
	require.Empty(t, diff)
}

func TestEncodeJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := EncodeJSON(&buf, nil)
	require.NoError(t, err)
	require.Equal(t, "[]\n", buf.String())
}
