package pastebin

import (
	"encoding/json"
	"io"
)

// PasteMetadata describes one paste listed on the archive page.
type PasteMetadata struct {
	PasteID string  `json:"paste_id"`
	Title   string  `json:"title"`
	URL     string  `json:"url"`
	Author  *string `json:"author"`
	Added   *string `json:"added"`
	Syntax  *string `json:"syntax"`
}

// Paste couples archive metadata with optionally fetched raw content.
// Content is nil when fetching was skipped or failed for this paste.
type Paste struct {
	Metadata PasteMetadata `json:"metadata"`
	Content  *string       `json:"content"`
}

// EncodeJSON writes pastes as an indented JSON array terminated by a
// newline. HTML characters inside paste content stay unescaped.
func EncodeJSON(w io.Writer, pastes []Paste) error {
	if pastes == nil {
		pastes = []Paste{}
	}
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	return enc.Encode(pastes)
}
