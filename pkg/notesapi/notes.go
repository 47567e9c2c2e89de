package notesapi

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID is the backend-assigned note identifier. The backend may encode it as a
// JSON string or a JSON number; both decode to the same textual form.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)

	switch {
	case bytes.Equal(b, []byte("null")):
		*id = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("decode note id: %w", err)
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("decode note id %s: %w", b, err)
	}
	*id = ID(n.String())

	return nil
}

// NoteInput is the create body: a note record without its id.
type NoteInput struct {
	Content string  `json:"content"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Color   string  `json:"color"`
}

// Note is the full wire record.
type Note struct {
	ID      ID      `json:"id"`
	Content string  `json:"content"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
	Color   string  `json:"color"`
}
