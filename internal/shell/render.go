package shell

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/Chandanabr23/ZenBoard/internal/entity"
)

type Format string

const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
	FormatJSON  Format = "json"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatTable, FormatYAML, FormatJSON:
		return f, nil
	}

	return "", fmt.Errorf("unknown output format %q", s)
}

type noteView struct {
	ID      string  `json:"id" yaml:"id"`
	Content string  `json:"content" yaml:"content"`
	X       float64 `json:"x" yaml:"x"`
	Y       float64 `json:"y" yaml:"y"`
	Color   string  `json:"color" yaml:"color"`
}

// Render writes list to w in the given format.
func Render(w io.Writer, list []entity.Note, format Format) error {
	views := make([]noteView, 0, len(list))
	for _, n := range list {
		views = append(views, noteView{ID: n.ID, Content: n.Content, X: n.X, Y: n.Y, Color: string(n.Color)})
	}

	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(views); err != nil {
			return fmt.Errorf("encode yaml: %v", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(views); err != nil {
			return fmt.Errorf("encode json: %v", err)
		}
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tCOLOR\tX\tY\tCONTENT")
	for _, v := range views {
		fmt.Fprintf(tw, "%s\t%s\t%.0f\t%.0f\t%s\n", v.ID, v.Color, v.X, v.Y, v.Content)
	}

	return tw.Flush()
}
