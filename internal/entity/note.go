package entity

import (
	"errors"
	"fmt"
	"slices"
)

var (
	ErrNoteNotFound = errors.New("note not found")
	ErrMissingID    = errors.New("note record has no id")
	ErrUnknownColor = errors.New("unknown note color")
)

type Color string

const (
	ColorRed    Color = "red"
	ColorBlue   Color = "blue"
	ColorYellow Color = "yellow"
)

// Colors is the closed set a note color is drawn from.
var Colors = []Color{ColorRed, ColorBlue, ColorYellow}

func (c Color) Valid() bool {
	return slices.Contains(Colors, c)
}

type Point struct {
	X float64
	Y float64
}

func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

type Note struct {
	ID      string
	Content string
	X       float64
	Y       float64
	Color   Color
}

func (n Note) Position() Point {
	return Point{X: n.X, Y: n.Y}
}

// Validate reports whether n may live in the local note list.
func (n Note) Validate() error {
	if n.ID == "" {
		return ErrMissingID
	}
	if !n.Color.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownColor, n.Color)
	}

	return nil
}

// Fields is a partial note mutation. Nil fields are left untouched.
type Fields struct {
	Content *string
	X       *float64
	Y       *float64
}

func ContentField(content string) Fields {
	return Fields{Content: &content}
}

func PositionFields(p Point) Fields {
	return Fields{X: &p.X, Y: &p.Y}
}

// Merge returns a copy of n with f applied.
func (n Note) Merge(f Fields) Note {
	if f.Content != nil {
		n.Content = *f.Content
	}
	if f.X != nil {
		n.X = *f.X
	}
	if f.Y != nil {
		n.Y = *f.Y
	}

	return n
}
