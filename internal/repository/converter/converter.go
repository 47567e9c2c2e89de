package converter

import (
	"github.com/Chandanabr23/ZenBoard/internal/entity"
	"github.com/Chandanabr23/ZenBoard/pkg/notesapi"
)

// goverter:converter
// goverter:output:file ./generated/generated.go
// goverter:output:package generated
// goverter:extend ConvertStringToColor
// goverter:extend ConvertColorToString
// goverter:skipCopySameType
//go:generate go run github.com/jmattheis/goverter/cmd/goverter@v1.7.0 gen .
type Converter interface {
	ConvertNoteToEntity(row notesapi.Note) entity.Note
	ConvertNotesToEntity(rows []notesapi.Note) []entity.Note

	ConvertEntityToNote(note entity.Note) notesapi.Note

	// goverter:ignore ID
	ConvertEntityToInput(note entity.Note) notesapi.NoteInput
}

func ConvertStringToColor(s string) entity.Color {
	return entity.Color(s)
}

func ConvertColorToString(c entity.Color) string {
	return string(c)
}
