package repository

import (
	"context"

	"github.com/Chandanabr23/ZenBoard/internal/repository/converter"
	"github.com/Chandanabr23/ZenBoard/internal/repository/converter/generated"
	"github.com/Chandanabr23/ZenBoard/pkg/notesapi"
)

var conv converter.Converter = &generated.ConverterImpl{}

type notesAPI interface {
	ListNotes(ctx context.Context) ([]notesapi.Note, error)
	CreateNote(ctx context.Context, in notesapi.NoteInput) (notesapi.Note, error)
	UpdateNote(ctx context.Context, note notesapi.Note) (notesapi.Note, error)
	DeleteNote(ctx context.Context, id notesapi.ID) error
}

// Repo maps the notes backend onto domain notes and rejects malformed records.
type Repo struct {
	api notesAPI
}

func New(api notesAPI) *Repo {
	return &Repo{api: api}
}
