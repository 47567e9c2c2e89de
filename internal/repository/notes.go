package repository

import (
	"context"
	"fmt"

	"github.com/Chandanabr23/ZenBoard/internal/entity"
	"github.com/Chandanabr23/ZenBoard/pkg/notesapi"
)

func (r *Repo) ListNotes(ctx context.Context) ([]entity.Note, error) {
	rows, err := r.api.ListNotes(ctx)
	if err != nil {
		return nil, err
	}

	notes := conv.ConvertNotesToEntity(rows)
	for i, n := range notes {
		if err := n.Validate(); err != nil {
			return nil, fmt.Errorf("list notes: record %d: %w", i, err)
		}
	}

	if notes == nil {
		notes = []entity.Note{}
	}

	return notes, nil
}

func (r *Repo) CreateNote(ctx context.Context, draft entity.Note) (entity.Note, error) {
	row, err := r.api.CreateNote(ctx, conv.ConvertEntityToInput(draft))
	if err != nil {
		return entity.Note{}, err
	}

	note := conv.ConvertNoteToEntity(row)
	if err := note.Validate(); err != nil {
		return entity.Note{}, fmt.Errorf("create note: %w", err)
	}

	return note, nil
}

func (r *Repo) UpdateNote(ctx context.Context, note entity.Note) error {
	if _, err := r.api.UpdateNote(ctx, conv.ConvertEntityToNote(note)); err != nil {
		return err
	}

	return nil
}

func (r *Repo) DeleteNote(ctx context.Context, id string) error {
	return r.api.DeleteNote(ctx, notesapi.ID(id))
}
