package notes

import (
	"context"

	"github.com/Chandanabr23/ZenBoard/internal/entity"
	"github.com/Chandanabr23/ZenBoard/internal/eventloop"
	"github.com/Chandanabr23/ZenBoard/pkg/logger/slogx"
)

// Load fetches every note and replaces local state wholesale, discarding
// unsynced edits and their pending saves. On failure local state is kept.
func (s *Store) Load(ctx context.Context) *eventloop.Future[[]entity.Note] {
	return eventloop.Async(s.loop, func() ([]entity.Note, error) {
		return s.repo.ListNotes(ctx)
	}, func(notes []entity.Note, err error) {
		if err != nil {
			s.logger.Error(ctx, "failed to load notes", slogx.Err(err))
			return
		}

		s.cancelAll()
		s.replaceAll(notes)
	})
}

// Create asks the backend for a new empty note and appends it once the
// backend has assigned its id. A failed create leaves no trace locally.
func (s *Store) Create(ctx context.Context) *eventloop.Future[entity.Note] {
	draft := s.draft()

	return eventloop.Async(s.loop, func() (entity.Note, error) {
		return s.repo.CreateNote(ctx, draft)
	}, func(note entity.Note, err error) {
		if err != nil {
			s.logger.Error(ctx, "failed to create note", slogx.Err(err))
			return
		}

		s.insert(note)
	})
}

// Update merges f into the note immediately and schedules a save after the
// store's save delay. Further updates of the same note restart the delay.
func (s *Store) Update(ctx context.Context, id string, f entity.Fields) error {
	if _, err := s.apply(id, f); err != nil {
		s.logger.Debug(ctx, "skip update of unknown note", slogx.NoteID(id))
		return err
	}

	s.schedule(ctx, id)

	return nil
}

// Move translates the note locally without scheduling a save. Callers
// persist the final position with Update or Flush.
func (s *Store) Move(id string, dx, dy float64) error {
	_, err := s.translate(id, dx, dy)
	return err
}

// Delete removes the note at once, drops its pending save and then tells the
// backend. Nothing waits on the backend's answer, and cancelling ctx does not
// stop the remote delete.
func (s *Store) Delete(ctx context.Context, id string) *eventloop.Future[struct{}] {
	ctx = context.WithoutCancel(ctx)
	s.cancelPending(id)

	if !s.remove(id) {
		s.logger.Debug(ctx, "skip delete of unknown note", slogx.NoteID(id))
		return eventloop.Resolved(struct{}{}, entity.ErrNoteNotFound)
	}

	return eventloop.Async(s.loop, func() (struct{}, error) {
		return struct{}{}, s.repo.DeleteNote(ctx, id)
	}, func(_ struct{}, err error) {
		if err != nil {
			s.logger.Error(ctx, "failed to delete note", slogx.NoteID(id), slogx.Err(err))
		}
	})
}

// Flush saves the note now, replacing any pending delayed save. Unlike the
// delayed save, the request is bound to ctx.
func (s *Store) Flush(ctx context.Context, id string) *eventloop.Future[struct{}] {
	s.cancelPending(id)

	return s.persist(ctx, id)
}

// FlushAll saves every note that has a pending delayed save.
func (s *Store) FlushAll(ctx context.Context) {
	for id := range s.pending {
		s.Flush(ctx, id)
	}
}

func (s *Store) HasPendingSave(id string) bool {
	_, ok := s.pending[id]
	return ok
}

// schedule arms the delayed save for id. The save outlives ctx: only a later
// update, a flush, a delete or a load can cancel it.
func (s *Store) schedule(ctx context.Context, id string) {
	ctx = context.WithoutCancel(ctx)
	s.cancelPending(id)

	s.pending[id] = s.loop.AfterFunc(s.saveDelay, func() {
		delete(s.pending, id)
		s.persist(ctx, id)
	})
}

func (s *Store) cancelPending(id string) {
	if timer, ok := s.pending[id]; ok {
		timer.Stop()
		delete(s.pending, id)
	}
}

func (s *Store) cancelAll() {
	for id := range s.pending {
		s.cancelPending(id)
	}
}

// persist sends the note as it is right now. The record is read here, when
// the call is issued, never earlier.
func (s *Store) persist(ctx context.Context, id string) *eventloop.Future[struct{}] {
	note, ok := s.Note(id)
	if !ok {
		s.logger.Debug(ctx, "skip save of unknown note", slogx.NoteID(id))
		return eventloop.Resolved(struct{}{}, entity.ErrNoteNotFound)
	}

	return eventloop.Async(s.loop, func() (struct{}, error) {
		return struct{}{}, s.repo.UpdateNote(ctx, note)
	}, func(_ struct{}, err error) {
		if err != nil {
			s.logger.Error(ctx, "failed to update note", slogx.NoteID(id), slogx.Err(err))
		}
	})
}
