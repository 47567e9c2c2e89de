package notes

import (
	"slices"

	"github.com/Chandanabr23/ZenBoard/internal/entity"
)

const (
	noteHalfWidth  = 100
	noteHalfHeight = 75
	createJitter   = 50
)

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.notes, func(n entity.Note) bool { return n.ID == id })
}

// draft builds an unsaved note with a random color near the viewport centre.
func (s *Store) draft() entity.Note {
	return entity.Note{
		Color: entity.Colors[s.rnd.IntN(len(entity.Colors))],
		X:     s.viewportWidth/2 - noteHalfWidth + s.rnd.Float64()*createJitter,
		Y:     s.viewportHeight/2 - noteHalfHeight + s.rnd.Float64()*createJitter,
	}
}

// insert adds a note confirmed by the backend. A note whose id is already
// present replaces the existing entry.
func (s *Store) insert(n entity.Note) {
	if idx := s.index(n.ID); idx >= 0 {
		s.notes[idx] = n
	} else {
		s.notes = append(s.notes, n)
	}

	s.publish()
}

func (s *Store) apply(id string, f entity.Fields) (entity.Note, error) {
	idx := s.index(id)
	if idx < 0 {
		return entity.Note{}, entity.ErrNoteNotFound
	}

	s.notes[idx] = s.notes[idx].Merge(f)
	s.publish()

	return s.notes[idx], nil
}

func (s *Store) translate(id string, dx, dy float64) (entity.Note, error) {
	n, ok := s.Note(id)
	if !ok {
		return entity.Note{}, entity.ErrNoteNotFound
	}

	return s.apply(id, entity.PositionFields(n.Position().Add(dx, dy)))
}

func (s *Store) remove(id string) bool {
	idx := s.index(id)
	if idx < 0 {
		return false
	}

	s.notes = slices.Delete(s.notes, idx, idx+1)
	s.publish()

	return true
}

// replaceAll swaps in a freshly loaded list, keeping the first of any
// duplicated ids.
func (s *Store) replaceAll(notes []entity.Note) {
	seen := make(map[string]struct{}, len(notes))
	list := make([]entity.Note, 0, len(notes))
	for _, n := range notes {
		if _, dup := seen[n.ID]; dup {
			continue
		}
		seen[n.ID] = struct{}{}
		list = append(list, n)
	}

	s.notes = list
	s.publish()
}
