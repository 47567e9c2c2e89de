// Package notes holds the board's authoritative note list and mediates every
// write to the notes backend.
//
// Every mutation has two halves. The local half changes the in-memory list
// synchronously and always succeeds. The remote half talks to the backend
// later, is best-effort, and only ever logs its failures: local state is
// never rolled back.
//
// Store methods must be called from tasks of the event loop it was built
// with. Snapshot and Observe are the only exceptions and are safe from any
// goroutine.
package notes

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/imkira/go-observer"

	"github.com/Chandanabr23/ZenBoard/internal/entity"
	"github.com/Chandanabr23/ZenBoard/internal/eventloop"
	"github.com/Chandanabr23/ZenBoard/pkg/logger/slogx"
)

type notesRepository interface {
	ListNotes(ctx context.Context) ([]entity.Note, error)
	CreateNote(ctx context.Context, draft entity.Note) (entity.Note, error)
	UpdateNote(ctx context.Context, note entity.Note) error
	DeleteNote(ctx context.Context, id string) error
}

type logger interface {
	Debug(ctx context.Context, msg string, attrs ...slog.Attr)
	Error(ctx context.Context, msg string, attrs ...slog.Attr)
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.2 -out-filename=usecase_options.gen.go -from-struct=Options
type Options struct {
	repo notesRepository `option:"mandatory" validate:"required"`
	loop *eventloop.Loop `option:"mandatory" validate:"required"`

	saveDelay      time.Duration `default:"500ms"`
	viewportWidth  float64       `default:"1280" validate:"gte=0"`
	viewportHeight float64       `default:"720" validate:"gte=0"`

	rnd    *rand.Rand
	logger logger
}

type Store struct {
	Options

	notes   []entity.Note
	pending map[string]*eventloop.Timer

	snapshots observer.Property
}

func New(opts Options) (*Store, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate notes store options: %v", err)
	}

	if opts.rnd == nil {
		opts.rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if opts.logger == nil {
		opts.logger = slogx.Default()
	}

	return &Store{
		Options:   opts,
		pending:   make(map[string]*eventloop.Timer),
		snapshots: observer.NewProperty([]entity.Note{}),
	}, nil
}

// Snapshot returns the note list as of the last local mutation.
func (s *Store) Snapshot() []entity.Note {
	return s.snapshots.Value().([]entity.Note)
}

// Observe streams a fresh snapshot after every local mutation.
// Values read from the stream are []entity.Note and must not be modified.
func (s *Store) Observe() observer.Stream {
	return s.snapshots.Observe()
}

func (s *Store) publish() {
	s.snapshots.Update(slices.Clone(s.notes))
}

// Note looks up the current local state of id.
func (s *Store) Note(id string) (entity.Note, bool) {
	idx := s.index(id)
	if idx < 0 {
		return entity.Note{}, false
	}

	return s.notes[idx], true
}

// SetViewport changes the area new notes are centred in.
func (s *Store) SetViewport(width, height float64) {
	s.viewportWidth, s.viewportHeight = width, height
}
