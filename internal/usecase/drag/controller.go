// Package drag turns pointer events on a note into position changes.
//
// While a drag is in progress the note only moves locally. The backend sees
// a single save carrying the final position, issued on pointer-up.
package drag

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Chandanabr23/ZenBoard/internal/entity"
	"github.com/Chandanabr23/ZenBoard/internal/eventloop"
	"github.com/Chandanabr23/ZenBoard/pkg/logger/slogx"
)

// Region is the part of a note a pointer-down landed on.
type Region int

const (
	// RegionSurface is the note body outside any control.
	RegionSurface Region = iota
	RegionText
	RegionDeleteButton
)

type State int

const (
	StateIdle State = iota
	StateDragging
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateDragging:
		return "dragging"
	}

	return fmt.Sprintf("State(%d)", int(s))
}

type noteStore interface {
	Note(id string) (entity.Note, bool)
	Move(id string, dx, dy float64) error
	Flush(ctx context.Context, id string) *eventloop.Future[struct{}]
}

type logger interface {
	Debug(ctx context.Context, msg string, attrs ...slog.Attr)
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.2 -out-filename=controller_options.gen.go -from-struct=Options
type Options struct {
	store  noteStore `option:"mandatory" validate:"required"`
	logger logger
}

// Controller must be driven from tasks of the loop that owns its store.
type Controller struct {
	Options

	state  State
	noteID string

	// Reference frame captured on pointer-down.
	pointerOrigin entity.Point
	noteOrigin    entity.Point
}

func New(opts Options) (*Controller, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate drag controller options: %v", err)
	}

	if opts.logger == nil {
		opts.logger = slogx.Default()
	}

	return &Controller{Options: opts}, nil
}

func (c *Controller) State() State {
	return c.state
}

// Dragging reports the id of the note being dragged.
func (c *Controller) Dragging() (string, bool) {
	return c.noteID, c.state == StateDragging
}

// PointerDown starts a drag when the pointer lands on a note's surface.
// It reports whether the controller took the event; events over the text
// field or the delete button are left to those controls.
func (c *Controller) PointerDown(noteID string, region Region, at entity.Point) bool {
	if c.state != StateIdle || region != RegionSurface {
		return false
	}

	note, ok := c.store.Note(noteID)
	if !ok {
		return false
	}

	c.state = StateDragging
	c.noteID = noteID
	c.pointerOrigin = at
	c.noteOrigin = note.Position()

	return true
}

// PointerMove places the dragged note at its origin plus the pointer's
// displacement. Nothing is sent to the backend.
func (c *Controller) PointerMove(at entity.Point) {
	if c.state != StateDragging {
		return
	}

	c.moveTo(context.Background(), at)
}

// PointerUp moves the note to its final position, saves it once and ends the
// drag. A note deleted mid-drag is not saved.
func (c *Controller) PointerUp(ctx context.Context, at entity.Point) *eventloop.Future[struct{}] {
	if c.state != StateDragging {
		return eventloop.Resolved(struct{}{}, nil)
	}

	id := c.noteID
	defer c.reset()

	if !c.moveTo(ctx, at) {
		return eventloop.Resolved(struct{}{}, nil)
	}

	return c.store.Flush(ctx, id)
}

func (c *Controller) moveTo(ctx context.Context, at entity.Point) bool {
	note, ok := c.store.Note(c.noteID)
	if !ok {
		c.logger.Debug(ctx, "dragged note is gone", slogx.NoteID(c.noteID))
		return false
	}

	target := c.noteOrigin.Add(at.X-c.pointerOrigin.X, at.Y-c.pointerOrigin.Y)
	if err := c.store.Move(c.noteID, target.X-note.X, target.Y-note.Y); err != nil {
		c.logger.Debug(ctx, "failed to move dragged note", slogx.NoteID(c.noteID), slogx.Err(err))
		return false
	}

	return true
}

func (c *Controller) reset() {
	c.state = StateIdle
	c.noteID = ""
	c.pointerOrigin = entity.Point{}
	c.noteOrigin = entity.Point{}
}
