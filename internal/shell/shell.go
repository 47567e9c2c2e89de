// Package shell drives a board from line-oriented text commands. It stands in
// for a pointer and keyboard: every command maps onto the same note store and
// drag controller calls a graphical surface would make.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Chandanabr23/ZenBoard/internal/entity"
	"github.com/Chandanabr23/ZenBoard/internal/eventloop"
	"github.com/Chandanabr23/ZenBoard/internal/usecase/drag"
	"github.com/Chandanabr23/ZenBoard/internal/usecase/notes"
)

const defaultDragSteps = 10

var errQuit = errors.New("quit")

const help = `commands:
  ls                        list notes
  new                       create a note
  edit <id> <text...>       replace a note's content
  move <id> <x> <y>         place a note at x, y
  drag <id> <dx> <dy> [n]   drag a note by dx, dy in n pointer moves
  rm <id>                   delete a note
  refresh                   reload notes from the backend
  flush                     save unsaved edits now
  help                      show this help
  quit                      leave the shell`

type board interface {
	Do(ctx context.Context, fn func()) error
	Notes() *notes.Store
	Drag() *drag.Controller
}

type Shell struct {
	board  board
	out    io.Writer
	format Format
}

func New(b board, out io.Writer, format Format) *Shell {
	return &Shell{board: b, out: out, format: format}
}

// Run executes one command per input line until in is exhausted, ctx is done
// or a quit command is read. Command errors are printed and do not stop it.
//
// Lines are read on a separate goroutine. If in is an io.Closer, Run closes
// it on return, which ends that goroutine; otherwise the goroutine stays
// blocked in Read until in yields data or EOF.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	if c, ok := in.(io.Closer); ok {
		defer c.Close()
	}

	lines := make(chan string)
	scanErr := make(chan error, 1)

	go func() {
		defer close(lines)

		sc := bufio.NewScanner(in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		scanErr <- sc.Err()
	}()

	for {
		fmt.Fprint(s.out, "> ")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}

			err := s.Exec(ctx, line)
			if errors.Is(err, errQuit) {
				return nil
			}
			if err != nil {
				fmt.Fprintf(s.out, "error: %v\n", err)
			}
		}
	}
}

// Exec runs a single command line.
func (s *Shell) Exec(ctx context.Context, line string) error {
	args := strings.Fields(line)
	if len(args) == 0 {
		return nil
	}

	cmd, args := args[0], args[1:]
	switch cmd {
	case "ls":
		return Render(s.out, s.board.Notes().Snapshot(), s.format)
	case "new":
		return s.create(ctx)
	case "edit":
		return s.edit(ctx, args)
	case "move":
		return s.move(ctx, args)
	case "drag":
		return s.drag(ctx, args)
	case "rm":
		return s.remove(ctx, args)
	case "refresh":
		return s.refresh(ctx)
	case "flush":
		return s.board.Do(ctx, func() { s.board.Notes().FlushAll(ctx) })
	case "help":
		fmt.Fprintln(s.out, help)
		return nil
	case "quit", "exit":
		return errQuit
	}

	return fmt.Errorf("unknown command %q, try help", cmd)
}

func (s *Shell) create(ctx context.Context) error {
	var f *eventloop.Future[entity.Note]
	if err := s.board.Do(ctx, func() { f = s.board.Notes().Create(ctx) }); err != nil {
		return err
	}

	note, err := f.Wait(ctx)
	if err != nil {
		return fmt.Errorf("create note: %v", err)
	}

	fmt.Fprintf(s.out, "created %s\n", note.ID)

	return nil
}

func (s *Shell) edit(ctx context.Context, args []string) error {
	if len(args) < 1 {
		return errors.New("usage: edit <id> <text...>")
	}

	id, content := args[0], strings.Join(args[1:], " ")

	var err error
	if doErr := s.board.Do(ctx, func() {
		err = s.board.Notes().Update(ctx, id, entity.ContentField(content))
	}); doErr != nil {
		return doErr
	}

	return err
}

func (s *Shell) move(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errors.New("usage: move <id> <x> <y>")
	}

	x, y, err := parsePair(args[1], args[2])
	if err != nil {
		return err
	}

	if doErr := s.board.Do(ctx, func() {
		err = s.board.Notes().Update(ctx, args[0], entity.PositionFields(entity.Point{X: x, Y: y}))
	}); doErr != nil {
		return doErr
	}

	return err
}

// drag replays a pointer gesture starting at the origin of the canvas.
func (s *Shell) drag(ctx context.Context, args []string) error {
	if len(args) != 3 && len(args) != 4 {
		return errors.New("usage: drag <id> <dx> <dy> [steps]")
	}

	dx, dy, err := parsePair(args[1], args[2])
	if err != nil {
		return err
	}

	steps := defaultDragSteps
	if len(args) == 4 {
		if steps, err = strconv.Atoi(args[3]); err != nil || steps < 1 {
			return fmt.Errorf("bad step count %q", args[3])
		}
	}

	id := args[0]
	ctrl := s.board.Drag()

	var started bool
	if err := s.board.Do(ctx, func() {
		started = ctrl.PointerDown(id, drag.RegionSurface, entity.Point{})
	}); err != nil {
		return err
	}
	if !started {
		return fmt.Errorf("drag %s: %w", id, entity.ErrNoteNotFound)
	}

	for i := 1; i < steps; i++ {
		at := entity.Point{X: dx * float64(i) / float64(steps), Y: dy * float64(i) / float64(steps)}
		if err := s.board.Do(ctx, func() { ctrl.PointerMove(at) }); err != nil {
			return err
		}
	}

	var f *eventloop.Future[struct{}]
	if err := s.board.Do(ctx, func() { f = ctrl.PointerUp(ctx, entity.Point{X: dx, Y: dy}) }); err != nil {
		return err
	}

	if _, err := f.Wait(ctx); err != nil {
		return fmt.Errorf("save dragged note: %v", err)
	}

	return nil
}

func (s *Shell) remove(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return errors.New("usage: rm <id>")
	}

	var f *eventloop.Future[struct{}]
	if err := s.board.Do(ctx, func() { f = s.board.Notes().Delete(ctx, args[0]) }); err != nil {
		return err
	}

	select {
	case <-f.Done():
		_, err := f.Wait(ctx)
		if errors.Is(err, entity.ErrNoteNotFound) {
			return err
		}
	default:
	}

	return nil
}

func (s *Shell) refresh(ctx context.Context) error {
	var f *eventloop.Future[[]entity.Note]
	if err := s.board.Do(ctx, func() { f = s.board.Notes().Load(ctx) }); err != nil {
		return err
	}

	if _, err := f.Wait(ctx); err != nil {
		return fmt.Errorf("load notes: %v", err)
	}

	fmt.Fprintf(s.out, "loaded %d notes\n", len(s.board.Notes().Snapshot()))

	return nil
}

func parsePair(a, b string) (float64, float64, error) {
	x, err := strconv.ParseFloat(a, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad number %q", a)
	}

	y, err := strconv.ParseFloat(b, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("bad number %q", b)
	}

	return x, y, nil
}
