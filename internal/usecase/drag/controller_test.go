package drag_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chandanabr23/ZenBoard/internal/entity"
	"github.com/Chandanabr23/ZenBoard/internal/eventloop"
	"github.com/Chandanabr23/ZenBoard/internal/notestest"
	"github.com/Chandanabr23/ZenBoard/internal/repository"
	"github.com/Chandanabr23/ZenBoard/internal/usecase/drag"
	"github.com/Chandanabr23/ZenBoard/internal/usecase/notes"
	"github.com/Chandanabr23/ZenBoard/pkg/notesapi"
)

const testDelay = 50 * time.Millisecond

type harness struct {
	t     *testing.T
	ctx   context.Context
	srv   *notestest.Server
	loop  *eventloop.Loop
	store *notes.Store
	drag  *drag.Controller
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	srv := notestest.New(t)

	api, err := notesapi.New(notesapi.NewOptions(srv.URL, http.DefaultClient))
	require.NoError(t, err)

	loop, err := eventloop.New(eventloop.NewOptions())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		_ = loop.Run(ctx)
	}()
	t.Cleanup(func() {
		cancel()
		<-stopped
	})

	store, err := notes.New(notes.NewOptions(repository.New(api), loop, notes.WithSaveDelay(testDelay)))
	require.NoError(t, err)

	ctrl, err := drag.New(drag.NewOptions(store))
	require.NoError(t, err)

	return &harness{t: t, ctx: context.Background(), srv: srv, loop: loop, store: store, drag: ctrl}
}

func (h *harness) do(fn func()) {
	h.t.Helper()
	require.NoError(h.t, h.loop.Do(h.ctx, fn))
}

func (h *harness) create(id string) entity.Note {
	h.t.Helper()

	h.srv.QueueIDs(id)
	var f *eventloop.Future[entity.Note]
	h.do(func() { f = h.store.Create(h.ctx) })

	note, err := f.Wait(h.ctx)
	require.NoError(h.t, err)

	return note
}

func (h *harness) note(id string) (entity.Note, bool) {
	var (
		n  entity.Note
		ok bool
	)
	h.do(func() { n, ok = h.store.Note(id) })

	return n, ok
}

func (h *harness) puts() []notestest.Request {
	return h.srv.Requests(http.MethodPut)
}

func p(x, y float64) entity.Point {
	return entity.Point{X: x, Y: y}
}

func TestDragSavesOnceOnRelease(t *testing.T) {
	h := newHarness(t)
	origin := h.create("n1").Position()

	h.do(func() { assert.True(t, h.drag.PointerDown("n1", drag.RegionSurface, p(10, 10))) })
	assert.Equal(t, drag.StateDragging, h.drag.State())

	for i := 1; i <= 50; i++ {
		h.do(func() { h.drag.PointerMove(p(10+float64(i), 10+float64(2*i))) })
	}

	moved, _ := h.note("n1")
	assert.InDelta(t, origin.X+50, moved.X, 1e-9)
	assert.InDelta(t, origin.Y+100, moved.Y, 1e-9)
	assert.Empty(t, h.puts())

	var f *eventloop.Future[struct{}]
	h.do(func() { f = h.drag.PointerUp(h.ctx, p(70, 130)) })
	_, err := f.Wait(h.ctx)
	require.NoError(t, err)
	assert.Equal(t, drag.StateIdle, h.drag.State())

	time.Sleep(3 * testDelay)

	puts := h.puts()
	require.Len(t, puts, 1)
	assert.Equal(t, "n1", puts[0].ID)
	assert.InDelta(t, origin.X+60, puts[0].Note.X, 1e-9)
	assert.InDelta(t, origin.Y+120, puts[0].Note.Y, 1e-9)

	final, _ := h.note("n1")
	assert.InDelta(t, final.X, puts[0].Note.X, 1e-9)
	assert.InDelta(t, final.Y, puts[0].Note.Y, 1e-9)
}

func TestDragPositionFollowsReferenceFrame(t *testing.T) {
	h := newHarness(t)
	h.srv.Seed(notesapi.Note{ID: "n1", X: 100, Y: 200, Color: "blue"})
	_, err := h.store.Load(h.ctx).Wait(h.ctx)
	require.NoError(t, err)

	h.do(func() {
		assert.True(t, h.drag.PointerDown("n1", drag.RegionSurface, p(500, 500)))
		h.drag.PointerMove(p(520, 480))
		h.drag.PointerMove(p(490, 510))
	})

	n, _ := h.note("n1")
	assert.Equal(t, entity.Point{X: 90, Y: 210}, n.Position())
}

func TestDragFlushesPendingEdit(t *testing.T) {
	h := newHarness(t)
	h.create("n1")

	var f *eventloop.Future[struct{}]
	h.do(func() {
		assert.NoError(t, h.store.Update(h.ctx, "n1", entity.ContentField("typed")))
		h.drag.PointerDown("n1", drag.RegionSurface, p(0, 0))
		h.drag.PointerMove(p(5, 5))
		f = h.drag.PointerUp(h.ctx, p(5, 5))
		assert.False(t, h.store.HasPendingSave("n1"))
	})
	_, err := f.Wait(h.ctx)
	require.NoError(t, err)

	time.Sleep(3 * testDelay)

	puts := h.puts()
	require.Len(t, puts, 1)
	assert.Equal(t, "typed", puts[0].Note.Content)
}

func TestDeleteMidDrag(t *testing.T) {
	h := newHarness(t)
	h.create("n1")

	var up *eventloop.Future[struct{}]
	h.do(func() {
		assert.True(t, h.drag.PointerDown("n1", drag.RegionSurface, p(0, 0)))
		h.drag.PointerMove(p(3, 4))
		h.store.Delete(h.ctx, "n1")
		h.drag.PointerMove(p(6, 8))
		up = h.drag.PointerUp(h.ctx, p(9, 12))
	})

	_, err := up.Wait(h.ctx)
	require.NoError(t, err)
	assert.Equal(t, drag.StateIdle, h.drag.State())
	require.NoError(t, h.loop.Idle(h.ctx))

	time.Sleep(3 * testDelay)

	assert.Empty(t, h.puts())
	assert.Len(t, h.srv.Requests(http.MethodDelete), 1)
	assert.Empty(t, h.srv.Notes())
	assert.Empty(t, h.store.Snapshot())
}

func TestPointerDownOnControlsPassesThrough(t *testing.T) {
	h := newHarness(t)
	h.create("n1")

	for _, region := range []drag.Region{drag.RegionText, drag.RegionDeleteButton} {
		h.do(func() { assert.False(t, h.drag.PointerDown("n1", region, p(1, 1))) })
		assert.Equal(t, drag.StateIdle, h.drag.State())
	}
}

func TestPointerDownUnknownNote(t *testing.T) {
	h := newHarness(t)

	h.do(func() { assert.False(t, h.drag.PointerDown("ghost", drag.RegionSurface, p(1, 1))) })
	assert.Equal(t, drag.StateIdle, h.drag.State())
}

func TestPointerDownWhileDraggingIgnored(t *testing.T) {
	h := newHarness(t)
	h.create("n1")
	h.create("n2")

	h.do(func() {
		assert.True(t, h.drag.PointerDown("n1", drag.RegionSurface, p(0, 0)))
		assert.False(t, h.drag.PointerDown("n2", drag.RegionSurface, p(0, 0)))
	})

	id, dragging := h.drag.Dragging()
	assert.True(t, dragging)
	assert.Equal(t, "n1", id)
}

func TestEventsWhileIdleIgnored(t *testing.T) {
	h := newHarness(t)
	before := h.create("n1")

	var f *eventloop.Future[struct{}]
	h.do(func() {
		h.drag.PointerMove(p(100, 100))
		f = h.drag.PointerUp(h.ctx, p(100, 100))
	})
	_, err := f.Wait(h.ctx)
	require.NoError(t, err)

	after, _ := h.note("n1")
	assert.Equal(t, before, after)

	time.Sleep(3 * testDelay)
	assert.Empty(t, h.puts())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "idle", drag.StateIdle.String())
	assert.Equal(t, "dragging", drag.StateDragging.String())
	assert.Equal(t, "State(7)", drag.State(7).String())
}

func TestNewRequiresStore(t *testing.T) {
	_, err := drag.New(drag.NewOptions(nil))
	assert.Error(t, err)
}
