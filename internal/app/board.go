// Package app assembles a board: the event loop, the note store and the drag
// controller, talking to the notes backend over HTTP.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Chandanabr23/ZenBoard/internal/config"
	"github.com/Chandanabr23/ZenBoard/internal/eventloop"
	"github.com/Chandanabr23/ZenBoard/internal/repository"
	"github.com/Chandanabr23/ZenBoard/internal/usecase/drag"
	"github.com/Chandanabr23/ZenBoard/internal/usecase/notes"
	"github.com/Chandanabr23/ZenBoard/pkg/logger/slogx"
	"github.com/Chandanabr23/ZenBoard/pkg/notesapi"
)

const defaultShutdownTimeout = 5 * time.Second

type Board struct {
	loop  *eventloop.Loop
	notes *notes.Store
	drag  *drag.Controller

	shutdownTimeout time.Duration
}

// New builds a board from cfg. A nil httpClient gets one that logs every
// backend request.
func New(cfg config.Config, httpClient *http.Client) (*Board, error) {
	backendLog := slogx.Default().With(slogx.BaseURL(cfg.API.BaseURL))

	if httpClient == nil {
		httpClient = &http.Client{Transport: &slogx.Transport{Logger: backendLog}}
	}

	api, err := notesapi.New(notesapi.NewOptions(
		cfg.API.BaseURL,
		httpClient,
		notesapi.WithListAttempts(cfg.API.ListAttempts),
		notesapi.WithLogger(backendLog),
	))
	if err != nil {
		return nil, fmt.Errorf("init notes api: %v", err)
	}

	loop, err := eventloop.New(eventloop.NewOptions(eventloop.WithQueueSize(cfg.Board.QueueSize)))
	if err != nil {
		return nil, fmt.Errorf("init event loop: %v", err)
	}

	store, err := notes.New(notes.NewOptions(
		repository.New(api),
		loop,
		notes.WithSaveDelay(cfg.Board.SaveDelay),
		notes.WithViewportWidth(cfg.Board.ViewportWidth),
		notes.WithViewportHeight(cfg.Board.ViewportHeight),
	))
	if err != nil {
		return nil, fmt.Errorf("init notes store: %v", err)
	}

	ctrl, err := drag.New(drag.NewOptions(store))
	if err != nil {
		return nil, fmt.Errorf("init drag controller: %v", err)
	}

	b := &Board{
		loop:            loop,
		notes:           store,
		drag:            ctrl,
		shutdownTimeout: cfg.Board.ShutdownTimeout,
	}
	if b.shutdownTimeout <= 0 {
		b.shutdownTimeout = defaultShutdownTimeout
	}

	return b, nil
}

// Notes and Drag must only be used from inside Do.
func (b *Board) Notes() *notes.Store {
	return b.notes
}

func (b *Board) Drag() *drag.Controller {
	return b.drag
}

// Do runs fn on the board's loop and waits for it.
func (b *Board) Do(ctx context.Context, fn func()) error {
	return b.loop.Do(ctx, fn)
}

// Run starts the loop and calls fn. When fn returns or ctx is done the board
// flushes unsaved edits, waits for outstanding backend calls and stops.
func (b *Board) Run(ctx context.Context, fn func(ctx context.Context) error) error {
	loopCtx, stopLoop := context.WithCancel(context.WithoutCancel(ctx))
	defer stopLoop()

	var eg errgroup.Group

	eg.Go(func() error { return b.loop.Run(loopCtx) })

	eg.Go(func() error {
		defer stopLoop()

		err := fn(ctx)
		if errors.Is(err, context.Canceled) {
			err = nil
		}

		return errors.Join(err, b.shutdown(context.WithoutCancel(ctx)))
	})

	return eg.Wait()
}

func (b *Board) shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, b.shutdownTimeout)
	defer cancel()

	if err := b.loop.Do(ctx, func() { b.notes.FlushAll(ctx) }); err != nil {
		return fmt.Errorf("flush notes: %v", err)
	}

	if err := b.loop.Idle(ctx); err != nil {
		return fmt.Errorf("wait backend calls: %v", err)
	}

	return nil
}
