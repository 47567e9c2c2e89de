// Package notesapi is a typed client for the notes REST backend:
//
//	GET    /notes       list all note records
//	POST   /notes       create a note, the response carries the assigned id
//	PUT    /notes/{id}  replace a note with the full record
//	DELETE /notes/{id}  delete a note
//
// Requests carry no client-side timeout; callers bound them with ctx.
package notesapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
)

type logger interface {
	Warn(context.Context, string, ...slog.Attr)
}

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.2 -out-filename=client_options.gen.go -from-struct=Options
type Options struct {
	baseURL    string       `option:"mandatory" validate:"required,url"`
	httpClient *http.Client `option:"mandatory" validate:"required"`

	// listAttempts bounds ListNotes only; writes are never retried.
	listAttempts uint          `default:"1" validate:"min=1,max=10"`
	retryDelay   time.Duration `default:"300ms"`

	logger logger
}

type Client struct {
	Options
}

func New(opts Options) (*Client, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate notes api options: %v", err)
	}

	if opts.logger == nil {
		opts.logger = noopLogger{}
	}

	opts.baseURL = strings.TrimRight(opts.baseURL, "/")

	return &Client{Options: opts}, nil
}

func (c *Client) ListNotes(ctx context.Context) ([]Note, error) {
	var notes []Note

	err := retry.Do(
		func() error {
			notes = nil
			return c.do(ctx, http.MethodGet, "/notes", nil, &notes)
		},
		retry.Context(ctx),
		retry.Attempts(c.listAttempts),
		retry.Delay(c.retryDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(attempt uint, err error) {
			c.logger.Warn(
				ctx,
				"failed to list notes",
				slog.Any("err", err),
				slog.Uint64("attempt", uint64(attempt)),
			)
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	return notes, nil
}

func (c *Client) CreateNote(ctx context.Context, in NoteInput) (Note, error) {
	var note Note
	if err := c.do(ctx, http.MethodPost, "/notes", in, &note); err != nil {
		return Note{}, fmt.Errorf("create note: %w", err)
	}

	return note, nil
}

func (c *Client) UpdateNote(ctx context.Context, note Note) (Note, error) {
	var updated Note
	if err := c.do(ctx, http.MethodPut, notePath(note.ID), note, &updated); err != nil {
		return Note{}, fmt.Errorf("update note %s: %w", note.ID, err)
	}

	return updated, nil
}

func (c *Client) DeleteNote(ctx context.Context, id ID) error {
	if err := c.do(ctx, http.MethodDelete, notePath(id), nil, nil); err != nil {
		return fmt.Errorf("delete note %s: %w", id, err)
	}

	return nil
}

func notePath(id ID) string {
	return "/notes/" + url.PathEscape(string(id))
}

func (c *Client) do(ctx context.Context, method, path string, body, target any) error {
	var bodyReader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		return &StatusError{Method: method, Path: path, Code: resp.StatusCode, Body: string(raw)}
	}

	if target == nil || resp.StatusCode == http.StatusNoContent {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}

	return nil
}

type noopLogger struct{}

func (noopLogger) Warn(context.Context, string, ...slog.Attr) {}
