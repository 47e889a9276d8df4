// Package server serves tool calls over a line-delimited JSON stream, one
// request per line, so any host process can drive a session through stdio.
package server

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/Cyclone1070/fsnav/internal/logging"
	"github.com/Cyclone1070/fsnav/internal/progress"
	"github.com/google/uuid"
)

// maxLineSize bounds a single request line.
const maxLineSize = 4 << 20

// caller runs a named tool and returns its JSON result.
type caller interface {
	Call(ctx context.Context, name string, args map[string]any) (string, error)
}

// Request is one call read from the input stream.
type Request struct {
	ID   string         `json:"id"`
	Name string         `json:"name"`
	Args map[string]any `json:"args"`
}

// Reply is one line written to the output stream. Exactly one of Event,
// Result and Error is set.
type Reply struct {
	ID     string          `json:"id"`
	Event  *progress.Event `json:"event,omitempty"`
	Result json.RawMessage `json:"result,omitempty"`
	Error  string          `json:"error,omitempty"`
}

// Server answers requests sequentially against one set of tools, so state such
// as the working directory carries over from one request to the next.
type Server struct {
	tools  caller
	logger *slog.Logger
	newID  func() string
}

// New creates a Server.
func New(tools caller, logger *slog.Logger) *Server {
	return &Server{
		tools:  tools,
		logger: logging.OrDiscard(logger),
		newID:  uuid.NewString,
	}
}

// Serve reads requests from in until EOF or until ctx is done. For each request
// it writes the progress events emitted by the call and then a result or error
// line, all tagged with the request ID. Blank lines are ignored.
func (s *Server) Serve(ctx context.Context, in io.Reader, out io.Writer) error {
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	w := &replyWriter{enc: enc}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := scanner.Bytes()
		if len(bytes.TrimSpace(line)) == 0 {
			continue
		}

		var req Request
		if err := json.Unmarshal(line, &req); err != nil {
			if werr := w.write(Reply{ID: s.newID(), Error: fmt.Sprintf("malformed request: %v", err)}); werr != nil {
				return werr
			}
			continue
		}
		if req.ID == "" {
			req.ID = s.newID()
		}

		if err := s.handle(ctx, w, req); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read requests: %w", err)
	}
	return nil
}

func (s *Server) handle(ctx context.Context, w *replyWriter, req Request) error {
	start := time.Now()

	reporter := progress.ReporterFunc(func(_ context.Context, ev progress.Event) {
		if err := w.write(Reply{ID: req.ID, Event: &ev}); err != nil {
			s.logger.WarnContext(ctx, "failed to write progress event", "id", req.ID, "error", err)
		}
	})

	result, err := s.tools.Call(progress.WithReporter(ctx, reporter), req.Name, req.Args)

	s.logger.InfoContext(ctx, "tool call",
		"id", req.ID, "name", req.Name, "duration", time.Since(start), "ok", err == nil)

	if err != nil {
		if werr := w.write(Reply{ID: req.ID, Error: err.Error()}); werr != nil {
			return werr
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return nil
	}
	return w.write(Reply{ID: req.ID, Result: json.RawMessage(result)})
}

// replyWriter serialises reply lines.
type replyWriter struct {
	mu  sync.Mutex
	enc *json.Encoder
}

func (w *replyWriter) write(r Reply) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if err := w.enc.Encode(r); err != nil {
		return fmt.Errorf("failed to write reply: %w", err)
	}
	return nil
}
