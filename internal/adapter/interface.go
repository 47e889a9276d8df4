package adapter

import (
	"context"
	"log/slog"

	"github.com/Cyclone1070/fsnav/internal/progress"
	"github.com/Cyclone1070/fsnav/internal/tool"
	"github.com/Cyclone1070/fsnav/internal/tool/workdir"
)

// Tool represents a capability a host can call by name.
type Tool interface {
	// Name returns the unique identifier for this tool
	Name() string

	// Declaration returns the function signature advertised to the host
	Declaration() tool.Declaration

	// Execute runs the tool with the given arguments and returns its JSON result.
	// Args is a map of argument names to values, as provided by the host
	Execute(ctx context.Context, args map[string]any) (string, error)
}

// Session is the per-host state shared by every tool: the working directory
// that relative paths resolve against, and the default progress sink.
type Session struct {
	WorkDir  *workdir.Context
	Reporter progress.Reporter
	Logger   *slog.Logger
}

// reporter returns the call-scoped reporter from ctx, falling back to the session's.
func (s *Session) reporter(ctx context.Context) progress.Reporter {
	return progress.FromContext(ctx, s.Reporter)
}
