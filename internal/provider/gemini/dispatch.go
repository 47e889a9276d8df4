package gemini

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/Cyclone1070/fsnav/internal/logging"
	"google.golang.org/genai"
)

// caller runs a named tool and returns its JSON result.
type caller interface {
	Call(ctx context.Context, name string, args map[string]any) (string, error)
}

// Dispatcher answers Gemini function calls by running the named tools.
type Dispatcher struct {
	tools  caller
	logger *slog.Logger
}

// NewDispatcher creates a Dispatcher over tools.
func NewDispatcher(tools caller, logger *slog.Logger) *Dispatcher {
	return &Dispatcher{tools: tools, logger: logging.OrDiscard(logger)}
}

// Handle runs one function call. The tool result is returned under "output"
// and a failure under "error", so the model always gets a response.
func (d *Dispatcher) Handle(ctx context.Context, call *genai.FunctionCall) *genai.FunctionResponse {
	resp := &genai.FunctionResponse{ID: call.ID, Name: call.Name}

	out, err := d.tools.Call(ctx, call.Name, call.Args)
	if err != nil {
		d.logger.DebugContext(ctx, "function call failed", "name", call.Name, "error", err)
		resp.Response = map[string]any{"error": err.Error()}
		return resp
	}

	var output any
	if err := json.Unmarshal([]byte(out), &output); err != nil {
		output = out
	}
	resp.Response = map[string]any{"output": output}
	return resp
}

// Respond runs every function call in a model response, in order, and returns
// the content to send back. It returns nil when the response calls nothing.
func (d *Dispatcher) Respond(ctx context.Context, result *genai.GenerateContentResponse) *genai.Content {
	calls := result.FunctionCalls()
	if len(calls) == 0 {
		return nil
	}

	parts := make([]*genai.Part, 0, len(calls))
	for _, call := range calls {
		parts = append(parts, &genai.Part{FunctionResponse: d.Handle(ctx, call)})
	}
	return &genai.Content{Role: "user", Parts: parts}
}
