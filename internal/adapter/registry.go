package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/Cyclone1070/fsnav/internal/tool"
)

// Registry holds tools by name and dispatches calls to them.
type Registry struct {
	tools map[string]Tool
}

// NewRegistry creates a registry of the given tools. A later tool with the
// same name replaces an earlier one.
func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		r.tools[t.Name()] = t
	}
	return r
}

// Names returns the registered tool names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Declarations returns every tool declaration, sorted by name.
func (r *Registry) Declarations() []tool.Declaration {
	names := r.Names()
	decls := make([]tool.Declaration, 0, len(names))
	for _, name := range names {
		decls = append(decls, r.tools[name].Declaration())
	}
	return decls
}

// Call runs the named tool and returns its JSON result. Errors are returned as is.
func (r *Registry) Call(ctx context.Context, name string, args map[string]any) (string, error) {
	t, ok := r.tools[name]
	if !ok {
		return "", &UnknownToolError{Name: name, Available: r.Names()}
	}
	return t.Execute(ctx, args)
}

// Execute runs the named tool for a model host. Tool failures become "Error: ..."
// text the model can read and act on; only cancellation is returned as an error.
func (r *Registry) Execute(ctx context.Context, name string, args map[string]any) (string, error) {
	out, err := r.Call(ctx, name, args)
	if err == nil {
		return out, nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return "", err
	}

	var argsErr *ArgumentsError
	if errors.As(err, &argsErr) {
		schema, _ := json.Marshal(r.tools[name].Declaration().Parameters)
		return fmt.Sprintf("Error: %v. Expected parameters: %s", err, schema), nil
	}
	return fmt.Sprintf("Error: %v", err), nil
}
