package adapter

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Cyclone1070/fsnav/internal/tool"
	"github.com/mitchellh/mapstructure"
)

// ToolExecutor is a function that executes a tool with typed request/response.
type ToolExecutor[Req, Resp any] func(context.Context, *Session, Req) (Resp, error)

// BaseAdapter provides common adapter functionality using generics:
// argument decoding, execution against the session, and response marshaling.
//
// Type Parameters:
//   - Req: The request type (e.g., directory.ListRequest)
//   - Resp: The response type (e.g., *directory.ListResponse)
type BaseAdapter[Req, Resp any] struct {
	declaration tool.Declaration
	session     *Session
	executor    ToolExecutor[Req, Resp]
}

// NewBaseAdapter creates a new base adapter with the given configuration.
func NewBaseAdapter[Req, Resp any](
	name string,
	description string,
	params *tool.Schema,
	session *Session,
	executor ToolExecutor[Req, Resp],
) *BaseAdapter[Req, Resp] {
	return &BaseAdapter[Req, Resp]{
		declaration: tool.Declaration{
			Name:        name,
			Description: description,
			Parameters:  params,
		},
		session:  session,
		executor: executor,
	}
}

// Name implements Tool
func (b *BaseAdapter[Req, Resp]) Name() string {
	return b.declaration.Name
}

// Declaration implements Tool
func (b *BaseAdapter[Req, Resp]) Declaration() tool.Declaration {
	return b.declaration
}

// Execute implements Tool.
//
// Arguments are decoded by their json tags. Decoding is weakly typed so that
// hosts sending a bare string for a list argument, or a float for an integer,
// are accepted. Omitted arguments leave pointer fields nil.
func (b *BaseAdapter[Req, Resp]) Execute(ctx context.Context, args map[string]any) (string, error) {
	var req Req
	if err := decodeArgs(args, &req); err != nil {
		return "", &ArgumentsError{Tool: b.declaration.Name, Cause: err}
	}

	resp, err := b.executor(ctx, b.session, req)
	if err != nil {
		return "", err
	}

	bytes, err := json.Marshal(resp)
	if err != nil {
		return "", fmt.Errorf("failed to marshal response: %w", err)
	}

	return string(bytes), nil
}

func decodeArgs(args map[string]any, out any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return decoder.Decode(args)
}
