package gemini

import (
	"testing"

	"github.com/Cyclone1070/fsnav/internal/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestToGeminiTools(t *testing.T) {
	decls := []tool.Declaration{
		{
			Name:        "search_file_lines",
			Description: "Search lines",
			Parameters: &tool.Schema{
				Type: tool.TypeObject,
				Properties: map[string]*tool.Schema{
					"paths": {
						Type:        tool.TypeArray,
						Description: "Files",
						Items:       &tool.Schema{Type: tool.TypeString},
					},
					"time_limit": {Type: tool.TypeNumber},
					"mode":       {Type: tool.TypeString, Enum: []string{"a", "b"}},
				},
				Required: []string{"paths"},
			},
		},
		{Name: "get_current_dir", Description: "pwd"},
	}

	tools := ToGeminiTools(decls)
	require.Len(t, tools, 1)
	fds := tools[0].FunctionDeclarations
	require.Len(t, fds, 2)

	fd := fds[0]
	assert.Equal(t, "search_file_lines", fd.Name)
	assert.Equal(t, "Search lines", fd.Description)
	require.NotNil(t, fd.Parameters)
	assert.Equal(t, genai.TypeObject, fd.Parameters.Type)
	assert.Equal(t, []string{"paths"}, fd.Parameters.Required)

	paths := fd.Parameters.Properties["paths"]
	require.NotNil(t, paths)
	assert.Equal(t, genai.TypeArray, paths.Type)
	assert.Equal(t, "Files", paths.Description)
	require.NotNil(t, paths.Items)
	assert.Equal(t, genai.TypeString, paths.Items.Type)

	assert.Equal(t, genai.TypeNumber, fd.Parameters.Properties["time_limit"].Type)
	assert.Equal(t, []string{"a", "b"}, fd.Parameters.Properties["mode"].Enum)

	assert.Nil(t, fds[1].Parameters)
}

func TestToGeminiTools_Empty(t *testing.T) {
	assert.Nil(t, ToGeminiTools(nil))
}

func TestToGeminiType(t *testing.T) {
	tests := []struct {
		in   tool.Type
		want genai.Type
	}{
		{tool.TypeString, genai.TypeString},
		{tool.TypeNumber, genai.TypeNumber},
		{tool.TypeInteger, genai.TypeInteger},
		{tool.TypeBoolean, genai.TypeBoolean},
		{tool.TypeArray, genai.TypeArray},
		{tool.TypeObject, genai.TypeObject},
		{tool.Type("weird"), genai.TypeString},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, toGeminiType(tt.in), string(tt.in))
	}
}
