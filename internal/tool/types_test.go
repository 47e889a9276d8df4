package tool

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaHelpers_JSON(t *testing.T) {
	s := Object(map[string]*Schema{
		"paths": StringList("Files."),
		"limit": Scalar(TypeInteger, "Cap."),
	}, "paths")

	data, err := json.Marshal(s)
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "object",
		"properties": {
			"paths": {"type": "array", "description": "Files.", "items": {"type": "string"}},
			"limit": {"type": "integer", "description": "Cap."}
		},
		"required": ["paths"]
	}`, string(data))
}

func TestObject_NoProperties(t *testing.T) {
	data, err := json.Marshal(Object(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"object"}`, string(data))
}
