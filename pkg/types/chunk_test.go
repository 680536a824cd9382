package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByteRange_Len(t *testing.T) {
	assert.Equal(t, 0, ByteRange{}.Len())
	assert.Equal(t, 19, ByteRange{Start: 0, End: 19}.Len())
	assert.Equal(t, 7, ByteRange{Start: 5, End: 12}.Len())
}

func TestChunk_Validate(t *testing.T) {
	chunk := Chunk{
		Name:    "f",
		Range:   ByteRange{Start: 0, End: 19},
		Content: "The below code snippet is from file 'a.py'\n\n```python\ndef f():\n    pass\n```",
	}
	require.NoError(t, chunk.Validate())
}

func TestChunk_ValidateContent(t *testing.T) {
	tests := []struct {
		name    string
		chunk   Chunk
		wantErr string
	}{
		{
			name:    "empty content",
			chunk:   Chunk{Name: "f", Range: ByteRange{End: 4}},
			wantErr: "content cannot be empty",
		},
		{
			name:    "negative start",
			chunk:   Chunk{Name: "f", Content: "x", Range: ByteRange{Start: -1, End: 4}},
			wantErr: "must not be negative",
		},
		{
			name:    "inverted range",
			chunk:   Chunk{Name: "f", Content: "x", Range: ByteRange{Start: 5, End: 4}},
			wantErr: "before or equal to",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.chunk.ValidateContent()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestChunk_Validate_MissingName(t *testing.T) {
	chunk := Chunk{Content: "x", Range: ByteRange{End: 1}}
	err := chunk.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
}
