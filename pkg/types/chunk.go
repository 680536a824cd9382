package types

import "errors"

// ByteRange identifies a half-open span of source bytes [Start, End).
type ByteRange struct {
	Start int
	End   int
}

// Len returns the number of bytes the range covers.
func (r ByteRange) Len() int {
	return r.End - r.Start
}

// Chunk represents a semantically meaningful span of a source file,
// formatted for embedding and search
type Chunk struct {
	// Name is a human-readable label: the declared identifier(s) for
	// structural chunks, or the language display name for whole-file chunks
	Name string

	// Range is the source byte span the chunk was derived from. Downstream
	// indexers compare it against the current file content to detect stale
	// chunks
	Range ByteRange

	// Content is the fully formatted prompt text, not the raw source slice
	Content string

	// Embedding is filled in by a downstream embedding stage. Extraction
	// always leaves it empty
	Embedding []float32
}

// ValidateContent checks if the chunk content is valid
func (c *Chunk) ValidateContent() error {
	if c.Content == "" {
		return errors.New("chunk content cannot be empty")
	}

	if c.Range.Start < 0 {
		return errors.New("range start must not be negative")
	}

	if c.Range.Start > c.Range.End {
		return errors.New("range start must be before or equal to range end")
	}

	return nil
}

// Validate performs comprehensive validation of the chunk
func (c *Chunk) Validate() error {
	if err := c.ValidateContent(); err != nil {
		return err
	}

	if c.Name == "" {
		return errors.New("chunk name is required")
	}

	return nil
}
