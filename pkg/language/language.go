package language

import (
	"errors"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// Well-known capture names resolved against an embedding query.
const (
	itemCaptureName    = "item"
	nameCaptureName    = "name"
	contextCaptureName = "context"
)

// EmbeddingConfig bundles a compiled structural query with the capture
// indices the extractor classifies captures against: the item capture (the
// code body to extract), the name capture (the declared identifier), and an
// optional context capture (enclosing-scope text prepended for
// disambiguation).
type EmbeddingConfig struct {
	Query            *sitter.Query
	ItemCaptureIx    uint32
	NameCaptureIx    uint32
	ContextCaptureIx *uint32 // nil when the query declares no @context capture
}

// NewEmbeddingConfig compiles source as a structural query for grammar and
// resolves the well-known capture names. The query must declare both an
// @item and a @name capture; @context is optional.
func NewEmbeddingConfig(source string, grammar *sitter.Language) (*EmbeddingConfig, error) {
	query, err := sitter.NewQuery([]byte(source), grammar)
	if err != nil {
		return nil, fmt.Errorf("failed to compile embedding query: %w", err)
	}

	cfg := &EmbeddingConfig{Query: query}

	var haveItem, haveName bool
	for ix := uint32(0); ix < query.CaptureCount(); ix++ {
		switch query.CaptureNameForId(ix) {
		case itemCaptureName:
			cfg.ItemCaptureIx = ix
			haveItem = true
		case nameCaptureName:
			cfg.NameCaptureIx = ix
			haveName = true
		case contextCaptureName:
			contextIx := ix
			cfg.ContextCaptureIx = &contextIx
		}
	}

	if !haveItem {
		return nil, errors.New("embedding query declares no @item capture")
	}
	if !haveName {
		return nil, errors.New("embedding query declares no @name capture")
	}

	return cfg, nil
}

// Language describes how a single language is extracted: a display name, an
// optional grammar, and — for structurally decomposable languages — an
// embedding query bundle. A nil Grammar means the language cannot be parsed
// at all; a nil EmbeddingConfig means it parses but is not decomposed into
// per-declaration chunks.
type Language struct {
	Name            string
	Grammar         *sitter.Language
	EmbeddingConfig *EmbeddingConfig
}
