// Package types provides shared type definitions for the chunk extractor.
//
// # Core Types
//
// Chunk represents an embeddable span of a source file, wrapped in a
// descriptive prompt for a downstream embedding model:
//
//	chunk := types.Chunk{
//	    Name:    "ParseFile",
//	    Range:   types.ByteRange{Start: 120, End: 512},
//	    Content: promptText,
//	}
//
// Range is a half-open byte span [Start, End) into the original file. It is
// the contract downstream indexers use to detect whether a previously
// indexed chunk has gone stale. Embedding starts empty and is populated by
// a later, out-of-scope stage — extraction never fills it.
//
// # Errors
//
// The three sentinel errors describe the ways a single extraction call can
// fail. Callers discriminate with errors.Is:
//
//	chunks, err := ext.Extract(path, content, lang)
//	if errors.Is(err, types.ErrMissingGrammar) {
//	    // plain-text or unregistered language; skip the file
//	}
//
// All three are terminal and atomic: a failed call produces no chunks.
package types
